package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/prism-backend/internal/http/handlers"
	"github.com/yungbote/prism-backend/internal/http/middleware"
	"github.com/yungbote/prism-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log               *logger.Logger
	Env               string
	AssessmentHandler *handlers.AssessmentHandler
	CatalogHandler    *handlers.CatalogHandler
	SessionMiddleware *middleware.SessionMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Env == "prod" || cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(otelgin.Middleware("prism"))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.GET("/identities", cfg.CatalogHandler.Identities)
		api.GET("/identity-questions", cfg.CatalogHandler.IdentityQuestions)
		api.GET("/personality-types", cfg.CatalogHandler.PersonalityTypes)
		api.POST("/assessments", cfg.AssessmentHandler.Start)
	}

	// Session scoped
	scoped := api.Group("/assessments/:id")
	scoped.Use(cfg.SessionMiddleware.RequireSession())
	scoped.GET("/questions", cfg.AssessmentHandler.Questions)
	scoped.PUT("/answers", cfg.AssessmentHandler.SubmitAnswer)
	scoped.POST("/complete", cfg.AssessmentHandler.Complete)
	scoped.GET("/result", cfg.AssessmentHandler.Result)
	scoped.POST("/reset", cfg.AssessmentHandler.Reset)
	scoped.DELETE("", cfg.AssessmentHandler.Delete)

	return router
}
