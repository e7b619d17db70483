package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/prism-backend/internal/platform/logger"
	"github.com/yungbote/prism-backend/internal/services"
)

const sessionIDKey = "prism.session_id"

type SessionMiddleware struct {
	log          *logger.Logger
	tokenService services.TokenService
}

func NewSessionMiddleware(log *logger.Logger, tokenService services.TokenService) *SessionMiddleware {
	return &SessionMiddleware{
		log:          log.With("middleware", "SessionMiddleware"),
		tokenService: tokenService,
	}
}

// RequireSession verifies the bearer token and pins the request to the
// session it was minted for. A token for session X never grants access to
// session Y's routes.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearer(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "missing or invalid token", "code": "unauthorized"},
			})
			return
		}
		sessionID, err := m.tokenService.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "missing or invalid token", "code": "unauthorized"},
			})
			return
		}

		if pathID := strings.TrimSpace(c.Param("id")); pathID != "" {
			parsed, err := uuid.Parse(pathID)
			if err != nil || parsed != sessionID {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error": gin.H{"message": "forbidden", "code": "forbidden"},
				})
				return
			}
		}

		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

func SessionIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(sessionIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
