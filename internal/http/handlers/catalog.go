package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/prism-backend/internal/http/response"
	"github.com/yungbote/prism-backend/internal/quiz"
)

// CatalogHandler serves the static reference data: identity roles, the
// archetype catalog, and the pre-track identity questions.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Identities(c *gin.Context) {
	response.RespondOK(c, gin.H{"identities": quiz.IdentityRoles()})
}

func (h *CatalogHandler) PersonalityTypes(c *gin.Context) {
	response.RespondOK(c, gin.H{"personality_types": quiz.AllPersonalityTypes()})
}

func (h *CatalogHandler) IdentityQuestions(c *gin.Context) {
	response.RespondOK(c, gin.H{"questions": toQuestionDTOs(quiz.IdentityQuestions())})
}
