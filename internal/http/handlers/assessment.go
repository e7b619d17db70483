package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/prism-backend/internal/http/response"
	"github.com/yungbote/prism-backend/internal/platform/logger"
	"github.com/yungbote/prism-backend/internal/quiz"
	"github.com/yungbote/prism-backend/internal/services"
)

type AssessmentHandler struct {
	log               *logger.Logger
	assessmentService services.AssessmentService
	tokenService      services.TokenService
}

func NewAssessmentHandler(log *logger.Logger, assessmentService services.AssessmentService, tokenService services.TokenService) *AssessmentHandler {
	return &AssessmentHandler{
		log:               log.With("handler", "AssessmentHandler"),
		assessmentService: assessmentService,
		tokenService:      tokenService,
	}
}

type startRequest struct {
	Identity string `json:"identity" binding:"required"`
}

type answerRequest struct {
	QuestionID   string          `json:"question_id" binding:"required"`
	Value        json.RawMessage `json:"value" binding:"required"`
	FollowUpText string          `json:"follow_up_text"`
}

// questionDTO is the wire shape of a catalog entry. Scoring rules and
// follow-up gating stay server-side; clients only see that a follow-up
// prompt exists.
type questionDTO struct {
	ID             string        `json:"id"`
	Part           string        `json:"part"`
	Dimension      string        `json:"dimension"`
	Title          string        `json:"title"`
	Kind           string        `json:"kind"`
	Options        []quiz.Option `json:"options,omitempty"`
	Required       bool          `json:"required"`
	FollowUpPrompt string        `json:"follow_up_prompt,omitempty"`
}

func toQuestionDTOs(questions []quiz.Question) []questionDTO {
	out := make([]questionDTO, 0, len(questions))
	for _, q := range questions {
		dto := questionDTO{
			ID:        q.ID,
			Part:      q.Part,
			Dimension: string(q.Dimension),
			Title:     q.Title,
			Kind:      string(q.Kind),
			Options:   q.Options,
			Required:  q.Required,
		}
		if q.FollowUp != nil {
			dto.FollowUpPrompt = q.FollowUp.Prompt
		}
		out = append(out, dto)
	}
	return out
}

func (h *AssessmentHandler) Start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	session, err := h.assessmentService.Start(c.Request.Context(), req.Identity)
	if err != nil {
		if errors.Is(err, services.ErrUnknownIdentity) {
			response.RespondError(c, http.StatusUnprocessableEntity, "unknown_identity", err)
			return
		}
		h.log.Error("Start failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "start_failed", err)
		return
	}
	token, err := h.tokenService.Mint(session.ID)
	if err != nil {
		h.log.Error("token mint failed", "error", err, "session_id", session.ID)
		response.RespondError(c, http.StatusInternalServerError, "start_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{
		"session": session,
		"token":   token,
	})
}

func (h *AssessmentHandler) Questions(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	questions, err := h.assessmentService.Questions(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "load_questions_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"questions": toQuestionDTOs(questions)})
}

func (h *AssessmentHandler) SubmitAnswer(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	err := h.assessmentService.SubmitAnswer(c.Request.Context(), id, req.QuestionID, req.Value, req.FollowUpText)
	if err != nil {
		h.respondServiceError(c, "submit_answer_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"status": "ok"})
}

func (h *AssessmentHandler) Complete(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	result, err := h.assessmentService.Complete(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "complete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"result": result})
}

func (h *AssessmentHandler) Result(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	result, err := h.assessmentService.Result(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "load_result_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"result": result})
}

func (h *AssessmentHandler) Reset(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	if err := h.assessmentService.Reset(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, "reset_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"status": "ok"})
}

func (h *AssessmentHandler) Delete(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	if err := h.assessmentService.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, "delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"status": "ok"})
}

func (h *AssessmentHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_session_id", err)
		return uuid.Nil, false
	}
	return id, true
}

func (h *AssessmentHandler) respondServiceError(c *gin.Context, fallbackCode string, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		response.RespondError(c, http.StatusNotFound, "session_not_found", err)
	case errors.Is(err, services.ErrSessionCompleted):
		response.RespondError(c, http.StatusConflict, "session_completed", err)
	case errors.Is(err, services.ErrSessionNotCompleted):
		response.RespondError(c, http.StatusConflict, "session_not_completed", err)
	case errors.Is(err, services.ErrUnknownQuestion):
		response.RespondError(c, http.StatusUnprocessableEntity, "unknown_question", err)
	case errors.Is(err, services.ErrInvalidAnswer):
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_answer", err)
	default:
		h.log.Error("assessment request failed", "error", err, "code", fallbackCode)
		response.RespondError(c, http.StatusInternalServerError, fallbackCode, err)
	}
}
