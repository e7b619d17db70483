package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/prism-backend/internal/clients/redis"
	"github.com/yungbote/prism-backend/internal/data/repos/assessment"
	"github.com/yungbote/prism-backend/internal/domain"
	"github.com/yungbote/prism-backend/internal/platform/logger"
	"github.com/yungbote/prism-backend/internal/quiz"
)

var (
	ErrUnknownIdentity     = errors.New("unknown identity")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionCompleted    = errors.New("session already completed")
	ErrSessionNotCompleted = errors.New("session not completed")
	ErrUnknownQuestion     = errors.New("question not in this session's catalog")
	ErrInvalidAnswer       = errors.New("invalid answer")
)

type AssessmentService interface {
	Start(ctx context.Context, identityName string) (*domain.AssessmentSession, error)
	Session(ctx context.Context, id uuid.UUID) (*domain.AssessmentSession, error)
	Questions(ctx context.Context, id uuid.UUID) ([]quiz.Question, error)
	SubmitAnswer(ctx context.Context, id uuid.UUID, questionID string, raw json.RawMessage, followUpText string) error
	Complete(ctx context.Context, id uuid.UUID) (*quiz.Result, error)
	Result(ctx context.Context, id uuid.UUID) (*quiz.Result, error)
	Reset(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type assessmentService struct {
	db          *gorm.DB
	log         *logger.Logger
	sessionRepo assessment.SessionRepo
	resultRepo  assessment.ResultRepo
	cache       redis.ResultCache
}

// NewAssessmentService wires the quiz engine to persistence. cache may be nil;
// every cache interaction is best-effort.
func NewAssessmentService(
	db *gorm.DB,
	log *logger.Logger,
	sessionRepo assessment.SessionRepo,
	resultRepo assessment.ResultRepo,
	cache redis.ResultCache,
) AssessmentService {
	return &assessmentService{
		db:          db,
		log:         log.With("service", "AssessmentService"),
		sessionRepo: sessionRepo,
		resultRepo:  resultRepo,
		cache:       cache,
	}
}

func (s *assessmentService) Start(ctx context.Context, identityName string) (*domain.AssessmentSession, error) {
	role, ok := quiz.IdentityRoleByName(identityName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIdentity, identityName)
	}
	now := time.Now().UTC()
	session := &domain.AssessmentSession{
		ID:        uuid.New(),
		Identity:  role.Name,
		Track:     string(role.Track),
		Status:    domain.SessionStatusActive,
		Answers:   datatypes.JSON([]byte("[]")),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessionRepo.Create(ctx, nil, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	s.log.Info("assessment started", "session_id", session.ID, "identity", role.Name, "track", role.Track)
	return session, nil
}

func (s *assessmentService) Session(ctx context.Context, id uuid.UUID) (*domain.AssessmentSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *assessmentService) Questions(ctx context.Context, id uuid.UUID) ([]quiz.Question, error) {
	session, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	return quiz.QuestionsForTrack(quiz.Track(session.Track), session.Identity)
}

func (s *assessmentService) SubmitAnswer(ctx context.Context, id uuid.UUID, questionID string, raw json.RawMessage, followUpText string) error {
	session, err := s.Session(ctx, id)
	if err != nil {
		return err
	}
	if session.Status == domain.SessionStatusCompleted {
		return ErrSessionCompleted
	}

	questions, err := quiz.QuestionsForTrack(quiz.Track(session.Track), session.Identity)
	if err != nil {
		return err
	}
	question, ok := quiz.QuestionByID(questions, questionID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}

	value, err := quiz.ParseValue(question.Kind, raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
	}

	answers, err := decodeAnswers(session.Answers)
	if err != nil {
		return fmt.Errorf("decode stored answers: %w", err)
	}
	set := quiz.NewAnswerSetFrom(answers)
	set.Put(quiz.Answer{QuestionID: questionID, Value: value, FollowUpText: followUpText})

	encoded, err := json.Marshal(set.All())
	if err != nil {
		return err
	}
	if err := s.sessionRepo.UpdateAnswers(ctx, nil, id, datatypes.JSON(encoded)); err != nil {
		return fmt.Errorf("persist answers: %w", err)
	}
	return nil
}

func (s *assessmentService) Complete(ctx context.Context, id uuid.UUID) (*quiz.Result, error) {
	session, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	// Completing twice returns the stored result rather than rescoring.
	if session.Status == domain.SessionStatusCompleted {
		return s.Result(ctx, id)
	}

	questions, err := quiz.QuestionsForTrack(quiz.Track(session.Track), session.Identity)
	if err != nil {
		return nil, err
	}
	answers, err := decodeAnswers(session.Answers)
	if err != nil {
		return nil, fmt.Errorf("decode stored answers: %w", err)
	}

	result, known := quiz.BuildResult(session.Identity, questions, quiz.NewAnswerSetFrom(answers))
	if !known {
		s.log.Warn("classifier produced uncatalogued type code", "session_id", id, "code", result.Type.Code)
	}

	scores, err := json.Marshal(result.Scores)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	row := &domain.AssessmentResult{
		ID:        uuid.New(),
		SessionID: id,
		TypeCode:  result.Type.Code,
		Refined:   result.Refined,
		Scores:    datatypes.JSON(scores),
		Payload:   datatypes.JSON(payload),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.resultRepo.Create(ctx, tx, row); err != nil {
			return err
		}
		return s.sessionRepo.UpdateStatus(ctx, tx, id, domain.SessionStatusCompleted)
	})
	if err != nil {
		return nil, fmt.Errorf("persist result: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, id, &result); err != nil {
			s.log.Warn("result cache write failed", "session_id", id, "error", err)
		}
	}
	s.log.Info("assessment completed", "session_id", id, "type", result.Type.Code, "refined", result.Refined)
	return &result, nil
}

func (s *assessmentService) Result(ctx context.Context, id uuid.UUID) (*quiz.Result, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn("result cache read failed", "session_id", id, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	session, err := s.Session(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionStatusCompleted {
		return nil, ErrSessionNotCompleted
	}
	row, err := s.resultRepo.GetBySessionID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrSessionNotCompleted
	}
	var result quiz.Result
	if err := json.Unmarshal(row.Payload, &result); err != nil {
		return nil, fmt.Errorf("decode stored result: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, id, &result); err != nil {
			s.log.Warn("result cache backfill failed", "session_id", id, "error", err)
		}
	}
	return &result, nil
}

// Reset clears every answer and reopens the session. Any stored result is
// removed so a later Complete rescoring starts clean.
func (s *assessmentService) Reset(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Session(ctx, id); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.resultRepo.SoftDeleteBySessionID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.sessionRepo.UpdateAnswers(ctx, tx, id, datatypes.JSON([]byte("[]"))); err != nil {
			return err
		}
		return s.sessionRepo.UpdateStatus(ctx, tx, id, domain.SessionStatusActive)
	})
	if err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	s.dropCached(ctx, id)
	return nil
}

func (s *assessmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Session(ctx, id); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.resultRepo.SoftDeleteBySessionID(ctx, tx, id); err != nil {
			return err
		}
		return s.sessionRepo.SoftDeleteByID(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.dropCached(ctx, id)
	return nil
}

func (s *assessmentService) dropCached(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.Warn("result cache delete failed", "session_id", id, "error", err)
	}
}

func decodeAnswers(raw datatypes.JSON) ([]quiz.Answer, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var answers []quiz.Answer
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
