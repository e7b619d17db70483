package assessment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/prism-backend/internal/domain"
	"github.com/yungbote/prism-backend/internal/platform/logger"
)

type SessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *domain.AssessmentSession) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.AssessmentSession, error)
	UpdateAnswers(ctx context.Context, tx *gorm.DB, id uuid.UUID, answers datatypes.JSON) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type sessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSessionRepo(db *gorm.DB, baseLog *logger.Logger) SessionRepo {
	return &sessionRepo{db: db, log: baseLog.With("repo", "SessionRepo")}
}

func (r *sessionRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.AssessmentSession) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.AssessmentSession, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*domain.AssessmentSession
	if err := t.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *sessionRepo) UpdateAnswers(ctx context.Context, tx *gorm.DB, id uuid.UUID, answers datatypes.JSON) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&domain.AssessmentSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"answers":    answers,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *sessionRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&domain.AssessmentSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *sessionRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.AssessmentSession{}).Error
}
