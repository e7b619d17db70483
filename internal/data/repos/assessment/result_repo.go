package assessment

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/prism-backend/internal/domain"
	"github.com/yungbote/prism-backend/internal/platform/logger"
)

type ResultRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *domain.AssessmentResult) error
	GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (*domain.AssessmentResult, error)
	SoftDeleteBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error
}

type resultRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResultRepo(db *gorm.DB, baseLog *logger.Logger) ResultRepo {
	return &resultRepo{db: db, log: baseLog.With("repo", "ResultRepo")}
}

func (r *resultRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.AssessmentResult) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *resultRepo) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (*domain.AssessmentResult, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if sessionID == uuid.Nil {
		return nil, nil
	}
	var out []*domain.AssessmentResult
	if err := t.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *resultRepo) SoftDeleteBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&domain.AssessmentResult{}).Error
}
