package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/prism-backend/internal/db"
	"github.com/yungbote/prism-backend/internal/domain"
	"github.com/yungbote/prism-backend/internal/platform/logger"
)

// OpenDB returns a migrated private in-memory SQLite handle. Each call gets
// its own database, so tests stay independent without cleanup.
func OpenDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return gdb
}

func NewLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("development")
	if err != nil {
		tb.Fatalf("init logger: %v", err)
	}
	return log
}

func SeedSession(tb testing.TB, ctx context.Context, tx *gorm.DB, identity, track string) *domain.AssessmentSession {
	tb.Helper()
	now := time.Now().UTC()
	s := &domain.AssessmentSession{
		ID:        uuid.New(),
		Identity:  identity,
		Track:     track,
		Status:    domain.SessionStatusActive,
		Answers:   datatypes.JSON([]byte("[]")),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed session: %v", err)
	}
	return s
}
