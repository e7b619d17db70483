package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/prism-backend/internal/config"
	"github.com/yungbote/prism-backend/internal/domain"
	"github.com/yungbote/prism-backend/internal/platform/logger"
)

// Open connects per config and runs migrations. SQLite is the development and
// test path; Postgres is production.
func Open(cfg config.DatabaseConfig, log *logger.Logger) (*gorm.DB, error) {
	dbLog := log.With("component", "db")

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	dbLog.Info("connecting to database", "driver", cfg.Driver)
	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	dbLog.Info("database ready")
	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&domain.AssessmentSession{},
		&domain.AssessmentResult{},
	)
}
