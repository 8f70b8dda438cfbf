package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/clinic-api/internal/config"
	"github.com/BruksfildServices01/clinic-api/internal/domain/specialty"
	infraRepo "github.com/BruksfildServices01/clinic-api/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

// NewDB opens the pool, migrates the schema and seeds the specialty
// catalogue.
func NewDB(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.Env == "production" {
		level = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpen)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdle)
	sqlDB.SetConnMaxLifetime(cfg.DBMaxLife)
	sqlDB.SetConnMaxIdleTime(cfg.DBMaxIdleDur)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// parents before children so the FK constraints resolve
	if err := db.WithContext(ctx).AutoMigrate(
		&models.Person{},
		&models.User{},
		&models.Specialty{},
		&models.Doctor{},
		&models.Client{},
		&models.Appointment{},
		&models.HistoryNote{},
		&models.ContactMessage{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := infraRepo.SeedSpecialties(ctx, db, specialty.Seed); err != nil {
		return nil, fmt.Errorf("seed specialties: %w", err)
	}

	log.Info("database ready",
		zap.Int("max_open_conns", cfg.DBMaxOpen),
		zap.Int("specialties_seeded", len(specialty.Seed)),
	)
	return db, nil
}
