package database

import (
	"errors"
	"fmt"
	"time"

	"portfolio-admin/internal/auth"
	"portfolio-admin/internal/domain/contact"
	"portfolio-admin/internal/domain/media"
	"portfolio-admin/internal/domain/portfolio"
	"portfolio-admin/internal/domain/settings"
	"portfolio-admin/internal/domain/users"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table the admin API owns.
func Models() []interface{} {
	return []interface{}{
		// accounts
		&users.Admin{},
		&users.RevokedToken{},

		// content
		&portfolio.Profile{},
		&portfolio.Skill{},
		&portfolio.Technology{},
		&portfolio.Certification{},
		&portfolio.Product{},
		&portfolio.Project{},
		&portfolio.Experience{},
		&portfolio.Education{},
		&settings.Setting{},
		&contact.Submission{},

		// uploads
		&media.Image{},
	}
}

// GormConfig is shared by the postgres connection and tests. Timestamps
// are always written in UTC.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Warn),
	}
}

// Open connects to postgres and migrates the schema.
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database: DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("connected and migrated")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("database: automigrate: %w", err)
	}
	return nil
}

// SeedAdmin creates the first admin account when none exists yet.
// It reports whether an account was created.
func SeedAdmin(db *gorm.DB, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	var count int64
	if err := db.Model(&users.Admin{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("database: hash admin password: %w", err)
	}

	admin := users.Admin{Username: username, PasswordHash: hash, Role: users.RoleAdmin}
	if err := db.Create(&admin).Error; err != nil {
		return false, fmt.Errorf("database: create admin: %w", err)
	}
	return true, nil
}
