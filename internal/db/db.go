package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/auth"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/config"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/logger"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.L().Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.L().Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		logger.L().Fatal("failed to migrate", zap.Error(err))
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.ServiceProvider{},
		&models.Service{},
		&models.Task{},
		&models.Notification{},
		&models.AuditLog{},
	)
}

// SeedAdmin creates the initial admin account on an empty users table so
// a fresh deployment can log in at all.
func SeedAdmin(db *gorm.DB, hasher *auth.PasswordHasher) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := hasher.Hash("admin123")
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        "admin@buddyboard.com",
		PasswordHash: hashed,
		FullName:     "Admin User",
		Role:         models.RoleAdmin,
		IsActive:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.L().Info("seeded initial admin user", zap.String("email", admin.Email))
	return nil
}
