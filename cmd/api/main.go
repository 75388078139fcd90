package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/auth"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/config"
	dbpkg "github.com/BuddyBoardApp/petcare-scheduler/internal/db"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/logger"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/middleware"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/routes"
)

func main() {

	if err := logger.Init(os.Getenv("APP_ENV")); err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	if err := dbpkg.SeedAdmin(db, hasher); err != nil {
		logger.L().Fatal("failed to seed admin user", zap.Error(err))
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logger.L().Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
