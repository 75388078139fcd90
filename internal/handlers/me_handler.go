package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/middleware"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User no longer exists.")
			return
		}
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}

	c.JSON(200, user)
}
