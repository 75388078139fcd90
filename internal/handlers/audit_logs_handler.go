package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	var logs []models.AuditLog
	if err := h.db.
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not list audit logs.")
		return
	}

	c.JSON(200, logs)
}
