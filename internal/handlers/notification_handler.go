package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/audit"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/middleware"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
)

// NotificationHandler enforces the ownership rule: a notification can
// only be read, marked read or deleted by the user it belongs to.
// A non-owner hitting someone else's notification gets 403, not 404.
type NotificationHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewNotificationHandler(db *gorm.DB, audit *audit.Dispatcher) *NotificationHandler {
	return &NotificationHandler{db: db, audit: audit}
}

// --------- Requests ---------

type NotificationRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// --------- Helpers ---------

// getOwned loads a notification and checks it belongs to the caller.
// Writes the error response itself when it returns nil.
func (h *NotificationHandler) getOwned(c *gin.Context, callerID uint) *models.Notification {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return nil
	}

	var notification models.Notification
	if err := h.db.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "notification_not_found", "Notification not found.")
			return nil
		}
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return nil
	}

	if notification.UserID != callerID {
		httperr.Forbidden(c, "notification_forbidden", "Notification belongs to another user.")
		return nil
	}

	return &notification
}

// --------- Handlers ---------

func (h *NotificationHandler) List(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)
	offset, limit := parsePagination(c)

	var notifications []models.Notification
	if err := h.db.
		Where("user_id = ?", callerID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not list notifications.")
		return
	}

	c.JSON(200, notifications)
}

func (h *NotificationHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// Target user must exist before the write.
	var targetCount int64
	if err := h.db.Model(&models.User{}).
		Where("id = ?", req.UserID).
		Count(&targetCount).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}
	if targetCount == 0 {
		httperr.NotFound(c, "user_not_found", "Target user not found.")
		return
	}

	notification := models.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		IsRead:  false,
	}

	if err := h.db.Create(&notification).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not persist notification.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "notification_created",
		Entity:   "notification",
		EntityID: &notification.ID,
	})

	c.JSON(201, notification)
}

func (h *NotificationHandler) Get(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	notification := h.getOwned(c, callerID)
	if notification == nil {
		return
	}

	c.JSON(200, notification)
}

func (h *NotificationHandler) Unread(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	var notifications []models.Notification
	if err := h.db.
		Where("user_id = ? AND is_read = ?", callerID, false).
		Order("id ASC").
		Find(&notifications).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not list notifications.")
		return
	}

	c.JSON(200, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	notification := h.getOwned(c, callerID)
	if notification == nil {
		return
	}

	notification.IsRead = true
	if err := h.db.Save(notification).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not persist notification.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "notification_read",
		Entity:   "notification",
		EntityID: &notification.ID,
	})

	c.JSON(200, notification)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	notification := h.getOwned(c, callerID)
	if notification == nil {
		return
	}

	if err := h.db.Delete(notification).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not delete notification.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "notification_deleted",
		Entity:   "notification",
		EntityID: &notification.ID,
	})

	c.JSON(200, notification)
}
