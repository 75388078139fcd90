package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/audit"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/middleware"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/validators"
)

type ProviderHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProviderHandler(db *gorm.DB, audit *audit.Dispatcher) *ProviderHandler {
	return &ProviderHandler{db: db, audit: audit}
}

// --------- Requests ---------

type ProviderRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

// --------- Handlers ---------

func (h *ProviderHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	var providers []models.ServiceProvider
	if err := h.db.
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&providers).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not list providers.")
		return
	}

	c.JSON(200, providers)
}

func (h *ProviderHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	provider := models.ServiceProvider{
		Name:  req.Name,
		Email: validators.NormalizeEmail(req.Email),
		Phone: req.Phone,
	}

	if err := h.db.Create(&provider).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not persist provider.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "provider_created",
		Entity:   "service_provider",
		EntityID: &provider.ID,
	})

	c.JSON(201, provider)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return
	}

	var provider models.ServiceProvider
	if err := h.db.First(&provider, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_provider_not_found", "Service provider not found.")
			return
		}
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}

	c.JSON(200, provider)
}

func (h *ProviderHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return
	}

	var provider models.ServiceProvider
	if err := h.db.First(&provider, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_provider_not_found", "Service provider not found.")
			return
		}
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}

	var req ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	provider.Name = req.Name
	provider.Email = validators.NormalizeEmail(req.Email)
	provider.Phone = req.Phone

	if err := h.db.Save(&provider).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not persist provider.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "provider_updated",
		Entity:   "service_provider",
		EntityID: &provider.ID,
	})

	c.JSON(200, provider)
}

func (h *ProviderHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return
	}

	var provider models.ServiceProvider
	if err := h.db.First(&provider, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_provider_not_found", "Service provider not found.")
			return
		}
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}

	var dependents int64
	if err := h.db.Model(&models.Service{}).
		Where("service_provider_id = ?", provider.ID).
		Count(&dependents).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}
	if dependents > 0 {
		httperr.Conflict(c, "service_provider_has_services", "Provider still has services attached.")
		return
	}

	if err := h.db.Delete(&provider).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not delete provider.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "provider_deleted",
		Entity:   "service_provider",
		EntityID: &provider.ID,
	})

	c.JSON(200, provider)
}
