package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/dto"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/httpresp"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/middleware"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
	ucService "github.com/BuddyBoardApp/petcare-scheduler/internal/usecase/service"
)

type ServiceHandler struct {
	db *gorm.DB

	createUC   *ucService.CreateService
	updateUC   *ucService.UpdateService
	deleteUC   *ucService.DeleteService
	upcomingUC *ucService.ListUpcomingServices
}

func NewServiceHandler(
	db *gorm.DB,
	createUC *ucService.CreateService,
	updateUC *ucService.UpdateService,
	deleteUC *ucService.DeleteService,
	upcomingUC *ucService.ListUpcomingServices,
) *ServiceHandler {
	return &ServiceHandler{
		db:         db,
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		upcomingUC: upcomingUC,
	}
}

// --------- Requests ---------

type ServiceRequest struct {
	CustomerID        uint `json:"customer_id" binding:"required"`
	ServiceProviderID uint `json:"service_provider_id" binding:"required"`

	ServiceType string    `json:"service_type" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`

	TotalPrice float64 `json:"total_price"`
	Notes      string  `json:"notes"`
	HandledBy  string  `json:"handled_by" binding:"required"`
}

func (r ServiceRequest) toInput() ucService.CreateServiceInput {
	return ucService.CreateServiceInput{
		CustomerID:        r.CustomerID,
		ServiceProviderID: r.ServiceProviderID,
		ServiceType:       r.ServiceType,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		TotalPrice:        r.TotalPrice,
		Notes:             r.Notes,
		HandledBy:         r.HandledBy,
	}
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	var services []models.Service
	if err := h.db.
		Preload("Customer").
		Preload("ServiceProvider").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&services).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not list services.")
		return
	}

	items := make([]dto.ServiceListDTO, 0, len(services))
	for _, svc := range services {
		items = append(items, dto.NewServiceListDTO(svc))
	}

	httpresp.List(c, items)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc, err := h.createUC.Execute(c.Request.Context(), actorID, req.toInput())
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Unavailable(c, "storage_unavailable", "Could not persist service.")
		}
		return
	}

	c.JSON(201, svc)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return
	}

	var svc models.Service
	if err := h.db.
		Preload("Customer").
		Preload("ServiceProvider").
		First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}

	c.JSON(200, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc, err := h.updateUC.Execute(c.Request.Context(), actorID, id, req.toInput())
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Unavailable(c, "storage_unavailable", "Could not persist service.")
		}
		return
	}

	c.JSON(200, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return
	}

	svc, err := h.deleteUC.Execute(c.Request.Context(), actorID, id)
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Unavailable(c, "storage_unavailable", "Could not delete service.")
		}
		return
	}

	c.JSON(200, svc)
}

func (h *ServiceHandler) Upcoming(c *gin.Context) {
	days := ucService.DefaultUpcomingWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_days", "Days must be an integer.")
			return
		}
		days = parsed
	}

	services, err := h.upcomingUC.Execute(c.Request.Context(), days)
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Unavailable(c, "storage_unavailable", "Could not query services.")
		}
		return
	}

	c.JSON(200, services)
}
