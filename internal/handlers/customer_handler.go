package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/audit"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/middleware"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/validators"
)

type CustomerHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCustomerHandler(db *gorm.DB, audit *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// --------- Handlers ---------

func (h *CustomerHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Customer{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&customers).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not list customers.")
		return
	}

	c.JSON(200, customers)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.Unprocessable(c, "invalid_phone", "Phone number is malformed.")
		return
	}

	customer := models.Customer{
		Name:    req.Name,
		Email:   validators.NormalizeEmail(req.Email),
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not persist customer.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	c.JSON(201, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}

	c.JSON(200, customer)
}

// Update replaces the whole record; every field must be supplied.
func (h *CustomerHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.Unprocessable(c, "invalid_phone", "Phone number is malformed.")
		return
	}

	customer.Name = req.Name
	customer.Email = validators.NormalizeEmail(req.Email)
	customer.Phone = req.Phone
	customer.Address = req.Address

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not persist customer.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "customer_updated",
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	c.JSON(200, customer)
}

// Delete is restricted: a customer with services cannot be removed.
// Returns the deleted record's prior state.
func (h *CustomerHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}

	var dependents int64
	if err := h.db.Model(&models.Service{}).
		Where("customer_id = ?", customer.ID).
		Count(&dependents).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}
	if dependents > 0 {
		httperr.Conflict(c, "customer_has_services", "Customer still has services attached.")
		return
	}

	if err := h.db.Delete(&customer).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not delete customer.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	c.JSON(200, customer)
}
