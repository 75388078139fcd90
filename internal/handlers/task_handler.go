package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/middleware"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
	ucTask "github.com/BuddyBoardApp/petcare-scheduler/internal/usecase/task"
)

type TaskHandler struct {
	db *gorm.DB

	createUC  *ucTask.CreateTask
	updateUC  *ucTask.UpdateTask
	deleteUC  *ucTask.DeleteTask
	pendingUC *ucTask.ListPendingTasks
}

func NewTaskHandler(
	db *gorm.DB,
	createUC *ucTask.CreateTask,
	updateUC *ucTask.UpdateTask,
	deleteUC *ucTask.DeleteTask,
	pendingUC *ucTask.ListPendingTasks,
) *TaskHandler {
	return &TaskHandler{
		db:        db,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		pendingUC: pendingUC,
	}
}

// --------- Requests ---------

type TaskRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`

	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"is_completed"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

func (r TaskRequest) toInput() ucTask.CreateTaskInput {
	return ucTask.CreateTaskInput{
		ServiceID:   r.ServiceID,
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
		DueDate:     r.DueDate,
	}
}

// --------- Handlers ---------

func (h *TaskHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	var tasks []models.Task
	if err := h.db.
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error; err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not list tasks.")
		return
	}

	c.JSON(200, tasks)
}

func (h *TaskHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	task, err := h.createUC.Execute(c.Request.Context(), actorID, req.toInput())
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Unavailable(c, "storage_unavailable", "Could not persist task.")
		}
		return
	}

	c.JSON(201, task)
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return
	}

	var task models.Task
	if err := h.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "task_not_found", "Task not found.")
			return
		}
		httperr.Unavailable(c, "storage_unavailable", "Could not reach storage.")
		return
	}

	c.JSON(200, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	task, err := h.updateUC.Execute(c.Request.Context(), actorID, id, req.toInput())
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Unavailable(c, "storage_unavailable", "Could not persist task.")
		}
		return
	}

	c.JSON(200, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identifier must be a positive integer.")
		return
	}

	task, err := h.deleteUC.Execute(c.Request.Context(), actorID, id)
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Unavailable(c, "storage_unavailable", "Could not delete task.")
		}
		return
	}

	c.JSON(200, task)
}

func (h *TaskHandler) Pending(c *gin.Context) {
	tasks, err := h.pendingUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Unavailable(c, "storage_unavailable", "Could not query tasks.")
		return
	}

	c.JSON(200, tasks)
}
