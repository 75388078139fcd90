package task

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/audit"
	domain "github.com/BuddyBoardApp/petcare-scheduler/internal/domain/scheduling"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
)

type CreateTaskInput struct {
	ServiceID uint

	Title       string
	Description string
	IsCompleted bool
	DueDate     time.Time
}

type CreateTask struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateTask(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateTask {
	return &CreateTask{
		repo:  repo,
		audit: audit,
	}
}

// Execute checks the parent service exists before any write.
func (uc *CreateTask) Execute(
	ctx context.Context,
	actorID uint,
	in CreateTaskInput,
) (*models.Task, error) {

	if _, err := uc.repo.GetServiceByID(ctx, in.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	task := &models.Task{
		ServiceID:   in.ServiceID,
		Title:       in.Title,
		Description: in.Description,
		IsCompleted: in.IsCompleted,
		DueDate:     in.DueDate,
	}

	if err := uc.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "task_created",
		Entity:   "task",
		EntityID: &task.ID,
	})

	return task, nil
}
