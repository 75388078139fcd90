package task

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/audit"
	domain "github.com/BuddyBoardApp/petcare-scheduler/internal/domain/scheduling"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
)

type UpdateTask struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateTask(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateTask {
	return &UpdateTask{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces every field, re-validating the service reference the
// same way create does. Flipping IsCompleted here is how a task gets
// marked done.
func (uc *UpdateTask) Execute(
	ctx context.Context,
	actorID uint,
	taskID uint,
	in CreateTaskInput,
) (*models.Task, error) {

	task, err := uc.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("task_not_found")
		}
		return nil, err
	}

	if _, err := uc.repo.GetServiceByID(ctx, in.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	task.ServiceID = in.ServiceID
	task.Title = in.Title
	task.Description = in.Description
	task.IsCompleted = in.IsCompleted
	task.DueDate = in.DueDate

	if err := uc.repo.SaveTask(ctx, task); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "task_updated",
		Entity:   "task",
		EntityID: &task.ID,
	})

	return task, nil
}
