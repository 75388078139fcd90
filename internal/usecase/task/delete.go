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

type DeleteTask struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteTask(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteTask {
	return &DeleteTask{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteTask) Execute(
	ctx context.Context,
	actorID uint,
	taskID uint,
) (*models.Task, error) {

	task, err := uc.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("task_not_found")
		}
		return nil, err
	}

	if err := uc.repo.DeleteTask(ctx, task); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "task_deleted",
		Entity:   "task",
		EntityID: &task.ID,
	})

	return task, nil
}
