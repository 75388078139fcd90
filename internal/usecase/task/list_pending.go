package task

import (
	"context"

	domain "github.com/BuddyBoardApp/petcare-scheduler/internal/domain/scheduling"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
)

// ListPendingTasks returns every incomplete task across all services,
// unfiltered by due date.
type ListPendingTasks struct {
	repo domain.Repository
}

func NewListPendingTasks(repo domain.Repository) *ListPendingTasks {
	return &ListPendingTasks{repo: repo}
}

func (uc *ListPendingTasks) Execute(ctx context.Context) ([]models.Task, error) {
	return uc.repo.ListPendingTasks(ctx)
}
