package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/audit"
	domain "github.com/BuddyBoardApp/petcare-scheduler/internal/domain/scheduling"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
)

type DeleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteService {
	return &DeleteService{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-deletes a service and returns its prior state. A service
// that still has tasks cannot be deleted (restrict policy).
func (uc *DeleteService) Execute(
	ctx context.Context,
	actorID uint,
	serviceID uint,
) (*models.Service, error) {

	svc, err := uc.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	taskCount, err := uc.repo.CountServiceTasks(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if taskCount > 0 {
		return nil, httperr.ErrBusiness("service_has_tasks")
	}

	if err := uc.repo.DeleteService(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}
