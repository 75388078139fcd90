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

type UpdateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateService {
	return &UpdateService{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces every field of the service. Foreign keys are
// re-validated exactly as on create; partial updates are not supported.
func (uc *UpdateService) Execute(
	ctx context.Context,
	actorID uint,
	serviceID uint,
	in CreateServiceInput,
) (*models.Service, error) {

	svc, err := uc.repo.GetServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	if in.TotalPrice < 0 {
		return nil, httperr.ErrBusiness("negative_price")
	}

	if _, err := uc.repo.GetCustomerByID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return nil, err
	}

	if _, err := uc.repo.GetProviderByID(ctx, in.ServiceProviderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_provider_not_found")
		}
		return nil, err
	}

	svc.CustomerID = in.CustomerID
	svc.ServiceProviderID = in.ServiceProviderID
	svc.ServiceType = in.ServiceType
	svc.StartDate = in.StartDate
	svc.EndDate = in.EndDate
	svc.StartTime = in.StartTime
	svc.EndTime = in.EndTime
	svc.TotalPrice = in.TotalPrice
	svc.Notes = in.Notes
	svc.HandledBy = in.HandledBy

	if err := uc.repo.SaveService(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}
