package service

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

type CreateServiceInput struct {
	CustomerID        uint
	ServiceProviderID uint

	ServiceType string
	StartDate   time.Time
	EndDate     time.Time
	StartTime   time.Time
	EndTime     time.Time

	TotalPrice float64
	Notes      string
	HandledBy  string
}

type CreateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateService {
	return &CreateService{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates both referenced entities before any write. Nothing
// is persisted when either lookup fails.
func (uc *CreateService) Execute(
	ctx context.Context,
	actorID uint,
	in CreateServiceInput,
) (*models.Service, error) {

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

	svc := &models.Service{
		CustomerID:        in.CustomerID,
		ServiceProviderID: in.ServiceProviderID,
		ServiceType:       in.ServiceType,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
		TotalPrice:        in.TotalPrice,
		Notes:             in.Notes,
		HandledBy:         in.HandledBy,
	}

	if err := uc.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}
