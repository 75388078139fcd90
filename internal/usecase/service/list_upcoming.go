package service

import (
	"context"
	"time"

	domain "github.com/BuddyBoardApp/petcare-scheduler/internal/domain/scheduling"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
)

const DefaultUpcomingWindowDays = 3

// ListUpcomingServices returns services whose start date falls inside
// [now, now + window], both bounds inclusive. Computed fresh per call.
type ListUpcomingServices struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListUpcomingServices(repo domain.Repository) *ListUpcomingServices {
	return &ListUpcomingServices{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (uc *ListUpcomingServices) WithClock(now func() time.Time) *ListUpcomingServices {
	uc.now = now
	return uc
}

func (uc *ListUpcomingServices) Execute(
	ctx context.Context,
	windowDays int,
) ([]models.Service, error) {

	if windowDays < 0 {
		return nil, httperr.ErrBusiness("invalid_window")
	}

	from := uc.now().UTC()
	to := from.Add(time.Duration(windowDays) * 24 * time.Hour)

	return uc.repo.ListServicesStartingBetween(ctx, from, to)
}
