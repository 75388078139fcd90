package scheduling

import (
	"context"
	"time"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
)

// MaxPageSize caps list pagination so a single request cannot pull the
// whole table.
const MaxPageSize = 100

// Repository is the persistence surface the scheduling use cases need.
// Existence lookups back the foreign-key checks that run before every
// dependent write.
type Repository interface {
	// Customer / ServiceProvider (referenced entities)
	GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error)
	GetProviderByID(ctx context.Context, id uint) (*models.ServiceProvider, error)

	// Service
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, svc *models.Service) error
	SaveService(ctx context.Context, svc *models.Service) error
	DeleteService(ctx context.Context, svc *models.Service) error
	ListServicesStartingBetween(ctx context.Context, from, to time.Time) ([]models.Service, error)
	CountServiceTasks(ctx context.Context, serviceID uint) (int64, error)

	// Task
	GetTaskByID(ctx context.Context, id uint) (*models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) error
	SaveTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, task *models.Task) error
	ListPendingTasks(ctx context.Context) ([]models.Task, error)
}
