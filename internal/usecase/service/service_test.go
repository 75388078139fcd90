package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/audit"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/httperr"
	infraRepo "github.com/BuddyBoardApp/petcare-scheduler/internal/infra/repository"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/testdb"
)

func setup(t *testing.T) (*gorm.DB, *infraRepo.SchedulingGormRepository, *audit.Dispatcher) {
	db := testdb.New(t)
	repo := infraRepo.NewSchedulingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	return db, repo, dispatcher
}

func seedReferences(t *testing.T, db *gorm.DB) (models.Customer, models.ServiceProvider) {
	t.Helper()

	customer := models.Customer{Name: "Dana Reyes", Email: "dana@example.com", Phone: "+15550001", Address: "1 Bark Ave"}
	require.NoError(t, db.Create(&customer).Error)

	provider := models.ServiceProvider{Name: "Happy Paws", Email: "paws@example.com", Phone: "+15550002"}
	require.NoError(t, db.Create(&provider).Error)

	return customer, provider
}

func validInput(customerID, providerID uint, start time.Time) CreateServiceInput {
	return CreateServiceInput{
		CustomerID:        customerID,
		ServiceProviderID: providerID,
		ServiceType:       "boarding",
		StartDate:         start,
		EndDate:           start.Add(48 * time.Hour),
		StartTime:         start,
		EndTime:           start.Add(2 * time.Hour),
		TotalPrice:        120.50,
		Notes:             "two golden retrievers",
		HandledBy:         "Sam",
	}
}

func TestCreateServicePersistsSuppliedReferences(t *testing.T) {
	db, repo, dispatcher := setup(t)
	customer, provider := seedReferences(t, db)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	uc := NewCreateService(repo, dispatcher)

	created, err := uc.Execute(context.Background(), 1, validInput(customer.ID, provider.ID, start))
	require.NoError(t, err)
	assert.Equal(t, customer.ID, created.CustomerID)
	assert.Equal(t, provider.ID, created.ServiceProviderID)

	got, err := repo.GetServiceByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.50, got.TotalPrice)
	assert.True(t, got.StartDate.Equal(start))
	assert.True(t, got.EndDate.Equal(start.Add(48*time.Hour)))
}

func TestCreateServiceFailsWhenCustomerMissing(t *testing.T) {
	db, repo, dispatcher := setup(t)
	_, provider := seedReferences(t, db)

	uc := NewCreateService(repo, dispatcher)
	in := validInput(9999, provider.ID, time.Now().UTC())

	_, err := uc.Execute(context.Background(), 1, in)
	assert.True(t, httperr.IsBusiness(err, "customer_not_found"))

	var count int64
	require.NoError(t, db.Model(&models.Service{}).Count(&count).Error)
	assert.Zero(t, count, "nothing should persist when a reference is missing")
}

func TestCreateServiceFailsWhenProviderMissing(t *testing.T) {
	db, repo, dispatcher := setup(t)
	customer, _ := seedReferences(t, db)

	uc := NewCreateService(repo, dispatcher)
	in := validInput(customer.ID, 9999, time.Now().UTC())

	_, err := uc.Execute(context.Background(), 1, in)
	assert.True(t, httperr.IsBusiness(err, "service_provider_not_found"))
}

func TestCreateServiceRejectsNegativePrice(t *testing.T) {
	db, repo, dispatcher := setup(t)
	customer, provider := seedReferences(t, db)

	in := validInput(customer.ID, provider.ID, time.Now().UTC())
	in.TotalPrice = -1

	_, err := NewCreateService(repo, dispatcher).Execute(context.Background(), 1, in)
	assert.True(t, httperr.IsBusiness(err, "negative_price"))
}

func TestUpdateServiceRevalidatesReferences(t *testing.T) {
	db, repo, dispatcher := setup(t)
	customer, provider := seedReferences(t, db)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	created, err := NewCreateService(repo, dispatcher).Execute(context.Background(), 1, validInput(customer.ID, provider.ID, start))
	require.NoError(t, err)

	in := validInput(customer.ID, 9999, start)
	_, err = NewUpdateService(repo, dispatcher).Execute(context.Background(), 1, created.ID, in)
	assert.True(t, httperr.IsBusiness(err, "service_provider_not_found"))

	in = validInput(customer.ID, provider.ID, start)
	in.TotalPrice = 200
	updated, err := NewUpdateService(repo, dispatcher).Execute(context.Background(), 1, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, float64(200), updated.TotalPrice)
}

func TestUpdateMissingServiceFails(t *testing.T) {
	db, repo, dispatcher := setup(t)
	customer, provider := seedReferences(t, db)

	in := validInput(customer.ID, provider.ID, time.Now().UTC())
	_, err := NewUpdateService(repo, dispatcher).Execute(context.Background(), 1, 404, in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestDeleteServiceIsIdempotentInFailure(t *testing.T) {
	db, repo, dispatcher := setup(t)
	customer, provider := seedReferences(t, db)

	created, err := NewCreateService(repo, dispatcher).Execute(context.Background(), 1, validInput(customer.ID, provider.ID, time.Now().UTC()))
	require.NoError(t, err)

	uc := NewDeleteService(repo, dispatcher)

	deleted, err := uc.Execute(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = uc.Execute(context.Background(), 1, created.ID)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestDeleteServiceWithTasksRestricted(t *testing.T) {
	db, repo, dispatcher := setup(t)
	customer, provider := seedReferences(t, db)

	created, err := NewCreateService(repo, dispatcher).Execute(context.Background(), 1, validInput(customer.ID, provider.ID, time.Now().UTC()))
	require.NoError(t, err)

	task := models.Task{ServiceID: created.ID, Title: "morning walk", DueDate: time.Now().UTC()}
	require.NoError(t, db.Create(&task).Error)

	_, err = NewDeleteService(repo, dispatcher).Execute(context.Background(), 1, created.ID)
	assert.True(t, httperr.IsBusiness(err, "service_has_tasks"))
}

func TestUpcomingWindowBoundsAreInclusive(t *testing.T) {
	db, repo, dispatcher := setup(t)
	customer, provider := seedReferences(t, db)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	createUC := NewCreateService(repo, dispatcher)

	starts := map[string]time.Time{
		"before":     now.Add(-time.Second),
		"lowerBound": now,
		"upperBound": now.Add(3 * 24 * time.Hour),
		"after":      now.Add(3*24*time.Hour + time.Second),
	}

	ids := map[string]uint{}
	for name, start := range starts {
		svc, err := createUC.Execute(context.Background(), 1, validInput(customer.ID, provider.ID, start))
		require.NoError(t, err)
		ids[name] = svc.ID
	}

	uc := NewListUpcomingServices(repo).WithClock(func() time.Time { return now })

	upcoming, err := uc.Execute(context.Background(), 3)
	require.NoError(t, err)

	got := map[uint]bool{}
	for _, svc := range upcoming {
		got[svc.ID] = true
	}

	assert.Len(t, upcoming, 2)
	assert.True(t, got[ids["lowerBound"]])
	assert.True(t, got[ids["upperBound"]])
	assert.False(t, got[ids["before"]])
	assert.False(t, got[ids["after"]])
}

func TestUpcomingRejectsNegativeWindow(t *testing.T) {
	_, repo, _ := setup(t)

	_, err := NewListUpcomingServices(repo).Execute(context.Background(), -1)
	assert.True(t, httperr.IsBusiness(err, "invalid_window"))
}
