package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Customer / ServiceProvider
// --------------------------------------------------

func (r *SchedulingGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *SchedulingGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.ServiceProvider, error) {

	var provider models.ServiceProvider
	if err := r.db.WithContext(ctx).First(&provider, id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *SchedulingGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *SchedulingGormRepository) CreateService(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *SchedulingGormRepository) SaveService(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

func (r *SchedulingGormRepository) DeleteService(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Delete(svc).Error
}

func (r *SchedulingGormRepository) ListServicesStartingBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("start_date >= ? AND start_date <= ?", from, to).
		Order("start_date ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *SchedulingGormRepository) CountServiceTasks(
	ctx context.Context,
	serviceID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Task
// --------------------------------------------------

func (r *SchedulingGormRepository) GetTaskByID(
	ctx context.Context,
	id uint,
) (*models.Task, error) {

	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *SchedulingGormRepository) CreateTask(
	ctx context.Context,
	task *models.Task,
) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *SchedulingGormRepository) SaveTask(
	ctx context.Context,
	task *models.Task,
) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *SchedulingGormRepository) DeleteTask(
	ctx context.Context,
	task *models.Task,
) error {
	return r.db.WithContext(ctx).Delete(task).Error
}

func (r *SchedulingGormRepository) ListPendingTasks(
	ctx context.Context,
) ([]models.Task, error) {

	var tasks []models.Task
	if err := r.db.WithContext(ctx).
		Where("is_completed = ?", false).
		Order("due_date ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
