package dto

import (
	"time"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/models"
)

type ServiceListDTO struct {
	ID uint `json:"id"`

	CustomerID   uint   `json:"customer_id"`
	CustomerName string `json:"customer_name"`

	ServiceProviderID   uint   `json:"service_provider_id"`
	ServiceProviderName string `json:"service_provider_name"`

	ServiceType string    `json:"service_type"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	TotalPrice  float64   `json:"total_price"`
	HandledBy   string    `json:"handled_by"`
}

func NewServiceListDTO(svc models.Service) ServiceListDTO {
	return ServiceListDTO{
		ID:                  svc.ID,
		CustomerID:          svc.CustomerID,
		CustomerName:        svc.Customer.Name,
		ServiceProviderID:   svc.ServiceProviderID,
		ServiceProviderName: svc.ServiceProvider.Name,
		ServiceType:         svc.ServiceType,
		StartDate:           svc.StartDate,
		EndDate:             svc.EndDate,
		StartTime:           svc.StartTime,
		EndTime:             svc.EndTime,
		TotalPrice:          svc.TotalPrice,
		HandledBy:           svc.HandledBy,
	}
}
