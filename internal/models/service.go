package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"customer"`

	ServiceProviderID uint            `json:"service_provider_id"`
	ServiceProvider   ServiceProvider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service_provider"`

	// boarding, daycare, grooming...
	ServiceType string `gorm:"size:50" json:"service_type"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	TotalPrice float64 `json:"total_price"`
	Notes      string  `gorm:"type:text" json:"notes"`
	HandledBy  string  `gorm:"size:100" json:"handled_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
