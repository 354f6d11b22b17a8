package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ResourceTypeInvoice = "invoice"

	ActivityStatusSuccess = "success"
	ActivityStatusFailed  = "failed"
)

// ActivityLog is an audit entry for an admin action
type ActivityLog struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AdminEmail   string    `json:"admin_email" gorm:"not null;index"`
	Action       string    `json:"action" gorm:"not null;index"`
	ResourceType string    `json:"resource_type" gorm:"not null;index:idx_activity_resource_date,sort:desc"`
	ResourceID   string    `json:"resource_id" gorm:"index"`
	ResourceName string    `json:"resource_name"`
	Status       string    `json:"status" gorm:"not null"`
	StatusCode   int       `json:"status_code"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_activity_resource_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = ActivityStatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
