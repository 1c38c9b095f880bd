package models

import "time"

// DefaultActor is recorded when a caller does not identify itself.
const DefaultActor = "system"

// AuditFields is embedded in every persisted resource.
// CreatedAt is write-once; UpdatedAt is refreshed by GORM on every save.
type AuditFields struct {
	CreatedBy string    `gorm:"column:created_by;size:100"`
	UpdatedBy string    `gorm:"column:updated_by;size:100"`
	CreatedAt time.Time `gorm:"column:created_dttm;<-:create;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_dttm;autoUpdateTime"`
	IsActive  *bool     `gorm:"column:is_active;not null;default:true"`
}

// Active reports the soft-delete flag, treating an unset flag as active.
func (a AuditFields) Active() bool {
	return a.IsActive == nil || *a.IsActive
}
