package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionImport AuditAction = "import"
)

type AuditLog struct {
	ID          uint        `gorm:"primaryKey"`
	UserID      uint        `gorm:"index"`
	UserName    string      `gorm:"size:100"`
	EntityType  string      `gorm:"size:40;index"` // product, expense, saving, ...
	EntityID    string      `gorm:"size:64"`
	Action      AuditAction `gorm:"size:20"`
	Description string      `gorm:"size:255"`
	CreatedAt   time.Time
}
