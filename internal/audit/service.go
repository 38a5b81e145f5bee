package audit

import (
	"log"

	"storseek-backend/internal/database"
	"storseek-backend/internal/models"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
}

// WriteLog records a mutation in the audit trail. The trail is best effort:
// when the database is down (cache mode) the entry is only logged to stdout,
// the mutation itself is never blocked.
func WriteLog(opts LogOptions) {
	if database.DB == nil {
		log.Printf("[AUDIT] %s %s/%s بواسطة %s: %s",
			opts.Action, opts.EntityType, opts.EntityID, opts.UserName, opts.Description)
		return
	}

	entry := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		log.Printf("[WARN] تعذر تسجيل حركة المراجعة: %v", err)
	}
}
