package models

const ReminderStatusActive = "active"

// Reminder is "due" when its date is today or earlier and it is still active.
type Reminder struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Date        string `gorm:"size:10;index" json:"date"`
	Type        string `gorm:"size:40" json:"type"`
	Description string `gorm:"size:255" json:"description"`
	Status      string `gorm:"size:20;not null" json:"status"`
	CreatedAt   string `gorm:"size:40" json:"createdAt"`
}
