package models

// Savings card types as they appear in the UI (and in stored documents).
const (
	SavingTypeJamia       = "جمعية"
	SavingTypeInstallment = "قسط"
	SavingTypePayment     = "دفعة"
)

const (
	SavingStatusActive    = "active"
	SavingStatusCompleted = "completed"
)

// Saving starts active and moves to completed through an explicit action;
// it never goes back to active.
type Saving struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"size:200;not null" json:"name"`
	Type        string `gorm:"size:40;not null" json:"type"`
	Amount      Amount `gorm:"not null" json:"amount"`
	Date        string `gorm:"size:10;index" json:"date"`
	Status      string `gorm:"size:20;not null" json:"status"`
	Description string `gorm:"size:255" json:"description"`
	CreatedAt   string `gorm:"size:40" json:"createdAt"`
}
