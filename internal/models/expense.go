package models

// Payment methods accepted on expenses.
const (
	PaymentCash     = "cash"
	PaymentCredit   = "credit"
	PaymentVodafone = "vodafone"
	PaymentBank     = "bank"
)

type Expense struct {
	ID            string  `gorm:"primaryKey;size:64" json:"id"`
	Description   string  `gorm:"size:255;not null" json:"description"`
	Category      string  `gorm:"size:100" json:"category"`
	Amount        Amount  `gorm:"not null" json:"amount"`
	Date          string  `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	PaymentMethod string  `gorm:"size:20" json:"paymentMethod"`
	Notes         string  `gorm:"size:255" json:"notes"`
	CreatedAt     string  `gorm:"size:40" json:"createdAt"`
}
