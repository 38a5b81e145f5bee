package models

const (
	ClientTypeWholesale = "wholesale"
	ClientTypeRetail    = "retail"
)

// Balance is the outstanding credit owed by the client (signed).
type Client struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"`
	Name      string `gorm:"size:200" json:"name"`
	Phone     string `gorm:"size:20" json:"phone"`
	Type      string `gorm:"size:20;index" json:"type"`
	Balance   Amount `json:"balance"`
	CreatedAt string `gorm:"size:40" json:"createdAt"`
}
