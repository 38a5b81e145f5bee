package models

// JSON tags across the document models use the camelCase field names of the
// original store documents, so JSON backups taken from older deployments
// restore without a field mapping step.

type Product struct {
	ID             string  `gorm:"primaryKey;size:64" json:"id"`
	Name           string  `gorm:"size:200;not null;index" json:"name"`
	Category       string  `gorm:"size:100;not null;index" json:"category"`
	CostPrice      float64 `gorm:"not null" json:"costPrice"`
	WholesalePrice float64 `gorm:"not null" json:"wholesalePrice"`
	RetailPrice    float64 `gorm:"not null" json:"retailPrice"`
	Quantity       int     `gorm:"not null;default:0" json:"quantity"`
	InfiniteStock  bool    `gorm:"not null;default:false" json:"infiniteStock"`
	IsManufactured bool    `gorm:"not null;default:false" json:"isManufactured"`
	CreatedAt      string  `gorm:"size:40" json:"createdAt"` // RFC3339
}
