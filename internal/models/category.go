package models

// Category is a bare label referenced by Product.Category; there is no
// surrogate id. Deleting a category that is still referenced is forbidden.
type Category struct {
	Name      string `gorm:"primaryKey;size:100" json:"name"`
	CreatedAt string `gorm:"size:40" json:"createdAt"`
}
