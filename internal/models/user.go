package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:150;not null;unique"`
	PasswordHash string `gorm:"size:200;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
