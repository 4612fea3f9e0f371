package model

import (
	"time"
)

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Email     string  `gorm:"type:varchar(255);uniqueIndex:idx_email;not null"`
	Password  string  `gorm:"type:varchar(255);not null"`
	Name      *string `gorm:"type:varchar(150)"`
	IsActive  bool    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
