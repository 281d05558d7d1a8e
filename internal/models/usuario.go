package models

import "time"

const (
	RoleAdmin = 1
	RoleUser  = 2 // role padrão atribuído no registro
)

type Usuario struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:100;uniqueIndex;not null"`
	SenhaHash string `gorm:"size:255;not null"`
	RoleID    int    `gorm:"not null;default:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
