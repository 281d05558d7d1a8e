package models

import "time"

// RefreshToken: token de renovação persistido; removido no logout.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"`
	UsuarioID uint      `gorm:"index;not null"`
	Token     string    `gorm:"type:text;not null"`
	ExpiraEm  time.Time `gorm:"not null"`
	CreatedAt time.Time
}
