package models

import "time"

// Maquina: referenciada pelas fichas por nome, sem foreign key.
type Maquina struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
