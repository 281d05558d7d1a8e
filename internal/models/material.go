package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material: matéria-prima controlada à parte; as fichas não consomem
// material automaticamente.
type Material struct {
	ID         uint            `gorm:"primaryKey"`
	Nome       string          `gorm:"size:100;not null"`
	Quantidade decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	Descricao  string          `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Material) TableName() string { return "materiais" }
