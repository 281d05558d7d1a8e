package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venda: referencia o produto por nome (desnormalizado, sem foreign key),
// como as fichas. Criada junto com o débito de estoque na mesma transação.
type Venda struct {
	ID        uint            `gorm:"primaryKey"`
	Produto   string          `gorm:"size:100;not null"`
	Cliente   string          `gorm:"size:100;not null"`
	Peso      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Valor     decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	DataVenda time.Time       `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
