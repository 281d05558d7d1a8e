package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Produto struct {
	ID         uint            `gorm:"primaryKey"`
	Nome       string          `gorm:"size:100;not null;unique"` // chave de negócio usada pelas vendas e fichas
	Preco      decimal.Decimal `gorm:"type:decimal(20,4);default:0"`
	Quantidade decimal.Decimal `gorm:"type:decimal(20,4);default:0"` // saldo em estoque, nunca negativo
	Descricao  string          `gorm:"type:text"`
	Tipo       string          `gorm:"size:50"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
