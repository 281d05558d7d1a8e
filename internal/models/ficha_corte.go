package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FichaCorte: registro de uma rodada de corte. Imutável, mesmo contrato
// de snapshot de nome da FichaExtrusao.
type FichaCorte struct {
	ID           uint             `gorm:"primaryKey"`
	OperadorNome string           `gorm:"size:100;not null"`
	OperadorCPF  string           `gorm:"size:20;not null"`
	Maquina      string           `gorm:"size:100;not null"`
	Turno        string           `gorm:"size:50"`
	SacolaDim    string           `gorm:"size:100"` // dimensão da sacola / descritor do produto
	Produto      string           `gorm:"size:100;not null"`
	Total        decimal.Decimal  `gorm:"type:decimal(20,4);not null"`
	Aparas       *decimal.Decimal `gorm:"type:decimal(20,4)"`
	Obs          string           `gorm:"type:text"`
	CreatedAt    time.Time        `gorm:"index"`
}

func (FichaCorte) TableName() string { return "fichas_corte" }
