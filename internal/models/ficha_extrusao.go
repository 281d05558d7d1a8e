package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FichaExtrusao: registro de uma rodada de produção na extrusora.
// Imutável depois de criada; guarda o NOME do produto no momento do
// registro, não o id — renomear o produto não reescreve o histórico.
type FichaExtrusao struct {
	ID           uint             `gorm:"primaryKey"`
	OperadorNome string           `gorm:"size:100;not null"`
	OperadorCPF  string           `gorm:"size:20;not null"`
	Maquina      string           `gorm:"size:100;not null"`
	Inicio       time.Time        `gorm:"not null"`
	Termino      time.Time        `gorm:"not null"` // sempre >= Inicio
	Produto      string           `gorm:"size:100;not null"`
	Peso         decimal.Decimal  `gorm:"type:decimal(20,4);not null"`
	Aparas       *decimal.Decimal `gorm:"type:decimal(20,4)"`
	Obs          string           `gorm:"type:text"`
	CreatedAt    time.Time        `gorm:"index"`
}

func (FichaExtrusao) TableName() string { return "fichas_extrusao" }
