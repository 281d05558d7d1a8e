package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntradaEstoque: linha do histórico de entradas. Append-only — nenhuma
// operação do sistema atualiza ou apaga entradas; é a trilha de auditoria
// dos créditos de estoque gerados pelas fichas.
type EntradaEstoque struct {
	ID          uint            `gorm:"primaryKey"`
	ProdutoID   uint            `gorm:"index;not null"`
	Quantidade  decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	DataEntrada time.Time       `gorm:"index;not null"`
	ProdutoNome string          `gorm:"size:100;not null"` // snapshot do nome no momento da entrada
	Operador    string          `gorm:"size:100"`
	Maquina     string          `gorm:"size:100"`
	Aparas      decimal.Decimal `gorm:"type:decimal(20,4);default:0"` // registrado mesmo quando o crédito de aparas foi pulado
}

func (EntradaEstoque) TableName() string { return "entradas_estoque" }
