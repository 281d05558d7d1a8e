package venda

import (
	"errors"
	"time"

	"fabrica-backend/internal/estoque"
	"fabrica-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrCampoObrigatorio = errors.New("campo obrigatório ausente")

var validate = validator.New()

type VendaInput struct {
	Produto string `validate:"required"` // sempre por nome, caminho legado
	Cliente string `validate:"required"`
	Peso    *decimal.Decimal
	Valor   *decimal.Decimal
}

// RegistrarVenda insere a venda e debita o estoque do produto como uma
// unidade: ou os dois efeitos acontecem, ou nenhum. A checagem de saldo
// vem antes de qualquer escrita.
func RegistrarVenda(db *gorm.DB, in VendaInput) (uint, error) {
	if err := validate.Struct(in); err != nil {
		return 0, ErrCampoObrigatorio
	}
	if in.Peso == nil || in.Valor == nil {
		return 0, ErrCampoObrigatorio
	}
	if in.Peso.IsNegative() || in.Valor.IsNegative() {
		return 0, estoque.ErrQuantidadeInvalida
	}

	tx := db.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	produto, err := estoque.ProdutoPorNome(tx, in.Produto)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	if produto.Quantidade.LessThan(*in.Peso) {
		tx.Rollback()
		return 0, estoque.ErrSaldoInsuficiente
	}

	registro := models.Venda{
		Produto:   produto.Nome,
		Cliente:   in.Cliente,
		Peso:      *in.Peso,
		Valor:     *in.Valor,
		DataVenda: time.Now(),
	}
	if err := tx.Create(&registro).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := estoque.Debitar(tx, produto.ID, *in.Peso); err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return registro.ID, nil
}
