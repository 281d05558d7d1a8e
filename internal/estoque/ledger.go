package estoque

import (
	"errors"
	"strings"

	"fabrica-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProdutoAparas: produto-sentinela que acumula o crédito de aparas gerado
// pelas fichas. Precisa estar cadastrado com exatamente esse nome.
const ProdutoAparas = "Aparas"

var (
	ErrProdutoNaoEncontrado = errors.New("produto não encontrado")
	ErrSaldoInsuficiente    = errors.New("quantidade insuficiente em estoque")
	ErrQuantidadeInvalida   = errors.New("quantidade inválida")
)

// ProdutoRef referencia um produto por id (caminho autoritativo, usado pelas
// fichas) ou por nome (caminho legado, usado pelas vendas). Resolvida uma
// única vez por operação para um produto concreto, cujo nome é gravado como
// snapshot nos registros históricos.
type ProdutoRef struct {
	ID   *uint
	Nome string
}

func (r ProdutoRef) Resolve(db *gorm.DB) (*models.Produto, error) {
	if r.ID != nil {
		return ProdutoPorID(db, *r.ID)
	}
	if strings.TrimSpace(r.Nome) != "" {
		return ProdutoPorNome(db, r.Nome)
	}
	return nil, ErrProdutoNaoEncontrado
}

func ProdutoPorID(db *gorm.DB, id uint) (*models.Produto, error) {
	var p models.Produto
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdutoNaoEncontrado
		}
		return nil, err
	}
	return &p, nil
}

// ProdutoPorNome: busca por igualdade exata de nome, a chave de negócio.
func ProdutoPorNome(db *gorm.DB, nome string) (*models.Produto, error) {
	var p models.Produto
	if err := db.First(&p, "nome = ?", nome).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdutoNaoEncontrado
		}
		return nil, err
	}
	return &p, nil
}

// Creditar soma qtd ao saldo do produto. Deve rodar dentro da transação do
// chamador; o ledger não abre nem fecha transação.
func Creditar(tx *gorm.DB, produtoID uint, qtd decimal.Decimal) error {
	if qtd.IsNegative() {
		return ErrQuantidadeInvalida
	}
	return tx.Model(&models.Produto{}).
		Where("id = ?", produtoID).
		Update("quantidade", gorm.Expr("quantidade + ?", qtd)).Error
}

// Debitar subtrai qtd do saldo. A verificação de saldo suficiente fica no
// chamador, que conhece a mensagem de negócio; aqui é só o primitivo.
func Debitar(tx *gorm.DB, produtoID uint, qtd decimal.Decimal) error {
	if qtd.IsNegative() {
		return ErrQuantidadeInvalida
	}
	return tx.Model(&models.Produto{}).
		Where("id = ?", produtoID).
		Update("quantidade", gorm.Expr("quantidade - ?", qtd)).Error
}

// RegistrarEntrada insere uma linha no histórico append-only.
func RegistrarEntrada(tx *gorm.DB, entrada *models.EntradaEstoque) (uint, error) {
	if err := tx.Create(entrada).Error; err != nil {
		return 0, err
	}
	return entrada.ID, nil
}
