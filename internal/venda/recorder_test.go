package venda_test

import (
	"errors"
	"testing"

	"fabrica-backend/internal/estoque"
	"fabrica-backend/internal/models"
	"fabrica-backend/internal/testutil"
	"fabrica-backend/internal/venda"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func criarProduto(t *testing.T, db *gorm.DB, nome string, qtd int64) *models.Produto {
	t.Helper()
	p := models.Produto{Nome: nome, Quantidade: decimal.NewFromInt(qtd)}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("criando produto %q: %v", nome, err)
	}
	return &p
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestVendaDebitaEstoqueExato(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Sacola 40x50", 150)

	vendaID, err := venda.RegistrarVenda(db, venda.VendaInput{
		Produto: "Sacola 40x50",
		Cliente: "Mercado Central",
		Peso:    dec(50),
		Valor:   dec(300),
	})
	if err != nil {
		t.Fatalf("RegistrarVenda: %v", err)
	}
	if vendaID == 0 {
		t.Fatal("venda sem id")
	}

	atual, _ := estoque.ProdutoPorID(db, p.ID)
	if !atual.Quantidade.Equal(decimal.NewFromInt(100)) {
		t.Errorf("quantidade = %s, esperado exatamente 100", atual.Quantidade)
	}

	var registro models.Venda
	if err := db.First(&registro).Error; err != nil {
		t.Fatalf("venda não persistida: %v", err)
	}
	if registro.Produto != "Sacola 40x50" || registro.Cliente != "Mercado Central" {
		t.Errorf("venda = %+v", registro)
	}
}

func TestVendaSaldoInsuficienteNaoEscreveNada(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Sacola 40x50", 150)

	_, err := venda.RegistrarVenda(db, venda.VendaInput{
		Produto: "Sacola 40x50",
		Cliente: "Mercado Central",
		Peso:    dec(200),
		Valor:   dec(1200),
	})
	if !errors.Is(err, estoque.ErrSaldoInsuficiente) {
		t.Fatalf("esperado ErrSaldoInsuficiente, veio %v", err)
	}

	var vendas int64
	db.Model(&models.Venda{}).Count(&vendas)
	if vendas != 0 {
		t.Errorf("vendas = %d, esperado 0", vendas)
	}

	atual, _ := estoque.ProdutoPorID(db, p.ID)
	if !atual.Quantidade.Equal(decimal.NewFromInt(150)) {
		t.Errorf("quantidade = %s, esperado 150 (inalterada)", atual.Quantidade)
	}
}

func TestVendaProdutoInexistente(t *testing.T) {
	db := testutil.NovoDB(t)

	_, err := venda.RegistrarVenda(db, venda.VendaInput{
		Produto: "Produto Fantasma",
		Cliente: "Mercado Central",
		Peso:    dec(10),
		Valor:   dec(60),
	})
	if !errors.Is(err, estoque.ErrProdutoNaoEncontrado) {
		t.Fatalf("esperado ErrProdutoNaoEncontrado, veio %v", err)
	}
}

func TestVendaCamposObrigatorios(t *testing.T) {
	db := testutil.NovoDB(t)
	criarProduto(t, db, "Sacola 40x50", 150)

	casos := []venda.VendaInput{
		{Cliente: "Mercado Central", Peso: dec(10), Valor: dec(60)}, // sem produto
		{Produto: "Sacola 40x50", Peso: dec(10), Valor: dec(60)},    // sem cliente
		{Produto: "Sacola 40x50", Cliente: "Mercado Central", Valor: dec(60)}, // sem peso
		{Produto: "Sacola 40x50", Cliente: "Mercado Central", Peso: dec(10)},  // sem valor
	}

	for i, in := range casos {
		if _, err := venda.RegistrarVenda(db, in); !errors.Is(err, venda.ErrCampoObrigatorio) {
			t.Errorf("caso %d: esperado ErrCampoObrigatorio, veio %v", i, err)
		}
	}

	var vendas int64
	db.Model(&models.Venda{}).Count(&vendas)
	if vendas != 0 {
		t.Errorf("vendas = %d, esperado 0", vendas)
	}
}

func TestVendaSaldoExatoEsvaziaEstoque(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Sacola 40x50", 50)

	if _, err := venda.RegistrarVenda(db, venda.VendaInput{
		Produto: "Sacola 40x50",
		Cliente: "Mercado Central",
		Peso:    dec(50),
		Valor:   dec(300),
	}); err != nil {
		t.Fatalf("venda com saldo exato deveria passar: %v", err)
	}

	atual, _ := estoque.ProdutoPorID(db, p.ID)
	if !atual.Quantidade.IsZero() {
		t.Errorf("quantidade = %s, esperado 0", atual.Quantidade)
	}
}
