package relatorio_test

import (
	"errors"
	"testing"
	"time"

	"fabrica-backend/internal/models"
	"fabrica-backend/internal/relatorio"
	"fabrica-backend/internal/testutil"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func criarVenda(t *testing.T, db *gorm.DB, produto string, peso, valor int64, quando time.Time) {
	t.Helper()
	v := models.Venda{
		Produto:   produto,
		Cliente:   "Cliente Teste",
		Peso:      decimal.NewFromInt(peso),
		Valor:     decimal.NewFromInt(valor),
		DataVenda: quando,
	}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("criando venda: %v", err)
	}
}

func TestJanelaMesesInclusivaComAnoBissexto(t *testing.T) {
	de, ate, err := relatorio.JanelaMeses("2024-01", "2024-02")
	if err != nil {
		t.Fatalf("JanelaMeses: %v", err)
	}

	if de.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("início da janela = %s, esperado 2024-01-01", de.Format("2006-01-02"))
	}
	// fevereiro de 2024 tem 29 dias
	if ate.Format("2006-01-02") != "2024-02-29" {
		t.Errorf("fim da janela = %s, esperado 2024-02-29", ate.Format("2006-01-02"))
	}
}

func TestJanelaMesesMesComum(t *testing.T) {
	_, ate, err := relatorio.JanelaMeses("2023-04", "2023-04")
	if err != nil {
		t.Fatalf("JanelaMeses: %v", err)
	}
	if ate.Format("2006-01-02") != "2023-04-30" {
		t.Errorf("fim da janela = %s, esperado 2023-04-30", ate.Format("2006-01-02"))
	}
}

func TestJanelaMesesInvalida(t *testing.T) {
	if _, _, err := relatorio.JanelaMeses("2024-13", "2024-01"); !errors.Is(err, relatorio.ErrPeriodoInvalido) {
		t.Errorf("mês 13: esperado ErrPeriodoInvalido, veio %v", err)
	}
	if _, _, err := relatorio.JanelaMeses("abc", "2024-01"); !errors.Is(err, relatorio.ErrPeriodoInvalido) {
		t.Errorf("formato inválido: esperado ErrPeriodoInvalido, veio %v", err)
	}
	if _, _, err := relatorio.JanelaMeses("2024-05", "2024-01"); !errors.Is(err, relatorio.ErrPeriodoInvalido) {
		t.Errorf("fim antes do início: esperado ErrPeriodoInvalido, veio %v", err)
	}
}

func TestVendasPorPeriodoFiltraETotaliza(t *testing.T) {
	db := testutil.NovoDB(t)

	dentro1 := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)
	dentro2 := time.Date(2024, 2, 29, 23, 30, 0, 0, time.Local) // último dia da janela
	fora := time.Date(2024, 3, 1, 0, 30, 0, 0, time.Local)

	criarVenda(t, db, "Sacola 40x50", 10, 60, dentro1)
	criarVenda(t, db, "Bobina 30cm", 20, 100, dentro2)
	criarVenda(t, db, "Sacola 40x50", 99, 999, fora)

	de, ate, err := relatorio.JanelaMeses("2024-01", "2024-02")
	if err != nil {
		t.Fatalf("JanelaMeses: %v", err)
	}

	resumo, err := relatorio.VendasPorPeriodo(db, de, ate)
	if err != nil {
		t.Fatalf("VendasPorPeriodo: %v", err)
	}

	if len(resumo.Linhas) != 2 {
		t.Fatalf("linhas = %d, esperado 2", len(resumo.Linhas))
	}
	if !resumo.TotalPeso.Equal(decimal.NewFromInt(30)) {
		t.Errorf("TotalPeso = %s, esperado 30", resumo.TotalPeso)
	}
	if !resumo.TotalValor.Equal(decimal.NewFromInt(160)) {
		t.Errorf("TotalValor = %s, esperado 160", resumo.TotalValor)
	}
}

func TestResumoVendasPorProdutoComFallback(t *testing.T) {
	db := testutil.NovoDB(t)
	agora := time.Now()

	criarVenda(t, db, "Sacola 40x50", 10, 60, agora)
	criarVenda(t, db, "Sacola 40x50", 5, 30, agora)
	criarVenda(t, db, "", 7, 42, agora) // sem nome de produto

	linhas, err := relatorio.ResumoVendasPorProduto(db)
	if err != nil {
		t.Fatalf("ResumoVendasPorProduto: %v", err)
	}

	if len(linhas) != 2 {
		t.Fatalf("linhas = %d, esperado 2", len(linhas))
	}

	porChave := make(map[string]relatorio.LinhaPorProduto)
	for _, l := range linhas {
		porChave[l.Produto] = l
	}

	naoInformado, ok := porChave[relatorio.ProdutoNaoInformado]
	if !ok {
		t.Fatalf("linha %q ausente; linha sem produto foi descartada", relatorio.ProdutoNaoInformado)
	}
	if !naoInformado.Peso.Equal(decimal.NewFromInt(7)) || !naoInformado.Valor.Equal(decimal.NewFromInt(42)) {
		t.Errorf("Não informado = %+v, esperado peso 7 valor 42", naoInformado)
	}

	sacola := porChave["Sacola 40x50"]
	if !sacola.Peso.Equal(decimal.NewFromInt(15)) || !sacola.Valor.Equal(decimal.NewFromInt(90)) {
		t.Errorf("Sacola 40x50 = %+v, esperado peso 15 valor 90", sacola)
	}
}

func TestResumoProdutosComChaveComposta(t *testing.T) {
	db := testutil.NovoDB(t)

	if err := db.Create(&models.Produto{
		Nome:       "Bobina 30cm",
		Tipo:       "extrusão",
		Quantidade: decimal.NewFromInt(12),
		Preco:      decimal.NewFromInt(8),
	}).Error; err != nil {
		t.Fatalf("criando produto: %v", err)
	}
	if err := db.Create(&models.Produto{
		Nome:       "Aparas",
		Quantidade: decimal.NewFromInt(3),
	}).Error; err != nil {
		t.Fatalf("criando produto: %v", err)
	}

	linhas, err := relatorio.ResumoProdutos(db)
	if err != nil {
		t.Fatalf("ResumoProdutos: %v", err)
	}
	if len(linhas) != 2 {
		t.Fatalf("linhas = %d, esperado 2", len(linhas))
	}

	if linhas[0].Chave != "Aparas" {
		t.Errorf("chave sem tipo = %q, esperado \"Aparas\"", linhas[0].Chave)
	}
	if linhas[1].Chave != "Bobina 30cm (extrusão)" {
		t.Errorf("chave composta = %q, esperado \"Bobina 30cm (extrusão)\"", linhas[1].Chave)
	}
}

func TestEntradasPorPeriodo(t *testing.T) {
	db := testutil.NovoDB(t)

	dentro := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	fora := time.Date(2023, 12, 31, 10, 0, 0, 0, time.Local)

	for _, quando := range []time.Time{dentro, fora} {
		e := models.EntradaEstoque{
			ProdutoID:   1,
			Quantidade:  decimal.NewFromInt(10),
			DataEntrada: quando,
			ProdutoNome: "Bobina 30cm",
		}
		if err := db.Create(&e).Error; err != nil {
			t.Fatalf("criando entrada: %v", err)
		}
	}

	de, ate, _ := relatorio.JanelaMeses("2024-01", "2024-01")
	entradas, err := relatorio.EntradasPorPeriodo(db, de, ate)
	if err != nil {
		t.Fatalf("EntradasPorPeriodo: %v", err)
	}
	if len(entradas) != 1 {
		t.Errorf("entradas = %d, esperado 1", len(entradas))
	}
}
