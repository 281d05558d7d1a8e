package relatorio_test

import (
	"testing"
	"time"

	"fabrica-backend/internal/models"
	"fabrica-backend/internal/relatorio"

	"github.com/shopspring/decimal"
)

func TestPlanilhaVendasIncluiAbaPorProduto(t *testing.T) {
	resumo := &relatorio.ResumoVendas{
		Linhas: []models.Venda{{
			Produto:   "Sacola 40x50",
			Cliente:   "Mercado Central",
			Peso:      decimal.NewFromInt(10),
			Valor:     decimal.NewFromInt(60),
			DataVenda: time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local),
		}},
		TotalPeso:  decimal.NewFromInt(10),
		TotalValor: decimal.NewFromInt(60),
	}
	porProduto := []relatorio.LinhaPorProduto{
		{Produto: relatorio.ProdutoNaoInformado, Peso: decimal.NewFromInt(7), Valor: decimal.NewFromInt(42)},
		{Produto: "Sacola 40x50", Peso: decimal.NewFromInt(10), Valor: decimal.NewFromInt(60)},
	}

	f, err := relatorio.PlanilhaVendas(resumo, porProduto)
	if err != nil {
		t.Fatalf("PlanilhaVendas: %v", err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex("Por produto"); err != nil || idx < 0 {
		t.Fatalf("aba 'Por produto' ausente: idx=%d err=%v", idx, err)
	}

	celula := func(ref string) string {
		v, err := f.GetCellValue("Por produto", ref)
		if err != nil {
			t.Fatalf("lendo %s: %v", ref, err)
		}
		return v
	}

	if celula("A1") != "Produto" {
		t.Errorf("A1 = %q, esperado cabeçalho Produto", celula("A1"))
	}
	if celula("A2") != relatorio.ProdutoNaoInformado {
		t.Errorf("A2 = %q, esperado %q", celula("A2"), relatorio.ProdutoNaoInformado)
	}
	if celula("B3") != "10" || celula("C3") != "60" {
		t.Errorf("acumulado da Sacola 40x50 = %s/%s, esperado 10/60", celula("B3"), celula("C3"))
	}
}
