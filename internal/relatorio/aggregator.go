package relatorio

import (
	"errors"
	"sort"
	"strings"
	"time"

	"fabrica-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProdutoNaoInformado: chave de agrupamento para linhas sem nome de produto,
// para que nenhuma linha seja descartada do agregado.
const ProdutoNaoInformado = "Não informado"

var ErrPeriodoInvalido = errors.New("período de meses inválido")

// JanelaMeses converte um par de meses "YYYY-MM" na janela fechada que vai
// do primeiro dia do mês inicial ao último instante do último dia do mês
// final (AddDate absorve meses de 28 a 31 dias).
func JanelaMeses(inicio, fim string) (time.Time, time.Time, error) {
	de, err := time.ParseInLocation("2006-01", strings.TrimSpace(inicio), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrPeriodoInvalido
	}
	ate, err := time.ParseInLocation("2006-01", strings.TrimSpace(fim), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrPeriodoInvalido
	}

	ultimoDia := ate.AddDate(0, 1, -1)
	fimJanela := time.Date(ultimoDia.Year(), ultimoDia.Month(), ultimoDia.Day(),
		23, 59, 59, 0, time.Local)

	if fimJanela.Before(de) {
		return time.Time{}, time.Time{}, ErrPeriodoInvalido
	}
	return de, fimJanela, nil
}

type ResumoVendas struct {
	Linhas     []models.Venda
	TotalPeso  decimal.Decimal
	TotalValor decimal.Decimal
}

func VendasPorPeriodo(db *gorm.DB, de, ate time.Time) (*ResumoVendas, error) {
	var vendas []models.Venda
	if err := db.Where("data_venda BETWEEN ? AND ?", de, ate).
		Order("data_venda ASC, id ASC").
		Find(&vendas).Error; err != nil {
		return nil, err
	}

	resumo := &ResumoVendas{Linhas: vendas}
	for _, v := range vendas {
		resumo.TotalPeso = resumo.TotalPeso.Add(v.Peso)
		resumo.TotalValor = resumo.TotalValor.Add(v.Valor)
	}
	return resumo, nil
}

type ResumoExtrusao struct {
	Linhas      []models.FichaExtrusao
	TotalPeso   decimal.Decimal
	TotalAparas decimal.Decimal
}

func ExtrusoesPorPeriodo(db *gorm.DB, de, ate time.Time) (*ResumoExtrusao, error) {
	var fichas []models.FichaExtrusao
	if err := db.Where("inicio BETWEEN ? AND ?", de, ate).
		Order("inicio ASC, id ASC").
		Find(&fichas).Error; err != nil {
		return nil, err
	}

	resumo := &ResumoExtrusao{Linhas: fichas}
	for _, f := range fichas {
		resumo.TotalPeso = resumo.TotalPeso.Add(f.Peso)
		if f.Aparas != nil {
			resumo.TotalAparas = resumo.TotalAparas.Add(*f.Aparas)
		}
	}
	return resumo, nil
}

type ResumoCorte struct {
	Linhas      []models.FichaCorte
	TotalGeral  decimal.Decimal
	TotalAparas decimal.Decimal
}

func CortesPorPeriodo(db *gorm.DB, de, ate time.Time) (*ResumoCorte, error) {
	var fichas []models.FichaCorte
	if err := db.Where("created_at BETWEEN ? AND ?", de, ate).
		Order("created_at ASC, id ASC").
		Find(&fichas).Error; err != nil {
		return nil, err
	}

	resumo := &ResumoCorte{Linhas: fichas}
	for _, f := range fichas {
		resumo.TotalGeral = resumo.TotalGeral.Add(f.Total)
		if f.Aparas != nil {
			resumo.TotalAparas = resumo.TotalAparas.Add(*f.Aparas)
		}
	}
	return resumo, nil
}

func EntradasPorPeriodo(db *gorm.DB, de, ate time.Time) ([]models.EntradaEstoque, error) {
	var entradas []models.EntradaEstoque
	if err := db.Where("data_entrada BETWEEN ? AND ?", de, ate).
		Order("data_entrada ASC, id ASC").
		Find(&entradas).Error; err != nil {
		return nil, err
	}
	return entradas, nil
}

type LinhaPorProduto struct {
	Produto string
	Peso    decimal.Decimal
	Valor   decimal.Decimal
}

// ResumoVendasPorProduto: totais acumulados de peso e valor por nome de
// produto (desnormalizado), com fallback "Não informado".
func ResumoVendasPorProduto(db *gorm.DB) ([]LinhaPorProduto, error) {
	var vendas []models.Venda
	if err := db.Find(&vendas).Error; err != nil {
		return nil, err
	}

	porProduto := make(map[string]*LinhaPorProduto)
	for _, v := range vendas {
		chave := strings.TrimSpace(v.Produto)
		if chave == "" {
			chave = ProdutoNaoInformado
		}
		linha, ok := porProduto[chave]
		if !ok {
			linha = &LinhaPorProduto{Produto: chave}
			porProduto[chave] = linha
		}
		linha.Peso = linha.Peso.Add(v.Peso)
		linha.Valor = linha.Valor.Add(v.Valor)
	}

	linhas := make([]LinhaPorProduto, 0, len(porProduto))
	for _, l := range porProduto {
		linhas = append(linhas, *l)
	}
	sort.Slice(linhas, func(i, j int) bool { return linhas[i].Produto < linhas[j].Produto })
	return linhas, nil
}

type LinhaProduto struct {
	Chave      string // "nome (tipo)" quando o tipo está preenchido
	Quantidade decimal.Decimal
	Preco      decimal.Decimal
}

// ResumoProdutos: fotografia da tabela de produtos para o relatório geral.
func ResumoProdutos(db *gorm.DB) ([]LinhaProduto, error) {
	var produtos []models.Produto
	if err := db.Order("nome ASC").Find(&produtos).Error; err != nil {
		return nil, err
	}

	linhas := make([]LinhaProduto, 0, len(produtos))
	for _, p := range produtos {
		chave := strings.TrimSpace(p.Nome)
		if chave == "" {
			chave = ProdutoNaoInformado
		}
		if tipo := strings.TrimSpace(p.Tipo); tipo != "" {
			chave = chave + " (" + tipo + ")"
		}
		linhas = append(linhas, LinhaProduto{
			Chave:      chave,
			Quantidade: p.Quantidade,
			Preco:      p.Preco,
		})
	}
	return linhas, nil
}
