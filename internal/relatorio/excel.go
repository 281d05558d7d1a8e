package relatorio

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const (
	planilhaPadrao     = "Sheet1"
	planilhaPorProduto = "Por produto"
)

// Formatação mínima de saída; o agregador entrega linhas e totais prontos,
// aqui só viram células.

// PlanilhaVendas monta o workbook de vendas: a primeira aba traz as vendas
// do período com totais, a segunda o acumulado por produto.
func PlanilhaVendas(resumo *ResumoVendas, porProduto []LinhaPorProduto) (*excelize.File, error) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(planilhaPadrao); err != nil {
		return nil, err
	}

	cabecalho(f, planilhaPadrao, "Produto", "Cliente", "Peso", "Valor", "Data")
	linha := 2
	for _, v := range resumo.Linhas {
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("A%d", linha), v.Produto)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("B%d", linha), v.Cliente)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("C%d", linha), v.Peso.InexactFloat64())
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("D%d", linha), v.Valor.InexactFloat64())
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("E%d", linha), v.DataVenda.Format("2006-01-02 15:04"))
		linha++
	}

	f.SetCellValue(planilhaPadrao, fmt.Sprintf("A%d", linha+1), "Total")
	f.SetCellValue(planilhaPadrao, fmt.Sprintf("C%d", linha+1), resumo.TotalPeso.InexactFloat64())
	f.SetCellValue(planilhaPadrao, fmt.Sprintf("D%d", linha+1), resumo.TotalValor.InexactFloat64())

	if _, err := f.NewSheet(planilhaPorProduto); err != nil {
		return nil, err
	}
	cabecalho(f, planilhaPorProduto, "Produto", "Peso", "Valor")
	linha = 2
	for _, p := range porProduto {
		f.SetCellValue(planilhaPorProduto, fmt.Sprintf("A%d", linha), p.Produto)
		f.SetCellValue(planilhaPorProduto, fmt.Sprintf("B%d", linha), p.Peso.InexactFloat64())
		f.SetCellValue(planilhaPorProduto, fmt.Sprintf("C%d", linha), p.Valor.InexactFloat64())
		linha++
	}
	return f, nil
}

func PlanilhaExtrusao(resumo *ResumoExtrusao) (*excelize.File, error) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(planilhaPadrao); err != nil {
		return nil, err
	}

	cabecalho(f, planilhaPadrao, "Operador", "CPF", "Máquina", "Produto", "Início", "Término", "Peso", "Aparas", "Obs")
	linha := 2
	for _, ficha := range resumo.Linhas {
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("A%d", linha), ficha.OperadorNome)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("B%d", linha), ficha.OperadorCPF)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("C%d", linha), ficha.Maquina)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("D%d", linha), ficha.Produto)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("E%d", linha), ficha.Inicio.Format("2006-01-02 15:04"))
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("F%d", linha), ficha.Termino.Format("2006-01-02 15:04"))
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("G%d", linha), ficha.Peso.InexactFloat64())
		if ficha.Aparas != nil {
			f.SetCellValue(planilhaPadrao, fmt.Sprintf("H%d", linha), ficha.Aparas.InexactFloat64())
		}
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("I%d", linha), ficha.Obs)
		linha++
	}

	f.SetCellValue(planilhaPadrao, fmt.Sprintf("A%d", linha+1), "Total")
	f.SetCellValue(planilhaPadrao, fmt.Sprintf("G%d", linha+1), resumo.TotalPeso.InexactFloat64())
	f.SetCellValue(planilhaPadrao, fmt.Sprintf("H%d", linha+1), resumo.TotalAparas.InexactFloat64())
	return f, nil
}

func PlanilhaCorte(resumo *ResumoCorte) (*excelize.File, error) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(planilhaPadrao); err != nil {
		return nil, err
	}

	cabecalho(f, planilhaPadrao, "Operador", "CPF", "Máquina", "Turno", "Sacola", "Produto", "Total", "Aparas", "Obs")
	linha := 2
	for _, ficha := range resumo.Linhas {
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("A%d", linha), ficha.OperadorNome)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("B%d", linha), ficha.OperadorCPF)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("C%d", linha), ficha.Maquina)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("D%d", linha), ficha.Turno)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("E%d", linha), ficha.SacolaDim)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("F%d", linha), ficha.Produto)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("G%d", linha), ficha.Total.InexactFloat64())
		if ficha.Aparas != nil {
			f.SetCellValue(planilhaPadrao, fmt.Sprintf("H%d", linha), ficha.Aparas.InexactFloat64())
		}
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("I%d", linha), ficha.Obs)
		linha++
	}

	f.SetCellValue(planilhaPadrao, fmt.Sprintf("A%d", linha+1), "Total")
	f.SetCellValue(planilhaPadrao, fmt.Sprintf("G%d", linha+1), resumo.TotalGeral.InexactFloat64())
	f.SetCellValue(planilhaPadrao, fmt.Sprintf("H%d", linha+1), resumo.TotalAparas.InexactFloat64())
	return f, nil
}

func PlanilhaProdutos(linhas []LinhaProduto) (*excelize.File, error) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(planilhaPadrao); err != nil {
		return nil, err
	}

	cabecalho(f, planilhaPadrao, "Produto", "Quantidade", "Preço")
	l := 2
	for _, p := range linhas {
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("A%d", l), p.Chave)
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("B%d", l), p.Quantidade.InexactFloat64())
		f.SetCellValue(planilhaPadrao, fmt.Sprintf("C%d", l), p.Preco.InexactFloat64())
		l++
	}
	return f, nil
}

func cabecalho(f *excelize.File, planilha string, titulos ...string) {
	col := 'A'
	for _, t := range titulos {
		f.SetCellValue(planilha, string(col)+"1", t)
		col++
	}
}

// EnviarPlanilha escreve o workbook direto na resposta como anexo binário.
func EnviarPlanilha(c *fiber.Ctx, f *excelize.File, nome string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar a planilha.")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(buf.Bytes())
}
