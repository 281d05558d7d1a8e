package relatorio

import (
	"fmt"
	"time"

	"fabrica-backend/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PeriodoRequest struct {
	Inicio string `json:"inicio"` // "YYYY-MM"
	Fim    string `json:"fim"`    // "YYYY-MM"
}

func janelaDoCorpo(c *fiber.Ctx) (time.Time, time.Time, error) {
	var body PeriodoRequest
	if err := c.BodyParser(&body); err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	de, ate, err := JanelaMeses(body.Inicio, body.Fim)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Período inválido: informe inicio e fim no formato YYYY-MM.")
	}
	return de, ate, nil
}

// POST /relatorio/vendas — {inicio, fim} → planilha de vendas do período.
func VendasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		de, ate, err := janelaDoCorpo(c)
		if err != nil {
			return err
		}

		resumo, err := VendasPorPeriodo(database.DB, de, ate)
		if err != nil {
			logrus.Errorf("relatório de vendas: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar relatório de vendas.")
		}

		porProduto, err := ResumoVendasPorProduto(database.DB)
		if err != nil {
			logrus.Errorf("relatório de vendas por produto: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar relatório de vendas.")
		}

		f, err := PlanilhaVendas(resumo, porProduto)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar a planilha.")
		}
		nome := fmt.Sprintf("relatorio-vendas-%s-a-%s.xlsx", de.Format("2006-01"), ate.Format("2006-01"))
		return EnviarPlanilha(c, f, nome)
	}
}

// POST /relatorio/extrusao
func ExtrusaoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		de, ate, err := janelaDoCorpo(c)
		if err != nil {
			return err
		}

		resumo, err := ExtrusoesPorPeriodo(database.DB, de, ate)
		if err != nil {
			logrus.Errorf("relatório de extrusão: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar relatório de extrusão.")
		}

		f, err := PlanilhaExtrusao(resumo)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar a planilha.")
		}
		nome := fmt.Sprintf("relatorio-extrusao-%s-a-%s.xlsx", de.Format("2006-01"), ate.Format("2006-01"))
		return EnviarPlanilha(c, f, nome)
	}
}

// POST /relatorio/corte
func CorteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		de, ate, err := janelaDoCorpo(c)
		if err != nil {
			return err
		}

		resumo, err := CortesPorPeriodo(database.DB, de, ate)
		if err != nil {
			logrus.Errorf("relatório de corte: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar relatório de corte.")
		}

		f, err := PlanilhaCorte(resumo)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar a planilha.")
		}
		nome := fmt.Sprintf("relatorio-corte-%s-a-%s.xlsx", de.Format("2006-01"), ate.Format("2006-01"))
		return EnviarPlanilha(c, f, nome)
	}
}

// POST /relatorio/produtos — fotografia completa da tabela de produtos.
func ProdutosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		linhas, err := ResumoProdutos(database.DB)
		if err != nil {
			logrus.Errorf("relatório de produtos: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar relatório de produtos.")
		}

		f, err := PlanilhaProdutos(linhas)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar a planilha.")
		}
		nome := fmt.Sprintf("relatorio-produtos-%s.xlsx", time.Now().Format("2006-01-02"))
		return EnviarPlanilha(c, f, nome)
	}
}
