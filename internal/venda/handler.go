package venda

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"fabrica-backend/internal/config"
	"fabrica-backend/internal/database"
	"fabrica-backend/internal/estoque"
	"fabrica-backend/internal/models"
	"fabrica-backend/internal/relatorio"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type VenderRequest struct {
	Produto string           `json:"produto"`
	Cliente string           `json:"cliente"`
	Peso    *decimal.Decimal `json:"peso"`
	Valor   *decimal.Decimal `json:"valor"`
}

type EditarVendaRequest struct {
	Produto *string          `json:"produto"`
	Cliente *string          `json:"cliente"`
	Peso    *decimal.Decimal `json:"peso"`
	Valor   *decimal.Decimal `json:"valor"`
}

// POST /vendas/vender
func VenderHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body VenderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		vendaID, err := RegistrarVenda(database.DB, VendaInput{
			Produto: body.Produto,
			Cliente: body.Cliente,
			Peso:    body.Peso,
			Valor:   body.Valor,
		})
		if err != nil {
			return traduzirErro(c, cfg, err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"mensagem": "Venda registrada com sucesso.",
			"vendaId":  vendaID,
		})
	}
}

// GET /vendas?search=&page=&limit=&mes=YYYY-MM
func ListVendasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit := paginacao(c)

		q := database.DB.Model(&models.Venda{})
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			q = q.Where("produto LIKE ? OR cliente LIKE ?", "%"+search+"%", "%"+search+"%")
		}
		if mes := strings.TrimSpace(c.Query("mes")); mes != "" {
			de, ate, err := relatorio.JanelaMeses(mes, mes)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Parâmetro 'mes' deve estar no formato YYYY-MM.")
			}
			q = q.Where("data_venda BETWEEN ? AND ?", de, ate)
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar vendas.")
		}

		var vendas []models.Venda
		if err := q.Order("data_venda DESC, id DESC").
			Offset((page - 1) * limit).Limit(limit).
			Find(&vendas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar vendas.")
		}

		return c.JSON(fiber.Map{
			"dados":  vendas,
			"total":  total,
			"pagina": page,
			"limite": limit,
		})
	}
}

// PUT /vendas/:id
// Edição simples de campos. Alterar o peso aqui NÃO reajusta o estoque do
// produto; inconsistência conhecida do desenho original, mantida de
// propósito até decisão do dono do produto.
func UpdateVendaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido.")
		}

		var registro models.Venda
		if err := database.DB.First(&registro, uint(id)).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Venda não encontrada.")
		}

		var body EditarVendaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		if body.Produto != nil && strings.TrimSpace(*body.Produto) != "" {
			registro.Produto = strings.TrimSpace(*body.Produto)
		}
		if body.Cliente != nil && strings.TrimSpace(*body.Cliente) != "" {
			registro.Cliente = strings.TrimSpace(*body.Cliente)
		}
		if body.Peso != nil {
			if body.Peso.IsNegative() {
				return fiber.NewError(fiber.StatusBadRequest, "Peso não pode ser negativo.")
			}
			registro.Peso = *body.Peso
		}
		if body.Valor != nil {
			if body.Valor.IsNegative() {
				return fiber.NewError(fiber.StatusBadRequest, "Valor não pode ser negativo.")
			}
			registro.Valor = *body.Valor
		}

		if err := database.DB.Save(&registro).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao atualizar venda.")
		}

		return c.JSON(fiber.Map{"mensagem": "Venda atualizada com sucesso."})
	}
}

// DELETE /vendas/:id
// Remoção também não devolve o peso ao estoque, pelo mesmo motivo do PUT.
func DeleteVendaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido.")
		}

		res := database.DB.Delete(&models.Venda{}, uint(id))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao remover venda.")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Venda não encontrada.")
		}

		return c.JSON(fiber.Map{"mensagem": "Venda removida com sucesso."})
	}
}

func traduzirErro(c *fiber.Ctx, cfg *config.Config, err error) error {
	switch {
	case errors.Is(err, estoque.ErrProdutoNaoEncontrado):
		return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado.")
	case errors.Is(err, estoque.ErrSaldoInsuficiente):
		return fiber.NewError(fiber.StatusBadRequest, "Quantidade insuficiente em estoque.")
	case errors.Is(err, ErrCampoObrigatorio):
		return fiber.NewError(fiber.StatusBadRequest, "Produto, cliente, peso e valor são obrigatórios.")
	case errors.Is(err, estoque.ErrQuantidadeInvalida):
		return fiber.NewError(fiber.StatusBadRequest, "Peso e valor devem ser números não negativos.")
	}

	logrus.WithFields(logrus.Fields{
		"rota":  c.Path(),
		"corpo": string(c.Body()),
		"hora":  time.Now().Format(time.RFC3339),
	}).Errorf("falha de persistência: %v", err)

	if cfg.AppEnv != "production" {
		return fiber.NewError(fiber.StatusInternalServerError, "Erro interno no servidor: "+err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Erro interno no servidor.")
}

func paginacao(c *fiber.Ctx) (int, int) {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
