package estoque

import (
	"strings"

	"fabrica-backend/internal/database"
	"fabrica-backend/internal/models"
	"fabrica-backend/internal/relatorio"

	"github.com/gofiber/fiber/v2"
)

// GET /historico/entrada?search=&page=&limit=&mes=YYYY-MM
// Listagem do histórico append-only de entradas de estoque.
func ListEntradasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit := paginacao(c)

		q := database.DB.Model(&models.EntradaEstoque{})
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			q = q.Where("produto_nome LIKE ? OR operador LIKE ?", "%"+search+"%", "%"+search+"%")
		}
		if mes := strings.TrimSpace(c.Query("mes")); mes != "" {
			de, ate, err := relatorio.JanelaMeses(mes, mes)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Parâmetro 'mes' deve estar no formato YYYY-MM.")
			}
			q = q.Where("data_entrada BETWEEN ? AND ?", de, ate)
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar histórico de entradas.")
		}

		var entradas []models.EntradaEstoque
		if err := q.Order("data_entrada DESC, id DESC").
			Offset((page - 1) * limit).Limit(limit).
			Find(&entradas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar histórico de entradas.")
		}

		return c.JSON(fiber.Map{
			"dados":  entradas,
			"total":  total,
			"pagina": page,
			"limite": limit,
		})
	}
}
