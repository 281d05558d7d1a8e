package estoque

import (
	"strconv"
	"strings"

	"fabrica-backend/internal/database"
	"fabrica-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type MaterialRequest struct {
	Nome       string           `json:"nome"`
	Quantidade *decimal.Decimal `json:"quantidade"`
	Descricao  string           `json:"descricao"`
}

// GET /materiais?search=&page=&limit=
func ListMateriaisHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit := paginacao(c)

		q := database.DB.Model(&models.Material{})
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			q = q.Where("nome LIKE ?", "%"+search+"%")
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar materiais.")
		}

		var materiais []models.Material
		if err := q.Order("nome ASC").
			Offset((page - 1) * limit).Limit(limit).
			Find(&materiais).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar materiais.")
		}

		return c.JSON(fiber.Map{
			"dados":  materiais,
			"total":  total,
			"pagina": page,
			"limite": limit,
		})
	}
}

// POST /materiais/add
func CreateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body MaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		body.Nome = strings.TrimSpace(body.Nome)
		if body.Nome == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome do material é obrigatório.")
		}

		material := models.Material{Nome: body.Nome, Descricao: body.Descricao}
		if body.Quantidade != nil {
			if body.Quantidade.IsNegative() {
				return fiber.NewError(fiber.StatusBadRequest, "Quantidade não pode ser negativa.")
			}
			material.Quantidade = *body.Quantidade
		}

		if err := database.DB.Create(&material).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao criar material.")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"mensagem":   "Material cadastrado com sucesso.",
			"materialId": material.ID,
		})
	}
}

// PUT /materiais/:id
func UpdateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido.")
		}

		var material models.Material
		if err := database.DB.First(&material, uint(id)).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Material não encontrado.")
		}

		var body MaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		if nome := strings.TrimSpace(body.Nome); nome != "" {
			material.Nome = nome
		}
		if body.Quantidade != nil {
			if body.Quantidade.IsNegative() {
				return fiber.NewError(fiber.StatusBadRequest, "Quantidade não pode ser negativa.")
			}
			material.Quantidade = *body.Quantidade
		}
		if body.Descricao != "" {
			material.Descricao = body.Descricao
		}

		if err := database.DB.Save(&material).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao atualizar material.")
		}

		return c.JSON(fiber.Map{"mensagem": "Material atualizado com sucesso."})
	}
}

// DELETE /materiais/:id
func DeleteMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido.")
		}

		res := database.DB.Delete(&models.Material{}, uint(id))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao remover material.")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Material não encontrado.")
		}

		return c.JSON(fiber.Map{"mensagem": "Material removido com sucesso."})
	}
}
