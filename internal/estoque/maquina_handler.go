package estoque

import (
	"strconv"
	"strings"

	"fabrica-backend/internal/database"
	"fabrica-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type MaquinaRequest struct {
	Nome string `json:"nome"`
}

// GET /maquinas
func ListMaquinasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var maquinas []models.Maquina
		if err := database.DB.Order("nome ASC").Find(&maquinas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar máquinas.")
		}
		return c.JSON(maquinas)
	}
}

// POST /maquinas/add
func CreateMaquinaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body MaquinaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		body.Nome = strings.TrimSpace(body.Nome)
		if body.Nome == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome da máquina é obrigatório.")
		}

		maquina := models.Maquina{Nome: body.Nome}
		if err := database.DB.Create(&maquina).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao criar máquina.")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"mensagem":  "Máquina cadastrada com sucesso.",
			"maquinaId": maquina.ID,
		})
	}
}

// PUT /maquinas/:id
func UpdateMaquinaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido.")
		}

		var maquina models.Maquina
		if err := database.DB.First(&maquina, uint(id)).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Máquina não encontrada.")
		}

		var body MaquinaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		if nome := strings.TrimSpace(body.Nome); nome != "" {
			maquina.Nome = nome
		}

		if err := database.DB.Save(&maquina).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao atualizar máquina.")
		}

		return c.JSON(fiber.Map{"mensagem": "Máquina atualizada com sucesso."})
	}
}

// DELETE /maquinas/:id
func DeleteMaquinaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido.")
		}

		res := database.DB.Delete(&models.Maquina{}, uint(id))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao remover máquina.")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Máquina não encontrada.")
		}

		return c.JSON(fiber.Map{"mensagem": "Máquina removida com sucesso."})
	}
}
