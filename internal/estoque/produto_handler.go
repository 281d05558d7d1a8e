package estoque

import (
	"errors"
	"strconv"
	"strings"

	"fabrica-backend/internal/database"
	"fabrica-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ProdutoRequest struct {
	Nome       string           `json:"nome"`
	Preco      *decimal.Decimal `json:"preco"`
	Quantidade *decimal.Decimal `json:"quantidade"`
	Descricao  string           `json:"descricao"`
	Tipo       string           `json:"tipo"`
}

// GET /produtos?search=&page=&limit=
func ListProdutosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit := paginacao(c)

		q := database.DB.Model(&models.Produto{})
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			q = q.Where("nome LIKE ?", "%"+search+"%")
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar produtos.")
		}

		var produtos []models.Produto
		if err := q.Order("nome ASC").
			Offset((page - 1) * limit).Limit(limit).
			Find(&produtos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar produtos.")
		}

		return c.JSON(fiber.Map{
			"dados":  produtos,
			"total":  total,
			"pagina": page,
			"limite": limit,
		})
	}
}

// POST /produtos/add
func CreateProdutoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProdutoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		body.Nome = strings.TrimSpace(body.Nome)
		if body.Nome == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome do produto é obrigatório.")
		}

		produto := models.Produto{
			Nome:      body.Nome,
			Descricao: body.Descricao,
			Tipo:      body.Tipo,
		}
		if body.Preco != nil {
			produto.Preco = *body.Preco
		}
		if body.Quantidade != nil {
			if body.Quantidade.IsNegative() {
				return fiber.NewError(fiber.StatusBadRequest, "Quantidade não pode ser negativa.")
			}
			produto.Quantidade = *body.Quantidade
		}

		var count int64
		database.DB.Model(&models.Produto{}).Where("nome = ?", produto.Nome).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Produto já cadastrado.")
		}

		if err := database.DB.Create(&produto).Error; err != nil {
			logrus.Errorf("erro ao criar produto: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao criar produto.")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"mensagem":  "Produto cadastrado com sucesso.",
			"produtoId": produto.ID,
		})
	}
}

// PUT /produtos/:id
func UpdateProdutoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido.")
		}

		produto, err := ProdutoPorID(database.DB, uint(id))
		if err != nil {
			if errors.Is(err, ErrProdutoNaoEncontrado) {
				return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado.")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar produto.")
		}

		var body ProdutoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		if nome := strings.TrimSpace(body.Nome); nome != "" {
			produto.Nome = nome
		}
		if body.Preco != nil {
			produto.Preco = *body.Preco
		}
		if body.Quantidade != nil {
			if body.Quantidade.IsNegative() {
				return fiber.NewError(fiber.StatusBadRequest, "Quantidade não pode ser negativa.")
			}
			produto.Quantidade = *body.Quantidade
		}
		if body.Descricao != "" {
			produto.Descricao = body.Descricao
		}
		if body.Tipo != "" {
			produto.Tipo = body.Tipo
		}

		if err := database.DB.Save(produto).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao atualizar produto.")
		}

		return c.JSON(fiber.Map{"mensagem": "Produto atualizado com sucesso."})
	}
}

// DELETE /produtos/:id
func DeleteProdutoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido.")
		}

		res := database.DB.Delete(&models.Produto{}, uint(id))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao remover produto.")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado.")
		}

		return c.JSON(fiber.Map{"mensagem": "Produto removido com sucesso."})
	}
}

// paginacao: page >= 1, limit entre 1 e 100 (padrão 10).
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
