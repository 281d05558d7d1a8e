package ficha

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

type AddExtrusaoRequest struct {
	OperadorNome    string           `json:"operador_nome"`
	OperadorCPF     string           `json:"operador_cpf"`
	OperadorMaquina string           `json:"operador_maquina"`
	Inicio          string           `json:"inicio"`
	Termino         string           `json:"termino"`
	ID              *uint            `json:"id"`      // referência autoritativa por id
	Produto         string           `json:"produto"` // caminho legado por nome
	Peso            *decimal.Decimal `json:"peso"`
	Aparas          *decimal.Decimal `json:"aparas"`
	Obs             string           `json:"obs"`
}

type AddCorteRequest struct {
	OperadorNome string           `json:"operador_nome"`
	OperadorCPF  string           `json:"operador_cpf"`
	Maquina      string           `json:"maquina"`
	Turno        string           `json:"turno"`
	SacolaDim    string           `json:"sacola_dim"`
	ID           *uint            `json:"id"`
	Produto      string           `json:"produto"`
	Total        *decimal.Decimal `json:"total"`
	Aparas       *decimal.Decimal `json:"aparas"`
	Obs          string           `json:"obs"`
}

// POST /ficha_extrusao/add
func AddExtrusaoHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddExtrusaoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		fichaID, err := RegistrarExtrusao(database.DB, ExtrusaoInput{
			OperadorNome: body.OperadorNome,
			OperadorCPF:  body.OperadorCPF,
			Maquina:      body.OperadorMaquina,
			Inicio:       body.Inicio,
			Termino:      body.Termino,
			Produto:      estoque.ProdutoRef{ID: body.ID, Nome: body.Produto},
			Peso:         body.Peso,
			Aparas:       body.Aparas,
			Obs:          body.Obs,
		})
		if err != nil {
			return traduzirErro(c, cfg, err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"mensagem": "Ficha de extrusão registrada com sucesso.",
			"fichaId":  fichaID,
		})
	}
}

// POST /ficha_corte/add
func AddCorteHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddCorteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		fichaID, err := RegistrarCorte(database.DB, CorteInput{
			OperadorNome: body.OperadorNome,
			OperadorCPF:  body.OperadorCPF,
			Maquina:      body.Maquina,
			Turno:        body.Turno,
			SacolaDim:    body.SacolaDim,
			Produto:      estoque.ProdutoRef{ID: body.ID, Nome: body.Produto},
			Total:        body.Total,
			Aparas:       body.Aparas,
			Obs:          body.Obs,
		})
		if err != nil {
			return traduzirErro(c, cfg, err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"mensagem": "Ficha de corte registrada com sucesso.",
			"fichaId":  fichaID,
		})
	}
}

// GET /ficha_extrusao?search=&page=&limit=&mes=YYYY-MM
func ListExtrusaoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit := paginacao(c)

		q := database.DB.Model(&models.FichaExtrusao{})
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			q = q.Where("operador_nome LIKE ? OR produto LIKE ?", "%"+search+"%", "%"+search+"%")
		}
		if mes := strings.TrimSpace(c.Query("mes")); mes != "" {
			de, ate, err := relatorio.JanelaMeses(mes, mes)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Parâmetro 'mes' deve estar no formato YYYY-MM.")
			}
			q = q.Where("inicio BETWEEN ? AND ?", de, ate)
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar fichas de extrusão.")
		}

		var fichas []models.FichaExtrusao
		if err := q.Order("inicio DESC, id DESC").
			Offset((page - 1) * limit).Limit(limit).
			Find(&fichas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar fichas de extrusão.")
		}

		return c.JSON(fiber.Map{
			"dados":  fichas,
			"total":  total,
			"pagina": page,
			"limite": limit,
		})
	}
}

// GET /ficha_corte?search=&page=&limit=&mes=YYYY-MM
func ListCorteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit := paginacao(c)

		q := database.DB.Model(&models.FichaCorte{})
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			q = q.Where("operador_nome LIKE ? OR produto LIKE ? OR sacola_dim LIKE ?",
				"%"+search+"%", "%"+search+"%", "%"+search+"%")
		}
		if mes := strings.TrimSpace(c.Query("mes")); mes != "" {
			de, ate, err := relatorio.JanelaMeses(mes, mes)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Parâmetro 'mes' deve estar no formato YYYY-MM.")
			}
			q = q.Where("created_at BETWEEN ? AND ?", de, ate)
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar fichas de corte.")
		}

		var fichas []models.FichaCorte
		if err := q.Order("created_at DESC, id DESC").
			Offset((page - 1) * limit).Limit(limit).
			Find(&fichas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar fichas de corte.")
		}

		return c.JSON(fiber.Map{
			"dados":  fichas,
			"total":  total,
			"pagina": page,
			"limite": limit,
		})
	}
}

// traduzirErro mapeia os erros do recorder para status HTTP. Falhas de
// persistência já chegam aqui com a transação desfeita.
func traduzirErro(c *fiber.Ctx, cfg *config.Config, err error) error {
	switch {
	case errors.Is(err, estoque.ErrProdutoNaoEncontrado):
		return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado.")
	case errors.Is(err, ErrCampoObrigatorio):
		return fiber.NewError(fiber.StatusBadRequest, "Campos obrigatórios ausentes.")
	case errors.Is(err, estoque.ErrQuantidadeInvalida):
		return fiber.NewError(fiber.StatusBadRequest, "Quantidade inválida: informe um número não negativo.")
	case errors.Is(err, ErrPeriodoInvalido):
		return fiber.NewError(fiber.StatusBadRequest, "Período inválido: término deve ser igual ou posterior ao início.")
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
