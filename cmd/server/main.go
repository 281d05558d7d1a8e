package main

import (
	"strings"

	"fabrica-backend/internal/auth"
	"fabrica-backend/internal/config"
	"fabrica-backend/internal/database"
	"fabrica-backend/internal/estoque"
	"fabrica-backend/internal/ficha"
	"fabrica-backend/internal/relatorio"
	"fabrica-backend/internal/venda"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"erro": e.Message,
				})
			}
			logrus.Errorf("erro não tratado: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"erro": "Erro interno no servidor.",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Autenticação (pública)
	app.Post("/auth/register", auth.RegisterHandler())
	app.Post("/auth/login", auth.LoginHandler(cfg))
	app.Post("/auth/token", auth.RenovarTokenHandler(cfg))
	app.Post("/auth/logout", auth.LogoutHandler())

	// Relatórios de período de vendas e extrusão ficam fora da parede de
	// autenticação; os demais relatórios não.
	app.Post("/relatorio/vendas", relatorio.VendasHandler())
	app.Post("/relatorio/extrusao", relatorio.ExtrusaoHandler())

	protected := app.Group("")
	protected.Use(auth.Middleware(cfg))

	protected.Get("/perfil", auth.PerfilHandler())

	// Fichas de produção
	protected.Post("/ficha_extrusao/add", ficha.AddExtrusaoHandler(cfg))
	protected.Get("/ficha_extrusao", ficha.ListExtrusaoHandler())
	protected.Post("/ficha_corte/add", ficha.AddCorteHandler(cfg))
	protected.Get("/ficha_corte", ficha.ListCorteHandler())

	// Vendas
	protected.Post("/vendas/vender", venda.VenderHandler(cfg))
	protected.Get("/vendas", venda.ListVendasHandler())
	protected.Put("/vendas/:id", venda.UpdateVendaHandler())
	protected.Delete("/vendas/:id", venda.DeleteVendaHandler())

	// Histórico de entradas (append-only)
	protected.Get("/historico/entrada", estoque.ListEntradasHandler())

	// Produtos
	protected.Get("/produtos", estoque.ListProdutosHandler())
	protected.Post("/produtos/add", estoque.CreateProdutoHandler())
	protected.Put("/produtos/:id", estoque.UpdateProdutoHandler())
	protected.Delete("/produtos/:id", estoque.DeleteProdutoHandler())

	// Materiais
	protected.Get("/materiais", estoque.ListMateriaisHandler())
	protected.Post("/materiais/add", estoque.CreateMaterialHandler())
	protected.Put("/materiais/:id", estoque.UpdateMaterialHandler())
	protected.Delete("/materiais/:id", estoque.DeleteMaterialHandler())

	// Máquinas
	protected.Get("/maquinas", estoque.ListMaquinasHandler())
	protected.Post("/maquinas/add", estoque.CreateMaquinaHandler())
	protected.Put("/maquinas/:id", estoque.UpdateMaquinaHandler())
	protected.Delete("/maquinas/:id", estoque.DeleteMaquinaHandler())

	// Demais relatórios (protegidos)
	protected.Post("/relatorio/corte", relatorio.CorteHandler())
	protected.Post("/relatorio/produtos", relatorio.ProdutosHandler())

	logrus.Infof("servidor rodando na porta %s", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logrus.Fatal(err)
	}
}
