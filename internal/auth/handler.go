package auth

import (
	"regexp"
	"strings"
	"time"

	"fabrica-backend/internal/config"
	"fabrica-backend/internal/database"
	"fabrica-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type RegistroRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const senhaMinima = 6

// POST /auth/register
func RegisterHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegistroRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Senha == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email e senha são obrigatórios.")
		}
		if !emailRegex.MatchString(body.Email) {
			return fiber.NewError(fiber.StatusBadRequest, "Email inválido.")
		}
		if len(body.Senha) < senhaMinima {
			return fiber.NewError(fiber.StatusBadRequest, "Senha deve ter no mínimo 6 caracteres.")
		}

		var count int64
		database.DB.Model(&models.Usuario{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "E-mail já cadastrado.")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Senha), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro interno no servidor.")
		}

		usuario := models.Usuario{
			Email:     body.Email,
			SenhaHash: string(hash),
			RoleID:    models.RoleUser,
		}
		if err := database.DB.Create(&usuario).Error; err != nil {
			logrus.WithField("email", body.Email).Errorf("erro ao criar usuário: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro interno no servidor.")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"mensagem":  "Usuário registrado com sucesso.",
			"usuarioId": usuario.ID,
		})
	}
}

// POST /auth/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido.")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Senha == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email e senha são obrigatórios.")
		}

		var usuario models.Usuario
		if err := database.DB.Where("email = ?", body.Email).First(&usuario).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas.")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(body.Senha)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas.")
		}

		accessToken, err := GerarAccessToken(cfg.JWTAccessSecret, cfg.AccessTokenTTL, &usuario)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro interno no servidor.")
		}

		refreshToken, err := GerarRefreshToken(cfg.JWTRefreshSecret, cfg.RefreshTokenTTL, &usuario)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro interno no servidor.")
		}

		registro := models.RefreshToken{
			UsuarioID: usuario.ID,
			Token:     refreshToken,
			ExpiraEm:  time.Now().Add(cfg.RefreshTokenTTL),
		}
		if err := database.DB.Create(&registro).Error; err != nil {
			logrus.Errorf("erro ao salvar refresh token: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro interno no servidor.")
		}

		return c.JSON(fiber.Map{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		})
	}
}

// POST /auth/token — renova o access token a partir de um refresh token
// ainda persistido e não expirado.
func RenovarTokenHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RefreshRequest
		if err := c.BodyParser(&body); err != nil || body.RefreshToken == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Refresh token é obrigatório.")
		}

		var salvo models.RefreshToken
		err := database.DB.
			Where("token = ? AND expira_em > ?", body.RefreshToken, time.Now()).
			First(&salvo).Error
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Refresh token inválido ou expirado.")
		}

		claims, err := validarToken(cfg.JWTRefreshSecret, body.RefreshToken)
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Refresh token inválido.")
		}

		usuario := models.Usuario{
			ID:     claims.UsuarioID,
			Email:  claims.Email,
			RoleID: claims.RoleID,
		}
		accessToken, err := GerarAccessToken(cfg.JWTAccessSecret, cfg.AccessTokenTTL, &usuario)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro interno ao renovar token.")
		}

		return c.JSON(fiber.Map{"accessToken": accessToken})
	}
}

// POST /auth/logout
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RefreshRequest
		if err := c.BodyParser(&body); err != nil || body.RefreshToken == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Refresh token é obrigatório.")
		}

		if err := database.DB.Where("token = ?", body.RefreshToken).
			Delete(&models.RefreshToken{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro interno ao realizar logout.")
		}

		return c.JSON(fiber.Map{"mensagem": "Logout realizado com sucesso."})
	}
}

// GET /perfil
func PerfilHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"mensagem": "Você está autenticado",
			"usuario": fiber.Map{
				"id":      c.Locals(CtxUsuarioIDKey),
				"email":   c.Locals(CtxEmailKey),
				"role_id": c.Locals(CtxRoleIDKey),
			},
		})
	}
}
