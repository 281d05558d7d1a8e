package auth

import (
	"time"

	"fabrica-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UsuarioID uint   `json:"id"`
	Email     string `json:"email"`
	RoleID    int    `json:"role_id"`
	jwt.RegisteredClaims
}

func gerarToken(secret string, ttl time.Duration, usuario *models.Usuario) (string, error) {
	claims := &Claims{
		UsuarioID: usuario.ID,
		Email:     usuario.Email,
		RoleID:    usuario.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GerarAccessToken: token curto usado no header Authorization.
func GerarAccessToken(secret string, ttl time.Duration, usuario *models.Usuario) (string, error) {
	return gerarToken(secret, ttl, usuario)
}

// GerarRefreshToken: token longo, persistido em refresh_tokens até o logout.
func GerarRefreshToken(secret string, ttl time.Duration, usuario *models.Usuario) (string, error) {
	return gerarToken(secret, ttl, usuario)
}

func validarToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
