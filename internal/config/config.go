package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort         string
	DatabaseDSN      string
	JWTAccessSecret  string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	CORSOrigins      string
	AppEnv           string // "production" esconde detalhes de erro nas respostas
}

func Load() *Config {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "3000"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "root:root@tcp(localhost:3306)/fabrica?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTAccessSecret:  getEnv("JWT_ACCESS_SECRET", ""),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", ""),
		AccessTokenTTL:   getDuration("JWT_ACCESS_EXPIRATION", 15*time.Minute),
		RefreshTokenTTL:  getDuration("JWT_REFRESH_EXPIRATION", 7*24*time.Hour),
		CORSOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		AppEnv:           getEnv("APP_ENV", "development"),
	}

	if cfg.JWTAccessSecret == "" {
		logrus.Fatal("JWT_ACCESS_SECRET não definido; obrigatório para subir o servidor")
	}
	if cfg.JWTRefreshSecret == "" {
		logrus.Fatal("JWT_REFRESH_SECRET não definido; obrigatório para subir o servidor")
	}
	if len(cfg.JWTAccessSecret) < 32 || len(cfg.JWTRefreshSecret) < 32 {
		logrus.Fatal("segredos JWT devem ter no mínimo 32 caracteres")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.WithField("variavel", key).Warnf("duração inválida %q, usando padrão %s", v, def)
		return def
	}
	return d
}
