package database

import (
	"fabrica-backend/internal/config"
	"fabrica-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("não foi possível conectar ao banco: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Usuario{},
		&models.RefreshToken{},
		&models.Produto{},
		&models.Material{},
		&models.Maquina{},
		&models.FichaExtrusao{},
		&models.FichaCorte{},
		&models.EntradaEstoque{},
		&models.Venda{},
	)
	if err != nil {
		logrus.Fatalf("erro no AutoMigrate: %v", err)
	}

	logrus.Info("conexão com o banco estabelecida, migração concluída")
}
