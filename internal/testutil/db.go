package testutil

import (
	"testing"

	"fabrica-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NovoDB abre um banco sqlite em memória com o mesmo esquema do MySQL de
// produção, suficiente para exercitar os recorders e o agregador.
func NovoDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite em memória: %v", err)
	}

	err = db.AutoMigrate(
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
		t.Fatalf("migrando esquema de teste: %v", err)
	}

	return db
}
