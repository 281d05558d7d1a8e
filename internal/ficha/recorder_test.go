package ficha_test

import (
	"errors"
	"testing"

	"fabrica-backend/internal/estoque"
	"fabrica-backend/internal/ficha"
	"fabrica-backend/internal/models"
	"fabrica-backend/internal/testutil"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func criarProduto(t *testing.T, db *gorm.DB, nome string, qtd int64) *models.Produto {
	t.Helper()
	p := models.Produto{Nome: nome, Quantidade: decimal.NewFromInt(qtd)}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("criando produto %q: %v", nome, err)
	}
	return &p
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func extrusaoValida(p *models.Produto) ficha.ExtrusaoInput {
	return ficha.ExtrusaoInput{
		OperadorNome: "João",
		OperadorCPF:  "123.456.789-00",
		Maquina:      "Extrusora 1",
		Inicio:       "2024-03-01 08:00",
		Termino:      "2024-03-01 16:00",
		Produto:      estoque.ProdutoRef{ID: &p.ID},
		Peso:         dec(50),
	}
}

func TestExtrusaoCreditaProdutoERegistraEntrada(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Bobina 30cm", 100)

	fichaID, err := ficha.RegistrarExtrusao(db, extrusaoValida(p))
	if err != nil {
		t.Fatalf("RegistrarExtrusao: %v", err)
	}
	if fichaID == 0 {
		t.Fatal("ficha sem id")
	}

	atual, _ := estoque.ProdutoPorID(db, p.ID)
	if !atual.Quantidade.Equal(decimal.NewFromInt(150)) {
		t.Errorf("quantidade = %s, esperado 150", atual.Quantidade)
	}

	var fichas int64
	db.Model(&models.FichaExtrusao{}).Count(&fichas)
	if fichas != 1 {
		t.Errorf("fichas = %d, esperado 1", fichas)
	}

	var entrada models.EntradaEstoque
	if err := db.First(&entrada).Error; err != nil {
		t.Fatalf("entrada não registrada: %v", err)
	}
	if entrada.ProdutoID != p.ID || entrada.ProdutoNome != "Bobina 30cm" {
		t.Errorf("entrada = %+v, snapshot de produto incorreto", entrada)
	}
	if !entrada.Quantidade.Equal(decimal.NewFromInt(50)) {
		t.Errorf("entrada.Quantidade = %s, esperado 50", entrada.Quantidade)
	}
}

func TestExtrusaoSemProdutoAparas(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Bobina 30cm", 100)

	in := extrusaoValida(p)
	in.Aparas = dec(5)

	if _, err := ficha.RegistrarExtrusao(db, in); err != nil {
		t.Fatalf("ficha com aparas e sem produto 'Aparas' deveria passar: %v", err)
	}

	atual, _ := estoque.ProdutoPorID(db, p.ID)
	if !atual.Quantidade.Equal(decimal.NewFromInt(150)) {
		t.Errorf("quantidade = %s, esperado 150", atual.Quantidade)
	}

	// a quantidade de aparas fica na entrada mesmo sem o crédito
	var entrada models.EntradaEstoque
	if err := db.First(&entrada).Error; err != nil {
		t.Fatalf("entrada não registrada: %v", err)
	}
	if !entrada.Aparas.Equal(decimal.NewFromInt(5)) {
		t.Errorf("entrada.Aparas = %s, esperado 5", entrada.Aparas)
	}
}

func TestExtrusaoComProdutoAparas(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Bobina 30cm", 100)
	aparas := criarProduto(t, db, estoque.ProdutoAparas, 0)

	in := extrusaoValida(p)
	in.Aparas = dec(5)

	if _, err := ficha.RegistrarExtrusao(db, in); err != nil {
		t.Fatalf("RegistrarExtrusao: %v", err)
	}

	saldoAparas, _ := estoque.ProdutoPorID(db, aparas.ID)
	if !saldoAparas.Quantidade.Equal(decimal.NewFromInt(5)) {
		t.Errorf("saldo de Aparas = %s, esperado 5", saldoAparas.Quantidade)
	}
}

func TestExtrusaoPeriodoInvalidoNaoEscreveNada(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Bobina 30cm", 100)

	in := extrusaoValida(p)
	in.Inicio = "2024-03-02 08:00"
	in.Termino = "2024-03-01 08:00"

	if _, err := ficha.RegistrarExtrusao(db, in); !errors.Is(err, ficha.ErrPeriodoInvalido) {
		t.Fatalf("esperado ErrPeriodoInvalido, veio %v", err)
	}

	var fichas, entradas int64
	db.Model(&models.FichaExtrusao{}).Count(&fichas)
	db.Model(&models.EntradaEstoque{}).Count(&entradas)
	if fichas != 0 || entradas != 0 {
		t.Errorf("fichas=%d entradas=%d, esperado 0/0", fichas, entradas)
	}

	atual, _ := estoque.ProdutoPorID(db, p.ID)
	if !atual.Quantidade.Equal(decimal.NewFromInt(100)) {
		t.Errorf("quantidade = %s, esperado 100 (inalterada)", atual.Quantidade)
	}
}

func TestExtrusaoFalhaDeEscritaDesfazFichaECredito(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Bobina 30cm", 100)

	// sem a tabela de histórico o último passo da transação falha,
	// depois da ficha criada e do crédito aplicado
	if err := db.Migrator().DropTable(&models.EntradaEstoque{}); err != nil {
		t.Fatalf("removendo tabela de entradas: %v", err)
	}

	if _, err := ficha.RegistrarExtrusao(db, extrusaoValida(p)); err == nil {
		t.Fatal("registro deveria falhar com o histórico indisponível")
	}

	var fichas int64
	db.Model(&models.FichaExtrusao{}).Count(&fichas)
	if fichas != 0 {
		t.Errorf("fichas = %d, esperado 0 após rollback", fichas)
	}

	atual, _ := estoque.ProdutoPorID(db, p.ID)
	if !atual.Quantidade.Equal(decimal.NewFromInt(100)) {
		t.Errorf("quantidade = %s, esperado 100 (crédito desfeito)", atual.Quantidade)
	}
}

func TestExtrusaoProdutoInexistente(t *testing.T) {
	db := testutil.NovoDB(t)
	inexistente := uint(9999)

	in := ficha.ExtrusaoInput{
		OperadorNome: "João",
		OperadorCPF:  "123.456.789-00",
		Maquina:      "Extrusora 1",
		Inicio:       "2024-03-01",
		Termino:      "2024-03-02",
		Produto:      estoque.ProdutoRef{ID: &inexistente},
		Peso:         dec(50),
	}

	if _, err := ficha.RegistrarExtrusao(db, in); !errors.Is(err, estoque.ErrProdutoNaoEncontrado) {
		t.Fatalf("esperado ErrProdutoNaoEncontrado, veio %v", err)
	}

	var fichas int64
	db.Model(&models.FichaExtrusao{}).Count(&fichas)
	if fichas != 0 {
		t.Errorf("fichas = %d, esperado 0", fichas)
	}
}

func TestExtrusaoCamposObrigatorios(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Bobina 30cm", 100)

	in := extrusaoValida(p)
	in.OperadorNome = ""

	if _, err := ficha.RegistrarExtrusao(db, in); !errors.Is(err, ficha.ErrCampoObrigatorio) {
		t.Fatalf("esperado ErrCampoObrigatorio, veio %v", err)
	}
}

func TestExtrusaoPesoNegativo(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Bobina 30cm", 100)

	in := extrusaoValida(p)
	in.Peso = dec(-10)

	if _, err := ficha.RegistrarExtrusao(db, in); !errors.Is(err, estoque.ErrQuantidadeInvalida) {
		t.Fatalf("esperado ErrQuantidadeInvalida, veio %v", err)
	}
}

func TestExtrusaoSnapshotDeNomeSobreviveARename(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Bobina 30cm", 100)

	if _, err := ficha.RegistrarExtrusao(db, extrusaoValida(p)); err != nil {
		t.Fatalf("RegistrarExtrusao: %v", err)
	}

	if err := db.Model(&models.Produto{}).Where("id = ?", p.ID).
		Update("nome", "Bobina 35cm").Error; err != nil {
		t.Fatalf("renomeando produto: %v", err)
	}

	var registro models.FichaExtrusao
	if err := db.First(&registro).Error; err != nil {
		t.Fatalf("buscando ficha: %v", err)
	}
	if registro.Produto != "Bobina 30cm" {
		t.Errorf("ficha.Produto = %q, o snapshot deveria manter o nome original", registro.Produto)
	}
}

func TestCorteCreditaProduto(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Sacola 40x50", 10)

	in := ficha.CorteInput{
		OperadorNome: "Maria",
		OperadorCPF:  "987.654.321-00",
		Maquina:      "Cortadeira 2",
		Turno:        "manhã",
		SacolaDim:    "40x50",
		Produto:      estoque.ProdutoRef{ID: &p.ID},
		Total:        dec(200),
	}

	fichaID, err := ficha.RegistrarCorte(db, in)
	if err != nil {
		t.Fatalf("RegistrarCorte: %v", err)
	}
	if fichaID == 0 {
		t.Fatal("ficha sem id")
	}

	atual, _ := estoque.ProdutoPorID(db, p.ID)
	if !atual.Quantidade.Equal(decimal.NewFromInt(210)) {
		t.Errorf("quantidade = %s, esperado 210", atual.Quantidade)
	}
}

func TestCorteTotalDeveSerPositivo(t *testing.T) {
	db := testutil.NovoDB(t)
	p := criarProduto(t, db, "Sacola 40x50", 10)

	in := ficha.CorteInput{
		OperadorNome: "Maria",
		OperadorCPF:  "987.654.321-00",
		Maquina:      "Cortadeira 2",
		Produto:      estoque.ProdutoRef{ID: &p.ID},
		Total:        dec(0),
	}

	if _, err := ficha.RegistrarCorte(db, in); !errors.Is(err, estoque.ErrQuantidadeInvalida) {
		t.Fatalf("esperado ErrQuantidadeInvalida para total zero, veio %v", err)
	}
}
