package ficha

import (
	"errors"
	"time"

	"fabrica-backend/internal/estoque"
	"fabrica-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCampoObrigatorio = errors.New("campo obrigatório ausente")
	ErrPeriodoInvalido  = errors.New("período inválido: término anterior ao início")
)

var validate = validator.New()

// Formatos de data aceitos nos campos inicio/termino.
var formatosData = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseData(s string) (time.Time, error) {
	for _, f := range formatosData {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrPeriodoInvalido
}

type ExtrusaoInput struct {
	OperadorNome string `validate:"required"`
	OperadorCPF  string `validate:"required"`
	Maquina      string `validate:"required"`
	Inicio       string `validate:"required"`
	Termino      string `validate:"required"`
	Produto      estoque.ProdutoRef
	Peso         *decimal.Decimal
	Aparas       *decimal.Decimal
	Obs          string
}

type CorteInput struct {
	OperadorNome string `validate:"required"`
	OperadorCPF  string `validate:"required"`
	Maquina      string `validate:"required"`
	Turno        string
	SacolaDim    string
	Produto      estoque.ProdutoRef
	Total        *decimal.Decimal
	Aparas       *decimal.Decimal
	Obs          string
}

// RegistrarExtrusao grava a ficha, credita o produto, credita as aparas
// quando o produto "Aparas" existe e anexa a entrada no histórico — tudo em
// uma única transação. Qualquer falha desfaz o conjunto inteiro.
func RegistrarExtrusao(db *gorm.DB, in ExtrusaoInput) (uint, error) {
	if err := validate.Struct(in); err != nil {
		return 0, ErrCampoObrigatorio
	}
	if in.Peso == nil {
		return 0, estoque.ErrQuantidadeInvalida
	}
	if in.Peso.IsNegative() {
		return 0, estoque.ErrQuantidadeInvalida
	}
	if in.Aparas != nil && in.Aparas.IsNegative() {
		return 0, estoque.ErrQuantidadeInvalida
	}

	inicio, err := parseData(in.Inicio)
	if err != nil {
		return 0, ErrPeriodoInvalido
	}
	termino, err := parseData(in.Termino)
	if err != nil {
		return 0, ErrPeriodoInvalido
	}
	if termino.Before(inicio) {
		return 0, ErrPeriodoInvalido
	}

	tx := db.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	produto, err := in.Produto.Resolve(tx)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	registro := models.FichaExtrusao{
		OperadorNome: in.OperadorNome,
		OperadorCPF:  in.OperadorCPF,
		Maquina:      in.Maquina,
		Inicio:       inicio,
		Termino:      termino,
		Produto:      produto.Nome, // snapshot: renomear o produto não altera a ficha
		Peso:         *in.Peso,
		Aparas:       in.Aparas,
		Obs:          in.Obs,
	}
	if err := tx.Create(&registro).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := creditarProducao(tx, produto, *in.Peso, in.OperadorNome, in.Maquina, in.Aparas); err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return registro.ID, nil
}

// RegistrarCorte: mesma unidade atômica da extrusão, sem o par de datas;
// o total produzido precisa ser maior que zero.
func RegistrarCorte(db *gorm.DB, in CorteInput) (uint, error) {
	if err := validate.Struct(in); err != nil {
		return 0, ErrCampoObrigatorio
	}
	if in.Total == nil || !in.Total.IsPositive() {
		return 0, estoque.ErrQuantidadeInvalida
	}
	if in.Aparas != nil && in.Aparas.IsNegative() {
		return 0, estoque.ErrQuantidadeInvalida
	}

	tx := db.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	produto, err := in.Produto.Resolve(tx)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	registro := models.FichaCorte{
		OperadorNome: in.OperadorNome,
		OperadorCPF:  in.OperadorCPF,
		Maquina:      in.Maquina,
		Turno:        in.Turno,
		SacolaDim:    in.SacolaDim,
		Produto:      produto.Nome,
		Total:        *in.Total,
		Aparas:       in.Aparas,
		Obs:          in.Obs,
	}
	if err := tx.Create(&registro).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := creditarProducao(tx, produto, *in.Total, in.OperadorNome, in.Maquina, in.Aparas); err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return registro.ID, nil
}

// creditarProducao: crédito do produto alvo, crédito de aparas quando
// aplicável e a linha do histórico. Roda dentro da transação do chamador.
func creditarProducao(tx *gorm.DB, produto *models.Produto, qtd decimal.Decimal, operador, maquina string, aparasIn *decimal.Decimal) error {
	if err := estoque.Creditar(tx, produto.ID, qtd); err != nil {
		return err
	}

	aparas := decimal.Zero
	if aparasIn != nil {
		aparas = *aparasIn
	}

	if aparas.IsPositive() {
		alvo, err := estoque.ProdutoPorNome(tx, estoque.ProdutoAparas)
		switch {
		case err == nil:
			if err := estoque.Creditar(tx, alvo.ID, aparas); err != nil {
				return err
			}
		case errors.Is(err, estoque.ErrProdutoNaoEncontrado):
			// Sem produto "Aparas" cadastrado o crédito é pulado; a ficha
			// segue válida e a quantidade fica registrada na entrada abaixo.
			logrus.WithFields(logrus.Fields{
				"produto": produto.Nome,
				"aparas":  aparas,
			}).Warn("produto 'Aparas' não cadastrado; crédito de aparas ignorado")
		default:
			return err
		}
	}

	entrada := models.EntradaEstoque{
		ProdutoID:   produto.ID,
		Quantidade:  qtd,
		DataEntrada: time.Now(),
		ProdutoNome: produto.Nome,
		Operador:    operador,
		Maquina:     maquina,
		Aparas:      aparas,
	}
	if _, err := estoque.RegistrarEntrada(tx, &entrada); err != nil {
		return err
	}
	return nil
}
