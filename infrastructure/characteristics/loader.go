package characteristics

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/intep/price-monitor/internal/config"
	"github.com/intep/price-monitor/internal/domain"
	"github.com/intep/price-monitor/pkg/log"
)

// Colunas da planilha de características de produto
const (
	columnProduct = "produto"
	columnClient  = "cliente"
	columnProject = "projeto"
	columnStatus  = "status"
)

// Product é o conjunto de características cadastrais de um código de produto.
type Product struct {
	Client  string
	Project string
	Status  string
}

// Loader carrega a planilha de características (xlsx ou csv) configurada.
type Loader struct {
	options config.Characteristics
}

func NewLoader(options config.Characteristics) *Loader {
	return &Loader{
		options: options,
	}
}

// Load devolve o mapa código de produto -> características. Planilha não
// configurada ou inexistente não é erro: o join degrada para "N/A".
func (l *Loader) Load(ctx context.Context) (map[string]Product, error) {
	if l.options.File == "" {
		log.L.Info("Planilha de características não configurada")
		return map[string]Product{}, nil
	}

	if _, err := os.Stat(l.options.File); err != nil {
		log.L.Warnf("Planilha de características não encontrada: %s", l.options.File)
		return map[string]Product{}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "carga de características interrompida")
	}

	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(l.options.File), ".xlsx") {
		rows, err = readXLSX(l.options.File)
	} else {
		rows, err = readCSV(l.options.File)
	}
	if err != nil {
		return nil, err
	}

	products := parseRows(rows)

	log.L.WithFields(log.Fields{
		"file":     filepath.Base(l.options.File),
		"products": len(products),
	}).Info("Características de produto carregadas")

	return products, nil
}

// Apply faz o join por código de produto, preenchendo as características de
// cada transação. Códigos sem cadastro ficam vazios e viram "N/A" no resumo.
func Apply(transactions []*domain.Transaction, products map[string]Product) {
	if len(products) == 0 {
		return
	}

	for _, transaction := range transactions {
		product, ok := products[transaction.ProductCode]
		if !ok {
			continue
		}
		transaction.CharClient = product.Client
		transaction.CharProject = product.Project
		transaction.CharStatus = product.Status
	}
}

func readXLSX(path string) ([][]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao abrir a planilha %s", path)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Errorf("planilha %s não tem abas", path)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler a aba %s de %s", sheets[0], path)
	}

	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler %s", path)
	}

	if !utf8.Valid(content) {
		content, err = charmap.ISO8859_1.NewDecoder().Bytes(content)
		if err != nil {
			return nil, errors.Wrapf(err, "falha ao decodificar %s como latin-1", path)
		}
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao interpretar o CSV %s", path)
	}

	return rows, nil
}

func parseRows(rows [][]string) map[string]Product {
	products := make(map[string]Product)
	if len(rows) < 2 {
		return products
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF")))] = i
	}
	if _, ok := columns[columnProduct]; !ok {
		log.L.Warnf("Planilha de características sem a coluna %q; ignorando", columnProduct)
		return products
	}

	field := func(row []string, column string) string {
		index, ok := columns[column]
		if !ok || index >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[index])
	}

	for _, row := range rows[1:] {
		code := field(row, columnProduct)
		if code == "" {
			continue
		}
		// Cadastros duplicados se complementam: em cada campo vale o
		// primeiro valor não vazio encontrado
		product := products[code]
		if product.Client == "" {
			product.Client = field(row, columnClient)
		}
		if product.Project == "" {
			product.Project = field(row, columnProject)
		}
		if product.Status == "" {
			product.Status = field(row, columnStatus)
		}
		products[code] = product
	}

	return products
}
