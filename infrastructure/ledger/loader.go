package ledger

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/intep/price-monitor/internal/config"
	"github.com/intep/price-monitor/internal/domain"
	"github.com/intep/price-monitor/pkg/log"
	"github.com/intep/price-monitor/pkg/utils"
)

// Nomes de coluna do export "Faturamento por Produto" do ERP
const (
	columnProductCode = "Cód. Produto"
	columnDescription = "Descrição"
	columnClientCode  = "Cód. Cliente"
	columnClientName  = "Nome"
	columnDate        = "Data NF"
	columnQuantity    = "Quantidade"
	columnTotal       = "Total"
	columnICMS        = "ICMS"
	columnPISDebit    = "PIS Débito"
	columnCofinsDebit = "Cofins Débito"
	columnGroup       = "Grupo"
)

// Loader descobre e carrega os arquivos CSV do ledger de faturamento.
type Loader struct {
	options config.Ledger
}

func NewLoader(options config.Ledger) *Loader {
	return &Loader{
		options: options,
	}
}

// Load lê todos os arquivos do diretório configurado cujo nome começa com o
// prefixo do export. A ordem de leitura é o nome do arquivo, para que cargas
// repetidas produzam o mesmo dataset.
func (l *Loader) Load(ctx context.Context) ([]*domain.Transaction, error) {
	files, err := l.discover()
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "carga do ledger interrompida")
		}

		fileTransactions, err := l.loadFile(file)
		if err != nil {
			// Um arquivo ilegível não derruba a carga dos demais
			log.L.WithFields(log.Fields{
				"file": filepath.Base(file),
			}).Errorf("Falha ao carregar arquivo do ledger: %v", err)
			continue
		}

		log.L.WithFields(log.Fields{
			"file": filepath.Base(file),
			"rows": len(fileTransactions),
		}).Info("Arquivo do ledger carregado")

		transactions = append(transactions, fileTransactions...)
	}

	return transactions, nil
}

func (l *Loader) discover() ([]string, error) {
	entries, err := os.ReadDir(l.options.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao listar o diretório do ledger %s", l.options.Dir)
	}

	files := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, l.options.FilePrefix) && strings.EqualFold(filepath.Ext(name), ".csv") {
			files = append(files, filepath.Join(l.options.Dir, name))
		}
	}

	if len(files) == 0 {
		return nil, errors.Errorf(
			"nenhum arquivo %q*.csv encontrado em %s",
			l.options.FilePrefix, l.options.Dir,
		)
	}

	sort.Strings(files)

	return files, nil
}

func (l *Loader) loadFile(path string) ([]*domain.Transaction, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler %s", path)
	}

	// Exports antigos do ERP vêm em latin-1
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

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao interpretar o CSV %s", path)
	}
	if len(records) < 2 {
		log.L.Warnf("Arquivo %s não tem linhas de dados", filepath.Base(path))
		return nil, nil
	}

	columns := headerIndex(records[0])
	if _, ok := columns[columnProductCode]; !ok {
		return nil, errors.Errorf("coluna %q ausente em %s", columnProductCode, path)
	}

	_, hasGroup := columns[columnGroup]
	sourceFile := filepath.Base(path)

	transactions := make([]*domain.Transaction, 0, len(records)-1)
	for _, record := range records[1:] {
		transaction := parseRecord(record, columns, sourceFile)
		if transaction.ProductCode == "" {
			continue
		}

		// O filtro de grupo só se aplica quando o export traz a coluna
		if hasGroup && !analyzableGroup(transaction.Group) {
			continue
		}

		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}
	return columns
}

func parseRecord(record []string, columns map[string]int, sourceFile string) *domain.Transaction {
	field := func(column string) string {
		index, ok := columns[column]
		if !ok || index >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[index])
	}

	date, err := utils.ParseBRDate(field(columnDate))
	if err != nil {
		// Data ilegível zera o campo; o agregador descarta a linha
		date = time.Time{}
	}

	return &domain.Transaction{
		ProductCode: field(columnProductCode),
		Description: field(columnDescription),
		ClientCode:  field(columnClientCode),
		ClientName:  field(columnClientName),
		Date:        date,
		Quantity:    utils.ParseBRNumber(field(columnQuantity)),
		GrossTotal:  utils.ParseBRNumber(field(columnTotal)),
		ICMS:        utils.ParseBRNumber(field(columnICMS)),
		PISDebit:    utils.ParseBRNumber(field(columnPISDebit)),
		CofinsDebit: utils.ParseBRNumber(field(columnCofinsDebit)),
		Group:       strings.ToUpper(field(columnGroup)),
		SourceFile:  sourceFile,
	}
}

func analyzableGroup(group string) bool {
	return group == domain.GroupFinishedProduct || group == domain.GroupIndustrializedProduct
}
