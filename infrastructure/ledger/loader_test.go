package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/intep/price-monitor/internal/config"
	"github.com/intep/price-monitor/pkg/log"
)

const ledgerHeader = "Cód. Produto;Descrição;Cód. Cliente;Nome;Data NF;Quantidade;Total;ICMS;PIS Débito;Cofins Débito;Grupo"

func writeLedgerFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newTestLoader(dir string) *Loader {
	return NewLoader(config.Ledger{
		Dir:        dir,
		FilePrefix: "Faturamento por Produto_",
	})
}

func TestLoadParsesBRFormats(t *testing.T) {
	log.SetupTestLogger()
	dir := t.TempDir()

	writeLedgerFile(t, dir, "Faturamento por Produto_jan.csv", ledgerHeader+"\n"+
		"P1;PARAFUSO M6;C1;ALFA LTDA;15/01/2024;1.000,5;12.345,67;1.234,56;100,00;460,89;PRODUTO ACABADO\n")

	transactions, err := newTestLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	tx := transactions[0]
	assert.Equal(t, "P1", tx.ProductCode)
	assert.Equal(t, "PARAFUSO M6", tx.Description)
	assert.Equal(t, "ALFA LTDA", tx.ClientName)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, 1000.5, tx.Quantity)
	assert.Equal(t, 12345.67, tx.GrossTotal)
	assert.Equal(t, 1234.56, tx.ICMS)
	assert.Equal(t, 100.0, tx.PISDebit)
	assert.Equal(t, 460.89, tx.CofinsDebit)
	assert.Equal(t, "Faturamento por Produto_jan.csv", tx.SourceFile)
}

func TestLoadFiltersProductGroups(t *testing.T) {
	log.SetupTestLogger()
	dir := t.TempDir()

	writeLedgerFile(t, dir, "Faturamento por Produto_fev.csv", ledgerHeader+"\n"+
		"P1;A;C1;X;01/02/2024;1;100,00;0;0;0;PRODUTO ACABADO\n"+
		"P2;B;C1;X;01/02/2024;1;100,00;0;0;0;MATERIA PRIMA\n"+
		"P3;C;C1;X;01/02/2024;1;100,00;0;0;0;PRODUTO INDUSTRIALIZADO\n")

	transactions, err := newTestLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "P1", transactions[0].ProductCode)
	assert.Equal(t, "P3", transactions[1].ProductCode)
}

func TestLoadWithoutGroupColumnKeepsEverything(t *testing.T) {
	log.SetupTestLogger()
	dir := t.TempDir()

	writeLedgerFile(t, dir, "Faturamento por Produto_mar.csv",
		"Cód. Produto;Descrição;Cód. Cliente;Nome;Data NF;Quantidade;Total;ICMS;PIS Débito;Cofins Débito\n"+
			"P1;A;C1;X;01/03/2024;1;100,00;0;0;0\n"+
			"P2;B;C1;X;01/03/2024;1;100,00;0;0;0\n")

	transactions, err := newTestLoader(dir).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestLoadLatin1Fallback(t *testing.T) {
	log.SetupTestLogger()
	dir := t.TempDir()

	content := ledgerHeader + "\n" +
		"P1;CONEXÃO RÁPIDA;C1;JOSÉ & CIA;10/04/2024;2;200,00;0;0;0;PRODUTO ACABADO\n"
	encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(content))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Faturamento por Produto_abr.csv"), encoded, 0o644))

	transactions, err := newTestLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "CONEXÃO RÁPIDA", transactions[0].Description)
	assert.Equal(t, "JOSÉ & CIA", transactions[0].ClientName)
}

func TestLoadMergesFilesInNameOrder(t *testing.T) {
	log.SetupTestLogger()
	dir := t.TempDir()

	writeLedgerFile(t, dir, "Faturamento por Produto_2024-02.csv", ledgerHeader+"\n"+
		"P2;B;C1;X;01/02/2024;1;100,00;0;0;0;PRODUTO ACABADO\n")
	writeLedgerFile(t, dir, "Faturamento por Produto_2024-01.csv", ledgerHeader+"\n"+
		"P1;A;C1;X;01/01/2024;1;100,00;0;0;0;PRODUTO ACABADO\n")
	writeLedgerFile(t, dir, "outro_arquivo.csv", ledgerHeader+"\n"+
		"P9;Z;C1;X;01/01/2024;1;100,00;0;0;0;PRODUTO ACABADO\n")

	transactions, err := newTestLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "Faturamento por Produto_2024-01.csv", transactions[0].SourceFile)
	assert.Equal(t, "Faturamento por Produto_2024-02.csv", transactions[1].SourceFile)
}

func TestLoadDegradesMalformedRows(t *testing.T) {
	log.SetupTestLogger()
	dir := t.TempDir()

	writeLedgerFile(t, dir, "Faturamento por Produto_mai.csv", ledgerHeader+"\n"+
		";SEM CODIGO;C1;X;01/05/2024;1;100,00;0;0;0;PRODUTO ACABADO\n"+
		"P1;DATA RUIM;C1;X;99/99/9999;abc;xyz;0;0;0;PRODUTO ACABADO\n")

	transactions, err := newTestLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	// Valores ilegíveis degradam para zero em vez de derrubar a carga
	tx := transactions[0]
	assert.True(t, tx.Date.IsZero())
	assert.Equal(t, 0.0, tx.Quantity)
	assert.Equal(t, 0.0, tx.GrossTotal)
}

func TestLoadErrors(t *testing.T) {
	log.SetupTestLogger()

	t.Run("diretório inexistente", func(t *testing.T) {
		_, err := newTestLoader("/caminho/que/nao/existe").Load(context.Background())
		assert.Error(t, err)
	})

	t.Run("nenhum arquivo com o prefixo", func(t *testing.T) {
		dir := t.TempDir()
		writeLedgerFile(t, dir, "relatorio.csv", ledgerHeader+"\n")

		_, err := newTestLoader(dir).Load(context.Background())
		assert.ErrorContains(t, err, "nenhum arquivo")
	})

}

func TestLoadSkipsUnreadableFile(t *testing.T) {
	log.SetupTestLogger()
	dir := t.TempDir()

	// Sem a coluna de código o arquivo é inutilizável, mas os demais seguem
	writeLedgerFile(t, dir, "Faturamento por Produto_a.csv", "Descrição;Total\nA;100,00\n")
	writeLedgerFile(t, dir, "Faturamento por Produto_b.csv", ledgerHeader+"\n"+
		"P1;A;C1;X;01/06/2024;1;100,00;0;0;0;PRODUTO ACABADO\n")

	transactions, err := newTestLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "P1", transactions[0].ProductCode)
}
