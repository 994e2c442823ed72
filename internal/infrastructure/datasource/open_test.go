package datasource_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/application/loader"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/csvsource"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/datasource"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/xlsx"
	"github.com/zuno10/Supply-Chain-Dashboard/pkg/config"
)

func TestOpen_CSV(t *testing.T) {
	cfg := &config.Config{Data: config.DataConfig{Source: config.SourceCSV, Dir: t.TempDir(), Charset: "utf-8"}}

	src, closeFn, err := datasource.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &csvsource.Source{}, src)
	assert.Equal(t, "csv:"+cfg.Data.Dir, datasource.Describe(cfg))
}

func TestOpen_CSVCharsetInvalido(t *testing.T) {
	cfg := &config.Config{Data: config.DataConfig{Source: config.SourceCSV, Dir: t.TempDir(), Charset: "ebcdic"}}

	_, closeFn, err := datasource.Open(context.Background(), cfg)
	require.Error(t, err)
	assert.NotNil(t, closeFn)
}

func TestOpen_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, xlsx.WriteWorkbook(path, []*dataset.Table{
		dataset.NewTable(dataset.TableSuppliers, []string{"supplier_name"}, [][]string{{"Acme"}}),
	}))
	cfg := &config.Config{Data: config.DataConfig{Source: config.SourceXLSX, Workbook: path}}

	src, closeFn, err := datasource.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	tbl, err := src.ReadTable(context.Background(), dataset.TableSuppliers)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Acme"}}, tbl.Rows)
}

func TestOpen_FuenteDesconocida(t *testing.T) {
	cfg := &config.Config{Data: config.DataConfig{Source: "mongo"}}

	_, _, err := datasource.Open(context.Background(), cfg)
	assert.ErrorContains(t, err, "mongo")
}

func TestOpen_DatosDeEjemploCargan(t *testing.T) {
	cfg := &config.Config{Data: config.DataConfig{
		Source:  config.SourceCSV,
		Dir:     filepath.Join("..", "..", "..", "data"),
		Charset: "utf-8",
	}}
	src, closeFn, err := datasource.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	snap, err := loader.New(src, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Orders(), 8)
	assert.Len(t, snap.Suppliers(), 5)
	assert.Len(t, snap.Shipments(), 6)
}
