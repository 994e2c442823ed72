package csvsource_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/domain/dataset"
	"github.com/zuno10/Supply-Chain-Dashboard/internal/infrastructure/csvsource"
)

func writeFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0o644))
}

func TestReadTable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "suppliers.csv", []byte("\ufeffsupplier_name,on_time_delivery_rate,quality_rating,lead_time_days,defect_rate\n"+
		"Acme,90,80,4,1.5\n"+
		"\"Globex, Inc\",70,60\n"))

	src, err := csvsource.New(dir, "utf-8")
	require.NoError(t, err)

	tbl, err := src.ReadTable(context.Background(), dataset.TableSuppliers)
	require.NoError(t, err)

	assert.Equal(t, "supplier_name", tbl.Header[0], "se elimina el BOM")
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Globex, Inc", tbl.Rows[1][0])
	assert.Equal(t, "", tbl.Cell(1, 4), "fila corta se lee como celdas vacías")
}

func TestReadTable_NombreDeArchivoConEspacios(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Cost Analysis Trend.csv", []byte("category,cost_amount,date_recorded\nLogistics,10,2024-01-01\n"))

	src, err := csvsource.New(dir, "")
	require.NoError(t, err)
	tbl, err := src.ReadTable(context.Background(), dataset.TableCosts)
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 1)
}

func TestReadTable_Latin1(t *testing.T) {
	dir := t.TempDir()
	body, err := charmap.ISO8859_1.NewEncoder().String("carrier_name,origin_location\nEnvíos Ñandú,Bogotá\n")
	require.NoError(t, err)
	writeFile(t, dir, "transportation_data.csv", []byte(body))

	src, err := csvsource.New(dir, "latin1")
	require.NoError(t, err)
	tbl, err := src.ReadTable(context.Background(), dataset.TableTransportation)
	require.NoError(t, err)
	assert.Equal(t, "Envíos Ñandú", tbl.Rows[0][0])
	assert.Equal(t, "Bogotá", tbl.Rows[0][1])
}

func TestReadTable_ArchivoAusente(t *testing.T) {
	src, err := csvsource.New(t.TempDir(), "utf-8")
	require.NoError(t, err)

	_, err = src.ReadTable(context.Background(), dataset.TableOrders)
	assert.ErrorIs(t, err, domain.ErrTableNotFound)
}

func TestReadTable_TablaDesconocida(t *testing.T) {
	src, err := csvsource.New(t.TempDir(), "utf-8")
	require.NoError(t, err)

	_, err = src.ReadTable(context.Background(), "ventas")
	assert.ErrorIs(t, err, domain.ErrUnknownTable)
}

func TestReadTable_ArchivoVacio(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "inventory.csv", nil)

	src, err := csvsource.New(dir, "utf-8")
	require.NoError(t, err)
	tbl, err := src.ReadTable(context.Background(), dataset.TableInventory)
	require.NoError(t, err)
	assert.Empty(t, tbl.Rows)
	assert.Empty(t, tbl.Header)
}

func TestNew_CharsetNoSoportado(t *testing.T) {
	_, err := csvsource.New(".", "ebcdic")
	assert.Error(t, err)
}
