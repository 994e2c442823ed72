package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"Logistics", "Logistics"},
		{decimal.RequireFromString("1200.50"), "1200.5"},
		{3.25, "3.25"},
		{int64(42), "42"},
		{int32(-7), "-7"},
		{true, "true"},
		{time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "2024-01-05"},
		{time.Date(2024, 1, 5, 13, 30, 0, 0, time.UTC), "2024-01-05 13:30:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cellString(tc.in), "cellString(%v)", tc.in)
	}
}

func TestIsUndefinedTable(t *testing.T) {
	err := fmt.Errorf("query: %w", &pgconn.PgError{Code: "42P01"})
	assert.True(t, isUndefinedTable(err))
	assert.True(t, isUndefinedTable(&pgconn.PgError{Code: "3F000"}))
	assert.False(t, isUndefinedTable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUndefinedTable(errors.New("42P01")))
}

func TestTableNames_CubreTodosLosDatasets(t *testing.T) {
	assert.Len(t, TableNames, 6)
}

func TestResolveIPv4_Literales(t *testing.T) {
	ctx := context.Background()

	ip, err := resolveIPv4(ctx, "10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip)

	_, err = resolveIPv4(ctx, "::1")
	assert.ErrorIs(t, err, errNoIPv4)
}

func TestDatabaseURLWithIPv4(t *testing.T) {
	ctx := context.Background()

	got := databaseURLWithIPv4(ctx, "postgres://u:p@127.0.0.1/supply_chain?sslmode=disable")
	assert.Equal(t, "postgres://u:p@127.0.0.1:5432/supply_chain?sslmode=disable", got)

	// IPv6 literal: no hay IPv4 posible, la URL queda intacta.
	v6 := "postgres://u:p@[::1]:5433/supply_chain"
	assert.Equal(t, v6, databaseURLWithIPv4(ctx, v6))
}

func TestSelectQuery_OrdenDeterminista(t *testing.T) {
	assert.Equal(t,
		`SELECT * FROM "public"."order_table" ORDER BY ctid`,
		selectQuery("public", "order_table"))
	assert.Equal(t,
		`SELECT * FROM "ventas ""2024"""."suppliers" ORDER BY ctid`,
		selectQuery(`ventas "2024"`, "suppliers"),
		"identificadores escapados")
}
