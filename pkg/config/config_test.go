package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuno10/Supply-Chain-Dashboard/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.SourceCSV, cfg.Data.Source)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "utf-8", cfg.Data.Charset)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("DATA_SOURCE", "XLSX")
	t.Setenv("DATA_WORKBOOK", "/tmp/libro.xlsx")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_WRITE_TIMEOUT", "45s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.SourceXLSX, cfg.Data.Source, "el origen se normaliza a minúsculas")
	assert.Equal(t, "/tmp/libro.xlsx", cfg.Data.Workbook)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 45*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoad_OrigenInvalido(t *testing.T) {
	t.Setenv("DATA_SOURCE", "mongo")
	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
}

func TestLoad_CharsetInvalido(t *testing.T) {
	t.Setenv("DATA_CHARSET", "ebcdic")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "supply_chain", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/supply_chain?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgresql://x@y/z"
	assert.Equal(t, "postgresql://x@y/z", c.ConnectionString())
}
