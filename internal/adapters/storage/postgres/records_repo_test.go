package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdent_QuotesConfiguredNames(t *testing.T) {
	assert.Equal(t, `"FichaClinica"`, ident("FichaClinica"))
	assert.Equal(t, `"a""b"`, ident(`a"b`))
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5433", User: "vet", Pass: "p@ss", Name: "clinic", SSLMode: "disable"}
	assert.Equal(t, "postgres://vet:p%40ss@db:5433/clinic?sslmode=disable", cfg.dsn())

	cfg.DSN = "postgres://x"
	assert.Equal(t, "postgres://x", cfg.dsn())
}

func TestDecodeJSONB_NullIsEmpty(t *testing.T) {
	var v []string
	require.NoError(t, decodeJSONB(nil, &v))
	assert.Nil(t, v)

	require.NoError(t, decodeJSONB([]byte(`["Rabia"]`), &v))
	assert.Equal(t, []string{"Rabia"}, v)
}
