package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocumentoRegistrado(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	for _, p := range []string{"/api/auth/login", "/api/orders/{id}", "/api/payments/{id}", "/api/sales"} {
		assert.Contains(t, parsed.Paths, p)
	}
}

func TestEnsure_EscribeSiNoExiste(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "swagger.json")

	got, err := Ensure(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(b))

	// Existente: no se toca.
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	_, err = Ensure(path)
	require.NoError(t, err)
	b, _ = os.ReadFile(path)
	assert.Equal(t, `{}`, string(b))
}
