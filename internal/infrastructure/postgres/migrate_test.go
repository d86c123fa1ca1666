package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames_OrdenadasYEmbebidas(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_init.sql", names[0])
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}

	body, err := migrationFiles.ReadFile("migrations/" + names[0])
	require.NoError(t, err)
	for _, table := range []string{"vendors", "students", "print_orders", "payments", "sales"} {
		assert.True(t, strings.Contains(string(body), "CREATE TABLE IF NOT EXISTS "+table), table)
	}
	assert.Contains(t, string(body), "UNIQUE (vendor_id, order_number)", "número de pedido único por vendedor")
	assert.NotContains(t, string(body), "order_number       TEXT NOT NULL UNIQUE")
}
