package migrations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNames_SortedSQLOnly(t *testing.T) {
	t.Parallel()

	names, err := Names()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	require.Equal(t, "0001_init.sql", names[0])
	for i := 1; i < len(names); i++ {
		require.Less(t, names[i-1], names[i])
	}
}

func TestInit_CreatesTables(t *testing.T) {
	t.Parallel()

	body, err := files.ReadFile("0001_init.sql")
	require.NoError(t, err)
	for _, table := range []string{"drivers", "delivery_requests", "pricing"} {
		require.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table)
	}
}
