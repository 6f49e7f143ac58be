package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "onshelves.txt", cfg.StockFile)
	assert.Equal(t, "availability.txt", cfg.AvailabilityFile)
	assert.Equal(t, "products.txt", cfg.ProductsFile)
	assert.Equal(t, "suppliers.txt", cfg.SuppliersFile)
	assert.Equal(t, "orders.txt", cfg.OutputFile)
	assert.Empty(t, cfg.XLSXOutput)
	assert.Equal(t, 20, cfg.ReorderThreshold)
	assert.Equal(t, 50, cfg.TargetLevel)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RESTOCK_DATA_DIR", "/srv/store")
	t.Setenv("RESTOCK_OUTPUT", "daily.txt")
	t.Setenv("RESTOCK_REORDER_THRESHOLD", "10")
	t.Setenv("RESTOCK_TARGET_LEVEL", " 40 ")
	t.Setenv("LOG_PRETTY", "off")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/store", cfg.DataDir)
	assert.Equal(t, "daily.txt", cfg.OutputFile)
	assert.Equal(t, 10, cfg.ReorderThreshold)
	assert.Equal(t, 40, cfg.TargetLevel)
	assert.False(t, cfg.LogPretty)
}

func TestLoad_RejectsNonNumericPolicy(t *testing.T) {
	testCases := []struct {
		key   string
		value string
	}{
		{"RESTOCK_REORDER_THRESHOLD", "abc"},
		{"RESTOCK_TARGET_LEVEL", "50.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestValidate(t *testing.T) {
	base := Config{OutputFile: "orders.txt", ReorderThreshold: 20, TargetLevel: 50}
	require.NoError(t, base.Validate())

	noThreshold := base
	noThreshold.ReorderThreshold = 0
	assert.Error(t, noThreshold.Validate())

	inverted := base
	inverted.TargetLevel = 10
	assert.Error(t, inverted.Validate())

	noOutput := base
	noOutput.OutputFile = " "
	assert.Error(t, noOutput.Validate())
}
