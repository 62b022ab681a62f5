package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cli")

	require.NoError(t, generate(dir))

	for _, name := range []string{"clg.md", "clg_alerts_create.md", "clg_import_sales.md", "clg_prefs_set.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "clg_alerts_create.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "--direction")
	assert.NotContains(t, string(data), "Auto generated")
}
