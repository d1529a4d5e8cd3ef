package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type scrapeConfig struct {
	Site       string   `json:"site"`
	Committees []string `json:"committees"`
	OutputDir  string   `json:"output_dir"`
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(
		filepath.Join(dir, "boarddocs.json5"),
		[]byte(`{site: "vsba/arlington", committees: ["AAAAAAAAAAAA"], output_dir: "out"}`),
		0600,
	)
	require.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(dir, "boarddocs.local.json5"),
		[]byte(`{output_dir: "local-out"}`),
		0600,
	)
	require.NoError(t, err)

	config, err := ReadConfig[scrapeConfig](filepath.Join(dir, "boarddocs.json5"))
	require.NoError(t, err)
	require.Equal(t, "vsba/arlington", config.Site)
	require.Equal(t, []string{"AAAAAAAAAAAA"}, config.Committees)
	require.Equal(t, "local-out", config.OutputDir)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[scrapeConfig](filepath.Join(t.TempDir(), "boarddocs.json5"))
	require.True(t, os.IsNotExist(err))
}
