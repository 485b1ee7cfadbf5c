package matcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PROCESSED_SENTENCE_FILENAME",
	"SELECTED_PAIRS_FILENAME",
	"SENTENCE_SOURCE_FILENAME",
}

// resetConfigEnv clears the config variables for the test and restores them afterwards.
func resetConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvFileVar, "")
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

// chdirForTest changes the working directory for the test and restores it afterwards.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	resetConfigEnv(t)
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "PROCESSED_SENTENCE_FILENAME=processed.csv\n" +
		"SELECTED_PAIRS_FILENAME=out/pairs.csv\n" +
		"SENTENCE_SOURCE_FILENAME=/data/source.csv\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o644))

	cfg, err := LoadConfig(envPath)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "processed.csv"), cfg.ProcessedSentenceFile)
	assert.Equal(t, filepath.Join(dir, "out", "pairs.csv"), cfg.SelectedPairsFile)
	assert.Equal(t, "/data/source.csv", cfg.SentenceSourceFile)
}

func TestLoadConfigEnvFileVariable(t *testing.T) {
	resetConfigEnv(t)
	dir := t.TempDir()
	envPath := filepath.Join(dir, "matcher.env")
	content := "PROCESSED_SENTENCE_FILENAME=p.csv\nSELECTED_PAIRS_FILENAME=s.csv\nSENTENCE_SOURCE_FILENAME=src.csv\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o644))
	t.Setenv(EnvFileVar, envPath)

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "src.csv"), cfg.SentenceSourceFile)
}

func TestLoadConfigFromEnvironmentOnly(t *testing.T) {
	resetConfigEnv(t)
	chdirForTest(t, t.TempDir())
	t.Setenv("PROCESSED_SENTENCE_FILENAME", "p.csv")
	t.Setenv("SELECTED_PAIRS_FILENAME", "s.csv")
	t.Setenv("SENTENCE_SOURCE_FILENAME", "src.csv")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, Config{
		ProcessedSentenceFile: "p.csv",
		SelectedPairsFile:     "s.csv",
		SentenceSourceFile:    "src.csv",
	}, cfg)
}

func TestLoadConfigMissingValues(t *testing.T) {
	resetConfigEnv(t)
	chdirForTest(t, t.TempDir())
	t.Setenv("SENTENCE_SOURCE_FILENAME", "src.csv")

	_, err := LoadConfig("")

	require.ErrorIs(t, err, ErrMissingConfig)
	assert.Contains(t, err.Error(), "PROCESSED_SENTENCE_FILENAME")
	assert.Contains(t, err.Error(), "SELECTED_PAIRS_FILENAME")
	assert.NotContains(t, err.Error(), "SENTENCE_SOURCE_FILENAME")
}

func TestLoadConfigExplicitFileMissing(t *testing.T) {
	resetConfigEnv(t)
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigDescriptionListsVariables(t *testing.T) {
	text := ConfigDescription()
	for _, k := range configKeys {
		assert.Contains(t, text, k)
	}
}
