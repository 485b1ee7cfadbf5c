package matcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	defaultEnvFile = ".env"
	// EnvFileVar names the environment variable that points at an alternative .env file.
	EnvFileVar = "MATCHER_ENV_FILE"
)

// Config holds the three file locations the tool works with.
type Config struct {
	ProcessedSentenceFile string `env:"PROCESSED_SENTENCE_FILENAME" env-description:"append-only log of annotated sentences and their keywords"`
	SelectedPairsFile     string `env:"SELECTED_PAIRS_FILENAME" env-description:"append-only log of accepted sentence pairs"`
	SentenceSourceFile    string `env:"SENTENCE_SOURCE_FILENAME" env-description:"sentence pairs sorted by the first column"`
}

// LoadConfig reads the configuration from a .env file and the environment.
// An empty path falls back to $MATCHER_ENV_FILE and then to ./.env. When no
// file exists and none was requested explicitly, only the environment is read.
// Relative file names are resolved against the directory of the .env file.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	path = strings.TrimSpace(path)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvFileVar))
	}
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	baseDir := ""
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		baseDir = filepath.Dir(path)
	} else if explicit {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	cfg.resolve(baseDir)
	return cfg, nil
}

// Validate reports every required value that is empty.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.ProcessedSentenceFile) == "" {
		missing = append(missing, "PROCESSED_SENTENCE_FILENAME")
	}
	if strings.TrimSpace(c.SelectedPairsFile) == "" {
		missing = append(missing, "SELECTED_PAIRS_FILENAME")
	}
	if strings.TrimSpace(c.SentenceSourceFile) == "" {
		missing = append(missing, "SENTENCE_SOURCE_FILENAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) resolve(baseDir string) {
	c.ProcessedSentenceFile = resolvePath(baseDir, c.ProcessedSentenceFile)
	c.SelectedPairsFile = resolvePath(baseDir, c.SelectedPairsFile)
	c.SentenceSourceFile = resolvePath(baseDir, c.SentenceSourceFile)
}

func resolvePath(baseDir, name string) string {
	name = filepath.Clean(strings.TrimSpace(name))
	if baseDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(baseDir, name)
}

// ConfigDescription lists the recognised environment variables.
func ConfigDescription() string {
	header := "Environment variables (or keys of the .env file):"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return header
	}
	return text
}
