package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// fileConfig mirrors the on-disk config file at ~/.config/acculynx/config.toml.
type fileConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// configPath returns the default config file location.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "acculynx", "config.toml"), nil
}

// loadFileConfig reads the config file if it exists. A missing file is not
// an error; a malformed one is.
func loadFileConfig() (fileConfig, error) {
	var cfg fileConfig

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig resolves the API key and base URL, in order of precedence:
// command-line flag, ACCULYNX_API_KEY / ACCULYNX_BASE_URL environment
// variables (a .env file in the working directory is honored), then the
// config file.
func resolveConfig(flagAPIKey, flagBaseURL string) (apiKey, baseURL string, err error) {
	// Best effort; a missing .env is the common case.
	_ = godotenv.Load()

	apiKey = flagAPIKey
	baseURL = flagBaseURL

	if apiKey == "" {
		apiKey = os.Getenv("ACCULYNX_API_KEY")
	}
	if baseURL == "" {
		baseURL = os.Getenv("ACCULYNX_BASE_URL")
	}

	if apiKey == "" || baseURL == "" {
		fileCfg, err := loadFileConfig()
		if err != nil {
			return "", "", err
		}
		if apiKey == "" {
			apiKey = fileCfg.APIKey
		}
		if baseURL == "" {
			baseURL = fileCfg.BaseURL
		}
	}

	if apiKey == "" {
		return "", "", errors.New("no API key: pass --api-key, set ACCULYNX_API_KEY, or add api_key to ~/.config/acculynx/config.toml")
	}
	return apiKey, baseURL, nil
}
