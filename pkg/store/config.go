package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DriverDiskv stores one file per day.
	DriverDiskv = "diskv"
	// DriverSQLite stores days in a single sqlite database.
	DriverSQLite = "sqlite"

	defaultDir = "~/.config/mhc"
)

// Config locates persisted state.
type Config interface {
	BasePath() string
	Driver() string
	QuotesPath() string
}

// LoadConfig reads config.yaml from $MHC_CONFIG_PATH, ~/.config/mhc or the
// working directory, with MHC_* environment overrides. A missing config file
// is fine.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultDir)
	v.SetDefault("driver", DriverDiskv)
	v.SetDefault("quotes", filepath.Join(defaultDir, "quotes.txt"))
	v.SetConfigName("config") // .yaml is implicit
	v.SetEnvPrefix("MHC")
	v.AutomaticEnv()

	if override := os.Getenv("MHC_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	if dir, err := homedir.Expand(defaultDir); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expand path: %w", err)
	}
	quotes, err := homedir.Expand(v.GetString("quotes"))
	if err != nil {
		return nil, fmt.Errorf("expand quotes: %w", err)
	}

	return &fileConfig{
		Path:   path,
		Store:  v.GetString("driver"),
		Quotes: quotes,
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Store  string `json:"driver"`
	Quotes string `json:"quotes"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Driver() string {
	return f.Store
}

func (f *fileConfig) QuotesPath() string {
	return f.Quotes
}
