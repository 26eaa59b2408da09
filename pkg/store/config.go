package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the disk store lives.
type Config interface {
	BasePath() string
}

// Settings is the resolved configuration for the CLI.
type Settings struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Catalog string `json:"catalog"`
}

// BasePath implements Config.
func (s *Settings) BasePath() string {
	return s.Path
}

const (
	defaultPath  = "~/.multiselect.db"
	defaultTitle = "Productgroep"
)

// LoadConfig reads .multiselect.yaml from $MULTISELECT_CONFIG_PATH or the
// working directory and overlays MULTISELECT_* environment variables. A missing
// config file is not an error.
func LoadConfig() (*Settings, error) {
	viper.SetDefault("path", defaultPath)
	viper.SetDefault("title", defaultTitle)
	viper.SetDefault("catalog", "")
	viper.SetConfigName(".multiselect") // .yaml is implicit
	viper.SetEnvPrefix("MULTISELECT")
	viper.AutomaticEnv()

	if override := os.Getenv("MULTISELECT_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &Settings{
		Path:    path,
		Title:   viper.GetString("title"),
		Catalog: viper.GetString("catalog"),
	}, nil
}
