package store

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the base path for the on-disk store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store location from a .dopamine config file or
// DOPAMINE_* environment variables, defaulting to ~/.dopamine.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.dopamine.db")
	viper.SetConfigName(".dopamine") // .yaml is implicit
	viper.SetEnvPrefix("DOPAMINE")
	viper.AutomaticEnv()

	viper.AddConfigPath("./")
	viper.AddConfigPath("$DOPAMINE_CONFIG_PATH")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
