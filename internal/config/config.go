package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/golash/internal/en12195"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory
const FileName = "golash"

// Load sets default values, loads an optional .env file and reads golash.yaml
// from configDir. A missing config file is not an error.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("friction", 0.2)
	viper.SetDefault("slope", 0.0)
	viper.SetDefault("windScale", 0)

	viper.SetDefault("sliding.maxAdditional", en12195.DefaultMaxAdditionalLashings)
	viper.SetDefault("batch.workers", 4)

	viper.SetDefault("plot.width", 8.0)
	viper.SetDefault("plot.height", 6.0)

	envFile := filepath.Join(configDir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("error reading env file: %v", err)
		}
	}

	viper.SetEnvPrefix("GOLASH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetFloat returns a float config value.
func GetFloat(key string) float64 {
	return viper.GetFloat64(key)
}
