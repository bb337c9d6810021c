// Package config holds the editor's settings, read from an optional
// mapsmith.yaml next to the working directory.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load sets defaults and reads the config file from configDir. A missing
// file is fine; every key has a default.
func Load(configDir string) error {
	viper.SetDefault("log.level", "info")

	viper.SetDefault("map.orientation", "orthogonal")
	viper.SetDefault("map.width", 40)
	viper.SetDefault("map.height", 23)
	viper.SetDefault("map.tile_width", 32)
	viper.SetDefault("map.tile_height", 32)
	viper.SetDefault("map.hex_side_length", 0)

	viper.SetDefault("snap.fine_divisions", 4)

	viper.SetDefault("tilesets.dir", "tilesets")
	viper.SetDefault("tilesets.reload_debounce_ms", 100)
	viper.SetDefault("scripts.dir", "scripts")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 736)

	viper.SetConfigName("mapsmith")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string { return viper.GetString(key) }

// GetInt returns an int config value.
func GetInt(key string) int { return viper.GetInt(key) }

// GetBool returns a bool config value.
func GetBool(key string) bool { return viper.GetBool(key) }
