// Package app provides the application initialization and wiring.
package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigName is the base name of the configuration file.
const ConfigName = "conanhost"

// DefaultDataDir returns the default data directory path.
// Uses ~/.conanhost for user installations, /var/lib/conanhost as fallback.
func DefaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".conanhost")
	}
	return "/var/lib/conanhost"
}

// DefaultConfigPath returns where `conanhost init` writes the config file.
func DefaultConfigPath() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", ConfigName, ConfigName+".yaml")
	}
	return filepath.Join("/etc", ConfigName, ConfigName+".yaml")
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: conanhost.yaml
// Search paths (in order): current directory, ~/.config/conanhost, /etc/conanhost
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/" + ConfigName)
	v.AddConfigPath("/etc/" + ConfigName)
}
