// paths.go - Centralized application path management
// Config files live under ~/.portal
package main

import (
	"log"
	"os"
	"path/filepath"
)

// AppHomeDir is the name of the application's home directory
const AppHomeDir = ".portal"

// GetAppHome returns the application home directory (~/.portal)
// Creates it if it doesn't exist
func GetAppHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: Could not get user home directory: %v", err)
		return "."
	}

	appHome := filepath.Join(home, AppHomeDir)

	if err := os.MkdirAll(appHome, 0755); err != nil {
		log.Printf("Warning: Could not create app home directory %s: %v", appHome, err)
	}

	return appHome
}

// GetSettingsPath returns the path to settings.yaml (~/.portal/settings.yaml)
func GetSettingsPath() string {
	return filepath.Join(GetAppHome(), "settings.yaml")
}
