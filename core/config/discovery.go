// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Locates the casekit configuration file: an explicit path or
//              environment variable wins, then the working directory and the
//              user configuration directory are searched.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-18 v0.2.0: casekit search paths, optional discovery

package config

import (
	"os"
	"path/filepath"

	ckerror "github.com/msto63/casekit/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	EnvVar     string   // Environment variable naming an explicit file
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try in order
	EnvPrefix  string   // Prefix for value overrides
	Required   bool     // Fail when nothing is found
}

// DefaultDiscoveryOptions returns the casekit search order
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "casekit"))
	}
	return DiscoveryOptions{
		EnvVar:     "CASEKIT_CONFIG",
		Paths:      paths,
		Filenames:  []string{"casekit", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "CASEKIT",
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	if options.EnvVar != "" {
		if explicit := os.Getenv(options.EnvVar); explicit != "" {
			paths = append(paths, explicit)
		}
	}
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first existing candidate
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, path := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", ckerror.New("configuration file not found").
		WithCode(ckerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile")
}

// Discover loads the first configuration file found. When none exists and
// the options do not require one, an empty configuration is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, ckerror.Wrap(err, "configuration discovery failed").
				WithDetail("searchPaths", ListPossibleConfigFiles(options))
		}
		return Empty(options.EnvPrefix), nil
	}

	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
}
