// Package config loads casekit configuration from TOML or YAML files.
//
// Package: config
// Title: casekit Configuration
// Description: A configuration is a tree of tables addressed with dotted keys
//              ("log.level", "styles.constant.separator"). Values can be
//              overridden from the environment with a prefix, e.g.
//              CASEKIT_LOG_LEVEL overrides log.level. Discover finds the file
//              in the usual places so the CLI works without flags.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Reduced to the loader used by casekit
//
// Usage:
//   cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//   level := cfg.GetString("log.level", "warn")
//   for _, name := range cfg.Keys("styles") {
//     kind := cfg.GetString("styles." + name + ".kind")
//   }
package config
