// Package config provides configuration management for the Bucket Manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded through godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Storage: endpoint, port, credentials, TLS flag and default bucket
//   - Log: logging level, format and optional rotating file
//   - Database: optional operation journal database
//
// Defaults live in the `default` struct tags of each section and are registered with
// Viper by reflection, so every key can be overridden by its environment variable
// (storage.access_key -> STORAGE_ACCESS_KEY).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
