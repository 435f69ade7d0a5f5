// Package config provides configuration management for the data cache.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: MySQL or SQLite connection details and write batch size
//   - Storage: S3/MinIO credentials, bucket and key prefixes
//   - Log: Logging level and format
//   - Cache: Concurrency used when loading paginated documents
//
// Defaults come from the `default` struct tags. Environment variables use the
// SECTION_FIELD form, e.g. DATABASE_DRIVER=sqlite or CACHE_PAGE_CONCURRENCY=8.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
