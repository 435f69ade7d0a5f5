package storage

import "strings"

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the raw documents and the normalized archives.
	Bucket string `mapstructure:"bucket" default:"datacache"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// DocumentPrefix is where raw JSON:API pages are read from.
	DocumentPrefix string `mapstructure:"document_prefix" default:"documents/"`
	// ArchivePrefix is where merged updates are written to.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"normalized/"`
}

// DocumentKey returns the full key prefix of the documents stored under prefix.
func (c Config) DocumentKey(prefix string) string {
	return c.DocumentPrefix + prefix
}

// ArchiveKey returns the key of the archived update for prefix. The empty prefix
// archives as "all".
func (c Config) ArchiveKey(prefix string) string {
	name := strings.Trim(prefix, "/")
	if name == "" {
		name = "all"
	}
	return c.ArchivePrefix + name + ".json"
}
