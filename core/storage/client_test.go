package storage_test

import (
	"testing"

	"datacache/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		useSSL   bool
	}{
		{"PlainEndpoint", "localhost:9000", false},
		{"EndpointWithHTTP", "http://localhost:9000", false},
		{"EndpointWithHTTPS", "https://s3.amazonaws.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(storage.Config{
				Endpoint:       tt.endpoint,
				AccessKey:      "testkey",
				SecretKey:      "testsecret",
				UseSSL:         tt.useSSL,
				Bucket:         "datacache",
				Region:         "us-east-1",
				DocumentPrefix: "documents/",
				ArchivePrefix:  "normalized/",
			})
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestConfig_Keys(t *testing.T) {
	cfg := storage.Config{DocumentPrefix: "documents/", ArchivePrefix: "normalized/"}

	tests := []struct {
		prefix   string
		document string
		archive  string
	}{
		{"contents/", "documents/contents/", "normalized/contents.json"},
		{"/progressions", "documents//progressions", "normalized/progressions.json"},
		{"users/42/bookmarks/", "documents/users/42/bookmarks/", "normalized/users/42/bookmarks.json"},
		{"", "documents/", "normalized/all.json"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.document, cfg.DocumentKey(tt.prefix))
			assert.Equal(t, tt.archive, cfg.ArchiveKey(tt.prefix))
		})
	}
}
