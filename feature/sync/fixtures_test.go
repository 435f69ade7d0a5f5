package sync

import (
	"context"
	"testing"

	"datacache/core/database"
	"datacache/core/persistence"
	"datacache/core/storage"
	"datacache/core/storage/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const pageOne = `{
  "data": [{
    "type": "contents", "id": "1",
    "attributes": {
      "uri": "rw://betamax/videos/1", "name": "Getting Started",
      "released_at": "2020-01-01T00:00:00Z", "content_type": "episode"
    },
    "relationships": {"categories": {"data": [{"type": "categories", "id": "3"}]}}
  }],
  "included": [{
    "type": "categories", "id": "3",
    "attributes": {"name": "iOS & Swift", "uri": "rw://categories/3"}
  }],
  "links": {"next": "https://api.example.com/contents?page=2"}
}`

const pageTwo = `{
  "data": [{
    "type": "contents", "id": "2",
    "attributes": {
      "uri": "rw://betamax/videos/2", "name": "Going Further",
      "released_at": "2020-02-01T00:00:00Z", "content_type": "episode"
    },
    "relationships": {"domains": {"data": [{"type": "domains", "id": "4"}]}}
  }],
  "included": [{
    "type": "domains", "id": "4",
    "attributes": {"name": "iOS", "slug": "ios", "level": "production"}
  }]
}`

// Content 5 has no uri.
const undecodablePage = `{
  "data": [{
    "type": "contents", "id": "5",
    "attributes": {"name": "Broken", "released_at": "2020-01-01T00:00:00Z", "content_type": "episode"}
  }]
}`

func testConfig() Config {
	return Config{
		Storage: storage.Config{
			Bucket:         "test-bucket",
			DocumentPrefix: "documents/",
			ArchivePrefix:  "normalized/",
		},
		PageConcurrency: 2,
	}
}

func sqliteStore(t *testing.T) *persistence.Store {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store := persistence.NewStore(db, zap.NewNop(), 100)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func setupService(t *testing.T, withDB bool) (*Service, *mocks.Client) {
	client := new(mocks.Client)
	store := persistence.NewStore(nil, zap.NewNop(), 0)
	if withDB {
		store = sqliteStore(t)
	}
	return NewService(client, store, testConfig(), zap.NewNop()), client
}
