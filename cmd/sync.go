package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"datacache/core/storage"
	"datacache/feature/sync"

	"github.com/spf13/cobra"
)

var syncPrefix string

// syncCmd loads the documents stored under a prefix into the cache.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync stored JSON:API pages into the cache",
	Long: `Load every JSON:API page stored under a prefix of the document bucket, persist
the merged update (when a database is reachable) and archive it as JSON.

Examples:
  datacache sync --prefix contents/`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncPrefix, "prefix", "", "Prefix relative to storage.document_prefix")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := bootstrap(ctx, true, false)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	svc := sync.NewService(client, a.store, syncConfig(a), a.logger)
	summary, err := svc.SyncPrefix(ctx, syncPrefix)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
