package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"datacache/core/datacache"
	"datacache/core/jsonapi"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	normalizeOutput  string
	normalizePersist bool
)

// normalizeCmd normalizes documents from local files.
var normalizeCmd = &cobra.Command{
	Use:   "normalize FILE...",
	Short: "Normalize JSON:API documents from files",
	Long: `Normalize one or more JSON:API documents and print the per-collection counts.
Files are treated as consecutive pages and merged in argument order.

Examples:
  # Print counts
  datacache normalize page-001.json page-002.json

  # Write the merged update and persist it
  datacache normalize page-*.json --output update.json --persist`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "", "Write the merged update as JSON to this file")
	normalizeCmd.Flags().BoolVar(&normalizePersist, "persist", false, "Apply the merged update to the database")
	RootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := bootstrap(ctx, normalizePersist, normalizePersist)
	if err != nil {
		return err
	}

	update, err := normalizeFiles(ctx, args, a.cfg.Cache.PageConcurrency)
	if err != nil {
		return err
	}
	a.logger.Info("Normalized documents", zap.Int("files", len(args)))

	if normalizeOutput != "" {
		data, err := json.MarshalIndent(update, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding update: %w", err)
		}
		if err := os.WriteFile(normalizeOutput, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", normalizeOutput, err)
		}
	}

	if normalizePersist {
		stats, err := a.store.Apply(ctx, update)
		if err != nil {
			return err
		}
		a.logger.Info("Persisted update",
			zap.Int("upserted", stats.Upserted),
			zap.Int("linked", stats.Linked),
		)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(update.Summary())
}

// normalizeFiles parses every file and loads them as consecutive pages.
func normalizeFiles(ctx context.Context, paths []string, concurrency int) (datacache.Update, error) {
	docs := make([]*jsonapi.Document, 0, len(paths))
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return datacache.Update{}, fmt.Errorf("reading %s: %w", path, err)
		}
		doc, err := jsonapi.Parse(raw)
		if err != nil {
			return datacache.Update{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		docs = append(docs, doc)
	}
	return datacache.LoadPages(ctx, docs, concurrency)
}
