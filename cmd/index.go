package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shayulman/radiodesk/internal/assistant"
	"github.com/shayulman/radiodesk/internal/campaigns"
	"github.com/shayulman/radiodesk/internal/content"
	"github.com/shayulman/radiodesk/internal/flows"
	"github.com/shayulman/radiodesk/internal/progress"
	"github.com/shayulman/radiodesk/internal/vectordb"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the assistant's search index from station records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}
		store, err := vectordb.NewChromemStore(embedder)
		if err != nil {
			return fmt.Errorf("creating vector store: %w", err)
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		ix := assistant.NewIndexer(
			flows.NewStore(database),
			content.NewStore(database),
			campaigns.NewStore(database),
			store,
		)
		n, err := ix.Reindex(cmd.Context(), progress.NewReporter("Indexing station records"))
		if err != nil {
			return fmt.Errorf("indexing: %w", err)
		}

		vectorDir := filepath.Join(cfg.DataDir, "vectordb")
		if err := store.Persist(cmd.Context(), vectorDir); err != nil {
			return fmt.Errorf("persisting index: %w", err)
		}

		fmt.Printf("Indexed %d documents into %s\n", n, vectorDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
