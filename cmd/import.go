package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shayulman/radiodesk/internal/content"
	"github.com/shayulman/radiodesk/internal/progress"
)

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import audio files from the media directory into the content library",
	Long: `Scans the media directory (or the given directory) for audio files and
registers them as content items. The parent directory of each file decides
its kind: songs/, jingles/, shows/, commercials/, announcements/. Files
already in the library are skipped, so imports are safe to re-run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir := cfg.MediaDir
		if len(args) > 0 {
			dir = args[0]
		}
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("media directory %s: %w", dir, err)
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := content.NewStore(database)
		result, err := store.ImportDir(cmd.Context(), dir, cfg.ImportIncludes,
			progress.NewReporter("Importing media"))
		if err != nil {
			return fmt.Errorf("importing %s: %w", dir, err)
		}

		fmt.Printf("Scanned %d files: %d imported, %d already in the library\n",
			result.Scanned, result.Imported, result.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
