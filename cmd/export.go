package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jestes5111/lol-ranked-data-collector/internal/export"
	"github.com/jestes5111/lol-ranked-data-collector/internal/storage"
)

// export command flags.
var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <batch-id>",
	Short: "Re-export a stored batch to a CSV or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", export.FormatCSV, "artifact format: csv or json")
	exportCmd.Flags().StringVar(&exportOut, "out", ".", "directory the artifact is written to")
}

func runExport(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("batch id must be a number, got %q", args[0])
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	meta, batch, err := db.GetBatch(id)
	if err != nil {
		return fmt.Errorf("query batch: %w", err)
	}
	if meta == nil {
		fmt.Fprintf(os.Stderr, "No batch found with id %d\n", id)
		return nil
	}

	path, err := export.Save(exportOut, export.BaseName(meta.SummonerName, time.Now().UTC()), exportFormat, batch)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d matches, %d columns)\n", path, len(batch.Rows), len(batch.Columns))
	return nil
}
