package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jestes5111/lol-ranked-data-collector/internal/report"
	"github.com/jestes5111/lol-ranked-data-collector/internal/storage"
)

var showColumns string

var showCmd = &cobra.Command{
	Use:   "show <batch-id>",
	Short: "Show a stored batch as a table",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showColumns, "columns", "", "comma-separated column names (default: a curated subset)")
}

func runShow(cmd *cobra.Command, args []string) error {
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

	columns := report.DefaultColumns(batch)
	if showColumns != "" {
		columns = nil
		for _, c := range strings.Split(showColumns, ",") {
			columns = append(columns, strings.TrimSpace(c))
		}
	}

	report.PrintBatchSummary(os.Stdout, *meta)
	report.PrintBatchTable(os.Stdout, batch, columns)
	return nil
}
