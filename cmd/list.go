package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jestes5111/lol-ranked-data-collector/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored batches",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	batches, err := db.ListBatches()
	if err != nil {
		return fmt.Errorf("list batches: %w", err)
	}
	if len(batches) == 0 {
		fmt.Fprintln(os.Stdout, "No batches stored yet. Run 'rankedstats collect <region> <name>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-24s  %-6s  %-6s  %-19s  %s\n",
		"ID", "PLAYER", "REGION", "QUEUE", "COLLECTED", "MATCHES")
	fmt.Fprintf(os.Stdout, "%-6s  %-24s  %-6s  %-6s  %-19s  %s\n",
		"──────", "────────────────────────", "──────", "──────", "───────────────────", "───────")
	for _, b := range batches {
		fmt.Fprintf(os.Stdout, "%-6d  %-24s  %-6s  %-6d  %-19s  %d\n",
			b.ID, b.SummonerName, b.Region, b.QueueID, b.CreatedAt, b.MatchCount)
	}
	return nil
}
