package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jestes5111/lol-ranked-data-collector/internal/config"
	"github.com/jestes5111/lol-ranked-data-collector/internal/ddragon"
	"github.com/jestes5111/lol-ranked-data-collector/internal/export"
	"github.com/jestes5111/lol-ranked-data-collector/internal/model"
	"github.com/jestes5111/lol-ranked-data-collector/internal/pipeline"
	"github.com/jestes5111/lol-ranked-data-collector/internal/riot"
	"github.com/jestes5111/lol-ranked-data-collector/internal/storage"
)

// collect command flags.
var (
	// collectCount is the number of recent matches to collect.
	collectCount int
	// collectQueue is the queueId filter (0 disables the filter).
	collectQueue int
	// collectSkipFailed switches the partial-failure policy from
	// abort-batch to skip-and-continue.
	collectSkipFailed bool
	// collectFormat is the artifact format written next to the store.
	collectFormat string
	// collectOut is the directory the artifact is written to.
	collectOut string
	// collectNoFile suppresses the file artifact (store only).
	collectNoFile bool
	// collectNormConfig is an optional YAML file overriding the
	// normalizer's deny-list and pattern categories.
	collectNormConfig string
)

var collectCmd = &cobra.Command{
	Use:   "collect <region> <name>",
	Short: "Collect a player's recent ranked matches into a dataset",
	Long: `Fetches a player's recent ranked matches, extracts their per-match stats,
flattens and cleans the columns, decodes item/spell/rune ids to names, and
stores the result (SQLite plus a CSV or JSON artifact).

The player name is a summoner name, or a riot id written as Name#TAG.
Requires RIOT_API_KEY in the environment or a .env file.

Examples:
  rankedstats collect NA1 Zenith
  rankedstats collect euw1 "Faker#KR1" --count 10 --skip-failed
  rankedstats collect NA1 Zenith --format json --out ./datasets`,
	Args: cobra.ExactArgs(2),
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().IntVar(&collectCount, "count", 20, "number of recent matches to collect (1–20)")
	collectCmd.Flags().IntVar(&collectQueue, "queue", riot.QueueRankedSolo, "queueId filter (0 = all queues)")
	collectCmd.Flags().BoolVar(&collectSkipFailed, "skip-failed", false, "skip matches that fail extraction instead of aborting the batch")
	collectCmd.Flags().StringVar(&collectFormat, "format", export.FormatCSV, "artifact format: csv or json")
	collectCmd.Flags().StringVar(&collectOut, "out", ".", "directory the artifact is written to")
	collectCmd.Flags().BoolVar(&collectNoFile, "no-file", false, "store the batch without writing a file artifact")
	collectCmd.Flags().StringVar(&collectNormConfig, "norm-config", "", "YAML file overriding the column deny-list and pattern categories")
}

func runCollect(cmd *cobra.Command, args []string) error {
	if collectCount < 1 || collectCount > 20 {
		return fmt.Errorf("--count must be between 1 and 20, got %d", collectCount)
	}

	platform, err := riot.ParsePlatform(args[0])
	if err != nil {
		return err
	}
	playerName := args[1]

	config.LoadEnv()
	apiKey, err := config.RiotAPIKey()
	if err != nil {
		return err
	}

	normCfg, err := config.LoadNormalization(collectNormConfig)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client := riot.NewClient(apiKey, platform)

	puuid, displayName, err := resolvePlayer(ctx, client, playerName)
	if err != nil {
		if errors.Is(err, riot.ErrSummonerNotFound) {
			return fmt.Errorf("player %q was not found on %s", playerName, platform)
		}
		return fmt.Errorf("look up player %q: %w", playerName, err)
	}
	fmt.Fprintf(os.Stderr, "Player: %s  region=%s\n", displayName, platform)

	matchIDs, err := client.GetMatchIDs(ctx, puuid, collectQueue, collectCount)
	if err != nil {
		return fmt.Errorf("match history: %w", err)
	}
	if len(matchIDs) == 0 {
		fmt.Fprintln(os.Stderr, "No matches found for the selected queue.")
		return nil
	}
	fmt.Fprintf(os.Stderr, "Collecting %d matches...\n", len(matchIDs))

	resolver, err := ddragon.NewClient().LoadResolver(ctx)
	if err != nil {
		return fmt.Errorf("load static data: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Static data version: %s\n", resolver.Version)

	asm := &pipeline.Assembler{
		Fetcher:    client,
		Resolver:   resolver,
		Normalize:  normCfg,
		SkipFailed: collectSkipFailed,
		Logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
	batch, err := asm.Assemble(ctx, matchIDs, puuid)
	if err != nil {
		return err
	}
	if len(batch.Rows) == 0 {
		fmt.Fprintln(os.Stderr, "No rows collected.")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	meta := model.BatchMeta{
		SummonerName: displayName,
		Region:       string(platform),
		QueueID:      collectQueue,
		CreatedAt:    now.Format("2006-01-02 15:04:05"),
		MatchCount:   len(batch.Rows),
	}
	batchID, err := db.InsertBatch(meta, batch)
	if err != nil {
		return fmt.Errorf("store batch: %w", err)
	}
	fmt.Printf("Stored batch #%d: %d matches, %d columns\n",
		batchID, len(batch.Rows), len(batch.Columns))

	if !collectNoFile {
		path, err := export.Save(collectOut, export.BaseName(displayName, now), collectFormat, batch)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}

// resolvePlayer returns the puuid and display name for a player given as
// either a plain summoner name or a Name#TAG riot id.
func resolvePlayer(ctx context.Context, client *riot.Client, name string) (puuid, display string, err error) {
	if gameName, tagLine, ok := strings.Cut(name, "#"); ok {
		account, err := client.GetAccountByRiotID(ctx, gameName, tagLine)
		if err != nil {
			return "", "", err
		}
		return account.Puuid, account.GameName + "#" + account.TagLine, nil
	}

	summoner, err := client.GetSummonerByName(ctx, name)
	if err != nil {
		return "", "", err
	}
	display = summoner.Name
	if display == "" {
		display = name
	}
	return summoner.Puuid, display, nil
}
