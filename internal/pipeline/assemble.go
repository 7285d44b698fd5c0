package pipeline

import (
	"context"
	"fmt"

	"github.com/jestes5111/lol-ranked-data-collector/internal/model"
	"github.com/jestes5111/lol-ranked-data-collector/internal/riot"
)

// MatchFetcher is the slice of the Riot client the assembler needs.
// Satisfied by *riot.Client.
type MatchFetcher interface {
	GetMatch(ctx context.Context, matchID string) (*riot.Match, error)
}

// Assembler orchestrates the pipeline across a list of match references
// into one row-per-match batch. It owns the batch from creation to
// hand-off; rows are appended strictly in input order.
type Assembler struct {
	Fetcher   MatchFetcher
	Resolver  Resolver
	Normalize NormalizeConfig

	// SkipFailed selects the partial-failure policy. False (the default)
	// aborts the whole batch on the first per-match failure; true logs
	// the failing match id and continues with the remaining matches.
	SkipFailed bool

	// Logf receives progress and skip messages. Nil disables logging.
	Logf func(format string, args ...any)
}

// Assemble fetches every match, extracts the tracked player's row from
// each, then normalizes, decodes and column-sorts the collected rows into
// a finished Batch.
func (a *Assembler) Assemble(ctx context.Context, matchIDs []string, puuid string) (*model.Batch, error) {
	rows := make([]model.Row, 0, len(matchIDs))
	kept := make([]string, 0, len(matchIDs))

	for i, matchID := range matchIDs {
		a.logf("[%d/%d] %s", i+1, len(matchIDs), matchID)

		row, err := a.buildRow(ctx, matchID, puuid)
		if err != nil {
			if a.SkipFailed {
				a.logf("  [skip] %s: %v", matchID, err)
				continue
			}
			return nil, fmt.Errorf("match %s: %w", matchID, err)
		}
		rows = append(rows, row)
		kept = append(kept, matchID)
	}

	rows = Normalize(rows, a.Normalize)
	rows = Decode(rows, a.Resolver)

	return &model.Batch{
		Columns:  Columns(rows),
		MatchIDs: kept,
		Rows:     rows,
	}, nil
}

// buildRow runs the per-match stages: fetch, extract, unpack runes,
// flatten.
func (a *Assembler) buildRow(ctx context.Context, matchID, puuid string) (model.Row, error) {
	match, err := a.Fetcher.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	participant, err := Extract(match, puuid)
	if err != nil {
		return nil, err
	}

	runes, err := UnpackRunes(participant)
	if err != nil {
		return nil, err
	}

	row := model.Flatten(participant)
	runes.Apply(row)
	return row, nil
}

func (a *Assembler) logf(format string, args ...any) {
	if a.Logf != nil {
		a.Logf(format, args...)
	}
}
