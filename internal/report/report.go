// Package report renders stored batches as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/jestes5111/lol-ranked-data-collector/internal/model"
)

// preferredColumns is the curated default view. A collected batch carries
// 100+ columns; these are the ones worth a terminal table. Columns absent
// from the batch are silently skipped.
var preferredColumns = []string{
	"championName",
	"teamPosition",
	"win",
	"kills",
	"deaths",
	"assists",
	"goldEarned",
	"visionScore",
	"summoner1Id",
	"summoner2Id",
	"runeKeystone",
}

// DefaultColumns returns the curated columns present in the batch.
func DefaultColumns(b *model.Batch) []string {
	present := make(map[string]bool, len(b.Columns))
	for _, c := range b.Columns {
		present[c] = true
	}
	out := make([]string, 0, len(preferredColumns))
	for _, c := range preferredColumns {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}

// PrintBatchSummary prints a one-line summary header for the batch.
func PrintBatchSummary(w io.Writer, meta model.BatchMeta) {
	fmt.Fprintf(w, "\nBatch #%d  |  %s (%s)  |  Queue: %d  |  Matches: %d  |  Collected: %s\n\n",
		meta.ID, meta.SummonerName, meta.Region, meta.QueueID, meta.MatchCount, meta.CreatedAt)
}

// PrintBatchTable writes one row per match with the selected columns.
// Explicit nulls render as an em dash.
func PrintBatchTable(w io.Writer, b *model.Batch, columns []string) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	header := make([]any, 0, len(columns)+1)
	header = append(header, "MATCH")
	for _, col := range columns {
		header = append(header, col)
	}
	table.Header(header...)

	for i, row := range b.Rows {
		matchID := ""
		if i < len(b.MatchIDs) {
			matchID = b.MatchIDs[i]
		}
		cells := make([]any, 0, len(columns)+1)
		cells = append(cells, matchID)
		for _, col := range columns {
			cells = append(cells, FormatValue(row[col]))
		}
		table.Append(cells...)
	}
	table.Render()
}

// FormatValue renders one cell. JSON decoding hands back float64 for every
// number, so integral floats print without the trailing ".0" pandas-style
// output would show.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "—"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
