// Package export writes a finished batch to a durable tabular artifact
// (CSV or JSON) on disk.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jestes5111/lol-ranked-data-collector/internal/model"
	"github.com/jestes5111/lol-ranked-data-collector/internal/report"
)

// Formats accepted by Save.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// BaseName derives the artifact base name from the player identity and a
// collection timestamp, following the upstream {name}_ranked_stats_{ts}
// convention. Path separators and riot-id tags in the name are replaced.
func BaseName(summonerName string, t time.Time) string {
	name := strings.NewReplacer("/", "-", "\\", "-", "#", "-").Replace(summonerName)
	return fmt.Sprintf("%s_ranked_stats_%s", name, t.Format("20060102-150405"))
}

// Save writes the batch to dir in the given format and returns the full
// path of the written file.
func Save(dir, base, format string, b *model.Batch) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, base+"."+format)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		err = WriteCSV(f, b)
	case FormatJSON:
		err = WriteJSON(f, b)
	default:
		err = fmt.Errorf("unknown format %q (want %s or %s)", format, FormatCSV, FormatJSON)
	}
	if err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// WriteCSV writes the batch as CSV: a matchId provenance column followed
// by the batch columns in their (lexicographic) order. Explicit nulls
// become empty cells.
func WriteCSV(w io.Writer, b *model.Batch) error {
	cw := csv.NewWriter(w)

	header := append([]string{"matchId"}, b.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, row := range b.Rows {
		record := make([]string, 0, len(header))
		if i < len(b.MatchIDs) {
			record = append(record, b.MatchIDs[i])
		} else {
			record = append(record, "")
		}
		for _, col := range b.Columns {
			record = append(record, cell(row[col]))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the batch as an indented JSON array of row objects,
// each carrying a matchId field alongside the dataset columns. Nulls stay
// explicit nulls.
func WriteJSON(w io.Writer, b *model.Batch) error {
	out := make([]map[string]any, 0, len(b.Rows))
	for i, row := range b.Rows {
		obj := make(map[string]any, len(row)+1)
		for k, v := range row {
			obj[k] = v
		}
		if i < len(b.MatchIDs) {
			obj["matchId"] = b.MatchIDs[i]
		}
		out = append(out, obj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// cell renders one CSV cell; nil is an empty cell, everything else uses
// the shared value formatting.
func cell(v any) string {
	if v == nil {
		return ""
	}
	return report.FormatValue(v)
}
