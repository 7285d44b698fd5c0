package pipeline

import (
	"sort"
	"strings"

	"github.com/jestes5111/lol-ranked-data-collector/internal/model"
)

// PatternCategory names a family of columns removed by case-sensitive
// substring match against the column name.
type PatternCategory struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// NormalizeConfig controls which columns the normalizer removes. The
// deny-list holds exact column names; the pattern categories drop any
// column containing one of their substrings. Both are data, so the sets
// can grow without touching the algorithm. The yaml tags allow overriding
// from a config file.
type NormalizeConfig struct {
	DenyList          []string          `yaml:"deny_list"`
	PatternCategories []PatternCategory `yaml:"pattern_categories"`
}

// DefaultNormalizeConfig returns the stock configuration: fields whose
// information is captured elsewhere (identity, progression and transform
// flags, duplicate position fields) plus the noisy field families the
// provider keeps growing.
func DefaultNormalizeConfig() NormalizeConfig {
	return NormalizeConfig{
		DenyList: []string{
			"perks.styles",
			"unrealKills",
			"totalUnitsHealed",
			"summonerId",
			"summonerLevel",
			"summonerName",
			"role",
			"puuid",
			"profileIcon",
			"largestCriticalStrike",
			"lane",
			"itemsPurchased",
			"individualPosition",
			"goldSpent",
			"eligibleForProgression",
			"championTransform",
			"championId",
		},
		PatternCategories: []PatternCategory{
			{Name: "challenge-tracking", Patterns: []string{"challenge"}},
			{Name: "ping-counts", Patterns: []string{"Ping"}},
			{Name: "provider-internal", Patterns: []string{"riot"}},
			{Name: "objective-structures", Patterns: []string{"nexus"}},
			{Name: "end-of-game-timing", Patterns: []string{"gameEnded"}},
		},
	}
}

// Normalize removes configured columns and makes the column set uniform
// across all rows: a column present in any kept row appears in every
// output row, with an explicit nil where the source row lacked it.
// Pure and total — input rows are not modified, unknown columns pass
// through, and applying it twice changes nothing.
func Normalize(rows []model.Row, cfg NormalizeConfig) []model.Row {
	deny := make(map[string]bool, len(cfg.DenyList))
	for _, name := range cfg.DenyList {
		deny[name] = true
	}

	dropped := func(name string) bool {
		if deny[name] {
			return true
		}
		for _, cat := range cfg.PatternCategories {
			for _, pat := range cat.Patterns {
				if strings.Contains(name, pat) {
					return true
				}
			}
		}
		return false
	}

	// Union of kept columns across all rows. Per-match raw records have
	// minor optional-field variation, so no single row is authoritative.
	kept := make(map[string]bool)
	for _, row := range rows {
		for name := range row {
			if !dropped(name) {
				kept[name] = true
			}
		}
	}

	out := make([]model.Row, len(rows))
	for i, row := range rows {
		normalized := make(model.Row, len(kept))
		for name := range kept {
			if v, ok := row[name]; ok {
				normalized[name] = v
			} else {
				normalized[name] = nil
			}
		}
		out[i] = normalized
	}
	return out
}

// Columns returns the sorted column set shared by normalized rows.
func Columns(rows []model.Row) []string {
	if len(rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(rows[0]))
	for name := range rows[0] {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	return cols
}
