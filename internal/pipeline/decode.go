package pipeline

import (
	"regexp"

	"github.com/jestes5111/lol-ranked-data-collector/internal/model"
)

// Resolver translates a numeric id within a category ("item",
// "summoner_spell", "rune") to a display name. ok is false for unknown
// ids. Satisfied by *ddragon.Resolver.
type Resolver interface {
	ResolveName(id int, category string) (name string, ok bool)
}

// fieldGroup selects a disjoint set of columns by name pattern and names
// the resolver category their values decode through.
type fieldGroup struct {
	pattern  *regexp.Regexp
	category string
}

// The groups are disjoint by construction: no column name matches two
// patterns, so decoding order is irrelevant.
var fieldGroups = []fieldGroup{
	{regexp.MustCompile(`^item[0-6]$`), "item"},
	{regexp.MustCompile(`^summoner[12]Id$`), "summoner_spell"},
	{regexp.MustCompile(`^rune(Keystone|Primary[1-3]|Secondary[1-2])$`), "rune"},
}

// shardPattern selects the stat-shard columns, which decode through a
// fixed local table rather than the general resolver.
var shardPattern = regexp.MustCompile(`^runeShard`)

// shardNames is Riot's stat-shard id table. These ids are not served by
// Data Dragon, so they live here.
var shardNames = map[int]string{
	5001: "Health",
	5002: "Armor",
	5003: "Magic Resist",
	5005: "Attack Speed",
	5007: "Ability Haste",
	5008: "Adaptive Force",
}

// Decode replaces numeric ids in the item, summoner-spell, rune and
// rune-shard columns with display names. Decoding is best-effort per
// field: an id the resolver does not know becomes an explicit nil without
// affecting sibling fields. Columns outside the four groups, and values
// that are not numeric ids (e.g. already-decoded names), pass through
// unchanged. Input rows are not modified.
func Decode(rows []model.Row, resolver Resolver) []model.Row {
	out := make([]model.Row, len(rows))
	for i, row := range rows {
		decoded := row.Clone()
		for name, value := range decoded {
			if shardPattern.MatchString(name) {
				decoded[name] = decodeShard(value)
				continue
			}
			for _, group := range fieldGroups {
				if group.pattern.MatchString(name) {
					decoded[name] = decodeID(value, group.category, resolver)
					break
				}
			}
		}
		out[i] = decoded
	}
	return out
}

func decodeID(value any, category string, resolver Resolver) any {
	id, ok := asInt(value)
	if !ok {
		return value
	}
	name, ok := resolver.ResolveName(id, category)
	if !ok {
		return nil
	}
	return name
}

func decodeShard(value any) any {
	id, ok := asInt(value)
	if !ok {
		return value
	}
	name, ok := shardNames[id]
	if !ok {
		return nil
	}
	return name
}
