package model

// RawParticipant is one player's untyped per-match data block exactly as
// the match-v5 endpoint reports it. The column set varies slightly between
// matches (Riot adds optional fields per patch), which is why this stays a
// generic mapping instead of a struct: the pipeline's whole job is taming
// that shape. Read-only by convention; pipeline stages project it into new
// rows instead of mutating it.
type RawParticipant map[string]any

// Row is one flat, wide row of the output dataset: column name to scalar
// value. A nil value is an explicit null (the column exists but carries no
// value); absence of a key means the column has not been normalized in yet.
type Row map[string]any

// Clone returns a shallow copy of the row. Values are scalars (or replaced
// wholesale), so a shallow copy is enough to keep pipeline stages pure.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Batch is the finished dataset: one row per match, every row carrying the
// identical column set, columns in ascending lexicographic order. MatchIDs
// is parallel to Rows and records which match produced each row.
type Batch struct {
	Columns  []string
	MatchIDs []string
	Rows     []Row
}

// BatchMeta describes a stored batch.
type BatchMeta struct {
	ID           int64
	SummonerName string
	Region       string
	QueueID      int
	CreatedAt    string
	MatchCount   int
}

// Column names produced by the rune unpacker. The shard names follow the
// runeShard* convention regardless of what the provider calls the source
// fields.
const (
	ColRuneKeystone     = "runeKeystone"
	ColRunePrimary1     = "runePrimary1"
	ColRunePrimary2     = "runePrimary2"
	ColRunePrimary3     = "runePrimary3"
	ColRuneSecondary1   = "runeSecondary1"
	ColRuneSecondary2   = "runeSecondary2"
	ColRuneShardDefense = "runeShardDefense"
	ColRuneShardFlex    = "runeShardFlex"
	ColRuneShardOffense = "runeShardOffense"
)

// RuneFields holds the nine scalar fields unpacked from a participant's
// rune-selection tree: the keystone, three primary-tree minor runes, two
// secondary-tree runes, and the three stat shards. Values are raw perk ids;
// decoding to names happens later in the pipeline.
type RuneFields struct {
	Keystone     int
	Primary1     int
	Primary2     int
	Primary3     int
	Secondary1   int
	Secondary2   int
	ShardDefense int
	ShardFlex    int
	ShardOffense int
}

// Apply writes the nine rune columns into row and removes the flattened
// statPerks source columns they replace (the styles tree itself is handled
// by the normalizer's deny-list).
func (f *RuneFields) Apply(row Row) {
	row[ColRuneKeystone] = f.Keystone
	row[ColRunePrimary1] = f.Primary1
	row[ColRunePrimary2] = f.Primary2
	row[ColRunePrimary3] = f.Primary3
	row[ColRuneSecondary1] = f.Secondary1
	row[ColRuneSecondary2] = f.Secondary2
	row[ColRuneShardDefense] = f.ShardDefense
	row[ColRuneShardFlex] = f.ShardFlex
	row[ColRuneShardOffense] = f.ShardOffense

	delete(row, "perks.statPerks.defense")
	delete(row, "perks.statPerks.flex")
	delete(row, "perks.statPerks.offense")
}
