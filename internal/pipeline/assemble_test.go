package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jestes5111/lol-ranked-data-collector/internal/model"
	"github.com/jestes5111/lol-ranked-data-collector/internal/riot"
)

// fakeFetcher serves matches from memory and fails for ids in errs.
type fakeFetcher struct {
	matches map[string]*riot.Match
	errs    map[string]error
}

func (f *fakeFetcher) GetMatch(_ context.Context, matchID string) (*riot.Match, error) {
	if err, ok := f.errs[matchID]; ok {
		return nil, err
	}
	m, ok := f.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("no such match %s", matchID)
	}
	return m, nil
}

const testPuuid = "tracked-player"

// testMatch builds a single-participant match for the tracked player with
// a valid rune tree and the given extra fields.
func testMatch(matchID string, extra map[string]any) *riot.Match {
	participant := validParticipant()
	participant["puuid"] = testPuuid
	for k, v := range extra {
		participant[k] = v
	}

	m := &riot.Match{}
	m.Metadata.MatchID = matchID
	m.Metadata.Participants = []string{testPuuid}
	m.Info.Participants = []model.RawParticipant{participant}
	return m
}

func testAssembler(f *fakeFetcher) *Assembler {
	return &Assembler{
		Fetcher:   f,
		Resolver:  fakeResolver{},
		Normalize: DefaultNormalizeConfig(),
	}
}

func TestAssemble(t *testing.T) {
	fetcher := &fakeFetcher{matches: map[string]*riot.Match{
		"NA1_1": testMatch("NA1_1", map[string]any{"kills": float64(3), "item0": float64(1001)}),
		"NA1_2": testMatch("NA1_2", map[string]any{"kills": float64(9)}),
	}}

	batch, err := testAssembler(fetcher).Assemble(context.Background(), []string{"NA1_1", "NA1_2"}, testPuuid)
	require.NoError(t, err)

	require.Len(t, batch.Rows, 2)
	assert.Equal(t, []string{"NA1_1", "NA1_2"}, batch.MatchIDs)

	// Columns are lexicographically sorted and identical across rows.
	assert.True(t, sort.StringsAreSorted(batch.Columns), "columns must be sorted")
	for _, row := range batch.Rows {
		assert.Len(t, row, len(batch.Columns))
		for _, col := range batch.Columns {
			_, ok := row[col]
			assert.True(t, ok, "row missing column %q", col)
		}
	}

	// Rune unpacking produced the nine flat fields.
	assert.Contains(t, batch.Columns, model.ColRuneKeystone)
	assert.Contains(t, batch.Columns, model.ColRuneShardOffense)
	assert.NotContains(t, batch.Columns, "perks.styles")

	// item0 only appears in the first match; the second gets an explicit
	// nil (and nil stays nil through best-effort decoding).
	assert.Nil(t, batch.Rows[1]["item0"])
	assert.Equal(t, float64(9), batch.Rows[1]["kills"])
}

func TestAssembleAbortsOnFailure(t *testing.T) {
	bad := testMatch("NA1_2", nil)
	delete(bad.Info.Participants[0]["perks"].(map[string]any), "styles")

	fetcher := &fakeFetcher{matches: map[string]*riot.Match{
		"NA1_1": testMatch("NA1_1", nil),
		"NA1_2": bad,
		"NA1_3": testMatch("NA1_3", nil),
	}}

	_, err := testAssembler(fetcher).Assemble(context.Background(),
		[]string{"NA1_1", "NA1_2", "NA1_3"}, testPuuid)

	require.ErrorIs(t, err, ErrMalformedRuneData)
	assert.Contains(t, err.Error(), "NA1_2", "error must name the failing match")
}

func TestAssembleSkipFailed(t *testing.T) {
	bad := testMatch("NA1_2", nil)
	bad.Metadata.Participants = []string{"someone-else"}

	fetcher := &fakeFetcher{
		matches: map[string]*riot.Match{
			"NA1_1": testMatch("NA1_1", nil),
			"NA1_2": bad,
			"NA1_4": testMatch("NA1_4", nil),
		},
		errs: map[string]error{"NA1_3": fmt.Errorf("boom")},
	}

	var logged []string
	asm := testAssembler(fetcher)
	asm.SkipFailed = true
	asm.Logf = func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	batch, err := asm.Assemble(context.Background(),
		[]string{"NA1_1", "NA1_2", "NA1_3", "NA1_4"}, testPuuid)
	require.NoError(t, err)

	assert.Equal(t, []string{"NA1_1", "NA1_4"}, batch.MatchIDs)
	require.Len(t, batch.Rows, 2)

	var skips int
	for _, line := range logged {
		if strings.Contains(line, "[skip]") {
			skips++
		}
	}
	assert.Equal(t, 2, skips, "each skipped match must be logged")
}

func TestAssembleEmptyInput(t *testing.T) {
	batch, err := testAssembler(&fakeFetcher{}).Assemble(context.Background(), nil, testPuuid)
	require.NoError(t, err)

	assert.Empty(t, batch.Rows)
	assert.Empty(t, batch.Columns)
}
