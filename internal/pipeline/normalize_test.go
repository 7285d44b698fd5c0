package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jestes5111/lol-ranked-data-collector/internal/model"
)

func TestNormalizeDenyList(t *testing.T) {
	rows := []model.Row{{
		"kills":     float64(3),
		"puuid":     "abc",
		"goldSpent": float64(11000),
		"role":      "CARRY",
	}}

	out := Normalize(rows, DefaultNormalizeConfig())
	require.Len(t, out, 1)

	assert.Contains(t, out[0], "kills")
	assert.NotContains(t, out[0], "puuid")
	assert.NotContains(t, out[0], "goldSpent")
	assert.NotContains(t, out[0], "role")
}

func TestNormalizePatternCategories(t *testing.T) {
	rows := []model.Row{{
		"kills":                     float64(3),
		"challenges.kda":            float64(4.5),
		"assistMePings":             float64(2),
		"riotIdGameName":            "Zenith",
		"challenges.nexusTakedowns": float64(1),
		"gameEndedInSurrender":      false,
	}}

	out := Normalize(rows, DefaultNormalizeConfig())

	assert.Contains(t, out[0], "kills")
	for _, dropped := range []string{
		"challenges.kda",
		"assistMePings",
		"riotIdGameName",
		"challenges.nexusTakedowns",
		"gameEndedInSurrender",
	} {
		assert.NotContains(t, out[0], dropped, "column %q should be dropped", dropped)
	}
}

// Pattern matching is case-sensitive: "Ping" must not match lowercase
// substrings of unrelated columns.
func TestNormalizeCaseSensitivePatterns(t *testing.T) {
	rows := []model.Row{{
		"camping":  "jungle",
		"Pingless": float64(1),
	}}

	out := Normalize(rows, DefaultNormalizeConfig())

	assert.Contains(t, out[0], "camping")
	assert.NotContains(t, out[0], "Pingless")
}

func TestNormalizeUnifiesColumns(t *testing.T) {
	rows := []model.Row{
		{"kills": float64(1), "newPatchField": float64(9)},
		{"kills": float64(2)},
	}

	out := Normalize(rows, DefaultNormalizeConfig())
	require.Len(t, out, 2)

	// The second match lacked newPatchField: it gets an explicit nil,
	// never a missing key.
	v, ok := out[1]["newPatchField"]
	require.True(t, ok, "missing column must be materialized")
	assert.Nil(t, v)
	assert.Equal(t, float64(9), out[0]["newPatchField"])
}

func TestNormalizeIdempotent(t *testing.T) {
	rows := []model.Row{
		{"kills": float64(1), "puuid": "abc", "challenges.kda": float64(3)},
		{"kills": float64(2), "win": true},
	}

	once := Normalize(rows, DefaultNormalizeConfig())
	twice := Normalize(once, DefaultNormalizeConfig())

	assert.Equal(t, once, twice)
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	row := model.Row{"kills": float64(1), "puuid": "abc"}
	Normalize([]model.Row{row}, DefaultNormalizeConfig())

	assert.Equal(t, model.Row{"kills": float64(1), "puuid": "abc"}, row)
}

func TestNormalizeUnknownColumnsPassThrough(t *testing.T) {
	rows := []model.Row{{"someFutureStat": float64(42)}}

	out := Normalize(rows, DefaultNormalizeConfig())
	assert.Equal(t, float64(42), out[0]["someFutureStat"])
}

func TestColumnsSorted(t *testing.T) {
	rows := Normalize([]model.Row{
		{"zeta": 1, "alpha": 2, "mid": 3},
	}, NormalizeConfig{})

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, Columns(rows))
	assert.Nil(t, Columns(nil))
}
