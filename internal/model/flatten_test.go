package model

import (
	"reflect"
	"testing"
)

func TestFlatten(t *testing.T) {
	raw := RawParticipant{
		"kills": float64(7),
		"win":   true,
		"perks": map[string]any{
			"statPerks": map[string]any{
				"defense": float64(5002),
			},
			"styles": []any{"kept-as-value"},
		},
		"challenges": map[string]any{
			"kda": float64(4.5),
		},
	}

	row := Flatten(raw)

	want := Row{
		"kills":                   float64(7),
		"win":                     true,
		"perks.statPerks.defense": float64(5002),
		"perks.styles":            []any{"kept-as-value"},
		"challenges.kda":          float64(4.5),
	}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("Flatten() = %#v, want %#v", row, want)
	}
}

func TestFlattenDoesNotModifyInput(t *testing.T) {
	raw := RawParticipant{
		"perks": map[string]any{"statPerks": map[string]any{"defense": float64(5002)}},
	}

	Flatten(raw)

	if _, ok := raw["perks.statPerks.defense"]; ok {
		t.Error("Flatten wrote a dotted key into its input")
	}
}

func TestRuneFieldsApply(t *testing.T) {
	row := Row{
		"perks.statPerks.defense": float64(5002),
		"perks.statPerks.flex":    float64(5008),
		"perks.statPerks.offense": float64(5005),
		"kills":                   float64(7),
	}

	fields := &RuneFields{
		Keystone: 8005, Primary1: 9111, Primary2: 9104, Primary3: 8014,
		Secondary1: 8139, Secondary2: 8135,
		ShardDefense: 5002, ShardFlex: 5008, ShardOffense: 5005,
	}
	fields.Apply(row)

	if row[ColRuneKeystone] != 8005 || row[ColRuneShardFlex] != 5008 {
		t.Errorf("rune columns not applied: %#v", row)
	}
	for _, gone := range []string{
		"perks.statPerks.defense", "perks.statPerks.flex", "perks.statPerks.offense",
	} {
		if _, ok := row[gone]; ok {
			t.Errorf("source column %q should be renamed away", gone)
		}
	}
	if row["kills"] != float64(7) {
		t.Error("unrelated column modified")
	}
}

func TestRowClone(t *testing.T) {
	row := Row{"a": 1, "b": nil}
	clone := row.Clone()

	clone["a"] = 2
	if row["a"] != 1 {
		t.Error("Clone shares storage with the original")
	}
	if v, ok := clone["b"]; !ok || v != nil {
		t.Error("Clone dropped an explicit nil")
	}
}
