package pipeline

import (
	"fmt"

	"github.com/jestes5111/lol-ranked-data-collector/internal/model"
)

// Selection counts fixed by the provider's schema: the primary style
// carries the keystone plus three minor runes, the secondary style two.
const (
	primarySelections   = 4
	secondarySelections = 2
)

// UnpackRunes extracts the nested rune-selection tree and the sibling stat
// shards out of a participant block into nine flat scalar fields. The tree
// shape is validated up front; any deviation is ErrMalformedRuneData. The
// input block is never mutated.
func UnpackRunes(p model.RawParticipant) (*model.RuneFields, error) {
	perks, ok := asObject(p["perks"])
	if !ok {
		return nil, fmt.Errorf("%w: missing perks block", ErrMalformedRuneData)
	}

	styles, ok := asArray(perks["styles"])
	if !ok {
		return nil, fmt.Errorf("%w: missing styles branches", ErrMalformedRuneData)
	}
	if len(styles) != 2 {
		return nil, fmt.Errorf("%w: expected 2 style branches, got %d",
			ErrMalformedRuneData, len(styles))
	}

	primary, err := styleSelections(styles[0], primarySelections)
	if err != nil {
		return nil, fmt.Errorf("%w: primary style: %v", ErrMalformedRuneData, err)
	}
	secondary, err := styleSelections(styles[1], secondarySelections)
	if err != nil {
		return nil, fmt.Errorf("%w: secondary style: %v", ErrMalformedRuneData, err)
	}

	statPerks, ok := asObject(perks["statPerks"])
	if !ok {
		return nil, fmt.Errorf("%w: missing statPerks block", ErrMalformedRuneData)
	}
	shards := make([]int, 0, 3)
	for _, key := range []string{"defense", "flex", "offense"} {
		id, ok := asInt(statPerks[key])
		if !ok {
			return nil, fmt.Errorf("%w: missing stat shard %q", ErrMalformedRuneData, key)
		}
		shards = append(shards, id)
	}

	return &model.RuneFields{
		Keystone:     primary[0],
		Primary1:     primary[1],
		Primary2:     primary[2],
		Primary3:     primary[3],
		Secondary1:   secondary[0],
		Secondary2:   secondary[1],
		ShardDefense: shards[0],
		ShardFlex:    shards[1],
		ShardOffense: shards[2],
	}, nil
}

// styleSelections returns the ordered perk ids of one style branch after
// checking it carries exactly want selections.
func styleSelections(v any, want int) ([]int, error) {
	style, ok := asObject(v)
	if !ok {
		return nil, fmt.Errorf("branch is not an object")
	}
	selections, ok := asArray(style["selections"])
	if !ok {
		return nil, fmt.Errorf("missing selections")
	}
	if len(selections) != want {
		return nil, fmt.Errorf("expected %d selections, got %d", want, len(selections))
	}

	perks := make([]int, 0, want)
	for i, sel := range selections {
		obj, ok := asObject(sel)
		if !ok {
			return nil, fmt.Errorf("selection %d is not an object", i)
		}
		id, ok := asInt(obj["perk"])
		if !ok {
			return nil, fmt.Errorf("selection %d has no perk id", i)
		}
		perks = append(perks, id)
	}
	return perks, nil
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asArray(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// asInt accepts the numeric encodings that reach the pipeline: float64
// from JSON decoding and int from fields set by earlier stages.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
