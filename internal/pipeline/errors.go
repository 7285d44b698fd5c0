package pipeline

import "errors"

var (
	// ErrParticipantNotFound means the tracked player's puuid was absent
	// from a match's participant list. Matches come from the player's own
	// history, so this is an upstream consistency fault, not a normal
	// empty case.
	ErrParticipantNotFound = errors.New("participant not found in match")

	// ErrMalformedRuneData means the rune-selection tree deviated from
	// the provider's fixed shape (two style branches, four primary and
	// two secondary selections, three stat shards).
	ErrMalformedRuneData = errors.New("malformed rune data")
)
