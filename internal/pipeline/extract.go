// Package pipeline reshapes raw match records into a flat one-row-per-match
// dataset: locate the tracked participant, unpack the nested rune tree,
// drop noise columns, decode numeric ids to names, and assemble the batch.
package pipeline

import (
	"fmt"

	"github.com/jestes5111/lol-ranked-data-collector/internal/model"
	"github.com/jestes5111/lol-ranked-data-collector/internal/riot"
)

// Extract locates the tracked player's data block within a raw match.
// The metadata participant list is enrollment-ordered and positionally
// aligned with the info participant blocks; the player's index in the
// former selects the latter. Returns ErrParticipantNotFound when the
// puuid is absent or the two lists disagree in length.
func Extract(match *riot.Match, puuid string) (model.RawParticipant, error) {
	for i, id := range match.Metadata.Participants {
		if id != puuid {
			continue
		}
		if i >= len(match.Info.Participants) {
			return nil, fmt.Errorf("%w: %s lists %d participant ids but %d data blocks",
				ErrParticipantNotFound, match.Metadata.MatchID,
				len(match.Metadata.Participants), len(match.Info.Participants))
		}
		return match.Info.Participants[i], nil
	}
	return nil, fmt.Errorf("%w: puuid %s not in match %s",
		ErrParticipantNotFound, puuid, match.Metadata.MatchID)
}
