package riot

import "github.com/jestes5111/lol-ranked-data-collector/internal/model"

// Account holds the fields we need from /riot/account/v1/accounts/by-riot-id.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner holds the fields we need from /lol/summoner/v4/summoners/by-name.
type Summoner struct {
	ID            string `json:"id"`
	Puuid         string `json:"puuid"`
	Name          string `json:"name"`
	SummonerLevel int    `json:"summonerLevel"`
}

// Match is the response from /lol/match/v5/matches/{matchId}.
//
// Metadata.Participants is the enrollment-ordered puuid list and
// Info.Participants the matching ordered data blocks; the pipeline relies
// on that positional correspondence to locate the tracked player. The
// blocks stay untyped because their column set is what the normalization
// pipeline operates on.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata is the provider-side match envelope.
type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo carries the per-match payload.
type MatchInfo struct {
	GameCreation int64                  `json:"gameCreation"`
	GameDuration int                    `json:"gameDuration"`
	GameVersion  string                 `json:"gameVersion"`
	QueueID      int                    `json:"queueId"`
	Participants []model.RawParticipant `json:"participants"`
}
