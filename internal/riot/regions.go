package riot

import (
	"fmt"
	"sort"
	"strings"
)

// Platform is a Riot platform routing value (the per-shard region code
// players know, e.g. NA1 or EUW1). Platform-scoped endpoints such as
// summoner-v4 live on the platform host; account-v1 and match-v5 live on
// the continental routing host the platform belongs to.
type Platform string

// QueueRankedSolo is Riot's queueId for Ranked Solo/Duo on Summoner's Rift.
const QueueRankedSolo = 420

// platformRouting maps every valid platform to its continental routing
// region. This doubles as the fixed set of accepted region inputs.
var platformRouting = map[Platform]string{
	"BR1":  "americas",
	"LA1":  "americas",
	"LA2":  "americas",
	"NA1":  "americas",
	"EUN1": "europe",
	"EUW1": "europe",
	"RU":   "europe",
	"TR1":  "europe",
	"JP1":  "asia",
	"KR":   "asia",
	"OC1":  "sea",
	"PH2":  "sea",
	"SG2":  "sea",
	"TH2":  "sea",
	"TW2":  "sea",
	"VN2":  "sea",
}

// ParsePlatform validates a user-supplied region code. Input is
// case-insensitive and surrounding whitespace is ignored. The error for an
// unknown code lists the full valid set.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := platformRouting[p]; !ok {
		return "", fmt.Errorf("%q is not a valid region; valid regions: %s",
			s, strings.Join(ValidPlatforms(), ", "))
	}
	return p, nil
}

// ValidPlatforms returns the accepted region codes in sorted order.
func ValidPlatforms() []string {
	out := make([]string, 0, len(platformRouting))
	for p := range platformRouting {
		out = append(out, string(p))
	}
	sort.Strings(out)
	return out
}

// Host returns the platform API host, e.g. na1.api.riotgames.com.
func (p Platform) Host() string {
	return strings.ToLower(string(p)) + ".api.riotgames.com"
}

// RoutingHost returns the continental routing host serving account-v1 and
// match-v5 for this platform, e.g. americas.api.riotgames.com.
func (p Platform) RoutingHost() string {
	return platformRouting[p] + ".api.riotgames.com"
}
