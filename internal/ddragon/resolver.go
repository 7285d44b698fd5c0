// Package ddragon resolves the opaque numeric ids found in match data
// (items, summoner spells, runes) to display names using Riot's Data
// Dragon static data.
package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Lookup categories understood by the resolver.
const (
	CategoryItem          = "item"
	CategorySummonerSpell = "summoner_spell"
	CategoryRune          = "rune"
)

const (
	defaultBaseURL  = "https://ddragon.leagueoflegends.com"
	defaultLanguage = "en_US"
)

// Client fetches Data Dragon static data.
type Client struct {
	baseURL  string
	language string
	http     *http.Client
}

// NewClient returns a Data Dragon client for the default CDN and language.
func NewClient() *Client {
	return &Client{
		baseURL:  defaultBaseURL,
		language: defaultLanguage,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Resolver holds the id-to-name tables for one game version. Lookups are
// pure and safe for concurrent use once built.
type Resolver struct {
	Version string
	items   map[int]string
	spells  map[int]string
	runes   map[int]string
}

// ResolveName translates an id within a category to its display name.
// ok is false when the id is unknown or the category is not one this
// resolver serves.
func (r *Resolver) ResolveName(id int, category string) (name string, ok bool) {
	switch category {
	case CategoryItem:
		name, ok = r.items[id]
	case CategorySummonerSpell:
		name, ok = r.spells[id]
	case CategoryRune:
		name, ok = r.runes[id]
	}
	return name, ok
}

// itemFile is the shape of item.json: string item ids to item blocks.
type itemFile struct {
	Data map[string]struct {
		Name string `json:"name"`
	} `json:"data"`
}

// summonerFile is the shape of summoner.json: spell keys to blocks whose
// "key" field is the numeric id as a string.
type summonerFile struct {
	Data map[string]struct {
		Name string `json:"name"`
		Key  string `json:"key"`
	} `json:"data"`
}

// runeTree is one entry of runesReforged.json.
type runeTree struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slots []struct {
		Runes []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"runes"`
	} `json:"slots"`
}

// LoadResolver fetches the latest Data Dragon version and builds the
// id-to-name tables for items, summoner spells and runes.
func (c *Client) LoadResolver(ctx context.Context) (*Resolver, error) {
	version, err := c.latestVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("ddragon version: %w", err)
	}

	r := &Resolver{
		Version: version,
		items:   make(map[int]string),
		spells:  make(map[int]string),
		runes:   make(map[int]string),
	}

	var items itemFile
	if err := c.getJSON(ctx, c.dataURL(version, "item.json"), &items); err != nil {
		return nil, fmt.Errorf("ddragon items: %w", err)
	}
	for idStr, it := range items.Data {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		r.items[id] = it.Name
	}

	var spells summonerFile
	if err := c.getJSON(ctx, c.dataURL(version, "summoner.json"), &spells); err != nil {
		return nil, fmt.Errorf("ddragon summoner spells: %w", err)
	}
	for _, sp := range spells.Data {
		id, err := strconv.Atoi(sp.Key)
		if err != nil {
			continue
		}
		r.spells[id] = sp.Name
	}

	var trees []runeTree
	if err := c.getJSON(ctx, c.dataURL(version, "runesReforged.json"), &trees); err != nil {
		return nil, fmt.Errorf("ddragon runes: %w", err)
	}
	for _, tree := range trees {
		// Style ids appear as perk values too (rare in practice, but the
		// secondary style id shows up in some historical payloads).
		r.runes[tree.ID] = tree.Name
		for _, slot := range tree.Slots {
			for _, rn := range slot.Runes {
				r.runes[rn.ID] = rn.Name
			}
		}
	}

	return r, nil
}

// latestVersion returns the newest game version Data Dragon knows about.
func (c *Client) latestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := c.getJSON(ctx, c.baseURL+"/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("empty version list")
	}
	return versions[0], nil
}

func (c *Client) dataURL(version, file string) string {
	return fmt.Sprintf("%s/cdn/%s/data/%s/%s", c.baseURL, version, c.language, file)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
