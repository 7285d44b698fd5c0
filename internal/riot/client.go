// Package riot provides a minimal client for the Riot Games API endpoints
// this tool needs: account-v1, summoner-v4 and match-v5.
package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrNotFound is returned when the API reports 404 for a resource.
	ErrNotFound = errors.New("not found")

	// ErrSummonerNotFound is returned when the API reports no player for
	// the given name or riot id. It wraps ErrNotFound.
	ErrSummonerNotFound = fmt.Errorf("summoner %w", ErrNotFound)
)

// Client is a rate-limited Riot API client bound to one platform region.
type Client struct {
	apiKey      string
	platform    Platform
	platformURL string
	routingURL  string
	limiter     *rateLimiter
	http        *http.Client
}

// NewClient returns a Riot API client for the given platform, authenticated
// with the given API key.
func NewClient(apiKey string, platform Platform) *Client {
	return &Client{
		apiKey:      apiKey,
		platform:    platform,
		platformURL: "https://" + platform.Host(),
		routingURL:  "https://" + platform.RoutingHost(),
		limiter:     newRateLimiter(),
		http:        &http.Client{Timeout: 30 * time.Second},
	}
}

// Platform returns the platform region this client is bound to.
func (c *Client) Platform() Platform {
	return c.platform
}

// get performs an authenticated GET against a full URL and JSON-decodes the
// response body into out. A 404 maps to ErrNotFound so callers can
// distinguish "no such resource" from transport failures.
func (c *Client) get(ctx context.Context, fullURL string, out any) error {
	c.limiter.Wait()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", fullURL, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusForbidden:
		return fmt.Errorf("GET %s: HTTP 403 (is the API key valid and unexpired?)", fullURL)
	default:
		return fmt.Errorf("GET %s: HTTP %d", fullURL, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetSummonerByName looks up a player by their summoner display name on
// this client's platform.
func (c *Client) GetSummonerByName(ctx context.Context, name string) (*Summoner, error) {
	var s Summoner
	u := c.platformURL + "/lol/summoner/v4/summoners/by-name/" + url.PathEscape(name)
	if err := c.get(ctx, u, &s); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrSummonerNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetAccountByRiotID looks up a player by their riot id (game name plus
// tag line).
func (c *Client) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error) {
	var a Account
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.routingURL, url.PathEscape(gameName), url.PathEscape(tagLine))
	if err := c.get(ctx, u, &a); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrSummonerNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetMatchIDs returns up to count recent match ids for a player, newest
// first. A queue of 0 means no queue filter.
func (c *Client) GetMatchIDs(ctx context.Context, puuid string, queue, count int) ([]string, error) {
	q := url.Values{}
	q.Set("count", fmt.Sprint(count))
	if queue > 0 {
		q.Set("queue", fmt.Sprint(queue))
	}
	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?%s",
		c.routingURL, url.PathEscape(puuid), q.Encode())

	var ids []string
	if err := c.get(ctx, u, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetMatch fetches one completed match by its match id.
func (c *Client) GetMatch(ctx context.Context, matchID string) (*Match, error) {
	var m Match
	u := c.routingURL + "/lol/match/v5/matches/" + url.PathEscape(matchID)
	if err := c.get(ctx, u, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
