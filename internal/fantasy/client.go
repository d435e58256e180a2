package fantasy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/fantasyboard/fb-tui/internal/encoding"
)

const DefaultBaseURL = "https://fantasysports.yahooapis.com/fantasy/v2"

var (
	// ErrNoGame is returned when the provider has no game entry for the
	// requested season. There is no sensible partial result for this.
	ErrNoGame = errors.New("no game found for season")

	errFetchGames     = errors.New("failed to fetch games")
	errFetchPlayers   = errors.New("failed to fetch players")
	errUpstreamStatus = errors.New("upstream error status")
)

// TokenSource supplies a bearer token for each request. Satisfied by
// *auth.Manager; a poisoned credential surfaces here as an error before
// any network traffic happens.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client issues single-batch calls against the fantasy provider. One
// instance owns a private season to game-key lookup, fetched once per
// season and never evicted; at most two seasons are queried in a session.
type Client struct {
	baseURL       string
	tokens        TokenSource
	client        *http.Client
	currentSeason int

	mu       sync.Mutex
	gameKeys map[string]string
}

func NewClient(baseURL string, tokens TokenSource, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		baseURL:       baseURL,
		tokens:        tokens,
		client:        client,
		currentSeason: time.Now().Year(),
		gameKeys:      make(map[string]string),
	}
}

// SetCurrentSeason overrides the season year used for SeasonCurrent
// selectors. Zero resets nothing; the calendar year is the default.
func (c *Client) SetCurrentSeason(year int) {
	if year > 0 {
		c.currentSeason = year
	}
}

func (c *Client) seasonYear(kind SeasonKind) string {
	if kind == SeasonLast {
		return strconv.Itoa(c.currentSeason - 1)
	}

	return strconv.Itoa(c.currentSeason)
}

// GameKey resolves the opaque game identifier for a season year, caching
// the answer for the lifetime of this client.
func (c *Client) GameKey(ctx context.Context, year string) (string, error) {
	c.mu.Lock()
	key, found := c.gameKeys[year]
	c.mu.Unlock()

	if found {
		return key, nil
	}

	body, errBody := c.get(ctx, fmt.Sprintf("/games;game_codes=mlb;seasons=%s", year))
	if errBody != nil {
		return "", errors.Join(errBody, errFetchGames)
	}

	envelope, errDecode := encoding.UnmarshalJSON[gamesEnvelope](bytes.NewReader(body))
	if errDecode != nil {
		return "", errors.Join(errDecode, errFetchGames)
	}

	games := mapGames(envelope)
	if len(games) == 0 {
		return "", fmt.Errorf("%w: mlb %s", ErrNoGame, year)
	}

	key = games[0].GameKey

	c.mu.Lock()
	c.gameKeys[year] = key
	c.mu.Unlock()

	return key, nil
}

// Players fetches one batch of records for the selector, mapped into the
// canonical shape, in the upstream's performance-sorted order. Transport
// and parse failures propagate; the orchestrator decides what to absorb.
func (c *Client) Players(ctx context.Context, selector Selector) ([]Player, error) {
	gameKey, errKey := c.GameKey(ctx, c.seasonYear(selector.Season))
	if errKey != nil {
		return nil, errKey
	}

	path := fmt.Sprintf("/game/%s/players;start=%d;count=%d;sort=AR;status=A;position=%s/stats",
		gameKey, selector.Start, selector.Count, selector.PlayerType.PositionParam())
	if statType := StatType(selector.Season, selector.Period); statType != "" {
		path += ";type=" + statType
	}

	body, errBody := c.get(ctx, path)
	if errBody != nil {
		return nil, errors.Join(errBody, errFetchPlayers)
	}

	envelope, errDecode := encoding.UnmarshalJSON[playersEnvelope](bytes.NewReader(body))
	if errDecode != nil {
		return nil, errors.Join(errDecode, errFetchPlayers)
	}

	return mapPlayers(envelope), nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	token, errToken := c.tokens.Token(ctx)
	if errToken != nil {
		return nil, errToken
	}

	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?format=json", nil)
	if errReq != nil {
		return nil, errReq
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, errResp := c.client.Do(req)
	if errResp != nil {
		return nil, errResp
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}()

	body, errRead := io.ReadAll(resp.Body)
	if errRead != nil {
		return nil, errRead
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, errDetail := encoding.UnmarshalJSON[errorBody](bytes.NewReader(body))
		if errDetail == nil && detail.Description != "" {
			return nil, fmt.Errorf("%w: %d %s", errUpstreamStatus, resp.StatusCode, detail.Description)
		}

		return nil, fmt.Errorf("%w: %d", errUpstreamStatus, resp.StatusCode)
	}

	return body, nil
}
