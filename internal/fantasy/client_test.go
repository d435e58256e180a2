package fantasy_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/fantasyboard/fb-tui/internal/auth"
	"github.com/fantasyboard/fb-tui/internal/fantasy"
	"github.com/stretchr/testify/require"
)

const gamesBody = `{"fantasy_content":{"games":{"0":{"game":[{"game_key":"458","game_id":"458","name":"Baseball","code":"mlb","season":"2026"}]},"count":1}}}`

// playersBody carries three ranked players. The collection is an object
// keyed by numeric strings; key order, not document order, is the ranking.
const playersBody = `{"fantasy_content":{"game":[
  {"game_key":"458"},
  {"players":{
    "2":{"player":[
      [{"player_key":"458.p.3"},{"player_id":"3"},{"name":{"full":"Carl Third","first":"Carl","last":"Third"}},{"editorial_team_abbr":"BOS"},{"display_position":"OF"}],
      {"player_stats":{"stats":[{"stat":{"stat_id":"6","value":"300"}}]}}
    ]},
    "0":{"player":[
      [{"player_key":"458.p.1"},{"player_id":"1"},{"name":{"full":"Abe First","first":"Abe","last":"First"}},[],{"editorial_team_abbr":"NYY"},{"editorial_team_full_name":"New York Yankees"},{"display_position":"1B,OF"},{"uniform_number":"99"}],
      {"player_stats":{"stats":[{"stat":{"stat_id":"6","value":"120"}},{"stat":{"stat_id":13,"value":42}},{"stat":{"stat_id":"26","value":"-"}}]}}
    ]},
    "1":{"player":[
      [{"player_key":"458.p.2"},{"player_id":"2"},{"name":{"full":"Ben Second","first":"Ben","last":"Second"}},{"display_position":"C"}],
      {"player_stats":{"stats":[]}}
    ]},
    "count":3
  }}
]}}`

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(_ context.Context) (string, error) {
	return s.token, s.err
}

type recordingServer struct {
	*httptest.Server

	mu    sync.Mutex
	paths []string
	auths []string
}

func newRecordingServer(t *testing.T) *recordingServer {
	t.Helper()

	recorder := &recordingServer{}
	recorder.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		recorder.mu.Lock()
		recorder.paths = append(recorder.paths, req.URL.Path)
		recorder.auths = append(recorder.auths, req.Header.Get("Authorization"))
		recorder.mu.Unlock()

		if req.URL.Query().Get("format") != "json" {
			writer.WriteHeader(http.StatusBadRequest)

			return
		}

		writer.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(req.URL.Path, "/games;"):
			_, _ = writer.Write([]byte(gamesBody))
		case strings.HasPrefix(req.URL.Path, "/game/458/players;"):
			_, _ = writer.Write([]byte(playersBody))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(recorder.Close)

	return recorder
}

func (r *recordingServer) requested() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.paths...)
}

func TestPlayersMapsAndPreservesRankOrder(t *testing.T) {
	server := newRecordingServer(t)

	client := fantasy.NewClient(server.URL, staticTokens{token: "tok"}, server.Client())
	client.SetCurrentSeason(2026)

	players, err := client.Players(context.Background(), fantasy.Selector{
		PlayerType: fantasy.AllBatters, Start: 0, Count: 25,
		Season: fantasy.SeasonCurrent, Period: fantasy.PeriodFull,
	})
	require.NoError(t, err)
	require.Len(t, players, 3)

	require.Equal(t, "458.p.1", players[0].Key)
	require.Equal(t, "458.p.2", players[1].Key)
	require.Equal(t, "458.p.3", players[2].Key)

	first := players[0]
	require.Equal(t, "Abe First", first.Name.Full)
	require.Equal(t, "NYY", first.Team)
	require.Equal(t, "New York Yankees", first.TeamFull)
	require.Equal(t, "1B,OF", first.Positions)
	require.Equal(t, "99", first.Number)

	atBats, found := first.Stat(6)
	require.True(t, found)
	require.Equal(t, "120", atBats)

	// Numeric stat ids and values decode the same as quoted ones.
	homers, found := first.Stat(13)
	require.True(t, found)
	require.Equal(t, "42", homers)

	missing, found := first.Stat(26)
	require.True(t, found)
	require.Equal(t, "-", missing)

	_, found = first.Stat(999)
	require.False(t, found)

	paths := server.requested()
	require.Len(t, paths, 2)
	require.Equal(t, "/games;game_codes=mlb;seasons=2026", paths[0])
	require.Equal(t, "/game/458/players;start=0;count=25;sort=AR;status=A;position=B/stats", paths[1])

	server.mu.Lock()
	for _, header := range server.auths {
		require.Equal(t, "Bearer tok", header)
	}
	server.mu.Unlock()
}

func TestPlayersGameKeyCachedPerSeason(t *testing.T) {
	server := newRecordingServer(t)

	client := fantasy.NewClient(server.URL, staticTokens{token: "tok"}, server.Client())
	client.SetCurrentSeason(2026)

	selector := fantasy.Selector{PlayerType: fantasy.AllBatters, Count: 25, Season: fantasy.SeasonCurrent}
	for start := 0; start < 3; start++ {
		selector.Start = start * 25
		_, err := client.Players(context.Background(), selector)
		require.NoError(t, err)
	}

	var gameLookups int
	for _, path := range server.requested() {
		if strings.HasPrefix(path, "/games;") {
			gameLookups++
		}
	}
	require.Equal(t, 1, gameLookups)
}

func TestPlayersSelectorShapesPath(t *testing.T) {
	server := newRecordingServer(t)

	client := fantasy.NewClient(server.URL, staticTokens{token: "tok"}, server.Client())
	client.SetCurrentSeason(2026)

	// Pitcher pool with a trailing window adds position=P and type.
	_, err := client.Players(context.Background(), fantasy.Selector{
		PlayerType: fantasy.ReliefPitcher, Start: 50, Count: 25,
		Season: fantasy.SeasonCurrent, Period: fantasy.PeriodLastWeek,
	})
	require.NoError(t, err)

	paths := server.requested()
	require.Equal(t, "/game/458/players;start=50;count=25;sort=AR;status=A;position=P/stats;type=lastweek", paths[len(paths)-1])
}

func TestPlayersLastSeasonUsesPriorYear(t *testing.T) {
	server := newRecordingServer(t)

	client := fantasy.NewClient(server.URL, staticTokens{token: "tok"}, server.Client())
	client.SetCurrentSeason(2026)

	_, err := client.Players(context.Background(), fantasy.Selector{
		PlayerType: fantasy.AllBatters, Count: 25,
		Season: fantasy.SeasonLast, Period: fantasy.PeriodLastWeek,
	})
	require.NoError(t, err)

	paths := server.requested()
	require.Equal(t, "/games;game_codes=mlb;seasons=2025", paths[0])
	// The trailing window does not apply to a finished season.
	require.NotContains(t, paths[len(paths)-1], ";type=")
}

func TestGameKeyNoGame(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"fantasy_content":{"games":{"count":0}}}`))
	}))
	defer server.Close()

	client := fantasy.NewClient(server.URL, staticTokens{token: "tok"}, server.Client())

	_, err := client.GameKey(context.Background(), "1999")
	require.ErrorIs(t, err, fantasy.ErrNoGame)
}

func TestPlayersUpstreamErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusInternalServerError)
		_, _ = writer.Write([]byte(`{"error":"server_error","error_description":"backend unavailable"}`))
	}))
	defer server.Close()

	client := fantasy.NewClient(server.URL, staticTokens{token: "tok"}, server.Client())

	_, err := client.Players(context.Background(), fantasy.Selector{PlayerType: fantasy.AllBatters, Count: 25})
	require.Error(t, err)
	require.Contains(t, err.Error(), "backend unavailable")
}

func TestPlayersSessionExpiredShortCircuits(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		hits++
	}))
	defer server.Close()

	client := fantasy.NewClient(server.URL, staticTokens{err: auth.ErrSessionExpired}, server.Client())

	_, err := client.Players(context.Background(), fantasy.Selector{PlayerType: fantasy.AllBatters, Count: 25})
	require.True(t, errors.Is(err, auth.ErrSessionExpired))
	require.Zero(t, hits)
}
