package fantasy

import (
	"encoding/json"
	"sort"
	"strconv"
)

// The upstream wire format is a JSON rendering of an XML tree. Collections
// arrive as objects keyed "0", "1", ... plus a "count" member, player
// metadata as an array of single-key objects, and stats wrapped one level
// deeper than anyone would like. The types below absorb that shape; the
// mapper flattens it.

// numericCollection holds an object keyed by numeric strings. Iteration
// order follows the numeric key order, which carries the upstream's
// performance ranking.
type numericCollection map[string]json.RawMessage

func (c numericCollection) entries() []json.RawMessage {
	keys := make([]int, 0, len(c))
	for key := range c {
		if index, err := strconv.Atoi(key); err == nil {
			keys = append(keys, index)
		}
	}

	sort.Ints(keys)

	items := make([]json.RawMessage, 0, len(keys))
	for _, key := range keys {
		items = append(items, c[strconv.Itoa(key)])
	}

	return items
}

// StatValue accepts either a JSON string or a bare number. The upstream
// sends "-" for missing values.
type StatValue struct {
	raw string
}

func (v *StatValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}

		v.raw = text

		return nil
	}

	if string(data) == "null" {
		v.raw = ""

		return nil
	}

	v.raw = string(data)

	return nil
}

func (v StatValue) String() string {
	return v.raw
}

func (v StatValue) Float64() (float64, bool) {
	value, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

type gamesEnvelope struct {
	FantasyContent struct {
		Games numericCollection `json:"games"`
	} `json:"fantasy_content"`
}

type gameEntry struct {
	Game []gameInfo `json:"game"`
}

type gameInfo struct {
	GameKey    string `json:"game_key"`
	GameID     string `json:"game_id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	Season     string `json:"season"`
	IsGameOver int    `json:"is_game_over"`
}

// playersEnvelope covers /game/{key}/players responses, where
// fantasy_content.game is a two element tuple of game info and the
// players collection.
type playersEnvelope struct {
	FantasyContent struct {
		Game []json.RawMessage `json:"game"`
	} `json:"fantasy_content"`
}

type playersWrapper struct {
	Players numericCollection `json:"players"`
}

// playerEntry is one tuple of [metadata array, stats wrapper].
type playerEntry struct {
	Player []json.RawMessage `json:"player"`
}

// playerMeta is the merge target for the metadata array. Each array item
// carries one or two of these fields; items that are not objects (the
// occasional empty array) are skipped.
type playerMeta struct {
	PlayerKey             string      `json:"player_key"`
	PlayerID              string      `json:"player_id"`
	Name                  *playerName `json:"name"`
	Status                string      `json:"status"`
	EditorialTeamAbbr     string      `json:"editorial_team_abbr"`
	EditorialTeamFullName string      `json:"editorial_team_full_name"`
	DisplayPosition       string      `json:"display_position"`
	PositionType          string      `json:"position_type"`
	UniformNumber         string      `json:"uniform_number"`
}

type playerName struct {
	Full  string `json:"full"`
	First string `json:"first"`
	Last  string `json:"last"`
}

type statsWrapper struct {
	PlayerStats *statsContainer `json:"player_stats"`
}

type statsContainer struct {
	Stats []statEntry `json:"stats"`
}

type statEntry struct {
	Stat wireStat `json:"stat"`
}

type wireStat struct {
	StatID StatValue `json:"stat_id"`
	Value  StatValue `json:"value"`
}

// errorBody is the upstream's error envelope on non-2xx responses.
type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}
