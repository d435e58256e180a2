package fantasy

import (
	"encoding/json"
	"log/slog"
	"strconv"
)

// mapGames flattens the games envelope into the entries for one season.
func mapGames(envelope gamesEnvelope) []gameInfo {
	var games []gameInfo

	for _, raw := range envelope.FantasyContent.Games.entries() {
		var entry gameEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			slog.Debug("Skipping undecodable game entry", slog.String("error", err.Error()))

			continue
		}

		if len(entry.Game) == 0 {
			continue
		}

		games = append(games, entry.Game[0])
	}

	return games
}

// mapPlayers flattens the players envelope into canonical records,
// preserving the upstream order. Records missing both a key and a name are
// malformed upstream noise and dropped silently.
func mapPlayers(envelope playersEnvelope) []Player {
	if len(envelope.FantasyContent.Game) < 2 {
		return nil
	}

	var wrapper playersWrapper
	if err := json.Unmarshal(envelope.FantasyContent.Game[1], &wrapper); err != nil {
		return nil
	}

	var players []Player

	for _, raw := range wrapper.Players.entries() {
		var entry playerEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			slog.Debug("Skipping undecodable player entry", slog.String("error", err.Error()))

			continue
		}

		player, ok := mapPlayer(entry)
		if !ok {
			continue
		}

		players = append(players, player)
	}

	return players
}

func mapPlayer(entry playerEntry) (Player, bool) {
	if len(entry.Player) == 0 {
		return Player{}, false
	}

	meta := mergeMeta(entry.Player[0])

	player := Player{
		Key:       meta.PlayerKey,
		ID:        meta.PlayerID,
		Team:      meta.EditorialTeamAbbr,
		TeamFull:  meta.EditorialTeamFullName,
		Positions: meta.DisplayPosition,
		Number:    meta.UniformNumber,
		Status:    meta.Status,
	}

	if meta.Name != nil {
		player.Name = Name{Full: meta.Name.Full, First: meta.Name.First, Last: meta.Name.Last}
	}

	if player.Key == "" && player.Name.Full == "" {
		return Player{}, false
	}

	if len(entry.Player) > 1 {
		player.Stats, player.statByID = mapStats(entry.Player[1])
	}

	return player, true
}

// mergeMeta folds the metadata array of single-key objects into one struct.
// Non-object items (empty arrays) fail to unmarshal and are skipped.
func mergeMeta(raw json.RawMessage) playerMeta {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return playerMeta{}
	}

	var merged playerMeta

	for _, item := range items {
		var probe playerMeta
		if err := json.Unmarshal(item, &probe); err != nil {
			continue
		}

		if probe.PlayerKey != "" {
			merged.PlayerKey = probe.PlayerKey
		}
		if probe.PlayerID != "" {
			merged.PlayerID = probe.PlayerID
		}
		if probe.Name != nil {
			merged.Name = probe.Name
		}
		if probe.Status != "" {
			merged.Status = probe.Status
		}
		if probe.EditorialTeamAbbr != "" {
			merged.EditorialTeamAbbr = probe.EditorialTeamAbbr
		}
		if probe.EditorialTeamFullName != "" {
			merged.EditorialTeamFullName = probe.EditorialTeamFullName
		}
		if probe.DisplayPosition != "" {
			merged.DisplayPosition = probe.DisplayPosition
		}
		if probe.PositionType != "" {
			merged.PositionType = probe.PositionType
		}
		if probe.UniformNumber != "" {
			merged.UniformNumber = probe.UniformNumber
		}
	}

	return merged
}

func mapStats(raw json.RawMessage) ([]Stat, map[int]string) {
	var wrapper statsWrapper
	if err := json.Unmarshal(raw, &wrapper); err != nil || wrapper.PlayerStats == nil {
		return nil, nil
	}

	stats := make([]Stat, 0, len(wrapper.PlayerStats.Stats))
	byID := make(map[int]string, len(wrapper.PlayerStats.Stats))

	for _, entry := range wrapper.PlayerStats.Stats {
		id, errID := strconv.Atoi(entry.Stat.StatID.String())
		if errID != nil {
			continue
		}

		stats = append(stats, Stat{ID: id, Value: entry.Stat.Value.String()})
		byID[id] = entry.Stat.Value.String()
	}

	return stats, byID
}
