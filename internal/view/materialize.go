// Package view derives what the dashboard shows from whatever the fetch
// pipeline currently holds: position filtering, free-text search, rank
// assignment and the progressive reveal window.
package view

import (
	"strings"

	"github.com/fantasyboard/fb-tui/internal/fantasy"
)

// RankedPlayer decorates a record with its two ranks. OriginalRank is the
// 1-based position in the upstream's performance-sorted, unfiltered order
// and survives any filter or search change. DisplayRank is the 1-based
// position within the currently visible slice and is recomputed on every
// pass.
type RankedPlayer struct {
	fantasy.Player
	OriginalRank int
	DisplayRank  int
}

type Result struct {
	Visible       []RankedPlayer
	TotalMatching int
}

// ParsePositions splits a display position string such as "1B,OF" into
// individual codes, dropping empty segments ("C,,1B" parses to [C 1B]).
func ParsePositions(displayPosition string) []string {
	if displayPosition == "" {
		return nil
	}

	var positions []string
	for _, pos := range strings.Split(displayPosition, ",") {
		pos = strings.TrimSpace(pos)
		if pos != "" {
			positions = append(positions, pos)
		}
	}

	return positions
}

func isPitcherPos(pos string) bool {
	return pos == "P" || pos == "SP" || pos == "RP"
}

// Matches reports whether a display position string satisfies a filter.
// Pure and total: malformed input never panics, and a filter value outside
// the closed enumeration matches nothing.
func Matches(displayPosition string, filter fantasy.PlayerType) bool {
	positions := ParsePositions(displayPosition)

	anyPitcher := false
	for _, pos := range positions {
		if isPitcherPos(pos) {
			anyPitcher = true

			break
		}
	}

	has := func(want ...string) bool {
		for _, pos := range positions {
			for _, code := range want {
				if pos == code {
					return true
				}
			}
		}

		return false
	}

	switch filter {
	case fantasy.AllBatters, fantasy.Utility:
		// A player with no listed positions is vacuously not a pitcher.
		return !anyPitcher
	case fantasy.AllPitchers:
		return anyPitcher
	case fantasy.Catcher:
		return has("C")
	case fantasy.FirstBase:
		return has("1B")
	case fantasy.SecondBase:
		return has("2B")
	case fantasy.ShortStop:
		return has("SS")
	case fantasy.ThirdBase:
		return has("3B")
	case fantasy.OutField:
		return has("OF", "LF", "CF", "RF")
	case fantasy.StartingPitcher:
		return has("SP", "P")
	case fantasy.ReliefPitcher:
		return has("RP", "P")
	default:
		return false
	}
}

// Materialize recomputes the visible slice for the current filter, search
// term and reveal count. It is a pure function of its inputs; original
// ranks are re-derived from the unfiltered dataset on every pass, so a
// record that drops out of view and later returns keeps the rank it
// always had.
func Materialize(dataset []fantasy.Player, filter fantasy.PlayerType, searchTerm string, revealed int) Result {
	if len(dataset) == 0 {
		return Result{}
	}

	// Rank before filtering so the rank reflects the full upstream order.
	matched := make([]RankedPlayer, 0, len(dataset))
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	for index, player := range dataset {
		if !Matches(player.Positions, filter) {
			continue
		}

		if term != "" && !nameContains(player.Name, term) {
			continue
		}

		matched = append(matched, RankedPlayer{Player: player, OriginalRank: index + 1})
	}

	if revealed < 0 {
		revealed = 0
	}
	if revealed > len(matched) {
		revealed = len(matched)
	}

	visible := make([]RankedPlayer, revealed)
	copy(visible, matched[:revealed])
	for index := range visible {
		visible[index].DisplayRank = index + 1
	}

	return Result{Visible: visible, TotalMatching: len(matched)}
}

func nameContains(name fantasy.Name, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(name.Full), lowerTerm) ||
		strings.Contains(strings.ToLower(name.First), lowerTerm) ||
		strings.Contains(strings.ToLower(name.Last), lowerTerm)
}
