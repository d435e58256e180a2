package view

import "github.com/fantasyboard/fb-tui/internal/fantasy"

// Upstream stat ids for the column sets. These are provider-assigned and
// stable across seasons.
const (
	StatAtBats      = 6
	StatRuns        = 7
	StatHits        = 8
	StatRBI         = 9
	StatSingles     = 10
	StatDoubles     = 11
	StatTriples     = 12
	StatHomeRuns    = 13
	StatStolenBases = 16
	StatWalks       = 18
	StatHitByPitch  = 20

	StatERA            = 26
	StatWHIP           = 27
	StatWins           = 28
	StatSaves          = 32
	StatStrikeouts     = 42
	StatInningsPitched = 50
)

// Column is the stat-column hint handed to the presentation layer; which
// set applies depends on whether a batter or pitcher filter is active.
type Column struct {
	Title  string
	StatID int
}

var battingColumns = []Column{
	{Title: "AB", StatID: StatAtBats},
	{Title: "R", StatID: StatRuns},
	{Title: "H", StatID: StatHits},
	{Title: "HR", StatID: StatHomeRuns},
	{Title: "RBI", StatID: StatRBI},
	{Title: "SB", StatID: StatStolenBases},
	{Title: "BB", StatID: StatWalks},
}

var pitchingColumns = []Column{
	{Title: "IP", StatID: StatInningsPitched},
	{Title: "W", StatID: StatWins},
	{Title: "SV", StatID: StatSaves},
	{Title: "K", StatID: StatStrikeouts},
	{Title: "ERA", StatID: StatERA},
	{Title: "WHIP", StatID: StatWHIP},
}

// Columns returns the stat columns for a filter.
func Columns(filter fantasy.PlayerType) []Column {
	if filter.Pitching() {
		return pitchingColumns
	}

	return battingColumns
}
