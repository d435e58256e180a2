package fantasy

import (
	"errors"
	"fmt"
)

var ErrPlayerType = errors.New("unknown player type")

// PlayerType is the closed set of position filters the dashboard understands.
// New values must be added here and to the switches below so the compiler
// keeps the derivations exhaustive.
type PlayerType int

const (
	AllBatters PlayerType = iota
	AllPitchers
	Catcher
	FirstBase
	SecondBase
	ShortStop
	ThirdBase
	OutField
	Utility
	StartingPitcher
	ReliefPitcher
)

// PlayerTypes enumerates every valid filter, in display order.
var PlayerTypes = []PlayerType{
	AllBatters, AllPitchers, Catcher, FirstBase, SecondBase,
	ShortStop, ThirdBase, OutField, Utility, StartingPitcher, ReliefPitcher,
}

func (p PlayerType) String() string {
	switch p {
	case AllBatters:
		return "ALL_BATTERS"
	case AllPitchers:
		return "ALL_PITCHERS"
	case Catcher:
		return "C"
	case FirstBase:
		return "1B"
	case SecondBase:
		return "2B"
	case ShortStop:
		return "SS"
	case ThirdBase:
		return "3B"
	case OutField:
		return "OF"
	case Utility:
		return "Util"
	case StartingPitcher:
		return "SP"
	case ReliefPitcher:
		return "RP"
	default:
		return "UNKNOWN"
	}
}

// Label is the short human form shown on the filter tabs.
func (p PlayerType) Label() string {
	switch p {
	case AllBatters:
		return "Batters"
	case AllPitchers:
		return "Pitchers"
	default:
		return p.String()
	}
}

// Pitching reports whether this filter selects from the pitcher pool.
func (p PlayerType) Pitching() bool {
	switch p {
	case AllPitchers, StartingPitcher, ReliefPitcher:
		return true
	case AllBatters, Catcher, FirstBase, SecondBase, ShortStop, ThirdBase, OutField, Utility:
		return false
	default:
		return false
	}
}

// PositionParam derives the upstream position-group parameter. Pitcher
// filters query the "P" group, everything else the batter group "B".
func (p PlayerType) PositionParam() string {
	if p.Pitching() {
		return "P"
	}

	return "B"
}

// FetchType collapses a filter to the player group actually fetched. The
// upstream only distinguishes batters from pitchers; the narrower filters
// are applied client side.
func (p PlayerType) FetchType() PlayerType {
	if p.Pitching() {
		return AllPitchers
	}

	return AllBatters
}

func ParsePlayerType(value string) (PlayerType, error) {
	for _, playerType := range PlayerTypes {
		if playerType.String() == value {
			return playerType, nil
		}
	}

	return AllBatters, fmt.Errorf("%w: %s", ErrPlayerType, value)
}

// SeasonKind picks between the current season and the one before it. The
// prior season is queried through its own game key, not a stat type.
type SeasonKind string

const (
	SeasonCurrent SeasonKind = "current"
	SeasonLast    SeasonKind = "last"
)

// StatPeriod narrows current-season stats to a trailing window.
type StatPeriod string

const (
	PeriodFull      StatPeriod = "full"
	PeriodLastMonth StatPeriod = "lastmonth"
	PeriodLastWeek  StatPeriod = "lastweek"
)

// StatType derives the upstream stats type parameter from the season and
// period selection. An empty result means no type parameter is sent.
func StatType(season SeasonKind, period StatPeriod) string {
	if season == SeasonLast {
		return ""
	}

	switch period {
	case PeriodLastMonth:
		return "lastmonth"
	case PeriodLastWeek:
		return "lastweek"
	case PeriodFull:
		fallthrough
	default:
		return ""
	}
}

// Selector identifies one batch of the upstream catalog.
type Selector struct {
	PlayerType PlayerType
	Start      int
	Count      int
	Season     SeasonKind
	Period     StatPeriod
}

// CacheKey identifies the logical dataset a selector belongs to, ignoring
// the paging window. Late fetch results are dropped when their key no
// longer matches the active one.
func (s Selector) CacheKey() string {
	return fmt.Sprintf("%s:%s:%s", s.PlayerType.FetchType(), s.Season, s.Period)
}
