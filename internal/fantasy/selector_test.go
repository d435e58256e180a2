package fantasy_test

import (
	"testing"

	"github.com/fantasyboard/fb-tui/internal/fantasy"
	"github.com/stretchr/testify/require"
)

func TestPlayerTypeRoundTrip(t *testing.T) {
	for _, playerType := range fantasy.PlayerTypes {
		parsed, err := fantasy.ParsePlayerType(playerType.String())
		require.NoError(t, err)
		require.Equal(t, playerType, parsed)
	}

	_, err := fantasy.ParsePlayerType("DH")
	require.ErrorIs(t, err, fantasy.ErrPlayerType)
}

func TestPlayerTypeFetchType(t *testing.T) {
	require.Equal(t, fantasy.AllPitchers, fantasy.StartingPitcher.FetchType())
	require.Equal(t, fantasy.AllPitchers, fantasy.ReliefPitcher.FetchType())
	require.Equal(t, fantasy.AllPitchers, fantasy.AllPitchers.FetchType())

	require.Equal(t, fantasy.AllBatters, fantasy.Catcher.FetchType())
	require.Equal(t, fantasy.AllBatters, fantasy.Utility.FetchType())
	require.Equal(t, fantasy.AllBatters, fantasy.OutField.FetchType())
}

func TestPlayerTypePositionParam(t *testing.T) {
	require.Equal(t, "P", fantasy.AllPitchers.PositionParam())
	require.Equal(t, "P", fantasy.ReliefPitcher.PositionParam())
	require.Equal(t, "B", fantasy.AllBatters.PositionParam())
	require.Equal(t, "B", fantasy.ShortStop.PositionParam())
}

func TestStatType(t *testing.T) {
	require.Equal(t, "", fantasy.StatType(fantasy.SeasonCurrent, fantasy.PeriodFull))
	require.Equal(t, "lastmonth", fantasy.StatType(fantasy.SeasonCurrent, fantasy.PeriodLastMonth))
	require.Equal(t, "lastweek", fantasy.StatType(fantasy.SeasonCurrent, fantasy.PeriodLastWeek))

	// Prior seasons only exist as full-season stats.
	require.Equal(t, "", fantasy.StatType(fantasy.SeasonLast, fantasy.PeriodLastMonth))
	require.Equal(t, "", fantasy.StatType(fantasy.SeasonLast, fantasy.PeriodLastWeek))
}

func TestSelectorCacheKeyIgnoresPaging(t *testing.T) {
	first := fantasy.Selector{
		PlayerType: fantasy.Catcher, Start: 0, Count: 25,
		Season: fantasy.SeasonCurrent, Period: fantasy.PeriodFull,
	}
	second := fantasy.Selector{
		PlayerType: fantasy.FirstBase, Start: 150, Count: 25,
		Season: fantasy.SeasonCurrent, Period: fantasy.PeriodFull,
	}
	require.Equal(t, first.CacheKey(), second.CacheKey())

	pitchers := first
	pitchers.PlayerType = fantasy.StartingPitcher
	require.NotEqual(t, first.CacheKey(), pitchers.CacheKey())

	lastSeason := first
	lastSeason.Season = fantasy.SeasonLast
	require.NotEqual(t, first.CacheKey(), lastSeason.CacheKey())

	lastWeek := first
	lastWeek.Period = fantasy.PeriodLastWeek
	require.NotEqual(t, first.CacheKey(), lastWeek.CacheKey())
}
