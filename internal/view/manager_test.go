package view_test

import (
	"fmt"
	"testing"

	"github.com/fantasyboard/fb-tui/internal/fantasy"
	"github.com/fantasyboard/fb-tui/internal/view"
	"github.com/stretchr/testify/require"
)

type memPrefs struct {
	filter fantasy.PlayerType
	season fantasy.SeasonKind
	period fantasy.StatPeriod
}

func newMemPrefs() *memPrefs {
	return &memPrefs{filter: fantasy.AllBatters, season: fantasy.SeasonCurrent, period: fantasy.PeriodFull}
}

func (p *memPrefs) Filter() fantasy.PlayerType              { return p.filter }
func (p *memPrefs) SetFilter(filter fantasy.PlayerType)     { p.filter = filter }
func (p *memPrefs) Season() fantasy.SeasonKind              { return p.season }
func (p *memPrefs) SetSeason(season fantasy.SeasonKind)     { p.season = season }
func (p *memPrefs) TimePeriod() fantasy.StatPeriod          { return p.period }
func (p *memPrefs) SetTimePeriod(period fantasy.StatPeriod) { p.period = period }

func batters(count int) []fantasy.Player {
	players := make([]fantasy.Player, 0, count)
	for i := range count {
		players = append(players, fantasy.Player{
			Key:       fmt.Sprintf("p.%d", i),
			Name:      fantasy.Name{Full: fmt.Sprintf("Player %d", i)},
			Positions: "1B",
		})
	}

	return players
}

func TestManagerSeedsFromPrefs(t *testing.T) {
	prefs := newMemPrefs()
	prefs.filter = fantasy.ReliefPitcher
	prefs.season = fantasy.SeasonLast
	prefs.period = fantasy.PeriodLastWeek

	manager := view.NewManager(prefs)
	snapshot := manager.Snapshot()
	require.Equal(t, fantasy.ReliefPitcher, snapshot.ActiveFilter)
	require.Equal(t, fantasy.SeasonLast, snapshot.Season)
	require.Equal(t, fantasy.PeriodLastWeek, snapshot.Period)
	require.True(t, snapshot.IsLoading)

	require.Equal(t, fantasy.AllPitchers, manager.Selector().PlayerType)
}

func TestManagerSetDataset(t *testing.T) {
	manager := view.NewManager(newMemPrefs())
	selector := manager.Selector()

	require.True(t, manager.SetDataset(selector, batters(60)))

	snapshot := manager.Snapshot()
	require.False(t, snapshot.IsLoading)
	require.Len(t, snapshot.FilteredPlayers, view.PageSize)
	require.Equal(t, 60, snapshot.TotalMatchingPlayers)
	require.True(t, snapshot.HasMore)
}

func TestManagerSetDatasetStaleDropped(t *testing.T) {
	manager := view.NewManager(newMemPrefs())
	stale := manager.Selector()

	// User flips to the pitcher pool while the batter fetch is in flight.
	require.True(t, manager.OnFilterChange(fantasy.AllPitchers))
	require.False(t, manager.SetDataset(stale, batters(60)))
	require.Empty(t, manager.Snapshot().FilteredPlayers)
}

func TestManagerFilterChangeWithinPool(t *testing.T) {
	prefs := newMemPrefs()
	manager := view.NewManager(prefs)
	require.True(t, manager.SetDataset(manager.Selector(), batters(60)))

	manager.OnSearchChange("player 4")
	require.Equal(t, "player 4", manager.Snapshot().SearchTerm)

	// Narrowing within the batter pool is local: no refetch, dataset kept,
	// search cleared, reveal rewound.
	require.False(t, manager.OnFilterChange(fantasy.FirstBase))

	snapshot := manager.Snapshot()
	require.Equal(t, fantasy.FirstBase, snapshot.ActiveFilter)
	require.Empty(t, snapshot.SearchTerm)
	require.False(t, snapshot.IsLoading)
	require.Len(t, snapshot.FilteredPlayers, view.PageSize)
	require.Equal(t, fantasy.FirstBase, prefs.filter)
}

func TestManagerFilterChangeAcrossPools(t *testing.T) {
	manager := view.NewManager(newMemPrefs())
	require.True(t, manager.SetDataset(manager.Selector(), batters(60)))

	require.True(t, manager.OnFilterChange(fantasy.StartingPitcher))

	snapshot := manager.Snapshot()
	require.True(t, snapshot.IsLoading)
	require.Empty(t, snapshot.FilteredPlayers)
	require.Equal(t, fantasy.AllPitchers, manager.Selector().PlayerType)
}

func TestManagerLoadMore(t *testing.T) {
	manager := view.NewManager(newMemPrefs())
	require.True(t, manager.SetDataset(manager.Selector(), batters(60)))

	manager.LoadMore()
	snapshot := manager.Snapshot()
	require.Len(t, snapshot.FilteredPlayers, 50)
	require.True(t, snapshot.HasMore)

	// Clamped to the matching total on the final page.
	manager.LoadMore()
	snapshot = manager.Snapshot()
	require.Len(t, snapshot.FilteredPlayers, 60)
	require.False(t, snapshot.HasMore)

	// And it never exceeds it afterwards.
	manager.LoadMore()
	require.Len(t, manager.Snapshot().FilteredPlayers, 60)
}

func TestManagerLoadMoreFloor(t *testing.T) {
	manager := view.NewManager(newMemPrefs())
	require.True(t, manager.SetDataset(manager.Selector(), batters(10)))

	manager.LoadMore()
	snapshot := manager.Snapshot()
	require.Len(t, snapshot.FilteredPlayers, 10)
	require.False(t, snapshot.HasMore)

	// The reveal window itself never drops below one page, so a later,
	// larger dataset starts from a full first page.
	require.True(t, manager.SetDataset(manager.Selector(), batters(60)))
	require.Len(t, manager.Snapshot().FilteredPlayers, view.PageSize)
}

func TestManagerSearchResetsReveal(t *testing.T) {
	manager := view.NewManager(newMemPrefs())
	require.True(t, manager.SetDataset(manager.Selector(), batters(60)))

	manager.LoadMore()
	require.Len(t, manager.Snapshot().FilteredPlayers, 50)

	manager.OnSearchChange("player")
	require.Len(t, manager.Snapshot().FilteredPlayers, view.PageSize)
}

func TestManagerSeasonAndPeriodChanges(t *testing.T) {
	prefs := newMemPrefs()
	manager := view.NewManager(prefs)
	require.True(t, manager.SetDataset(manager.Selector(), batters(60)))

	manager.OnSeasonChange(fantasy.SeasonLast)
	require.True(t, manager.Snapshot().IsLoading)
	require.Empty(t, manager.Snapshot().FilteredPlayers)
	require.Equal(t, fantasy.SeasonLast, prefs.season)

	require.True(t, manager.SetDataset(manager.Selector(), batters(30)))

	manager.OnPeriodChange(fantasy.PeriodLastMonth)
	require.True(t, manager.Snapshot().IsLoading)
	require.Equal(t, fantasy.PeriodLastMonth, prefs.period)
}

func TestManagerColumnsFollowFilter(t *testing.T) {
	manager := view.NewManager(newMemPrefs())

	require.Equal(t, view.Columns(fantasy.AllBatters), manager.Snapshot().Columns)

	manager.OnFilterChange(fantasy.ReliefPitcher)
	require.Equal(t, view.Columns(fantasy.ReliefPitcher), manager.Snapshot().Columns)
}
