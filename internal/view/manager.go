package view

import (
	"sync"

	"github.com/fantasyboard/fb-tui/internal/fantasy"
)

// PageSize is both the reveal increment and the initial reveal count.
const PageSize = 25

// FilterStore persists the user's last filter/season/period choices across
// sessions. Satisfied by *prefs.Store.
type FilterStore interface {
	Filter() fantasy.PlayerType
	SetFilter(filter fantasy.PlayerType)
	Season() fantasy.SeasonKind
	SetSeason(season fantasy.SeasonKind)
	TimePeriod() fantasy.StatPeriod
	SetTimePeriod(period fantasy.StatPeriod)
}

// Snapshot is the read-mostly view model handed to the presentation layer,
// recomputed on every relevant state change.
type Snapshot struct {
	FilteredPlayers      []RankedPlayer
	Columns              []Column
	IsLoading            bool
	TotalFilteredCount   int
	TotalMatchingPlayers int
	HasMore              bool
	ActiveFilter         fantasy.PlayerType
	SearchTerm           string
	Season               fantasy.SeasonKind
	Period               fantasy.StatPeriod
}

// Manager owns the UI-facing state: active filter, search text and reveal
// count, plus the current fetched dataset. Datasets are replaced wholesale
// per fetch cycle; a late result whose selector no longer matches what the
// UI wants is dropped by cache-key identity.
type Manager struct {
	mu       sync.RWMutex
	dataset  []fantasy.Player
	filter   fantasy.PlayerType
	season   fantasy.SeasonKind
	period   fantasy.StatPeriod
	search   string
	revealed int
	loading  bool
	prefs    FilterStore
}

func NewManager(prefs FilterStore) *Manager {
	manager := &Manager{
		filter:   fantasy.AllBatters,
		season:   fantasy.SeasonCurrent,
		period:   fantasy.PeriodFull,
		revealed: PageSize,
		loading:  true,
		prefs:    prefs,
	}

	if prefs != nil {
		manager.filter = prefs.Filter()
		manager.season = prefs.Season()
		manager.period = prefs.TimePeriod()
	}

	return manager
}

// Selector describes the comprehensive dataset the UI currently wants.
func (m *Manager) Selector() fantasy.Selector {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.selectorLocked()
}

func (m *Manager) selectorLocked() fantasy.Selector {
	return fantasy.Selector{
		PlayerType: m.filter.FetchType(),
		Season:     m.season,
		Period:     m.period,
	}
}

func (m *Manager) SetLoading(loading bool) {
	m.mu.Lock()
	m.loading = loading
	m.mu.Unlock()
}

// SetDataset installs a freshly fetched dataset. Returns false when the
// result is stale, i.e. the user has since switched to a selector with a
// different identity.
func (m *Manager) SetDataset(selector fantasy.Selector, players []fantasy.Player) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if selector.CacheKey() != m.selectorLocked().CacheKey() {
		return false
	}

	m.dataset = players
	m.loading = false

	return true
}

// OnFilterChange switches the active position filter, resetting search and
// reveal state, and persists the choice. Returns true when the change
// requires fetching a different upstream dataset (batter pool vs pitcher
// pool).
func (m *Manager) OnFilterChange(filter fantasy.PlayerType) bool {
	m.mu.Lock()

	previous := m.filter
	m.filter = filter
	m.search = ""
	m.revealed = PageSize

	refetch := previous.FetchType() != filter.FetchType()
	if refetch {
		m.dataset = nil
		m.loading = true
	}
	m.mu.Unlock()

	if m.prefs != nil {
		m.prefs.SetFilter(filter)
	}

	return refetch
}

// OnSearchChange updates the search term and resets the reveal window.
func (m *Manager) OnSearchChange(term string) {
	m.mu.Lock()
	m.search = term
	m.revealed = PageSize
	m.mu.Unlock()
}

// OnSeasonChange switches between the current and prior season. Always a
// refetch: the upstream identifies seasons by separate game keys.
func (m *Manager) OnSeasonChange(season fantasy.SeasonKind) {
	m.mu.Lock()
	m.season = season
	m.revealed = PageSize
	m.dataset = nil
	m.loading = true
	m.mu.Unlock()

	if m.prefs != nil {
		m.prefs.SetSeason(season)
	}
}

// OnPeriodChange switches the trailing stats window. Always a refetch.
func (m *Manager) OnPeriodChange(period fantasy.StatPeriod) {
	m.mu.Lock()
	m.period = period
	m.revealed = PageSize
	m.dataset = nil
	m.loading = true
	m.mu.Unlock()

	if m.prefs != nil {
		m.prefs.SetTimePeriod(period)
	}
}

// LoadMore grows the reveal window by one page, clamped to the number of
// matching records. Reveal is presentation state only, it never triggers a
// fetch.
func (m *Manager) LoadMore() {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := Materialize(m.dataset, m.filter, m.search, len(m.dataset)).TotalMatching

	next := m.revealed + PageSize
	if next > total {
		next = total
	}
	if next < PageSize {
		next = PageSize
	}

	m.revealed = next
}

// Snapshot materializes the current view model.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := Materialize(m.dataset, m.filter, m.search, m.revealed)

	return Snapshot{
		FilteredPlayers:      result.Visible,
		Columns:              Columns(m.filter),
		IsLoading:            m.loading,
		TotalFilteredCount:   len(result.Visible),
		TotalMatchingPlayers: result.TotalMatching,
		HasMore:              len(result.Visible) < result.TotalMatching,
		ActiveFilter:         m.filter,
		SearchTerm:           m.search,
		Season:               m.season,
		Period:               m.period,
	}
}
