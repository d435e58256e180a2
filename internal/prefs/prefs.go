// Package prefs remembers the user's last filter choices across sessions.
// Reads always succeed: a missing, unreadable or invalid value falls back
// to the documented default, and writes never surface storage errors to
// the caller.
package prefs

import (
	"database/sql"
	"log/slog"

	"github.com/fantasyboard/fb-tui/internal/fantasy"
)

// Namespaced preference keys.
const (
	KeyPlayerFilter     = "playerFilter"
	KeySeasonFilter     = "seasonFilter"
	KeyTimePeriodFilter = "timePeriodFilter"
)

// Defaults applied when nothing (or garbage) is stored.
const (
	DefaultFilter = fantasy.AllBatters
	DefaultSeason = fantasy.SeasonCurrent
	DefaultPeriod = fantasy.PeriodFull
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the stored value for key, or fallback when the key is
// missing or the storage is unavailable.
func (s *Store) Get(key string, fallback string) string {
	if s.db == nil {
		return fallback
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM pref WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			slog.Debug("Preference read failed", slog.String("key", key), slog.String("error", err.Error()))
		}

		return fallback
	}

	return value
}

// Set stores a value for key, silently dropping it when storage is
// unavailable.
func (s *Store) Set(key string, value string) {
	if s.db == nil {
		return
	}

	_, err := s.db.Exec(
		"INSERT INTO pref (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		slog.Debug("Preference write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Remove deletes a stored key.
func (s *Store) Remove(key string) {
	if s.db == nil {
		return
	}

	if _, err := s.db.Exec("DELETE FROM pref WHERE key = ?", key); err != nil {
		slog.Debug("Preference delete failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Filter returns the persisted position filter. Values outside the closed
// enumeration, including anything written around the typed setter, are
// coerced to the default.
func (s *Store) Filter() fantasy.PlayerType {
	stored := s.Get(KeyPlayerFilter, DefaultFilter.String())

	filter, err := fantasy.ParsePlayerType(stored)
	if err != nil {
		return DefaultFilter
	}

	return filter
}

func (s *Store) SetFilter(filter fantasy.PlayerType) {
	if _, err := fantasy.ParsePlayerType(filter.String()); err != nil {
		filter = DefaultFilter
	}

	s.Set(KeyPlayerFilter, filter.String())
}

func (s *Store) Season() fantasy.SeasonKind {
	switch stored := s.Get(KeySeasonFilter, string(DefaultSeason)); fantasy.SeasonKind(stored) {
	case fantasy.SeasonCurrent, fantasy.SeasonLast:
		return fantasy.SeasonKind(stored)
	default:
		return DefaultSeason
	}
}

func (s *Store) SetSeason(season fantasy.SeasonKind) {
	switch season {
	case fantasy.SeasonCurrent, fantasy.SeasonLast:
	default:
		season = DefaultSeason
	}

	s.Set(KeySeasonFilter, string(season))
}

func (s *Store) TimePeriod() fantasy.StatPeriod {
	switch stored := s.Get(KeyTimePeriodFilter, string(DefaultPeriod)); fantasy.StatPeriod(stored) {
	case fantasy.PeriodFull, fantasy.PeriodLastMonth, fantasy.PeriodLastWeek:
		return fantasy.StatPeriod(stored)
	default:
		return DefaultPeriod
	}
}

func (s *Store) SetTimePeriod(period fantasy.StatPeriod) {
	switch period {
	case fantasy.PeriodFull, fantasy.PeriodLastMonth, fantasy.PeriodLastWeek:
	default:
		period = DefaultPeriod
	}

	s.Set(KeyTimePeriodFilter, string(period))
}
