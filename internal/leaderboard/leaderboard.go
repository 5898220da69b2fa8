// Package leaderboard computes the top-N view over all users' persisted
// statistics.
package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/AlexanderBiba/wordle/internal/docstore"
	"github.com/AlexanderBiba/wordle/internal/stats"
)

// DefaultLimit caps the leaderboard when no explicit limit is given.
const DefaultLimit = 50

// Metric names accepted by Compute. Anything else falls back to winRate.
const (
	MetricWinRate        = "winRate"
	MetricMaxStreak      = "maxStreak"
	MetricCurrentStreak  = "currentStreak"
	MetricGamesPlayed    = "gamesPlayed"
	MetricAverageGuesses = "averageGuesses"
)

// UserRecord is one user's identity plus persisted stats, as read from the
// document store.
type UserRecord struct {
	ID          string
	DisplayName string
	PhotoURL    string
	Stats       stats.AggregateStats
}

// Entry is one leaderboard row with derived metrics.
type Entry struct {
	ID             string  `json:"uid"`
	DisplayName    string  `json:"displayName"`
	PhotoURL       string  `json:"photoURL,omitempty"`
	GamesPlayed    int     `json:"gamesPlayed"`
	GamesWon       int     `json:"gamesWon"`
	CurrentStreak  int     `json:"currentStreak"`
	MaxStreak      int     `json:"maxStreak"`
	WinRate        int     `json:"winRate"`
	AverageGuesses float64 `json:"averageGuesses"`
}

// Result is the leaderboard response payload.
type Result struct {
	Leaderboard []Entry `json:"leaderboard"`
	Metric      string  `json:"metric"`
	TotalUsers  int     `json:"totalUsers"`
}

// Compute filters out users who never played, derives win rates, sorts by
// the requested metric and returns at most limit entries. TotalUsers counts
// every eligible user, not just those returned. Ties keep input order.
func Compute(users []UserRecord, metric string, limit int) Result {
	metric = normalizeMetric(metric)
	if limit <= 0 {
		limit = DefaultLimit
	}

	eligible := lo.Filter(users, func(u UserRecord, _ int) bool {
		return u.Stats.GamesPlayed > 0
	})

	entries := lo.Map(eligible, func(u UserRecord, _ int) Entry {
		return Entry{
			ID:             u.ID,
			DisplayName:    RedactName(u.DisplayName),
			PhotoURL:       u.PhotoURL,
			GamesPlayed:    u.Stats.GamesPlayed,
			GamesWon:       u.Stats.GamesWon,
			CurrentStreak:  u.Stats.CurrentStreak,
			MaxStreak:      u.Stats.MaxStreak,
			WinRate:        stats.WinRate(u.Stats.GamesPlayed, u.Stats.GamesWon),
			AverageGuesses: u.Stats.AverageGuesses,
		}
	})

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch metric {
		case MetricMaxStreak:
			return a.MaxStreak > b.MaxStreak
		case MetricCurrentStreak:
			return a.CurrentStreak > b.CurrentStreak
		case MetricGamesPlayed:
			return a.GamesPlayed > b.GamesPlayed
		case MetricAverageGuesses:
			// Fewer guesses is better.
			return a.AverageGuesses < b.AverageGuesses
		default:
			return a.WinRate > b.WinRate
		}
	})

	total := len(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return Result{Leaderboard: entries, Metric: metric, TotalUsers: total}
}

// Load reads every indexed user's profile and stats from the store.
func Load(ctx context.Context, store docstore.Store) ([]UserRecord, error) {
	ids, err := store.SetMembers(ctx, docstore.UserIndexSet)
	if err != nil {
		return nil, fmt.Errorf("scan user index: %w", err)
	}
	sort.Strings(ids)

	users := make([]UserRecord, 0, len(ids))
	for _, id := range ids {
		u := UserRecord{ID: id}
		if _, err := store.Get(ctx, docstore.UserStatsKey(id), &u.Stats); err != nil {
			return nil, fmt.Errorf("load stats for %s: %w", id, err)
		}
		var p stats.Profile
		if _, err := store.Get(ctx, docstore.UserProfileKey(id), &p); err != nil {
			return nil, fmt.Errorf("load profile for %s: %w", id, err)
		}
		u.DisplayName = p.DisplayName
		u.PhotoURL = p.PhotoURL
		users = append(users, u)
	}
	return users, nil
}

// RedactName shortens a display name for public listing: first name plus the
// initial of the last name. Single-token names pass through, empty names
// become "Anonymous".
func RedactName(name string) string {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "Anonymous"
	case 1:
		return fields[0]
	default:
		last := fields[len(fields)-1]
		return fields[0] + " " + string([]rune(last)[0]) + "."
	}
}

func normalizeMetric(metric string) string {
	switch metric {
	case MetricWinRate, MetricMaxStreak, MetricCurrentStreak, MetricGamesPlayed, MetricAverageGuesses:
		return metric
	default:
		return MetricWinRate
	}
}
