// Package stats maintains per-user aggregate statistics across days.
package stats

import "math"

// MaxAttempts is the number of guess rows in a game.
const MaxAttempts = 6

// AggregateStats is the persisted per-user statistics record.
type AggregateStats struct {
	GamesPlayed       int               `json:"gamesPlayed"`
	GamesWon          int               `json:"gamesWon"`
	CurrentStreak     int               `json:"currentStreak"`
	MaxStreak         int               `json:"maxStreak"`
	TotalGuesses      int               `json:"totalGuesses"`
	AverageGuesses    float64           `json:"averageGuesses"`
	GuessDistribution [MaxAttempts]int  `json:"guessDistribution"`
	Achievements      []Achievement     `json:"achievements"`
	// LastRecordedDate guards against a finished game being counted twice:
	// at most one game-end contribution per calendar date.
	LastRecordedDate string `json:"lastRecordedDate,omitempty"`
}

// RecordGameEnd applies one finished game to the stats. attempts is the
// number of rows used (1..MaxAttempts). It reports whether the game was
// counted; a second call for the same dateKey is a no-op.
func (s *AggregateStats) RecordGameEnd(won bool, attempts int, dateKey string) bool {
	if dateKey != "" && dateKey == s.LastRecordedDate {
		return false
	}

	s.GamesPlayed++
	if won {
		s.GamesWon++
		s.CurrentStreak++
		if s.CurrentStreak > s.MaxStreak {
			s.MaxStreak = s.CurrentStreak
		}
		if attempts >= 1 && attempts <= MaxAttempts {
			s.GuessDistribution[attempts-1]++
		}
		s.TotalGuesses += attempts
	} else {
		s.CurrentStreak = 0
		s.TotalGuesses += MaxAttempts
	}

	s.AverageGuesses = round1(float64(s.TotalGuesses) / float64(s.GamesPlayed))
	s.Achievements = append(s.Achievements, CheckAchievements(s, attempts)...)
	s.LastRecordedDate = dateKey
	return true
}

// WinRate returns the win percentage rounded to the nearest integer, or 0
// when no games have been played.
func WinRate(gamesPlayed, gamesWon int) int {
	if gamesPlayed <= 0 {
		return 0
	}
	return int(math.Round(float64(gamesWon) / float64(gamesPlayed) * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
