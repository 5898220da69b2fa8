package stats

import (
	"time"

	"github.com/samber/lo"
)

// Badge describes one entry in the achievement catalog.
type Badge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}

// Achievement is a Badge a user has earned.
type Achievement struct {
	Badge
	EarnedAt time.Time `json:"earnedAt"`
}

var catalog = map[string]Badge{
	"FIRST_WIN":    {ID: "FIRST_WIN", Title: "First Victory", Description: "Win your first game", Icon: "🎉", Category: "milestone"},
	"FIRST_STREAK": {ID: "FIRST_STREAK", Title: "Getting Started", Description: "Start your first winning streak", Icon: "🔥", Category: "streak"},
	"STREAK_3":     {ID: "STREAK_3", Title: "On Fire", Description: "Maintain a 3-day winning streak", Icon: "🔥", Category: "streak"},
	"STREAK_7":     {ID: "STREAK_7", Title: "Week Warrior", Description: "Maintain a 7-day winning streak", Icon: "⚡", Category: "streak"},
	"STREAK_30":    {ID: "STREAK_30", Title: "Month Master", Description: "Maintain a 30-day winning streak", Icon: "👑", Category: "streak"},
	"STREAK_100":   {ID: "STREAK_100", Title: "Century Club", Description: "Maintain a 100-day winning streak", Icon: "💎", Category: "streak"},
	"PERFECT_GAME": {ID: "PERFECT_GAME", Title: "Perfect Score", Description: "Solve the word in 1 guess", Icon: "🎯", Category: "performance"},
	"GAMES_10":     {ID: "GAMES_10", Title: "Getting the Hang of It", Description: "Play 10 games", Icon: "🎮", Category: "milestone"},
	"GAMES_50":     {ID: "GAMES_50", Title: "Veteran", Description: "Play 50 games", Icon: "🎖️", Category: "milestone"},
	"GAMES_100":    {ID: "GAMES_100", Title: "Master", Description: "Play 100 games", Icon: "🏆", Category: "milestone"},
}

// CheckAchievements returns the badges newly earned by the given stats,
// excluding any the user already holds. attempts is the guess count of the
// game that just finished.
func CheckAchievements(s *AggregateStats, attempts int) []Achievement {
	has := func(id string) bool {
		return lo.ContainsBy(s.Achievements, func(a Achievement) bool { return a.ID == id })
	}

	var earnedIDs []string
	if s.GamesWon == 1 {
		earnedIDs = append(earnedIDs, "FIRST_WIN")
	}
	if s.CurrentStreak == 1 {
		earnedIDs = append(earnedIDs, "FIRST_STREAK")
	}
	if s.CurrentStreak >= 3 {
		earnedIDs = append(earnedIDs, "STREAK_3")
	}
	if s.CurrentStreak >= 7 {
		earnedIDs = append(earnedIDs, "STREAK_7")
	}
	if s.CurrentStreak >= 30 {
		earnedIDs = append(earnedIDs, "STREAK_30")
	}
	if s.CurrentStreak >= 100 {
		earnedIDs = append(earnedIDs, "STREAK_100")
	}
	if attempts == 1 && s.GamesWon > 0 {
		earnedIDs = append(earnedIDs, "PERFECT_GAME")
	}
	if s.GamesPlayed >= 10 {
		earnedIDs = append(earnedIDs, "GAMES_10")
	}
	if s.GamesPlayed >= 50 {
		earnedIDs = append(earnedIDs, "GAMES_50")
	}
	if s.GamesPlayed >= 100 {
		earnedIDs = append(earnedIDs, "GAMES_100")
	}

	now := time.Now()
	return lo.FilterMap(earnedIDs, func(id string, _ int) (Achievement, bool) {
		if has(id) {
			return Achievement{}, false
		}
		return Achievement{Badge: catalog[id], EarnedAt: now}, true
	})
}
