package stats

import (
	"context"
	"fmt"

	"github.com/AlexanderBiba/wordle/internal/docstore"
)

// Profile holds the identity fields the leaderboard displays. They come from
// the identity provider and are stored alongside the stats record.
type Profile struct {
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// Recorder persists game-end results for one user. It is the stats-update
// collaborator the client state machine invokes at the end of a game.
type Recorder struct {
	store  docstore.Store
	userID string
}

// NewRecorder returns a Recorder writing stats for userID.
func NewRecorder(store docstore.Store, userID string) *Recorder {
	return &Recorder{store: store, userID: userID}
}

// Load returns the user's current stats, or a zero record if none exist yet.
func (r *Recorder) Load(ctx context.Context) (AggregateStats, error) {
	var s AggregateStats
	if _, err := r.store.Get(ctx, docstore.UserStatsKey(r.userID), &s); err != nil {
		return AggregateStats{}, fmt.Errorf("load stats for %s: %w", r.userID, err)
	}
	return s, nil
}

// RecordGameEnd loads, mutates and writes back the stats record, and indexes
// the user for the leaderboard scan. Re-recording the same date is a no-op,
// so a retried or duplicated call cannot double count.
func (r *Recorder) RecordGameEnd(ctx context.Context, won bool, attempts int, dateKey string) error {
	s, err := r.Load(ctx)
	if err != nil {
		return err
	}
	if !s.RecordGameEnd(won, attempts, dateKey) {
		return nil
	}
	if err := r.store.Set(ctx, docstore.UserStatsKey(r.userID), s); err != nil {
		return fmt.Errorf("save stats for %s: %w", r.userID, err)
	}
	if err := r.store.AddToSet(ctx, docstore.UserIndexSet, r.userID); err != nil {
		return fmt.Errorf("index user %s: %w", r.userID, err)
	}
	return nil
}

// SaveProfile stores the user's display fields for the leaderboard.
func (r *Recorder) SaveProfile(ctx context.Context, p Profile) error {
	return r.store.Set(ctx, docstore.UserProfileKey(r.userID), p)
}
