package session

import (
	"context"
	"fmt"

	"github.com/AlexanderBiba/wordle/internal/docstore"
)

// SaveState writes the session document for a user.
func SaveState(ctx context.Context, store docstore.Store, userID string, st State) error {
	if err := store.Set(ctx, docstore.UserGameKey(userID), st); err != nil {
		return fmt.Errorf("save session for %s: %w", userID, err)
	}
	return nil
}

// LoadState reads the session document for a user, returning the default
// state when none exists or the stored one belongs to an earlier date.
func LoadState(ctx context.Context, store docstore.Store, userID, today string) (State, error) {
	var st State
	found, err := store.Get(ctx, docstore.UserGameKey(userID), &st)
	if err != nil {
		return DefaultState(today), fmt.Errorf("load session for %s: %w", userID, err)
	}
	if !found || st.LastPlayedDate != today {
		return DefaultState(today), nil
	}
	return st, nil
}
