// Package docstore is the document storage collaborator: a keyed JSON
// document store plus string sets, backed by Redis in deployment and by an
// in-memory map for tests and single-process development.
package docstore

import "context"

// Set names shared by the server and clients.
const (
	// DictionarySet holds every accepted guess word, lowercase.
	DictionarySet = "words"
	// UserIndexSet holds the IDs of every user with persisted stats. The
	// leaderboard scan walks this set.
	UserIndexSet = "users"
)

// Store is a document-style key/value store: get-by-key, set-by-key (full
// overwrite) and membership sets. Values are marshaled as JSON.
type Store interface {
	// Get unmarshals the document at key into v. The boolean reports
	// whether the document exists; a missing document is not an error.
	Get(ctx context.Context, key string, v any) (bool, error)
	// Set overwrites the document at key.
	Set(ctx context.Context, key string, v any) error
	// SetNX writes the document only if the key is absent and reports
	// whether the write happened.
	SetNX(ctx context.Context, key string, v any) (bool, error)
	// AddToSet inserts a member into a named set.
	AddToSet(ctx context.Context, set, member string) error
	// SetMembers returns all members of a named set.
	SetMembers(ctx context.Context, set string) ([]string, error)
	// SetContains reports whether member is in the named set.
	SetContains(ctx context.Context, set, member string) (bool, error)
}

// DailyWordKey returns the document key for the secret word of a date.
func DailyWordKey(dateKey string) string { return "state:" + dateKey }

// UserStatsKey returns the document key for a user's aggregate stats.
func UserStatsKey(userID string) string { return "user:" + userID + ":stats" }

// UserGameKey returns the document key for a user's current game session.
func UserGameKey(userID string) string { return "user:" + userID + ":game" }

// UserProfileKey returns the document key for a user's profile fields.
func UserProfileKey(userID string) string { return "user:" + userID + ":profile" }
