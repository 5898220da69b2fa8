// Package daily selects the shared secret word for each UTC calendar date.
package daily

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/AlexanderBiba/wordle/internal/docstore"
)

// Word is the persisted record pairing a date key with its secret word.
// One per date, created lazily on the first check of the day and never
// overwritten afterwards.
type Word struct {
	Date string `json:"date"`
	Word string `json:"word"`
}

// DateKey formats a time as the UTC YYYYMMDD key used to look up the daily
// word. UTC keeps every client worldwide on the same word.
func DateKey(t time.Time) string {
	return t.UTC().Format("20060102")
}

// NextRollover returns the duration until the next UTC midnight, when a new
// secret word becomes selectable.
func NextRollover(now time.Time) time.Duration {
	utc := now.UTC()
	midnight := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return midnight.Sub(utc)
}

// Selector resolves the secret word for a date against the document store.
type Selector struct {
	store   docstore.Store
	answers []string
}

// NewSelector builds a Selector drawing from the given answer list. Answers
// must be lowercase 5-letter words.
func NewSelector(store docstore.Store, answers []string) *Selector {
	return &Selector{store: store, answers: answers}
}

// EnsureWordForDate returns the secret word for dateKey, creating the record
// on first call. The store is the single source of truth: after a create the
// record is re-read, so under concurrent first-of-day requests the persisted
// word wins regardless of which request wrote it.
func (s *Selector) EnsureWordForDate(ctx context.Context, dateKey string) (string, error) {
	var record Word
	found, err := s.store.Get(ctx, docstore.DailyWordKey(dateKey), &record)
	if err != nil {
		return "", fmt.Errorf("load daily word for %s: %w", dateKey, err)
	}

	if !found {
		candidate, err := s.randomAnswer()
		if err != nil {
			return "", fmt.Errorf("select daily word for %s: %w", dateKey, err)
		}
		if _, err := s.store.SetNX(ctx, docstore.DailyWordKey(dateKey), Word{Date: dateKey, Word: candidate}); err != nil {
			return "", fmt.Errorf("persist daily word for %s: %w", dateKey, err)
		}
		found, err = s.store.Get(ctx, docstore.DailyWordKey(dateKey), &record)
		if err != nil || !found {
			return "", fmt.Errorf("reload daily word for %s: %w", dateKey, err)
		}
	}

	return strings.ToLower(record.Word), nil
}

func (s *Selector) randomAnswer() (string, error) {
	if len(s.answers) == 0 {
		return "", fmt.Errorf("answer list is empty")
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.answers))))
	if err != nil {
		return "", err
	}
	return s.answers[n.Int64()], nil
}
