package daily

import (
	"context"
	"testing"
	"time"

	"github.com/AlexanderBiba/wordle/internal/docstore"
)

var testAnswers = []string{"crane", "slate", "alloy", "proof", "geese"}

func TestDateKey(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC), "20240517"},
		{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "20240102"},
		// 23:30 in UTC-5 is already the next day in UTC.
		{time.Date(2024, 5, 17, 23, 30, 0, 0, time.FixedZone("EST", -5*3600)), "20240518"},
	}
	for _, c := range cases {
		if got := DateKey(c.in); got != c.want {
			t.Errorf("DateKey(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNextRollover(t *testing.T) {
	now := time.Date(2024, 5, 17, 23, 0, 0, 0, time.UTC)
	if got := NextRollover(now); got != time.Hour {
		t.Errorf("NextRollover = %v, want 1h", got)
	}
}

func TestEnsureWordForDateIdempotent(t *testing.T) {
	store := docstore.NewMemoryStore()
	sel := NewSelector(store, testAnswers)
	ctx := context.Background()

	first, err := sel.EnsureWordForDate(ctx, "20240517")
	if err != nil {
		t.Fatalf("first EnsureWordForDate: %v", err)
	}
	second, err := sel.EnsureWordForDate(ctx, "20240517")
	if err != nil {
		t.Fatalf("second EnsureWordForDate: %v", err)
	}
	if first != second {
		t.Errorf("word changed between calls: %q then %q", first, second)
	}

	// A fresh selector over the same store simulates a process restart.
	restarted := NewSelector(store, testAnswers)
	third, err := restarted.EnsureWordForDate(ctx, "20240517")
	if err != nil {
		t.Fatalf("EnsureWordForDate after restart: %v", err)
	}
	if third != first {
		t.Errorf("word changed across restart: %q then %q", first, third)
	}
}

func TestEnsureWordForDatePrePopulated(t *testing.T) {
	store := docstore.NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, docstore.DailyWordKey("20240517"), Word{Date: "20240517", Word: "CRANE"}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	sel := NewSelector(store, testAnswers)
	got, err := sel.EnsureWordForDate(ctx, "20240517")
	if err != nil {
		t.Fatalf("EnsureWordForDate: %v", err)
	}
	if got != "crane" {
		t.Errorf("got %q, want pre-populated word lowercased to crane", got)
	}
}

func TestEnsureWordForDateSeparateDates(t *testing.T) {
	store := docstore.NewMemoryStore()
	sel := NewSelector(store, testAnswers)
	ctx := context.Background()

	if _, err := sel.EnsureWordForDate(ctx, "20240517"); err != nil {
		t.Fatalf("EnsureWordForDate: %v", err)
	}

	var record Word
	found, err := store.Get(ctx, docstore.DailyWordKey("20240517"), &record)
	if err != nil || !found {
		t.Fatalf("daily word record not persisted: found=%v err=%v", found, err)
	}
	if record.Date != "20240517" {
		t.Errorf("record date = %q", record.Date)
	}

	found, err = store.Get(ctx, docstore.DailyWordKey("20240518"), &record)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("tomorrow's word was created ahead of time")
	}
}

func TestEnsureWordForDateEmptyAnswers(t *testing.T) {
	sel := NewSelector(docstore.NewMemoryStore(), nil)
	if _, err := sel.EnsureWordForDate(context.Background(), "20240517"); err == nil {
		t.Error("expected error with empty answer list")
	}
}
