package session

import (
	"context"
	"errors"
	"testing"

	"github.com/AlexanderBiba/wordle/internal/score"
)

type fakeEvaluator struct {
	codes []score.Code
	err   error
	calls int
}

func (f *fakeEvaluator) Evaluate(_ context.Context, _ string) ([]score.Code, error) {
	f.calls++
	return f.codes, f.err
}

type fakeRecorder struct {
	calls    int
	won      bool
	attempts int
	dateKey  string
	err      error
}

func (f *fakeRecorder) RecordGameEnd(_ context.Context, won bool, attempts int, dateKey string) error {
	f.calls++
	f.won = won
	f.attempts = attempts
	f.dateKey = dateKey
	return f.err
}

func typeWord(t *testing.T, s *Session, word string) {
	t.Helper()
	for _, r := range word {
		if !s.TypeLetter(string(r)) {
			t.Fatalf("TypeLetter(%q) was ignored", r)
		}
	}
}

func allCorrect() []score.Code {
	return []score.Code{score.Correct, score.Correct, score.Correct, score.Correct, score.Correct}
}

func allMissing() []score.Code {
	return []score.Code{score.Missing, score.Missing, score.Missing, score.Missing, score.Missing}
}

func TestTypingFillsActiveRow(t *testing.T) {
	s := New("20240517", nil)
	typeWord(t, s, "CRANE")

	st := s.State()
	if st.CurrentLetter == nil || *st.CurrentLetter != WordLength {
		t.Fatalf("currentLetter = %v, want 5", st.CurrentLetter)
	}
	for i, want := range []string{"C", "R", "A", "N", "E"} {
		if st.Rows[0][i].Char != want {
			t.Errorf("cell %d = %q, want %q", i, st.Rows[0][i].Char, want)
		}
	}

	// Sixth letter on a full row is ignored.
	if s.TypeLetter("X") {
		t.Error("letter accepted beyond row capacity")
	}
}

func TestTypingRejectsNonLetters(t *testing.T) {
	s := New("20240517", nil)
	for _, key := range []string{"1", " ", "!", "ab", ""} {
		if s.TypeLetter(key) {
			t.Errorf("TypeLetter(%q) accepted, want ignored", key)
		}
	}
	if !s.TypeLetter("q") {
		t.Error("lowercase letter rejected, want uppercased and accepted")
	}
	if got := s.State().Rows[0][0].Char; got != "Q" {
		t.Errorf("stored char = %q, want Q", got)
	}
}

func TestBackspace(t *testing.T) {
	s := New("20240517", nil)
	if s.Backspace() {
		t.Error("backspace on empty row was applied")
	}
	typeWord(t, s, "CR")
	if !s.Backspace() {
		t.Fatal("backspace ignored")
	}
	st := s.State()
	if *st.CurrentLetter != 1 {
		t.Errorf("currentLetter = %d, want 1", *st.CurrentLetter)
	}
	if st.Rows[0][1].Char != "" {
		t.Errorf("cell not cleared: %q", st.Rows[0][1].Char)
	}
}

func TestEnterRequiresFullRow(t *testing.T) {
	s := New("20240517", nil)
	typeWord(t, s, "CRA")
	if _, ok := s.PressEnter(); ok {
		t.Error("Enter accepted on a partial row")
	}
}

func TestWinScenario(t *testing.T) {
	rec := &fakeRecorder{}
	s := New("20240517", rec)
	typeWord(t, s, "CRANE")

	ev := &fakeEvaluator{codes: allCorrect()}
	if err := s.SubmitRow(context.Background(), ev); err != nil {
		t.Fatalf("SubmitRow: %v", err)
	}

	st := s.State()
	if !st.Won || st.Lost {
		t.Errorf("won=%v lost=%v, want won", st.Won, st.Lost)
	}
	if st.CurrentRow != nil || st.CurrentLetter != nil {
		t.Error("indices not nil after game end")
	}
	for i := range st.Rows[0] {
		if !st.Rows[0][i].Exact {
			t.Errorf("cell %d not marked exact", i)
		}
	}
	if rec.calls != 1 {
		t.Fatalf("recorder called %d times, want exactly once", rec.calls)
	}
	if !rec.won || rec.attempts != 1 || rec.dateKey != "20240517" {
		t.Errorf("recorder got won=%v attempts=%d date=%s", rec.won, rec.attempts, rec.dateKey)
	}

	// Terminal state accepts no further input.
	if s.TypeLetter("A") || s.Backspace() {
		t.Error("input accepted after game over")
	}
	if _, ok := s.PressEnter(); ok {
		t.Error("Enter accepted after game over")
	}
}

func TestLossOnSixthRow(t *testing.T) {
	rec := &fakeRecorder{}
	s := New("20240517", rec)
	ev := &fakeEvaluator{codes: allMissing()}

	for i := 0; i < NumAttempts; i++ {
		typeWord(t, s, "POUTS")
		if err := s.SubmitRow(context.Background(), ev); err != nil {
			t.Fatalf("SubmitRow row %d: %v", i, err)
		}
	}

	st := s.State()
	if !st.Lost || st.Won {
		t.Errorf("won=%v lost=%v, want lost", st.Won, st.Lost)
	}
	if rec.calls != 1 {
		t.Errorf("recorder called %d times, want 1", rec.calls)
	}
	if rec.won || rec.attempts != NumAttempts {
		t.Errorf("recorder got won=%v attempts=%d", rec.won, rec.attempts)
	}
}

func TestInvalidWordKeepsRow(t *testing.T) {
	s := New("20240517", nil)
	typeWord(t, s, "ZZZZZ")

	ev := &fakeEvaluator{err: ErrInvalidWord}
	if err := s.SubmitRow(context.Background(), ev); err != nil {
		t.Fatalf("SubmitRow: %v", err)
	}

	st := s.State()
	if !st.InvalidWord {
		t.Fatal("invalidWord flag not set")
	}
	if *st.CurrentRow != 0 || *st.CurrentLetter != WordLength {
		t.Errorf("row advanced or letters cleared: row=%d letter=%d", *st.CurrentRow, *st.CurrentLetter)
	}
	if st.Rows[0][0].Char != "Z" {
		t.Error("row letters were cleared")
	}

	// Only Backspace is accepted while the flag is set, and it clears it.
	if s.TypeLetter("A") {
		t.Error("typing accepted while invalid-word flag set")
	}
	if _, ok := s.PressEnter(); ok {
		t.Error("Enter accepted while invalid-word flag set")
	}
	if !s.Backspace() {
		t.Fatal("backspace ignored while invalid-word flag set")
	}
	if s.State().InvalidWord {
		t.Error("backspace did not clear invalid-word flag")
	}
}

func TestNetworkErrorAllowsResubmission(t *testing.T) {
	rec := &fakeRecorder{}
	s := New("20240517", rec)
	typeWord(t, s, "CRANE")

	ev := &fakeEvaluator{err: errors.New("connection refused")}
	if err := s.SubmitRow(context.Background(), ev); err == nil {
		t.Fatal("expected error from failed evaluation")
	}

	st := s.State()
	if st.InvalidWord {
		t.Error("invalidWord flag set on network error")
	}
	if *st.CurrentRow != 0 || *st.CurrentLetter != WordLength {
		t.Errorf("state mutated on failure: row=%d letter=%d", *st.CurrentRow, *st.CurrentLetter)
	}
	if rec.calls != 0 {
		t.Error("stats recorded despite failed evaluation")
	}

	// Resubmission succeeds.
	ev = &fakeEvaluator{codes: allCorrect()}
	if err := s.SubmitRow(context.Background(), ev); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if !s.State().Won {
		t.Error("resubmitted guess not applied")
	}
}

func TestInputIgnoredWhileChecking(t *testing.T) {
	s := New("20240517", nil)
	typeWord(t, s, "CRANE")

	p, ok := s.PressEnter()
	if !ok {
		t.Fatal("PressEnter refused")
	}
	if s.TypeLetter("A") || s.Backspace() {
		t.Error("input accepted while checking")
	}
	if _, ok := s.PressEnter(); ok {
		t.Error("second Enter accepted while checking")
	}

	if err := s.Resolve(context.Background(), p, allMissing()); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !s.TypeLetter("A") {
		t.Error("input still refused after resolution")
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	s := New("20240517", nil)
	typeWord(t, s, "POUTS")

	p, _ := s.PressEnter()
	if err := s.Resolve(context.Background(), p, allMissing()); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if *s.State().CurrentRow != 1 {
		t.Fatalf("row = %d, want 1", *s.State().CurrentRow)
	}

	// The same response arriving again refers to row 0, which is no longer
	// current, so it must be dropped.
	before := s.State()
	if err := s.Resolve(context.Background(), p, allCorrect()); err != nil {
		t.Fatalf("stale Resolve: %v", err)
	}
	after := s.State()
	if after.Won || *after.CurrentRow != *before.CurrentRow {
		t.Error("stale response was applied")
	}
}

func TestKeyboardHintPrecedence(t *testing.T) {
	s := New("20240517", nil)
	// Secret is ALLOY: the first A scores Present, the final A Missing. The
	// A key must still show as found.
	typeWord(t, s, "LLAMA")
	p, _ := s.PressEnter()
	codes := []score.Code{score.Present, score.Correct, score.Present, score.Missing, score.Missing}
	if err := s.Resolve(context.Background(), p, codes); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	st := s.State()
	if !st.FoundLetters["A"] || !st.FoundLetters["L"] {
		t.Errorf("foundLetters = %v", st.FoundLetters)
	}
	if st.AbsentLetters["A"] {
		t.Error("A marked absent despite being found in the same guess")
	}
	if !st.AbsentLetters["M"] {
		t.Errorf("absentLetters = %v, want M", st.AbsentLetters)
	}

	hints := st.KeyHints()
	if hints["A"] != HintFound {
		t.Errorf("hint for A = %v, want HintFound", hints["A"])
	}
	if hints["M"] != HintAbsent {
		t.Errorf("hint for M = %v, want HintAbsent", hints["M"])
	}
	if hints["Z"] != HintNone {
		t.Errorf("hint for Z = %v, want HintNone", hints["Z"])
	}
}

func TestRestoreResetsOnNewDay(t *testing.T) {
	s := New("20240516", nil)
	typeWord(t, s, "CRANE")
	p, _ := s.PressEnter()
	if err := s.Resolve(context.Background(), p, allCorrect()); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	yesterday := s.State()
	if !yesterday.Won {
		t.Fatal("setup: expected won state")
	}

	restored := Restore(yesterday, "20240517", nil)
	st := restored.State()
	if st.Won || st.Lost {
		t.Error("prior day's outcome survived the reset")
	}
	if st.CurrentRow == nil || *st.CurrentRow != 0 {
		t.Errorf("currentRow = %v, want 0", st.CurrentRow)
	}
	if st.LastPlayedDate != "20240517" {
		t.Errorf("lastPlayedDate = %q", st.LastPlayedDate)
	}
	if len(st.FoundLetters) != 0 || len(st.AbsentLetters) != 0 {
		t.Error("letter sets survived the reset")
	}
}

func TestRestoreSameDayKeepsState(t *testing.T) {
	s := New("20240517", nil)
	typeWord(t, s, "POUTS")
	p, _ := s.PressEnter()
	if err := s.Resolve(context.Background(), p, allMissing()); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	restored := Restore(s.State(), "20240517", nil)
	st := restored.State()
	if *st.CurrentRow != 1 {
		t.Errorf("currentRow = %d, want 1", *st.CurrentRow)
	}
	if st.Rows[0][0].Char != "P" {
		t.Error("completed row lost on restore")
	}
}

func TestStateIsolation(t *testing.T) {
	s := New("20240517", nil)
	typeWord(t, s, "CRANE")
	st := s.State()
	st.Rows[0][0].Char = "X"
	st.FoundLetters["X"] = true
	if s.State().Rows[0][0].Char != "C" {
		t.Error("mutating a returned state leaked into the session")
	}
	if s.State().FoundLetters["X"] {
		t.Error("mutating a returned letter set leaked into the session")
	}
}
