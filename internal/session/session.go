// Package session implements the client-side game state machine: keyboard
// events drive a six-row letter grid, guesses are submitted to the remote
// evaluator, and results are reconciled back into grid, keyboard-hint and
// statistics state.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlexanderBiba/wordle/internal/score"
)

const (
	// NumAttempts is the number of guess rows per game.
	NumAttempts = 6
	// WordLength is the number of letters per row.
	WordLength = score.WordLength
)

// ErrInvalidWord is returned by an Evaluator when the guess is not in the
// dictionary. The session keeps the row in place and raises the
// invalid-word flag instead of consuming an attempt.
var ErrInvalidWord = errors.New("word not in dictionary")

// Evaluator scores a guess against the day's secret word, usually over HTTP.
type Evaluator interface {
	Evaluate(ctx context.Context, word string) ([]score.Code, error)
}

// Recorder receives the finished game exactly once. *stats.Recorder
// satisfies this.
type Recorder interface {
	RecordGameEnd(ctx context.Context, won bool, attempts int, dateKey string) error
}

// Cell is one letter slot in the grid.
type Cell struct {
	Char      string `json:"char,omitempty"`
	Exact     bool   `json:"exact,omitempty"`
	Misplaced bool   `json:"misplaced,omitempty"`
}

// State is the persisted per-user, per-day session document. CurrentRow and
// CurrentLetter are nil exactly when the game is over.
type State struct {
	Rows           [][]Cell        `json:"rows"`
	CurrentRow     *int            `json:"currentRow"`
	CurrentLetter  *int            `json:"currentLetter"`
	Won            bool            `json:"won"`
	Lost           bool            `json:"lost"`
	InvalidWord    bool            `json:"invalidWord"`
	AbsentLetters  map[string]bool `json:"absentLetters"`
	FoundLetters   map[string]bool `json:"foundLetters"`
	LastPlayedDate string          `json:"lastPlayedDate"`
}

// PendingGuess is the token for an in-flight evaluation. It carries the row
// it was submitted from so a response that arrives after the grid moved on
// is discarded instead of being applied to the wrong row.
type PendingGuess struct {
	Row  int
	Word string
}

// Session wraps a State with the transition rules.
type Session struct {
	state    State
	checking bool
	recorder Recorder
}

// DefaultState returns the empty grid for a date.
func DefaultState(dateKey string) State {
	rows := make([][]Cell, NumAttempts)
	for i := range rows {
		rows[i] = make([]Cell, WordLength)
	}
	row, letter := 0, 0
	return State{
		Rows:           rows,
		CurrentRow:     &row,
		CurrentLetter:  &letter,
		AbsentLetters:  map[string]bool{},
		FoundLetters:   map[string]bool{},
		LastPlayedDate: dateKey,
	}
}

// New starts a fresh session for a date.
func New(dateKey string, recorder Recorder) *Session {
	return &Session{state: DefaultState(dateKey), recorder: recorder}
}

// Restore resumes a persisted state, resetting to defaults when it belongs
// to an earlier date or has an unexpected shape. Each calendar day's session
// is independent of the previous day's outcome.
func Restore(st State, today string, recorder Recorder) *Session {
	if st.LastPlayedDate != today || len(st.Rows) != NumAttempts {
		return New(today, recorder)
	}
	for _, row := range st.Rows {
		if len(row) != WordLength {
			return New(today, recorder)
		}
	}
	return &Session{state: cloneState(st), recorder: recorder}
}

// State returns a copy of the current state, safe to persist or inspect.
func (s *Session) State() State {
	return cloneState(s.state)
}

// Checking reports whether a guess evaluation is in flight.
func (s *Session) Checking() bool {
	return s.checking
}

func (s *Session) terminal() bool {
	return s.state.Won || s.state.Lost
}

// TypeLetter appends an A-Z letter to the active row. Input is ignored when
// the game is over, an evaluation is in flight, the invalid-word flag is
// set, or the row is already full. Reports whether the letter was applied.
func (s *Session) TypeLetter(key string) bool {
	if s.terminal() || s.checking || s.state.InvalidWord {
		return false
	}
	ch := strings.ToUpper(key)
	if len(ch) != 1 || ch[0] < 'A' || ch[0] > 'Z' {
		return false
	}
	row, letter := s.state.CurrentRow, s.state.CurrentLetter
	if row == nil || letter == nil || *letter >= WordLength {
		return false
	}
	s.state.Rows = cloneRowsWith(s.state.Rows, *row, *letter, Cell{Char: ch})
	next := min(*letter+1, WordLength)
	s.state.CurrentLetter = &next
	return true
}

// Backspace removes the last letter of the active row. It is the only input
// accepted while the invalid-word flag is set, and clears that flag.
func (s *Session) Backspace() bool {
	if s.terminal() || s.checking {
		return false
	}
	s.state.InvalidWord = false
	row, letter := s.state.CurrentRow, s.state.CurrentLetter
	if row == nil || letter == nil || *letter == 0 {
		return false
	}
	s.state.Rows = cloneRowsWith(s.state.Rows, *row, *letter-1, Cell{})
	prev := max(*letter-1, 0)
	s.state.CurrentLetter = &prev
	return true
}

// PressEnter submits the active row if it is full. On success the session
// enters the checking state and returns the pending guess to evaluate;
// further Enter and letter input is refused until the guess is resolved.
func (s *Session) PressEnter() (*PendingGuess, bool) {
	if s.terminal() || s.checking || s.state.InvalidWord {
		return nil, false
	}
	row, letter := s.state.CurrentRow, s.state.CurrentLetter
	if row == nil || letter == nil || *letter < WordLength {
		return nil, false
	}
	var b strings.Builder
	for _, cell := range s.state.Rows[*row] {
		b.WriteString(cell.Char)
	}
	s.checking = true
	return &PendingGuess{Row: *row, Word: b.String()}, true
}

// RejectInvalidWord handles an INVALID_WORD response: the row keeps its
// letters and the invalid-word flag is raised until the user backspaces.
func (s *Session) RejectInvalidWord(p *PendingGuess) {
	if !s.accepts(p) {
		return
	}
	s.checking = false
	s.state.InvalidWord = true
}

// Fail handles any other evaluation failure: the guess is discarded and the
// row stays editable so the user can resubmit. No stats are touched.
func (s *Session) Fail(p *PendingGuess) {
	if !s.accepts(p) {
		return
	}
	s.checking = false
}

// Resolve applies the per-letter result codes for a pending guess. Stale
// responses (wrong row, or nothing in flight) are discarded. At game end the
// recorder is invoked exactly once with the outcome and attempts used.
func (s *Session) Resolve(ctx context.Context, p *PendingGuess, codes []score.Code) error {
	if !s.accepts(p) {
		return nil
	}
	if len(codes) != WordLength {
		s.checking = false
		return fmt.Errorf("evaluation returned %d codes, want %d", len(codes), WordLength)
	}
	s.checking = false

	rows := cloneRows(s.state.Rows)
	found := cloneSet(s.state.FoundLetters)
	for i, code := range codes {
		cell := rows[p.Row][i]
		switch code {
		case score.Correct:
			cell.Exact = true
			found[cell.Char] = true
		case score.Present:
			cell.Misplaced = true
			found[cell.Char] = true
		}
		rows[p.Row][i] = cell
	}
	absent := cloneSet(s.state.AbsentLetters)
	for i, code := range codes {
		// Found status wins over absent for keyboard coloring.
		if code == score.Missing && !found[rows[p.Row][i].Char] {
			absent[rows[p.Row][i].Char] = true
		}
	}

	won := true
	for _, cell := range rows[p.Row] {
		if !cell.Exact {
			won = false
			break
		}
	}
	lost := p.Row == NumAttempts-1 && !won

	s.state.Rows = rows
	s.state.FoundLetters = found
	s.state.AbsentLetters = absent
	s.state.Won = won
	s.state.Lost = lost

	if won || lost {
		s.state.CurrentRow = nil
		s.state.CurrentLetter = nil
		if s.recorder != nil {
			if err := s.recorder.RecordGameEnd(ctx, won, p.Row+1, s.state.LastPlayedDate); err != nil {
				return fmt.Errorf("record game end: %w", err)
			}
		}
		return nil
	}

	next, zero := p.Row+1, 0
	s.state.CurrentRow = &next
	s.state.CurrentLetter = &zero
	return nil
}

// SubmitRow runs the full Enter cycle against an evaluator: submit, await,
// reconcile. A nil return with no state change means the Enter was ignored
// or the guess was rejected as not a word.
func (s *Session) SubmitRow(ctx context.Context, ev Evaluator) error {
	p, ok := s.PressEnter()
	if !ok {
		return nil
	}
	codes, err := ev.Evaluate(ctx, p.Word)
	if errors.Is(err, ErrInvalidWord) {
		s.RejectInvalidWord(p)
		return nil
	}
	if err != nil {
		s.Fail(p)
		return err
	}
	return s.Resolve(ctx, p, codes)
}

func (s *Session) accepts(p *PendingGuess) bool {
	return s.checking && p != nil &&
		s.state.CurrentRow != nil && *s.state.CurrentRow == p.Row
}

func cloneState(st State) State {
	out := st
	out.Rows = cloneRows(st.Rows)
	out.FoundLetters = cloneSet(st.FoundLetters)
	out.AbsentLetters = cloneSet(st.AbsentLetters)
	if st.CurrentRow != nil {
		v := *st.CurrentRow
		out.CurrentRow = &v
	}
	if st.CurrentLetter != nil {
		v := *st.CurrentLetter
		out.CurrentLetter = &v
	}
	return out
}

func cloneRows(rows [][]Cell) [][]Cell {
	out := make([][]Cell, len(rows))
	for i, row := range rows {
		out[i] = make([]Cell, len(row))
		copy(out[i], row)
	}
	return out
}

func cloneRowsWith(rows [][]Cell, row, col int, cell Cell) [][]Cell {
	out := cloneRows(rows)
	out[row][col] = cell
	return out
}

func cloneSet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for k, v := range set {
		out[k] = v
	}
	return out
}
