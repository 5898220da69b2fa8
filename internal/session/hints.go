package session

// KeyHint is the keyboard coloring for one letter.
type KeyHint int

const (
	HintNone KeyHint = iota
	HintFound
	HintAbsent
)

// KeyHints derives the virtual-keyboard coloring from the letter sets. It is
// computed fresh from the state on every call rather than maintained
// incrementally, so replaying a state always yields the same map. Found
// takes precedence over absent.
func (st State) KeyHints() map[string]KeyHint {
	hints := make(map[string]KeyHint, len(st.FoundLetters)+len(st.AbsentLetters))
	for letter := range st.AbsentLetters {
		hints[letter] = HintAbsent
	}
	for letter := range st.FoundLetters {
		hints[letter] = HintFound
	}
	return hints
}
