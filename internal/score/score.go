// Package score implements the per-letter guess evaluation shared by the
// word-check endpoint and the client state machine.
package score

// WordLength is the fixed length of every secret word and guess.
const WordLength = 5

// Code is the outcome for a single guessed letter position.
type Code int

const (
	Missing Code = 0 // letter is not in the word
	Present Code = 1 // letter is in the word but in the wrong position
	Correct Code = 2 // letter is in the word and in the correct position
)

// Score compares a guess against the secret word and returns one Code per
// position. Both inputs must be lowercase and exactly WordLength long.
//
// Exact matches are resolved first and reserve their letter, so a repeated
// letter in the guess is credited Present only as many times as it remains
// available in the secret word.
func Score(secret, guess string) []Code {
	result := make([]Code, WordLength)
	var remaining [26]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == secret[i] {
			result[i] = Correct
		} else if c := secret[i] - 'a'; c < 26 {
			remaining[c]++
		}
	}

	for i := 0; i < WordLength; i++ {
		if result[i] == Correct {
			continue
		}
		c := guess[i] - 'a'
		if c < 26 && remaining[c] > 0 {
			result[i] = Present
			remaining[c]--
		}
	}

	return result
}
