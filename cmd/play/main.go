// Command play is a terminal client for the daily word game. It drives the
// same session state machine the browser client uses: guesses are validated
// remotely, the grid and keyboard hints update from the scored result, and
// stats are recorded once per finished game.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/AlexanderBiba/wordle/internal/daily"
	"github.com/AlexanderBiba/wordle/internal/docstore"
	"github.com/AlexanderBiba/wordle/internal/session"
	"github.com/AlexanderBiba/wordle/internal/stats"
)

func main() {
	_ = godotenv.Load()

	serverURL := flag.String("server", "http://localhost:8080", "base URL of the word server")
	userID := flag.String("user", "", "user ID (defaults to a random one, no saved progress)")
	name := flag.String("name", "", "display name for the leaderboard")
	redisAddr := flag.String("redis", os.Getenv("REDIS_ADDR"), "redis address for progress and stats")
	flag.Parse()

	ctx := context.Background()

	if *userID == "" {
		*userID = uuid.NewString()
		fmt.Printf("Playing as anonymous user %s\n", *userID)
	}

	var store docstore.Store
	if *redisAddr != "" {
		rs, err := docstore.DialRedis(ctx, *redisAddr)
		if err != nil {
			log.Fatalf("connect to redis: %v", err)
		}
		store = rs
	} else {
		fmt.Println("No redis configured, progress will not be saved.")
		store = docstore.NewMemoryStore()
	}

	recorder := stats.NewRecorder(store, *userID)
	if *name != "" {
		if err := recorder.SaveProfile(ctx, stats.Profile{DisplayName: *name}); err != nil {
			log.Fatalf("save profile: %v", err)
		}
	}

	today := daily.DateKey(time.Now())
	st, err := session.LoadState(ctx, store, *userID, today)
	if err != nil {
		log.Fatalf("load session: %v", err)
	}
	sess := session.Restore(st, today, recorder)
	evaluator := session.NewHTTPEvaluator(*serverURL)

	fmt.Printf("Word of the day for %s. %d tries, 5 letters. Type a word and press enter, or \"quit\".\n",
		today, session.NumAttempts)
	printBoard(sess.State())

	scanner := bufio.NewScanner(os.Stdin)
	for !sess.State().Won && !sess.State().Lost {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "quit") {
			return
		}
		if len(input) != session.WordLength {
			fmt.Printf("Need exactly %d letters.\n", session.WordLength)
			continue
		}

		clearRow(sess)
		applied := true
		for _, r := range input {
			if !sess.TypeLetter(string(r)) {
				applied = false
				break
			}
		}
		if !applied {
			fmt.Println("Letters only, A-Z.")
			clearRow(sess)
			continue
		}

		if err := sess.SubmitRow(ctx, evaluator); err != nil {
			fmt.Printf("Could not check your guess (%v), try again.\n", err)
			continue
		}
		cur := sess.State()
		if cur.InvalidWord {
			fmt.Println("Not in the dictionary.")
		}
		printBoard(cur)
		if err := session.SaveState(ctx, store, *userID, cur); err != nil {
			log.Printf("save session: %v", err)
		}
	}

	final := sess.State()
	if final.Won {
		fmt.Println("You won!")
	} else {
		fmt.Println("Out of tries, better luck tomorrow.")
	}
	printStats(ctx, recorder)
}

// clearRow backspaces the active row empty, also clearing the invalid-word
// flag if set.
func clearRow(sess *session.Session) {
	for sess.Backspace() {
	}
}

func printBoard(st session.State) {
	for _, row := range st.Rows {
		var b strings.Builder
		for _, cell := range row {
			switch {
			case cell.Char == "":
				b.WriteString(" _ ")
			case cell.Exact:
				b.WriteString("[" + cell.Char + "]")
			case cell.Misplaced:
				b.WriteString("(" + cell.Char + ")")
			default:
				b.WriteString(" " + cell.Char + " ")
			}
		}
		fmt.Println(b.String())
	}

	hints := st.KeyHints()
	if len(hints) == 0 {
		return
	}
	var found, absent []string
	for letter, hint := range hints {
		if hint == session.HintFound {
			found = append(found, letter)
		} else {
			absent = append(absent, letter)
		}
	}
	sort.Strings(found)
	sort.Strings(absent)
	fmt.Printf("In the word: %s | Not in the word: %s\n",
		strings.Join(found, " "), strings.Join(absent, " "))
}

func printStats(ctx context.Context, recorder *stats.Recorder) {
	s, err := recorder.Load(ctx)
	if err != nil {
		log.Printf("load stats: %v", err)
		return
	}
	fmt.Printf("Played %d, won %d (%d%%), streak %d (best %d), avg guesses %.1f\n",
		s.GamesPlayed, s.GamesWon, stats.WinRate(s.GamesPlayed, s.GamesWon),
		s.CurrentStreak, s.MaxStreak, s.AverageGuesses)
	for _, a := range s.Achievements {
		fmt.Printf("%s %s - %s\n", a.Icon, a.Title, a.Description)
	}
}
