package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/AlexanderBiba/wordle/internal/docstore"
)

// loadAnswerWords reads the answer pool from data/words.json, dropping
// anything that is not exactly 5 letters. Words are kept lowercase, the
// canonical form for storage and scoring.
func loadAnswerWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wl WordList
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, err
	}
	words := lo.FilterMap(wl.Words, func(w string, _ int) (string, bool) {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) != WordLength {
			logWarn("Skipping answer word %q: not %d letters", w, WordLength)
			return "", false
		}
		return w, true
	})
	if len(words) == 0 {
		return nil, fmt.Errorf("no usable words in %s", path)
	}
	return words, nil
}

// loadAcceptedWords reads the accepted-guess list from
// data/accepted_words.json.
func loadAcceptedWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var accepted []string
	if err := json.Unmarshal(data, &accepted); err != nil {
		return nil, err
	}
	return lo.FilterMap(accepted, func(w string, _ int) (string, bool) {
		w = strings.ToLower(strings.TrimSpace(w))
		return w, len(w) == WordLength
	}), nil
}

// seedDictionary loads both word files and writes the union into the
// store's dictionary set. Every answer is also an accepted guess. Returns
// (answers, dictionary size).
func seedDictionary(ctx context.Context, store docstore.Store) ([]string, int, error) {
	answers, err := loadAnswerWords("data/words.json")
	if err != nil {
		return nil, 0, fmt.Errorf("load answers: %w", err)
	}
	accepted, err := loadAcceptedWords("data/accepted_words.json")
	if err != nil {
		return nil, 0, fmt.Errorf("load accepted words: %w", err)
	}

	dictionary := lo.Uniq(append(append([]string{}, accepted...), answers...))
	for _, w := range dictionary {
		if err := store.AddToSet(ctx, docstore.DictionarySet, w); err != nil {
			return nil, 0, fmt.Errorf("seed dictionary: %w", err)
		}
	}
	return answers, len(dictionary), nil
}
