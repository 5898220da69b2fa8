package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AlexanderBiba/wordle/internal/score"
)

// HTTPEvaluator calls the remote word-check endpoint.
type HTTPEvaluator struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPEvaluator returns an evaluator for a server base URL.
func NewHTTPEvaluator(baseURL string) *HTTPEvaluator {
	return &HTTPEvaluator{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Evaluate submits the guess and decodes the five result codes. A dictionary
// rejection surfaces as ErrInvalidWord; anything else is a plain error the
// caller treats as retryable.
func (e *HTTPEvaluator) Evaluate(ctx context.Context, word string) ([]score.Code, error) {
	u := fmt.Sprintf("%s/router?word=%s", e.BaseURL, url.QueryEscape(strings.ToLower(word)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("check word: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var payload errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("check word: status %d", resp.StatusCode)
		}
		if payload.Error == "INVALID_WORD" {
			return nil, ErrInvalidWord
		}
		return nil, fmt.Errorf("check word: %s (status %d)", payload.Error, resp.StatusCode)
	}

	var codes []score.Code
	if err := json.NewDecoder(resp.Body).Decode(&codes); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	if len(codes) != score.WordLength {
		return nil, fmt.Errorf("result has %d codes, want %d", len(codes), score.WordLength)
	}
	return codes, nil
}
