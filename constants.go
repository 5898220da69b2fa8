package main

import (
	"github.com/AlexanderBiba/wordle/internal/score"
	"github.com/AlexanderBiba/wordle/internal/session"
)

// Game configuration constants
const (
	MaxGuesses = session.NumAttempts // Maximum number of guesses per game
	WordLength = score.WordLength    // Length of the word to guess
)

// Route constants
const (
	RouteRouter = "/router"
	RouteHealth = "/healthz"
)

// Query parameter constants
const (
	ParamWord   = "word"
	ParamAction = "action"
	ParamMetric = "metric"

	ActionLeaderboard = "getLeaderboard"
)

// Error codes returned in the "error" field of failure responses
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeInvalidWord    = "INVALID_WORD"
	ErrCodeInternal       = "INTERNAL_SERVER_ERROR"
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

type contextKey string
