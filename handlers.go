package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlexanderBiba/wordle/internal/daily"
	"github.com/AlexanderBiba/wordle/internal/docstore"
	"github.com/AlexanderBiba/wordle/internal/leaderboard"
	"github.com/AlexanderBiba/wordle/internal/score"
)

// routerHandler is the single serverless-style entry point: leaderboard
// requests are dispatched on the action parameter, everything else is a
// word check.
func (app *App) routerHandler(c *gin.Context) {
	if c.Query(ParamAction) == ActionLeaderboard {
		app.leaderboardHandler(c)
		return
	}
	app.checkWordHandler(c)
}

// checkWordHandler validates a guess against the dictionary and scores it
// against today's secret word, creating the word on the first request of
// the day.
func (app *App) checkWordHandler(c *gin.Context) {
	ctx := c.Request.Context()

	word := c.Query(ParamWord)
	if len(word) != WordLength {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   ErrCodeInvalidRequest,
			Message: "A 5-letter word must be provided as a query parameter.",
		})
		return
	}
	guess := strings.ToLower(word)

	inDictionary, err := app.Store.SetContains(ctx, docstore.DictionarySet, guess)
	if err != nil {
		app.internalError(c, "dictionary lookup failed", err)
		return
	}
	if !inDictionary {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   ErrCodeInvalidWord,
			Message: "The guessed word is not in our dictionary.",
		})
		return
	}

	dateKey := daily.DateKey(time.Now())
	secret, err := app.Selector.EnsureWordForDate(ctx, dateKey)
	if err != nil {
		app.internalError(c, "daily word resolution failed", err)
		return
	}

	c.JSON(http.StatusOK, score.Score(secret, guess))
}

// leaderboardHandler scans all users' persisted stats and returns the
// sorted top-N view for the requested metric.
func (app *App) leaderboardHandler(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := leaderboard.Load(ctx, app.Store)
	if err != nil {
		app.internalError(c, "leaderboard scan failed", err)
		return
	}

	metric := c.DefaultQuery(ParamMetric, leaderboard.MetricWinRate)
	c.JSON(http.StatusOK, leaderboard.Compute(users, metric, leaderboard.DefaultLimit))
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"env":        map[bool]string{true: "production", false: "development"}[app.Config.IsProduction],
		"store":      app.StoreKind,
		"answers":    len(app.Answers),
		"dictionary": app.DictionarySize,
		"next_word":  formatCountdown(daily.NextRollover(time.Now())),
		"uptime":     formatUptime(uptime),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

func (app *App) internalError(c *gin.Context, msg string, err error) {
	reqID, _ := c.Request.Context().Value(requestIDKey).(string)
	if reqID != "" {
		logWarn("[request_id=%v] %s: %v", reqID, msg, err)
	} else {
		logWarn("%s: %v", msg, err)
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   ErrCodeInternal,
		Message: "An unexpected error occurred.",
	})
}
