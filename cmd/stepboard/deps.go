package main

import (
	"context"
	"fmt"

	"stepboard/internal/config"
	"stepboard/internal/directory"
	"stepboard/internal/leaderboard"
	"stepboard/internal/random"
	"stepboard/internal/session"

	"go.uber.org/zap"
)

// newClient builds the directory client from config.
func newClient(c *config.Config) *directory.Client {
	return directory.NewClient(c.Directory, c.GetDirectoryTimeout())
}

// newNormalizer builds a normalizer over a fresh score source.
func newNormalizer(c *config.Config) (*leaderboard.Normalizer, error) {
	src, err := random.NewSource(c.Scores.Max, c.Scores.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create score source: %w", err)
	}
	return leaderboard.NewNormalizer(src), nil
}

// newSession creates the one session for this process.
func newSession(c *config.Config) *session.Session {
	return session.New(loggedIn || c.UI.StartLoggedIn)
}

// loadBoard runs one fetch and returns a ranked board.
func loadBoard(ctx context.Context, c *config.Config) (*leaderboard.Board, error) {
	norm, err := newNormalizer(c)
	if err != nil {
		return nil, err
	}

	payloads, err := newClient(c).Fetch(ctx)
	if err != nil {
		return nil, err
	}

	board := leaderboard.NewBoard(leaderboard.ParseLocale(c.UI.Locale))
	board.Replace(norm.Normalize(payloads))
	logger.Debug("board loaded", zap.Int("users", board.Len()))
	return board, nil
}
