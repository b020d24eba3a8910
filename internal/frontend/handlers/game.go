// Package handlers provides the Telnet session handler for the serve command.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/swampqueen/internal/config"
	"github.com/cory-johannsen/swampqueen/internal/frontend/console"
	"github.com/cory-johannsen/swampqueen/internal/frontend/telnet"
	"github.com/cory-johannsen/swampqueen/internal/game/dice"
	"github.com/cory-johannsen/swampqueen/internal/game/location"
)

const welcomeBanner = console.Bold + console.BrightGreen + `
  ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
      S  W  A  M  P  Q  U  E  E  N
  ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~` + console.Reset + `
`

// SourceFactory returns the dice source for one new session.
type SourceFactory func() dice.Source

// GameHandler implements telnet.SessionHandler by running a console
// Session over each connection.
type GameHandler struct {
	cfg       config.Config
	locations *location.Loader
	sources   SourceFactory
	logger    *zap.Logger
}

// NewGameHandler creates a GameHandler. A nil sources uses
// dice.NewCryptoSource for every session.
//
// Precondition: locations and logger must be non-nil; cfg must be valid.
// Postcondition: Returns a GameHandler ready to handle sessions.
func NewGameHandler(cfg config.Config, locations *location.Loader, sources SourceFactory, logger *zap.Logger) *GameHandler {
	if locations == nil || logger == nil {
		panic("handlers: NewGameHandler requires a location loader and a logger")
	}
	if sources == nil {
		sources = dice.NewCryptoSource
	}
	return &GameHandler{cfg: cfg, locations: locations, sources: sources, logger: logger}
}

// HandleSession greets the client and plays one session on conn.
//
// Postcondition: Returns nil when the player leaves normally, ctx.Err() on
// server shutdown, or an error if the session ended abnormally.
func (h *GameHandler) HandleSession(ctx context.Context, conn *telnet.Conn) error {
	start := time.Now()
	logger := h.logger.With(zap.String("remote_addr", conn.RemoteAddr().String()))

	if _, err := conn.Write([]byte(welcomeBanner)); err != nil {
		return fmt.Errorf("sending welcome: %w", err)
	}

	p := console.NewPrompter(conn, conn)
	roller := dice.NewLoggedRoller(h.sources(), logger)
	err := console.NewSession(p, roller, h.locations, h.cfg, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		_ = p.WriteLine(console.Colorize(console.Yellow, "Server shutting down. Goodbye!"))
	}

	logger.Info("player left", zap.Duration("session_duration", time.Since(start)), zap.Bool("clean", err == nil))
	return err
}
