package handlers_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/swampqueen/internal/config"
	"github.com/cory-johannsen/swampqueen/internal/frontend/handlers"
	"github.com/cory-johannsen/swampqueen/internal/frontend/telnet"
	"github.com/cory-johannsen/swampqueen/internal/game/dice"
	"github.com/cory-johannsen/swampqueen/internal/game/dice/mocks"
	"github.com/cory-johannsen/swampqueen/internal/game/location"
	"github.com/cory-johannsen/swampqueen/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Logging: config.LoggingConfig{Level: "debug", Format: "console"},
		Content: config.ContentConfig{
			LocationsDir:  filepath.Join("..", "..", "..", "content", "locations"),
			StartLocation: "bog_edge",
		},
		Dice: config.DiceConfig{MaxCount: 10},
		Telnet: config.TelnetConfig{
			Host:         "127.0.0.1",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
	}
}

// serve runs h behind an acceptor and returns its address and a shutdown
// function that blocks until the acceptor has returned.
func serve(t *testing.T, h telnet.SessionHandler) (string, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	acc := telnet.NewAcceptor(testConfig().Telnet, h, zaptest.NewLogger(t))
	done := make(chan error, 1)
	go func() {
		done <- acc.ListenAndServe(ctx)
	}()

	var stopped bool
	shutdown := func() {
		if stopped {
			return
		}
		stopped = true
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("acceptor did not shut down in time")
		}
	}
	t.Cleanup(shutdown)
	testutil.Eventually(t, 2*time.Second, func() bool { return acc.Addr() != "" })
	return acc.Addr(), shutdown
}

func TestGameHandler_PlaysSessionOverTelnet(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Intn(6).Return(0),
		src.EXPECT().Intn(6).Return(5),
	)

	core, logs := observer.New(zap.InfoLevel)
	cfg := testConfig()
	h := handlers.NewGameHandler(cfg, location.NewLoader(cfg.Content.LocationsDir),
		func() dice.Source { return src }, zap.New(core))
	addr, _ := serve(t, h)

	client := testutil.NewTelnetClient(t, addr)
	client.ReadUntil("S  W  A  M  P", 2*time.Second)
	client.ReadUntil("Edge of the Bog", 2*time.Second)

	for _, answer := range []string{"Vess", "hunter", "alligator_folk", "bulk", "the_sight"} {
		client.Send(answer)
	}
	client.ReadUntil("YOUR CHARACTER:", 2*time.Second)
	client.ReadUntil("Alligator Folk Hunter", 2*time.Second)

	client.Send("roll 2d6")
	client.ReadUntil("2d6:", 2*time.Second)
	client.ReadUntil("1+6=7", 2*time.Second)
	client.Send("quit")
	client.ReadUntil("Farewell.", 2*time.Second)

	testutil.Eventually(t, 2*time.Second, func() bool {
		return logs.FilterMessage("player left").Len() == 1
	})
	entry := logs.FilterMessage("player left").All()[0]
	assert.Equal(t, true, entry.ContextMap()["clean"])
	assert.Contains(t, entry.ContextMap(), "remote_addr")
	assert.Equal(t, 1, logs.FilterMessage("character created").Len())
}

func TestGameHandler_HugeCountRefusedWhenUnlimited(t *testing.T) {
	cfg := testConfig()
	cfg.Dice.MaxCount = 0
	h := handlers.NewGameHandler(cfg, location.NewLoader(cfg.Content.LocationsDir), nil, zap.NewNop())
	addr, _ := serve(t, h)

	client := testutil.NewTelnetClient(t, addr)
	for _, answer := range []string{"Vess", "hunter", "alligator_folk", "bulk", "the_sight"} {
		client.Send(answer)
	}
	client.ReadUntil("YOUR CHARACTER:", 2*time.Second)

	client.Send("9223372036854775807d6")
	client.ReadUntil("Too many dice: 9223372036854775807 (limit 1000000).", 2*time.Second)
	client.Send("1d1")
	client.ReadUntil("1d1: 1", 2*time.Second)
}

func TestGameHandler_ShutdownMidSession(t *testing.T) {
	cfg := testConfig()
	h := handlers.NewGameHandler(cfg, location.NewLoader(cfg.Content.LocationsDir), nil, zap.NewNop())
	addr, shutdown := serve(t, h)

	client := testutil.NewTelnetClient(t, addr)
	client.ReadUntil("Edge of the Bog", 2*time.Second)

	// The session is blocked on the name prompt; shutdown must not hang.
	shutdown()
}

func TestNewGameHandlerPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { handlers.NewGameHandler(testConfig(), nil, nil, zap.NewNop()) })
}
