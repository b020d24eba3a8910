package telnet

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/swampqueen/internal/config"
)

// SessionHandler processes a connected Telnet session.
// Implementations run the whole interaction for a single client.
type SessionHandler interface {
	HandleSession(ctx context.Context, conn *Conn) error
}

// Acceptor listens for Telnet connections on a TCP port and dispatches
// each connection to a SessionHandler on its own goroutine.
type Acceptor struct {
	cfg     config.TelnetConfig
	handler SessionHandler
	logger  *zap.Logger

	listener net.Listener
	wg       sync.WaitGroup
	quit     chan struct{}
	mu       sync.Mutex
	running  bool
	stopped  bool
}

// NewAcceptor creates a Telnet acceptor with the given configuration.
//
// Precondition: handler and logger must be non-nil.
// Postcondition: Returns an Acceptor ready to be started with ListenAndServe.
func NewAcceptor(cfg config.TelnetConfig, handler SessionHandler, logger *zap.Logger) *Acceptor {
	if handler == nil || logger == nil {
		panic("telnet: NewAcceptor requires a handler and a logger")
	}
	return &Acceptor{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
		quit:    make(chan struct{}),
	}
}

// ListenAndServe starts the TCP listener and serves it until ctx is
// cancelled or Stop is called.
//
// Precondition: The acceptor must not have been started before.
// Postcondition: The listener is closed when this method returns.
func (a *Acceptor) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", a.cfg.Addr(), err)
	}
	return a.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled or Stop is
// called. Active sessions see their context cancelled and their connection
// closed; Serve returns once they have all finished. Accept failures are
// retried with a growing delay.
//
// Precondition: The acceptor must not have been started before.
// Postcondition: listener is closed when this method returns.
func (a *Acceptor) Serve(ctx context.Context, listener net.Listener) error {
	start := time.Now()

	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		listener.Close()
		return nil
	}
	a.listener = listener
	a.running = true
	a.mu.Unlock()

	a.logger.Info("telnet acceptor listening",
		zap.String("addr", listener.Addr().String()),
		zap.Duration("startup", time.Since(start)),
	)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.Stop()
		case <-done:
		}
	}()

	var backoff time.Duration
	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-a.quit:
				a.wg.Wait()
				return nil
			default:
			}
			backoff = nextAcceptBackoff(backoff)
			a.logger.Error("accepting connection", zap.Error(err), zap.Duration("retry_in", backoff))
			select {
			case <-a.quit:
			case <-time.After(backoff):
			}
			continue
		}
		backoff = 0

		a.wg.Add(1)
		go a.handleConn(ctx, conn)
	}
}

// Accept retry delays after a failure such as EMFILE.
const (
	minAcceptBackoff = 5 * time.Millisecond
	maxAcceptBackoff = time.Second
)

// nextAcceptBackoff doubles prev within [minAcceptBackoff, maxAcceptBackoff].
func nextAcceptBackoff(prev time.Duration) time.Duration {
	if prev < minAcceptBackoff {
		return minAcceptBackoff
	}
	return min(2*prev, maxAcceptBackoff)
}

// handleConn runs one client's session to completion. A panicking session
// is logged and its connection closed; other sessions keep running.
func (a *Acceptor) handleConn(parent context.Context, raw net.Conn) {
	defer a.wg.Done()
	start := time.Now()
	addr := raw.RemoteAddr().String()
	logger := a.logger.With(zap.String("remote_addr", addr))
	defer func() {
		if r := recover(); r != nil {
			logger.Error("session panicked", zap.Any("panic", r), zap.Stack("stack"))
		}
	}()

	logger.Info("client connected")

	conn := NewConn(raw, a.cfg.ReadTimeout, a.cfg.WriteTimeout)
	defer conn.Close()

	if err := conn.Negotiate(); err != nil {
		logger.Error("telnet negotiation failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// A session blocked on read only notices shutdown when its
	// connection closes.
	go func() {
		select {
		case <-a.quit:
			cancel()
		case <-ctx.Done():
		}
		conn.Close()
	}()

	if err := a.handler.HandleSession(ctx, conn); err != nil {
		logger.Debug("session ended",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
	} else {
		logger.Info("session ended cleanly",
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// Stop closes the listener and every active connection. It is safe to
// call more than once and before ListenAndServe.
//
// Postcondition: No new connections are accepted.
func (a *Acceptor) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}
	a.stopped = true
	a.running = false

	// Logged before the listener closes so ListenAndServe cannot return first.
	a.logger.Info("telnet acceptor stopping")
	close(a.quit)
	if a.listener != nil {
		a.listener.Close()
	}
}

// Addr returns the actual listening address, or empty string if not yet listening.
func (a *Acceptor) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listener != nil {
		return a.listener.Addr().String()
	}
	return ""
}

// IsRunning returns whether the acceptor is currently accepting connections.
func (a *Acceptor) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}
