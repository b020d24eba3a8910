// Package testutil provides helpers for tests that talk to a running
// Telnet acceptor.
package testutil

import (
	"bytes"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"
)

// iac starts every Telnet command sequence.
const iac byte = 255

// TelnetClient is a minimal Telnet test client for integration testing.
type TelnetClient struct {
	conn    net.Conn
	t       *testing.T
	pending bytes.Buffer
}

// NewTelnetClient dials the given address and returns a test client.
//
// Precondition: addr must be a valid "host:port" string with a listening server.
// Postcondition: Returns a connected TelnetClient or fails the test.
func NewTelnetClient(t *testing.T, addr string) *TelnetClient {
	t.Helper()
	start := time.Now()

	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		t.Fatalf("connecting to %s: %v [%s]", addr, err, time.Since(start))
	}

	t.Cleanup(func() {
		conn.Close()
	})

	t.Logf("telnet client connected to %s [%s]", addr, time.Since(start))
	return &TelnetClient{conn: conn, t: t}
}

// ReadUntil reads until the accumulated text contains substr or timeout
// elapses. Three-byte IAC negotiations from the server are dropped and
// "\r\n" is folded to "\n". Text after the match is kept for the next call.
//
// Precondition: substr must be non-empty.
// Postcondition: Returns the text up to and including the match, or fails on timeout.
func (c *TelnetClient) ReadUntil(substr string, timeout time.Duration) string {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))

	tmp := make([]byte, 1024)
	for {
		text := c.pending.String()
		if idx := strings.Index(text, substr); idx >= 0 {
			end := idx + len(substr)
			c.pending.Reset()
			c.pending.WriteString(text[end:])
			return text[:end]
		}

		n, err := c.conn.Read(tmp)
		if n > 0 {
			c.pending.Write(stripNegotiation(tmp[:n]))
		}
		if err != nil {
			c.t.Fatalf("reading until %q: got %q, error: %v", substr, c.pending.String(), err)
		}
	}
}

func stripNegotiation(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] == iac && i+2 < len(data) {
			i += 2
			continue
		}
		out = append(out, data[i])
	}
	return bytes.ReplaceAll(out, []byte("\r\n"), []byte("\n"))
}

// Send writes a line of text to the server, appending \r\n.
//
// Precondition: text should not contain trailing newline characters.
// Postcondition: text + \r\n is written to the connection.
func (c *TelnetClient) Send(text string) {
	c.t.Helper()
	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if _, err := fmt.Fprintf(c.conn, "%s\r\n", text); err != nil {
		c.t.Fatalf("sending %q: %v", text, err)
	}
}

// Close closes the underlying connection.
func (c *TelnetClient) Close() {
	c.conn.Close()
}

// Eventually polls cond every 10ms until it holds or timeout elapses.
//
// Postcondition: Returns when cond is true, or fails the test.
func Eventually(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met within %s", timeout)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
