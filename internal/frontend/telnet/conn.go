// Package telnet serves console sessions to Telnet clients over TCP.
package telnet

import (
	"bufio"
	"bytes"
	"net"
	"sync"
	"time"
)

// Telnet IAC (Interpret As Command) constants per RFC 854.
const (
	IAC  byte = 255 // Interpret As Command
	DONT byte = 254
	DO   byte = 253
	WONT byte = 252
	WILL byte = 251
	SB   byte = 250 // Sub-negotiation Begin
	SE   byte = 240 // Sub-negotiation End
	NOP  byte = 241
	GA   byte = 249 // Go Ahead

	// Telnet options
	OptEcho            byte = 1
	OptSuppressGoAhead byte = 3
	OptLinemode        byte = 34
)

// Conn wraps a TCP connection with Telnet protocol handling. It is an
// io.Reader that yields the client's text with IAC sequences removed and
// line endings normalized to "\n", and an io.Writer that sends "\n" as
// "\r\n", so a console.Prompter can run directly on top of it.
type Conn struct {
	raw    net.Conn
	reader *bufio.Reader
	mu     sync.Mutex
	// afterCR is set when the last byte read was '\r', so a following
	// '\n' or NUL is swallowed.
	afterCR bool

	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewConn wraps a raw TCP connection with Telnet protocol handling.
//
// Precondition: raw must be a valid, open network connection.
// Postcondition: Returns a Conn ready for reading and writing.
func NewConn(raw net.Conn, readTimeout, writeTimeout time.Duration) *Conn {
	return &Conn{
		raw:          raw,
		reader:       bufio.NewReaderSize(raw, 4096),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

// Negotiate asks the client to suppress go-ahead.
//
// Postcondition: Negotiation bytes are written to the connection.
func (c *Conn) Negotiate() error {
	return c.writeRaw([]byte{IAC, WILL, OptSuppressGoAhead})
}

// Read fills p with filtered client text. It returns at the end of a line or
// once buffered input runs out, whichever comes first. "\r\n" and "\r\x00"
// both arrive as "\n"; other control bytes except tab are dropped.
//
// Postcondition: Returns n > 0 with a nil error, or n == 0 with the
// underlying read error (including io.EOF).
func (c *Conn) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if c.readTimeout > 0 {
		_ = c.raw.SetReadDeadline(time.Now().Add(c.readTimeout))
	}

	n := 0
	for n < len(p) {
		if n > 0 && c.reader.Buffered() == 0 {
			break
		}
		b, err := c.reader.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}

		if c.afterCR {
			c.afterCR = false
			if b == '\n' || b == 0 {
				continue
			}
		}

		switch {
		case b == IAC:
			if err := c.handleIAC(); err != nil {
				if n > 0 {
					return n, nil
				}
				return 0, err
			}
			continue
		case b == '\r':
			c.afterCR = true
			b = '\n'
		case b < 32 && b != '\t' && b != '\n':
			continue
		}

		p[n] = b
		n++
		if b == '\n' {
			break
		}
	}
	return n, nil
}

// handleIAC consumes the rest of a Telnet command after its IAC byte.
func (c *Conn) handleIAC() error {
	cmd, err := c.reader.ReadByte()
	if err != nil {
		return err
	}

	switch cmd {
	case WILL, WONT, DO, DONT:
		_, err := c.reader.ReadByte()
		return err
	case SB:
		for {
			b, err := c.reader.ReadByte()
			if err != nil {
				return err
			}
			if b != IAC {
				continue
			}
			next, err := c.reader.ReadByte()
			if err != nil {
				return err
			}
			if next == SE {
				return nil
			}
		}
	default:
		// NOP, GA, and escaped 0xFF carry no text.
		return nil
	}
}

// Write sends p with every "\n" expanded to "\r\n".
//
// Postcondition: Returns len(p) on success.
func (c *Conn) Write(p []byte) (int, error) {
	if err := c.writeRaw(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *Conn) writeRaw(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.writeTimeout > 0 {
		_ = c.raw.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	_, err := c.raw.Write(data)
	return err
}

// Close closes the underlying TCP connection.
//
// Postcondition: The connection is closed and no longer usable.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// RemoteAddr returns the remote network address of the client.
func (c *Conn) RemoteAddr() net.Addr {
	return c.raw.RemoteAddr()
}
