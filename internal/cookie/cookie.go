// Package cookie implements the client side of RFC 7873 DNS Cookies: a
// per-server client cookie attached to outbound EDNS(0) queries, and parsing
// of whatever cookie option a server echoes back.
package cookie

import (
	"crypto/rand"
	"encoding/binary"
	"errors"

	"github.com/dchest/siphash"
)

var (
	ErrInvalidCookie       = errors.New("cookie: malformed COOKIE option")
	ErrInvalidServerCookie = errors.New("cookie: server cookie size out of range")
)

const (
	clientCookieSize = 8 // RFC 7873 §4: fixed 64 bits
	minServerCookie  = 8
	maxServerCookie  = 32
)

// Client generates client cookies for outbound queries. A single Client
// should be reused for every query issued against a given server within a
// process so the server can recognize repeat traffic; dog creates one
// Client per process, keyed by a fresh random secret.
type Client struct {
	secret [16]byte
}

// NewClient creates a Client seeded from crypto/rand.
func NewClient() (*Client, error) {
	var c Client
	if _, err := rand.Read(c.secret[:]); err != nil {
		return nil, err
	}
	return &c, nil
}

// ClientCookie derives the 8-byte client cookie to send to server. It is a
// SipHash-2-4 MAC of the server's address under the client's per-process
// secret: stable across repeat queries to the same server within one run,
// unpredictable to an off-path observer.
func (c *Client) ClientCookie(server string) [8]byte {
	h := siphash.New(c.secret[:])
	h.Write([]byte(server))

	var cookie [8]byte
	binary.LittleEndian.PutUint64(cookie[:], h.Sum64())
	return cookie
}

// ParseCookie splits a raw EDNS COOKIE option value into its client and
// (if present) server cookie parts per RFC 7873 §4.
func ParseCookie(data []byte) (clientCookie [8]byte, serverCookie []byte, err error) {
	if len(data) < clientCookieSize {
		return clientCookie, nil, ErrInvalidCookie
	}
	copy(clientCookie[:], data[:clientCookieSize])

	if len(data) == clientCookieSize {
		return clientCookie, nil, nil
	}

	serverCookie = data[clientCookieSize:]
	if len(serverCookie) < minServerCookie || len(serverCookie) > maxServerCookie {
		return clientCookie, nil, ErrInvalidServerCookie
	}
	return clientCookie, serverCookie, nil
}

// FormatCookie assembles a COOKIE option value from a client cookie and an
// optional server cookie echo.
func FormatCookie(clientCookie [8]byte, serverCookie []byte) []byte {
	data := make([]byte, clientCookieSize+len(serverCookie))
	copy(data[:clientCookieSize], clientCookie[:])
	copy(data[clientCookieSize:], serverCookie)
	return data
}
