package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"
)

// DoTExchanger sends one query over DNS-over-TLS per RFC 7858: same
// length-prefixed framing as plain TCP, wrapped in a TLS handshake.
type DoTExchanger struct {
	Addr       string // host:port, default port 853
	ServerName string // SNI / certificate verification name
	Timeout    time.Duration
	TLSConfig  *tls.Config // optional override; nil uses ServerName with system roots
}

func NewDoTExchanger(addr, serverName string, timeout time.Duration) *DoTExchanger {
	return &DoTExchanger{Addr: addr, ServerName: serverName, Timeout: timeout}
}

func (e *DoTExchanger) Exchange(ctx context.Context, query []byte) (Response, error) {
	start := time.Now()

	cfg := e.TLSConfig
	if cfg == nil {
		cfg = &tls.Config{ServerName: e.ServerName, MinVersion: tls.VersionTLS12}
	}

	d := tls.Dialer{
		NetDialer: &net.Dialer{Timeout: e.Timeout},
		Config:    cfg,
	}
	conn, err := d.DialContext(ctx, "tcp", e.Addr)
	if err != nil {
		return Response{}, fmt.Errorf("dot dial %s: %w", e.Addr, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(e.Timeout)); err != nil {
		return Response{}, err
	}

	raw, err := exchangeFramed(conn, query)
	if err != nil {
		return Response{}, err
	}
	return Response{Raw: raw, Server: e.Addr, Protocol: DoT, RTT: time.Since(start)}, nil
}
