package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"golang.org/x/time/rate"
)

// UDPExchanger sends one query over a UDP socket. dog never retries a
// UDP exchange more than once: a lost or malformed datagram is reported
// as a network error, not silently retried in a loop. The single retry
// is governed by a token-bucket limiter with burst 1.
type UDPExchanger struct {
	Addr    string
	Timeout time.Duration
	// BufSize is the receive buffer size, normally the UDP payload size
	// advertised in the query's OPT record. Zero means the 4096-byte
	// default.
	BufSize int

	limiter *rate.Limiter
}

const defaultUDPBuffer = 4096

// NewUDPExchanger builds a UDP exchanger targeting addr (host:port). A
// bufSize of zero selects the 4096-byte default receive buffer.
func NewUDPExchanger(addr string, timeout time.Duration, bufSize int) *UDPExchanger {
	return &UDPExchanger{
		Addr:    addr,
		Timeout: timeout,
		BufSize: bufSize,
		limiter: rate.NewLimiter(rate.Every(timeout), 1),
	}
}

func (e *UDPExchanger) Exchange(ctx context.Context, query []byte) (Response, error) {
	start := time.Now()
	resp, err := e.roundTrip(ctx, query)
	if err != nil && isTimeoutLike(err) && e.limiter.Allow() {
		resp, err = e.roundTrip(ctx, query)
	}
	if err != nil {
		return Response{}, err
	}

	r := Response{Raw: resp, Server: e.Addr, Protocol: UDP, RTT: time.Since(start)}
	if len(resp) < 3 {
		return r, ErrEmptyResponse
	}
	if resp[2]&0x02 != 0 {
		return r, ErrTruncated
	}
	return r, nil
}

func (e *UDPExchanger) roundTrip(ctx context.Context, query []byte) ([]byte, error) {
	d := net.Dialer{Timeout: e.Timeout}
	conn, err := d.DialContext(ctx, "udp", e.Addr)
	if err != nil {
		return nil, fmt.Errorf("udp dial %s: %w", e.Addr, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(e.Timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, err
	}

	if _, err := conn.Write(query); err != nil {
		return nil, fmt.Errorf("udp write to %s: %w", e.Addr, err)
	}

	size := e.BufSize
	if size <= 0 || size > maxMessageSize {
		size = defaultUDPBuffer
	}
	buf := make([]byte, size)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("udp read from %s: %w", e.Addr, err)
	}
	return buf[:n], nil
}

func isTimeoutLike(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
