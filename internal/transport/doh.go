package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// dohContentType is the RFC 8484 §6 wire-format media type.
const dohContentType = "application/dns-message"

// DoHExchanger sends one query as an RFC 8484 POST. GET-with-base64url is
// deliberately not implemented: dog always has the full wire query in hand
// before it dials, so POST is strictly simpler and avoids URL length limits
// on large EDNS(0) queries.
type DoHExchanger struct {
	URL     string // e.g. https://dns.example.net/dns-query
	Timeout time.Duration

	client *http.Client
}

func NewDoHExchanger(url string, timeout time.Duration) *DoHExchanger {
	return &DoHExchanger{
		URL:     url,
		Timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

func (e *DoHExchanger) Exchange(ctx context.Context, query []byte) (Response, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.URL, bytes.NewReader(query))
	if err != nil {
		return Response{}, fmt.Errorf("doh request: %w", err)
	}
	req.Header.Set("Content-Type", dohContentType)
	req.Header.Set("Accept", dohContentType)

	resp, err := e.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("doh post %s: %w", e.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("doh post %s: unexpected status %s", e.URL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMessageSize))
	if err != nil {
		return Response{}, fmt.Errorf("doh read response: %w", err)
	}

	return Response{Raw: body, Server: e.URL, Protocol: DoH, RTT: time.Since(start)}, nil
}
