package orchestrator

import (
	"time"

	"github.com/dnsscience/dog/internal/message"
	"github.com/dnsscience/dog/internal/transport"
)

// CookieInfo is the decoded EDNS COOKIE option (RFC 7873) attached to a
// query and, if the server echoed one back, the server's half. It is
// surfaced on ResponseView only when EDNSMode is EDNSShow.
type CookieInfo struct {
	Client [8]byte
	Server []byte
}

// ResponseView is the structured, renderer-facing result of one query.
type ResponseView struct {
	Question message.Question

	Answer     []message.RR
	Authority  []message.RR
	Additional []message.RR

	Elapsed  time.Duration
	Rcode    uint16
	Server   string
	Protocol transport.Protocol

	// Warning carries a non-fatal protocol observation, e.g. the TC bit
	// was seen and the query was retried over TCP.
	Warning string

	// Err is set when the query could not be completed at all (a
	// transport or wire-decoding failure). Question and Server still
	// name what was attempted, where known; the record sections, Rcode
	// and EDNS fields are zero-value and the renderer emits an error row.
	Err error

	EDNS   *message.EDNSInfo
	Cookie *CookieInfo
}

// HasAnswer reports whether this view carries at least one answer RR,
// the condition --short and the exit-code rules key off of.
func (v ResponseView) HasAnswer() bool {
	return v.Err == nil && len(v.Answer) > 0
}
