// Package orchestrator expands a QueryPlan into the cartesian product of
// queries it describes, executes each one sequentially over a chosen
// transport, and collects the results into ResponseViews. It is the only
// package that ties the wire codec (internal
// /message), the transports (internal/transport) and the record registry
// (internal/registry) together into one request/response cycle; CLI
// argument parsing and rendering remain outside it, consuming QueryPlan
// and ResponseView respectively.
package orchestrator

import (
	"time"

	"github.com/dnsscience/dog/internal/registry"
)

// EDNSMode selects how (or whether) dog attaches an OPT pseudo-record to
// outbound queries.
type EDNSMode int

const (
	// EDNSHide attaches an OPT record (so the server sees EDNS(0) support
	// and the advertised UDP buffer size) but the OPT's own fields are not
	// surfaced on ResponseView. This is the default: EDNS is nearly always
	// wanted for resolvers with a TXT/DNSSEC-heavy answer, but OPT details
	// clutter ordinary renders.
	EDNSHide EDNSMode = iota
	// EDNSDisable omits the OPT record entirely: the outbound message
	// behaves like a pre-RFC-6891 stub resolver.
	EDNSDisable
	// EDNSShow attaches OPT and surfaces its decoded fields (UDP size,
	// extended RCODE, DO bit, options, and any EDNS COOKIE) on ResponseView.
	EDNSShow
)

// Transport selects which of the four wire carriers issues a query. A
// closed enum dispatched in one place (buildExchanger), not an open
// interface registry.
type Transport int

const (
	TransportUDP Transport = iota
	TransportTCP
	TransportTLS
	TransportHTTPS
)

func (t Transport) String() string {
	switch t {
	case TransportUDP:
		return "UDP"
	case TransportTCP:
		return "TCP"
	case TransportTLS:
		return "TLS"
	case TransportHTTPS:
		return "HTTPS"
	default:
		return "unknown"
	}
}

// defaultUDPPayload is the EDNS(0) UDP payload size dog advertises absent
// an explicit -Z bufsize= override, per the DNS flag day 2020 guidance.
const defaultUDPPayload = 1232

// DefaultTimeout is the per-exchange timeout applied when QueryPlan.Timeout
// is zero.
const DefaultTimeout = 5 * time.Second

// Tweaks holds the protocol tweak bits the CLI's -Z flag assembles.
type Tweaks struct {
	AA      bool
	AD      bool
	CD      bool
	BufSize uint16 // 0 means "use defaultUDPPayload"
}

// OutputOptions are the rendering-adjacent knobs that travel with a
// QueryPlan even though rendering itself lives outside this package:
// the orchestrator doesn't interpret these, but a caller
// assembling one QueryPlan for an entire CLI invocation needs a single
// place to carry them through to the renderer.
type OutputOptions struct {
	Short   bool
	JSON    bool
	Seconds bool
	Color   string // "always" | "automatic" | "never"
	Verbose bool
}

// QueryPlan is the structured input the orchestrator consumes. It is
// built by the CLI (or by a test) and never mutated by the orchestrator.
type QueryPlan struct {
	Domains     []string
	Types       []string
	Nameservers []string
	Classes     []string
	Transport   Transport
	// ExplicitUDP is true only when -U/--udp was passed on the command
	// line, as opposed to UDP simply being the unrequested default
	// transport. A truncated UDP response is retried over TCP (and the
	// view carries a Warning saying so) *unless* UDP was explicitly
	// requested, in which case truncation is surfaced as an error instead.
	ExplicitUDP bool
	EDNS        EDNSMode
	Tweaks      Tweaks
	TxID        *uint16 // overrides the per-query random transaction id for every query in the batch
	Timeout     time.Duration
	Output      OutputOptions
}

// normalized is a QueryPlan with defaults applied and symbolic names
// resolved to wire codes, ready for cartesian expansion.
type normalized struct {
	domains     []string
	types       []uint16
	nameservers []string
	classes     []uint16
	transport   Transport
	edns        EDNSMode
	tweaks      Tweaks
	txID        *uint16
	timeout     time.Duration
}

func (p QueryPlan) normalize() (normalized, error) {
	n := normalized{
		transport: p.Transport,
		edns:      p.EDNS,
		tweaks:    p.Tweaks,
		txID:      p.TxID,
		timeout:   p.Timeout,
	}
	if n.timeout <= 0 {
		n.timeout = DefaultTimeout
	}
	if n.tweaks.BufSize == 0 {
		n.tweaks.BufSize = defaultUDPPayload
	}

	n.domains = p.Domains
	if len(n.domains) == 0 {
		return n, ErrNoDomain
	}

	types := p.Types
	if len(types) == 0 {
		types = []string{"A"}
	}
	for _, t := range types {
		code, err := registry.LookupType(t)
		if err != nil {
			return n, err
		}
		n.types = append(n.types, code)
	}

	classes := p.Classes
	if len(classes) == 0 {
		classes = []string{"IN"}
	}
	for _, cl := range classes {
		code, err := registry.LookupClass(cl)
		if err != nil {
			return n, err
		}
		n.classes = append(n.classes, code)
	}

	n.nameservers = p.Nameservers
	return n, nil
}
