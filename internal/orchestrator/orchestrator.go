package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dnsscience/dog/internal/cookie"
	"github.com/dnsscience/dog/internal/message"
	"github.com/dnsscience/dog/internal/metrics"
	"github.com/dnsscience/dog/internal/name"
	"github.com/dnsscience/dog/internal/random"
	"github.com/dnsscience/dog/internal/transport"
)

// Process exit codes. Severity ordering on conflict: network (1)
// dominates short-no-answer (2) dominates success (0); a CLI error (3)
// can only occur before any query is issued, so it never competes with
// the other three at this layer.
const (
	ExitSuccess       = 0
	ExitNetworkError  = 1
	ExitShortNoAnswer = 2
	ExitCLIError      = 3
)

// Run expands plan into its cartesian product of queries, executes them
// sequentially, and returns one ResponseView per query in traversal
// order (nameservers, then domains, then types, then classes), plus the
// process exit code the caller should use. mc may be nil; when
// non-nil, per-query counters are recorded for the verbose/metrics dump.
func Run(ctx context.Context, plan QueryPlan, mc *metrics.Collector) ([]ResponseView, int, error) {
	n, err := plan.normalize()
	if err != nil {
		return nil, ExitCLIError, err
	}
	if len(n.nameservers) == 0 {
		return nil, ExitCLIError, ErrNoNameserver
	}

	var cookieClient *cookie.Client
	if n.edns != EDNSDisable {
		cookieClient, err = cookie.NewClient()
		if err != nil {
			return nil, ExitNetworkError, fmt.Errorf("orchestrator: building cookie client: %w", err)
		}
	}

	var views []ResponseView
	for _, ns := range n.nameservers {
		for _, domain := range n.domains {
			dn, perr := name.Parse(domain)
			if perr != nil {
				views = append(views, ResponseView{Server: ns, Err: fmt.Errorf("orchestrator: domain %q: %w", domain, perr)})
				continue
			}
			for _, typ := range n.types {
				for _, class := range n.classes {
					views = append(views, execOne(ctx, plan, n, ns, dn, typ, class, cookieClient, mc))
				}
			}
		}
	}

	exit := ExitSuccess
	for _, v := range views {
		if v.Err != nil {
			exit = ExitNetworkError
			break
		}
	}
	if exit == ExitSuccess && plan.Output.Short {
		anyAnswer := false
		for _, v := range views {
			if v.HasAnswer() {
				anyAnswer = true
				break
			}
		}
		if !anyAnswer {
			exit = ExitShortNoAnswer
		}
	}
	return views, exit, nil
}

// ErrNoNameserver guards an invariant the CLI is responsible for
// maintaining (QueryPlan.Nameservers defaults to the system resolver list
// when empty): the orchestrator refuses to run with none at all rather
// than silently doing nothing.
var ErrNoNameserver = fmt.Errorf("orchestrator: no nameserver available")

func execOne(ctx context.Context, plan QueryPlan, n normalized, ns string, dn name.Name, typ, class uint16, cc *cookie.Client, mc *metrics.Collector) ResponseView {
	q := message.Question{Name: dn, Type: typ, Class: class}
	view := ResponseView{Question: q}

	txid := random.TransactionID()
	if n.txID != nil {
		txid = *n.txID
	}

	var optParams *message.OPTParams
	var clientCookie [8]byte
	if n.edns != EDNSDisable {
		optParams = &message.OPTParams{UDPSize: n.tweaks.BufSize}
		if cc != nil {
			clientCookie = cc.ClientCookie(ns)
			optParams.Options = append(optParams.Options, message.CookieOption(clientCookie[:], nil))
		}
	}

	query, err := message.EncodeQuery(message.QueryParams{
		ID:        txid,
		AA:        n.tweaks.AA,
		AD:        n.tweaks.AD,
		CD:        n.tweaks.CD,
		Questions: []message.Question{q},
		OPT:       optParams,
	})
	if err != nil {
		view.Err = fmt.Errorf("orchestrator: encoding query: %w", err)
		return view
	}

	ex, addr, err := buildExchanger(n, plan.Transport, ns)
	if err != nil {
		view.Err = err
		view.Server = ns
		return view
	}

	resp, err := ex.Exchange(ctx, query)
	if err != nil && errors.Is(err, transport.ErrTruncated) {
		if plan.ExplicitUDP {
			view.Err = fmt.Errorf("orchestrator: %w", err)
			view.Server = addr
			recordMetrics(mc, plan.Transport, 0, 0, 0, err)
			return view
		}
		recordMetrics(mc, plan.Transport, len(query), len(resp.Raw), resp.RTT, nil)
		tcpAddr := withDefaultPort(ns, "53")
		tcpEx := transport.NewTCPExchanger(tcpAddr, n.timeout)
		retried, rerr := tcpEx.Exchange(ctx, query)
		if rerr != nil {
			view.Err = fmt.Errorf("orchestrator: tcp retry after truncation: %w", rerr)
			view.Server = tcpAddr
			recordMetrics(mc, TransportTCP, 0, 0, 0, rerr)
			return view
		}
		resp = retried
		view.Warning = "response truncated over UDP; retried over TCP"
		recordMetrics(mc, TransportTCP, len(query), len(resp.Raw), resp.RTT, nil)
	} else if err != nil {
		view.Err = fmt.Errorf("orchestrator: %w", err)
		view.Server = addr
		recordMetrics(mc, plan.Transport, 0, 0, 0, err)
		return view
	} else {
		recordMetrics(mc, plan.Transport, len(query), len(resp.Raw), resp.RTT, nil)
	}

	decoded, err := message.Decode(resp.Raw)
	if err != nil {
		view.Err = fmt.Errorf("orchestrator: decoding response: %w", err)
		view.Server = resp.Server
		return view
	}

	view.Server = resp.Server
	view.Protocol = resp.Protocol
	view.Elapsed = resp.RTT
	view.Answer = decoded.Answer
	view.Authority = decoded.Authority
	view.Additional = decoded.Additional
	view.Rcode = uint16(decoded.Header.Rcode)

	if edns, ok := message.ExtractEDNS(decoded); ok {
		view.Rcode = edns.FullRcode(decoded.Header.Rcode)
		if n.edns == EDNSShow {
			view.EDNS = edns
			for _, opt := range edns.Options {
				if opt.Code != message.EDNSOptionCookie {
					continue
				}
				clientEcho, serverCookie, cerr := cookie.ParseCookie(opt.Data)
				if cerr == nil {
					view.Cookie = &CookieInfo{Client: clientEcho, Server: serverCookie}
				}
			}
		}
	}

	return view
}

func recordMetrics(mc *metrics.Collector, t Transport, sent, received int, rtt time.Duration, exchangeErr error) {
	if mc == nil {
		return
	}
	label := t.String()
	mc.QueriesIssued.WithLabelValues(label).Inc()
	if sent > 0 {
		mc.BytesSent.Add(float64(sent))
	}
	if received > 0 {
		mc.BytesReceived.Add(float64(received))
	}
	if rtt > 0 {
		mc.ExchangeTime.WithLabelValues(label).Observe(rtt.Seconds())
	}
	if exchangeErr != nil {
		mc.Errors.WithLabelValues(errorKind(exchangeErr)).Inc()
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, transport.ErrTruncated):
		return "truncated"
	case errors.Is(err, transport.ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, transport.ErrURLRequired):
		return "url_required"
	default:
		return "transport"
	}
}

func buildExchanger(n normalized, t Transport, ns string) (transport.Exchanger, string, error) {
	switch t {
	case TransportUDP:
		addr := withDefaultPort(ns, "53")
		bufSize := 0
		if n.edns != EDNSDisable {
			bufSize = int(n.tweaks.BufSize)
		}
		return transport.NewUDPExchanger(addr, n.timeout, bufSize), addr, nil
	case TransportTCP:
		addr := withDefaultPort(ns, "53")
		return transport.NewTCPExchanger(addr, n.timeout), addr, nil
	case TransportTLS:
		addr := withDefaultPort(ns, "853")
		return transport.NewDoTExchanger(addr, sniName(ns), n.timeout), addr, nil
	case TransportHTTPS:
		if !looksLikeURL(ns) {
			return nil, ns, transport.ErrURLRequired
		}
		return transport.NewDoHExchanger(ns, n.timeout), ns, nil
	default:
		return nil, ns, fmt.Errorf("orchestrator: unknown transport %v", t)
	}
}

// looksLikeURL checks that a DoH nameserver is a full URL (scheme, host,
// path); dog refuses to guess a "/dns-query" suffix from a bare host.
func looksLikeURL(s string) bool {
	if !strings.HasPrefix(s, "https://") && !strings.HasPrefix(s, "http://") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Host != "" && u.Path != ""
}

