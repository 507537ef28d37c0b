package render

import (
	"fmt"
	"io"
	"os"

	"github.com/dnsscience/dog/internal/message"
	"github.com/dnsscience/dog/internal/orchestrator"
	"github.com/dnsscience/dog/internal/registry"
)

// Table writes the default human-readable rendering of views to w: one
// block per query, a header line naming the question/server/RCODE, then
// one column-aligned line per RR in the answer/authority/additional
// sections. Errors are rendered as a single line instead of a record list.
func Table(w io.Writer, views []orchestrator.ResponseView, opts orchestrator.OutputOptions, mode ColorMode) {
	enabled := Enabled(mode, os.Stdout)
	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(w)
		}
		tableBlock(w, v, opts, enabled)
	}
}

func tableBlock(w io.Writer, v orchestrator.ResponseView, opts orchestrator.OutputOptions, color bool) {
	q := v.Question
	header := fmt.Sprintf("%s %s %s", q.Name.String(), registry.ClassName(q.Class), registry.TypeName(q.Type))
	fmt.Fprintln(w, wrap(color, ansiCyan, header))

	if v.Err != nil {
		fmt.Fprintln(w, wrap(color, ansiRed, "error: "+v.Err.Error()))
		return
	}

	fmt.Fprintf(w, "Server: %s (%s)\n", v.Server, v.Protocol)
	rcodeLine := fmt.Sprintf("Status: %s", rcodeName(v.Rcode))
	if v.Rcode == 0 {
		fmt.Fprintln(w, wrap(color, ansiGreen, rcodeLine))
	} else {
		fmt.Fprintln(w, wrap(color, ansiRed, rcodeLine))
	}
	if v.Warning != "" {
		fmt.Fprintln(w, wrap(color, ansiGray, "Warning: "+v.Warning))
	}
	if opts.Verbose && v.Elapsed > 0 {
		fmt.Fprintf(w, "Time: %s\n", v.Elapsed)
	}

	printSection(w, "ANSWER", v.Answer, opts, color)
	printSection(w, "AUTHORITY", v.Authority, opts, color)
	printSection(w, "ADDITIONAL", v.Additional, opts, color)

	if opts.Verbose && v.EDNS != nil {
		fmt.Fprintf(w, "EDNS: version %d, flags %s, udp %d\n", v.EDNS.Version, ednsFlags(v.EDNS), v.EDNS.UDPSize)
	}
	if opts.Verbose && v.Cookie != nil {
		fmt.Fprintf(w, "Cookie: client %x, server %x\n", v.Cookie.Client, v.Cookie.Server)
	}
}

func printSection(w io.Writer, title string, rrs []message.RR, opts orchestrator.OutputOptions, color bool) {
	if len(rrs) == 0 {
		return
	}
	fmt.Fprintln(w, wrap(color, ansiGray, title))
	for _, rr := range rrs {
		fmt.Fprintf(w, "%-28s %-8s %-6s %-8s %s\n",
			rr.Name.String(),
			FormatTTL(rr.TTL, opts.Seconds),
			registry.ClassName(rr.Class),
			registry.TypeName(rr.Type),
			FormatBody(rr))
	}
}

func ednsFlags(e *message.EDNSInfo) string {
	if e.DO {
		return "do"
	}
	return "none"
}

var rcodeNames = map[uint16]string{
	0: "NOERROR", 1: "FORMERR", 2: "SERVFAIL", 3: "NXDOMAIN",
	4: "NOTIMP", 5: "REFUSED", 6: "YXDOMAIN", 7: "YXRRSET",
	8: "NXRRSET", 9: "NOTAUTH", 10: "NOTZONE", 16: "BADVERS",
	23: "BADCOOKIE",
}

func rcodeName(code uint16) string {
	if n, ok := rcodeNames[code]; ok {
		return n
	}
	return fmt.Sprintf("RCODE%d", code)
}
