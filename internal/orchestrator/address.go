package orchestrator

import (
	"net"
	"strings"
)

// withDefaultPort appends defaultPort to addr if addr does not already
// carry one. An explicit :PORT in the address string overrides the
// default; IPv6 literals need the bracket form [::1]:53 to disambiguate
// a port from the address's own colons.
func withDefaultPort(addr, defaultPort string) string {
	if addr == "" {
		return addr
	}
	if strings.HasPrefix(addr, "[") {
		if strings.Contains(addr, "]:") {
			return addr // bracketed IPv6 with an explicit port
		}
		return addr + ":" + defaultPort // bracketed IPv6, no port
	}
	if strings.Count(addr, ":") > 1 {
		// A bare IPv6 literal with no brackets can't carry a port, so
		// the whole string is the address and defaultPort is appended,
		// bracketed.
		return "[" + addr + "]:" + defaultPort
	}
	if strings.Contains(addr, ":") {
		return addr // host:port or v4addr:port already given
	}
	return addr + ":" + defaultPort
}

// sniName derives the TLS ServerName to present for a DoT address: the
// hostname form of the address if one was given, otherwise no SNI at
// all. An address that is a bare IP literal (the common case for
// nameservers supplied as "1.1.1.1" or "@1.1.1.1") carries no meaningful
// hostname, so no SNI is sent; anything else is assumed to be a hostname
// and used verbatim (minus brackets and port).
func sniName(addr string) string {
	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	if net.ParseIP(host) != nil {
		return ""
	}
	return host
}
