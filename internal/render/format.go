package render

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/dnsscience/dog/internal/message"
	"github.com/dnsscience/dog/internal/registry"
)

// FormatTTL renders a TTL: plain integer seconds under --seconds, or a
// Go-style duration ("1h30m0s") by default. TTLs are treated as unsigned
// seconds even though the wire field is nominally signed; values are
// never negative here since TTL is already uint32.
func FormatTTL(ttl uint32, seconds bool) string {
	if seconds {
		return strconv.FormatUint(uint64(ttl), 10)
	}
	return (time.Duration(ttl) * time.Second).String()
}

// FormatBody renders one RR's type-specific rdata as a single presentation
// line, independent of the owning RR's name/class/ttl. Used by both the
// table and --short renderers so the two forms never drift apart on how a
// given record type is displayed.
func FormatBody(rr message.RR) string {
	switch b := rr.Body.(type) {
	case message.A:
		return net.IP(b.Addr[:]).String()
	case message.AAAA:
		return net.IP(b.Addr[:]).String()
	case message.NS:
		return b.Target.String()
	case message.CNAME:
		return b.Target.String()
	case message.PTR:
		return b.Target.String()
	case message.ANAME:
		return b.Target.String()
	case message.SOA:
		return fmt.Sprintf("%s %s %d %d %d %d %d",
			b.MName, b.RName, b.Serial, b.Refresh, b.Retry, b.Expire, b.Minimum)
	case message.MX:
		return fmt.Sprintf("%d %s", b.Preference, b.Exchange)
	case message.TXT:
		return formatTXT(b.Strings)
	case message.SRV:
		return fmt.Sprintf("%d %d %d %s", b.Priority, b.Weight, b.Port, b.Target)
	case message.CAA:
		return fmt.Sprintf("%d %s %q", b.Flags, b.Tag, string(b.Value))
	case message.HINFO:
		return fmt.Sprintf("%q %q", b.CPU, b.OS)
	case message.NAPTR:
		return fmt.Sprintf("%d %d %q %q %q %s", b.Order, b.Preference, b.Flags, b.Services, b.Regexp, b.Replacement)
	case message.SSHFP:
		return fmt.Sprintf("%d %d %x", b.Algorithm, b.FPType, b.Fingerprint)
	case message.TLSA:
		return fmt.Sprintf("%d %d %d %x", b.Usage, b.Selector, b.MatchType, b.Data)
	case message.OPENPGPKEY:
		return fmt.Sprintf("%x", b.Data)
	case message.DNSKEY:
		return fmt.Sprintf("%d %d %d %x", b.Flags, b.Protocol, b.Algorithm, b.PublicKey)
	case message.DS:
		return fmt.Sprintf("%d %d %d %x", b.KeyTag, b.Algorithm, b.DigestType, b.Digest)
	case message.RRSIG:
		return fmt.Sprintf("%s %d %d %d %d %d %d %s %x",
			registry.TypeName(b.TypeCovered), b.Algorithm, b.Labels, b.OriginalTTL,
			b.Expiration, b.Inception, b.KeyTag, b.SignerName, b.Signature)
	case message.NSEC:
		return fmt.Sprintf("%s %s", b.NextDomain, formatTypeBitmap(b.Types))
	case message.NSEC3:
		return fmt.Sprintf("%d %d %d %x %x %s",
			b.HashAlgorithm, b.Flags, b.Iterations, b.Salt, b.NextHashed, formatTypeBitmap(b.Types))
	case message.NSEC3PARAM:
		return fmt.Sprintf("%d %d %d %x", b.HashAlgorithm, b.Flags, b.Iterations, b.Salt)
	case message.SVCB:
		return fmt.Sprintf("%d %s %s", b.Priority, b.Target, formatSvcParams(b.Params))
	case message.HTTPS:
		return fmt.Sprintf("%d %s %s", b.Priority, b.Target, formatSvcParams(b.Params))
	case message.TSIG:
		return fmt.Sprintf("%s %d %d %d", b.Algorithm, b.TimeSigned, b.Fudge, b.OriginalID)
	case message.Unknown:
		return fmt.Sprintf("\\# %d %x", len(b.Raw), b.Raw)
	default:
		return fmt.Sprintf("%x", rr.Raw)
	}
}

func formatTXT(strs [][]byte) string {
	parts := make([]string, len(strs))
	for i, s := range strs {
		parts[i] = strconv.Quote(string(s))
	}
	return strings.Join(parts, " ")
}

func formatTypeBitmap(types []uint16) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = registry.TypeName(t)
	}
	return strings.Join(parts, " ")
}

func formatSvcParams(params []message.SvcParam) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = formatSvcParam(p)
	}
	return strings.Join(parts, " ")
}

func formatSvcParam(p message.SvcParam) string {
	switch p.Key {
	case message.SvcParamKeyALPN:
		return "alpn=" + string(p.Value)
	case message.SvcParamKeyNoDefaultALPN:
		return "no-default-alpn"
	case message.SvcParamKeyPort:
		if len(p.Value) == 2 {
			return fmt.Sprintf("port=%d", uint16(p.Value[0])<<8|uint16(p.Value[1]))
		}
	case message.SvcParamKeyIPv4Hint:
		return "ipv4hint=" + formatAddrHint(p.Value, 4)
	case message.SvcParamKeyIPv6Hint:
		return "ipv6hint=" + formatAddrHint(p.Value, 16)
	case message.SvcParamKeyECH:
		return fmt.Sprintf("ech=%x", p.Value)
	}
	return fmt.Sprintf("key%d=%x", p.Key, p.Value)
}

func formatAddrHint(data []byte, width int) string {
	var ips []string
	for i := 0; i+width <= len(data); i += width {
		ips = append(ips, net.IP(data[i:i+width]).String())
	}
	return strings.Join(ips, ",")
}
