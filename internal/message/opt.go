package message

import (
	"github.com/dnsscience/dog/internal/name"
	"github.com/dnsscience/dog/internal/registry"
	"github.com/dnsscience/dog/internal/wire"
)

// EDNS option codes (RFC 6891 §6.1.2, RFC 7873 §4).
const (
	EDNSOptionCookie = 10
)

// EDNSOption is one (code, length-prefixed value) pair inside an OPT
// pseudo-record's RDATA.
type EDNSOption struct {
	Code uint16
	Data []byte
}

// OPTBody is the RDATA of an EDNS(0) OPT pseudo-record (RFC 6891 §6.1).
// Unlike every other registered type it is never a "real" RR: its owner
// name is always the root, and its class/ttl fields are repurposed to
// carry the UDP payload size and the extended-RCODE/version/flags word
// rather than a DNS class and TTL. decodeRR still reads those two fields
// generically; ExtractEDNS below is what gives them their EDNS meaning.
type OPTBody struct {
	Options []EDNSOption
}

func (OPTBody) isRDATA() {}

func decodeEDNSOptions(c *wire.Cursor, limit int) ([]EDNSOption, error) {
	var opts []EDNSOption
	for c.Offset() < limit {
		code, err := c.U16Within(limit)
		if err != nil {
			return nil, err
		}
		length, err := c.U16Within(limit)
		if err != nil {
			return nil, err
		}
		data, err := c.ReadNWithin(int(length), limit)
		if err != nil {
			return nil, err
		}
		opts = append(opts, EDNSOption{Code: code, Data: data})
	}
	return opts, nil
}

func encodeEDNSOptions(b *wire.Builder, opts []EDNSOption) error {
	for _, o := range opts {
		if err := b.PutU16(o.Code); err != nil {
			return err
		}
		if err := b.PutU16(uint16(len(o.Data))); err != nil {
			return err
		}
		if err := b.PutBytes(o.Data); err != nil {
			return err
		}
	}
	return nil
}

// EDNSInfo is the decoded, human-meaningful view of an OPT record plus the
// header-level RCODE extension it carries, surfaced to callers only when
// `--edns show` is requested.
type EDNSInfo struct {
	UDPSize      uint16
	ExtendedRcode uint8 // combines with Header.Rcode's low 4 bits to form a 12-bit RCODE
	Version      uint8
	DO           bool // DNSSEC OK bit
	Options      []EDNSOption
}

// FullRcode combines an EDNSInfo's extended bits with the header's low 4
// RCODE bits into the full 12-bit response code (RFC 6891 §6.1.3).
func (e *EDNSInfo) FullRcode(headerRcodeLow4 uint8) uint16 {
	return uint16(e.ExtendedRcode)<<4 | uint16(headerRcodeLow4)
}

// ExtractEDNS scans a message's Additional section for an OPT record and
// returns its decoded fields, or (nil, false) if none is present.
func ExtractEDNS(m *Message) (*EDNSInfo, bool) {
	for _, rr := range m.Additional {
		opt, ok := rr.Body.(OPTBody)
		if !ok {
			continue
		}
		info := &EDNSInfo{
			UDPSize:       rr.Class,
			ExtendedRcode: uint8(rr.TTL >> 24),
			Version:       uint8(rr.TTL >> 16),
			DO:            rr.TTL&0x8000 != 0,
			Options:       opt.Options,
		}
		return info, true
	}
	return nil, false
}

// BuildOPTRR constructs the OPT additional record for an outbound query.
func BuildOPTRR(udpSize uint16, do bool, opts []EDNSOption) RR {
	var ttl uint32
	if do {
		ttl |= 0x8000
	}
	return RR{
		Name:  name.Root(),
		Type:  registry.TypeOPT,
		Class: udpSize,
		TTL:   ttl,
		Body:  OPTBody{Options: opts},
	}
}

// CookieOption builds an EDNS COOKIE option (RFC 7873 §4) carrying an
// 8-byte client cookie and, when resending after a BADCOOKIE response, the
// server cookie that was previously returned.
func CookieOption(clientCookie, serverCookie []byte) EDNSOption {
	data := make([]byte, 0, 8+len(serverCookie))
	data = append(data, clientCookie...)
	data = append(data, serverCookie...)
	return EDNSOption{Code: EDNSOptionCookie, Data: data}
}
