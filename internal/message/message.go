// Package message implements the full DNS message codec: header, question
// section, the three RR sections, per-type RDATA bodies, and EDNS(0) OPT
// handling.
package message

import (
	"fmt"

	"github.com/dnsscience/dog/internal/name"
	"github.com/dnsscience/dog/internal/registry"
	"github.com/dnsscience/dog/internal/wire"
)

// Question is one entry of a message's question section.
type Question struct {
	Name  name.Name
	Type  uint16
	Class uint16
}

// RR is a fully decoded resource record: the wire envelope plus its parsed
// typed body. Raw holds the exact rdlength bytes that produced Body, so a
// renderer (or a round-trip test) can fall back to it without re-encoding.
type RR struct {
	Name     name.Name
	Type     uint16
	Class    uint16
	TTL      uint32
	RDLength uint16
	Raw      []byte
	Body     RDATA
}

// Message is a fully decoded DNS message. A decoded Message owns all of
// its strings and byte buffers: nothing aliases the input buffer passed
// to Decode, so that buffer may be discarded immediately after the call
// returns.
type Message struct {
	Header     Header
	Question   []Question
	Answer     []RR
	Authority  []RR
	Additional []RR
}

func decodeQuestion(c *wire.Cursor) (Question, error) {
	var q Question
	n, err := name.Decode(c)
	if err != nil {
		return q, fmt.Errorf("question name: %w", err)
	}
	q.Name = n
	if q.Type, err = c.U16(); err != nil {
		return q, fmt.Errorf("question type: %w", err)
	}
	if q.Class, err = c.U16(); err != nil {
		return q, fmt.Errorf("question class: %w", err)
	}
	return q, nil
}

func encodeQuestion(b *wire.Builder, q Question) error {
	if err := name.Encode(b, q.Name); err != nil {
		return err
	}
	if err := b.PutU16(q.Type); err != nil {
		return err
	}
	return b.PutU16(q.Class)
}

func decodeRR(c *wire.Cursor) (RR, error) {
	var rr RR
	n, err := name.Decode(c)
	if err != nil {
		return rr, fmt.Errorf("rr name: %w", err)
	}
	rr.Name = n
	if rr.Type, err = c.U16(); err != nil {
		return rr, fmt.Errorf("rr type: %w", err)
	}
	if rr.Class, err = c.U16(); err != nil {
		return rr, fmt.Errorf("rr class: %w", err)
	}
	if rr.TTL, err = c.U32(); err != nil {
		return rr, fmt.Errorf("rr ttl: %w", err)
	}
	rdlen, err := c.U16()
	if err != nil {
		return rr, fmt.Errorf("rr rdlength: %w", err)
	}
	rr.RDLength = rdlen

	start := c.Offset()
	limit := start + int(rdlen)
	if limit > c.Len() {
		return rr, fmt.Errorf("rr rdata: %w", wire.ErrTruncated)
	}

	body, bodyErr := decodeRDATA(rr.Type, c, limit)
	// Always capture the raw rdata bytes for the renderer/Unknown fallback,
	// regardless of whether the typed parser succeeded; this requires
	// re-reading from start since decodeRDATA already advanced past it.
	raw := make([]byte, rdlen)
	copy(raw, c.Bytes()[start:start+int(rdlen)])
	rr.Raw = raw

	if bodyErr != nil {
		return rr, fmt.Errorf("rr rdata (type %s): %w", registry.TypeName(rr.Type), bodyErr)
	}
	if c.Offset() != limit {
		return rr, fmt.Errorf("rr rdata (type %s): %w", registry.TypeName(rr.Type), ErrWrongRdataLength)
	}
	rr.Body = body
	return rr, nil
}

func encodeRR(b *wire.Builder, rr RR) error {
	if err := name.Encode(b, rr.Name); err != nil {
		return err
	}
	if err := b.PutU16(rr.Type); err != nil {
		return err
	}
	if err := b.PutU16(rr.Class); err != nil {
		return err
	}
	if err := b.PutU32(rr.TTL); err != nil {
		return err
	}
	lenOffset := b.Len()
	if err := b.PutU16(0); err != nil { // placeholder, patched below
		return err
	}
	rdataStart := b.Len()
	if err := encodeRDATA(b, rr.Body); err != nil {
		return err
	}
	rdLen := b.Len() - rdataStart
	return b.PatchU16(lenOffset, uint16(rdLen))
}

func decodeRRSection(c *wire.Cursor, count int) ([]RR, error) {
	// Capacity hint only; count comes from an untrusted header, so never
	// preallocate more than a sane response could hold.
	rrs := make([]RR, 0, min(count, 64))
	for i := 0; i < count; i++ {
		rr, err := decodeRR(c)
		if err != nil {
			return nil, fmt.Errorf("rr %d: %w", i, err)
		}
		rrs = append(rrs, rr)
	}
	return rrs, nil
}

// Decode parses a complete DNS message from buf. It never retains a
// reference to buf: every string and byte slice in the returned Message is
// a fresh copy.
func Decode(buf []byte) (*Message, error) {
	c := wire.NewCursor(buf)
	h, err := decodeHeader(c)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if h.Opcode > 5 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOpcode, h.Opcode)
	}
	if h.Z != 0 {
		return nil, ErrReservedBitsSet
	}

	m := &Message{Header: h}

	m.Question = make([]Question, 0, min(int(h.QDCount), 64))
	for i := 0; i < int(h.QDCount); i++ {
		q, err := decodeQuestion(c)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		m.Question = append(m.Question, q)
	}

	if m.Answer, err = decodeRRSection(c, int(h.ANCount)); err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}
	if m.Authority, err = decodeRRSection(c, int(h.NSCount)); err != nil {
		return nil, fmt.Errorf("authority: %w", err)
	}
	if m.Additional, err = decodeRRSection(c, int(h.ARCount)); err != nil {
		return nil, fmt.Errorf("additional: %w", err)
	}

	return m, nil
}

// QueryParams describes the outbound query a caller wants encoded. RD is
// always set (dog never issues a query without recursion desired);
// AA/AD/CD are applied verbatim from the caller's tweak bits.
type QueryParams struct {
	ID        uint16
	AA        bool
	AD        bool
	CD        bool
	Questions []Question
	OPT       *OPTParams // nil disables EDNS entirely
}

// OPTParams configures the OPT pseudo-record attached to an outbound query.
type OPTParams struct {
	UDPSize uint16
	DO      bool
	Options []EDNSOption
}

// EncodeQuery builds a complete outbound query message: QR=0, Opcode=0
// (QUERY), RD=1, ANCOUNT=NSCOUNT=0, ARCOUNT=1 iff OPT is attached.
func EncodeQuery(p QueryParams) ([]byte, error) {
	h := Header{
		ID:      p.ID,
		QR:      false,
		Opcode:  0,
		AA:      p.AA,
		RD:      true,
		AD:      p.AD,
		CD:      p.CD,
		QDCount: uint16(len(p.Questions)),
	}
	if p.OPT != nil {
		h.ARCount = 1
	}

	b := wire.NewBuilder(64)
	if err := encodeHeader(b, h); err != nil {
		return nil, err
	}
	for _, q := range p.Questions {
		if err := encodeQuestion(b, q); err != nil {
			return nil, err
		}
	}
	if p.OPT != nil {
		optRR := BuildOPTRR(p.OPT.UDPSize, p.OPT.DO, p.OPT.Options)
		if err := encodeRR(b, optRR); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}
