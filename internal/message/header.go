package message

import "github.com/dnsscience/dog/internal/wire"

// Header is the 12-byte DNS message header (RFC 1035 §4.1.1), laid out as
// individually addressable bit fields rather than a raw flags word.
type Header struct {
	ID      uint16
	QR      bool
	Opcode  uint8 // 4 bits
	AA      bool
	TC      bool
	RD      bool
	RA      bool
	Z       uint8 // the single reserved bit left after AD/CD (0 or 1); always encoded as zero
	AD      bool
	CD      bool
	Rcode   uint8 // low 4 bits of RCODE; EDNS extends this to 8 bits (see opt.go)
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// Note on bit layout: RFC 1035's original header packs Z/AD/CD/RCODE into
// one byte. RFC 2535 repurposed one of the three reserved Z bits as AD,
// and another as CD, leaving a single reserved bit. We track the fully
// resolved field set (legacy Z plus AD/CD) to match modern stub-resolver
// behaviour; encodeHeader zeroes the one truly-reserved bit regardless.

func decodeHeader(c *wire.Cursor) (Header, error) {
	var h Header
	id, err := c.U16()
	if err != nil {
		return h, err
	}
	flags, err := c.U16()
	if err != nil {
		return h, err
	}
	h.ID = id
	h.QR = flags&0x8000 != 0
	h.Opcode = uint8((flags >> 11) & 0x0F)
	h.AA = flags&0x0400 != 0
	h.TC = flags&0x0200 != 0
	h.RD = flags&0x0100 != 0
	h.RA = flags&0x0080 != 0
	h.Z = uint8((flags >> 6) & 0x01) // the one bit RFC 2535 left reserved
	h.AD = flags&0x0020 != 0
	h.CD = flags&0x0010 != 0
	h.Rcode = uint8(flags & 0x0F)

	if h.QDCount, err = c.U16(); err != nil {
		return h, err
	}
	if h.ANCount, err = c.U16(); err != nil {
		return h, err
	}
	if h.NSCount, err = c.U16(); err != nil {
		return h, err
	}
	if h.ARCount, err = c.U16(); err != nil {
		return h, err
	}
	return h, nil
}

func encodeHeader(b *wire.Builder, h Header) error {
	if err := b.PutU16(h.ID); err != nil {
		return err
	}
	var flags uint16
	if h.QR {
		flags |= 0x8000
	}
	flags |= uint16(h.Opcode&0x0F) << 11
	if h.AA {
		flags |= 0x0400
	}
	if h.TC {
		flags |= 0x0200
	}
	if h.RD {
		flags |= 0x0100
	}
	if h.RA {
		flags |= 0x0080
	}
	// the remaining reserved bit (h.Z) is always encoded as zero.
	if h.AD {
		flags |= 0x0020
	}
	if h.CD {
		flags |= 0x0010
	}
	flags |= uint16(h.Rcode & 0x0F)
	if err := b.PutU16(flags); err != nil {
		return err
	}
	if err := b.PutU16(h.QDCount); err != nil {
		return err
	}
	if err := b.PutU16(h.ANCount); err != nil {
		return err
	}
	if err := b.PutU16(h.NSCount); err != nil {
		return err
	}
	return b.PutU16(h.ARCount)
}
