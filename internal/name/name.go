// Package name implements the DNS domain-name wire codec: encoding (always
// uncompressed), decoding (with compression-pointer resolution and loop
// detection), and presentation-format rendering/parsing.
package name

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dnsscience/dog/internal/wire"
)

var (
	// ErrLabelTooLong is returned when a single label exceeds 63 bytes.
	ErrLabelTooLong = errors.New("name: label exceeds 63 bytes")
	// ErrNameTooLong is returned when the total encoded name exceeds 255 bytes.
	ErrNameTooLong = errors.New("name: exceeds 255 bytes")
	// ErrBadLabelType is returned for a label-length byte whose top two bits
	// are neither 00 (literal label) nor 11 (compression pointer).
	ErrBadLabelType = errors.New("name: unrecognized label type")
	// ErrBadPointer is returned when a compression pointer targets its own
	// name, a forward offset, or an offset already visited in this decode.
	ErrBadPointer = errors.New("name: invalid compression pointer")
	// ErrTooManyLabels is returned when decoding a single name would exceed
	// the 128-label safety cap.
	ErrTooManyLabels = errors.New("name: exceeds 128 labels")
)

const (
	maxLabelLen  = 63
	maxNameLen   = 255
	maxLabelCap  = 128
	pointerFlag  = 0xC0
	pointerMask  = 0x3FFF
)

// Name is a decoded domain name: an ordered sequence of raw label bytes,
// case preserved, arbitrary bytes allowed. Labels pass through
// byte-for-byte with no IDN/Punycode conversion. The root name has zero
// labels.
type Name struct {
	Labels [][]byte
}

// Root returns the zero-label root name, rendered as ".".
func Root() Name { return Name{} }

// Equal reports whether two names have identical labels (case-sensitive;
// DNS comparison semantics such as case-insensitive matching are a
// collaborator concern, not the codec's).
func (n Name) Equal(o Name) bool {
	if len(n.Labels) != len(o.Labels) {
		return false
	}
	for i := range n.Labels {
		if string(n.Labels[i]) != string(o.Labels[i]) {
			return false
		}
	}
	return true
}

// String renders the name in presentation format: labels joined by '.',
// trailing '.', with '.' and '\' escaped and non-printable-ASCII bytes
// rendered as "\DDD" (three-digit decimal).
func (n Name) String() string {
	if len(n.Labels) == 0 {
		return "."
	}
	var sb strings.Builder
	for _, label := range n.Labels {
		writeEscapedLabel(&sb, label)
		sb.WriteByte('.')
	}
	return sb.String()
}

func writeEscapedLabel(sb *strings.Builder, label []byte) {
	for _, b := range label {
		switch {
		case b == '.' || b == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(b)
		case b < 0x20 || b >= 0x7F:
			sb.WriteByte('\\')
			sb.WriteString(fmt.Sprintf("%03d", b))
		default:
			sb.WriteByte(b)
		}
	}
}

// Parse turns a presentation-format domain (as typed on the command line)
// into a Name, reversing the escaping rules in String. A trailing '.' is
// optional and stripped; "." or "" denotes the root name.
func Parse(s string) (Name, error) {
	if s == "." || s == "" {
		return Root(), nil
	}
	s = strings.TrimSuffix(s, ".")

	var labels [][]byte
	var cur []byte
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\':
			if i+1 >= len(s) {
				return Name{}, fmt.Errorf("name: dangling escape at end of %q", s)
			}
			next := s[i+1]
			if next >= '0' && next <= '9' {
				if i+4 > len(s) {
					return Name{}, fmt.Errorf("name: truncated \\DDD escape in %q", s)
				}
				v, err := strconv.Atoi(s[i+1 : i+4])
				if err != nil || v > 255 {
					return Name{}, fmt.Errorf("name: bad \\DDD escape in %q", s)
				}
				cur = append(cur, byte(v))
				i += 4
			} else {
				cur = append(cur, next)
				i += 2
			}
		case c == '.':
			if len(cur) == 0 {
				return Name{}, fmt.Errorf("name: empty label in %q", s)
			}
			if len(cur) > maxLabelLen {
				return Name{}, ErrLabelTooLong
			}
			labels = append(labels, cur)
			cur = nil
			i++
		default:
			cur = append(cur, c)
			i++
		}
	}
	if len(cur) == 0 {
		return Name{}, fmt.Errorf("name: empty label in %q", s)
	}
	labels = append(labels, cur)

	n := Name{Labels: labels}
	if err := n.validate(); err != nil {
		return Name{}, err
	}
	return n, nil
}

func (n Name) validate() error {
	total := 1 // terminating zero label
	for _, l := range n.Labels {
		if len(l) > maxLabelLen {
			return ErrLabelTooLong
		}
		total += 1 + len(l)
	}
	if total > maxNameLen {
		return ErrNameTooLong
	}
	return nil
}

// Encode writes n to b as a sequence of length-prefixed labels terminated
// by a zero-length label. This implementation never emits compression
// pointers: it costs a few bytes per query and is never a correctness
// concern for an outbound query message.
func Encode(b *wire.Builder, n Name) error {
	if err := n.validate(); err != nil {
		return err
	}
	for _, label := range n.Labels {
		if err := b.PutU8(uint8(len(label))); err != nil {
			return err
		}
		if err := b.PutBytes(label); err != nil {
			return err
		}
	}
	return b.PutU8(0)
}

// Decode reads a name starting at the cursor's current position, following
// at most one chain of compression pointers. A pointer may only target an
// offset strictly less than the offset where this name's decode began, and
// the same target offset may not be visited twice (loop detection); at
// most 128 labels/pointer-hops are read for any one name.
// After a pointer is followed, labels are read at its target until a zero
// label ends the name (a further pointer found there is followed under the
// same rules); the outer cursor is
// left positioned immediately after the 2-byte pointer that was followed
// (or immediately after the terminating zero label, if no pointer was
// followed).
func Decode(c *wire.Cursor) (Name, error) {
	buf := c.Bytes()
	origOffset := c.Offset()
	offset := origOffset
	jumped := false
	visited := map[int]bool{}

	var labels [][]byte
	total := 0
	hops := 0

	for {
		hops++
		if hops > maxLabelCap {
			return Name{}, ErrTooManyLabels
		}
		if offset >= len(buf) {
			return Name{}, wire.ErrTruncated
		}
		lead := buf[offset]

		switch {
		case lead == 0:
			if !jumped {
				c.Seek(offset + 1)
			}
			return Name{Labels: labels}, nil

		case lead&pointerFlag == pointerFlag:
			if offset+2 > len(buf) {
				return Name{}, wire.ErrTruncated
			}
			ptr := (int(lead&^pointerFlag) << 8) | int(buf[offset+1])
			target := ptr & pointerMask
			if target >= origOffset {
				return Name{}, ErrBadPointer
			}
			if visited[target] {
				return Name{}, ErrBadPointer
			}
			visited[target] = true
			if !jumped {
				c.Seek(offset + 2)
				jumped = true
			}
			offset = target

		case lead&pointerFlag == 0:
			length := int(lead)
			if length > maxLabelLen {
				return Name{}, ErrLabelTooLong
			}
			offset++
			if offset+length > len(buf) {
				return Name{}, wire.ErrTruncated
			}
			label := make([]byte, length)
			copy(label, buf[offset:offset+length])
			labels = append(labels, label)
			offset += length

			total += 1 + length
			if total+1 > maxNameLen {
				return Name{}, ErrNameTooLong
			}

		default:
			return Name{}, ErrBadLabelType
		}
	}
}
