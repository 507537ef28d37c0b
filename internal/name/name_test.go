package name

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dnsscience/dog/internal/wire"
)

func TestParseAndString(t *testing.T) {
	n, err := Parse("example.net")
	require.NoError(t, err)
	require.Equal(t, "example.net.", n.String())

	root, err := Parse(".")
	require.NoError(t, err)
	require.Equal(t, ".", root.String())

	empty, err := Parse("")
	require.NoError(t, err)
	require.Equal(t, ".", empty.String())
}

func TestEscaping(t *testing.T) {
	n := Name{Labels: [][]byte{[]byte("a.b"), []byte("c")}}
	require.Equal(t, `a\.b.c.`, n.String())

	back, err := Parse(`a\.b.c`)
	require.NoError(t, err)
	require.True(t, n.Equal(back))
}

func TestNonPrintableEscaped(t *testing.T) {
	n := Name{Labels: [][]byte{{0x01, 0x7F}}}
	require.Equal(t, `\001\127.`, n.String())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	n, err := Parse("www.example.com")
	require.NoError(t, err)

	b := wire.NewBuilder(0)
	require.NoError(t, Encode(b, n))

	c := wire.NewCursor(b.Bytes())
	got, err := Decode(c)
	require.NoError(t, err)
	require.True(t, n.Equal(got))
	require.Equal(t, 0, c.Remaining())
}

func TestDecodeRoot(t *testing.T) {
	c := wire.NewCursor([]byte{0x00, 0xFF})
	n, err := Decode(c)
	require.NoError(t, err)
	require.Equal(t, ".", n.String())
	require.Equal(t, 1, c.Offset())
}

func TestLabelTooLong(t *testing.T) {
	err := Encode(wire.NewBuilder(0), Name{Labels: [][]byte{make([]byte, 64)}})
	require.ErrorIs(t, err, ErrLabelTooLong)
}

func TestNameTooLong(t *testing.T) {
	var labels [][]byte
	for i := 0; i < 5; i++ {
		labels = append(labels, make([]byte, 62))
	}
	err := Encode(wire.NewBuilder(0), Name{Labels: labels})
	require.ErrorIs(t, err, ErrNameTooLong)
}

func TestDecodeCompressionPointer(t *testing.T) {
	// Message: [0]="example"(7) label, [8]=0 terminator, then a second name
	// at offset 9 that is just a pointer back to offset 0.
	buf := append([]byte{7}, []byte("example")...)
	buf = append(buf, 0x00)
	ptrOffset := len(buf)
	buf = append(buf, 0xC0, byte(0))

	c := wire.NewCursor(buf)
	c.Seek(ptrOffset)
	n, err := Decode(c)
	require.NoError(t, err)
	require.Equal(t, "example.", n.String())
	require.Equal(t, ptrOffset+2, c.Offset(), "cursor must land right after the 2-byte pointer")
}

func TestDecodeRejectsForwardPointer(t *testing.T) {
	// A pointer at offset 0 pointing to offset 2 (>= its own start) must fail.
	buf := []byte{0xC0, 0x02, 0x00}
	_, err := Decode(wire.NewCursor(buf))
	require.ErrorIs(t, err, ErrBadPointer)
}

func TestDecodeRejectsSelfPointer(t *testing.T) {
	buf := []byte{0xC0, 0x00}
	_, err := Decode(wire.NewCursor(buf))
	require.ErrorIs(t, err, ErrBadPointer)
}

func TestDecodeRejectsPointerLoop(t *testing.T) {
	// Control case first: a single pointer back to an earlier name is not a
	// loop and must decode.
	buf := make([]byte, 0, 16)
	buf = append(buf, 0x00)                  // offset 0: root name terminator, a valid jump target
	p1 := len(buf)                           // offset 1
	buf = append(buf, 0xC0, 0x00)             // pointer -> 0
	p2 := len(buf)                           // offset 3
	buf = append(buf, 0xC0, 0x00)             // pointer -> 0
	_ = p1

	c := wire.NewCursor(buf)
	c.Seek(p2)
	_, err := Decode(c)
	require.NoError(t, err, "revisiting offset 0 from a single pointer hop is not itself a loop")

	// A real cycle: offset 0 points to 2 and offset 2 points back to 0. A
	// name starting at offset 4 enters it via a pointer to 2; every target
	// lies before offset 4, so the backward-target rule passes each hop and
	// only the visited-offset check catches the revisit of offset 2.
	loop := []byte{0xC0, 0x02, 0xC0, 0x00, 0xC0, 0x02}
	c = wire.NewCursor(loop)
	c.Seek(4)
	_, err = Decode(c)
	require.ErrorIs(t, err, ErrBadPointer)
}

func TestDecodeRejectsBadLabelType(t *testing.T) {
	buf := []byte{0x40, 0x00}
	_, err := Decode(wire.NewCursor(buf))
	require.ErrorIs(t, err, ErrBadLabelType)
}

func TestDecodeTruncated(t *testing.T) {
	buf := []byte{5, 'a', 'b'}
	_, err := Decode(wire.NewCursor(buf))
	require.ErrorIs(t, err, wire.ErrTruncated)
}

func TestParseRejectsEmptyLabel(t *testing.T) {
	for _, s := range []string{"a..b", ".example.net", "example..net"} {
		_, err := Parse(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestDecodeTooManyLabels(t *testing.T) {
	buf := make([]byte, 0, 260)
	for i := 0; i < 130; i++ {
		buf = append(buf, 1, 'a')
	}
	buf = append(buf, 0)
	_, err := Decode(wire.NewCursor(buf))
	require.Error(t, err)
}

// FuzzDecode asserts the termination and bounds guarantees directly on the
// name decoder: any input yields a name or a typed error within the
// 128-label cap, and a successful decode always leaves the cursor at or
// before the end of the buffer.
func FuzzDecode(f *testing.F) {
	f.Add([]byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 0})
	f.Add([]byte{0})
	f.Add([]byte{0xC0, 0x00})
	f.Add([]byte{0x40, 0x00})
	f.Add([]byte{63})

	f.Fuzz(func(t *testing.T, data []byte) {
		c := wire.NewCursor(data)
		if _, err := Decode(c); err == nil && c.Offset() > c.Len() {
			t.Fatalf("cursor advanced past the buffer: offset %d, len %d", c.Offset(), c.Len())
		}
	})
}
