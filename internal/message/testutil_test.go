package message

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dnsscience/dog/internal/name"
	"github.com/dnsscience/dog/internal/registry"
	"github.com/dnsscience/dog/internal/wire"
)

// responseBuilder hand-assembles a wire-format response independently of
// the package's own Encode path, so message_test.go exercises Decode
// against bytes it didn't produce itself.
type responseBuilder struct {
	qname   string
	qtype   uint16
	answers []func(b *wire.Builder) error
}

func newResponseBuilder(t *testing.T, qname string, qtype uint16) *responseBuilder {
	t.Helper()
	return &responseBuilder{qname: qname, qtype: qtype}
}

func (rb *responseBuilder) addA(owner string, ttl uint32, addr [4]byte) {
	rb.addRaw(owner, registry.TypeA, ttl, addr[:])
}

func (rb *responseBuilder) addRaw(owner string, typ uint16, ttl uint32, rdata []byte) {
	rb.answers = append(rb.answers, func(b *wire.Builder) error {
		n, err := name.Parse(owner)
		if err != nil {
			return err
		}
		if err := name.Encode(b, n); err != nil {
			return err
		}
		if err := b.PutU16(typ); err != nil {
			return err
		}
		if err := b.PutU16(registry.ClassIN); err != nil {
			return err
		}
		if err := b.PutU32(ttl); err != nil {
			return err
		}
		if err := b.PutU16(uint16(len(rdata))); err != nil {
			return err
		}
		return b.PutBytes(rdata)
	})
}

func (rb *responseBuilder) bytes(t *testing.T) []byte {
	t.Helper()
	b := wire.NewBuilder(64)
	require.NoError(t, b.PutU16(0xABCD))  // ID
	require.NoError(t, b.PutU16(0x8180))  // QR=1, RD=1, RA=1
	require.NoError(t, b.PutU16(1))       // QDCOUNT
	require.NoError(t, b.PutU16(uint16(len(rb.answers))))
	require.NoError(t, b.PutU16(0))
	require.NoError(t, b.PutU16(0))

	n, err := name.Parse(rb.qname)
	require.NoError(t, err)
	require.NoError(t, name.Encode(b, n))
	require.NoError(t, b.PutU16(rb.qtype))
	require.NoError(t, b.PutU16(registry.ClassIN))

	for _, f := range rb.answers {
		require.NoError(t, f(b))
	}
	return b.Bytes()
}
