package message

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dnsscience/dog/internal/name"
	"github.com/dnsscience/dog/internal/wire"
)

func mustName(t *testing.T, s string) name.Name {
	t.Helper()
	n, err := name.Parse(s)
	require.NoError(t, err)
	return n
}

// roundTrip encodes body, decodes it back via the type's registered parser,
// and returns the decoded RDATA for field-level assertions.
func roundTrip(t *testing.T, typeCode uint16, body RDATA) RDATA {
	t.Helper()
	b := wire.NewBuilder(0)
	require.NoError(t, encodeRDATA(b, body))

	c := wire.NewCursor(b.Bytes())
	got, err := decodeRDATA(typeCode, c, c.Len())
	require.NoError(t, err)
	require.Equal(t, c.Len(), c.Offset(), "decoder must consume exactly the encoded bytes")
	return got
}

func TestRDATARoundTrips(t *testing.T) {
	cases := []struct {
		name string
		typ  uint16
		body RDATA
	}{
		{"A", 1, A{Addr: [4]byte{1, 2, 3, 4}}},
		{"AAAA", 28, AAAA{Addr: [16]byte{0x20, 0x01, 0x0d, 0xb8}}},
		{"NS", 2, NS{Target: mustName(t, "ns1.example.net")}},
		{"CNAME", 5, CNAME{Target: mustName(t, "alias.example.net")}},
		{"PTR", 12, PTR{Target: mustName(t, "host.example.net")}},
		{"SOA", 6, SOA{
			MName: mustName(t, "ns1.example.net"), RName: mustName(t, "hostmaster.example.net"),
			Serial: 2024010101, Refresh: 7200, Retry: 3600, Expire: 1209600, Minimum: 300,
		}},
		{"MX", 15, MX{Preference: 10, Exchange: mustName(t, "mail.example.net")}},
		{"TXT", 16, TXT{Strings: [][]byte{[]byte("hello"), {0xff, 0x00, 0x41}}}},
		{"TXT empty", 16, TXT{}},
		{"SRV", 33, SRV{Priority: 1, Weight: 2, Port: 5060, Target: mustName(t, "sip.example.net")}},
		{"CAA", 257, CAA{Flags: 128, Tag: "issue", Value: []byte("letsencrypt.org")}},
		{"HINFO", 13, HINFO{CPU: "x86_64", OS: "linux"}},
		{"NAPTR", 35, NAPTR{Order: 100, Preference: 50, Flags: "S", Services: "SIP+D2U", Regexp: "", Replacement: mustName(t, "_sip._udp.example.net")}},
		{"SSHFP", 44, SSHFP{Algorithm: 1, FPType: 2, Fingerprint: []byte{1, 2, 3, 4, 5, 6, 7, 8}}},
		{"TLSA", 52, TLSA{Usage: 3, Selector: 1, MatchType: 1, Data: []byte{0xaa, 0xbb}}},
		{"OPENPGPKEY", 61, OPENPGPKEY{Data: []byte{1, 2, 3}}},
		{"DNSKEY", 48, DNSKEY{Flags: 257, Protocol: 3, Algorithm: 8, PublicKey: []byte{1, 2, 3, 4}}},
		{"DS", 43, DS{KeyTag: 12345, Algorithm: 8, DigestType: 2, Digest: []byte{0x01, 0x02, 0x03, 0x04}}},
		{"RRSIG", 46, RRSIG{
			TypeCovered: 1, Algorithm: 8, Labels: 2, OriginalTTL: 3600,
			Expiration: 2000000000, Inception: 1900000000, KeyTag: 1,
			SignerName: mustName(t, "example.net"), Signature: []byte{1, 2, 3},
		}},
		{"NSEC", 47, NSEC{NextDomain: mustName(t, "b.example.net"), Types: []uint16{1, 15, 28, 300}}},
		{"NSEC3", 50, NSEC3{HashAlgorithm: 1, Flags: 1, Iterations: 10, Salt: []byte{1, 2}, NextHashed: []byte{3, 4, 5}, Types: []uint16{1, 16}}},
		{"NSEC3PARAM", 51, NSEC3PARAM{HashAlgorithm: 1, Flags: 0, Iterations: 10, Salt: []byte{9, 9}}},
		{"SVCB", 64, SVCB{Priority: 1, Target: mustName(t, "svc.example.net"), Params: []SvcParam{{Key: SvcParamKeyPort, Value: []byte{0x01, 0xBB}}}}},
		{"HTTPS", 65, HTTPS{Priority: 1, Target: name.Root(), Params: []SvcParam{{Key: SvcParamKeyALPN, Value: []byte("h2")}}}},
		{"TSIG", 250, TSIG{Algorithm: mustName(t, "hmac-sha256"), TimeSigned: 1700000000, Fudge: 300, MAC: []byte{1, 2, 3, 4}, OriginalID: 42, Error: 0, OtherData: nil}},
		{"Unknown", 65123, Unknown{TypeCode: 65123, Raw: []byte{0xde, 0xad, 0xbe, 0xef}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := roundTrip(t, tc.typ, tc.body)
			require.Equal(t, tc.body, got)
		})
	}
}

func TestANYIsQueryOnlySentinel(t *testing.T) {
	c := wire.NewCursor([]byte{})
	_, err := decodeRDATA(255, c, 0)
	require.ErrorIs(t, err, ErrQueryOnlyType)
}

func TestTypeBitmapRoundTrip(t *testing.T) {
	types := []uint16{1, 2, 15, 16, 28, 257, 512}
	raw := encodeTypeBitmap(types)
	got, err := decodeTypeBitmap(raw)
	require.NoError(t, err)
	require.Equal(t, types, got)
}
