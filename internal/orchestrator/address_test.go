package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithDefaultPort(t *testing.T) {
	cases := []struct{ addr, want string }{
		{"1.1.1.1", "1.1.1.1:53"},
		{"1.1.1.1:5353", "1.1.1.1:5353"},
		{"[::1]", "[::1]:53"},
		{"[::1]:53", "[::1]:53"},
		{"::1", "[::1]:53"},
		{"dns.example.net", "dns.example.net:53"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, withDefaultPort(c.addr, "53"), "addr %q", c.addr)
	}
}

func TestSNIName(t *testing.T) {
	require.Equal(t, "", sniName("1.1.1.1"))
	require.Equal(t, "", sniName("1.1.1.1:853"))
	require.Equal(t, "", sniName("[::1]:853"))
	require.Equal(t, "dns.example.net", sniName("dns.example.net"))
	require.Equal(t, "dns.example.net", sniName("dns.example.net:853"))
}

func TestLooksLikeURL(t *testing.T) {
	require.True(t, looksLikeURL("https://dns.example.net/dns-query"))
	require.False(t, looksLikeURL("dns.example.net"))
	require.False(t, looksLikeURL("https://dns.example.net"))
	require.False(t, looksLikeURL("ftp://dns.example.net/dns-query"))
}
