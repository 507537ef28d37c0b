package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dnsscience/dog/internal/message"
	"github.com/dnsscience/dog/internal/name"
	"github.com/dnsscience/dog/internal/orchestrator"
	"github.com/dnsscience/dog/internal/registry"
)

func mustName(t *testing.T, s string) name.Name {
	t.Helper()
	n, err := name.Parse(s)
	require.NoError(t, err)
	return n
}

func TestFormatTTL(t *testing.T) {
	require.Equal(t, "5400", FormatTTL(5400, true))
	require.Equal(t, "1h30m0s", FormatTTL(5400, false))
	require.Equal(t, "0s", FormatTTL(0, false))
}

func TestFormatBody(t *testing.T) {
	cases := []struct {
		body message.RDATA
		want string
	}{
		{message.A{Addr: [4]byte{93, 184, 216, 34}}, "93.184.216.34"},
		{message.MX{Preference: 10, Exchange: mustName(t, "mail.example.net")}, "10 mail.example.net."},
		{message.TXT{Strings: [][]byte{[]byte("v=spf1 -all")}}, `"v=spf1 -all"`},
		{message.CNAME{Target: mustName(t, "alias.example.net")}, "alias.example.net."},
		{message.SRV{Priority: 1, Weight: 2, Port: 5060, Target: mustName(t, "sip.example.net")}, "1 2 5060 sip.example.net."},
		{message.CAA{Flags: 0, Tag: "issue", Value: []byte("ca.example.net")}, `0 issue "ca.example.net"`},
		{message.Unknown{TypeCode: 999, Raw: []byte{0xde, 0xad}}, `\# 2 dead`},
	}
	for _, c := range cases {
		require.Equal(t, c.want, FormatBody(message.RR{Body: c.body}))
	}
}

func TestFormatSvcParams(t *testing.T) {
	params := []message.SvcParam{
		{Key: message.SvcParamKeyALPN, Value: []byte("h2")},
		{Key: message.SvcParamKeyPort, Value: []byte{0x01, 0xBB}},
		{Key: message.SvcParamKeyIPv4Hint, Value: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{Key: 99, Value: []byte{0xAB}},
	}
	require.Equal(t, "alpn=h2 port=443 ipv4hint=1.2.3.4,5.6.7.8 key99=ab", formatSvcParams(params))
}

func TestShortPrintsFirstAnswerOnly(t *testing.T) {
	view := orchestrator.ResponseView{
		Question: message.Question{Name: mustName(t, "example.net"), Type: registry.TypeA, Class: registry.ClassIN},
		Answer: []message.RR{
			{Body: message.A{Addr: [4]byte{1, 2, 3, 4}}},
			{Body: message.A{Addr: [4]byte{5, 6, 7, 8}}},
		},
	}

	var buf bytes.Buffer
	Short(&buf, []orchestrator.ResponseView{view})
	require.Equal(t, "1.2.3.4\n", buf.String())
}

func TestShortWithNoAnswerPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	Short(&buf, []orchestrator.ResponseView{{}})
	require.Empty(t, buf.String())
}

func TestTableRendersErrorRow(t *testing.T) {
	view := orchestrator.ResponseView{
		Question: message.Question{Name: mustName(t, "example.net"), Type: registry.TypeA, Class: registry.ClassIN},
		Err:      errFake("no route to host"),
	}

	var buf bytes.Buffer
	Table(&buf, []orchestrator.ResponseView{view}, orchestrator.OutputOptions{}, ColorNever)
	require.Contains(t, buf.String(), "error: no route to host")
}

type errFake string

func (e errFake) Error() string { return string(e) }
