package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyArg(t *testing.T) {
	cases := []struct {
		arg  string
		want ArgKind
	}{
		{"@1.1.1.1", ArgNameserver},
		{"@8.8.8.8", ArgNameserver},
		{"A", ArgType},
		{"aaaa", ArgType},
		{"MX", ArgType},
		{"IN", ArgClass},
		{"ch", ArgClass},
		{"example.net", ArgDomain},
		{"IN.example.net", ArgDomain}, // not an exact class match
		{"A.example.net", ArgDomain},  // not an exact type match
		{"BADTYPE", ArgType},          // all-uppercase token is a type attempt; lookup rejects it later
		{"TYPE999", ArgType},
		{"badtype", ArgDomain},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ClassifyArg(c.arg), "arg %q", c.arg)
	}
}

func TestClassifyArgPrecedence(t *testing.T) {
	// "@" wins even over a string that would otherwise be a registered
	// class/type name, since rule 1 is evaluated first.
	require.Equal(t, ArgNameserver, ClassifyArg("@A"))
}
