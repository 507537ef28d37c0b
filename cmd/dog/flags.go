package main

import (
	"fmt"
	"strconv"
	"strings"
)

// stringList accumulates repeatable flag occurrences (-q, -t, -n,
// --class) into an ordered slice, the standard flag.Value pattern for
// "may be given more than once" options.
type stringList struct {
	values []string
}

func (s *stringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(s.values, ",")
}

func (s *stringList) Set(v string) error {
	s.values = append(s.values, v)
	return nil
}

// tweakSet parses repeated -Z occurrences into the protocol tweak bits:
// "aa", "ad", "cd", or "bufsize=N".
type tweakSet struct {
	aa, ad, cd bool
	bufSize    uint16
}

func (t *tweakSet) String() string { return "" }

func (t *tweakSet) Set(v string) error {
	switch {
	case v == "aa":
		t.aa = true
	case v == "ad":
		t.ad = true
	case v == "cd":
		t.cd = true
	case strings.HasPrefix(v, "bufsize="):
		n, err := strconv.ParseUint(strings.TrimPrefix(v, "bufsize="), 10, 16)
		if err != nil {
			return fmt.Errorf("-Z bufsize=: %w", err)
		}
		t.bufSize = uint16(n)
	default:
		return fmt.Errorf("-Z: unrecognized tweak %q (want aa, ad, cd, or bufsize=N)", v)
	}
	return nil
}

// parseTxID parses the --txid flag's hex transaction-id override.
func parseTxID(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("--txid: invalid hex transaction id %q: %w", s, err)
	}
	return uint16(n), nil
}

// valueFlags names every flag that consumes a following argument as its
// value, as opposed to a bare boolean switch. permuteArgs needs this to
// tell "-t A" (a flag and its value) apart from "-T example.net" (a boolean
// switch immediately followed by a positional domain) while splitting the
// two apart. A value flag always takes the next token as its value.
var valueFlags = map[string]bool{
	"q": true, "query": true,
	"t": true, "type": true,
	"n": true, "nameserver": true,
	"class":  true,
	"Z":      true,
	"edns":   true,
	"txid":   true,
	"color":  true,
	"colour": true,
}

// permuteArgs splits argv into flag tokens and bare positional tokens,
// preserving the relative order within each group. The standard flag
// package stops parsing at the first non-flag argument, but dog
// invocations interleave flags and positionals freely (e.g.
// "dog example.net MX @1.1.1.1 -T"); this is the permutation step a
// getopt-style parser does internally.
func permuteArgs(args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(a) < 2 || a[0] != '-' {
			positional = append(positional, a)
			continue
		}
		flagArgs = append(flagArgs, a)
		name := strings.TrimLeft(a, "-")
		if strings.Contains(name, "=") {
			continue // value is inline; nothing more to consume
		}
		if valueFlags[name] && i+1 < len(args) {
			flagArgs = append(flagArgs, args[i+1])
			i++
		}
	}
	return flagArgs, positional
}
