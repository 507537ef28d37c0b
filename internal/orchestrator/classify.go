package orchestrator

import "github.com/dnsscience/dog/internal/registry"

// ArgKind is the bucket a bare (non-flag) CLI argument is classified into.
type ArgKind int

const (
	ArgDomain ArgKind = iota
	ArgType
	ArgClass
	ArgNameserver
)

// ClassifyArg buckets one bare command-line argument. Rules are evaluated
// top-to-bottom, first match wins:
//
//  1. Starts with '@' -> nameserver (the '@' is stripped by the caller).
//  2. Exact (case-insensitive) match against the record-type table -> type.
//  3. Exact (case-insensitive) match against the class table -> class.
//  4. All-uppercase, undotted token of letters and digits -> type (an
//     unregistered one such as "BADTYPE" is rejected later by the type
//     lookup).
//  5. Otherwise -> domain.
//
// Explicit flags (-q/-t/-n/--class) bypass this classifier entirely and are
// handled directly by cmd/dog's flag parsing; ClassifyArg only ever sees
// positional arguments. It is exported (rather than folded into cmd/dog)
// so the classification contract is independently testable.
func ClassifyArg(arg string) ArgKind {
	if len(arg) > 0 && arg[0] == '@' {
		return ArgNameserver
	}
	if registry.IsRegisteredType(arg) {
		return ArgType
	}
	if registry.IsRegisteredClass(arg) {
		return ArgClass
	}
	if looksLikeTypeToken(arg) {
		// An all-uppercase undotted token ("BADTYPE", "TYPE999") was meant
		// as a record type, not a domain; let the type lookup reject it
		// before any network I/O rather than querying for "BADTYPE." as a
		// name.
		return ArgType
	}
	return ArgDomain
}

func looksLikeTypeToken(arg string) bool {
	if arg == "" {
		return false
	}
	letters := 0
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch {
		case c >= 'A' && c <= 'Z':
			letters++
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return letters > 0
}
