// Package registry is the static, bidirectional lookup table mapping DNS
// resource-record type codes and class codes to their symbolic names.
// Lookup is case-insensitive on input, canonical uppercase on
// output; unknown numeric codes are preserved and rendered numerically
// rather than rejected, so the decoder never has to refuse a well-formed
// but unfamiliar record.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownRecordType is returned when a CLI-supplied symbolic type name
// does not appear in the registry.
var ErrUnknownRecordType = errors.New("registry: unknown record type")

// ErrUnknownClass is returned when a CLI-supplied symbolic class name does
// not appear in the registry.
var ErrUnknownClass = errors.New("registry: unknown class")

// Type codes, RFC 1035 §3.2.2 plus later extensions.
const (
	TypeA          = 1
	TypeNS         = 2
	TypeCNAME      = 5
	TypeSOA        = 6
	TypePTR        = 12
	TypeHINFO      = 13
	TypeMX         = 15
	TypeTXT        = 16
	TypeAAAA       = 28
	TypeSRV        = 33
	TypeNAPTR      = 35
	TypeOPT        = 41
	TypeDS         = 43
	TypeSSHFP      = 44
	TypeRRSIG      = 46
	TypeNSEC       = 47
	TypeDNSKEY     = 48
	TypeNSEC3      = 50
	TypeNSEC3PARAM = 51
	TypeTLSA       = 52
	TypeSVCB       = 64
	TypeHTTPS      = 65
	TypeSPF        = 99
	TypeANAME      = 65280 // no IANA code point; placeholder used by non-standard resolvers
	TypeAXFR       = 252
	TypeANY        = 255 // query-only sentinel, never a valid RR body
	TypeCAA        = 257
	TypeTSIG       = 250
	TypeIXFR       = 251
	TypeOPENPGPKEY = 61

	ClassIN = 1
	ClassCH = 3
	ClassHS = 4
)

var typeNames = map[uint16]string{
	TypeA:          "A",
	TypeNS:         "NS",
	TypeCNAME:      "CNAME",
	TypeSOA:        "SOA",
	TypePTR:        "PTR",
	TypeHINFO:      "HINFO",
	TypeMX:         "MX",
	TypeTXT:        "TXT",
	TypeAAAA:       "AAAA",
	TypeSRV:        "SRV",
	TypeNAPTR:      "NAPTR",
	TypeOPT:        "OPT",
	TypeDS:         "DS",
	TypeSSHFP:      "SSHFP",
	TypeRRSIG:      "RRSIG",
	TypeNSEC:       "NSEC",
	TypeDNSKEY:     "DNSKEY",
	TypeNSEC3:      "NSEC3",
	TypeNSEC3PARAM: "NSEC3PARAM",
	TypeTLSA:       "TLSA",
	TypeSVCB:       "SVCB",
	TypeHTTPS:      "HTTPS",
	TypeSPF:        "SPF",
	TypeOPENPGPKEY: "OPENPGPKEY",
	TypeAXFR:       "AXFR",
	TypeANY:        "ANY",
	TypeCAA:        "CAA",
	TypeTSIG:       "TSIG",
	TypeIXFR:       "IXFR",
}

var classNames = map[uint16]string{
	ClassIN: "IN",
	ClassCH: "CH",
	ClassHS: "HS",
}

var typeByName map[string]uint16
var classByName map[string]uint16

func init() {
	typeByName = make(map[string]uint16, len(typeNames))
	for code, sym := range typeNames {
		typeByName[sym] = code
	}
	// ANAME has no IANA code point; register it under a private-use code
	// so `dog ANAME example.net` resolves without clobbering another
	// symbol.
	typeByName["ANAME"] = TypeANAME
	typeNames[TypeANAME] = "ANAME"

	classByName = make(map[string]uint16, len(classNames))
	for code, sym := range classNames {
		classByName[sym] = code
	}
}

// TypeName returns the canonical uppercase symbolic name for a type code,
// or "TYPE<n>" for codes outside the static table.
func TypeName(code uint16) string {
	if sym, ok := typeNames[code]; ok {
		return sym
	}
	return fmt.Sprintf("TYPE%d", code)
}

// ClassName returns the canonical uppercase symbolic name for a class code,
// or "CLASS<n>" for codes outside the static table.
func ClassName(code uint16) string {
	if sym, ok := classNames[code]; ok {
		return sym
	}
	return fmt.Sprintf("CLASS%d", code)
}

// LookupType resolves a case-insensitive symbolic type name (or a
// "TYPE<n>" form) to its code. A bare number such as "28" is not accepted.
// Returns ErrUnknownRecordType if the symbol is not registered and is not a
// valid TYPE<n> form.
func LookupType(sym string) (uint16, error) {
	upper := strings.ToUpper(sym)
	if code, ok := typeByName[upper]; ok {
		return code, nil
	}
	if strings.HasPrefix(upper, "TYPE") {
		if n, err := strconv.ParseUint(upper[4:], 10, 16); err == nil {
			return uint16(n), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRecordType, sym)
}

// LookupClass resolves a case-insensitive symbolic class name to its code.
func LookupClass(sym string) (uint16, error) {
	upper := strings.ToUpper(sym)
	if code, ok := classByName[upper]; ok {
		return code, nil
	}
	if strings.HasPrefix(upper, "CLASS") {
		if n, err := strconv.ParseUint(upper[5:], 10, 16); err == nil {
			return uint16(n), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, sym)
}

// IsRegisteredType reports whether sym is an exact (case-insensitive) match
// against a registered symbolic type name, used by the CLI argument
// classifier. "TYPE65280" forms and bare numbers are not a match here.
func IsRegisteredType(sym string) bool {
	_, ok := typeByName[strings.ToUpper(sym)]
	return ok
}

// IsRegisteredClass reports whether sym is an exact (case-insensitive)
// match against a registered symbolic class name.
func IsRegisteredClass(sym string) bool {
	_, ok := classByName[strings.ToUpper(sym)]
	return ok
}

// Entry is one row of the `--list` table.
type Entry struct {
	Code uint16
	Name string
}

// ListTypes returns every registered type in ascending code order, for the
// `--list` command.
func ListTypes() []Entry {
	out := make([]Entry, 0, len(typeNames))
	for code, sym := range typeNames {
		out = append(out, Entry{Code: code, Name: sym})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
