package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// Field validators are pure predicates over document leaf strings.
// Each returns accept/reject plus a human-readable reason on reject;
// callers decide how to aggregate.

// IsDottedQuad accepts a dotted-quad address: four integer segments,
// each in [0,255]
func IsDottedQuad(s string) (bool, string) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false, fmt.Sprintf("%q is not a dotted-quad address", s)
	}
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return false, fmt.Sprintf("%q has non-numeric segment %q", s, p)
		}
		if n < 0 || n > 255 {
			return false, fmt.Sprintf("%q has out-of-range segment %q", s, p)
		}
	}
	return true, ""
}

// IsColonHex accepts a colon-separated hex address of exactly the given
// group count, two hex digits per group (6 groups for a MAC address,
// 8 for a WWN-style identifier)
func IsColonHex(s string, groups int) (bool, string) {
	parts := strings.Split(s, ":")
	if len(parts) != groups {
		return false, fmt.Sprintf("%q must have %d colon-separated groups", s, groups)
	}
	for _, p := range parts {
		if len(p) != 2 || !isHex(p) {
			return false, fmt.Sprintf("%q has invalid hex group %q", s, p)
		}
	}
	return true, ""
}

// IsUUIDSuffix accepts a UUID suffix of the form XXXX-XXXXXXXXXXXX
func IsUUIDSuffix(s string) (bool, string) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 12 {
		return false, fmt.Sprintf("%q is not a UUID suffix (expected XXXX-XXXXXXXXXXXX)", s)
	}
	if !isHex(parts[0]) || !isHex(parts[1]) {
		return false, fmt.Sprintf("%q contains non-hex characters", s)
	}
	return true, ""
}

// IsIntInRange accepts an integer string within [lo,hi]
func IsIntInRange(s string, lo, hi int) (bool, string) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return false, fmt.Sprintf("%q is not an integer", s)
	}
	if n < lo || n > hi {
		return false, fmt.Sprintf("%d is outside [%d,%d]", n, lo, hi)
	}
	return true, ""
}

// IsOneOf accepts a value from a closed set
func IsOneOf(s string, set []string) (bool, string) {
	for _, v := range set {
		if s == v {
			return true, ""
		}
	}
	return false, fmt.Sprintf("%q must be one of %s", s, strings.Join(set, ", "))
}

// IsYesNo accepts the literal flag values yes and no
func IsYesNo(s string) (bool, string) {
	if s == "yes" || s == "no" {
		return true, ""
	}
	return false, fmt.Sprintf("%q must be yes or no", s)
}

// CompareColonHex orders two colon-hex addresses of equal group count.
// Case is ignored; with fixed-width groups the hex string ordering is
// the numeric ordering.
func CompareColonHex(a, b string) int {
	return strings.Compare(strings.ToUpper(a), strings.ToUpper(b))
}

// CompareUUIDSuffix orders two UUID suffixes by their 64-bit value
func CompareUUIDSuffix(a, b string) int {
	av := uuidSuffixValue(a)
	bv := uuidSuffixValue(b)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	}
	return 0
}

func uuidSuffixValue(s string) uint64 {
	v, _ := strconv.ParseUint(strings.ReplaceAll(s, "-", ""), 16, 64)
	return v
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return len(s) > 0
}
