package rules

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/refined"
)

// NonEmpty rejects strings that are empty after trimming whitespace.
func NonEmpty() refined.Validator[string] {
	return func(raw string, _ ...any) (string, error) {
		if strings.TrimSpace(raw) == "" {
			return raw, fail("non_empty", "value must not be empty")
		}
		return raw, nil
	}
}

// MinLen rejects strings shorter than min bytes.
func MinLen(min int) refined.Validator[string] {
	return func(raw string, _ ...any) (string, error) {
		if len(raw) < min {
			return raw, fail("min_len", "length must be at least %d, it is %d", min, len(raw))
		}
		return raw, nil
	}
}

// MaxLen rejects strings longer than max bytes.
func MaxLen(max int) refined.Validator[string] {
	return func(raw string, _ ...any) (string, error) {
		if len(raw) > max {
			return raw, fail("max_len", "length must be at most %d, it is %d", max, len(raw))
		}
		return raw, nil
	}
}

// ExactLen rejects strings whose byte length differs from exact.
func ExactLen(exact int) refined.Validator[string] {
	return func(raw string, _ ...any) (string, error) {
		if len(raw) != exact {
			return raw, fail("exact_len", "length must be %d, it is %d", exact, len(raw))
		}
		return raw, nil
	}
}

// WordCount rejects strings whose whitespace-separated word count differs
// from count.
func WordCount(count int) refined.Validator[string] {
	return func(raw string, _ ...any) (string, error) {
		if got := len(strings.Fields(raw)); got != count {
			return raw, fail("word_count", "must have %d words, it has %d", count, got)
		}
		return raw, nil
	}
}

// Matches rejects strings that do not match the given pattern.
func Matches(re *regexp.Regexp) refined.Validator[string] {
	return func(raw string, _ ...any) (string, error) {
		if !re.MatchString(raw) {
			return raw, fail("matches", "value %q does not match %s", raw, re.String())
		}
		return raw, nil
	}
}

// Prefix rejects strings that do not start with one of the allowed prefixes.
func Prefix(allowed ...string) refined.Validator[string] {
	return func(raw string, _ ...any) (string, error) {
		for _, p := range allowed {
			if strings.HasPrefix(raw, p) {
				return raw, nil
			}
		}
		return raw, fail("prefix", "value %q must start with one of %v", raw, allowed)
	}
}

// Normalized accepts every string, normalizing it to Unicode NFC so
// canonically equivalent inputs wrap to the same accepted value.
func Normalized() refined.Validator[string] {
	return func(raw string, _ ...any) (string, error) {
		return norm.NFC.String(raw), nil
	}
}

// Lowercase accepts every string, lowercasing it.
func Lowercase() refined.Validator[string] {
	return func(raw string, _ ...any) (string, error) {
		return strings.ToLower(raw), nil
	}
}
