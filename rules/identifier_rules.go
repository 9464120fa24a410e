package rules

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/refined"
)

// UUIDString rejects strings that are not valid UUIDs and normalizes accepted
// values to the canonical lowercase form.
func UUIDString() refined.Validator[string] {
	return func(raw string, _ ...any) (string, error) {
		id, err := uuid.Parse(raw)
		if err != nil {
			return raw, fail("uuid", "value %q is not a valid UUID: %v", raw, err)
		}
		return id.String(), nil
	}
}

// Checksum alphabets for the three NRIC prefix groups.
var (
	nricAlphaST = [11]byte{'J', 'Z', 'I', 'H', 'G', 'F', 'E', 'D', 'C', 'B', 'A'}
	nricAlphaGF = [11]byte{'X', 'W', 'U', 'T', 'R', 'Q', 'P', 'N', 'M', 'L', 'K'}
	nricAlphaM  = [11]byte{'K', 'L', 'J', 'N', 'P', 'Q', 'R', 'T', 'U', 'W', 'X'}

	nricWeights = [7]int{2, 7, 6, 5, 4, 3, 2}
)

// NRIC validates a 9-character Singapore identity code: a prefix letter from
// {S, T, G, F, M}, seven digits and a checksum letter derived from the
// weighted digit sum.
func NRIC() refined.Validator[string] {
	return func(raw string, _ ...any) (string, error) {
		if len(raw) != 9 {
			return raw, fail("nric", "length must be 9, it is %d", len(raw))
		}
		prefix := raw[0]
		if !strings.ContainsRune("STGFM", rune(prefix)) {
			return raw, fail("nric", "prefix must be one of S, T, G, F, M, it is %q", string(prefix))
		}

		sum := 0
		for i, w := range nricWeights {
			d := raw[1+i]
			if d < '0' || d > '9' {
				return raw, fail("nric", "position %d must be a digit, it is %q", 1+i, string(d))
			}
			sum += int(d-'0') * w
		}

		offset := 0
		switch prefix {
		case 'T', 'G':
			offset = 4
		case 'M':
			offset = 3
		}
		checksum := (offset + sum) % 11

		var want byte
		switch prefix {
		case 'S', 'T':
			want = nricAlphaST[checksum]
		case 'M':
			want = nricAlphaM[10-checksum]
		default:
			want = nricAlphaGF[checksum]
		}
		if raw[8] != want {
			return raw, fail("nric", "checksum letter is %q, want %q", string(raw[8]), string(want))
		}
		return raw, nil
	}
}
