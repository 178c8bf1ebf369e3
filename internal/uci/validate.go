// Package uci implements recognition and validation of Unique Candidate
// Identifiers: the 13-character codes assigned to exam candidates, carrying a
// weighted mod-17 check character in the final position.
package uci

import (
	"regexp"
	"strings"
	"unicode"
)

// Length is the fixed size of a UCI.
const Length = 13

// seriesPos is the one position in the core that may hold a letter instead of
// a digit (the subject/series marker).
const seriesPos = 5

// CheckAlphabet holds the 17 letters a check character may take, ordered so
// that the character for remainder r is CheckAlphabet[r].
const CheckAlphabet = "ABCDEFGHKLMRTVWXY"

// corePattern matches the first 12 characters of a UCI: a five-digit centre
// number, the series marker, then six candidate digits.
var corePattern = regexp.MustCompile(`^\d{5}[A-Z0-9]\d{6}$`)

// weights multiply the numeric value of each core position before summing.
var weights = [12]int{16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5}

// alphaValues maps 'A'+i to its checksum value. A=1 through P=16, then the
// remaining letters wrap back onto 10-16 and 10-12.
var alphaValues = [26]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, // A-P
	10, 11, 12, 13, 14, 15, 16, // Q-W
	10, 11, 12, // X-Z
}

// Validate reports whether candidate is a syntactically and arithmetically
// valid UCI. It is a total function: any malformed input, including strings
// of the wrong length, yields false rather than an error. Only the final
// check character is compared case-insensitively; all other positions must
// already be uppercase letters or digits.
func Validate(candidate string) bool {
	if len(candidate) != Length {
		return false
	}
	core := candidate[:Length-1]
	check := unicode.ToUpper(rune(candidate[Length-1]))
	if !strings.ContainsRune(CheckAlphabet, check) {
		return false
	}
	expected, ok := CheckCharacter(core)
	if !ok {
		return false
	}
	return expected == check
}

// CheckCharacter computes the expected check character for a 12-character UCI
// core. It returns false if the core does not have the required shape.
func CheckCharacter(core string) (rune, bool) {
	if !corePattern.MatchString(core) {
		return 0, false
	}
	sum := 0
	for i := 0; i < len(core); i++ {
		c := core[i]
		var value int
		switch {
		case i == seriesPos && c >= 'A' && c <= 'Z':
			value = alphaValues[c-'A']
		case c >= '0' && c <= '9':
			value = int(c - '0')
		default:
			return 0, false
		}
		sum += value * weights[i]
	}
	return rune(CheckAlphabet[sum%len(CheckAlphabet)]), true
}
