package uci

import "regexp"

// tokenPattern finds word-bounded 13-character runs of uppercase letters and
// digits. The boundaries prevent sub-runs of longer alphanumeric sequences
// from matching.
var tokenPattern = regexp.MustCompile(`\b[A-Z0-9]{13}\b`)

// Scan returns every 13-character alphanumeric token in text, in order of
// first appearance. Tokens are candidates only: they match the lexical shape
// of a UCI but have not been checksum-validated.
func Scan(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// Resolve scans pageText and returns the first candidate that validates as a
// UCI. The boolean is false when the page has no valid UCI; that is an
// expected outcome for noisy OCR text, not an error.
func Resolve(pageText string) (string, bool) {
	for _, candidate := range Scan(pageText) {
		if Validate(candidate) {
			return candidate, true
		}
	}
	return "", false
}
