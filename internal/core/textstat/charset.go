// Package textstat provides character-level analysis of candidate strings:
// charset classification, Shannon entropy, and composition statistics
package textstat

import "regexp"

// Charset is the coarse character-composition class of a string
type Charset string

const (
	// CharsetHex is the hexadecimal alphabet [0-9a-fA-F]
	CharsetHex Charset = "hex"
	// CharsetBase64 is the base64 alphabet [A-Za-z0-9+/] with optional = padding
	CharsetBase64 Charset = "base64"
	// CharsetASCII is printable/7-bit ASCII
	CharsetASCII Charset = "ascii"
	// CharsetUnknown is everything else
	CharsetUnknown Charset = "unknown"
)

var (
	reHex    = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	reBase64 = regexp.MustCompile(`^[A-Za-z0-9+/]+=*$`)
	reASCII  = regexp.MustCompile(`^[\x00-\x7F]*$`)
)

// Classify buckets s by alphabet. Order matters: every hex string is also a
// valid base64 string, so hex must win before the base64 test runs
func Classify(s string) Charset {
	switch {
	case reHex.MatchString(s):
		return CharsetHex
	case reBase64.MatchString(s):
		return CharsetBase64
	case reASCII.MatchString(s):
		return CharsetASCII
	default:
		return CharsetUnknown
	}
}
