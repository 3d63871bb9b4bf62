// Package decode implements the reversible/heuristic decoding probes that run
// against every analyzed input. Each probe is total: it reports (result, ok)
// and never returns an error, so one malformed input can't sink the set
package decode

import (
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Probe names are the keys of the decoded-output map in an analysis record.
// A probe that fails or does not apply simply contributes no key
const (
	ProbeBase64        = "base64"
	ProbeHex           = "hex"
	ProbeROT13         = "rot13"
	ProbeURL           = "url-decode"
	ProbeBinary        = "binary"
	ProbeOctal         = "octal"
	ProbeUnicodeEscape = "unicode-escape"
	ProbeHTMLEntity    = "html-entity"
)

var (
	reBinary  = regexp.MustCompile(`^[01]+$`)
	reOctal   = regexp.MustCompile(`^[0-7]+$`)
	reUEscape = regexp.MustCompile(`\\u([0-9a-fA-F]{4})`)
	reNumEnt  = regexp.MustCompile(`&#(\d+);`)
)

// All runs every probe against s and collects the successful outputs
func All(s string) map[string]string {
	out := make(map[string]string, 8)
	put := func(name string, fn func(string) (string, bool)) {
		if v, ok := fn(s); ok {
			out[name] = v
		}
	}
	put(ProbeBase64, Base64)
	put(ProbeHex, Hex)
	put(ProbeROT13, ROT13)
	put(ProbeURL, URL)
	put(ProbeBinary, Binary)
	put(ProbeOctal, Octal)
	put(ProbeUnicodeEscape, UnicodeEscape)
	put(ProbeHTMLEntity, HTMLEntity)
	return out
}

// Base64 pads s to a multiple of 4 and attempts a standard base64 decode
func Base64(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if rem := len(s) % 4; rem != 0 {
		s += strings.Repeat("=", 4-rem)
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Hex decodes pairs of hex digits; odd-length input does not apply
func Hex(s string) (string, bool) {
	if s == "" || len(s)%2 != 0 {
		return "", false
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// ROT13 rotates ASCII letters by 13 within their case. Applies only when the
// input contains at least one letter
func ROT13(s string) (string, bool) {
	hasLetter := false
	rot := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			hasLetter = true
			return 'a' + (r-'a'+13)%26
		case r >= 'A' && r <= 'Z':
			hasLetter = true
			return 'A' + (r-'A'+13)%26
		default:
			return r
		}
	}, s)
	if !hasLetter {
		return "", false
	}
	return rot, true
}

// URL percent-decodes s; malformed escape sequences do not apply.
// PathUnescape is used so '+' stays literal
func URL(s string) (string, bool) {
	v, err := url.PathUnescape(s)
	if err != nil {
		return "", false
	}
	return v, true
}

// Binary interprets a [01]+ string as 8-bit chunks; an incomplete trailing
// chunk is discarded and only printable byte values (32..126) survive
func Binary(s string) (string, bool) {
	if !reBinary.MatchString(s) {
		return "", false
	}
	var b strings.Builder
	for i := 0; i+8 <= len(s); i += 8 {
		v, err := strconv.ParseUint(s[i:i+8], 2, 16)
		if err != nil {
			return "", false
		}
		if v >= 32 && v <= 126 {
			b.WriteByte(byte(v))
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// Octal interprets a [0-7]+ string as 3-digit base-8 chunks, printable range only
func Octal(s string) (string, bool) {
	if !reOctal.MatchString(s) {
		return "", false
	}
	var b strings.Builder
	for i := 0; i+3 <= len(s); i += 3 {
		v, err := strconv.ParseUint(s[i:i+3], 8, 16)
		if err != nil {
			return "", false
		}
		if v >= 32 && v <= 126 {
			b.WriteByte(byte(v))
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// UnicodeEscape replaces \uXXXX escapes with their code points. Applies only
// when at least one escape is present
func UnicodeEscape(s string) (string, bool) {
	if !reUEscape.MatchString(s) {
		return "", false
	}
	out := reUEscape.ReplaceAllStringFunc(s, func(m string) string {
		v, err := strconv.ParseUint(m[2:], 16, 32)
		if err != nil {
			return m
		}
		return string(rune(v))
	})
	return out, true
}

// namedEntities is the fixed replacement table for the html-entity probe
var namedEntities = [...][2]string{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&nbsp;", " "},
	{"&copy;", "©"},
	{"&reg;", "®"},
	{"&trade;", "™"},
}

// HTMLEntity replaces the fixed named-entity table plus printable numeric
// entities. Applies only when at least one replacement actually happened
func HTMLEntity(s string) (string, bool) {
	out := s
	for _, e := range namedEntities {
		out = strings.ReplaceAll(out, e[0], e[1])
	}
	out = reNumEnt.ReplaceAllStringFunc(out, func(m string) string {
		v, err := strconv.Atoi(m[2 : len(m)-1])
		if err != nil || v < 32 || v > 126 {
			return m
		}
		return string(rune(v))
	})
	if out == s {
		return "", false
	}
	return out, true
}
