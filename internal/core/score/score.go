// Package score computes a weighted confidence score for one input against
// one catalog descriptor. Signals are additive and clamped to 1.0 only at the
// end, so several weak signals can saturate the score the same way a single
// strong one does; that is inherited behavior, documented and kept as-is
package score

import (
	"fmt"
	"strings"

	"hashsleuth/internal/core/catalog"
	"hashsleuth/internal/core/decode"
	"hashsleuth/internal/core/textstat"
)

// Tier is the confidence bucket derived from a clamped score
type Tier string

const (
	// TierGreen is score > 0.80
	TierGreen Tier = "green"
	// TierYellow is score in 0.55..0.80
	TierYellow Tier = "yellow"
	// TierRed is score in 0.25..<0.55 (and the sentinel results)
	TierRed Tier = "red"
)

// IncludeThreshold is the minimum pre-clamp score for a descriptor to appear
// in results at all
const IncludeThreshold = 0.25

// MaxResults is the number of ranked candidates kept per analysis
const MaxResults = 3

const (
	weightRegex            = 0.40
	weightPrefix           = 0.25
	weightLengthExact      = 0.40
	weightLengthFuzzy      = 0.30
	weightLengthNear       = 0.10
	weightCharsetDirect    = 0.20
	weightCharsetDecoded   = 0.15
	weightCharsetVariation = 0.10
	weightSuffix           = 0.10
	weightEntropy          = 0.10
	weightDecodable        = 0.10
	weightDecodedMatch     = 0.05
	weightSignature        = 0.30
)

// Input carries the per-call facts shared by every descriptor evaluation,
// computed once so the scoring loop does no redundant decoding
type Input struct {
	Text    string
	Length  int // code points
	Charset textstat.Charset
	Entropy float64

	Base64OK      bool
	Base64Charset textstat.Charset
	HexOK         bool
	HexCharset    textstat.Charset
}

// NewInput precomputes the shared scoring facts for s
func NewInput(s string) Input {
	in := Input{
		Text:    s,
		Length:  len([]rune(s)),
		Charset: textstat.Classify(s),
		Entropy: textstat.Entropy(s),
	}
	if dec, ok := decode.Base64(s); ok {
		in.Base64OK = true
		in.Base64Charset = textstat.Classify(dec)
	}
	if dec, ok := decode.Hex(s); ok {
		in.HexOK = true
		in.HexCharset = textstat.Classify(dec)
	}
	return in
}

// Evaluate scores in against d and returns the unclamped sum plus the
// evidence trail in signal-evaluation order
func Evaluate(in Input, d catalog.Descriptor) (float64, []string) {
	var (
		total    float64
		evidence []string
	)
	add := func(w float64, ev string) {
		total += w
		evidence = append(evidence, ev)
	}

	// 1: regex, compiled once at catalog load; nil means absent or invalid
	if d.Compiled != nil && d.Compiled.MatchString(in.Text) {
		add(weightRegex, "matches format regex")
	}

	// 2: first matching literal prefix; a match also arms the signature boost
	prefixMatched := false
	for _, p := range d.Prefixes {
		if p != "" && strings.HasPrefix(in.Text, p) {
			prefixMatched = true
			add(weightPrefix, fmt.Sprintf("starts with %q", p))
			break
		}
	}

	// 3: declared exact length with fuzzy bands
	if d.Length > 0 {
		diff := in.Length - d.Length
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff == 0:
			add(weightLengthExact, fmt.Sprintf("exact length %d", d.Length))
		case diff <= 4:
			add(weightLengthFuzzy, fmt.Sprintf("length within 4 of %d", d.Length))
		case diff <= 8:
			add(weightLengthNear, fmt.Sprintf("length within 8 of %d", d.Length))
		}
	}

	// 4: charset tag; up to three independent bonuses, then a variation
	// fallback. The alphanum comparison mirrors the original heuristic even
	// though the classifier never emits that class
	if d.Charset != "" {
		fired := false
		if in.Charset == d.Charset {
			fired = true
			add(weightCharsetDirect, fmt.Sprintf("charset %s", d.Charset))
		}
		if in.Base64OK && in.Base64Charset == d.Charset {
			fired = true
			add(weightCharsetDecoded, fmt.Sprintf("base64-decoded payload is %s", d.Charset))
		}
		if in.HexOK && in.HexCharset == d.Charset {
			fired = true
			add(weightCharsetDecoded, fmt.Sprintf("hex-decoded payload is %s", d.Charset))
		}
		if !fired && d.Charset == textstat.CharsetHex &&
			(in.Charset == textstat.CharsetHex || in.Charset == "alphanum") {
			add(weightCharsetVariation, "hex-like composition")
		}
	}

	// 5: first matching literal suffix
	for _, suf := range d.Suffixes {
		if suf != "" && strings.HasSuffix(in.Text, suf) {
			add(weightSuffix, fmt.Sprintf("ends with %q", suf))
			break
		}
	}

	// 6: entropy above a length-adaptive threshold
	if thr := entropyThreshold(in.Length); in.Entropy > thr {
		add(weightEntropy, fmt.Sprintf("high entropy %.2f", in.Entropy))
	}

	// 7: decodability, plus a small bonus per decode agreeing with the tag
	if in.Base64OK || in.HexOK {
		add(weightDecodable, "decodes cleanly")
	}
	if d.Charset != "" {
		if in.Base64OK && in.Base64Charset == d.Charset {
			add(weightDecodedMatch, "base64 decode agrees with charset")
		}
		if in.HexOK && in.HexCharset == d.Charset {
			add(weightDecodedMatch, "hex decode agrees with charset")
		}
	}

	// 8: signature boost, cumulative with the prefix weight from step 2
	if prefixMatched {
		add(weightSignature, "signature match")
	}

	return total, evidence
}

// entropyThreshold is clamp(3.0 + n/50, 2.5, 4.0)
func entropyThreshold(n int) float64 {
	t := 3.0 + float64(n)/50.0
	if t < 2.5 {
		t = 2.5
	}
	if t > 4.0 {
		t = 4.0
	}
	return t
}

// Clamp bounds a raw score to [0, 1]
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// TierFor maps a clamped score to its confidence tier
func TierFor(v float64) Tier {
	switch {
	case v > 0.80:
		return TierGreen
	case v >= 0.55:
		return TierYellow
	default:
		return TierRed
	}
}
