package textstat

import "math"

// Entropy returns the Shannon entropy of s in bits per character.
// Characters are counted by code point, not byte, so multibyte input
// does not skew the histogram. Empty input is 0 by definition
func Entropy(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	freq := make(map[rune]int, len(runes))
	for _, r := range runes {
		freq[r]++
	}
	n := float64(len(runes))
	var h float64
	for _, c := range freq {
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}
