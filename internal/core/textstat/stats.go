package textstat

import "unicode"

// Stats summarizes the character composition of one input
type Stats struct {
	Length   int     `json:"length"`
	Unique   int     `json:"unique_chars"`
	Digits   int     `json:"digits"`
	Letters  int     `json:"letters"`
	Specials int     `json:"special_chars"`
	Entropy  float64 `json:"entropy"`
}

// Compute builds Stats plus a per-character frequency map for s.
// Counting is by code point throughout
func Compute(s string) (Stats, map[string]int) {
	runes := []rune(s)
	freq := make(map[string]int, len(runes))

	st := Stats{Length: len(runes)}
	for _, r := range runes {
		freq[string(r)]++
		switch {
		case unicode.IsDigit(r):
			st.Digits++
		case unicode.IsLetter(r):
			st.Letters++
		default:
			st.Specials++
		}
	}
	st.Unique = len(freq)
	st.Entropy = Entropy(s)
	return st, freq
}
