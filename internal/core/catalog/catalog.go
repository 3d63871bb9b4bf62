// Package catalog loads the hash/encoding format descriptors the scorer runs
// against. The catalog is built once at startup from the embedded
// patterns.json (or an on-disk override) and is immutable afterwards.
// File order is significant: it is the iteration order of the scoring loop
// and the sole tie-break between equal scores, so the file is parsed as a
// token stream instead of an unordered map
package catalog

import (
	_ "embed"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"hashsleuth/internal/core/textstat"
	"hashsleuth/internal/platform/logger"
)

//go:embed patterns.json
var embedded []byte

// Descriptor describes one format's identifying characteristics.
// Only ID and Name are required; absent fields contribute no signal
type Descriptor struct {
	ID          string
	Name        string
	Length      int // 0 means no declared length
	Charset     textstat.Charset
	Prefixes    []string
	Suffixes    []string
	Regex       string
	Example     string
	Description string

	// Compiled is nil when the descriptor has no regex or the regex failed
	// to compile at load; the regex signal then never fires for it
	Compiled *regexp.Regexp
}

// Catalog is an ordered, read-only descriptor collection
type Catalog struct {
	descriptors []Descriptor
}

// Empty returns a catalog with no descriptors
func Empty() *Catalog { return &Catalog{} }

// Descriptors returns the descriptors in catalog order.
// Callers must treat the slice as read-only
func (c *Catalog) Descriptors() []Descriptor { return c.descriptors }

// Len is the number of descriptors
func (c *Catalog) Len() int { return len(c.descriptors) }

// CompiledCount reports how many descriptors carry a usable compiled regex
func (c *Catalog) CompiledCount() int {
	n := 0
	for i := range c.descriptors {
		if c.descriptors[i].Compiled != nil {
			n++
		}
	}
	return n
}

type rawDescriptor struct {
	Name        string   `json:"name"`
	Length      int      `json:"length,omitempty"`
	Charset     string   `json:"charset,omitempty"`
	Prefixes    []string `json:"prefixes,omitempty"`
	Suffixes    []string `json:"suffixes,omitempty"`
	Regex       string   `json:"regex,omitempty"`
	Example     string   `json:"example,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Parse builds a catalog from patterns JSON, preserving key order.
// Descriptors with invalid regexes are kept with a nil compiled pattern
func Parse(data []byte) (*Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("catalog: read patterns: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("catalog: patterns root must be an object")
	}

	c := &Catalog{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("catalog: read key: %w", err)
		}
		id, ok := keyTok.(string)
		if !ok || id == "" {
			return nil, fmt.Errorf("catalog: descriptor key must be a non-empty string")
		}

		var rd rawDescriptor
		if err := dec.Decode(&rd); err != nil {
			return nil, fmt.Errorf("catalog: decode %q: %w", id, err)
		}
		if rd.Name == "" {
			return nil, fmt.Errorf("catalog: descriptor %q has no name", id)
		}

		d := Descriptor{
			ID:          id,
			Name:        rd.Name,
			Length:      rd.Length,
			Charset:     textstat.Charset(rd.Charset),
			Prefixes:    rd.Prefixes,
			Suffixes:    rd.Suffixes,
			Regex:       rd.Regex,
			Example:     rd.Example,
			Description: rd.Description,
		}
		if rd.Regex != "" {
			if re, err := regexp.Compile(rd.Regex); err == nil {
				d.Compiled = re
			}
		}
		c.descriptors = append(c.descriptors, d)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("catalog: read close: %w", err)
	}
	return c, nil
}

// Load returns the catalog from the embedded patterns.json.
// A parse failure degrades to an empty catalog so the rest of the service
// keeps answering (with "unknown" results) instead of refusing to start
func Load() *Catalog {
	c, err := Parse(embedded)
	if err != nil {
		logger.Named("catalog").Warn().Err(err).Msg("embedded patterns unusable; starting with empty catalog")
		return Empty()
	}
	return c
}

// LoadFile returns the catalog from an on-disk patterns file, degrading to
// an empty catalog on read or parse failure
func LoadFile(path string) *Catalog {
	log := logger.Named("catalog")
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("patterns file unreadable; starting with empty catalog")
		return Empty()
	}
	c, err := Parse(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("patterns file unusable; starting with empty catalog")
		return Empty()
	}
	return c
}
