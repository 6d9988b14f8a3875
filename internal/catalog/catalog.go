// Package catalog holds the static registry of canonical analyte keys, their
// display names, and the multi-language aliases labs print them under.
// The registry is built once at process start and is read-only afterwards, so
// it is safe for unsynchronized concurrent lookups.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/medparse/bloodlab/constants"
)

// Entry describes one registered analyte.
type Entry struct {
	Key     constants.AnalyteKey
	Display string   // primary Russian display name, used in the extraction prompt
	Aliases []string // lab- and language-specific variants, matched after folding
	Unit    string   // expected unit, informational
}

// Catalog resolves raw analyte names to canonical keys.
type Catalog struct {
	entries []Entry
	byAlias map[string]constants.AnalyteKey
}

var folder = cases.Fold()

// foldName lowercases (with full Unicode case folding, which matters for
// Cyrillic), collapses whitespace runs, and strips decorating punctuation.
// '%' and '#' are kept: they distinguish relative from absolute counts.
func foldName(s string) string {
	s = folder.String(s)
	var b strings.Builder
	b.Grow(len(s))
	space := true
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == ' ':
			if !space {
				b.WriteByte(' ')
				space = true
			}
		case strings.ContainsRune(".,;:()\"'«»*", r):
			// dropped
		default:
			b.WriteRune(r)
			space = false
		}
	}
	return strings.TrimSpace(b.String())
}

// New builds a catalog from the given entries. Aliases and display names are
// folded once here; Resolve only folds its input.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries: entries,
		byAlias: make(map[string]constants.AnalyteKey, len(entries)*4),
	}
	for _, e := range entries {
		c.byAlias[foldName(e.Display)] = e.Key
		c.byAlias[foldName(string(e.Key))] = e.Key
		for _, a := range e.Aliases {
			c.byAlias[foldName(a)] = e.Key
		}
	}
	return c
}

// Resolve maps a raw analyte name from a document onto a canonical key.
// Unrecognized names return ok=false: documents legitimately list analytes
// outside the tracked set, and that must not fail a parsing pass.
func (c *Catalog) Resolve(rawName string) (constants.AnalyteKey, bool) {
	if rawName == "" {
		return "", false
	}
	k, ok := c.byAlias[foldName(rawName)]
	return k, ok
}

// AllKeys returns every registered key in registry order. The order is stable
// across calls and is what report serialization follows.
func (c *Catalog) AllKeys() []constants.AnalyteKey {
	keys := make([]constants.AnalyteKey, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// DisplayNames returns the primary Russian display name for every key, in
// registry order. This is the closed list embedded in the extraction prompt.
func (c *Catalog) DisplayNames() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Display
	}
	return names
}

// Entries exposes the registry for read-only iteration (exports, listings).
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of registered analytes.
func (c *Catalog) Len() int { return len(c.entries) }

var defaultCatalog = New(registry)

// Default returns the process-wide catalog built from the static registry.
func Default() *Catalog { return defaultCatalog }
