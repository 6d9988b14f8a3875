// Package labs holds format detection and heuristic parsers for the lab
// networks whose report layout is stable enough to read without a model.
package labs

import (
	"regexp"
	"strings"

	"github.com/medparse/bloodlab/internal/catalog"
	"github.com/medparse/bloodlab/internal/common"
)

// RawExtraction is one recognized measurement line before normalization.
type RawExtraction struct {
	MatchedName string
	RawValue    string
	RawUnit     *string
	RawRef      *string
}

// Parser reads one lab network's report layout.
type Parser interface {
	Name() string
	Matches(text string) bool
	Extract(text string) ([]RawExtraction, error)
}

// Detector tries the registered parsers in a fixed order.
type Detector struct {
	parsers []Parser
}

// NewDetector returns a detector with the default parser order.
func NewDetector() *Detector {
	return &Detector{parsers: []Parser{
		NewInvitro(),
		NewOlymp(),
		NewInVivo(),
	}}
}

// Detect returns the first parser whose markers appear in the text.
func (d *Detector) Detect(text string) (Parser, bool) {
	for _, p := range d.parsers {
		if p.Matches(text) {
			return p, true
		}
	}
	return nil, false
}

// Parse runs detection and extraction in one step. ErrFormatMismatch means no
// registered layout matched or the matched layout yielded no measurements;
// the caller falls back to model extraction. ErrNotBloodTest is fatal.
func (d *Detector) Parse(text string) ([]RawExtraction, string, error) {
	p, ok := d.Detect(text)
	if !ok {
		return nil, "", common.ErrFormatMismatch
	}
	rows, err := p.Extract(text)
	if err != nil {
		return nil, p.Name(), err
	}
	return rows, p.Name(), nil
}

var (
	valueRe = regexp.MustCompile(`^[<>≤≥]?=?\d+(?:[.,]\d+)?\*?$`)
	rangeRe = regexp.MustCompile(`\d\s*[-–—]\s*\d|^[<>≤≥]`)
	unitRe  = regexp.MustCompile(`[%а-яa-zµ^]`)
)

// scanLines walks the document line by line, taking every line whose leading
// words resolve to a catalog analyte followed by a numeric value. Layout
// differences between labs come down to their markers, not their line shape.
func scanLines(text string) []RawExtraction {
	cat := catalog.Default()
	var rows []RawExtraction
	seen := map[string]bool{}

	for _, line := range strings.Split(text, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			continue
		}

		// Find the first numeric token; everything before it is the name.
		vi := -1
		for i := 1; i < len(tokens); i++ {
			if valueRe.MatchString(tokens[i]) {
				vi = i
				break
			}
		}
		if vi < 1 {
			continue
		}

		name := strings.Join(tokens[:vi], " ")
		if _, ok := cat.Resolve(name); !ok {
			continue
		}
		if seen[name] {
			continue // first occurrence wins on duplicated pages
		}
		seen[name] = true

		row := RawExtraction{MatchedName: name, RawValue: strings.TrimSuffix(tokens[vi], "*")}
		rest := tokens[vi+1:]
		if len(rest) > 0 && unitRe.MatchString(strings.ToLower(rest[0])) && !rangeRe.MatchString(rest[0]) {
			unit := rest[0]
			row.RawUnit = &unit
			rest = rest[1:]
		}
		if len(rest) > 0 {
			ref := strings.Join(rest, " ")
			if rangeRe.MatchString(ref) {
				row.RawRef = &ref
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func containsAny(text string, markers []string) bool {
	lower := strings.ToLower(text)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
