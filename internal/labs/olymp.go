package labs

import (
	"fmt"

	"github.com/medparse/bloodlab/internal/common"
)

var olympMarkers = []string{"олимп", "olymp", "кдл «олимп»", "кдл олимп"}

// Olymp reads the KDL Olymp lab network layout.
type Olymp struct{}

func NewOlymp() *Olymp { return &Olymp{} }

func (p *Olymp) Name() string { return "olymp" }

func (p *Olymp) Matches(text string) bool {
	return containsAny(text, olympMarkers)
}

func (p *Olymp) Extract(text string) ([]RawExtraction, error) {
	rows := scanLines(text)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: olymp layout yielded no measurements", common.ErrFormatMismatch)
	}
	return rows, nil
}
