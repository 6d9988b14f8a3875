package labs

import (
	"fmt"

	"github.com/medparse/bloodlab/internal/common"
)

var invivoMarkers = []string{"инвиво", "invivo", "invivo.kz"}

// InVivo prints PCR and antibody results in the same layout as blood tests,
// so its parser also screens those out.
var notBloodMarkers = []string{
	"пцр", "sars-cov-2", "covid", "коронавирус",
	"антитела igg", "антитела igm",
}

// InVivo reads the InVivo lab network layout.
type InVivo struct{}

func NewInVivo() *InVivo { return &InVivo{} }

func (p *InVivo) Name() string { return "invivo" }

func (p *InVivo) Matches(text string) bool {
	return containsAny(text, invivoMarkers)
}

func (p *InVivo) Extract(text string) ([]RawExtraction, error) {
	if containsAny(text, notBloodMarkers) {
		return nil, fmt.Errorf("%w: invivo document is a PCR or antibody test", common.ErrNotBloodTest)
	}
	rows := scanLines(text)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: invivo layout yielded no measurements", common.ErrFormatMismatch)
	}
	return rows, nil
}
