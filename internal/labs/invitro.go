package labs

import (
	"fmt"

	"github.com/medparse/bloodlab/internal/common"
)

var invitroMarkers = []string{"инвитро", "invitro", "ооо «инвитро»"}

// Invitro reads the Invitro lab network layout.
type Invitro struct{}

func NewInvitro() *Invitro { return &Invitro{} }

func (p *Invitro) Name() string { return "invitro" }

func (p *Invitro) Matches(text string) bool {
	return containsAny(text, invitroMarkers)
}

func (p *Invitro) Extract(text string) ([]RawExtraction, error) {
	rows := scanLines(text)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: invitro layout yielded no measurements", common.ErrFormatMismatch)
	}
	return rows, nil
}
