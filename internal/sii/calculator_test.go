package sii

import (
	"errors"
	"math"
	"testing"

	"github.com/medparse/bloodlab/constants"
	"github.com/medparse/bloodlab/internal/common"
	"github.com/medparse/bloodlab/internal/report"
)

func TestComputeFormula(t *testing.T) {
	res, err := Compute(4, 250, 2, "C34")
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if res.Index != 500 {
		t.Fatalf("index = %v, want 500", res.Index)
	}
	if res.Level != RiskLow {
		t.Fatalf("level = %v, want %v", res.Level, RiskLow)
	}
	if res.CancerName != "Рак лёгкого" {
		t.Fatalf("cancer name = %q", res.CancerName)
	}
	if res.Title == "" || res.Summary == "" {
		t.Fatal("conclusion text missing")
	}
}

func TestComputeBoundaries(t *testing.T) {
	// A value sitting exactly on a bound stays in the lower level.
	tests := []struct {
		name      string
		platelets float64
		want      RiskLevel
	}{
		{"exactly on bound", 300, RiskLow},                      // 2*300/1 = 600
		{"just above bound", 300.05, RiskModerate},              // 600.1
		{"above bound within rounding", 300.002, RiskModerate},  // 600.004
		{"top band", 800, RiskHigh},                             // 1600 > 1500
		{"bottom band", 50, RiskVeryLow},                        // 100
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(2, tt.platelets, 1, "C34")
			if err != nil {
				t.Fatalf("Compute error: %v", err)
			}
			if res.Level != tt.want {
				t.Fatalf("index %v level = %v, want %v", res.Index, res.Level, tt.want)
			}
		})
	}
}

func TestComputeRounding(t *testing.T) {
	res, err := Compute(1, 1, 3, "C34")
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if res.Index != 0.33 {
		t.Fatalf("index = %v, want 0.33", res.Index)
	}
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name    string
		n, p, l float64
		icd10   string
		want    error
	}{
		{"zero lymphocytes", 4, 250, 0, "C34", common.ErrZeroLymphocytes},
		{"negative neutrophils", -1, 250, 2, "C34", common.ErrInvalidInput},
		{"nan platelets", 4, math.NaN(), 2, "C34", common.ErrInvalidInput},
		{"unknown code", 4, 250, 2, "Z99", common.ErrUnsupportedCancerType},
		{"empty code", 4, 250, 2, "", common.ErrUnsupportedCancerType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.n, tt.p, tt.l, tt.icd10)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Compute error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLookupGroup(t *testing.T) {
	tests := []struct {
		name  string
		icd10 string
		want  string
	}{
		{"plain category", "C34", "Рак лёгкого"},
		{"lowercase", "c34", "Рак лёгкого"},
		{"subcode falls back to category", "C34.1", "Рак лёгкого"},
		{"exact subcode wins", "C22.0", "Гепатоцеллюлярная карцинома"},
		{"sibling subcode", "C22.1", "Рак желчных протоков"},
		{"colorectal member", "C19", "Колоректальный рак"},
		{"head and neck", "C04", "Опухоли головы и шеи"},
		{"nasopharynx has its own group", "C11", "Рак носоглотки"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := LookupGroup(tt.icd10)
			if !ok {
				t.Fatalf("LookupGroup(%q) not found", tt.icd10)
			}
			if g.Name != tt.want {
				t.Fatalf("LookupGroup(%q) = %q, want %q", tt.icd10, g.Name, tt.want)
			}
		})
	}
}

func TestGroupsCovered(t *testing.T) {
	if len(Groups()) != 20 {
		t.Fatalf("registered %d groups, want 20", len(Groups()))
	}
	seen := map[int]bool{}
	for _, g := range Groups() {
		if seen[g.ID] {
			t.Fatalf("duplicate group id %d", g.ID)
		}
		seen[g.ID] = true
		if len(g.Codes) == 0 {
			t.Fatalf("group %d has no codes", g.ID)
		}
	}
}

func TestFromReport(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	rep := report.New()
	rep.Set(constants.NeutrophilsAbs, report.AnalyteResult{Value: f(4)})
	rep.Set(constants.Platelets, report.AnalyteResult{Value: f(250)})
	rep.Set(constants.LymphocytesAbs, report.AnalyteResult{Value: f(2)})

	res, err := FromReport(rep, "C34")
	if err != nil {
		t.Fatalf("FromReport error: %v", err)
	}
	if res.Index != 500 {
		t.Fatalf("index = %v, want 500", res.Index)
	}
}

func TestFromReportMissingCounts(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	rep := report.New()
	rep.Set(constants.NeutrophilsAbs, report.AnalyteResult{Value: f(4)})

	_, err := FromReport(rep, "C34")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := FromReport(nil, "C34"); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil report, got %v", err)
	}
}
