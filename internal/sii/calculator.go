// Package sii computes the systemic immune-inflammation index and classifies
// it against localization-specific thresholds.
package sii

import (
	"fmt"
	"math"

	"github.com/medparse/bloodlab/constants"
	"github.com/medparse/bloodlab/internal/common"
	"github.com/medparse/bloodlab/internal/report"
)

// Result is a computed and classified index value.
type Result struct {
	Index      float64   `json:"sii"`
	Level      RiskLevel `json:"level"`
	CancerType string    `json:"cancer_type"`
	CancerName string    `json:"cancer_name"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
}

// Compute calculates SII = (neutrophils_abs * platelets) / lymphocytes_abs
// and classifies it for the given ICD-10 code. Counts are absolute values in
// 10^9/L. Classification uses the exact quotient, the returned Index is
// rounded to two decimal places for display. A value landing exactly on a
// threshold stays in the lower level.
func Compute(neutrophilsAbs, platelets, lymphocytesAbs float64, icd10 string) (Result, error) {
	for _, v := range []float64{neutrophilsAbs, platelets, lymphocytesAbs} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Result{}, fmt.Errorf("%w: counts must be non-negative finite numbers", common.ErrInvalidInput)
		}
	}
	if lymphocytesAbs == 0 {
		return Result{}, common.ErrZeroLymphocytes
	}
	group, ok := LookupGroup(icd10)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", common.ErrUnsupportedCancerType, icd10)
	}

	index := neutrophilsAbs * platelets / lymphocytesAbs
	level := group.level(index)
	c := conclusions[level]
	return Result{
		Index:      math.Round(index*100) / 100,
		Level:      level,
		CancerType: icd10,
		CancerName: group.Name,
		Title:      c.Title,
		Summary:    c.Summary,
	}, nil
}

// FromReport computes the index from an extracted report. All three counts
// must be present; a report without them cannot support the calculation.
func FromReport(rep *report.Report, icd10 string) (Result, error) {
	if rep == nil {
		return Result{}, fmt.Errorf("%w: nil report", common.ErrInvalidInput)
	}
	values := map[constants.AnalyteKey]float64{}
	for _, key := range []constants.AnalyteKey{
		constants.NeutrophilsAbs,
		constants.Platelets,
		constants.LymphocytesAbs,
	} {
		res := rep.Get(key)
		if res == nil || res.Value == nil {
			return Result{}, fmt.Errorf("%w: missing %s", common.ErrInvalidInput, key)
		}
		values[key] = *res.Value
	}
	return Compute(
		values[constants.NeutrophilsAbs],
		values[constants.Platelets],
		values[constants.LymphocytesAbs],
		icd10,
	)
}
