package report

import (
	"encoding/json"
	"fmt"

	"github.com/medparse/bloodlab/constants"
	"github.com/medparse/bloodlab/internal/catalog"
)

// AnalyteResult is a single measured value. A nil Value means the analyte was
// not measured in the document; Unit is nil whenever Value is nil.
type AnalyteResult struct {
	Value *float64 `json:"value"`
	Unit  *string  `json:"unit"`
	Ref   *string  `json:"ref"`
}

// Report is a key-complete blood test report: every catalog key is present in
// Analytes, unmeasured ones mapped to nil.
type Report struct {
	Analytes map[constants.AnalyteKey]*AnalyteResult

	FullName string
	Age      *int
	Sex      constants.Sex
	Date     string
}

// New returns a report with every catalog key present and nil.
func New() *Report {
	analytes := make(map[constants.AnalyteKey]*AnalyteResult, catalog.Default().Len())
	for _, key := range catalog.Default().AllKeys() {
		analytes[key] = nil
	}
	return &Report{Analytes: analytes, Sex: constants.SexUnknown}
}

// Set records a result for key. Unknown keys are ignored so that callers can
// feed resolver output without re-checking membership.
func (r *Report) Set(key constants.AnalyteKey, res AnalyteResult) {
	if _, ok := r.Analytes[key]; !ok {
		return
	}
	if res.Value == nil && res.Unit == nil && res.Ref == nil {
		return
	}
	cp := res
	r.Analytes[key] = &cp
}

// Get returns the result for key, nil when unmeasured or unknown.
func (r *Report) Get(key constants.AnalyteKey) *AnalyteResult {
	return r.Analytes[key]
}

// MeasuredCount reports how many analytes carry a non-nil value.
func (r *Report) MeasuredCount() int {
	n := 0
	for _, res := range r.Analytes {
		if res != nil && res.Value != nil {
			n++
		}
	}
	return n
}

// HasCBCData reports whether the report contains at least one of the complete
// blood count markers needed for downstream analysis.
func (r *Report) HasCBCData() bool {
	for _, key := range []constants.AnalyteKey{
		constants.Hemoglobin,
		constants.Erythrocytes,
		constants.Platelets,
		constants.WBC,
		constants.NeutrophilsAbs,
		constants.LymphocytesAbs,
	} {
		if res := r.Analytes[key]; res != nil && res.Value != nil {
			return true
		}
	}
	return false
}

// MarshalJSON renders a flat object: every analyte key in catalog order, then
// the patient fields. Map-free encoding keeps the output deterministic.
func (r *Report) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, key := range catalog.Default().AllKeys() {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '"')
		buf = append(buf, string(key)...)
		buf = append(buf, '"', ':')
		res := r.Analytes[key]
		if res == nil {
			buf = append(buf, "null"...)
			continue
		}
		enc, err := json.Marshal(res)
		if err != nil {
			return nil, fmt.Errorf("marshal analyte %s: %w", key, err)
		}
		buf = append(buf, enc...)
	}

	meta := struct {
		FullName string        `json:"full_name"`
		Age      *int          `json:"age"`
		Sex      constants.Sex `json:"sex"`
		Date     string        `json:"date"`
	}{r.FullName, r.Age, r.Sex, r.Date}
	encMeta, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal patient meta: %w", err)
	}
	if len(buf) > 1 {
		buf = append(buf, ',')
	}
	buf = append(buf, encMeta[1:]...) // strip the opening brace, keep the closing one
	return buf, nil
}

// UnmarshalJSON accepts the flat form produced by MarshalJSON. Keys that are
// not catalog analytes or patient fields are ignored.
func (r *Report) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if r.Analytes == nil {
		*r = *New()
	}
	for key, msg := range raw {
		switch key {
		case "full_name":
			if err := json.Unmarshal(msg, &r.FullName); err != nil {
				return fmt.Errorf("unmarshal full_name: %w", err)
			}
		case "age":
			if err := json.Unmarshal(msg, &r.Age); err != nil {
				return fmt.Errorf("unmarshal age: %w", err)
			}
		case "sex":
			if err := json.Unmarshal(msg, &r.Sex); err != nil {
				return fmt.Errorf("unmarshal sex: %w", err)
			}
		case "date":
			if err := json.Unmarshal(msg, &r.Date); err != nil {
				return fmt.Errorf("unmarshal date: %w", err)
			}
		default:
			ak := constants.AnalyteKey(key)
			if _, ok := r.Analytes[ak]; !ok {
				continue
			}
			if string(msg) == "null" {
				r.Analytes[ak] = nil
				continue
			}
			var res AnalyteResult
			if err := json.Unmarshal(msg, &res); err != nil {
				return fmt.Errorf("unmarshal analyte %s: %w", key, err)
			}
			r.Analytes[ak] = &res
		}
	}
	if r.Sex == "" {
		r.Sex = constants.SexUnknown
	}
	return nil
}
