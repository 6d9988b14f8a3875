// Package normalize turns raw report strings into numeric analyte results.
// Lab printouts mix decimal commas and points, thousands separators,
// comparator values like "< 0,5" and placeholder dashes; everything here is
// about mapping those onto a single canonical form.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/medparse/bloodlab/internal/common"
	"github.com/medparse/bloodlab/internal/report"
)

// unitAliases maps unit spellings seen in lab documents to canonical forms.
var unitAliases = map[string]string{
	"g/l":         "г/л",
	"г/литр":      "г/л",
	"mmol/l":      "ммоль/л",
	"umol/l":      "мкмоль/л",
	"µmol/l":      "мкмоль/л",
	"мкмоль/литр": "мкмоль/л",
	"u/l":      "Ед/л",
	"ед/л":     "Ед/л",
	"е/л":      "Ед/л",
	"iu/l":     "МЕ/л",
	"ме/л":     "МЕ/л",
	"fl":       "фл",
	"pg":       "пг",
	"ng/ml":    "нг/мл",
	"pg/ml":    "пг/мл",
	"mg/l":     "мг/л",
	"mm/h":     "мм/ч",
	"мм/час":   "мм/ч",
	"sec":      "сек",
	"с":        "сек",
	"10^9/l":   "10^9/л",
	"10*9/л":   "10^9/л",
	"x10^9/л":  "10^9/л",
	"х10^9/л":  "10^9/л",
	"10е9/л":   "10^9/л",
	"10^12/l":  "10^12/л",
	"10*12/л":  "10^12/л",
	"x10^12/л": "10^12/л",
	"х10^12/л": "10^12/л",
	"10е12/л":  "10^12/л",
	"тыс/мкл":  "10^9/л",
	"млн/мкл":  "10^12/л",
	"%":        "%",
}

// placeholders are raw values labs print where nothing was measured.
var placeholders = map[string]bool{
	"": true, "-": true, "–": true, "—": true,
	"n/a": true, "na": true, "не обнаружено": true, "отсутствует": true,
}

// Normalize converts a raw value with optional unit and reference range into
// an AnalyteResult. Placeholder values come back with a nil Value and the
// reference range preserved. A value string containing control characters is
// rejected with ErrNormalization.
func Normalize(rawValue string, rawUnit, rawRef *string) (report.AnalyteResult, error) {
	for _, r := range rawValue {
		if unicode.IsControl(r) && r != '\t' {
			return report.AnalyteResult{}, fmt.Errorf("%w: control character in %q", common.ErrNormalization, rawValue)
		}
	}

	value := strings.TrimSpace(rawValue)
	ref := normalizeRef(rawRef)

	if placeholders[strings.ToLower(value)] {
		return report.AnalyteResult{Ref: ref}, nil
	}

	// Comparator values keep their numeric magnitude; the original bound is
	// preserved as the reference when the document gave no range of its own.
	comparator := ""
	for _, op := range []string{"<=", ">=", "<", ">", "≤", "≥"} {
		if strings.HasPrefix(value, op) {
			comparator = value
			value = strings.TrimSpace(strings.TrimPrefix(value, op))
			break
		}
	}

	num, err := parseNumber(value)
	if err != nil {
		// Unparseable values degrade to an empty result rather than failing
		// the whole report.
		return report.AnalyteResult{Ref: ref}, nil
	}
	if comparator != "" && ref == nil {
		ref = &comparator
	}

	res := report.AnalyteResult{Value: &num, Ref: ref}
	if unit := normalizeUnit(rawUnit); unit != "" {
		res.Unit = &unit
	}
	return res, nil
}

// parseNumber handles decimal commas and thousands separators. When both a
// point and a comma appear, the rightmost one is the decimal separator.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}

	dot := strings.LastIndexByte(s, '.')
	comma := strings.LastIndexByte(s, ',')
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	return strconv.ParseFloat(s, 64)
}

func normalizeUnit(rawUnit *string) string {
	if rawUnit == nil {
		return ""
	}
	unit := strings.TrimSpace(*rawUnit)
	if unit == "" {
		return ""
	}
	if canon, ok := unitAliases[strings.ToLower(unit)]; ok {
		return canon
	}
	return unit
}

func normalizeRef(rawRef *string) *string {
	if rawRef == nil {
		return nil
	}
	ref := strings.TrimSpace(*rawRef)
	if ref == "" || placeholders[strings.ToLower(ref)] {
		return nil
	}
	return &ref
}
