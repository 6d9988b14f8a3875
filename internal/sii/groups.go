package sii

import "strings"

// CancerGroup holds the index thresholds for one localization. Bounds are the
// upper edges of risk levels 1..4; anything above the last bound is level 5.
// A value sitting exactly on a bound belongs to the lower level.
type CancerGroup struct {
	ID     int
	Name   string
	Codes  []string // ICD-10 codes, subcodes like C22.0 allowed
	Bounds [4]float64
}

var groups = []CancerGroup{
	{ID: 1, Name: "Рак лёгкого", Codes: []string{"C34"}, Bounds: [4]float64{100, 600, 1000, 1500}},
	{ID: 2, Name: "Рак поджелудочной железы", Codes: []string{"C25"}, Bounds: [4]float64{100, 400, 700, 1000}},
	{ID: 3, Name: "Рак желудка", Codes: []string{"C16"}, Bounds: [4]float64{100, 400, 660, 1000}},
	{ID: 4, Name: "Рак пищевода", Codes: []string{"C15"}, Bounds: [4]float64{100, 400, 600, 900}},
	{ID: 5, Name: "Колоректальный рак", Codes: []string{"C18", "C19", "C20"}, Bounds: [4]float64{100, 340, 600, 900}},
	{ID: 6, Name: "Рак молочной железы", Codes: []string{"C50"}, Bounds: [4]float64{100, 400, 600, 800}},
	{ID: 7, Name: "Рак шейки матки", Codes: []string{"C53"}, Bounds: [4]float64{100, 400, 700, 900}},
	{ID: 8, Name: "Гепатоцеллюлярная карцинома", Codes: []string{"C22.0"}, Bounds: [4]float64{100, 330, 600, 900}},
	{ID: 9, Name: "Рак желчных протоков", Codes: []string{"C22.1", "C24"}, Bounds: [4]float64{100, 400, 600, 900}},
	{ID: 10, Name: "Рак предстательной железы", Codes: []string{"C61"}, Bounds: [4]float64{100, 500, 800, 1000}},
	{ID: 11, Name: "Рак мочевого пузыря", Codes: []string{"C67"}, Bounds: [4]float64{100, 500, 800, 1000}},
	{ID: 12, Name: "Рак почки", Codes: []string{"C64"}, Bounds: [4]float64{100, 400, 600, 1000}},
	{ID: 13, Name: "Опухоли головы и шеи", Codes: []string{
		"C00", "C01", "C02", "C03", "C04", "C05", "C06", "C07", "C08", "C09",
		"C10", "C12", "C13", "C14", "C30", "C31", "C32",
	}, Bounds: [4]float64{100, 450, 600, 800}},
	{ID: 14, Name: "Опухоли головного мозга", Codes: []string{"C71"}, Bounds: [4]float64{100, 400, 600, 900}},
	{ID: 15, Name: "Рак носоглотки", Codes: []string{"C11"}, Bounds: [4]float64{100, 450, 600, 800}},
	{ID: 16, Name: "Меланома кожи", Codes: []string{"C43"}, Bounds: [4]float64{100, 400, 600, 900}},
	{ID: 17, Name: "Саркома мягких тканей", Codes: []string{"C49"}, Bounds: [4]float64{100, 400, 600, 900}},
	{ID: 18, Name: "Рак яичка", Codes: []string{"C62"}, Bounds: [4]float64{100, 400, 700, 900}},
	{ID: 19, Name: "Рак тела матки", Codes: []string{"C54"}, Bounds: [4]float64{100, 400, 700, 900}},
	{ID: 20, Name: "Рак яичников", Codes: []string{"C56"}, Bounds: [4]float64{100, 400, 700, 900}},
}

// Groups returns the registered cancer groups in a stable order.
func Groups() []CancerGroup {
	return groups
}

// LookupGroup resolves an ICD-10 code. Exact matches, subcode included, win
// over matches on the code's category part (C22.1 resolves to the biliary
// group even though C22 alone would not).
func LookupGroup(icd10 string) (CancerGroup, bool) {
	code := strings.ToUpper(strings.TrimSpace(icd10))
	if code == "" {
		return CancerGroup{}, false
	}
	for _, g := range groups {
		for _, c := range g.Codes {
			if c == code {
				return g, true
			}
		}
	}
	category := code
	if i := strings.IndexByte(code, '.'); i > 0 {
		category = code[:i]
	}
	for _, g := range groups {
		for _, c := range g.Codes {
			if c == category {
				return g, true
			}
		}
	}
	return CancerGroup{}, false
}

// level classifies an index value inside the group's bounds.
func (g CancerGroup) level(index float64) RiskLevel {
	for i, upper := range g.Bounds {
		if index <= upper {
			return RiskLevel(i + 1)
		}
	}
	return RiskHigh
}
