package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/medparse/bloodlab/constants"
	"github.com/medparse/bloodlab/internal/catalog"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

func TestMarshalKeyComplete(t *testing.T) {
	rep := New()
	rep.Set(constants.Hemoglobin, AnalyteResult{Value: f64(132), Unit: str("г/л")})
	rep.FullName = "Иванов Иван"
	age := 45
	rep.Age = &age
	rep.Sex = constants.Male
	rep.Date = "10.02.2024"

	data, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("unmarshal flat: %v", err)
	}
	for _, key := range catalog.Default().AllKeys() {
		if _, ok := flat[string(key)]; !ok {
			t.Fatalf("key %s missing from serialized report", key)
		}
	}
	if string(flat["vitamin_d"]) != "null" {
		t.Fatalf("unmeasured analyte serialized as %s, want null", flat["vitamin_d"])
	}
	if string(flat["full_name"]) != `"Иванов Иван"` {
		t.Fatalf("full_name = %s", flat["full_name"])
	}
	if string(flat["sex"]) != `"Male"` {
		t.Fatalf("sex = %s", flat["sex"])
	}
}

func TestMarshalOrderDeterministic(t *testing.T) {
	rep := New()
	rep.Set(constants.Glucose, AnalyteResult{Value: f64(4.8)})

	a, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Fatal("marshal output is not deterministic")
	}
	// hemoglobin is the first registry key and must come first
	if !strings.HasPrefix(string(a), `{"hemoglobin":`) {
		t.Fatalf("serialized report does not start with hemoglobin: %s", string(a)[:40])
	}
}

func TestUnmarshalRoundtrip(t *testing.T) {
	orig := New()
	orig.Set(constants.Hemoglobin, AnalyteResult{Value: f64(132), Unit: str("г/л"), Ref: str("120 - 140")})
	orig.Set(constants.LymphocytesAbs, AnalyteResult{Value: f64(2.1)})
	orig.FullName = "Петрова Анна"
	orig.Sex = constants.Female

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := New()
	if err := json.Unmarshal(data, got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	hb := got.Get(constants.Hemoglobin)
	if hb == nil || hb.Value == nil || *hb.Value != 132 || hb.Ref == nil || *hb.Ref != "120 - 140" {
		t.Fatalf("hemoglobin after roundtrip = %+v", hb)
	}
	if got.FullName != "Петрова Анна" || got.Sex != constants.Female {
		t.Fatalf("meta after roundtrip = %q %q", got.FullName, got.Sex)
	}
	if got.MeasuredCount() != 2 {
		t.Fatalf("measured count = %d, want 2", got.MeasuredCount())
	}
}

func TestUnmarshalIgnoresUnknownKeys(t *testing.T) {
	rep := New()
	if err := json.Unmarshal([]byte(`{"hemoglobin": {"value": 1, "unit": null, "ref": null}, "something_else": 5}`), rep); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rep.Get(constants.Hemoglobin) == nil {
		t.Fatal("hemoglobin not set")
	}
}

func TestHasCBCData(t *testing.T) {
	rep := New()
	if rep.HasCBCData() {
		t.Fatal("empty report reports CBC data")
	}
	rep.Set(constants.VitaminD, AnalyteResult{Value: f64(30)})
	if rep.HasCBCData() {
		t.Fatal("vitamin-only report reports CBC data")
	}
	rep.Set(constants.Platelets, AnalyteResult{Value: f64(250)})
	if !rep.HasCBCData() {
		t.Fatal("platelet count should count as CBC data")
	}
}

func TestSetIgnoresUnknownAndEmpty(t *testing.T) {
	rep := New()
	rep.Set(constants.AnalyteKey("nonexistent"), AnalyteResult{Value: f64(1)})
	if len(rep.Analytes) != catalog.Default().Len() {
		t.Fatal("unknown key changed the analyte map")
	}
	rep.Set(constants.Hemoglobin, AnalyteResult{})
	if rep.Get(constants.Hemoglobin) != nil {
		t.Fatal("empty result should leave the key unmeasured")
	}
}
