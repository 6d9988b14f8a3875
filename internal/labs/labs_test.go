package labs

import (
	"errors"
	"testing"

	"github.com/medparse/bloodlab/internal/common"
)

const invitroReport = `ООО «ИНВИТРО»
Общий анализ крови
Пациент: Иванов Иван Иванович
Гемоглобин 132 г/л 120 - 140
Лейкоциты 5,5 10^9/л 4,0 - 9,0
Тромбоциты 250 10^9/л 180 - 320
СОЭ 10 мм/ч 2 - 15
Глюкоза 4,8 ммоль/л 3,3 - 5,5`

const olympReport = `КДЛ ОЛИМП
Результаты исследования
Гемоглобин 140 г/л 130 - 160
Эритроциты 4,7 10^12/л 4,0 - 5,0`

const invivoCovidReport = `ИНВИВО
Исследование: ПЦР РНК SARS-CoV-2
Результат: не обнаружено`

const invivoBloodReport = `ИНВИВО
Общий анализ крови
Гемоглобин 118 г/л 120 - 140
Лимфоциты, абс. 2,1 10^9/л 1,0 - 3,0`

func TestDetectorOrder(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLab string
	}{
		{"invitro", invitroReport, "invitro"},
		{"olymp", olympReport, "olymp"},
		{"invivo", invivoBloodReport, "invivo"},
	}
	d := NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := d.Detect(tt.text)
			if !ok {
				t.Fatal("no parser matched")
			}
			if p.Name() != tt.wantLab {
				t.Fatalf("detected %s, want %s", p.Name(), tt.wantLab)
			}
		})
	}
}

func TestDetectorUnknownFormat(t *testing.T) {
	_, _, err := NewDetector().Parse("Поликлиника №1\nГемоглобин 132 г/л")
	if !errors.Is(err, common.ErrFormatMismatch) {
		t.Fatalf("expected ErrFormatMismatch, got %v", err)
	}
}

func TestInvitroExtract(t *testing.T) {
	rows, err := NewInvitro().Extract(invitroReport)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("extracted %d rows, want 5", len(rows))
	}

	got := map[string]RawExtraction{}
	for _, r := range rows {
		got[r.MatchedName] = r
	}
	hb, ok := got["Гемоглобин"]
	if !ok {
		t.Fatal("hemoglobin row missing")
	}
	if hb.RawValue != "132" {
		t.Fatalf("hemoglobin raw value = %q, want 132", hb.RawValue)
	}
	if hb.RawUnit == nil || *hb.RawUnit != "г/л" {
		t.Fatalf("hemoglobin raw unit = %v, want г/л", hb.RawUnit)
	}
	if hb.RawRef == nil || *hb.RawRef != "120 - 140" {
		t.Fatalf("hemoglobin raw ref = %v, want 120 - 140", hb.RawRef)
	}

	wbc := got["Лейкоциты"]
	if wbc.RawValue != "5,5" {
		t.Fatalf("wbc raw value = %q, want 5,5", wbc.RawValue)
	}
}

func TestInvitroNoMeasurements(t *testing.T) {
	_, err := NewInvitro().Extract("ООО «ИНВИТРО»\nСчёт на оплату услуг")
	if !errors.Is(err, common.ErrFormatMismatch) {
		t.Fatalf("expected ErrFormatMismatch, got %v", err)
	}
}

func TestInVivoRejectsNonBloodDocuments(t *testing.T) {
	_, err := NewInVivo().Extract(invivoCovidReport)
	if !errors.Is(err, common.ErrNotBloodTest) {
		t.Fatalf("expected ErrNotBloodTest, got %v", err)
	}
}

func TestInVivoExtract(t *testing.T) {
	rows, err := NewInVivo().Extract(invivoBloodReport)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("extracted %d rows, want 2", len(rows))
	}
}

func TestScanLinesFirstOccurrenceWins(t *testing.T) {
	text := `ООО «ИНВИТРО»
Гемоглобин 132 г/л
Гемоглобин 99 г/л`
	rows, err := NewInvitro().Extract(text)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("extracted %d rows, want 1", len(rows))
	}
	if rows[0].RawValue != "132" {
		t.Fatalf("raw value = %q, want first occurrence 132", rows[0].RawValue)
	}
}
