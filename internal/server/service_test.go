package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medparse/bloodlab/constants"
	"github.com/medparse/bloodlab/internal/common"
	"github.com/medparse/bloodlab/internal/extract"
)

type fakeRecognizer struct {
	text string
	err  error
}

func (f *fakeRecognizer) Text(_ context.Context, _ string, _ []byte) (string, error) {
	return f.text, f.err
}

type noCallCompleter struct{ t *testing.T }

func (c *noCallCompleter) Complete(context.Context, string, string) (string, error) {
	c.t.Fatal("completer must not be called")
	return "", nil
}

const recognizedText = `ООО «ИНВИТРО»
Общий анализ крови
Гемоглобин 132 г/л 120 - 140
Тромбоциты 250 10^9/л 180 - 320`

func newTestService(t *testing.T, rec *fakeRecognizer) *Service {
	t.Helper()
	orch := extract.NewOrchestrator(&noCallCompleter{t: t}, time.Second, nil)
	return NewService(rec, orch, nil, nil)
}

func TestServiceProcess(t *testing.T) {
	svc := newTestService(t, &fakeRecognizer{text: recognizedText})

	rep, err := svc.Process(context.Background(), []UploadedFile{{Name: "report.pdf", Data: []byte("x")}})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	hb := rep.Get(constants.Hemoglobin)
	if hb == nil || hb.Value == nil || *hb.Value != 132 {
		t.Fatalf("hemoglobin = %+v, want 132", hb)
	}
}

func TestServiceRejectsUnsupportedExtension(t *testing.T) {
	svc := newTestService(t, &fakeRecognizer{text: recognizedText})

	_, err := svc.Process(context.Background(), []UploadedFile{{Name: "report.docx", Data: []byte("x")}})
	if !errors.Is(err, common.ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}

func TestServiceRejectsEmptyUpload(t *testing.T) {
	svc := newTestService(t, &fakeRecognizer{text: recognizedText})

	_, err := svc.Process(context.Background(), nil)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceRequiresBloodCountMarkers(t *testing.T) {
	// A recognized layout with only biochemistry must be rejected.
	svc := newTestService(t, &fakeRecognizer{text: "ООО «ИНВИТРО»\nГлюкоза 4,8 ммоль/л 3,3 - 5,5"})

	_, err := svc.Process(context.Background(), []UploadedFile{{Name: "report.pdf", Data: []byte("x")}})
	if !errors.Is(err, common.ErrNotBloodTest) {
		t.Fatalf("expected ErrNotBloodTest, got %v", err)
	}
}

func TestServiceRecognizerFailure(t *testing.T) {
	svc := newTestService(t, &fakeRecognizer{err: errors.New("upstream down")})

	_, err := svc.Process(context.Background(), []UploadedFile{{Name: "report.pdf", Data: []byte("x")}})
	if err == nil {
		t.Fatal("expected error from recognizer failure")
	}
}
