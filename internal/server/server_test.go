package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medparse/bloodlab/constants"
	"github.com/medparse/bloodlab/internal/common"
	"github.com/medparse/bloodlab/internal/export"
	"github.com/medparse/bloodlab/internal/report"
)

type fakeProcessor struct {
	rep   *report.Report
	err   error
	files []UploadedFile
}

func (f *fakeProcessor) Process(_ context.Context, files []UploadedFile) (*report.Report, error) {
	f.files = files
	if f.err != nil {
		return nil, f.err
	}
	return f.rep, nil
}

func newTestServer(p Processor) *Server {
	return New(common.ServerConfig{Addr: ":0"}, p, export.NewService(nil), nil)
}

func sampleReport() *report.Report {
	f := func(v float64) *float64 { return &v }
	rep := report.New()
	rep.Set(constants.Hemoglobin, report.AnalyteResult{Value: f(132)})
	rep.Set(constants.Platelets, report.AnalyteResult{Value: f(250)})
	rep.FullName = "Иванов Иван"
	return rep
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &body, mw.FormDataContentType()
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&fakeProcessor{rep: sampleReport()})
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestBloodTestsUpload(t *testing.T) {
	fp := &fakeProcessor{rep: sampleReport()}
	srv := newTestServer(fp)

	body, contentType := multipartUpload(t, "files", "report.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/v1/blood-tests", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if len(fp.files) != 1 || fp.files[0].Name != "report.pdf" {
		t.Fatalf("processor received %+v", fp.files)
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &flat); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := flat["hemoglobin"]; !ok {
		t.Fatal("hemoglobin key missing from response")
	}
	if string(flat["full_name"]) != `"Иванов Иван"` {
		t.Fatalf("full_name = %s", flat["full_name"])
	}
}

func TestBloodTestsErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not a blood test", common.ErrNotBloodTest, http.StatusUnprocessableEntity},
		{"unsupported file", common.ErrUnsupportedFile, http.StatusUnsupportedMediaType},
		{"extraction timeout", common.ErrExtractionTimeout, http.StatusGatewayTimeout},
		{"extraction parse", common.ErrExtractionParse, http.StatusBadGateway},
		{"invalid input", common.ErrInvalidInput, http.StatusBadRequest},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(&fakeProcessor{err: fmt.Errorf("wrapped: %w", tt.err)})
			body, contentType := multipartUpload(t, "files", "report.pdf", []byte("x"))
			req := httptest.NewRequest(http.MethodPost, "/v1/blood-tests", body)
			req.Header.Set("Content-Type", contentType)
			rr := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rr, req)
			if rr.Code != tt.want {
				t.Fatalf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestSIIEndpoint(t *testing.T) {
	srv := newTestServer(&fakeProcessor{rep: sampleReport()})

	tests := []struct {
		name     string
		body     string
		want     int
		wantSII  float64
		checkSII bool
	}{
		{"ok", `{"neutrophils_abs":4,"platelets":250,"lymphocytes_abs":2,"cancer_type":"C34"}`, http.StatusOK, 500, true},
		{"zero lymphocytes", `{"neutrophils_abs":4,"platelets":250,"lymphocytes_abs":0,"cancer_type":"C34"}`, http.StatusUnprocessableEntity, 0, false},
		{"missing field", `{"platelets":250,"lymphocytes_abs":2,"cancer_type":"C34"}`, http.StatusBadRequest, 0, false},
		{"unknown cancer type", `{"neutrophils_abs":4,"platelets":250,"lymphocytes_abs":2,"cancer_type":"Z99"}`, http.StatusBadRequest, 0, false},
		{"malformed json", `{`, http.StatusBadRequest, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/sii", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rr, req)
			if rr.Code != tt.want {
				t.Fatalf("status = %d, want %d, body %s", rr.Code, tt.want, rr.Body.String())
			}
			if tt.checkSII {
				var res struct {
					SII   float64 `json:"sii"`
					Level int     `json:"level"`
				}
				if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if res.SII != tt.wantSII {
					t.Fatalf("sii = %v, want %v", res.SII, tt.wantSII)
				}
				if res.Level != 2 {
					t.Fatalf("level = %d, want 2", res.Level)
				}
			}
		})
	}
}

func TestCancerTypesEndpoint(t *testing.T) {
	srv := newTestServer(&fakeProcessor{rep: sampleReport()})
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/cancer-types", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var items []struct {
		ID    int      `json:"id"`
		Name  string   `json:"name"`
		Codes []string `json:"icd10_codes"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 20 {
		t.Fatalf("got %d cancer types, want 20", len(items))
	}
}

func TestExportEndpoint(t *testing.T) {
	srv := newTestServer(&fakeProcessor{rep: sampleReport()})

	payload, err := json.Marshal(sampleReport())
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/blood-tests/export", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("content type = %q", got)
	}
	if rr.Body.Len() == 0 {
		t.Fatal("empty workbook")
	}
}
