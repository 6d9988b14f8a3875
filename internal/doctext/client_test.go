package doctext

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientText(t *testing.T) {
	var gotLanguage, gotFilename string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recognize" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotLanguage = r.FormValue("language")
		if fhs := r.MultipartForm.File["file"]; len(fhs) == 1 {
			gotFilename = fhs[0].Filename
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "Гемоглобин 132\r\n\r\n\r\nКонец"})
	}))
	defer ts.Close()

	c := NewClient(Config{BaseURL: ts.URL, Language: "rus+kaz"}, nil)
	text, err := c.Text(context.Background(), "report.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Text error: %v", err)
	}
	if text != "Гемоглобин 132\n\nКонец" {
		t.Fatalf("text = %q", text)
	}
	if gotLanguage != "rus+kaz" {
		t.Fatalf("language = %q", gotLanguage)
	}
	if gotFilename != "report.pdf" {
		t.Fatalf("filename = %q", gotFilename)
	}
}

func TestClientTextUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewClient(Config{BaseURL: ts.URL}, nil)
	if _, err := c.Text(context.Background(), "report.pdf", []byte("x")); err == nil {
		t.Fatal("expected error from upstream failure")
	}
}
