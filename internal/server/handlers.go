package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/medparse/bloodlab/internal/common"
	"github.com/medparse/bloodlab/internal/metrics"
	"github.com/medparse/bloodlab/internal/report"
	"github.com/medparse/bloodlab/internal/sii"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleBloodTests accepts one or more report files as multipart form data
// under the "files" field and answers with the extracted report.
func (s *Server) handleBloodTests(w http.ResponseWriter, r *http.Request) {
	files, err := readUploads(r)
	if err != nil {
		respondError(w, err)
		return
	}
	rep, err := s.processor.Process(r.Context(), files)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rep)
}

// handleBloodTestsExport accepts a previously extracted report as JSON and
// answers with an XLSX rendition.
func (s *Server) handleBloodTestsExport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, fmt.Errorf("%w: read body: %v", common.ErrInvalidInput, err))
		return
	}
	rep := report.New()
	if err := rep.UnmarshalJSON(body); err != nil {
		respondError(w, fmt.Errorf("%w: %v", common.ErrInvalidInput, err))
		return
	}
	data, err := s.exporter.ReportXLSX(rep)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="blood_test.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type siiRequest struct {
	NeutrophilsAbs *float64 `json:"neutrophils_abs"`
	Platelets      *float64 `json:"platelets"`
	LymphocytesAbs *float64 `json:"lymphocytes_abs"`
	CancerType     string   `json:"cancer_type"`
}

// handleSII computes the index from explicit counts.
func (s *Server) handleSII(w http.ResponseWriter, r *http.Request) {
	var req siiRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.NeutrophilsAbs == nil || req.Platelets == nil || req.LymphocytesAbs == nil {
		respondError(w, fmt.Errorf("%w: neutrophils_abs, platelets and lymphocytes_abs are required", common.ErrInvalidInput))
		return
	}
	res, err := sii.Compute(*req.NeutrophilsAbs, *req.Platelets, *req.LymphocytesAbs, req.CancerType)
	if err != nil {
		respondError(w, err)
		return
	}
	metrics.SIIComputedTotals.WithLabelValues(res.Level.String()).Inc()
	respondJSON(w, http.StatusOK, res)
}

type cancerTypeItem struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Codes []string `json:"icd10_codes"`
}

// handleCancerTypes lists the supported localizations.
func (s *Server) handleCancerTypes(w http.ResponseWriter, _ *http.Request) {
	groups := sii.Groups()
	items := make([]cancerTypeItem, len(groups))
	for i, g := range groups {
		items[i] = cancerTypeItem{ID: g.ID, Name: g.Name, Codes: g.Codes}
	}
	respondJSON(w, http.StatusOK, items)
}

func readUploads(r *http.Request) ([]UploadedFile, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, fmt.Errorf("%w: parse multipart form: %v", common.ErrInvalidInput, err)
	}
	if r.MultipartForm == nil {
		return nil, fmt.Errorf("%w: multipart form expected", common.ErrInvalidInput)
	}
	var files []UploadedFile
	for _, field := range []string{"files", "file"} {
		for _, fh := range r.MultipartForm.File[field] {
			f, err := fh.Open()
			if err != nil {
				return nil, fmt.Errorf("%w: open upload %s: %v", common.ErrInvalidInput, fh.Filename, err)
			}
			data, err := io.ReadAll(f)
			_ = f.Close()
			if err != nil {
				return nil, fmt.Errorf("%w: read upload %s: %v", common.ErrInvalidInput, fh.Filename, err)
			}
			files = append(files, UploadedFile{Name: fh.Filename, Data: data})
		}
	}
	return files, nil
}

func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", common.ErrInvalidInput, err)
	}
	if err := unmarshalStrict(body, v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	return nil
}
