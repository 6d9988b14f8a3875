// Package extract runs the document-to-report pipeline: heuristic lab parsing
// first, model extraction as the fallback, then reconciliation into a
// key-complete report.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medparse/bloodlab/constants"
	"github.com/medparse/bloodlab/internal/catalog"
	"github.com/medparse/bloodlab/internal/common"
	"github.com/medparse/bloodlab/internal/labs"
	"github.com/medparse/bloodlab/internal/llm"
	"github.com/medparse/bloodlab/internal/metrics"
	"github.com/medparse/bloodlab/internal/normalize"
	"github.com/medparse/bloodlab/internal/report"
)

// Orchestrator coordinates lab detection, model fallback and reconciliation.
type Orchestrator struct {
	detector  *labs.Detector
	completer llm.Completer
	cat       *catalog.Catalog
	timeout   time.Duration
	logger    *slog.Logger
}

func NewOrchestrator(completer llm.Completer, timeout time.Duration, logger *slog.Logger) *Orchestrator {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		detector:  labs.NewDetector(),
		completer: completer,
		cat:       catalog.Default(),
		timeout:   timeout,
		logger:    logger,
	}
}

// Extract turns one or more recognized document texts into a single report.
// Multiple documents belong to the same patient visit and are merged before
// extraction. The heuristic lab parsers run first; the model is called only
// when no known layout matches.
func (o *Orchestrator) Extract(ctx context.Context, docs []string) (*report.Report, error) {
	rid := uuid.New().String()
	start := time.Now()

	text := strings.TrimSpace(strings.Join(docs, "\n\n"))
	if text == "" {
		return nil, fmt.Errorf("%w: empty document text", common.ErrInvalidInput)
	}

	o.logger.Info("extract.start", "req_id", rid, "docs", len(docs), "text_len", len(text))

	rows, labName, err := o.detector.Parse(text)
	switch {
	case err == nil:
		rep, err := o.fromRows(rows, text)
		if err != nil {
			return nil, err
		}
		metrics.ExtractionTotals.WithLabelValues("heuristic", "ok").Inc()
		metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
		o.logger.Info("extract.heuristic.ok",
			"req_id", rid, "lab", labName,
			"measured", rep.MeasuredCount(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return rep, nil
	case errors.Is(err, common.ErrNotBloodTest):
		metrics.ExtractionTotals.WithLabelValues("heuristic", "not_blood_test").Inc()
		o.logger.Warn("extract.not_blood_test", "req_id", rid, "lab", labName)
		return nil, err
	case errors.Is(err, common.ErrFormatMismatch):
		o.logger.Info("extract.fallback", "req_id", rid, "lab", labName)
	default:
		return nil, err
	}

	rep, err := o.fromModel(ctx, rid, text)
	if err != nil {
		metrics.ExtractionTotals.WithLabelValues("model", "error").Inc()
		return nil, err
	}
	metrics.ExtractionTotals.WithLabelValues("model", "ok").Inc()
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	o.logger.Info("extract.model.ok",
		"req_id", rid,
		"measured", rep.MeasuredCount(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rep, nil
}

// fromRows builds a report out of heuristic parser output. The first
// occurrence of a key wins when pages duplicate a measurement.
func (o *Orchestrator) fromRows(rows []labs.RawExtraction, text string) (*report.Report, error) {
	rep := report.New()
	for _, row := range rows {
		key, ok := o.cat.Resolve(row.MatchedName)
		if !ok {
			continue
		}
		if rep.Get(key) != nil {
			continue
		}
		res, err := normalize.Normalize(row.RawValue, row.RawUnit, row.RawRef)
		if err != nil {
			// A corrupt value degrades to unmeasured, it must not sink the
			// rest of the document.
			o.logger.Warn("extract.normalize_skip", "name", row.MatchedName, "error", err)
			continue
		}
		rep.Set(key, res)
	}
	applyMeta(rep, extractMeta(text))
	return rep, nil
}

// fromModel asks the completer for the closed-list JSON object and reconciles
// it into a report.
func (o *Orchestrator) fromModel(ctx context.Context, rid, text string) (*report.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	sys := buildSystemPrompt(o.cat.DisplayNames())
	user := buildUserPrompt(text)

	content, err := o.completer.Complete(ctx, sys, user)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", common.ErrExtractionTimeout, err)
		}
		return nil, fmt.Errorf("model completion: %w", err)
	}

	payload := []byte(stripFences(content))
	schema := llm.BuildReportJSONSchema(o.cat.DisplayNames())
	if err := llm.ValidateJSONAgainstSchema(schema, payload); err != nil {
		o.logger.Error("extract.schema_validation_failed", "req_id", rid, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrExtractionParse, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrExtractionParse, err)
	}

	rep := report.New()
	// Canonical display names first, then whatever else the model answered
	// with, sorted, so an alias duplicate never overrides the canonical key
	// and the result does not depend on map order. Unresolvable extras drop.
	names := o.cat.DisplayNames()
	prompted := make(map[string]bool, len(names))
	for _, name := range names {
		prompted[name] = true
	}
	var extras []string
	for name := range raw {
		switch name {
		case "ФИО", "Возраст", "Пол", "Дата":
			continue
		}
		if !prompted[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range names {
		o.setModelCell(rep, rid, name, raw[name])
	}
	for _, name := range extras {
		o.setModelCell(rep, rid, name, raw[name])
	}

	applyMeta(rep, modelMeta(raw).merge(extractMeta(text)))
	return rep, nil
}

// setModelCell reconciles one answered key into the report. The first cell
// that resolves to a key wins, unknown names and malformed cells are dropped.
func (o *Orchestrator) setModelCell(rep *report.Report, rid, name string, msg json.RawMessage) {
	if len(msg) == 0 || string(msg) == "null" {
		return
	}
	key, ok := o.cat.Resolve(name)
	if !ok {
		return
	}
	if rep.Get(key) != nil {
		return
	}
	var cell struct {
		Value json.RawMessage `json:"value"`
		Unit  *string         `json:"unit"`
		Ref   *string         `json:"ref"`
	}
	if err := json.Unmarshal(msg, &cell); err != nil {
		// Only keys outside the prompted list can carry an unvalidated
		// shape. They are extras and must not sink the answer.
		o.logger.Warn("extract.cell_skip", "req_id", rid, "name", name, "error", err)
		return
	}
	rawValue, ok := decodeValue(cell.Value)
	if !ok {
		return
	}
	res, err := normalize.Normalize(rawValue, cell.Unit, cell.Ref)
	if err != nil {
		o.logger.Warn("extract.normalize_skip", "req_id", rid, "name", name, "error", err)
		return
	}
	rep.Set(key, res)
}

// decodeValue accepts the number-or-string value cell and renders it as the
// raw string the normalizer expects.
func decodeValue(msg json.RawMessage) (string, bool) {
	if len(msg) == 0 || string(msg) == "null" {
		return "", false
	}
	var num float64
	if err := json.Unmarshal(msg, &num); err == nil {
		return strconv.FormatFloat(num, 'f', -1, 64), true
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return s, true
	}
	return "", false
}

// modelMeta reads the patient fields the model answered with.
func modelMeta(raw map[string]json.RawMessage) Meta {
	var m Meta
	m.Sex = constants.SexUnknown
	if msg, ok := raw["ФИО"]; ok {
		var s string
		if json.Unmarshal(msg, &s) == nil {
			m.FullName = strings.TrimSpace(s)
		}
	}
	if msg, ok := raw["Возраст"]; ok {
		var age int
		if json.Unmarshal(msg, &age) == nil && age > 0 && age < 130 {
			m.Age = &age
		} else {
			var s string
			if json.Unmarshal(msg, &s) == nil {
				if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n > 0 && n < 130 {
					m.Age = &n
				}
			}
		}
	}
	if msg, ok := raw["Пол"]; ok {
		var s string
		if json.Unmarshal(msg, &s) == nil {
			m.Sex = constants.ParseSex(s)
		}
	}
	if msg, ok := raw["Дата"]; ok {
		var s string
		if json.Unmarshal(msg, &s) == nil {
			m.Date = strings.TrimSpace(s)
		}
	}
	return m
}

func applyMeta(rep *report.Report, m Meta) {
	rep.FullName = m.FullName
	rep.Age = m.Age
	rep.Sex = m.Sex
	rep.Date = m.Date
}
