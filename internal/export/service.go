// Package export renders extracted reports as XLSX workbooks.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/medparse/bloodlab/internal/catalog"
	"github.com/medparse/bloodlab/internal/report"
)

// Service produces XLSX bytes for extracted reports.
type Service struct {
	cat    *catalog.Catalog
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cat: catalog.Default(), logger: logger}
}

// ReportXLSX returns an XLSX workbook with the patient block on top and one
// row per measured analyte, in registry order.
func (s *Service) ReportXLSX(rep *report.Report) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Blood test"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	defaultSheet := "Sheet1"
	if idx, _ := f.GetSheetIndex(defaultSheet); idx != -1 && defaultSheet != sheet {
		_ = f.DeleteSheet(defaultSheet)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "ФИО")
	write(2, 1, rep.FullName)
	write(1, 2, "Возраст")
	if rep.Age != nil {
		write(2, 2, *rep.Age)
	}
	write(1, 3, "Пол")
	write(2, 3, string(rep.Sex))
	write(1, 4, "Дата")
	write(2, 4, rep.Date)

	headers := []string{"Показатель", "Значение", "Ед. изм.", "Референсные значения"}
	const headerRow = 6
	for i, h := range headers {
		write(i+1, headerRow, h)
	}

	row := headerRow + 1
	measured := 0
	for _, entry := range s.cat.Entries() {
		res := rep.Get(entry.Key)
		if res == nil || res.Value == nil {
			continue
		}
		write(1, row, entry.Display)
		write(2, row, *res.Value)
		if res.Unit != nil {
			write(3, row, *res.Unit)
		}
		if res.Ref != nil {
			write(4, row, *res.Ref)
		}
		row++
		measured++
	}

	_ = f.SetColWidth(sheet, "A", "A", 36)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	_ = f.SetColWidth(sheet, "D", "D", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", measured,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
