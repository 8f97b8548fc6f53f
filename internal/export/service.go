package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/si-akram/invoice-docai/internal/repository"
)

// Service produces XLSX bytes from the processing table for review handoffs.
type Service struct {
	repo   repository.ProcessingRepository
	logger *slog.Logger
}

func NewService(repo repository.ProcessingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportDocumentsXLSX returns an XLSX workbook (as bytes) of processing runs
// matching the filter. Reviewers get one row per run with the exception
// details spelled out.
func (s *Service) ExportDocumentsXLSX(ctx context.Context, filter repository.ListFilter) ([]byte, error) {
	start := time.Now()

	recs, err := s.repo.ListDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"File Name",
		"Processing Status",
		"Document Status",
		"Min Confidence",
		"Exception Code",
		"Exception Description",
		"Error Message",
		"GCS Path",
		"Processed At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.FileName)
		write(2, string(r.ProcessingStatus))
		write(3, string(r.DocumentStatus))
		if r.MinConfidence != nil {
			write(4, fmt.Sprintf("%.2f", *r.MinConfidence))
		} else {
			write(4, "")
		}
		if r.ExceptionReasonCode != nil {
			write(5, *r.ExceptionReasonCode)
		}
		if r.ExceptionReasonDescription != nil {
			write(6, truncate(*r.ExceptionReasonDescription, 140))
		}
		if r.ErrorMessage != nil {
			write(7, truncate(*r.ErrorMessage, 140))
		}
		write(8, r.GCSPath)
		write(9, r.UpdatedAt.Format("2006-01-02 15:04:05"))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // file name
	_ = f.SetColWidth(sheet, "B", "C", 18) // statuses
	_ = f.SetColWidth(sheet, "D", "E", 14) // confidence, code
	_ = f.SetColWidth(sheet, "F", "G", 48) // descriptions
	_ = f.SetColWidth(sheet, "H", "H", 60) // path
	_ = f.SetColWidth(sheet, "I", "I", 20) // timestamp

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
