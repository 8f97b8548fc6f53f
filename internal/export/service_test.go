package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/si-akram/invoice-docai/constants"
	"github.com/si-akram/invoice-docai/internal/entity"
	"github.com/si-akram/invoice-docai/internal/repository"
)

type stubRepo struct {
	repository.ProcessingRepository
	records []*entity.ProcessingRecord
}

func (s *stubRepo) ListDocuments(ctx context.Context, filter repository.ListFilter) ([]*entity.ProcessingRecord, error) {
	return s.records, nil
}

func TestExportDocumentsXLSX(t *testing.T) {
	mc := 0.55
	code := "LOW_CONF"
	desc := "Low confidence entities (< 0.70): invoice_date"
	repo := &stubRepo{records: []*entity.ProcessingRecord{
		{
			ID:                         1,
			FileName:                   "inv-001.pdf",
			GCSPath:                    "gs://bucket/processed/inv-001.pdf",
			ProcessingStatus:           constants.ProcessingStatusSuccess,
			DocumentStatus:             constants.DocumentStatusPendingReview,
			MinConfidence:              &mc,
			ExceptionReasonCode:        &code,
			ExceptionReasonDescription: &desc,
			UpdatedAt:                  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:               2,
			FileName:         "inv-002.pdf",
			GCSPath:          "gs://bucket/processed/inv-002.pdf",
			ProcessingStatus: constants.ProcessingStatusSuccess,
			DocumentStatus:   constants.DocumentStatusSuccess,
		},
	}}

	data, err := NewService(repo, nil).ExportDocumentsXLSX(context.Background(), repository.ListFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Documents", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "File Name", get("A1"))
	assert.Equal(t, "Document Status", get("C1"))

	assert.Equal(t, "inv-001.pdf", get("A2"))
	assert.Equal(t, "PENDING_REVIEW", get("C2"))
	assert.Equal(t, "0.55", get("D2"))
	assert.Equal(t, "LOW_CONF", get("E2"))

	assert.Equal(t, "inv-002.pdf", get("A3"))
	assert.Equal(t, "SUCCESS", get("C3"))
	assert.Equal(t, "", get("D3"), "no minimum recorded")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
