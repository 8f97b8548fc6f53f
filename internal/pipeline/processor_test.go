package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/si-akram/invoice-docai/constants"
	"github.com/si-akram/invoice-docai/internal/docai"
	"github.com/si-akram/invoice-docai/internal/entity"
	"github.com/si-akram/invoice-docai/internal/repository"
	"github.com/si-akram/invoice-docai/internal/validation"
)

type fakeExtractor struct {
	result *docai.ExtractionResult
	err    error
	calls  int
}

func (f *fakeExtractor) ProcessDocument(ctx context.Context, gcsURI string) (*docai.ExtractionResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeStore struct {
	files          []string
	missing        map[string]bool
	movedProcessed []string
	movedFailed    []string
}

func (f *fakeStore) Exists(ctx context.Context, name string) (bool, error) {
	return !f.missing[name], nil
}
func (f *fakeStore) InputURI(name string) string     { return "gs://bucket/input/" + name }
func (f *fakeStore) ProcessedURI(name string) string { return "gs://bucket/processed/" + name }
func (f *fakeStore) FailedURI(name string) string    { return "gs://bucket/failed/" + name }
func (f *fakeStore) ListInputFiles(ctx context.Context, ext string) ([]string, error) {
	return f.files, nil
}
func (f *fakeStore) MoveToProcessed(ctx context.Context, name string) error {
	f.movedProcessed = append(f.movedProcessed, name)
	return nil
}
func (f *fakeStore) MoveToFailed(ctx context.Context, name string) error {
	f.movedFailed = append(f.movedFailed, name)
	return nil
}

type fakeRepo struct {
	nextID    int
	started   []string
	successes map[int]repository.SuccessFinalization
	failures  map[int]repository.FailureFinalization
	updated   map[int]constants.DocumentStatus
	gcsPaths  map[int]string
	records   map[int]*entity.ProcessingRecord
	rows      map[int][]*entity.ExtractedEntityRow
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		successes: map[int]repository.SuccessFinalization{},
		failures:  map[int]repository.FailureFinalization{},
		updated:   map[int]constants.DocumentStatus{},
		gcsPaths:  map[int]string{},
		records:   map[int]*entity.ProcessingRecord{},
		rows:      map[int][]*entity.ExtractedEntityRow{},
	}
}

func (f *fakeRepo) Start(ctx context.Context, fileName, gcsPath string) (*entity.ProcessingRecord, error) {
	f.nextID++
	f.started = append(f.started, fileName)
	rec := &entity.ProcessingRecord{
		ID:               f.nextID,
		FileName:         fileName,
		GCSPath:          gcsPath,
		ProcessingStatus: constants.ProcessingStatusProcessing,
		DocumentStatus:   constants.DocumentStatusPending,
	}
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeRepo) FinalizeSuccess(ctx context.Context, id int, fin repository.SuccessFinalization) error {
	f.successes[id] = fin
	return nil
}

func (f *fakeRepo) FinalizeFailure(ctx context.Context, id int, fin repository.FailureFinalization) error {
	f.failures[id] = fin
	return nil
}

func (f *fakeRepo) UpdateDocumentStatus(ctx context.Context, id int, ds constants.DocumentStatus, mc *float64, exc *validation.ExceptionDetail) error {
	f.updated[id] = ds
	return nil
}

func (f *fakeRepo) UpdateGCSPath(ctx context.Context, id int, gcsPath string) error {
	f.gcsPaths[id] = gcsPath
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int) (*entity.ProcessingRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return rec, nil
}

func (f *fakeRepo) LatestByFileName(ctx context.Context, fileName string) (*entity.ProcessingRecord, error) {
	return nil, errors.New("not found")
}

func (f *fakeRepo) ListDocuments(ctx context.Context, filter repository.ListFilter) ([]*entity.ProcessingRecord, error) {
	return nil, nil
}

func (f *fakeRepo) GetEntities(ctx context.Context, id int) ([]*entity.ExtractedEntityRow, error) {
	return f.rows[id], nil
}

func (f *fakeRepo) GetStats(ctx context.Context) (*repository.Stats, error) {
	return &repository.Stats{}, nil
}

func testProcessor(ex docai.Extractor, store *fakeStore, repo *fakeRepo) *Processor {
	return &Processor{
		Logger: slog.Default(),
		Cfg: validation.Config{
			RequiredEntities:    []string{"invoice_number", "vendor_name"},
			ConfidenceThreshold: 0.70,
		},
		Extractor: ex,
		Objects:   store,
		Records:   repo,
	}
}

func extractionOf(records ...entity.EntityRecord) *docai.ExtractionResult {
	raw, _ := json.Marshal(map[string]any{"entities": records})
	return &docai.ExtractionResult{Entities: records, RawOutput: raw}
}

func TestProcessFile_Success(t *testing.T) {
	store := &fakeStore{}
	repo := newFakeRepo()
	ex := &fakeExtractor{result: extractionOf(
		entity.EntityRecord{Name: "invoice_number", Value: "INV-1", Confidence: 0.95},
		entity.EntityRecord{Name: "vendor_name", Value: "Acme Corp", Confidence: 0.88},
	)}
	p := testProcessor(ex, store, repo)

	result, err := p.ProcessFile(context.Background(), "invoices/inv-001.pdf")
	require.NoError(t, err)

	assert.Equal(t, "inv-001.pdf", result.FileName)
	assert.Equal(t, constants.ProcessingStatusSuccess, result.ProcessingStatus)
	assert.Equal(t, constants.DocumentStatusSuccess, result.DocumentStatus)
	assert.Nil(t, result.Exception)
	assert.Equal(t, 2, result.TotalEntities)

	fin, ok := repo.successes[result.ProcessingID]
	require.True(t, ok, "run must be finalized as success")
	assert.Equal(t, constants.DocumentStatusSuccess, fin.DocumentStatus)
	assert.Len(t, fin.Entities, 2)
	assert.NotEmpty(t, fin.RawOutput)

	assert.Equal(t, []string{"inv-001.pdf"}, store.movedProcessed)
	assert.Equal(t, "gs://bucket/processed/inv-001.pdf", repo.gcsPaths[result.ProcessingID])
	assert.Empty(t, repo.failures)
}

func TestProcessFile_ExtractorError(t *testing.T) {
	store := &fakeStore{}
	repo := newFakeRepo()
	ex := &fakeExtractor{err: errors.New("processor exploded")}
	p := testProcessor(ex, store, repo)

	result, err := p.ProcessFile(context.Background(), "inv-002.pdf")
	require.Error(t, err)
	require.NotNil(t, result)

	assert.Equal(t, constants.ProcessingStatusFailed, result.ProcessingStatus)
	// The document verdict stays PENDING: validation never ran.
	assert.Equal(t, constants.DocumentStatusPending, result.DocumentStatus)
	require.NotNil(t, result.Exception)
	assert.Equal(t, constants.ReasonDocumentAIError, result.Exception.Reason)
	assert.Equal(t, "DOC_AI_ERR", result.Exception.Code)

	fin, ok := repo.failures[result.ProcessingID]
	require.True(t, ok)
	assert.Contains(t, fin.ErrorMessage, "processor exploded")
	assert.Equal(t, []string{"inv-002.pdf"}, store.movedFailed)
	assert.Empty(t, repo.successes)
}

func TestProcessFile_FileNotFound(t *testing.T) {
	store := &fakeStore{missing: map[string]bool{"ghost.pdf": true}}
	repo := newFakeRepo()
	ex := &fakeExtractor{}
	p := testProcessor(ex, store, repo)

	result, err := p.ProcessFile(context.Background(), "ghost.pdf")
	require.Error(t, err)

	// A missing source file fails both statuses.
	assert.Equal(t, constants.ProcessingStatusFailed, result.ProcessingStatus)
	assert.Equal(t, constants.DocumentStatusFailed, result.DocumentStatus)
	require.NotNil(t, result.Exception)
	assert.Equal(t, "FILE_ERR", result.Exception.Code)

	assert.Zero(t, ex.calls, "extraction must not run for a missing file")
	assert.Empty(t, store.movedFailed, "nothing to move when the file is absent")
}

func TestProcessFile_ValidationFailureStillSucceedsProcessing(t *testing.T) {
	store := &fakeStore{}
	repo := newFakeRepo()
	ex := &fakeExtractor{result: extractionOf(
		entity.EntityRecord{Name: "invoice_number", Value: "INV-3", Confidence: 0.95},
	)}
	p := testProcessor(ex, store, repo)

	result, err := p.ProcessFile(context.Background(), "inv-003.pdf")
	require.NoError(t, err, "a validation failure is a recorded verdict, not a pipeline error")

	assert.Equal(t, constants.ProcessingStatusSuccess, result.ProcessingStatus)
	assert.Equal(t, constants.DocumentStatusFailed, result.DocumentStatus)
	require.NotNil(t, result.Exception)
	assert.Equal(t, "MISS_ENT", result.Exception.Code)
	assert.Equal(t, []string{"vendor_name"}, result.Exception.Entities.Missing)
}

func TestProcessAll_IsolatesFailures(t *testing.T) {
	store := &fakeStore{
		files:   []string{"good.pdf", "ghost.pdf"},
		missing: map[string]bool{"ghost.pdf": true},
	}
	repo := newFakeRepo()
	ex := &fakeExtractor{result: extractionOf(
		entity.EntityRecord{Name: "invoice_number", Value: "INV-4", Confidence: 0.9},
		entity.EntityRecord{Name: "vendor_name", Value: "Acme", Confidence: 0.9},
	)}
	p := testProcessor(ex, store, repo)

	summary, err := p.ProcessAll(context.Background(), ".pdf")
	require.NoError(t, err)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Errors)
	assert.Len(t, summary.Results, 2)
	assert.Equal(t, 1, summary.ByDocumentStatus[constants.DocumentStatusSuccess])
	assert.Equal(t, 1, summary.ByDocumentStatus[constants.DocumentStatusFailed])
}

func TestRevalidate_UsesStoredRawOutput(t *testing.T) {
	repo := newFakeRepo()
	raw, _ := json.Marshal(map[string]any{"entities": []map[string]any{
		{"name": "invoice_number", "value": "INV-5", "confidence": 0.95},
		{"name": "vendor_name", "value": "Acme", "confidence": 0.65},
	}})
	repo.records[7] = &entity.ProcessingRecord{
		ID:                 7,
		FileName:           "inv-005.pdf",
		ProcessingStatus:   constants.ProcessingStatusSuccess,
		DocumentStatus:     constants.DocumentStatusPendingReview,
		RawProcessorOutput: raw,
	}
	ex := &fakeExtractor{}
	p := testProcessor(ex, &fakeStore{}, repo)

	result, err := p.Revalidate(context.Background(), 7)
	require.NoError(t, err)

	assert.Zero(t, ex.calls, "re-validation must not call the extraction service")
	assert.Equal(t, constants.DocumentStatusPendingReview, result.DocumentStatus)
	assert.Equal(t, constants.DocumentStatusPendingReview, repo.updated[7])
	require.NotNil(t, result.Exception)
	assert.Equal(t, "LOW_CONF", result.Exception.Code)
}

func TestSummarize_AggregatesStoredRows(t *testing.T) {
	repo := newFakeRepo()
	repo.records[9] = &entity.ProcessingRecord{
		ID:               9,
		FileName:         "inv-009.pdf",
		ProcessingStatus: constants.ProcessingStatusSuccess,
		DocumentStatus:   constants.DocumentStatusSuccess,
	}
	conf := func(v float64) *float64 { return &v }
	repo.rows[9] = []*entity.ExtractedEntityRow{
		{EntityName: "hsn_number", EntityValue: "8471", ConfidenceScore: conf(0.95)},
		{EntityName: "hsn_number", EntityValue: "8473", ConfidenceScore: conf(0.92)},
		{EntityName: "hsn_number", EntityValue: "8517", ConfidenceScore: conf(0.88)},
		{EntityName: "invoice_number", EntityValue: "INV-9", ConfidenceScore: conf(0.90)},
	}
	p := testProcessor(&fakeExtractor{}, &fakeStore{}, repo)

	s, err := p.Summarize(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, 4, s.TotalEntities)
	assert.Equal(t, 2, s.UniqueEntityTypes)
	require.Len(t, s.Entities, 2)

	hsn := s.Entities[0]
	assert.Equal(t, "hsn_number", hsn.Name)
	assert.Equal(t, 3, hsn.Count)
	assert.Equal(t, "8471", hsn.Best, "highest confidence value wins")
	assert.InDelta(t, 0.95, hsn.MaxConfidence, 1e-9)
	assert.InDelta(t, 0.88, hsn.MinConfidence, 1e-9)
	assert.InDelta(t, (0.95+0.92+0.88)/3, hsn.AvgConfidence, 1e-9)
	assert.Equal(t, []string{"8471", "8473", "8517"}, hsn.Values)

	require.Len(t, s.MultiValued, 1)
	assert.Equal(t, "hsn_number", s.MultiValued[0].Name)
	assert.Equal(t, 3, s.MultiValued[0].Count)
}

func TestRevalidate_RejectsFailedRuns(t *testing.T) {
	repo := newFakeRepo()
	repo.records[3] = &entity.ProcessingRecord{
		ID:               3,
		ProcessingStatus: constants.ProcessingStatusFailed,
		DocumentStatus:   constants.DocumentStatusPending,
	}
	p := testProcessor(&fakeExtractor{}, &fakeStore{}, repo)

	_, err := p.Revalidate(context.Background(), 3)
	assert.Error(t, err)
}
