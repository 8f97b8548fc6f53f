package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/si-akram/invoice-docai/constants"
	"github.com/si-akram/invoice-docai/gen/ent"
	"github.com/si-akram/invoice-docai/gen/ent/documentprocessing"
	"github.com/si-akram/invoice-docai/gen/ent/extractedentity"
	"github.com/si-akram/invoice-docai/internal/entity"
	"github.com/si-akram/invoice-docai/internal/validation"
)

// SuccessFinalization closes a run whose extraction call succeeded. The
// document status carries the validation verdict; Exception is nil for a
// clean document.
type SuccessFinalization struct {
	DocumentStatus constants.DocumentStatus
	MinConfidence  *float64
	Exception      *validation.ExceptionDetail
	RawOutput      json.RawMessage
	Entities       []entity.EntityRecord
}

// FailureFinalization closes a run that never produced a usable extraction.
type FailureFinalization struct {
	DocumentStatus constants.DocumentStatus
	Exception      *validation.ExceptionDetail
	ErrorMessage   string
}

// ListFilter narrows ListDocuments. Zero values mean "any".
type ListFilter struct {
	ProcessingStatus constants.ProcessingStatus
	DocumentStatus   constants.DocumentStatus
	FileName         string
	Limit            int
}

// Stats aggregates the processing table for reporting.
type Stats struct {
	Total            int
	ByProcessing     map[constants.ProcessingStatus]int
	ByDocument       map[constants.DocumentStatus]int
	ByExceptionCode  map[string]int
	AvgMinConfidence *float64
}

type ProcessingRepository interface {
	Start(ctx context.Context, fileName, gcsPath string) (*entity.ProcessingRecord, error)
	FinalizeSuccess(ctx context.Context, id int, fin SuccessFinalization) error
	FinalizeFailure(ctx context.Context, id int, fin FailureFinalization) error
	UpdateDocumentStatus(ctx context.Context, id int, ds constants.DocumentStatus, minConfidence *float64, exc *validation.ExceptionDetail) error
	UpdateGCSPath(ctx context.Context, id int, gcsPath string) error
	GetByID(ctx context.Context, id int) (*entity.ProcessingRecord, error)
	LatestByFileName(ctx context.Context, fileName string) (*entity.ProcessingRecord, error)
	ListDocuments(ctx context.Context, filter ListFilter) ([]*entity.ProcessingRecord, error)
	GetEntities(ctx context.Context, processingID int) ([]*entity.ExtractedEntityRow, error)
	GetStats(ctx context.Context) (*Stats, error)
}

type processingRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewProcessingRepository(entc *ent.Client, log *slog.Logger) ProcessingRepository {
	return &processingRepo{ent: entc, log: log}
}

func (r *processingRepo) Start(ctx context.Context, fileName, gcsPath string) (*entity.ProcessingRecord, error) {
	row, err := r.ent.DocumentProcessing.
		Create().
		SetFileName(fileName).
		SetGcsPath(gcsPath).
		SetProcessingStatus(string(constants.ProcessingStatusProcessing)).
		SetDocumentStatus(string(constants.DocumentStatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("document_processing start failed", "file_name", fileName, "err", err)
		return nil, err
	}
	r.log.Info("document_processing started", "id", row.ID, "file_name", fileName)
	return toProcessingRecord(row), nil
}

// FinalizeSuccess writes the run outcome and the extracted entity rows in one
// transaction so a half-finalized run never becomes visible.
func (r *processingRepo) FinalizeSuccess(ctx context.Context, id int, fin SuccessFinalization) error {
	if err := constants.CheckStatusPair(constants.ProcessingStatusSuccess, fin.DocumentStatus); err != nil {
		return err
	}

	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	upd := tx.DocumentProcessing.
		UpdateOneID(id).
		SetProcessingStatus(string(constants.ProcessingStatusSuccess)).
		SetDocumentStatus(string(fin.DocumentStatus)).
		SetNillableMinConfidence(fin.MinConfidence).
		SetUpdatedAt(time.Now())
	if fin.RawOutput != nil {
		upd.SetRawProcessorOutput(fin.RawOutput)
	}
	if err := applyException(upd, fin.Exception); err != nil {
		return rollback(tx, err)
	}
	if _, err := upd.Save(ctx); err != nil {
		return rollback(tx, fmt.Errorf("update document_processing %d: %w", id, err))
	}

	if len(fin.Entities) > 0 {
		bulk := make([]*ent.ExtractedEntityCreate, 0, len(fin.Entities))
		for _, rec := range fin.Entities {
			c := tx.ExtractedEntity.
				Create().
				SetProcessingID(id).
				SetEntityName(rec.Name).
				SetEntityValue(rec.Value).
				SetConfidenceScore(rec.Confidence).
				SetNillablePageNumber(rec.PageNumber)
			if rec.BoundingBox != nil {
				b, err := json.Marshal(rec.BoundingBox)
				if err != nil {
					return rollback(tx, fmt.Errorf("encode bounding box: %w", err))
				}
				c.SetBoundingBox(b)
			}
			bulk = append(bulk, c)
		}
		if _, err := tx.ExtractedEntity.CreateBulk(bulk...).Save(ctx); err != nil {
			return rollback(tx, fmt.Errorf("insert extracted_entities for %d: %w", id, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit finalize %d: %w", id, err)
	}
	r.log.Info("document_processing finalized",
		"id", id, "document_status", fin.DocumentStatus, "entities", len(fin.Entities))
	return nil
}

func (r *processingRepo) FinalizeFailure(ctx context.Context, id int, fin FailureFinalization) error {
	if err := constants.CheckStatusPair(constants.ProcessingStatusFailed, fin.DocumentStatus); err != nil {
		return err
	}

	upd := r.ent.DocumentProcessing.
		UpdateOneID(id).
		SetProcessingStatus(string(constants.ProcessingStatusFailed)).
		SetDocumentStatus(string(fin.DocumentStatus)).
		SetErrorMessage(fin.ErrorMessage).
		SetUpdatedAt(time.Now())
	if err := applyException(upd, fin.Exception); err != nil {
		return err
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("document_processing finalize(FAILED) failed", "id", id, "err", err)
		return err
	}
	r.log.Warn("document_processing failed", "id", id, "document_status", fin.DocumentStatus, "error", fin.ErrorMessage)
	return nil
}

// UpdateDocumentStatus rewrites the validation verdict of an already
// finalized run, used when a stored raw payload is re-validated under a
// different threshold.
func (r *processingRepo) UpdateDocumentStatus(ctx context.Context, id int, ds constants.DocumentStatus, minConfidence *float64, exc *validation.ExceptionDetail) error {
	upd := r.ent.DocumentProcessing.
		UpdateOneID(id).
		SetDocumentStatus(string(ds)).
		SetNillableMinConfidence(minConfidence).
		SetUpdatedAt(time.Now())
	if err := applyException(upd, exc); err != nil {
		return err
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("document_status update failed", "id", id, "err", err)
		return err
	}
	r.log.Info("document_status updated", "id", id, "document_status", ds)
	return nil
}

func (r *processingRepo) UpdateGCSPath(ctx context.Context, id int, gcsPath string) error {
	_, err := r.ent.DocumentProcessing.
		UpdateOneID(id).
		SetGcsPath(gcsPath).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("gcs_path update failed", "id", id, "err", err)
		return err
	}
	return nil
}

func (r *processingRepo) GetByID(ctx context.Context, id int) (*entity.ProcessingRecord, error) {
	row, err := r.ent.DocumentProcessing.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProcessingRecord(row), nil
}

func (r *processingRepo) LatestByFileName(ctx context.Context, fileName string) (*entity.ProcessingRecord, error) {
	row, err := r.ent.DocumentProcessing.
		Query().
		Where(documentprocessing.FileName(fileName)).
		Order(ent.Desc(documentprocessing.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return toProcessingRecord(row), nil
}

func (r *processingRepo) ListDocuments(ctx context.Context, filter ListFilter) ([]*entity.ProcessingRecord, error) {
	q := r.ent.DocumentProcessing.Query()
	if filter.ProcessingStatus != "" {
		q = q.Where(documentprocessing.ProcessingStatus(string(filter.ProcessingStatus)))
	}
	if filter.DocumentStatus != "" {
		q = q.Where(documentprocessing.DocumentStatus(string(filter.DocumentStatus)))
	}
	if filter.FileName != "" {
		q = q.Where(documentprocessing.FileNameContains(filter.FileName))
	}
	q = q.Order(ent.Desc(documentprocessing.FieldCreatedAt))
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]*entity.ProcessingRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toProcessingRecord(row))
	}
	return records, nil
}

func (r *processingRepo) GetEntities(ctx context.Context, processingID int) ([]*entity.ExtractedEntityRow, error) {
	rows, err := r.ent.ExtractedEntity.
		Query().
		Where(extractedentity.ProcessingID(processingID)).
		Order(ent.Asc(extractedentity.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ExtractedEntityRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityRow(row))
	}
	return out, nil
}

// GetStats aggregates counts in Go rather than SQL; the table is small
// enough and this keeps the query portable across Postgres and SQLite.
func (r *processingRepo) GetStats(ctx context.Context) (*Stats, error) {
	rows, err := r.ent.DocumentProcessing.Query().All(ctx)
	if err != nil {
		return nil, err
	}
	stats := &Stats{
		Total:           len(rows),
		ByProcessing:    map[constants.ProcessingStatus]int{},
		ByDocument:      map[constants.DocumentStatus]int{},
		ByExceptionCode: map[string]int{},
	}
	var sum float64
	var n int
	for _, row := range rows {
		stats.ByProcessing[constants.ProcessingStatus(row.ProcessingStatus)]++
		stats.ByDocument[constants.DocumentStatus(row.DocumentStatus)]++
		if row.ExceptionReasonCode != nil && *row.ExceptionReasonCode != "" {
			stats.ByExceptionCode[*row.ExceptionReasonCode]++
		}
		if row.MinConfidence != nil {
			sum += *row.MinConfidence
			n++
		}
	}
	if n > 0 {
		avg := sum / float64(n)
		stats.AvgMinConfidence = &avg
	}
	return stats, nil
}

// applyException writes the exception triple onto an update builder, or
// clears it when detail is nil so re-validation can lift an old exception.
func applyException(upd *ent.DocumentProcessingUpdateOne, detail *validation.ExceptionDetail) error {
	if detail == nil {
		upd.ClearExceptionReasonCode().
			ClearExceptionReasonDescription().
			ClearExceptionEntities()
		return nil
	}
	payload, err := json.Marshal(detail.Entities)
	if err != nil {
		return fmt.Errorf("encode exception entities: %w", err)
	}
	upd.SetExceptionReasonCode(detail.Code).
		SetExceptionReasonDescription(detail.Description).
		SetExceptionEntities(payload)
	return nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}

func toProcessingRecord(row *ent.DocumentProcessing) *entity.ProcessingRecord {
	return &entity.ProcessingRecord{
		ID:                         row.ID,
		FileName:                   row.FileName,
		GCSPath:                    row.GcsPath,
		ProcessingStatus:           constants.ProcessingStatus(row.ProcessingStatus),
		DocumentStatus:             constants.DocumentStatus(row.DocumentStatus),
		MinConfidence:              row.MinConfidence,
		ExceptionReasonCode:        row.ExceptionReasonCode,
		ExceptionReasonDescription: row.ExceptionReasonDescription,
		ExceptionEntities:          row.ExceptionEntities,
		ErrorMessage:               row.ErrorMessage,
		RawProcessorOutput:         row.RawProcessorOutput,
		CreatedAt:                  row.CreatedAt,
		UpdatedAt:                  row.UpdatedAt,
	}
}

func toEntityRow(row *ent.ExtractedEntity) *entity.ExtractedEntityRow {
	return &entity.ExtractedEntityRow{
		ID:              row.ID,
		ProcessingID:    row.ProcessingID,
		EntityName:      row.EntityName,
		EntityValue:     row.EntityValue,
		ConfidenceScore: row.ConfidenceScore,
		PageNumber:      row.PageNumber,
		BoundingBox:     row.BoundingBox,
		CreatedAt:       row.CreatedAt,
	}
}
