package pipeline

import (
	"context"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/si-akram/invoice-docai/constants"
	"github.com/si-akram/invoice-docai/internal/docai"
	"github.com/si-akram/invoice-docai/internal/repository"
	"github.com/si-akram/invoice-docai/internal/validation"
)

// ObjectStore is the bucket-side collaborator of the pipeline.
type ObjectStore interface {
	Exists(ctx context.Context, fileName string) (bool, error)
	InputURI(fileName string) string
	ProcessedURI(fileName string) string
	FailedURI(fileName string) string
	ListInputFiles(ctx context.Context, ext string) ([]string, error)
	MoveToProcessed(ctx context.Context, fileName string) error
	MoveToFailed(ctx context.Context, fileName string) error
}

// Processor runs one document through extraction, validation, and
// persistence. Collaborators are interfaces so tests can run without GCP.
type Processor struct {
	Logger    *slog.Logger
	Cfg       validation.Config
	Extractor docai.Extractor
	Objects   ObjectStore
	Records   repository.ProcessingRepository
}

// Result is the per-document outcome returned to callers; the database row
// carries the same facts.
type Result struct {
	ProcessingID      int
	FileName          string
	ProcessingStatus  constants.ProcessingStatus
	DocumentStatus    constants.DocumentStatus
	MinConfidence     *float64
	Exception         *validation.ExceptionDetail
	TotalEntities     int
	UniqueEntityTypes int
	Validation        validation.Outcome
	Statistics        []validation.MultiValueStat
	Elapsed           time.Duration
}

// BatchSummary aggregates one ProcessAll run.
type BatchSummary struct {
	RunID            string
	Total            int
	ByDocumentStatus map[constants.DocumentStatus]int
	Errors           int
	Results          []*Result
	Elapsed          time.Duration
}

// ProcessFile runs the full pipeline for a single input file. The returned
// Result is populated even on failure; the error reports what went wrong
// after it has been recorded.
func (p *Processor) ProcessFile(ctx context.Context, fileName string) (*Result, error) {
	started := time.Now()
	base := path.Base(fileName)
	uri := p.Objects.InputURI(base)
	log := p.Logger.With("file_name", base)

	rec, err := p.Records.Start(ctx, base, uri)
	if err != nil {
		return nil, err
	}
	result := &Result{ProcessingID: rec.ID, FileName: base}
	log = log.With("processing_id", rec.ID)

	if err := p.process(ctx, log, base, uri, rec.ID, result); err != nil {
		p.recordFailure(ctx, log, base, rec.ID, result, err)
		result.Elapsed = time.Since(started)
		return result, err
	}

	// Moving the source out of the input folder is housekeeping; a failure
	// here must not undo an already recorded outcome.
	if err := p.Objects.MoveToProcessed(ctx, base); err != nil {
		log.Warn("could not move file to processed", "error", err)
	} else if err := p.Records.UpdateGCSPath(ctx, rec.ID, p.Objects.ProcessedURI(base)); err != nil {
		log.Warn("could not update gcs_path", "error", err)
	}

	result.Elapsed = time.Since(started)
	log.Info("document processed",
		"document_status", result.DocumentStatus,
		"entities", result.TotalEntities,
		"elapsed", result.Elapsed)
	return result, nil
}

func (p *Processor) process(ctx context.Context, log *slog.Logger, base, uri string, id int, result *Result) error {
	exists, err := p.Objects.Exists(ctx, base)
	if err != nil {
		return failf(constants.ReasonProcessingError, "stat input file: %w", err)
	}
	if !exists {
		return failf(constants.ReasonFileNotFound, "input file %s does not exist", uri)
	}

	extraction, err := p.Extractor.ProcessDocument(ctx, uri)
	if err != nil {
		return &pipelineError{reason: classifyExtractionError(err), err: err}
	}

	log.Debug("extraction complete", "entities", len(extraction.Entities))

	admitted := validation.Admitted(extraction.Entities)
	res := validation.Resolve(extraction.Entities)
	out := validation.Validate(res, p.Cfg)
	detail := validation.Classify(out, p.Cfg)
	ds := validation.DocumentStatusFor(out, p.Cfg)

	err = p.Records.FinalizeSuccess(ctx, id, repository.SuccessFinalization{
		DocumentStatus: ds,
		MinConfidence:  out.MinConfidence,
		Exception:      detail,
		RawOutput:      extraction.RawOutput,
		Entities:       admitted,
	})
	if err != nil {
		return failf(constants.ReasonProcessingError, "finalize %d: %w", id, err)
	}

	result.ProcessingStatus = constants.ProcessingStatusSuccess
	result.DocumentStatus = ds
	result.MinConfidence = out.MinConfidence
	result.Exception = detail
	result.TotalEntities = len(admitted)
	result.UniqueEntityTypes = len(res.Order)
	result.Validation = out
	result.Statistics = res.MultiValued()
	return nil
}

// recordFailure classifies the error, finalizes the run, and moves the file
// to the failed folder when it is still around to move.
func (p *Processor) recordFailure(ctx context.Context, log *slog.Logger, base string, id int, result *Result, cause error) {
	reason := ClassifyError(cause)
	ps, ds := validation.FailureStatuses(reason)
	detail := validation.FailureDetail(reason)

	result.ProcessingStatus = ps
	result.DocumentStatus = ds
	result.Exception = detail

	err := p.Records.FinalizeFailure(ctx, id, repository.FailureFinalization{
		DocumentStatus: ds,
		Exception:      detail,
		ErrorMessage:   cause.Error(),
	})
	if err != nil {
		log.Error("could not record failure", "error", err)
	}

	if reason == constants.ReasonFileNotFound {
		return
	}
	if err := p.Objects.MoveToFailed(ctx, base); err != nil {
		log.Warn("could not move file to failed", "error", err)
	} else if err := p.Records.UpdateGCSPath(ctx, id, p.Objects.FailedURI(base)); err != nil {
		log.Warn("could not update gcs_path", "error", err)
	}
}

// ProcessAll runs every matching input file through the pipeline. Documents
// are isolated: one failing file never stops the batch.
func (p *Processor) ProcessAll(ctx context.Context, ext string) (*BatchSummary, error) {
	started := time.Now()
	files, err := p.Objects.ListInputFiles(ctx, ext)
	if err != nil {
		return nil, err
	}

	summary := &BatchSummary{
		RunID:            uuid.New().String(),
		Total:            len(files),
		ByDocumentStatus: map[constants.DocumentStatus]int{},
	}
	log := p.Logger.With("run_id", summary.RunID)
	log.Info("batch started", "files", len(files), "ext", ext)

	for _, f := range files {
		result, err := p.ProcessFile(ctx, f)
		if err != nil {
			summary.Errors++
			log.Warn("file failed", "file_name", f, "error", err)
		}
		if result != nil {
			summary.Results = append(summary.Results, result)
			summary.ByDocumentStatus[result.DocumentStatus]++
		}
	}

	summary.Elapsed = time.Since(started)
	log.Info("batch finished",
		"total", summary.Total,
		"errors", summary.Errors,
		"elapsed", summary.Elapsed)
	return summary, nil
}

// Revalidate re-runs validation over the stored raw payload of a finalized
// run, without calling the extraction service again. Useful after a
// threshold change.
func (p *Processor) Revalidate(ctx context.Context, id int) (*Result, error) {
	rec, err := p.Records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.ProcessingStatus != constants.ProcessingStatusSuccess {
		return nil, failf(constants.ReasonProcessingError,
			"processing %d has status %s, only successful runs can be re-validated", id, rec.ProcessingStatus)
	}
	if len(rec.RawProcessorOutput) == 0 {
		return nil, failf(constants.ReasonProcessingError, "processing %d has no stored raw output", id)
	}

	records, err := docai.ParseRawOutput(rec.RawProcessorOutput, p.Logger)
	if err != nil {
		return nil, err
	}

	res := validation.Resolve(records)
	out := validation.Validate(res, p.Cfg)
	detail := validation.Classify(out, p.Cfg)
	ds := validation.DocumentStatusFor(out, p.Cfg)

	if err := p.Records.UpdateDocumentStatus(ctx, id, ds, out.MinConfidence, detail); err != nil {
		return nil, err
	}

	p.Logger.Info("document re-validated", "processing_id", id, "document_status", ds)
	return &Result{
		ProcessingID:      id,
		FileName:          rec.FileName,
		ProcessingStatus:  rec.ProcessingStatus,
		DocumentStatus:    ds,
		MinConfidence:     out.MinConfidence,
		Exception:         detail,
		TotalEntities:     len(validation.Admitted(records)),
		UniqueEntityTypes: len(res.Order),
		Validation:        out,
		Statistics:        res.MultiValued(),
	}, nil
}
