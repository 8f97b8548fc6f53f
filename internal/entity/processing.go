package entity

import (
	"encoding/json"
	"time"

	"github.com/si-akram/invoice-docai/constants"
)

// ProcessingRecord mirrors one document_processing row. One row exists per
// processing attempt; it is created when the pipeline starts and finalized
// exactly once when it ends, whichever way it ends.
type ProcessingRecord struct {
	ID                         int
	FileName                   string
	GCSPath                    string
	ProcessingStatus           constants.ProcessingStatus
	DocumentStatus             constants.DocumentStatus
	MinConfidence              *float64
	ExceptionReasonCode        *string
	ExceptionReasonDescription *string
	ExceptionEntities          json.RawMessage
	ErrorMessage               *string
	RawProcessorOutput         json.RawMessage
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// ExtractedEntityRow mirrors one extracted_entities row. Rows are inserted
// once per admitted EntityRecord and never mutated afterwards.
type ExtractedEntityRow struct {
	ID              int
	ProcessingID    int
	EntityName      string
	EntityValue     string
	ConfidenceScore *float64
	PageNumber      *int
	BoundingBox     json.RawMessage
	CreatedAt       time.Time
}

// Record converts a stored entity row back into the in-memory record shape
// used by the resolver, so past extractions can be re-validated.
func (r *ExtractedEntityRow) Record() EntityRecord {
	rec := EntityRecord{
		Name:       r.EntityName,
		Value:      r.EntityValue,
		PageNumber: r.PageNumber,
	}
	if r.ConfidenceScore != nil {
		rec.Confidence = *r.ConfidenceScore
	}
	if len(r.BoundingBox) > 0 {
		var box BoundingBox
		if err := json.Unmarshal(r.BoundingBox, &box); err == nil {
			rec.BoundingBox = &box
		}
	}
	return rec
}
