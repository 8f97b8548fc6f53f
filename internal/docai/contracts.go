package docai

import (
	"context"
	"encoding/json"

	"github.com/si-akram/invoice-docai/internal/entity"
)

// Extractor is the document-extraction collaborator. Its internals are
// opaque to the pipeline: implementations return the extracted field
// candidates plus the raw payload kept for audit and reprocessing.
type Extractor interface {
	ProcessDocument(ctx context.Context, gcsURI string) (*ExtractionResult, error)
}

// ExtractionResult is what one extraction call produced.
type ExtractionResult struct {
	Entities  []entity.EntityRecord
	RawOutput json.RawMessage
}
