package constants

import "fmt"

// ProcessingStatus is the Document AI step outcome for a document_processing
// row. It reports whether the extraction service returned a usable result,
// independent of whatever validation later says about the content.
type ProcessingStatus string

// Stable values (store these exact strings in DB).
const (
	ProcessingStatusProcessing ProcessingStatus = "PROCESSING" // initial, set at pipeline start
	ProcessingStatusSuccess    ProcessingStatus = "SUCCESS"    // extraction returned a document
	ProcessingStatusFailed     ProcessingStatus = "FAILED"     // terminal failure before/during extraction
)

// DocumentStatus is the validation verdict over the extracted content.
type DocumentStatus string

const (
	DocumentStatusPending       DocumentStatus = "PENDING"        // validation has not run
	DocumentStatusSuccess       DocumentStatus = "SUCCESS"        // all required entities present, above threshold
	DocumentStatusFailed        DocumentStatus = "FAILED"         // required entities missing
	DocumentStatusPendingReview DocumentStatus = "PENDING_REVIEW" // present but confidence under the bar
)

// ProcessingStatuses holds the allowed processing_status values for schema validators.
var ProcessingStatuses = []string{
	string(ProcessingStatusProcessing),
	string(ProcessingStatusSuccess),
	string(ProcessingStatusFailed),
}

// DocumentStatuses holds the allowed document_status values for schema validators.
var DocumentStatuses = []string{
	string(DocumentStatusPending),
	string(DocumentStatusSuccess),
	string(DocumentStatusFailed),
	string(DocumentStatusPendingReview),
}

// CheckStatusPair enforces the compatibility matrix between the two status
// fields: document_status carries a validation verdict only once the
// extraction step succeeded. A failed extraction leaves the document PENDING,
// except for pre-extraction failures (missing source file) where both fields
// are FAILED.
func CheckStatusPair(ps ProcessingStatus, ds DocumentStatus) error {
	switch ps {
	case ProcessingStatusProcessing:
		if ds != DocumentStatusPending {
			return fmt.Errorf("document_status must be PENDING while processing_status is PROCESSING, got %s", ds)
		}
	case ProcessingStatusFailed:
		if ds != DocumentStatusPending && ds != DocumentStatusFailed {
			return fmt.Errorf("document_status %s is not reachable when processing_status is FAILED", ds)
		}
	case ProcessingStatusSuccess:
		if ds == DocumentStatusPending {
			return fmt.Errorf("document_status must be terminal once processing_status is SUCCESS")
		}
	default:
		return fmt.Errorf("unknown processing_status %q", ps)
	}
	return nil
}
