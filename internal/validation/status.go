package validation

import "github.com/si-akram/invoice-docai/constants"

// DocumentStatusFor applies the validation ladder to an outcome. It is only
// meaningful when the extraction step itself succeeded; callers reaching a
// failure path use FailureStatuses instead.
func DocumentStatusFor(out Outcome, cfg Config) constants.DocumentStatus {
	switch {
	case len(out.Missing) > 0:
		// Required data absent is a hard failure.
		return constants.DocumentStatusFailed
	case len(out.LowConfidenceAny) > 0:
		return constants.DocumentStatusPendingReview
	case out.MinConfidence != nil && *out.MinConfidence < cfg.ConfidenceThreshold:
		return constants.DocumentStatusPendingReview
	default:
		return constants.DocumentStatusSuccess
	}
}

// FailureStatuses returns the status pair recorded for a pipeline failure.
// A missing source file is a pre-extraction error and fails the document
// outright; any other failure means validation never ran, so the document
// stays PENDING.
func FailureStatuses(reason constants.ExceptionReason) (constants.ProcessingStatus, constants.DocumentStatus) {
	if reason == constants.ReasonFileNotFound {
		return constants.ProcessingStatusFailed, constants.DocumentStatusFailed
	}
	return constants.ProcessingStatusFailed, constants.DocumentStatusPending
}
