package constants

// ExceptionReason is the symbolic name for a non-clean processing outcome.
// The short code (not the symbolic name) is what lands in
// document_processing.exception_reason_code.
type ExceptionReason string

const (
	ReasonMissingEntities ExceptionReason = "MISSING_ENTITIES"
	ReasonLowConfidence   ExceptionReason = "LOW_CONFIDENCE"
	ReasonNetworkError    ExceptionReason = "NETWORK_ERROR"
	ReasonProcessingError ExceptionReason = "PROCESSING_ERROR"
	ReasonFileNotFound    ExceptionReason = "FILE_NOT_FOUND"
	ReasonDocumentAIError ExceptionReason = "DOCUMENT_AI_ERROR"
	ReasonInvalidFormat   ExceptionReason = "INVALID_FORMAT"
	ReasonTimeout         ExceptionReason = "TIMEOUT_ERROR"
	ReasonAuthError       ExceptionReason = "AUTH_ERROR"
	ReasonQuotaExceeded   ExceptionReason = "QUOTA_EXCEEDED"
	ReasonMixedValidation ExceptionReason = "MIXED_VALIDATION" // both missing entities and low confidence
)

var exceptionCodes = map[ExceptionReason]string{
	ReasonMissingEntities: "MISS_ENT",
	ReasonLowConfidence:   "LOW_CONF",
	ReasonNetworkError:    "NET_ERR",
	ReasonProcessingError: "PROC_ERR",
	ReasonFileNotFound:    "FILE_ERR",
	ReasonDocumentAIError: "DOC_AI_ERR",
	ReasonInvalidFormat:   "INV_FMT",
	ReasonTimeout:         "TIMEOUT",
	ReasonAuthError:       "AUTH_ERR",
	ReasonQuotaExceeded:   "QUOTA_ERR",
	ReasonMixedValidation: "MIX_VAL",
}

var exceptionDescriptions = map[string]string{
	"MISS_ENT":   "Required entities are missing from the document",
	"LOW_CONF":   "Extracted entities have confidence below threshold",
	"NET_ERR":    "Network connectivity issues during processing",
	"PROC_ERR":   "General processing error occurred",
	"FILE_ERR":   "File not found or inaccessible in GCS",
	"DOC_AI_ERR": "Document AI service error",
	"INV_FMT":    "Invalid document format or corrupted file",
	"TIMEOUT":    "Processing timeout exceeded",
	"AUTH_ERR":   "Authentication or authorization error",
	"QUOTA_ERR":  "API quota or rate limit exceeded",
	"MIX_VAL":    "Multiple validation issues: missing entities and low confidence",
}

// Code returns the short code stored in the database.
func (r ExceptionReason) Code() string {
	return exceptionCodes[r]
}

// Description returns the canonical human-readable description for the reason.
func (r ExceptionReason) Description() string {
	return exceptionDescriptions[r.Code()]
}

// ReasonFromCode resolves a stored short code back to its symbolic reason.
func ReasonFromCode(code string) (ExceptionReason, bool) {
	for reason, c := range exceptionCodes {
		if c == code {
			return reason, true
		}
	}
	return "", false
}
