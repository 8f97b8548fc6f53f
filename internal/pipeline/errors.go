package pipeline

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/si-akram/invoice-docai/constants"
)

// pipelineError tags a failure with the exception reason to record, so the
// finalizer does not have to re-derive it from the error chain.
type pipelineError struct {
	reason constants.ExceptionReason
	err    error
}

func (e *pipelineError) Error() string { return e.err.Error() }
func (e *pipelineError) Unwrap() error { return e.err }

func failf(reason constants.ExceptionReason, format string, args ...any) error {
	return &pipelineError{reason: reason, err: fmt.Errorf(format, args...)}
}

// classifyExtractionError maps an extraction call failure to a reason.
// Transport-level conditions get their specific reasons; anything else from
// the extraction service is a service error.
func classifyExtractionError(err error) constants.ExceptionReason {
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Unavailable:
			return constants.ReasonNetworkError
		case codes.DeadlineExceeded:
			return constants.ReasonTimeout
		case codes.Unauthenticated, codes.PermissionDenied:
			return constants.ReasonAuthError
		case codes.ResourceExhausted:
			return constants.ReasonQuotaExceeded
		case codes.InvalidArgument:
			return constants.ReasonInvalidFormat
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return constants.ReasonTimeout
	}
	return constants.ReasonDocumentAIError
}

// ClassifyError resolves the exception reason for any pipeline failure.
func ClassifyError(err error) constants.ExceptionReason {
	var perr *pipelineError
	if errors.As(err, &perr) {
		return perr.reason
	}
	if errors.Is(err, storage.ErrObjectNotExist) {
		return constants.ReasonFileNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return constants.ReasonTimeout
	}
	return constants.ReasonProcessingError
}
