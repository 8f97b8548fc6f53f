package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/si-akram/invoice-docai/constants"
)

func TestDocumentStatusFor(t *testing.T) {
	cfg := testConfig()

	t.Run("missing wins over everything", func(t *testing.T) {
		out := Outcome{
			Missing:          []string{"vendor_name"},
			LowConfidenceAny: []LowConfidenceRecord{{Name: "invoice_date", Confidence: 0.50}},
		}
		assert.Equal(t, constants.DocumentStatusFailed, DocumentStatusFor(out, cfg))
	})

	t.Run("low confidence needs review", func(t *testing.T) {
		out := Outcome{LowConfidenceAny: []LowConfidenceRecord{{Name: "invoice_date", Confidence: 0.50}}}
		assert.Equal(t, constants.DocumentStatusPendingReview, DocumentStatusFor(out, cfg))
	})

	t.Run("raw minimum under threshold needs review", func(t *testing.T) {
		out := Outcome{MinConfidence: ptr(0.60)}
		assert.Equal(t, constants.DocumentStatusPendingReview, DocumentStatusFor(out, cfg))
	})

	t.Run("clean is success", func(t *testing.T) {
		out := Outcome{MinConfidence: ptr(0.92)}
		assert.Equal(t, constants.DocumentStatusSuccess, DocumentStatusFor(out, cfg))
	})

	t.Run("zero entities is success only via missing", func(t *testing.T) {
		// No entities means every required name is missing; the empty
		// outcome (no required set) stays SUCCESS.
		assert.Equal(t, constants.DocumentStatusSuccess, DocumentStatusFor(Outcome{}, cfg))
	})
}

func TestFailureStatuses(t *testing.T) {
	ps, ds := FailureStatuses(constants.ReasonFileNotFound)
	assert.Equal(t, constants.ProcessingStatusFailed, ps)
	assert.Equal(t, constants.DocumentStatusFailed, ds)
	assert.NoError(t, constants.CheckStatusPair(ps, ds))

	for _, reason := range []constants.ExceptionReason{
		constants.ReasonDocumentAIError,
		constants.ReasonNetworkError,
		constants.ReasonTimeout,
		constants.ReasonProcessingError,
	} {
		ps, ds := FailureStatuses(reason)
		assert.Equal(t, constants.ProcessingStatusFailed, ps)
		assert.Equal(t, constants.DocumentStatusPending, ds, "validation never ran for %s", reason)
		assert.NoError(t, constants.CheckStatusPair(ps, ds))
	}
}
