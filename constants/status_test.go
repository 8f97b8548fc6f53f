package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStatusPair(t *testing.T) {
	t.Run("processing requires pending document", func(t *testing.T) {
		assert.NoError(t, CheckStatusPair(ProcessingStatusProcessing, DocumentStatusPending))
		assert.Error(t, CheckStatusPair(ProcessingStatusProcessing, DocumentStatusSuccess))
	})

	t.Run("failed extraction leaves pending or failed", func(t *testing.T) {
		assert.NoError(t, CheckStatusPair(ProcessingStatusFailed, DocumentStatusPending))
		assert.NoError(t, CheckStatusPair(ProcessingStatusFailed, DocumentStatusFailed))
		assert.Error(t, CheckStatusPair(ProcessingStatusFailed, DocumentStatusSuccess))
		assert.Error(t, CheckStatusPair(ProcessingStatusFailed, DocumentStatusPendingReview))
	})

	t.Run("successful extraction demands a verdict", func(t *testing.T) {
		assert.Error(t, CheckStatusPair(ProcessingStatusSuccess, DocumentStatusPending))
		for _, ds := range []DocumentStatus{DocumentStatusSuccess, DocumentStatusFailed, DocumentStatusPendingReview} {
			assert.NoError(t, CheckStatusPair(ProcessingStatusSuccess, ds))
		}
	})

	t.Run("unknown processing status rejected", func(t *testing.T) {
		assert.Error(t, CheckStatusPair(ProcessingStatus("DONE"), DocumentStatusPending))
	})
}

func TestExceptionReasonTables(t *testing.T) {
	require.Equal(t, "MISS_ENT", ReasonMissingEntities.Code())
	require.Equal(t, "MIX_VAL", ReasonMixedValidation.Code())
	require.Equal(t, "Document AI service error", ReasonDocumentAIError.Description())

	reason, ok := ReasonFromCode("FILE_ERR")
	require.True(t, ok)
	require.Equal(t, ReasonFileNotFound, reason)

	_, ok = ReasonFromCode("NOPE")
	require.False(t, ok)
}
