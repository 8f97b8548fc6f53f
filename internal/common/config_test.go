package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/si-akram/invoice-docai/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "input", cfg.Storage.InputFolder)
	assert.Equal(t, "processed", cfg.Storage.ProcessedFolder)
	assert.Equal(t, "failed", cfg.Storage.FailedFolder)
	assert.Equal(t, constants.RequiredEntities, cfg.Validation.RequiredEntities)
	assert.InDelta(t, constants.MinConfidenceThreshold, cfg.Validation.ConfidenceThreshold, 1e-9)
}

func TestValidationOverridesFromEnv(t *testing.T) {
	t.Setenv("REQUIRED_ENTITIES", "invoice_number, vendor_name ,")
	t.Setenv("CONFIDENCE_THRESHOLD", "0.85")

	cfg := LoadConfig()
	assert.Equal(t, []string{"invoice_number", "vendor_name"}, cfg.Validation.RequiredEntities)
	assert.InDelta(t, 0.85, cfg.Validation.ConfidenceThreshold, 1e-9)
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	cfg.GCP.ProjectID = "proj"
	cfg.GCP.ProcessorID = "proc"
	cfg.Storage.Bucket = "bucket"
	cfg.Validation.ConfidenceThreshold = 0.70
	require.NoError(t, cfg.Validate())

	cfg.Validation.ConfidenceThreshold = 1.5
	assert.Error(t, cfg.Validate())

	cfg.Validation.ConfidenceThreshold = 0.70
	cfg.Storage.Bucket = ""
	assert.Error(t, cfg.Validate())
}
