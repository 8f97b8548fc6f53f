package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/si-akram/invoice-docai/constants"
	"github.com/si-akram/invoice-docai/internal/entity"
)

// fullInvoice returns one record per required entity at the given
// confidence, with overrides applied by name.
func fullInvoice(confidence float64, overrides map[string]float64, drop ...string) []entity.EntityRecord {
	dropped := make(map[string]bool, len(drop))
	for _, name := range drop {
		dropped[name] = true
	}
	var records []entity.EntityRecord
	for _, name := range constants.RequiredEntities {
		if dropped[name] {
			continue
		}
		c := confidence
		if o, ok := overrides[name]; ok {
			c = o
		}
		records = append(records, rec(name, "value-"+name, c))
	}
	return records
}

func classifyDocument(records []entity.EntityRecord) (Outcome, *ExceptionDetail, constants.DocumentStatus) {
	cfg := DefaultConfig()
	out := Validate(Resolve(records), cfg)
	return out, Classify(out, cfg), DocumentStatusFor(out, cfg)
}

func TestScenario_AllRequiredPresentAndConfident(t *testing.T) {
	records := fullInvoice(0.85, map[string]float64{"invoice_number": 0.95})
	out, detail, status := classifyDocument(records)

	assert.Equal(t, constants.DocumentStatusSuccess, status)
	assert.Nil(t, detail)
	assert.Empty(t, out.Missing)
	require.NotNil(t, out.MinConfidence)
}

func TestScenario_VendorNameMissing(t *testing.T) {
	records := fullInvoice(0.85, nil, "vendor_name")
	_, detail, status := classifyDocument(records)

	assert.Equal(t, constants.DocumentStatusFailed, status)
	require.NotNil(t, detail)
	assert.Equal(t, constants.ReasonMissingEntities, detail.Reason)
	assert.Equal(t, []string{"vendor_name"}, detail.Entities.Missing)
}

func TestScenario_InvoiceDateLowConfidence(t *testing.T) {
	records := fullInvoice(0.85, map[string]float64{"invoice_date": 0.50})
	_, detail, status := classifyDocument(records)

	assert.Equal(t, constants.DocumentStatusPendingReview, status)
	require.NotNil(t, detail)
	assert.Equal(t, constants.ReasonLowConfidence, detail.Reason)
	require.Len(t, detail.Entities.LowConfidence, 1)
	lc := detail.Entities.LowConfidence[0]
	assert.Equal(t, "invoice_date", lc.Name)
	require.NotNil(t, lc.Confidence)
	assert.InDelta(t, 0.50, *lc.Confidence, 1e-9)
	assert.InDelta(t, 0.70, lc.Threshold, 1e-9)
}

func TestScenario_RepeatedHSNNumber(t *testing.T) {
	records := fullInvoice(0.85, map[string]float64{"hsn_number": 0.95})
	records = append(records,
		rec("hsn_number", "8471-2", 0.92),
		rec("hsn_number", "8471-3", 0.88),
	)
	cfg := DefaultConfig()
	res := Resolve(records)

	grp := res.ByName["hsn_number"]
	require.NotNil(t, grp)
	assert.Equal(t, 3, grp.ValueCount)
	assert.InDelta(t, 0.95, grp.Best.Confidence, 1e-9)

	stats := res.MultiValued()
	require.Len(t, stats, 1)
	assert.Equal(t, "hsn_number", stats[0].Name)
	assert.Equal(t, 3, stats[0].Count)

	out := Validate(res, cfg)
	assert.Equal(t, constants.DocumentStatusSuccess, DocumentStatusFor(out, cfg))
}

func TestScenario_NoEntitiesAtAll(t *testing.T) {
	out, detail, status := classifyDocument(nil)

	assert.Nil(t, out.MinConfidence)
	assert.Equal(t, constants.RequiredEntities, out.Missing)
	assert.Equal(t, constants.DocumentStatusFailed, status)
	require.NotNil(t, detail)
	assert.Equal(t, constants.ReasonMissingEntities, detail.Reason)
}
