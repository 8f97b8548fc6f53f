package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/si-akram/invoice-docai/internal/entity"
)

func rec(name, value string, confidence float64) entity.EntityRecord {
	return entity.EntityRecord{Name: name, Value: value, Confidence: confidence}
}

func TestResolve_GroupsByNameFirstSeenOrder(t *testing.T) {
	res := Resolve([]entity.EntityRecord{
		rec("invoice_number", "INV-1", 0.95),
		rec("hsn_number", "8471", 0.88),
		rec("invoice_number", "INV-2", 0.40),
		rec("vendor_name", "Acme", 0.91),
	})

	require.Equal(t, []string{"invoice_number", "hsn_number", "vendor_name"}, res.Order)
	assert.Equal(t, 2, res.ByName["invoice_number"].ValueCount)
	assert.Equal(t, "INV-1", res.ByName["invoice_number"].Best.Value)
}

func TestResolve_BestIsMaxConfidence(t *testing.T) {
	res := Resolve([]entity.EntityRecord{
		rec("hsn_number", "1111", 0.88),
		rec("hsn_number", "2222", 0.95),
		rec("hsn_number", "3333", 0.92),
	})

	grp := res.ByName["hsn_number"]
	require.Equal(t, 3, grp.ValueCount)
	assert.Equal(t, "2222", grp.Best.Value)
	for _, r := range grp.Records {
		assert.GreaterOrEqual(t, grp.Best.Confidence, r.Confidence)
	}
}

func TestResolve_TiesKeepFirstSeen(t *testing.T) {
	res := Resolve([]entity.EntityRecord{
		rec("po_number", "PO-first", 0.80),
		rec("po_number", "PO-second", 0.80),
	})
	assert.Equal(t, "PO-first", res.ByName["po_number"].Best.Value)
}

func TestResolve_DropsBlankValues(t *testing.T) {
	res := Resolve([]entity.EntityRecord{
		rec("country", "  ", 0.99),
		rec("country", "", 0.99),
		rec("country", "IN", 0.75),
	})

	grp := res.ByName["country"]
	require.NotNil(t, grp)
	assert.Equal(t, 1, grp.ValueCount)
	assert.Equal(t, "IN", grp.Best.Value)
}

func TestResolve_EmptyInput(t *testing.T) {
	res := Resolve(nil)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.ByName)
	assert.Empty(t, res.MultiValued())
}

func TestMultiValued(t *testing.T) {
	res := Resolve([]entity.EntityRecord{
		rec("hsn_number", "1111", 0.95),
		rec("hsn_number", "2222", 0.92),
		rec("hsn_number", "3333", 0.88),
		rec("invoice_number", "INV-1", 0.90),
	})

	stats := res.MultiValued()
	require.Len(t, stats, 1)
	assert.Equal(t, "hsn_number", stats[0].Name)
	assert.Equal(t, 3, stats[0].Count)
	assert.Equal(t, []string{"1111", "2222", "3333"}, stats[0].Values)
}

func TestAdmitted_PreservesEmissionOrder(t *testing.T) {
	in := []entity.EntityRecord{
		rec("a", "1", 0.9),
		rec("b", " ", 0.9),
		rec("a", "2", 0.8),
		rec("c", "3", 0.7),
	}
	out := Admitted(in)
	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0].Value)
	assert.Equal(t, "2", out[1].Value)
	assert.Equal(t, "3", out[2].Value)
}
