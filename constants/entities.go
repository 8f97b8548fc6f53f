package constants

// RequiredEntities is the fixed set of entity names a clean invoice must
// carry. Order matters for reporting: missing entities are listed in this
// order.
var RequiredEntities = []string{
	"country",
	"customer_gst_number",
	"po_number",
	"customer_name",
	"invoice_number",
	"hsn_number",
	"invoice_currency",
	"invoice_date",
	"invoice_net_amount",
	"invoice_total_amount",
	"invoice_type",
	"payment_term",
	"vendor_name",
}

// MinConfidenceThreshold is the default acceptance bar for extracted values.
// A confidence equal to the threshold passes; only strictly lower flags.
const MinConfidenceThreshold = 0.70
