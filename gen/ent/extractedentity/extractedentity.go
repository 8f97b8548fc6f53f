// Code generated by ent, DO NOT EDIT.

package extractedentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the extractedentity type in the database.
	Label = "extracted_entity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProcessingID holds the string denoting the processing_id field in the database.
	FieldProcessingID = "processing_id"
	// FieldEntityName holds the string denoting the entity_name field in the database.
	FieldEntityName = "entity_name"
	// FieldEntityValue holds the string denoting the entity_value field in the database.
	FieldEntityValue = "entity_value"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldPageNumber holds the string denoting the page_number field in the database.
	FieldPageNumber = "page_number"
	// FieldBoundingBox holds the string denoting the bounding_box field in the database.
	FieldBoundingBox = "bounding_box"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProcessing holds the string denoting the processing edge name in mutations.
	EdgeProcessing = "processing"
	// Table holds the table name of the extractedentity in the database.
	Table = "extracted_entities"
	// ProcessingTable is the table that holds the processing relation/edge.
	ProcessingTable = "extracted_entities"
	// ProcessingInverseTable is the table name for the DocumentProcessing entity.
	// It exists in this package in order to avoid circular dependency with the "documentprocessing" package.
	ProcessingInverseTable = "document_processing"
	// ProcessingColumn is the table column denoting the processing relation/edge.
	ProcessingColumn = "processing_id"
)

// Columns holds all SQL columns for extractedentity fields.
var Columns = []string{
	FieldID,
	FieldProcessingID,
	FieldEntityName,
	FieldEntityValue,
	FieldConfidenceScore,
	FieldPageNumber,
	FieldBoundingBox,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EntityNameValidator is a validator for the "entity_name" field. It is called by the builders before save.
	EntityNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExtractedEntity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProcessingID orders the results by the processing_id field.
func ByProcessingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingID, opts...).ToFunc()
}

// ByEntityName orders the results by the entity_name field.
func ByEntityName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityName, opts...).ToFunc()
}

// ByEntityValue orders the results by the entity_value field.
func ByEntityValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityValue, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByPageNumber orders the results by the page_number field.
func ByPageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageNumber, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProcessingField orders the results by processing field.
func ByProcessingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProcessingStep(), sql.OrderByField(field, opts...))
	}
}
func newProcessingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProcessingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProcessingTable, ProcessingColumn),
	)
}
