// Code generated by ent, DO NOT EDIT.

package documentprocessing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the documentprocessing type in the database.
	Label = "document_processing"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldGcsPath holds the string denoting the gcs_path field in the database.
	FieldGcsPath = "gcs_path"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldDocumentStatus holds the string denoting the document_status field in the database.
	FieldDocumentStatus = "document_status"
	// FieldMinConfidence holds the string denoting the min_confidence field in the database.
	FieldMinConfidence = "min_confidence"
	// FieldExceptionReasonCode holds the string denoting the exception_reason_code field in the database.
	FieldExceptionReasonCode = "exception_reason_code"
	// FieldExceptionReasonDescription holds the string denoting the exception_reason_description field in the database.
	FieldExceptionReasonDescription = "exception_reason_description"
	// FieldExceptionEntities holds the string denoting the exception_entities field in the database.
	FieldExceptionEntities = "exception_entities"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRawProcessorOutput holds the string denoting the raw_processor_output field in the database.
	FieldRawProcessorOutput = "raw_processor_output"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEntities holds the string denoting the entities edge name in mutations.
	EdgeEntities = "entities"
	// Table holds the table name of the documentprocessing in the database.
	Table = "document_processing"
	// EntitiesTable is the table that holds the entities relation/edge.
	EntitiesTable = "extracted_entities"
	// EntitiesInverseTable is the table name for the ExtractedEntity entity.
	// It exists in this package in order to avoid circular dependency with the "extractedentity" package.
	EntitiesInverseTable = "extracted_entities"
	// EntitiesColumn is the table column denoting the entities relation/edge.
	EntitiesColumn = "processing_id"
)

// Columns holds all SQL columns for documentprocessing fields.
var Columns = []string{
	FieldID,
	FieldFileName,
	FieldGcsPath,
	FieldProcessingStatus,
	FieldDocumentStatus,
	FieldMinConfidence,
	FieldExceptionReasonCode,
	FieldExceptionReasonDescription,
	FieldExceptionEntities,
	FieldErrorMessage,
	FieldRawProcessorOutput,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// GcsPathValidator is a validator for the "gcs_path" field. It is called by the builders before save.
	GcsPathValidator func(string) error
	// DefaultProcessingStatus holds the default value on creation for the "processing_status" field.
	DefaultProcessingStatus string
	// ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	ProcessingStatusValidator func(string) error
	// DefaultDocumentStatus holds the default value on creation for the "document_status" field.
	DefaultDocumentStatus string
	// DocumentStatusValidator is a validator for the "document_status" field. It is called by the builders before save.
	DocumentStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DocumentProcessing queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByGcsPath orders the results by the gcs_path field.
func ByGcsPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGcsPath, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByDocumentStatus orders the results by the document_status field.
func ByDocumentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentStatus, opts...).ToFunc()
}

// ByMinConfidence orders the results by the min_confidence field.
func ByMinConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinConfidence, opts...).ToFunc()
}

// ByExceptionReasonCode orders the results by the exception_reason_code field.
func ByExceptionReasonCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExceptionReasonCode, opts...).ToFunc()
}

// ByExceptionReasonDescription orders the results by the exception_reason_description field.
func ByExceptionReasonDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExceptionReasonDescription, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEntitiesCount orders the results by entities count.
func ByEntitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEntitiesStep(), opts...)
	}
}

// ByEntities orders the results by entities terms.
func ByEntities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEntitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntitiesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EntitiesTable, EntitiesColumn),
	)
}
