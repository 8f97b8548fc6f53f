// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/si-akram/invoice-docai/gen/ent/documentprocessing"
)

// DocumentProcessing is the model entity for the DocumentProcessing schema.
type DocumentProcessing struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// GcsPath holds the value of the "gcs_path" field.
	GcsPath string `json:"gcs_path,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus string `json:"processing_status,omitempty"`
	// DocumentStatus holds the value of the "document_status" field.
	DocumentStatus string `json:"document_status,omitempty"`
	// MinConfidence holds the value of the "min_confidence" field.
	MinConfidence *float64 `json:"min_confidence,omitempty"`
	// ExceptionReasonCode holds the value of the "exception_reason_code" field.
	ExceptionReasonCode *string `json:"exception_reason_code,omitempty"`
	// ExceptionReasonDescription holds the value of the "exception_reason_description" field.
	ExceptionReasonDescription *string `json:"exception_reason_description,omitempty"`
	// ExceptionEntities holds the value of the "exception_entities" field.
	ExceptionEntities json.RawMessage `json:"exception_entities,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// RawProcessorOutput holds the value of the "raw_processor_output" field.
	RawProcessorOutput json.RawMessage `json:"raw_processor_output,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentProcessingQuery when eager-loading is set.
	Edges        DocumentProcessingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentProcessingEdges holds the relations/edges for other nodes in the graph.
type DocumentProcessingEdges struct {
	// Entities holds the value of the entities edge.
	Entities []*ExtractedEntity `json:"entities,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EntitiesOrErr returns the Entities value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentProcessingEdges) EntitiesOrErr() ([]*ExtractedEntity, error) {
	if e.loadedTypes[0] {
		return e.Entities, nil
	}
	return nil, &NotLoadedError{edge: "entities"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentProcessing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentprocessing.FieldExceptionEntities, documentprocessing.FieldRawProcessorOutput:
			values[i] = new([]byte)
		case documentprocessing.FieldMinConfidence:
			values[i] = new(sql.NullFloat64)
		case documentprocessing.FieldID:
			values[i] = new(sql.NullInt64)
		case documentprocessing.FieldFileName, documentprocessing.FieldGcsPath, documentprocessing.FieldProcessingStatus, documentprocessing.FieldDocumentStatus, documentprocessing.FieldExceptionReasonCode, documentprocessing.FieldExceptionReasonDescription, documentprocessing.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case documentprocessing.FieldCreatedAt, documentprocessing.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentProcessing fields.
func (_m *DocumentProcessing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentprocessing.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case documentprocessing.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case documentprocessing.FieldGcsPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gcs_path", values[i])
			} else if value.Valid {
				_m.GcsPath = value.String
			}
		case documentprocessing.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				_m.ProcessingStatus = value.String
			}
		case documentprocessing.FieldDocumentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_status", values[i])
			} else if value.Valid {
				_m.DocumentStatus = value.String
			}
		case documentprocessing.FieldMinConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_confidence", values[i])
			} else if value.Valid {
				_m.MinConfidence = new(float64)
				*_m.MinConfidence = value.Float64
			}
		case documentprocessing.FieldExceptionReasonCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exception_reason_code", values[i])
			} else if value.Valid {
				_m.ExceptionReasonCode = new(string)
				*_m.ExceptionReasonCode = value.String
			}
		case documentprocessing.FieldExceptionReasonDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exception_reason_description", values[i])
			} else if value.Valid {
				_m.ExceptionReasonDescription = new(string)
				*_m.ExceptionReasonDescription = value.String
			}
		case documentprocessing.FieldExceptionEntities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field exception_entities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExceptionEntities); err != nil {
					return fmt.Errorf("unmarshal field exception_entities: %w", err)
				}
			}
		case documentprocessing.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case documentprocessing.FieldRawProcessorOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_processor_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawProcessorOutput); err != nil {
					return fmt.Errorf("unmarshal field raw_processor_output: %w", err)
				}
			}
		case documentprocessing.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case documentprocessing.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentProcessing.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentProcessing) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEntities queries the "entities" edge of the DocumentProcessing entity.
func (_m *DocumentProcessing) QueryEntities() *ExtractedEntityQuery {
	return NewDocumentProcessingClient(_m.config).QueryEntities(_m)
}

// Update returns a builder for updating this DocumentProcessing.
// Note that you need to call DocumentProcessing.Unwrap() before calling this method if this DocumentProcessing
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentProcessing) Update() *DocumentProcessingUpdateOne {
	return NewDocumentProcessingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentProcessing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentProcessing) Unwrap() *DocumentProcessing {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentProcessing is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentProcessing) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentProcessing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("gcs_path=")
	builder.WriteString(_m.GcsPath)
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(_m.ProcessingStatus)
	builder.WriteString(", ")
	builder.WriteString("document_status=")
	builder.WriteString(_m.DocumentStatus)
	builder.WriteString(", ")
	if v := _m.MinConfidence; v != nil {
		builder.WriteString("min_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExceptionReasonCode; v != nil {
		builder.WriteString("exception_reason_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExceptionReasonDescription; v != nil {
		builder.WriteString("exception_reason_description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("exception_entities=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExceptionEntities))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("raw_processor_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawProcessorOutput))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentProcessings is a parsable slice of DocumentProcessing.
type DocumentProcessings []*DocumentProcessing
