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
	"github.com/si-akram/invoice-docai/gen/ent/extractedentity"
)

// ExtractedEntity is the model entity for the ExtractedEntity schema.
type ExtractedEntity struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProcessingID holds the value of the "processing_id" field.
	ProcessingID int `json:"processing_id,omitempty"`
	// EntityName holds the value of the "entity_name" field.
	EntityName string `json:"entity_name,omitempty"`
	// EntityValue holds the value of the "entity_value" field.
	EntityValue string `json:"entity_value,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	// PageNumber holds the value of the "page_number" field.
	PageNumber *int `json:"page_number,omitempty"`
	// BoundingBox holds the value of the "bounding_box" field.
	BoundingBox json.RawMessage `json:"bounding_box,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedEntityQuery when eager-loading is set.
	Edges        ExtractedEntityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedEntityEdges holds the relations/edges for other nodes in the graph.
type ExtractedEntityEdges struct {
	// Processing holds the value of the processing edge.
	Processing *DocumentProcessing `json:"processing,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProcessingOrErr returns the Processing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedEntityEdges) ProcessingOrErr() (*DocumentProcessing, error) {
	if e.Processing != nil {
		return e.Processing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documentprocessing.Label}
	}
	return nil, &NotLoadedError{edge: "processing"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedEntity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedentity.FieldBoundingBox:
			values[i] = new([]byte)
		case extractedentity.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case extractedentity.FieldID, extractedentity.FieldProcessingID, extractedentity.FieldPageNumber:
			values[i] = new(sql.NullInt64)
		case extractedentity.FieldEntityName, extractedentity.FieldEntityValue:
			values[i] = new(sql.NullString)
		case extractedentity.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedEntity fields.
func (_m *ExtractedEntity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedentity.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case extractedentity.FieldProcessingID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_id", values[i])
			} else if value.Valid {
				_m.ProcessingID = int(value.Int64)
			}
		case extractedentity.FieldEntityName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_name", values[i])
			} else if value.Valid {
				_m.EntityName = value.String
			}
		case extractedentity.FieldEntityValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_value", values[i])
			} else if value.Valid {
				_m.EntityValue = value.String
			}
		case extractedentity.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = new(float64)
				*_m.ConfidenceScore = value.Float64
			}
		case extractedentity.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = new(int)
				*_m.PageNumber = int(value.Int64)
			}
		case extractedentity.FieldBoundingBox:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bounding_box", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BoundingBox); err != nil {
					return fmt.Errorf("unmarshal field bounding_box: %w", err)
				}
			}
		case extractedentity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedEntity.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedEntity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProcessing queries the "processing" edge of the ExtractedEntity entity.
func (_m *ExtractedEntity) QueryProcessing() *DocumentProcessingQuery {
	return NewExtractedEntityClient(_m.config).QueryProcessing(_m)
}

// Update returns a builder for updating this ExtractedEntity.
// Note that you need to call ExtractedEntity.Unwrap() before calling this method if this ExtractedEntity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedEntity) Update() *ExtractedEntityUpdateOne {
	return NewExtractedEntityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedEntity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedEntity) Unwrap() *ExtractedEntity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedEntity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedEntity) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedEntity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("processing_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingID))
	builder.WriteString(", ")
	builder.WriteString("entity_name=")
	builder.WriteString(_m.EntityName)
	builder.WriteString(", ")
	builder.WriteString("entity_value=")
	builder.WriteString(_m.EntityValue)
	builder.WriteString(", ")
	if v := _m.ConfidenceScore; v != nil {
		builder.WriteString("confidence_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PageNumber; v != nil {
		builder.WriteString("page_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("bounding_box=")
	builder.WriteString(fmt.Sprintf("%v", _m.BoundingBox))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedEntities is a parsable slice of ExtractedEntity.
type ExtractedEntities []*ExtractedEntity
