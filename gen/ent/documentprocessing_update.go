// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/si-akram/invoice-docai/gen/ent/documentprocessing"
	"github.com/si-akram/invoice-docai/gen/ent/extractedentity"
	"github.com/si-akram/invoice-docai/gen/ent/predicate"
)

// DocumentProcessingUpdate is the builder for updating DocumentProcessing entities.
type DocumentProcessingUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentProcessingMutation
}

// Where appends a list predicates to the DocumentProcessingUpdate builder.
func (_u *DocumentProcessingUpdate) Where(ps ...predicate.DocumentProcessing) *DocumentProcessingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentProcessingUpdate) SetFileName(v string) *DocumentProcessingUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentProcessingUpdate) SetNillableFileName(v *string) *DocumentProcessingUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetGcsPath sets the "gcs_path" field.
func (_u *DocumentProcessingUpdate) SetGcsPath(v string) *DocumentProcessingUpdate {
	_u.mutation.SetGcsPath(v)
	return _u
}

// SetNillableGcsPath sets the "gcs_path" field if the given value is not nil.
func (_u *DocumentProcessingUpdate) SetNillableGcsPath(v *string) *DocumentProcessingUpdate {
	if v != nil {
		_u.SetGcsPath(*v)
	}
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *DocumentProcessingUpdate) SetProcessingStatus(v string) *DocumentProcessingUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *DocumentProcessingUpdate) SetNillableProcessingStatus(v *string) *DocumentProcessingUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetDocumentStatus sets the "document_status" field.
func (_u *DocumentProcessingUpdate) SetDocumentStatus(v string) *DocumentProcessingUpdate {
	_u.mutation.SetDocumentStatus(v)
	return _u
}

// SetNillableDocumentStatus sets the "document_status" field if the given value is not nil.
func (_u *DocumentProcessingUpdate) SetNillableDocumentStatus(v *string) *DocumentProcessingUpdate {
	if v != nil {
		_u.SetDocumentStatus(*v)
	}
	return _u
}

// SetMinConfidence sets the "min_confidence" field.
func (_u *DocumentProcessingUpdate) SetMinConfidence(v float64) *DocumentProcessingUpdate {
	_u.mutation.ResetMinConfidence()
	_u.mutation.SetMinConfidence(v)
	return _u
}

// SetNillableMinConfidence sets the "min_confidence" field if the given value is not nil.
func (_u *DocumentProcessingUpdate) SetNillableMinConfidence(v *float64) *DocumentProcessingUpdate {
	if v != nil {
		_u.SetMinConfidence(*v)
	}
	return _u
}

// AddMinConfidence adds value to the "min_confidence" field.
func (_u *DocumentProcessingUpdate) AddMinConfidence(v float64) *DocumentProcessingUpdate {
	_u.mutation.AddMinConfidence(v)
	return _u
}

// ClearMinConfidence clears the value of the "min_confidence" field.
func (_u *DocumentProcessingUpdate) ClearMinConfidence() *DocumentProcessingUpdate {
	_u.mutation.ClearMinConfidence()
	return _u
}

// SetExceptionReasonCode sets the "exception_reason_code" field.
func (_u *DocumentProcessingUpdate) SetExceptionReasonCode(v string) *DocumentProcessingUpdate {
	_u.mutation.SetExceptionReasonCode(v)
	return _u
}

// SetNillableExceptionReasonCode sets the "exception_reason_code" field if the given value is not nil.
func (_u *DocumentProcessingUpdate) SetNillableExceptionReasonCode(v *string) *DocumentProcessingUpdate {
	if v != nil {
		_u.SetExceptionReasonCode(*v)
	}
	return _u
}

// ClearExceptionReasonCode clears the value of the "exception_reason_code" field.
func (_u *DocumentProcessingUpdate) ClearExceptionReasonCode() *DocumentProcessingUpdate {
	_u.mutation.ClearExceptionReasonCode()
	return _u
}

// SetExceptionReasonDescription sets the "exception_reason_description" field.
func (_u *DocumentProcessingUpdate) SetExceptionReasonDescription(v string) *DocumentProcessingUpdate {
	_u.mutation.SetExceptionReasonDescription(v)
	return _u
}

// SetNillableExceptionReasonDescription sets the "exception_reason_description" field if the given value is not nil.
func (_u *DocumentProcessingUpdate) SetNillableExceptionReasonDescription(v *string) *DocumentProcessingUpdate {
	if v != nil {
		_u.SetExceptionReasonDescription(*v)
	}
	return _u
}

// ClearExceptionReasonDescription clears the value of the "exception_reason_description" field.
func (_u *DocumentProcessingUpdate) ClearExceptionReasonDescription() *DocumentProcessingUpdate {
	_u.mutation.ClearExceptionReasonDescription()
	return _u
}

// SetExceptionEntities sets the "exception_entities" field.
func (_u *DocumentProcessingUpdate) SetExceptionEntities(v json.RawMessage) *DocumentProcessingUpdate {
	_u.mutation.SetExceptionEntities(v)
	return _u
}

// AppendExceptionEntities appends value to the "exception_entities" field.
func (_u *DocumentProcessingUpdate) AppendExceptionEntities(v json.RawMessage) *DocumentProcessingUpdate {
	_u.mutation.AppendExceptionEntities(v)
	return _u
}

// ClearExceptionEntities clears the value of the "exception_entities" field.
func (_u *DocumentProcessingUpdate) ClearExceptionEntities() *DocumentProcessingUpdate {
	_u.mutation.ClearExceptionEntities()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentProcessingUpdate) SetErrorMessage(v string) *DocumentProcessingUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentProcessingUpdate) SetNillableErrorMessage(v *string) *DocumentProcessingUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentProcessingUpdate) ClearErrorMessage() *DocumentProcessingUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRawProcessorOutput sets the "raw_processor_output" field.
func (_u *DocumentProcessingUpdate) SetRawProcessorOutput(v json.RawMessage) *DocumentProcessingUpdate {
	_u.mutation.SetRawProcessorOutput(v)
	return _u
}

// AppendRawProcessorOutput appends value to the "raw_processor_output" field.
func (_u *DocumentProcessingUpdate) AppendRawProcessorOutput(v json.RawMessage) *DocumentProcessingUpdate {
	_u.mutation.AppendRawProcessorOutput(v)
	return _u
}

// ClearRawProcessorOutput clears the value of the "raw_processor_output" field.
func (_u *DocumentProcessingUpdate) ClearRawProcessorOutput() *DocumentProcessingUpdate {
	_u.mutation.ClearRawProcessorOutput()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentProcessingUpdate) SetUpdatedAt(v time.Time) *DocumentProcessingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEntityIDs adds the "entities" edge to the ExtractedEntity entity by IDs.
func (_u *DocumentProcessingUpdate) AddEntityIDs(ids ...int) *DocumentProcessingUpdate {
	_u.mutation.AddEntityIDs(ids...)
	return _u
}

// AddEntities adds the "entities" edges to the ExtractedEntity entity.
func (_u *DocumentProcessingUpdate) AddEntities(v ...*ExtractedEntity) *DocumentProcessingUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityIDs(ids...)
}

// Mutation returns the DocumentProcessingMutation object of the builder.
func (_u *DocumentProcessingUpdate) Mutation() *DocumentProcessingMutation {
	return _u.mutation
}

// ClearEntities clears all "entities" edges to the ExtractedEntity entity.
func (_u *DocumentProcessingUpdate) ClearEntities() *DocumentProcessingUpdate {
	_u.mutation.ClearEntities()
	return _u
}

// RemoveEntityIDs removes the "entities" edge to ExtractedEntity entities by IDs.
func (_u *DocumentProcessingUpdate) RemoveEntityIDs(ids ...int) *DocumentProcessingUpdate {
	_u.mutation.RemoveEntityIDs(ids...)
	return _u
}

// RemoveEntities removes "entities" edges to ExtractedEntity entities.
func (_u *DocumentProcessingUpdate) RemoveEntities(v ...*ExtractedEntity) *DocumentProcessingUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentProcessingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentProcessingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentProcessingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentProcessingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentProcessingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documentprocessing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentProcessingUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := documentprocessing.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "DocumentProcessing.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GcsPath(); ok {
		if err := documentprocessing.GcsPathValidator(v); err != nil {
			return &ValidationError{Name: "gcs_path", err: fmt.Errorf(`ent: validator failed for field "DocumentProcessing.gcs_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := documentprocessing.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "DocumentProcessing.processing_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentStatus(); ok {
		if err := documentprocessing.DocumentStatusValidator(v); err != nil {
			return &ValidationError{Name: "document_status", err: fmt.Errorf(`ent: validator failed for field "DocumentProcessing.document_status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentProcessingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentprocessing.Table, documentprocessing.Columns, sqlgraph.NewFieldSpec(documentprocessing.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(documentprocessing.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GcsPath(); ok {
		_spec.SetField(documentprocessing.FieldGcsPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(documentprocessing.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentStatus(); ok {
		_spec.SetField(documentprocessing.FieldDocumentStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinConfidence(); ok {
		_spec.SetField(documentprocessing.FieldMinConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinConfidence(); ok {
		_spec.AddField(documentprocessing.FieldMinConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MinConfidenceCleared() {
		_spec.ClearField(documentprocessing.FieldMinConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExceptionReasonCode(); ok {
		_spec.SetField(documentprocessing.FieldExceptionReasonCode, field.TypeString, value)
	}
	if _u.mutation.ExceptionReasonCodeCleared() {
		_spec.ClearField(documentprocessing.FieldExceptionReasonCode, field.TypeString)
	}
	if value, ok := _u.mutation.ExceptionReasonDescription(); ok {
		_spec.SetField(documentprocessing.FieldExceptionReasonDescription, field.TypeString, value)
	}
	if _u.mutation.ExceptionReasonDescriptionCleared() {
		_spec.ClearField(documentprocessing.FieldExceptionReasonDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ExceptionEntities(); ok {
		_spec.SetField(documentprocessing.FieldExceptionEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExceptionEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documentprocessing.FieldExceptionEntities, value)
		})
	}
	if _u.mutation.ExceptionEntitiesCleared() {
		_spec.ClearField(documentprocessing.FieldExceptionEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(documentprocessing.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(documentprocessing.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RawProcessorOutput(); ok {
		_spec.SetField(documentprocessing.FieldRawProcessorOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawProcessorOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documentprocessing.FieldRawProcessorOutput, value)
		})
	}
	if _u.mutation.RawProcessorOutputCleared() {
		_spec.ClearField(documentprocessing.FieldRawProcessorOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documentprocessing.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentprocessing.EntitiesTable,
			Columns: []string{documentprocessing.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedentity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntitiesIDs(); len(nodes) > 0 && !_u.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentprocessing.EntitiesTable,
			Columns: []string{documentprocessing.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedentity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentprocessing.EntitiesTable,
			Columns: []string{documentprocessing.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedentity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentprocessing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentProcessingUpdateOne is the builder for updating a single DocumentProcessing entity.
type DocumentProcessingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentProcessingMutation
}

// SetFileName sets the "file_name" field.
func (_u *DocumentProcessingUpdateOne) SetFileName(v string) *DocumentProcessingUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentProcessingUpdateOne) SetNillableFileName(v *string) *DocumentProcessingUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetGcsPath sets the "gcs_path" field.
func (_u *DocumentProcessingUpdateOne) SetGcsPath(v string) *DocumentProcessingUpdateOne {
	_u.mutation.SetGcsPath(v)
	return _u
}

// SetNillableGcsPath sets the "gcs_path" field if the given value is not nil.
func (_u *DocumentProcessingUpdateOne) SetNillableGcsPath(v *string) *DocumentProcessingUpdateOne {
	if v != nil {
		_u.SetGcsPath(*v)
	}
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *DocumentProcessingUpdateOne) SetProcessingStatus(v string) *DocumentProcessingUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *DocumentProcessingUpdateOne) SetNillableProcessingStatus(v *string) *DocumentProcessingUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetDocumentStatus sets the "document_status" field.
func (_u *DocumentProcessingUpdateOne) SetDocumentStatus(v string) *DocumentProcessingUpdateOne {
	_u.mutation.SetDocumentStatus(v)
	return _u
}

// SetNillableDocumentStatus sets the "document_status" field if the given value is not nil.
func (_u *DocumentProcessingUpdateOne) SetNillableDocumentStatus(v *string) *DocumentProcessingUpdateOne {
	if v != nil {
		_u.SetDocumentStatus(*v)
	}
	return _u
}

// SetMinConfidence sets the "min_confidence" field.
func (_u *DocumentProcessingUpdateOne) SetMinConfidence(v float64) *DocumentProcessingUpdateOne {
	_u.mutation.ResetMinConfidence()
	_u.mutation.SetMinConfidence(v)
	return _u
}

// SetNillableMinConfidence sets the "min_confidence" field if the given value is not nil.
func (_u *DocumentProcessingUpdateOne) SetNillableMinConfidence(v *float64) *DocumentProcessingUpdateOne {
	if v != nil {
		_u.SetMinConfidence(*v)
	}
	return _u
}

// AddMinConfidence adds value to the "min_confidence" field.
func (_u *DocumentProcessingUpdateOne) AddMinConfidence(v float64) *DocumentProcessingUpdateOne {
	_u.mutation.AddMinConfidence(v)
	return _u
}

// ClearMinConfidence clears the value of the "min_confidence" field.
func (_u *DocumentProcessingUpdateOne) ClearMinConfidence() *DocumentProcessingUpdateOne {
	_u.mutation.ClearMinConfidence()
	return _u
}

// SetExceptionReasonCode sets the "exception_reason_code" field.
func (_u *DocumentProcessingUpdateOne) SetExceptionReasonCode(v string) *DocumentProcessingUpdateOne {
	_u.mutation.SetExceptionReasonCode(v)
	return _u
}

// SetNillableExceptionReasonCode sets the "exception_reason_code" field if the given value is not nil.
func (_u *DocumentProcessingUpdateOne) SetNillableExceptionReasonCode(v *string) *DocumentProcessingUpdateOne {
	if v != nil {
		_u.SetExceptionReasonCode(*v)
	}
	return _u
}

// ClearExceptionReasonCode clears the value of the "exception_reason_code" field.
func (_u *DocumentProcessingUpdateOne) ClearExceptionReasonCode() *DocumentProcessingUpdateOne {
	_u.mutation.ClearExceptionReasonCode()
	return _u
}

// SetExceptionReasonDescription sets the "exception_reason_description" field.
func (_u *DocumentProcessingUpdateOne) SetExceptionReasonDescription(v string) *DocumentProcessingUpdateOne {
	_u.mutation.SetExceptionReasonDescription(v)
	return _u
}

// SetNillableExceptionReasonDescription sets the "exception_reason_description" field if the given value is not nil.
func (_u *DocumentProcessingUpdateOne) SetNillableExceptionReasonDescription(v *string) *DocumentProcessingUpdateOne {
	if v != nil {
		_u.SetExceptionReasonDescription(*v)
	}
	return _u
}

// ClearExceptionReasonDescription clears the value of the "exception_reason_description" field.
func (_u *DocumentProcessingUpdateOne) ClearExceptionReasonDescription() *DocumentProcessingUpdateOne {
	_u.mutation.ClearExceptionReasonDescription()
	return _u
}

// SetExceptionEntities sets the "exception_entities" field.
func (_u *DocumentProcessingUpdateOne) SetExceptionEntities(v json.RawMessage) *DocumentProcessingUpdateOne {
	_u.mutation.SetExceptionEntities(v)
	return _u
}

// AppendExceptionEntities appends value to the "exception_entities" field.
func (_u *DocumentProcessingUpdateOne) AppendExceptionEntities(v json.RawMessage) *DocumentProcessingUpdateOne {
	_u.mutation.AppendExceptionEntities(v)
	return _u
}

// ClearExceptionEntities clears the value of the "exception_entities" field.
func (_u *DocumentProcessingUpdateOne) ClearExceptionEntities() *DocumentProcessingUpdateOne {
	_u.mutation.ClearExceptionEntities()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentProcessingUpdateOne) SetErrorMessage(v string) *DocumentProcessingUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentProcessingUpdateOne) SetNillableErrorMessage(v *string) *DocumentProcessingUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentProcessingUpdateOne) ClearErrorMessage() *DocumentProcessingUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRawProcessorOutput sets the "raw_processor_output" field.
func (_u *DocumentProcessingUpdateOne) SetRawProcessorOutput(v json.RawMessage) *DocumentProcessingUpdateOne {
	_u.mutation.SetRawProcessorOutput(v)
	return _u
}

// AppendRawProcessorOutput appends value to the "raw_processor_output" field.
func (_u *DocumentProcessingUpdateOne) AppendRawProcessorOutput(v json.RawMessage) *DocumentProcessingUpdateOne {
	_u.mutation.AppendRawProcessorOutput(v)
	return _u
}

// ClearRawProcessorOutput clears the value of the "raw_processor_output" field.
func (_u *DocumentProcessingUpdateOne) ClearRawProcessorOutput() *DocumentProcessingUpdateOne {
	_u.mutation.ClearRawProcessorOutput()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentProcessingUpdateOne) SetUpdatedAt(v time.Time) *DocumentProcessingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEntityIDs adds the "entities" edge to the ExtractedEntity entity by IDs.
func (_u *DocumentProcessingUpdateOne) AddEntityIDs(ids ...int) *DocumentProcessingUpdateOne {
	_u.mutation.AddEntityIDs(ids...)
	return _u
}

// AddEntities adds the "entities" edges to the ExtractedEntity entity.
func (_u *DocumentProcessingUpdateOne) AddEntities(v ...*ExtractedEntity) *DocumentProcessingUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityIDs(ids...)
}

// Mutation returns the DocumentProcessingMutation object of the builder.
func (_u *DocumentProcessingUpdateOne) Mutation() *DocumentProcessingMutation {
	return _u.mutation
}

// ClearEntities clears all "entities" edges to the ExtractedEntity entity.
func (_u *DocumentProcessingUpdateOne) ClearEntities() *DocumentProcessingUpdateOne {
	_u.mutation.ClearEntities()
	return _u
}

// RemoveEntityIDs removes the "entities" edge to ExtractedEntity entities by IDs.
func (_u *DocumentProcessingUpdateOne) RemoveEntityIDs(ids ...int) *DocumentProcessingUpdateOne {
	_u.mutation.RemoveEntityIDs(ids...)
	return _u
}

// RemoveEntities removes "entities" edges to ExtractedEntity entities.
func (_u *DocumentProcessingUpdateOne) RemoveEntities(v ...*ExtractedEntity) *DocumentProcessingUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityIDs(ids...)
}

// Where appends a list predicates to the DocumentProcessingUpdate builder.
func (_u *DocumentProcessingUpdateOne) Where(ps ...predicate.DocumentProcessing) *DocumentProcessingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentProcessingUpdateOne) Select(field string, fields ...string) *DocumentProcessingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentProcessing entity.
func (_u *DocumentProcessingUpdateOne) Save(ctx context.Context) (*DocumentProcessing, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentProcessingUpdateOne) SaveX(ctx context.Context) *DocumentProcessing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentProcessingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentProcessingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentProcessingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documentprocessing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentProcessingUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := documentprocessing.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "DocumentProcessing.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GcsPath(); ok {
		if err := documentprocessing.GcsPathValidator(v); err != nil {
			return &ValidationError{Name: "gcs_path", err: fmt.Errorf(`ent: validator failed for field "DocumentProcessing.gcs_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := documentprocessing.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "DocumentProcessing.processing_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentStatus(); ok {
		if err := documentprocessing.DocumentStatusValidator(v); err != nil {
			return &ValidationError{Name: "document_status", err: fmt.Errorf(`ent: validator failed for field "DocumentProcessing.document_status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentProcessingUpdateOne) sqlSave(ctx context.Context) (_node *DocumentProcessing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentprocessing.Table, documentprocessing.Columns, sqlgraph.NewFieldSpec(documentprocessing.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentProcessing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentprocessing.FieldID)
		for _, f := range fields {
			if !documentprocessing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentprocessing.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(documentprocessing.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GcsPath(); ok {
		_spec.SetField(documentprocessing.FieldGcsPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(documentprocessing.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentStatus(); ok {
		_spec.SetField(documentprocessing.FieldDocumentStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinConfidence(); ok {
		_spec.SetField(documentprocessing.FieldMinConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinConfidence(); ok {
		_spec.AddField(documentprocessing.FieldMinConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MinConfidenceCleared() {
		_spec.ClearField(documentprocessing.FieldMinConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExceptionReasonCode(); ok {
		_spec.SetField(documentprocessing.FieldExceptionReasonCode, field.TypeString, value)
	}
	if _u.mutation.ExceptionReasonCodeCleared() {
		_spec.ClearField(documentprocessing.FieldExceptionReasonCode, field.TypeString)
	}
	if value, ok := _u.mutation.ExceptionReasonDescription(); ok {
		_spec.SetField(documentprocessing.FieldExceptionReasonDescription, field.TypeString, value)
	}
	if _u.mutation.ExceptionReasonDescriptionCleared() {
		_spec.ClearField(documentprocessing.FieldExceptionReasonDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ExceptionEntities(); ok {
		_spec.SetField(documentprocessing.FieldExceptionEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExceptionEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documentprocessing.FieldExceptionEntities, value)
		})
	}
	if _u.mutation.ExceptionEntitiesCleared() {
		_spec.ClearField(documentprocessing.FieldExceptionEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(documentprocessing.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(documentprocessing.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RawProcessorOutput(); ok {
		_spec.SetField(documentprocessing.FieldRawProcessorOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawProcessorOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documentprocessing.FieldRawProcessorOutput, value)
		})
	}
	if _u.mutation.RawProcessorOutputCleared() {
		_spec.ClearField(documentprocessing.FieldRawProcessorOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documentprocessing.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentprocessing.EntitiesTable,
			Columns: []string{documentprocessing.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedentity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntitiesIDs(); len(nodes) > 0 && !_u.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentprocessing.EntitiesTable,
			Columns: []string{documentprocessing.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedentity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentprocessing.EntitiesTable,
			Columns: []string{documentprocessing.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedentity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentProcessing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentprocessing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
