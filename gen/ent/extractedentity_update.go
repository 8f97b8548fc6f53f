// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/si-akram/invoice-docai/gen/ent/documentprocessing"
	"github.com/si-akram/invoice-docai/gen/ent/extractedentity"
	"github.com/si-akram/invoice-docai/gen/ent/predicate"
)

// ExtractedEntityUpdate is the builder for updating ExtractedEntity entities.
type ExtractedEntityUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedEntityMutation
}

// Where appends a list predicates to the ExtractedEntityUpdate builder.
func (_u *ExtractedEntityUpdate) Where(ps ...predicate.ExtractedEntity) *ExtractedEntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProcessingID sets the "processing_id" field.
func (_u *ExtractedEntityUpdate) SetProcessingID(v int) *ExtractedEntityUpdate {
	_u.mutation.SetProcessingID(v)
	return _u
}

// SetNillableProcessingID sets the "processing_id" field if the given value is not nil.
func (_u *ExtractedEntityUpdate) SetNillableProcessingID(v *int) *ExtractedEntityUpdate {
	if v != nil {
		_u.SetProcessingID(*v)
	}
	return _u
}

// SetEntityName sets the "entity_name" field.
func (_u *ExtractedEntityUpdate) SetEntityName(v string) *ExtractedEntityUpdate {
	_u.mutation.SetEntityName(v)
	return _u
}

// SetNillableEntityName sets the "entity_name" field if the given value is not nil.
func (_u *ExtractedEntityUpdate) SetNillableEntityName(v *string) *ExtractedEntityUpdate {
	if v != nil {
		_u.SetEntityName(*v)
	}
	return _u
}

// SetEntityValue sets the "entity_value" field.
func (_u *ExtractedEntityUpdate) SetEntityValue(v string) *ExtractedEntityUpdate {
	_u.mutation.SetEntityValue(v)
	return _u
}

// SetNillableEntityValue sets the "entity_value" field if the given value is not nil.
func (_u *ExtractedEntityUpdate) SetNillableEntityValue(v *string) *ExtractedEntityUpdate {
	if v != nil {
		_u.SetEntityValue(*v)
	}
	return _u
}

// ClearEntityValue clears the value of the "entity_value" field.
func (_u *ExtractedEntityUpdate) ClearEntityValue() *ExtractedEntityUpdate {
	_u.mutation.ClearEntityValue()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ExtractedEntityUpdate) SetConfidenceScore(v float64) *ExtractedEntityUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ExtractedEntityUpdate) SetNillableConfidenceScore(v *float64) *ExtractedEntityUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ExtractedEntityUpdate) AddConfidenceScore(v float64) *ExtractedEntityUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *ExtractedEntityUpdate) ClearConfidenceScore() *ExtractedEntityUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *ExtractedEntityUpdate) SetPageNumber(v int) *ExtractedEntityUpdate {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *ExtractedEntityUpdate) SetNillablePageNumber(v *int) *ExtractedEntityUpdate {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *ExtractedEntityUpdate) AddPageNumber(v int) *ExtractedEntityUpdate {
	_u.mutation.AddPageNumber(v)
	return _u
}

// ClearPageNumber clears the value of the "page_number" field.
func (_u *ExtractedEntityUpdate) ClearPageNumber() *ExtractedEntityUpdate {
	_u.mutation.ClearPageNumber()
	return _u
}

// SetBoundingBox sets the "bounding_box" field.
func (_u *ExtractedEntityUpdate) SetBoundingBox(v json.RawMessage) *ExtractedEntityUpdate {
	_u.mutation.SetBoundingBox(v)
	return _u
}

// AppendBoundingBox appends value to the "bounding_box" field.
func (_u *ExtractedEntityUpdate) AppendBoundingBox(v json.RawMessage) *ExtractedEntityUpdate {
	_u.mutation.AppendBoundingBox(v)
	return _u
}

// ClearBoundingBox clears the value of the "bounding_box" field.
func (_u *ExtractedEntityUpdate) ClearBoundingBox() *ExtractedEntityUpdate {
	_u.mutation.ClearBoundingBox()
	return _u
}

// SetProcessing sets the "processing" edge to the DocumentProcessing entity.
func (_u *ExtractedEntityUpdate) SetProcessing(v *DocumentProcessing) *ExtractedEntityUpdate {
	return _u.SetProcessingID(v.ID)
}

// Mutation returns the ExtractedEntityMutation object of the builder.
func (_u *ExtractedEntityUpdate) Mutation() *ExtractedEntityMutation {
	return _u.mutation
}

// ClearProcessing clears the "processing" edge to the DocumentProcessing entity.
func (_u *ExtractedEntityUpdate) ClearProcessing() *ExtractedEntityUpdate {
	_u.mutation.ClearProcessing()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedEntityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedEntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedEntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedEntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedEntityUpdate) check() error {
	if v, ok := _u.mutation.EntityName(); ok {
		if err := extractedentity.EntityNameValidator(v); err != nil {
			return &ValidationError{Name: "entity_name", err: fmt.Errorf(`ent: validator failed for field "ExtractedEntity.entity_name": %w`, err)}
		}
	}
	if _u.mutation.ProcessingCleared() && len(_u.mutation.ProcessingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedEntity.processing"`)
	}
	return nil
}

func (_u *ExtractedEntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedentity.Table, extractedentity.Columns, sqlgraph.NewFieldSpec(extractedentity.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityName(); ok {
		_spec.SetField(extractedentity.FieldEntityName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityValue(); ok {
		_spec.SetField(extractedentity.FieldEntityValue, field.TypeString, value)
	}
	if _u.mutation.EntityValueCleared() {
		_spec.ClearField(extractedentity.FieldEntityValue, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractedentity.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extractedentity.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(extractedentity.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(extractedentity.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(extractedentity.FieldPageNumber, field.TypeInt, value)
	}
	if _u.mutation.PageNumberCleared() {
		_spec.ClearField(extractedentity.FieldPageNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.BoundingBox(); ok {
		_spec.SetField(extractedentity.FieldBoundingBox, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBoundingBox(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedentity.FieldBoundingBox, value)
		})
	}
	if _u.mutation.BoundingBoxCleared() {
		_spec.ClearField(extractedentity.FieldBoundingBox, field.TypeJSON)
	}
	if _u.mutation.ProcessingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedentity.ProcessingTable,
			Columns: []string{extractedentity.ProcessingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentprocessing.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedentity.ProcessingTable,
			Columns: []string{extractedentity.ProcessingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentprocessing.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedEntityUpdateOne is the builder for updating a single ExtractedEntity entity.
type ExtractedEntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedEntityMutation
}

// SetProcessingID sets the "processing_id" field.
func (_u *ExtractedEntityUpdateOne) SetProcessingID(v int) *ExtractedEntityUpdateOne {
	_u.mutation.SetProcessingID(v)
	return _u
}

// SetNillableProcessingID sets the "processing_id" field if the given value is not nil.
func (_u *ExtractedEntityUpdateOne) SetNillableProcessingID(v *int) *ExtractedEntityUpdateOne {
	if v != nil {
		_u.SetProcessingID(*v)
	}
	return _u
}

// SetEntityName sets the "entity_name" field.
func (_u *ExtractedEntityUpdateOne) SetEntityName(v string) *ExtractedEntityUpdateOne {
	_u.mutation.SetEntityName(v)
	return _u
}

// SetNillableEntityName sets the "entity_name" field if the given value is not nil.
func (_u *ExtractedEntityUpdateOne) SetNillableEntityName(v *string) *ExtractedEntityUpdateOne {
	if v != nil {
		_u.SetEntityName(*v)
	}
	return _u
}

// SetEntityValue sets the "entity_value" field.
func (_u *ExtractedEntityUpdateOne) SetEntityValue(v string) *ExtractedEntityUpdateOne {
	_u.mutation.SetEntityValue(v)
	return _u
}

// SetNillableEntityValue sets the "entity_value" field if the given value is not nil.
func (_u *ExtractedEntityUpdateOne) SetNillableEntityValue(v *string) *ExtractedEntityUpdateOne {
	if v != nil {
		_u.SetEntityValue(*v)
	}
	return _u
}

// ClearEntityValue clears the value of the "entity_value" field.
func (_u *ExtractedEntityUpdateOne) ClearEntityValue() *ExtractedEntityUpdateOne {
	_u.mutation.ClearEntityValue()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ExtractedEntityUpdateOne) SetConfidenceScore(v float64) *ExtractedEntityUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ExtractedEntityUpdateOne) SetNillableConfidenceScore(v *float64) *ExtractedEntityUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ExtractedEntityUpdateOne) AddConfidenceScore(v float64) *ExtractedEntityUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *ExtractedEntityUpdateOne) ClearConfidenceScore() *ExtractedEntityUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *ExtractedEntityUpdateOne) SetPageNumber(v int) *ExtractedEntityUpdateOne {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *ExtractedEntityUpdateOne) SetNillablePageNumber(v *int) *ExtractedEntityUpdateOne {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *ExtractedEntityUpdateOne) AddPageNumber(v int) *ExtractedEntityUpdateOne {
	_u.mutation.AddPageNumber(v)
	return _u
}

// ClearPageNumber clears the value of the "page_number" field.
func (_u *ExtractedEntityUpdateOne) ClearPageNumber() *ExtractedEntityUpdateOne {
	_u.mutation.ClearPageNumber()
	return _u
}

// SetBoundingBox sets the "bounding_box" field.
func (_u *ExtractedEntityUpdateOne) SetBoundingBox(v json.RawMessage) *ExtractedEntityUpdateOne {
	_u.mutation.SetBoundingBox(v)
	return _u
}

// AppendBoundingBox appends value to the "bounding_box" field.
func (_u *ExtractedEntityUpdateOne) AppendBoundingBox(v json.RawMessage) *ExtractedEntityUpdateOne {
	_u.mutation.AppendBoundingBox(v)
	return _u
}

// ClearBoundingBox clears the value of the "bounding_box" field.
func (_u *ExtractedEntityUpdateOne) ClearBoundingBox() *ExtractedEntityUpdateOne {
	_u.mutation.ClearBoundingBox()
	return _u
}

// SetProcessing sets the "processing" edge to the DocumentProcessing entity.
func (_u *ExtractedEntityUpdateOne) SetProcessing(v *DocumentProcessing) *ExtractedEntityUpdateOne {
	return _u.SetProcessingID(v.ID)
}

// Mutation returns the ExtractedEntityMutation object of the builder.
func (_u *ExtractedEntityUpdateOne) Mutation() *ExtractedEntityMutation {
	return _u.mutation
}

// ClearProcessing clears the "processing" edge to the DocumentProcessing entity.
func (_u *ExtractedEntityUpdateOne) ClearProcessing() *ExtractedEntityUpdateOne {
	_u.mutation.ClearProcessing()
	return _u
}

// Where appends a list predicates to the ExtractedEntityUpdate builder.
func (_u *ExtractedEntityUpdateOne) Where(ps ...predicate.ExtractedEntity) *ExtractedEntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedEntityUpdateOne) Select(field string, fields ...string) *ExtractedEntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedEntity entity.
func (_u *ExtractedEntityUpdateOne) Save(ctx context.Context) (*ExtractedEntity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedEntityUpdateOne) SaveX(ctx context.Context) *ExtractedEntity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedEntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedEntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedEntityUpdateOne) check() error {
	if v, ok := _u.mutation.EntityName(); ok {
		if err := extractedentity.EntityNameValidator(v); err != nil {
			return &ValidationError{Name: "entity_name", err: fmt.Errorf(`ent: validator failed for field "ExtractedEntity.entity_name": %w`, err)}
		}
	}
	if _u.mutation.ProcessingCleared() && len(_u.mutation.ProcessingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedEntity.processing"`)
	}
	return nil
}

func (_u *ExtractedEntityUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedEntity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedentity.Table, extractedentity.Columns, sqlgraph.NewFieldSpec(extractedentity.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedEntity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedentity.FieldID)
		for _, f := range fields {
			if !extractedentity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedentity.FieldID {
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
	if value, ok := _u.mutation.EntityName(); ok {
		_spec.SetField(extractedentity.FieldEntityName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityValue(); ok {
		_spec.SetField(extractedentity.FieldEntityValue, field.TypeString, value)
	}
	if _u.mutation.EntityValueCleared() {
		_spec.ClearField(extractedentity.FieldEntityValue, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractedentity.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extractedentity.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(extractedentity.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(extractedentity.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(extractedentity.FieldPageNumber, field.TypeInt, value)
	}
	if _u.mutation.PageNumberCleared() {
		_spec.ClearField(extractedentity.FieldPageNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.BoundingBox(); ok {
		_spec.SetField(extractedentity.FieldBoundingBox, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBoundingBox(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedentity.FieldBoundingBox, value)
		})
	}
	if _u.mutation.BoundingBoxCleared() {
		_spec.ClearField(extractedentity.FieldBoundingBox, field.TypeJSON)
	}
	if _u.mutation.ProcessingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedentity.ProcessingTable,
			Columns: []string{extractedentity.ProcessingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentprocessing.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedentity.ProcessingTable,
			Columns: []string{extractedentity.ProcessingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentprocessing.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedEntity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
