// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/si-akram/invoice-docai/gen/ent/documentprocessing"
	"github.com/si-akram/invoice-docai/gen/ent/extractedentity"
)

// DocumentProcessingCreate is the builder for creating a DocumentProcessing entity.
type DocumentProcessingCreate struct {
	config
	mutation *DocumentProcessingMutation
	hooks    []Hook
}

// SetFileName sets the "file_name" field.
func (_c *DocumentProcessingCreate) SetFileName(v string) *DocumentProcessingCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetGcsPath sets the "gcs_path" field.
func (_c *DocumentProcessingCreate) SetGcsPath(v string) *DocumentProcessingCreate {
	_c.mutation.SetGcsPath(v)
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *DocumentProcessingCreate) SetProcessingStatus(v string) *DocumentProcessingCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *DocumentProcessingCreate) SetNillableProcessingStatus(v *string) *DocumentProcessingCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetDocumentStatus sets the "document_status" field.
func (_c *DocumentProcessingCreate) SetDocumentStatus(v string) *DocumentProcessingCreate {
	_c.mutation.SetDocumentStatus(v)
	return _c
}

// SetNillableDocumentStatus sets the "document_status" field if the given value is not nil.
func (_c *DocumentProcessingCreate) SetNillableDocumentStatus(v *string) *DocumentProcessingCreate {
	if v != nil {
		_c.SetDocumentStatus(*v)
	}
	return _c
}

// SetMinConfidence sets the "min_confidence" field.
func (_c *DocumentProcessingCreate) SetMinConfidence(v float64) *DocumentProcessingCreate {
	_c.mutation.SetMinConfidence(v)
	return _c
}

// SetNillableMinConfidence sets the "min_confidence" field if the given value is not nil.
func (_c *DocumentProcessingCreate) SetNillableMinConfidence(v *float64) *DocumentProcessingCreate {
	if v != nil {
		_c.SetMinConfidence(*v)
	}
	return _c
}

// SetExceptionReasonCode sets the "exception_reason_code" field.
func (_c *DocumentProcessingCreate) SetExceptionReasonCode(v string) *DocumentProcessingCreate {
	_c.mutation.SetExceptionReasonCode(v)
	return _c
}

// SetNillableExceptionReasonCode sets the "exception_reason_code" field if the given value is not nil.
func (_c *DocumentProcessingCreate) SetNillableExceptionReasonCode(v *string) *DocumentProcessingCreate {
	if v != nil {
		_c.SetExceptionReasonCode(*v)
	}
	return _c
}

// SetExceptionReasonDescription sets the "exception_reason_description" field.
func (_c *DocumentProcessingCreate) SetExceptionReasonDescription(v string) *DocumentProcessingCreate {
	_c.mutation.SetExceptionReasonDescription(v)
	return _c
}

// SetNillableExceptionReasonDescription sets the "exception_reason_description" field if the given value is not nil.
func (_c *DocumentProcessingCreate) SetNillableExceptionReasonDescription(v *string) *DocumentProcessingCreate {
	if v != nil {
		_c.SetExceptionReasonDescription(*v)
	}
	return _c
}

// SetExceptionEntities sets the "exception_entities" field.
func (_c *DocumentProcessingCreate) SetExceptionEntities(v json.RawMessage) *DocumentProcessingCreate {
	_c.mutation.SetExceptionEntities(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DocumentProcessingCreate) SetErrorMessage(v string) *DocumentProcessingCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DocumentProcessingCreate) SetNillableErrorMessage(v *string) *DocumentProcessingCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRawProcessorOutput sets the "raw_processor_output" field.
func (_c *DocumentProcessingCreate) SetRawProcessorOutput(v json.RawMessage) *DocumentProcessingCreate {
	_c.mutation.SetRawProcessorOutput(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentProcessingCreate) SetCreatedAt(v time.Time) *DocumentProcessingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentProcessingCreate) SetNillableCreatedAt(v *time.Time) *DocumentProcessingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentProcessingCreate) SetUpdatedAt(v time.Time) *DocumentProcessingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentProcessingCreate) SetNillableUpdatedAt(v *time.Time) *DocumentProcessingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddEntityIDs adds the "entities" edge to the ExtractedEntity entity by IDs.
func (_c *DocumentProcessingCreate) AddEntityIDs(ids ...int) *DocumentProcessingCreate {
	_c.mutation.AddEntityIDs(ids...)
	return _c
}

// AddEntities adds the "entities" edges to the ExtractedEntity entity.
func (_c *DocumentProcessingCreate) AddEntities(v ...*ExtractedEntity) *DocumentProcessingCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntityIDs(ids...)
}

// Mutation returns the DocumentProcessingMutation object of the builder.
func (_c *DocumentProcessingCreate) Mutation() *DocumentProcessingMutation {
	return _c.mutation
}

// Save creates the DocumentProcessing in the database.
func (_c *DocumentProcessingCreate) Save(ctx context.Context) (*DocumentProcessing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentProcessingCreate) SaveX(ctx context.Context) *DocumentProcessing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentProcessingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentProcessingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentProcessingCreate) defaults() {
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := documentprocessing.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.DocumentStatus(); !ok {
		v := documentprocessing.DefaultDocumentStatus
		_c.mutation.SetDocumentStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documentprocessing.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := documentprocessing.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentProcessingCreate) check() error {
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "DocumentProcessing.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := documentprocessing.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "DocumentProcessing.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GcsPath(); !ok {
		return &ValidationError{Name: "gcs_path", err: errors.New(`ent: missing required field "DocumentProcessing.gcs_path"`)}
	}
	if v, ok := _c.mutation.GcsPath(); ok {
		if err := documentprocessing.GcsPathValidator(v); err != nil {
			return &ValidationError{Name: "gcs_path", err: fmt.Errorf(`ent: validator failed for field "DocumentProcessing.gcs_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "DocumentProcessing.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := documentprocessing.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "DocumentProcessing.processing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentStatus(); !ok {
		return &ValidationError{Name: "document_status", err: errors.New(`ent: missing required field "DocumentProcessing.document_status"`)}
	}
	if v, ok := _c.mutation.DocumentStatus(); ok {
		if err := documentprocessing.DocumentStatusValidator(v); err != nil {
			return &ValidationError{Name: "document_status", err: fmt.Errorf(`ent: validator failed for field "DocumentProcessing.document_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentProcessing.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DocumentProcessing.updated_at"`)}
	}
	return nil
}

func (_c *DocumentProcessingCreate) sqlSave(ctx context.Context) (*DocumentProcessing, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentProcessingCreate) createSpec() (*DocumentProcessing, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentProcessing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentprocessing.Table, sqlgraph.NewFieldSpec(documentprocessing.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(documentprocessing.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.GcsPath(); ok {
		_spec.SetField(documentprocessing.FieldGcsPath, field.TypeString, value)
		_node.GcsPath = value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(documentprocessing.FieldProcessingStatus, field.TypeString, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.DocumentStatus(); ok {
		_spec.SetField(documentprocessing.FieldDocumentStatus, field.TypeString, value)
		_node.DocumentStatus = value
	}
	if value, ok := _c.mutation.MinConfidence(); ok {
		_spec.SetField(documentprocessing.FieldMinConfidence, field.TypeFloat64, value)
		_node.MinConfidence = &value
	}
	if value, ok := _c.mutation.ExceptionReasonCode(); ok {
		_spec.SetField(documentprocessing.FieldExceptionReasonCode, field.TypeString, value)
		_node.ExceptionReasonCode = &value
	}
	if value, ok := _c.mutation.ExceptionReasonDescription(); ok {
		_spec.SetField(documentprocessing.FieldExceptionReasonDescription, field.TypeString, value)
		_node.ExceptionReasonDescription = &value
	}
	if value, ok := _c.mutation.ExceptionEntities(); ok {
		_spec.SetField(documentprocessing.FieldExceptionEntities, field.TypeJSON, value)
		_node.ExceptionEntities = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(documentprocessing.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RawProcessorOutput(); ok {
		_spec.SetField(documentprocessing.FieldRawProcessorOutput, field.TypeJSON, value)
		_node.RawProcessorOutput = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documentprocessing.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(documentprocessing.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EntitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentProcessingCreateBulk is the builder for creating many DocumentProcessing entities in bulk.
type DocumentProcessingCreateBulk struct {
	config
	err      error
	builders []*DocumentProcessingCreate
}

// Save creates the DocumentProcessing entities in the database.
func (_c *DocumentProcessingCreateBulk) Save(ctx context.Context) ([]*DocumentProcessing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentProcessing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentProcessingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentProcessingCreateBulk) SaveX(ctx context.Context) []*DocumentProcessing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentProcessingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentProcessingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
