// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/si-akram/invoice-docai/gen/ent/documentprocessing"
	"github.com/si-akram/invoice-docai/gen/ent/predicate"
)

// DocumentProcessingDelete is the builder for deleting a DocumentProcessing entity.
type DocumentProcessingDelete struct {
	config
	hooks    []Hook
	mutation *DocumentProcessingMutation
}

// Where appends a list predicates to the DocumentProcessingDelete builder.
func (_d *DocumentProcessingDelete) Where(ps ...predicate.DocumentProcessing) *DocumentProcessingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DocumentProcessingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocumentProcessingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DocumentProcessingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(documentprocessing.Table, sqlgraph.NewFieldSpec(documentprocessing.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DocumentProcessingDeleteOne is the builder for deleting a single DocumentProcessing entity.
type DocumentProcessingDeleteOne struct {
	_d *DocumentProcessingDelete
}

// Where appends a list predicates to the DocumentProcessingDelete builder.
func (_d *DocumentProcessingDeleteOne) Where(ps ...predicate.DocumentProcessing) *DocumentProcessingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DocumentProcessingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{documentprocessing.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocumentProcessingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
