// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/si-akram/invoice-docai/gen/ent/documentprocessing"
	"github.com/si-akram/invoice-docai/gen/ent/extractedentity"
	"github.com/si-akram/invoice-docai/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocumentProcessing = "DocumentProcessing"
	TypeExtractedEntity    = "ExtractedEntity"
)

// DocumentProcessingMutation represents an operation that mutates the DocumentProcessing nodes in the graph.
type DocumentProcessingMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int
	file_name                    *string
	gcs_path                     *string
	processing_status            *string
	document_status              *string
	min_confidence               *float64
	addmin_confidence            *float64
	exception_reason_code        *string
	exception_reason_description *string
	exception_entities           *json.RawMessage
	appendexception_entities     json.RawMessage
	error_message                *string
	raw_processor_output         *json.RawMessage
	appendraw_processor_output   json.RawMessage
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	entities                     map[int]struct{}
	removedentities              map[int]struct{}
	clearedentities              bool
	done                         bool
	oldValue                     func(context.Context) (*DocumentProcessing, error)
	predicates                   []predicate.DocumentProcessing
}

var _ ent.Mutation = (*DocumentProcessingMutation)(nil)

// documentprocessingOption allows management of the mutation configuration using functional options.
type documentprocessingOption func(*DocumentProcessingMutation)

// newDocumentProcessingMutation creates new mutation for the DocumentProcessing entity.
func newDocumentProcessingMutation(c config, op Op, opts ...documentprocessingOption) *DocumentProcessingMutation {
	m := &DocumentProcessingMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentProcessing,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentProcessingID sets the ID field of the mutation.
func withDocumentProcessingID(id int) documentprocessingOption {
	return func(m *DocumentProcessingMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentProcessing
		)
		m.oldValue = func(ctx context.Context) (*DocumentProcessing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentProcessing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentProcessing sets the old DocumentProcessing of the mutation.
func withDocumentProcessing(node *DocumentProcessing) documentprocessingOption {
	return func(m *DocumentProcessingMutation) {
		m.oldValue = func(context.Context) (*DocumentProcessing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentProcessingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentProcessingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentProcessingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentProcessingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentProcessing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileName sets the "file_name" field.
func (m *DocumentProcessingMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentProcessingMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the DocumentProcessing entity.
// If the DocumentProcessing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentProcessingMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentProcessingMutation) ResetFileName() {
	m.file_name = nil
}

// SetGcsPath sets the "gcs_path" field.
func (m *DocumentProcessingMutation) SetGcsPath(s string) {
	m.gcs_path = &s
}

// GcsPath returns the value of the "gcs_path" field in the mutation.
func (m *DocumentProcessingMutation) GcsPath() (r string, exists bool) {
	v := m.gcs_path
	if v == nil {
		return
	}
	return *v, true
}

// OldGcsPath returns the old "gcs_path" field's value of the DocumentProcessing entity.
// If the DocumentProcessing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentProcessingMutation) OldGcsPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGcsPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGcsPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGcsPath: %w", err)
	}
	return oldValue.GcsPath, nil
}

// ResetGcsPath resets all changes to the "gcs_path" field.
func (m *DocumentProcessingMutation) ResetGcsPath() {
	m.gcs_path = nil
}

// SetProcessingStatus sets the "processing_status" field.
func (m *DocumentProcessingMutation) SetProcessingStatus(s string) {
	m.processing_status = &s
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *DocumentProcessingMutation) ProcessingStatus() (r string, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the DocumentProcessing entity.
// If the DocumentProcessing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentProcessingMutation) OldProcessingStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *DocumentProcessingMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetDocumentStatus sets the "document_status" field.
func (m *DocumentProcessingMutation) SetDocumentStatus(s string) {
	m.document_status = &s
}

// DocumentStatus returns the value of the "document_status" field in the mutation.
func (m *DocumentProcessingMutation) DocumentStatus() (r string, exists bool) {
	v := m.document_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentStatus returns the old "document_status" field's value of the DocumentProcessing entity.
// If the DocumentProcessing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentProcessingMutation) OldDocumentStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentStatus: %w", err)
	}
	return oldValue.DocumentStatus, nil
}

// ResetDocumentStatus resets all changes to the "document_status" field.
func (m *DocumentProcessingMutation) ResetDocumentStatus() {
	m.document_status = nil
}

// SetMinConfidence sets the "min_confidence" field.
func (m *DocumentProcessingMutation) SetMinConfidence(f float64) {
	m.min_confidence = &f
	m.addmin_confidence = nil
}

// MinConfidence returns the value of the "min_confidence" field in the mutation.
func (m *DocumentProcessingMutation) MinConfidence() (r float64, exists bool) {
	v := m.min_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldMinConfidence returns the old "min_confidence" field's value of the DocumentProcessing entity.
// If the DocumentProcessing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentProcessingMutation) OldMinConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinConfidence: %w", err)
	}
	return oldValue.MinConfidence, nil
}

// AddMinConfidence adds f to the "min_confidence" field.
func (m *DocumentProcessingMutation) AddMinConfidence(f float64) {
	if m.addmin_confidence != nil {
		*m.addmin_confidence += f
	} else {
		m.addmin_confidence = &f
	}
}

// AddedMinConfidence returns the value that was added to the "min_confidence" field in this mutation.
func (m *DocumentProcessingMutation) AddedMinConfidence() (r float64, exists bool) {
	v := m.addmin_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearMinConfidence clears the value of the "min_confidence" field.
func (m *DocumentProcessingMutation) ClearMinConfidence() {
	m.min_confidence = nil
	m.addmin_confidence = nil
	m.clearedFields[documentprocessing.FieldMinConfidence] = struct{}{}
}

// MinConfidenceCleared returns if the "min_confidence" field was cleared in this mutation.
func (m *DocumentProcessingMutation) MinConfidenceCleared() bool {
	_, ok := m.clearedFields[documentprocessing.FieldMinConfidence]
	return ok
}

// ResetMinConfidence resets all changes to the "min_confidence" field.
func (m *DocumentProcessingMutation) ResetMinConfidence() {
	m.min_confidence = nil
	m.addmin_confidence = nil
	delete(m.clearedFields, documentprocessing.FieldMinConfidence)
}

// SetExceptionReasonCode sets the "exception_reason_code" field.
func (m *DocumentProcessingMutation) SetExceptionReasonCode(s string) {
	m.exception_reason_code = &s
}

// ExceptionReasonCode returns the value of the "exception_reason_code" field in the mutation.
func (m *DocumentProcessingMutation) ExceptionReasonCode() (r string, exists bool) {
	v := m.exception_reason_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExceptionReasonCode returns the old "exception_reason_code" field's value of the DocumentProcessing entity.
// If the DocumentProcessing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentProcessingMutation) OldExceptionReasonCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExceptionReasonCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExceptionReasonCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExceptionReasonCode: %w", err)
	}
	return oldValue.ExceptionReasonCode, nil
}

// ClearExceptionReasonCode clears the value of the "exception_reason_code" field.
func (m *DocumentProcessingMutation) ClearExceptionReasonCode() {
	m.exception_reason_code = nil
	m.clearedFields[documentprocessing.FieldExceptionReasonCode] = struct{}{}
}

// ExceptionReasonCodeCleared returns if the "exception_reason_code" field was cleared in this mutation.
func (m *DocumentProcessingMutation) ExceptionReasonCodeCleared() bool {
	_, ok := m.clearedFields[documentprocessing.FieldExceptionReasonCode]
	return ok
}

// ResetExceptionReasonCode resets all changes to the "exception_reason_code" field.
func (m *DocumentProcessingMutation) ResetExceptionReasonCode() {
	m.exception_reason_code = nil
	delete(m.clearedFields, documentprocessing.FieldExceptionReasonCode)
}

// SetExceptionReasonDescription sets the "exception_reason_description" field.
func (m *DocumentProcessingMutation) SetExceptionReasonDescription(s string) {
	m.exception_reason_description = &s
}

// ExceptionReasonDescription returns the value of the "exception_reason_description" field in the mutation.
func (m *DocumentProcessingMutation) ExceptionReasonDescription() (r string, exists bool) {
	v := m.exception_reason_description
	if v == nil {
		return
	}
	return *v, true
}

// OldExceptionReasonDescription returns the old "exception_reason_description" field's value of the DocumentProcessing entity.
// If the DocumentProcessing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentProcessingMutation) OldExceptionReasonDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExceptionReasonDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExceptionReasonDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExceptionReasonDescription: %w", err)
	}
	return oldValue.ExceptionReasonDescription, nil
}

// ClearExceptionReasonDescription clears the value of the "exception_reason_description" field.
func (m *DocumentProcessingMutation) ClearExceptionReasonDescription() {
	m.exception_reason_description = nil
	m.clearedFields[documentprocessing.FieldExceptionReasonDescription] = struct{}{}
}

// ExceptionReasonDescriptionCleared returns if the "exception_reason_description" field was cleared in this mutation.
func (m *DocumentProcessingMutation) ExceptionReasonDescriptionCleared() bool {
	_, ok := m.clearedFields[documentprocessing.FieldExceptionReasonDescription]
	return ok
}

// ResetExceptionReasonDescription resets all changes to the "exception_reason_description" field.
func (m *DocumentProcessingMutation) ResetExceptionReasonDescription() {
	m.exception_reason_description = nil
	delete(m.clearedFields, documentprocessing.FieldExceptionReasonDescription)
}

// SetExceptionEntities sets the "exception_entities" field.
func (m *DocumentProcessingMutation) SetExceptionEntities(jm json.RawMessage) {
	m.exception_entities = &jm
	m.appendexception_entities = nil
}

// ExceptionEntities returns the value of the "exception_entities" field in the mutation.
func (m *DocumentProcessingMutation) ExceptionEntities() (r json.RawMessage, exists bool) {
	v := m.exception_entities
	if v == nil {
		return
	}
	return *v, true
}

// OldExceptionEntities returns the old "exception_entities" field's value of the DocumentProcessing entity.
// If the DocumentProcessing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentProcessingMutation) OldExceptionEntities(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExceptionEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExceptionEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExceptionEntities: %w", err)
	}
	return oldValue.ExceptionEntities, nil
}

// AppendExceptionEntities adds jm to the "exception_entities" field.
func (m *DocumentProcessingMutation) AppendExceptionEntities(jm json.RawMessage) {
	m.appendexception_entities = append(m.appendexception_entities, jm...)
}

// AppendedExceptionEntities returns the list of values that were appended to the "exception_entities" field in this mutation.
func (m *DocumentProcessingMutation) AppendedExceptionEntities() (json.RawMessage, bool) {
	if len(m.appendexception_entities) == 0 {
		return nil, false
	}
	return m.appendexception_entities, true
}

// ClearExceptionEntities clears the value of the "exception_entities" field.
func (m *DocumentProcessingMutation) ClearExceptionEntities() {
	m.exception_entities = nil
	m.appendexception_entities = nil
	m.clearedFields[documentprocessing.FieldExceptionEntities] = struct{}{}
}

// ExceptionEntitiesCleared returns if the "exception_entities" field was cleared in this mutation.
func (m *DocumentProcessingMutation) ExceptionEntitiesCleared() bool {
	_, ok := m.clearedFields[documentprocessing.FieldExceptionEntities]
	return ok
}

// ResetExceptionEntities resets all changes to the "exception_entities" field.
func (m *DocumentProcessingMutation) ResetExceptionEntities() {
	m.exception_entities = nil
	m.appendexception_entities = nil
	delete(m.clearedFields, documentprocessing.FieldExceptionEntities)
}

// SetErrorMessage sets the "error_message" field.
func (m *DocumentProcessingMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DocumentProcessingMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DocumentProcessing entity.
// If the DocumentProcessing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentProcessingMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DocumentProcessingMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[documentprocessing.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DocumentProcessingMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[documentprocessing.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DocumentProcessingMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, documentprocessing.FieldErrorMessage)
}

// SetRawProcessorOutput sets the "raw_processor_output" field.
func (m *DocumentProcessingMutation) SetRawProcessorOutput(jm json.RawMessage) {
	m.raw_processor_output = &jm
	m.appendraw_processor_output = nil
}

// RawProcessorOutput returns the value of the "raw_processor_output" field in the mutation.
func (m *DocumentProcessingMutation) RawProcessorOutput() (r json.RawMessage, exists bool) {
	v := m.raw_processor_output
	if v == nil {
		return
	}
	return *v, true
}

// OldRawProcessorOutput returns the old "raw_processor_output" field's value of the DocumentProcessing entity.
// If the DocumentProcessing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentProcessingMutation) OldRawProcessorOutput(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawProcessorOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawProcessorOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawProcessorOutput: %w", err)
	}
	return oldValue.RawProcessorOutput, nil
}

// AppendRawProcessorOutput adds jm to the "raw_processor_output" field.
func (m *DocumentProcessingMutation) AppendRawProcessorOutput(jm json.RawMessage) {
	m.appendraw_processor_output = append(m.appendraw_processor_output, jm...)
}

// AppendedRawProcessorOutput returns the list of values that were appended to the "raw_processor_output" field in this mutation.
func (m *DocumentProcessingMutation) AppendedRawProcessorOutput() (json.RawMessage, bool) {
	if len(m.appendraw_processor_output) == 0 {
		return nil, false
	}
	return m.appendraw_processor_output, true
}

// ClearRawProcessorOutput clears the value of the "raw_processor_output" field.
func (m *DocumentProcessingMutation) ClearRawProcessorOutput() {
	m.raw_processor_output = nil
	m.appendraw_processor_output = nil
	m.clearedFields[documentprocessing.FieldRawProcessorOutput] = struct{}{}
}

// RawProcessorOutputCleared returns if the "raw_processor_output" field was cleared in this mutation.
func (m *DocumentProcessingMutation) RawProcessorOutputCleared() bool {
	_, ok := m.clearedFields[documentprocessing.FieldRawProcessorOutput]
	return ok
}

// ResetRawProcessorOutput resets all changes to the "raw_processor_output" field.
func (m *DocumentProcessingMutation) ResetRawProcessorOutput() {
	m.raw_processor_output = nil
	m.appendraw_processor_output = nil
	delete(m.clearedFields, documentprocessing.FieldRawProcessorOutput)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentProcessingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentProcessingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentProcessing entity.
// If the DocumentProcessing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentProcessingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentProcessingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentProcessingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentProcessingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DocumentProcessing entity.
// If the DocumentProcessing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentProcessingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentProcessingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddEntityIDs adds the "entities" edge to the ExtractedEntity entity by ids.
func (m *DocumentProcessingMutation) AddEntityIDs(ids ...int) {
	if m.entities == nil {
		m.entities = make(map[int]struct{})
	}
	for i := range ids {
		m.entities[ids[i]] = struct{}{}
	}
}

// ClearEntities clears the "entities" edge to the ExtractedEntity entity.
func (m *DocumentProcessingMutation) ClearEntities() {
	m.clearedentities = true
}

// EntitiesCleared reports if the "entities" edge to the ExtractedEntity entity was cleared.
func (m *DocumentProcessingMutation) EntitiesCleared() bool {
	return m.clearedentities
}

// RemoveEntityIDs removes the "entities" edge to the ExtractedEntity entity by IDs.
func (m *DocumentProcessingMutation) RemoveEntityIDs(ids ...int) {
	if m.removedentities == nil {
		m.removedentities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.entities, ids[i])
		m.removedentities[ids[i]] = struct{}{}
	}
}

// RemovedEntities returns the removed IDs of the "entities" edge to the ExtractedEntity entity.
func (m *DocumentProcessingMutation) RemovedEntitiesIDs() (ids []int) {
	for id := range m.removedentities {
		ids = append(ids, id)
	}
	return
}

// EntitiesIDs returns the "entities" edge IDs in the mutation.
func (m *DocumentProcessingMutation) EntitiesIDs() (ids []int) {
	for id := range m.entities {
		ids = append(ids, id)
	}
	return
}

// ResetEntities resets all changes to the "entities" edge.
func (m *DocumentProcessingMutation) ResetEntities() {
	m.entities = nil
	m.clearedentities = false
	m.removedentities = nil
}

// Where appends a list predicates to the DocumentProcessingMutation builder.
func (m *DocumentProcessingMutation) Where(ps ...predicate.DocumentProcessing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentProcessingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentProcessingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentProcessing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentProcessingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentProcessingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentProcessing).
func (m *DocumentProcessingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentProcessingMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.file_name != nil {
		fields = append(fields, documentprocessing.FieldFileName)
	}
	if m.gcs_path != nil {
		fields = append(fields, documentprocessing.FieldGcsPath)
	}
	if m.processing_status != nil {
		fields = append(fields, documentprocessing.FieldProcessingStatus)
	}
	if m.document_status != nil {
		fields = append(fields, documentprocessing.FieldDocumentStatus)
	}
	if m.min_confidence != nil {
		fields = append(fields, documentprocessing.FieldMinConfidence)
	}
	if m.exception_reason_code != nil {
		fields = append(fields, documentprocessing.FieldExceptionReasonCode)
	}
	if m.exception_reason_description != nil {
		fields = append(fields, documentprocessing.FieldExceptionReasonDescription)
	}
	if m.exception_entities != nil {
		fields = append(fields, documentprocessing.FieldExceptionEntities)
	}
	if m.error_message != nil {
		fields = append(fields, documentprocessing.FieldErrorMessage)
	}
	if m.raw_processor_output != nil {
		fields = append(fields, documentprocessing.FieldRawProcessorOutput)
	}
	if m.created_at != nil {
		fields = append(fields, documentprocessing.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, documentprocessing.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentProcessingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentprocessing.FieldFileName:
		return m.FileName()
	case documentprocessing.FieldGcsPath:
		return m.GcsPath()
	case documentprocessing.FieldProcessingStatus:
		return m.ProcessingStatus()
	case documentprocessing.FieldDocumentStatus:
		return m.DocumentStatus()
	case documentprocessing.FieldMinConfidence:
		return m.MinConfidence()
	case documentprocessing.FieldExceptionReasonCode:
		return m.ExceptionReasonCode()
	case documentprocessing.FieldExceptionReasonDescription:
		return m.ExceptionReasonDescription()
	case documentprocessing.FieldExceptionEntities:
		return m.ExceptionEntities()
	case documentprocessing.FieldErrorMessage:
		return m.ErrorMessage()
	case documentprocessing.FieldRawProcessorOutput:
		return m.RawProcessorOutput()
	case documentprocessing.FieldCreatedAt:
		return m.CreatedAt()
	case documentprocessing.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentProcessingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentprocessing.FieldFileName:
		return m.OldFileName(ctx)
	case documentprocessing.FieldGcsPath:
		return m.OldGcsPath(ctx)
	case documentprocessing.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case documentprocessing.FieldDocumentStatus:
		return m.OldDocumentStatus(ctx)
	case documentprocessing.FieldMinConfidence:
		return m.OldMinConfidence(ctx)
	case documentprocessing.FieldExceptionReasonCode:
		return m.OldExceptionReasonCode(ctx)
	case documentprocessing.FieldExceptionReasonDescription:
		return m.OldExceptionReasonDescription(ctx)
	case documentprocessing.FieldExceptionEntities:
		return m.OldExceptionEntities(ctx)
	case documentprocessing.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case documentprocessing.FieldRawProcessorOutput:
		return m.OldRawProcessorOutput(ctx)
	case documentprocessing.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case documentprocessing.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentProcessing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentProcessingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentprocessing.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case documentprocessing.FieldGcsPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGcsPath(v)
		return nil
	case documentprocessing.FieldProcessingStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case documentprocessing.FieldDocumentStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentStatus(v)
		return nil
	case documentprocessing.FieldMinConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinConfidence(v)
		return nil
	case documentprocessing.FieldExceptionReasonCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExceptionReasonCode(v)
		return nil
	case documentprocessing.FieldExceptionReasonDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExceptionReasonDescription(v)
		return nil
	case documentprocessing.FieldExceptionEntities:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExceptionEntities(v)
		return nil
	case documentprocessing.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case documentprocessing.FieldRawProcessorOutput:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawProcessorOutput(v)
		return nil
	case documentprocessing.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case documentprocessing.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentProcessing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentProcessingMutation) AddedFields() []string {
	var fields []string
	if m.addmin_confidence != nil {
		fields = append(fields, documentprocessing.FieldMinConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentProcessingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentprocessing.FieldMinConfidence:
		return m.AddedMinConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentProcessingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentprocessing.FieldMinConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentProcessing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentProcessingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentprocessing.FieldMinConfidence) {
		fields = append(fields, documentprocessing.FieldMinConfidence)
	}
	if m.FieldCleared(documentprocessing.FieldExceptionReasonCode) {
		fields = append(fields, documentprocessing.FieldExceptionReasonCode)
	}
	if m.FieldCleared(documentprocessing.FieldExceptionReasonDescription) {
		fields = append(fields, documentprocessing.FieldExceptionReasonDescription)
	}
	if m.FieldCleared(documentprocessing.FieldExceptionEntities) {
		fields = append(fields, documentprocessing.FieldExceptionEntities)
	}
	if m.FieldCleared(documentprocessing.FieldErrorMessage) {
		fields = append(fields, documentprocessing.FieldErrorMessage)
	}
	if m.FieldCleared(documentprocessing.FieldRawProcessorOutput) {
		fields = append(fields, documentprocessing.FieldRawProcessorOutput)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentProcessingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentProcessingMutation) ClearField(name string) error {
	switch name {
	case documentprocessing.FieldMinConfidence:
		m.ClearMinConfidence()
		return nil
	case documentprocessing.FieldExceptionReasonCode:
		m.ClearExceptionReasonCode()
		return nil
	case documentprocessing.FieldExceptionReasonDescription:
		m.ClearExceptionReasonDescription()
		return nil
	case documentprocessing.FieldExceptionEntities:
		m.ClearExceptionEntities()
		return nil
	case documentprocessing.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case documentprocessing.FieldRawProcessorOutput:
		m.ClearRawProcessorOutput()
		return nil
	}
	return fmt.Errorf("unknown DocumentProcessing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentProcessingMutation) ResetField(name string) error {
	switch name {
	case documentprocessing.FieldFileName:
		m.ResetFileName()
		return nil
	case documentprocessing.FieldGcsPath:
		m.ResetGcsPath()
		return nil
	case documentprocessing.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case documentprocessing.FieldDocumentStatus:
		m.ResetDocumentStatus()
		return nil
	case documentprocessing.FieldMinConfidence:
		m.ResetMinConfidence()
		return nil
	case documentprocessing.FieldExceptionReasonCode:
		m.ResetExceptionReasonCode()
		return nil
	case documentprocessing.FieldExceptionReasonDescription:
		m.ResetExceptionReasonDescription()
		return nil
	case documentprocessing.FieldExceptionEntities:
		m.ResetExceptionEntities()
		return nil
	case documentprocessing.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case documentprocessing.FieldRawProcessorOutput:
		m.ResetRawProcessorOutput()
		return nil
	case documentprocessing.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case documentprocessing.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentProcessing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentProcessingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.entities != nil {
		edges = append(edges, documentprocessing.EdgeEntities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentProcessingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentprocessing.EdgeEntities:
		ids := make([]ent.Value, 0, len(m.entities))
		for id := range m.entities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentProcessingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedentities != nil {
		edges = append(edges, documentprocessing.EdgeEntities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentProcessingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case documentprocessing.EdgeEntities:
		ids := make([]ent.Value, 0, len(m.removedentities))
		for id := range m.removedentities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentProcessingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedentities {
		edges = append(edges, documentprocessing.EdgeEntities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentProcessingMutation) EdgeCleared(name string) bool {
	switch name {
	case documentprocessing.EdgeEntities:
		return m.clearedentities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentProcessingMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentProcessing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentProcessingMutation) ResetEdge(name string) error {
	switch name {
	case documentprocessing.EdgeEntities:
		m.ResetEntities()
		return nil
	}
	return fmt.Errorf("unknown DocumentProcessing edge %s", name)
}

// ExtractedEntityMutation represents an operation that mutates the ExtractedEntity nodes in the graph.
type ExtractedEntityMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	entity_name         *string
	entity_value        *string
	confidence_score    *float64
	addconfidence_score *float64
	page_number         *int
	addpage_number      *int
	bounding_box        *json.RawMessage
	appendbounding_box  json.RawMessage
	created_at          *time.Time
	clearedFields       map[string]struct{}
	processing          *int
	clearedprocessing   bool
	done                bool
	oldValue            func(context.Context) (*ExtractedEntity, error)
	predicates          []predicate.ExtractedEntity
}

var _ ent.Mutation = (*ExtractedEntityMutation)(nil)

// extractedentityOption allows management of the mutation configuration using functional options.
type extractedentityOption func(*ExtractedEntityMutation)

// newExtractedEntityMutation creates new mutation for the ExtractedEntity entity.
func newExtractedEntityMutation(c config, op Op, opts ...extractedentityOption) *ExtractedEntityMutation {
	m := &ExtractedEntityMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedEntityID sets the ID field of the mutation.
func withExtractedEntityID(id int) extractedentityOption {
	return func(m *ExtractedEntityMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedEntity
		)
		m.oldValue = func(ctx context.Context) (*ExtractedEntity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedEntity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedEntity sets the old ExtractedEntity of the mutation.
func withExtractedEntity(node *ExtractedEntity) extractedentityOption {
	return func(m *ExtractedEntityMutation) {
		m.oldValue = func(context.Context) (*ExtractedEntity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedEntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedEntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedEntityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedEntityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedEntity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcessingID sets the "processing_id" field.
func (m *ExtractedEntityMutation) SetProcessingID(i int) {
	m.processing = &i
}

// ProcessingID returns the value of the "processing_id" field in the mutation.
func (m *ExtractedEntityMutation) ProcessingID() (r int, exists bool) {
	v := m.processing
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingID returns the old "processing_id" field's value of the ExtractedEntity entity.
// If the ExtractedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedEntityMutation) OldProcessingID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingID: %w", err)
	}
	return oldValue.ProcessingID, nil
}

// ResetProcessingID resets all changes to the "processing_id" field.
func (m *ExtractedEntityMutation) ResetProcessingID() {
	m.processing = nil
}

// SetEntityName sets the "entity_name" field.
func (m *ExtractedEntityMutation) SetEntityName(s string) {
	m.entity_name = &s
}

// EntityName returns the value of the "entity_name" field in the mutation.
func (m *ExtractedEntityMutation) EntityName() (r string, exists bool) {
	v := m.entity_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityName returns the old "entity_name" field's value of the ExtractedEntity entity.
// If the ExtractedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedEntityMutation) OldEntityName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityName: %w", err)
	}
	return oldValue.EntityName, nil
}

// ResetEntityName resets all changes to the "entity_name" field.
func (m *ExtractedEntityMutation) ResetEntityName() {
	m.entity_name = nil
}

// SetEntityValue sets the "entity_value" field.
func (m *ExtractedEntityMutation) SetEntityValue(s string) {
	m.entity_value = &s
}

// EntityValue returns the value of the "entity_value" field in the mutation.
func (m *ExtractedEntityMutation) EntityValue() (r string, exists bool) {
	v := m.entity_value
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityValue returns the old "entity_value" field's value of the ExtractedEntity entity.
// If the ExtractedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedEntityMutation) OldEntityValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityValue: %w", err)
	}
	return oldValue.EntityValue, nil
}

// ClearEntityValue clears the value of the "entity_value" field.
func (m *ExtractedEntityMutation) ClearEntityValue() {
	m.entity_value = nil
	m.clearedFields[extractedentity.FieldEntityValue] = struct{}{}
}

// EntityValueCleared returns if the "entity_value" field was cleared in this mutation.
func (m *ExtractedEntityMutation) EntityValueCleared() bool {
	_, ok := m.clearedFields[extractedentity.FieldEntityValue]
	return ok
}

// ResetEntityValue resets all changes to the "entity_value" field.
func (m *ExtractedEntityMutation) ResetEntityValue() {
	m.entity_value = nil
	delete(m.clearedFields, extractedentity.FieldEntityValue)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ExtractedEntityMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ExtractedEntityMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the ExtractedEntity entity.
// If the ExtractedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedEntityMutation) OldConfidenceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *ExtractedEntityMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ExtractedEntityMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *ExtractedEntityMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[extractedentity.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *ExtractedEntityMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[extractedentity.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ExtractedEntityMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, extractedentity.FieldConfidenceScore)
}

// SetPageNumber sets the "page_number" field.
func (m *ExtractedEntityMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *ExtractedEntityMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the ExtractedEntity entity.
// If the ExtractedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedEntityMutation) OldPageNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *ExtractedEntityMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *ExtractedEntityMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPageNumber clears the value of the "page_number" field.
func (m *ExtractedEntityMutation) ClearPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
	m.clearedFields[extractedentity.FieldPageNumber] = struct{}{}
}

// PageNumberCleared returns if the "page_number" field was cleared in this mutation.
func (m *ExtractedEntityMutation) PageNumberCleared() bool {
	_, ok := m.clearedFields[extractedentity.FieldPageNumber]
	return ok
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *ExtractedEntityMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
	delete(m.clearedFields, extractedentity.FieldPageNumber)
}

// SetBoundingBox sets the "bounding_box" field.
func (m *ExtractedEntityMutation) SetBoundingBox(jm json.RawMessage) {
	m.bounding_box = &jm
	m.appendbounding_box = nil
}

// BoundingBox returns the value of the "bounding_box" field in the mutation.
func (m *ExtractedEntityMutation) BoundingBox() (r json.RawMessage, exists bool) {
	v := m.bounding_box
	if v == nil {
		return
	}
	return *v, true
}

// OldBoundingBox returns the old "bounding_box" field's value of the ExtractedEntity entity.
// If the ExtractedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedEntityMutation) OldBoundingBox(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoundingBox is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoundingBox requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoundingBox: %w", err)
	}
	return oldValue.BoundingBox, nil
}

// AppendBoundingBox adds jm to the "bounding_box" field.
func (m *ExtractedEntityMutation) AppendBoundingBox(jm json.RawMessage) {
	m.appendbounding_box = append(m.appendbounding_box, jm...)
}

// AppendedBoundingBox returns the list of values that were appended to the "bounding_box" field in this mutation.
func (m *ExtractedEntityMutation) AppendedBoundingBox() (json.RawMessage, bool) {
	if len(m.appendbounding_box) == 0 {
		return nil, false
	}
	return m.appendbounding_box, true
}

// ClearBoundingBox clears the value of the "bounding_box" field.
func (m *ExtractedEntityMutation) ClearBoundingBox() {
	m.bounding_box = nil
	m.appendbounding_box = nil
	m.clearedFields[extractedentity.FieldBoundingBox] = struct{}{}
}

// BoundingBoxCleared returns if the "bounding_box" field was cleared in this mutation.
func (m *ExtractedEntityMutation) BoundingBoxCleared() bool {
	_, ok := m.clearedFields[extractedentity.FieldBoundingBox]
	return ok
}

// ResetBoundingBox resets all changes to the "bounding_box" field.
func (m *ExtractedEntityMutation) ResetBoundingBox() {
	m.bounding_box = nil
	m.appendbounding_box = nil
	delete(m.clearedFields, extractedentity.FieldBoundingBox)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedEntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedEntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedEntity entity.
// If the ExtractedEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedEntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedEntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProcessing clears the "processing" edge to the DocumentProcessing entity.
func (m *ExtractedEntityMutation) ClearProcessing() {
	m.clearedprocessing = true
	m.clearedFields[extractedentity.FieldProcessingID] = struct{}{}
}

// ProcessingCleared reports if the "processing" edge to the DocumentProcessing entity was cleared.
func (m *ExtractedEntityMutation) ProcessingCleared() bool {
	return m.clearedprocessing
}

// ProcessingIDs returns the "processing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProcessingID instead. It exists only for internal usage by the builders.
func (m *ExtractedEntityMutation) ProcessingIDs() (ids []int) {
	if id := m.processing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProcessing resets all changes to the "processing" edge.
func (m *ExtractedEntityMutation) ResetProcessing() {
	m.processing = nil
	m.clearedprocessing = false
}

// Where appends a list predicates to the ExtractedEntityMutation builder.
func (m *ExtractedEntityMutation) Where(ps ...predicate.ExtractedEntity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedEntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedEntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedEntity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedEntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedEntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedEntity).
func (m *ExtractedEntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedEntityMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.processing != nil {
		fields = append(fields, extractedentity.FieldProcessingID)
	}
	if m.entity_name != nil {
		fields = append(fields, extractedentity.FieldEntityName)
	}
	if m.entity_value != nil {
		fields = append(fields, extractedentity.FieldEntityValue)
	}
	if m.confidence_score != nil {
		fields = append(fields, extractedentity.FieldConfidenceScore)
	}
	if m.page_number != nil {
		fields = append(fields, extractedentity.FieldPageNumber)
	}
	if m.bounding_box != nil {
		fields = append(fields, extractedentity.FieldBoundingBox)
	}
	if m.created_at != nil {
		fields = append(fields, extractedentity.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedEntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedentity.FieldProcessingID:
		return m.ProcessingID()
	case extractedentity.FieldEntityName:
		return m.EntityName()
	case extractedentity.FieldEntityValue:
		return m.EntityValue()
	case extractedentity.FieldConfidenceScore:
		return m.ConfidenceScore()
	case extractedentity.FieldPageNumber:
		return m.PageNumber()
	case extractedentity.FieldBoundingBox:
		return m.BoundingBox()
	case extractedentity.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedEntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedentity.FieldProcessingID:
		return m.OldProcessingID(ctx)
	case extractedentity.FieldEntityName:
		return m.OldEntityName(ctx)
	case extractedentity.FieldEntityValue:
		return m.OldEntityValue(ctx)
	case extractedentity.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case extractedentity.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case extractedentity.FieldBoundingBox:
		return m.OldBoundingBox(ctx)
	case extractedentity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedEntity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedEntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedentity.FieldProcessingID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingID(v)
		return nil
	case extractedentity.FieldEntityName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityName(v)
		return nil
	case extractedentity.FieldEntityValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityValue(v)
		return nil
	case extractedentity.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case extractedentity.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case extractedentity.FieldBoundingBox:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoundingBox(v)
		return nil
	case extractedentity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedEntity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedEntityMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, extractedentity.FieldConfidenceScore)
	}
	if m.addpage_number != nil {
		fields = append(fields, extractedentity.FieldPageNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedEntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedentity.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case extractedentity.FieldPageNumber:
		return m.AddedPageNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedEntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedentity.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case extractedentity.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedEntity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedEntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedentity.FieldEntityValue) {
		fields = append(fields, extractedentity.FieldEntityValue)
	}
	if m.FieldCleared(extractedentity.FieldConfidenceScore) {
		fields = append(fields, extractedentity.FieldConfidenceScore)
	}
	if m.FieldCleared(extractedentity.FieldPageNumber) {
		fields = append(fields, extractedentity.FieldPageNumber)
	}
	if m.FieldCleared(extractedentity.FieldBoundingBox) {
		fields = append(fields, extractedentity.FieldBoundingBox)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedEntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedEntityMutation) ClearField(name string) error {
	switch name {
	case extractedentity.FieldEntityValue:
		m.ClearEntityValue()
		return nil
	case extractedentity.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	case extractedentity.FieldPageNumber:
		m.ClearPageNumber()
		return nil
	case extractedentity.FieldBoundingBox:
		m.ClearBoundingBox()
		return nil
	}
	return fmt.Errorf("unknown ExtractedEntity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedEntityMutation) ResetField(name string) error {
	switch name {
	case extractedentity.FieldProcessingID:
		m.ResetProcessingID()
		return nil
	case extractedentity.FieldEntityName:
		m.ResetEntityName()
		return nil
	case extractedentity.FieldEntityValue:
		m.ResetEntityValue()
		return nil
	case extractedentity.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case extractedentity.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case extractedentity.FieldBoundingBox:
		m.ResetBoundingBox()
		return nil
	case extractedentity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedEntity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedEntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.processing != nil {
		edges = append(edges, extractedentity.EdgeProcessing)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedEntityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedentity.EdgeProcessing:
		if id := m.processing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedEntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedEntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedEntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprocessing {
		edges = append(edges, extractedentity.EdgeProcessing)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedEntityMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedentity.EdgeProcessing:
		return m.clearedprocessing
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedEntityMutation) ClearEdge(name string) error {
	switch name {
	case extractedentity.EdgeProcessing:
		m.ClearProcessing()
		return nil
	}
	return fmt.Errorf("unknown ExtractedEntity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedEntityMutation) ResetEdge(name string) error {
	switch name {
	case extractedentity.EdgeProcessing:
		m.ResetProcessing()
		return nil
	}
	return fmt.Errorf("unknown ExtractedEntity edge %s", name)
}
