// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kurt-labs/kurt/ent/predicate"
	"github.com/kurt-labs/kurt/ent/sectionextraction"
)

// SectionExtractionUpdate is the builder for updating SectionExtraction entities.
type SectionExtractionUpdate struct {
	config
	hooks    []Hook
	mutation *SectionExtractionMutation
}

// Where appends a list predicates to the SectionExtractionUpdate builder.
func (_u *SectionExtractionUpdate) Where(ps ...predicate.SectionExtraction) *SectionExtractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *SectionExtractionUpdate) SetSectionID(v string) *SectionExtractionUpdate {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *SectionExtractionUpdate) SetNillableSectionID(v *string) *SectionExtractionUpdate {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetSectionIndex sets the "section_index" field.
func (_u *SectionExtractionUpdate) SetSectionIndex(v int) *SectionExtractionUpdate {
	_u.mutation.ResetSectionIndex()
	_u.mutation.SetSectionIndex(v)
	return _u
}

// SetNillableSectionIndex sets the "section_index" field if the given value is not nil.
func (_u *SectionExtractionUpdate) SetNillableSectionIndex(v *int) *SectionExtractionUpdate {
	if v != nil {
		_u.SetSectionIndex(*v)
	}
	return _u
}

// AddSectionIndex adds value to the "section_index" field.
func (_u *SectionExtractionUpdate) AddSectionIndex(v int) *SectionExtractionUpdate {
	_u.mutation.AddSectionIndex(v)
	return _u
}

// SetHeader sets the "header" field.
func (_u *SectionExtractionUpdate) SetHeader(v string) *SectionExtractionUpdate {
	_u.mutation.SetHeader(v)
	return _u
}

// SetNillableHeader sets the "header" field if the given value is not nil.
func (_u *SectionExtractionUpdate) SetNillableHeader(v *string) *SectionExtractionUpdate {
	if v != nil {
		_u.SetHeader(*v)
	}
	return _u
}

// ClearHeader clears the value of the "header" field.
func (_u *SectionExtractionUpdate) ClearHeader() *SectionExtractionUpdate {
	_u.mutation.ClearHeader()
	return _u
}

// SetContent sets the "content" field.
func (_u *SectionExtractionUpdate) SetContent(v string) *SectionExtractionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SectionExtractionUpdate) SetNillableContent(v *string) *SectionExtractionUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *SectionExtractionUpdate) SetEmbedding(v []byte) *SectionExtractionUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *SectionExtractionUpdate) ClearEmbedding() *SectionExtractionUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetEntities sets the "entities" field.
func (_u *SectionExtractionUpdate) SetEntities(v []map[string]interface{}) *SectionExtractionUpdate {
	_u.mutation.SetEntities(v)
	return _u
}

// AppendEntities appends value to the "entities" field.
func (_u *SectionExtractionUpdate) AppendEntities(v []map[string]interface{}) *SectionExtractionUpdate {
	_u.mutation.AppendEntities(v)
	return _u
}

// ClearEntities clears the value of the "entities" field.
func (_u *SectionExtractionUpdate) ClearEntities() *SectionExtractionUpdate {
	_u.mutation.ClearEntities()
	return _u
}

// SetRelationships sets the "relationships" field.
func (_u *SectionExtractionUpdate) SetRelationships(v []map[string]interface{}) *SectionExtractionUpdate {
	_u.mutation.SetRelationships(v)
	return _u
}

// AppendRelationships appends value to the "relationships" field.
func (_u *SectionExtractionUpdate) AppendRelationships(v []map[string]interface{}) *SectionExtractionUpdate {
	_u.mutation.AppendRelationships(v)
	return _u
}

// ClearRelationships clears the value of the "relationships" field.
func (_u *SectionExtractionUpdate) ClearRelationships() *SectionExtractionUpdate {
	_u.mutation.ClearRelationships()
	return _u
}

// SetClaims sets the "claims" field.
func (_u *SectionExtractionUpdate) SetClaims(v []map[string]interface{}) *SectionExtractionUpdate {
	_u.mutation.SetClaims(v)
	return _u
}

// AppendClaims appends value to the "claims" field.
func (_u *SectionExtractionUpdate) AppendClaims(v []map[string]interface{}) *SectionExtractionUpdate {
	_u.mutation.AppendClaims(v)
	return _u
}

// ClearClaims clears the value of the "claims" field.
func (_u *SectionExtractionUpdate) ClearClaims() *SectionExtractionUpdate {
	_u.mutation.ClearClaims()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *SectionExtractionUpdate) SetContentType(v string) *SectionExtractionUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *SectionExtractionUpdate) SetNillableContentType(v *string) *SectionExtractionUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *SectionExtractionUpdate) ClearContentType() *SectionExtractionUpdate {
	_u.mutation.ClearContentType()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SectionExtractionUpdate) SetStatus(v sectionextraction.Status) *SectionExtractionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SectionExtractionUpdate) SetNillableStatus(v *sectionextraction.Status) *SectionExtractionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SectionExtractionUpdate) SetCreatedAt(v time.Time) *SectionExtractionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SectionExtractionUpdate) SetNillableCreatedAt(v *time.Time) *SectionExtractionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SectionExtractionUpdate) SetUpdatedAt(v time.Time) *SectionExtractionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SectionExtractionMutation object of the builder.
func (_u *SectionExtractionUpdate) Mutation() *SectionExtractionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SectionExtractionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SectionExtractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SectionExtractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SectionExtractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SectionExtractionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sectionextraction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SectionExtractionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sectionextraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SectionExtraction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SectionExtractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sectionextraction.Table, sectionextraction.Columns, sqlgraph.NewFieldSpec(sectionextraction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(sectionextraction.FieldSectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionIndex(); ok {
		_spec.SetField(sectionextraction.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionIndex(); ok {
		_spec.AddField(sectionextraction.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Header(); ok {
		_spec.SetField(sectionextraction.FieldHeader, field.TypeString, value)
	}
	if _u.mutation.HeaderCleared() {
		_spec.ClearField(sectionextraction.FieldHeader, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(sectionextraction.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(sectionextraction.FieldEmbedding, field.TypeBytes, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(sectionextraction.FieldEmbedding, field.TypeBytes)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(sectionextraction.FieldEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sectionextraction.FieldEntities, value)
		})
	}
	if _u.mutation.EntitiesCleared() {
		_spec.ClearField(sectionextraction.FieldEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Relationships(); ok {
		_spec.SetField(sectionextraction.FieldRelationships, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelationships(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sectionextraction.FieldRelationships, value)
		})
	}
	if _u.mutation.RelationshipsCleared() {
		_spec.ClearField(sectionextraction.FieldRelationships, field.TypeJSON)
	}
	if value, ok := _u.mutation.Claims(); ok {
		_spec.SetField(sectionextraction.FieldClaims, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClaims(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sectionextraction.FieldClaims, value)
		})
	}
	if _u.mutation.ClaimsCleared() {
		_spec.ClearField(sectionextraction.FieldClaims, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(sectionextraction.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(sectionextraction.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sectionextraction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sectionextraction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sectionextraction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sectionextraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SectionExtractionUpdateOne is the builder for updating a single SectionExtraction entity.
type SectionExtractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SectionExtractionMutation
}

// SetSectionID sets the "section_id" field.
func (_u *SectionExtractionUpdateOne) SetSectionID(v string) *SectionExtractionUpdateOne {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *SectionExtractionUpdateOne) SetNillableSectionID(v *string) *SectionExtractionUpdateOne {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetSectionIndex sets the "section_index" field.
func (_u *SectionExtractionUpdateOne) SetSectionIndex(v int) *SectionExtractionUpdateOne {
	_u.mutation.ResetSectionIndex()
	_u.mutation.SetSectionIndex(v)
	return _u
}

// SetNillableSectionIndex sets the "section_index" field if the given value is not nil.
func (_u *SectionExtractionUpdateOne) SetNillableSectionIndex(v *int) *SectionExtractionUpdateOne {
	if v != nil {
		_u.SetSectionIndex(*v)
	}
	return _u
}

// AddSectionIndex adds value to the "section_index" field.
func (_u *SectionExtractionUpdateOne) AddSectionIndex(v int) *SectionExtractionUpdateOne {
	_u.mutation.AddSectionIndex(v)
	return _u
}

// SetHeader sets the "header" field.
func (_u *SectionExtractionUpdateOne) SetHeader(v string) *SectionExtractionUpdateOne {
	_u.mutation.SetHeader(v)
	return _u
}

// SetNillableHeader sets the "header" field if the given value is not nil.
func (_u *SectionExtractionUpdateOne) SetNillableHeader(v *string) *SectionExtractionUpdateOne {
	if v != nil {
		_u.SetHeader(*v)
	}
	return _u
}

// ClearHeader clears the value of the "header" field.
func (_u *SectionExtractionUpdateOne) ClearHeader() *SectionExtractionUpdateOne {
	_u.mutation.ClearHeader()
	return _u
}

// SetContent sets the "content" field.
func (_u *SectionExtractionUpdateOne) SetContent(v string) *SectionExtractionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SectionExtractionUpdateOne) SetNillableContent(v *string) *SectionExtractionUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *SectionExtractionUpdateOne) SetEmbedding(v []byte) *SectionExtractionUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *SectionExtractionUpdateOne) ClearEmbedding() *SectionExtractionUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetEntities sets the "entities" field.
func (_u *SectionExtractionUpdateOne) SetEntities(v []map[string]interface{}) *SectionExtractionUpdateOne {
	_u.mutation.SetEntities(v)
	return _u
}

// AppendEntities appends value to the "entities" field.
func (_u *SectionExtractionUpdateOne) AppendEntities(v []map[string]interface{}) *SectionExtractionUpdateOne {
	_u.mutation.AppendEntities(v)
	return _u
}

// ClearEntities clears the value of the "entities" field.
func (_u *SectionExtractionUpdateOne) ClearEntities() *SectionExtractionUpdateOne {
	_u.mutation.ClearEntities()
	return _u
}

// SetRelationships sets the "relationships" field.
func (_u *SectionExtractionUpdateOne) SetRelationships(v []map[string]interface{}) *SectionExtractionUpdateOne {
	_u.mutation.SetRelationships(v)
	return _u
}

// AppendRelationships appends value to the "relationships" field.
func (_u *SectionExtractionUpdateOne) AppendRelationships(v []map[string]interface{}) *SectionExtractionUpdateOne {
	_u.mutation.AppendRelationships(v)
	return _u
}

// ClearRelationships clears the value of the "relationships" field.
func (_u *SectionExtractionUpdateOne) ClearRelationships() *SectionExtractionUpdateOne {
	_u.mutation.ClearRelationships()
	return _u
}

// SetClaims sets the "claims" field.
func (_u *SectionExtractionUpdateOne) SetClaims(v []map[string]interface{}) *SectionExtractionUpdateOne {
	_u.mutation.SetClaims(v)
	return _u
}

// AppendClaims appends value to the "claims" field.
func (_u *SectionExtractionUpdateOne) AppendClaims(v []map[string]interface{}) *SectionExtractionUpdateOne {
	_u.mutation.AppendClaims(v)
	return _u
}

// ClearClaims clears the value of the "claims" field.
func (_u *SectionExtractionUpdateOne) ClearClaims() *SectionExtractionUpdateOne {
	_u.mutation.ClearClaims()
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *SectionExtractionUpdateOne) SetContentType(v string) *SectionExtractionUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *SectionExtractionUpdateOne) SetNillableContentType(v *string) *SectionExtractionUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// ClearContentType clears the value of the "content_type" field.
func (_u *SectionExtractionUpdateOne) ClearContentType() *SectionExtractionUpdateOne {
	_u.mutation.ClearContentType()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SectionExtractionUpdateOne) SetStatus(v sectionextraction.Status) *SectionExtractionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SectionExtractionUpdateOne) SetNillableStatus(v *sectionextraction.Status) *SectionExtractionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SectionExtractionUpdateOne) SetCreatedAt(v time.Time) *SectionExtractionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SectionExtractionUpdateOne) SetNillableCreatedAt(v *time.Time) *SectionExtractionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SectionExtractionUpdateOne) SetUpdatedAt(v time.Time) *SectionExtractionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SectionExtractionMutation object of the builder.
func (_u *SectionExtractionUpdateOne) Mutation() *SectionExtractionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SectionExtractionUpdate builder.
func (_u *SectionExtractionUpdateOne) Where(ps ...predicate.SectionExtraction) *SectionExtractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SectionExtractionUpdateOne) Select(field string, fields ...string) *SectionExtractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SectionExtraction entity.
func (_u *SectionExtractionUpdateOne) Save(ctx context.Context) (*SectionExtraction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SectionExtractionUpdateOne) SaveX(ctx context.Context) *SectionExtraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SectionExtractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SectionExtractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SectionExtractionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sectionextraction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SectionExtractionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sectionextraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SectionExtraction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SectionExtractionUpdateOne) sqlSave(ctx context.Context) (_node *SectionExtraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sectionextraction.Table, sectionextraction.Columns, sqlgraph.NewFieldSpec(sectionextraction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SectionExtraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sectionextraction.FieldID)
		for _, f := range fields {
			if !sectionextraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sectionextraction.FieldID {
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
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(sectionextraction.FieldSectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionIndex(); ok {
		_spec.SetField(sectionextraction.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionIndex(); ok {
		_spec.AddField(sectionextraction.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Header(); ok {
		_spec.SetField(sectionextraction.FieldHeader, field.TypeString, value)
	}
	if _u.mutation.HeaderCleared() {
		_spec.ClearField(sectionextraction.FieldHeader, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(sectionextraction.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(sectionextraction.FieldEmbedding, field.TypeBytes, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(sectionextraction.FieldEmbedding, field.TypeBytes)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(sectionextraction.FieldEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sectionextraction.FieldEntities, value)
		})
	}
	if _u.mutation.EntitiesCleared() {
		_spec.ClearField(sectionextraction.FieldEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Relationships(); ok {
		_spec.SetField(sectionextraction.FieldRelationships, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelationships(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sectionextraction.FieldRelationships, value)
		})
	}
	if _u.mutation.RelationshipsCleared() {
		_spec.ClearField(sectionextraction.FieldRelationships, field.TypeJSON)
	}
	if value, ok := _u.mutation.Claims(); ok {
		_spec.SetField(sectionextraction.FieldClaims, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClaims(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sectionextraction.FieldClaims, value)
		})
	}
	if _u.mutation.ClaimsCleared() {
		_spec.ClearField(sectionextraction.FieldClaims, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(sectionextraction.FieldContentType, field.TypeString, value)
	}
	if _u.mutation.ContentTypeCleared() {
		_spec.ClearField(sectionextraction.FieldContentType, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sectionextraction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sectionextraction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sectionextraction.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SectionExtraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sectionextraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
