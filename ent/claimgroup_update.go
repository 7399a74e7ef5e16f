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
	"github.com/kurt-labs/kurt/ent/claimgroup"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// ClaimGroupUpdate is the builder for updating ClaimGroup entities.
type ClaimGroupUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimGroupMutation
}

// Where appends a list predicates to the ClaimGroupUpdate builder.
func (_u *ClaimGroupUpdate) Where(ps ...predicate.ClaimGroup) *ClaimGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *ClaimGroupUpdate) SetSectionID(v string) *ClaimGroupUpdate {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *ClaimGroupUpdate) SetNillableSectionID(v *string) *ClaimGroupUpdate {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetClaimHash sets the "claim_hash" field.
func (_u *ClaimGroupUpdate) SetClaimHash(v string) *ClaimGroupUpdate {
	_u.mutation.SetClaimHash(v)
	return _u
}

// SetNillableClaimHash sets the "claim_hash" field if the given value is not nil.
func (_u *ClaimGroupUpdate) SetNillableClaimHash(v *string) *ClaimGroupUpdate {
	if v != nil {
		_u.SetClaimHash(*v)
	}
	return _u
}

// SetClusterID sets the "cluster_id" field.
func (_u *ClaimGroupUpdate) SetClusterID(v string) *ClaimGroupUpdate {
	_u.mutation.SetClusterID(v)
	return _u
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_u *ClaimGroupUpdate) SetNillableClusterID(v *string) *ClaimGroupUpdate {
	if v != nil {
		_u.SetClusterID(*v)
	}
	return _u
}

// SetClusterSize sets the "cluster_size" field.
func (_u *ClaimGroupUpdate) SetClusterSize(v int) *ClaimGroupUpdate {
	_u.mutation.ResetClusterSize()
	_u.mutation.SetClusterSize(v)
	return _u
}

// SetNillableClusterSize sets the "cluster_size" field if the given value is not nil.
func (_u *ClaimGroupUpdate) SetNillableClusterSize(v *int) *ClaimGroupUpdate {
	if v != nil {
		_u.SetClusterSize(*v)
	}
	return _u
}

// AddClusterSize adds value to the "cluster_size" field.
func (_u *ClaimGroupUpdate) AddClusterSize(v int) *ClaimGroupUpdate {
	_u.mutation.AddClusterSize(v)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ClaimGroupUpdate) SetDecision(v string) *ClaimGroupUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ClaimGroupUpdate) SetNillableDecision(v *string) *ClaimGroupUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetStatement sets the "statement" field.
func (_u *ClaimGroupUpdate) SetStatement(v string) *ClaimGroupUpdate {
	_u.mutation.SetStatement(v)
	return _u
}

// SetNillableStatement sets the "statement" field if the given value is not nil.
func (_u *ClaimGroupUpdate) SetNillableStatement(v *string) *ClaimGroupUpdate {
	if v != nil {
		_u.SetStatement(*v)
	}
	return _u
}

// SetCanonicalStatement sets the "canonical_statement" field.
func (_u *ClaimGroupUpdate) SetCanonicalStatement(v string) *ClaimGroupUpdate {
	_u.mutation.SetCanonicalStatement(v)
	return _u
}

// SetNillableCanonicalStatement sets the "canonical_statement" field if the given value is not nil.
func (_u *ClaimGroupUpdate) SetNillableCanonicalStatement(v *string) *ClaimGroupUpdate {
	if v != nil {
		_u.SetCanonicalStatement(*v)
	}
	return _u
}

// SetClaimType sets the "claim_type" field.
func (_u *ClaimGroupUpdate) SetClaimType(v claimgroup.ClaimType) *ClaimGroupUpdate {
	_u.mutation.SetClaimType(v)
	return _u
}

// SetNillableClaimType sets the "claim_type" field if the given value is not nil.
func (_u *ClaimGroupUpdate) SetNillableClaimType(v *claimgroup.ClaimType) *ClaimGroupUpdate {
	if v != nil {
		_u.SetClaimType(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ClaimGroupUpdate) SetConfidence(v float64) *ClaimGroupUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ClaimGroupUpdate) SetNillableConfidence(v *float64) *ClaimGroupUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ClaimGroupUpdate) AddConfidence(v float64) *ClaimGroupUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEntityIndices sets the "entity_indices" field.
func (_u *ClaimGroupUpdate) SetEntityIndices(v []int) *ClaimGroupUpdate {
	_u.mutation.SetEntityIndices(v)
	return _u
}

// AppendEntityIndices appends value to the "entity_indices" field.
func (_u *ClaimGroupUpdate) AppendEntityIndices(v []int) *ClaimGroupUpdate {
	_u.mutation.AppendEntityIndices(v)
	return _u
}

// ClearEntityIndices clears the value of the "entity_indices" field.
func (_u *ClaimGroupUpdate) ClearEntityIndices() *ClaimGroupUpdate {
	_u.mutation.ClearEntityIndices()
	return _u
}

// SetSimilarExisting sets the "similar_existing" field.
func (_u *ClaimGroupUpdate) SetSimilarExisting(v []string) *ClaimGroupUpdate {
	_u.mutation.SetSimilarExisting(v)
	return _u
}

// AppendSimilarExisting appends value to the "similar_existing" field.
func (_u *ClaimGroupUpdate) AppendSimilarExisting(v []string) *ClaimGroupUpdate {
	_u.mutation.AppendSimilarExisting(v)
	return _u
}

// ClearSimilarExisting clears the value of the "similar_existing" field.
func (_u *ClaimGroupUpdate) ClearSimilarExisting() *ClaimGroupUpdate {
	_u.mutation.ClearSimilarExisting()
	return _u
}

// SetSourceQuote sets the "source_quote" field.
func (_u *ClaimGroupUpdate) SetSourceQuote(v string) *ClaimGroupUpdate {
	_u.mutation.SetSourceQuote(v)
	return _u
}

// SetNillableSourceQuote sets the "source_quote" field if the given value is not nil.
func (_u *ClaimGroupUpdate) SetNillableSourceQuote(v *string) *ClaimGroupUpdate {
	if v != nil {
		_u.SetSourceQuote(*v)
	}
	return _u
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (_u *ClaimGroupUpdate) ClearSourceQuote() *ClaimGroupUpdate {
	_u.mutation.ClearSourceQuote()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimGroupUpdate) SetCreatedAt(v time.Time) *ClaimGroupUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimGroupUpdate) SetNillableCreatedAt(v *time.Time) *ClaimGroupUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimGroupUpdate) SetUpdatedAt(v time.Time) *ClaimGroupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ClaimGroupMutation object of the builder.
func (_u *ClaimGroupUpdate) Mutation() *ClaimGroupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimGroupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimGroupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claimgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimGroupUpdate) check() error {
	if v, ok := _u.mutation.ClaimType(); ok {
		if err := claimgroup.ClaimTypeValidator(v); err != nil {
			return &ValidationError{Name: "claim_type", err: fmt.Errorf(`ent: validator failed for field "ClaimGroup.claim_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ClaimGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claimgroup.Table, claimgroup.Columns, sqlgraph.NewFieldSpec(claimgroup.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(claimgroup.FieldSectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimHash(); ok {
		_spec.SetField(claimgroup.FieldClaimHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClusterID(); ok {
		_spec.SetField(claimgroup.FieldClusterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClusterSize(); ok {
		_spec.SetField(claimgroup.FieldClusterSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClusterSize(); ok {
		_spec.AddField(claimgroup.FieldClusterSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(claimgroup.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.Statement(); ok {
		_spec.SetField(claimgroup.FieldStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalStatement(); ok {
		_spec.SetField(claimgroup.FieldCanonicalStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimType(); ok {
		_spec.SetField(claimgroup.FieldClaimType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(claimgroup.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(claimgroup.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EntityIndices(); ok {
		_spec.SetField(claimgroup.FieldEntityIndices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntityIndices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claimgroup.FieldEntityIndices, value)
		})
	}
	if _u.mutation.EntityIndicesCleared() {
		_spec.ClearField(claimgroup.FieldEntityIndices, field.TypeJSON)
	}
	if value, ok := _u.mutation.SimilarExisting(); ok {
		_spec.SetField(claimgroup.FieldSimilarExisting, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSimilarExisting(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claimgroup.FieldSimilarExisting, value)
		})
	}
	if _u.mutation.SimilarExistingCleared() {
		_spec.ClearField(claimgroup.FieldSimilarExisting, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceQuote(); ok {
		_spec.SetField(claimgroup.FieldSourceQuote, field.TypeString, value)
	}
	if _u.mutation.SourceQuoteCleared() {
		_spec.ClearField(claimgroup.FieldSourceQuote, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claimgroup.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claimgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claimgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimGroupUpdateOne is the builder for updating a single ClaimGroup entity.
type ClaimGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimGroupMutation
}

// SetSectionID sets the "section_id" field.
func (_u *ClaimGroupUpdateOne) SetSectionID(v string) *ClaimGroupUpdateOne {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *ClaimGroupUpdateOne) SetNillableSectionID(v *string) *ClaimGroupUpdateOne {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetClaimHash sets the "claim_hash" field.
func (_u *ClaimGroupUpdateOne) SetClaimHash(v string) *ClaimGroupUpdateOne {
	_u.mutation.SetClaimHash(v)
	return _u
}

// SetNillableClaimHash sets the "claim_hash" field if the given value is not nil.
func (_u *ClaimGroupUpdateOne) SetNillableClaimHash(v *string) *ClaimGroupUpdateOne {
	if v != nil {
		_u.SetClaimHash(*v)
	}
	return _u
}

// SetClusterID sets the "cluster_id" field.
func (_u *ClaimGroupUpdateOne) SetClusterID(v string) *ClaimGroupUpdateOne {
	_u.mutation.SetClusterID(v)
	return _u
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_u *ClaimGroupUpdateOne) SetNillableClusterID(v *string) *ClaimGroupUpdateOne {
	if v != nil {
		_u.SetClusterID(*v)
	}
	return _u
}

// SetClusterSize sets the "cluster_size" field.
func (_u *ClaimGroupUpdateOne) SetClusterSize(v int) *ClaimGroupUpdateOne {
	_u.mutation.ResetClusterSize()
	_u.mutation.SetClusterSize(v)
	return _u
}

// SetNillableClusterSize sets the "cluster_size" field if the given value is not nil.
func (_u *ClaimGroupUpdateOne) SetNillableClusterSize(v *int) *ClaimGroupUpdateOne {
	if v != nil {
		_u.SetClusterSize(*v)
	}
	return _u
}

// AddClusterSize adds value to the "cluster_size" field.
func (_u *ClaimGroupUpdateOne) AddClusterSize(v int) *ClaimGroupUpdateOne {
	_u.mutation.AddClusterSize(v)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ClaimGroupUpdateOne) SetDecision(v string) *ClaimGroupUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ClaimGroupUpdateOne) SetNillableDecision(v *string) *ClaimGroupUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetStatement sets the "statement" field.
func (_u *ClaimGroupUpdateOne) SetStatement(v string) *ClaimGroupUpdateOne {
	_u.mutation.SetStatement(v)
	return _u
}

// SetNillableStatement sets the "statement" field if the given value is not nil.
func (_u *ClaimGroupUpdateOne) SetNillableStatement(v *string) *ClaimGroupUpdateOne {
	if v != nil {
		_u.SetStatement(*v)
	}
	return _u
}

// SetCanonicalStatement sets the "canonical_statement" field.
func (_u *ClaimGroupUpdateOne) SetCanonicalStatement(v string) *ClaimGroupUpdateOne {
	_u.mutation.SetCanonicalStatement(v)
	return _u
}

// SetNillableCanonicalStatement sets the "canonical_statement" field if the given value is not nil.
func (_u *ClaimGroupUpdateOne) SetNillableCanonicalStatement(v *string) *ClaimGroupUpdateOne {
	if v != nil {
		_u.SetCanonicalStatement(*v)
	}
	return _u
}

// SetClaimType sets the "claim_type" field.
func (_u *ClaimGroupUpdateOne) SetClaimType(v claimgroup.ClaimType) *ClaimGroupUpdateOne {
	_u.mutation.SetClaimType(v)
	return _u
}

// SetNillableClaimType sets the "claim_type" field if the given value is not nil.
func (_u *ClaimGroupUpdateOne) SetNillableClaimType(v *claimgroup.ClaimType) *ClaimGroupUpdateOne {
	if v != nil {
		_u.SetClaimType(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ClaimGroupUpdateOne) SetConfidence(v float64) *ClaimGroupUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ClaimGroupUpdateOne) SetNillableConfidence(v *float64) *ClaimGroupUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ClaimGroupUpdateOne) AddConfidence(v float64) *ClaimGroupUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEntityIndices sets the "entity_indices" field.
func (_u *ClaimGroupUpdateOne) SetEntityIndices(v []int) *ClaimGroupUpdateOne {
	_u.mutation.SetEntityIndices(v)
	return _u
}

// AppendEntityIndices appends value to the "entity_indices" field.
func (_u *ClaimGroupUpdateOne) AppendEntityIndices(v []int) *ClaimGroupUpdateOne {
	_u.mutation.AppendEntityIndices(v)
	return _u
}

// ClearEntityIndices clears the value of the "entity_indices" field.
func (_u *ClaimGroupUpdateOne) ClearEntityIndices() *ClaimGroupUpdateOne {
	_u.mutation.ClearEntityIndices()
	return _u
}

// SetSimilarExisting sets the "similar_existing" field.
func (_u *ClaimGroupUpdateOne) SetSimilarExisting(v []string) *ClaimGroupUpdateOne {
	_u.mutation.SetSimilarExisting(v)
	return _u
}

// AppendSimilarExisting appends value to the "similar_existing" field.
func (_u *ClaimGroupUpdateOne) AppendSimilarExisting(v []string) *ClaimGroupUpdateOne {
	_u.mutation.AppendSimilarExisting(v)
	return _u
}

// ClearSimilarExisting clears the value of the "similar_existing" field.
func (_u *ClaimGroupUpdateOne) ClearSimilarExisting() *ClaimGroupUpdateOne {
	_u.mutation.ClearSimilarExisting()
	return _u
}

// SetSourceQuote sets the "source_quote" field.
func (_u *ClaimGroupUpdateOne) SetSourceQuote(v string) *ClaimGroupUpdateOne {
	_u.mutation.SetSourceQuote(v)
	return _u
}

// SetNillableSourceQuote sets the "source_quote" field if the given value is not nil.
func (_u *ClaimGroupUpdateOne) SetNillableSourceQuote(v *string) *ClaimGroupUpdateOne {
	if v != nil {
		_u.SetSourceQuote(*v)
	}
	return _u
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (_u *ClaimGroupUpdateOne) ClearSourceQuote() *ClaimGroupUpdateOne {
	_u.mutation.ClearSourceQuote()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimGroupUpdateOne) SetCreatedAt(v time.Time) *ClaimGroupUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimGroupUpdateOne) SetNillableCreatedAt(v *time.Time) *ClaimGroupUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimGroupUpdateOne) SetUpdatedAt(v time.Time) *ClaimGroupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ClaimGroupMutation object of the builder.
func (_u *ClaimGroupUpdateOne) Mutation() *ClaimGroupMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClaimGroupUpdate builder.
func (_u *ClaimGroupUpdateOne) Where(ps ...predicate.ClaimGroup) *ClaimGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimGroupUpdateOne) Select(field string, fields ...string) *ClaimGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClaimGroup entity.
func (_u *ClaimGroupUpdateOne) Save(ctx context.Context) (*ClaimGroup, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimGroupUpdateOne) SaveX(ctx context.Context) *ClaimGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimGroupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claimgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimGroupUpdateOne) check() error {
	if v, ok := _u.mutation.ClaimType(); ok {
		if err := claimgroup.ClaimTypeValidator(v); err != nil {
			return &ValidationError{Name: "claim_type", err: fmt.Errorf(`ent: validator failed for field "ClaimGroup.claim_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ClaimGroupUpdateOne) sqlSave(ctx context.Context) (_node *ClaimGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claimgroup.Table, claimgroup.Columns, sqlgraph.NewFieldSpec(claimgroup.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClaimGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claimgroup.FieldID)
		for _, f := range fields {
			if !claimgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claimgroup.FieldID {
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
		_spec.SetField(claimgroup.FieldSectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimHash(); ok {
		_spec.SetField(claimgroup.FieldClaimHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClusterID(); ok {
		_spec.SetField(claimgroup.FieldClusterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClusterSize(); ok {
		_spec.SetField(claimgroup.FieldClusterSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClusterSize(); ok {
		_spec.AddField(claimgroup.FieldClusterSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(claimgroup.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.Statement(); ok {
		_spec.SetField(claimgroup.FieldStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalStatement(); ok {
		_spec.SetField(claimgroup.FieldCanonicalStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimType(); ok {
		_spec.SetField(claimgroup.FieldClaimType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(claimgroup.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(claimgroup.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EntityIndices(); ok {
		_spec.SetField(claimgroup.FieldEntityIndices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntityIndices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claimgroup.FieldEntityIndices, value)
		})
	}
	if _u.mutation.EntityIndicesCleared() {
		_spec.ClearField(claimgroup.FieldEntityIndices, field.TypeJSON)
	}
	if value, ok := _u.mutation.SimilarExisting(); ok {
		_spec.SetField(claimgroup.FieldSimilarExisting, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSimilarExisting(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, claimgroup.FieldSimilarExisting, value)
		})
	}
	if _u.mutation.SimilarExistingCleared() {
		_spec.ClearField(claimgroup.FieldSimilarExisting, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceQuote(); ok {
		_spec.SetField(claimgroup.FieldSourceQuote, field.TypeString, value)
	}
	if _u.mutation.SourceQuoteCleared() {
		_spec.ClearField(claimgroup.FieldSourceQuote, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claimgroup.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claimgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ClaimGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claimgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
