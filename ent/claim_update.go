// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/claimentity"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// ClaimUpdate is the builder for updating Claim entities.
type ClaimUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimMutation
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdate) Where(ps ...predicate.Claim) *ClaimUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClaimHash sets the "claim_hash" field.
func (_u *ClaimUpdate) SetClaimHash(v string) *ClaimUpdate {
	_u.mutation.SetClaimHash(v)
	return _u
}

// SetNillableClaimHash sets the "claim_hash" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableClaimHash(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetClaimHash(*v)
	}
	return _u
}

// SetStatement sets the "statement" field.
func (_u *ClaimUpdate) SetStatement(v string) *ClaimUpdate {
	_u.mutation.SetStatement(v)
	return _u
}

// SetNillableStatement sets the "statement" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableStatement(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetStatement(*v)
	}
	return _u
}

// SetClaimType sets the "claim_type" field.
func (_u *ClaimUpdate) SetClaimType(v claim.ClaimType) *ClaimUpdate {
	_u.mutation.SetClaimType(v)
	return _u
}

// SetNillableClaimType sets the "claim_type" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableClaimType(v *claim.ClaimType) *ClaimUpdate {
	if v != nil {
		_u.SetClaimType(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ClaimUpdate) SetConfidence(v float64) *ClaimUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableConfidence(v *float64) *ClaimUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ClaimUpdate) AddConfidence(v float64) *ClaimUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSubjectEntityID sets the "subject_entity_id" field.
func (_u *ClaimUpdate) SetSubjectEntityID(v string) *ClaimUpdate {
	_u.mutation.SetSubjectEntityID(v)
	return _u
}

// SetNillableSubjectEntityID sets the "subject_entity_id" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableSubjectEntityID(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetSubjectEntityID(*v)
	}
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *ClaimUpdate) SetSectionID(v string) *ClaimUpdate {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableSectionID(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// ClearSectionID clears the value of the "section_id" field.
func (_u *ClaimUpdate) ClearSectionID() *ClaimUpdate {
	_u.mutation.ClearSectionID()
	return _u
}

// SetSourceQuote sets the "source_quote" field.
func (_u *ClaimUpdate) SetSourceQuote(v string) *ClaimUpdate {
	_u.mutation.SetSourceQuote(v)
	return _u
}

// SetNillableSourceQuote sets the "source_quote" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableSourceQuote(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetSourceQuote(*v)
	}
	return _u
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (_u *ClaimUpdate) ClearSourceQuote() *ClaimUpdate {
	_u.mutation.ClearSourceQuote()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ClaimUpdate) SetEmbedding(v []byte) *ClaimUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ClaimUpdate) ClearEmbedding() *ClaimUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *ClaimUpdate) SetWorkflowID(v string) *ClaimUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableWorkflowID(v *string) *ClaimUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimUpdate) SetCreatedAt(v time.Time) *ClaimUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimUpdate) SetNillableCreatedAt(v *time.Time) *ClaimUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimUpdate) SetUpdatedAt(v time.Time) *ClaimUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddClaimEntityIDs adds the "claim_entities" edge to the ClaimEntity entity by IDs.
func (_u *ClaimUpdate) AddClaimEntityIDs(ids ...string) *ClaimUpdate {
	_u.mutation.AddClaimEntityIDs(ids...)
	return _u
}

// AddClaimEntities adds the "claim_entities" edges to the ClaimEntity entity.
func (_u *ClaimUpdate) AddClaimEntities(v ...*ClaimEntity) *ClaimUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClaimEntityIDs(ids...)
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdate) Mutation() *ClaimMutation {
	return _u.mutation
}

// ClearClaimEntities clears all "claim_entities" edges to the ClaimEntity entity.
func (_u *ClaimUpdate) ClearClaimEntities() *ClaimUpdate {
	_u.mutation.ClearClaimEntities()
	return _u
}

// RemoveClaimEntityIDs removes the "claim_entities" edge to ClaimEntity entities by IDs.
func (_u *ClaimUpdate) RemoveClaimEntityIDs(ids ...string) *ClaimUpdate {
	_u.mutation.RemoveClaimEntityIDs(ids...)
	return _u
}

// RemoveClaimEntities removes "claim_entities" edges to ClaimEntity entities.
func (_u *ClaimUpdate) RemoveClaimEntities(v ...*ClaimEntity) *ClaimUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClaimEntityIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claim.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimUpdate) check() error {
	if v, ok := _u.mutation.ClaimType(); ok {
		if err := claim.ClaimTypeValidator(v); err != nil {
			return &ValidationError{Name: "claim_type", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_type": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Claim.document"`)
	}
	return nil
}

func (_u *ClaimUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClaimHash(); ok {
		_spec.SetField(claim.FieldClaimHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Statement(); ok {
		_spec.SetField(claim.FieldStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimType(); ok {
		_spec.SetField(claim.FieldClaimType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(claim.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(claim.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SubjectEntityID(); ok {
		_spec.SetField(claim.FieldSubjectEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(claim.FieldSectionID, field.TypeString, value)
	}
	if _u.mutation.SectionIDCleared() {
		_spec.ClearField(claim.FieldSectionID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceQuote(); ok {
		_spec.SetField(claim.FieldSourceQuote, field.TypeString, value)
	}
	if _u.mutation.SourceQuoteCleared() {
		_spec.ClearField(claim.FieldSourceQuote, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(claim.FieldEmbedding, field.TypeBytes, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(claim.FieldEmbedding, field.TypeBytes)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(claim.FieldWorkflowID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claim.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimEntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.ClaimEntitiesTable,
			Columns: []string{claim.ClaimEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claimentity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClaimEntitiesIDs(); len(nodes) > 0 && !_u.mutation.ClaimEntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.ClaimEntitiesTable,
			Columns: []string{claim.ClaimEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claimentity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimEntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.ClaimEntitiesTable,
			Columns: []string{claim.ClaimEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claimentity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimUpdateOne is the builder for updating a single Claim entity.
type ClaimUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimMutation
}

// SetClaimHash sets the "claim_hash" field.
func (_u *ClaimUpdateOne) SetClaimHash(v string) *ClaimUpdateOne {
	_u.mutation.SetClaimHash(v)
	return _u
}

// SetNillableClaimHash sets the "claim_hash" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableClaimHash(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetClaimHash(*v)
	}
	return _u
}

// SetStatement sets the "statement" field.
func (_u *ClaimUpdateOne) SetStatement(v string) *ClaimUpdateOne {
	_u.mutation.SetStatement(v)
	return _u
}

// SetNillableStatement sets the "statement" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableStatement(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetStatement(*v)
	}
	return _u
}

// SetClaimType sets the "claim_type" field.
func (_u *ClaimUpdateOne) SetClaimType(v claim.ClaimType) *ClaimUpdateOne {
	_u.mutation.SetClaimType(v)
	return _u
}

// SetNillableClaimType sets the "claim_type" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableClaimType(v *claim.ClaimType) *ClaimUpdateOne {
	if v != nil {
		_u.SetClaimType(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ClaimUpdateOne) SetConfidence(v float64) *ClaimUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableConfidence(v *float64) *ClaimUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ClaimUpdateOne) AddConfidence(v float64) *ClaimUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSubjectEntityID sets the "subject_entity_id" field.
func (_u *ClaimUpdateOne) SetSubjectEntityID(v string) *ClaimUpdateOne {
	_u.mutation.SetSubjectEntityID(v)
	return _u
}

// SetNillableSubjectEntityID sets the "subject_entity_id" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableSubjectEntityID(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetSubjectEntityID(*v)
	}
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *ClaimUpdateOne) SetSectionID(v string) *ClaimUpdateOne {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableSectionID(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// ClearSectionID clears the value of the "section_id" field.
func (_u *ClaimUpdateOne) ClearSectionID() *ClaimUpdateOne {
	_u.mutation.ClearSectionID()
	return _u
}

// SetSourceQuote sets the "source_quote" field.
func (_u *ClaimUpdateOne) SetSourceQuote(v string) *ClaimUpdateOne {
	_u.mutation.SetSourceQuote(v)
	return _u
}

// SetNillableSourceQuote sets the "source_quote" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableSourceQuote(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetSourceQuote(*v)
	}
	return _u
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (_u *ClaimUpdateOne) ClearSourceQuote() *ClaimUpdateOne {
	_u.mutation.ClearSourceQuote()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ClaimUpdateOne) SetEmbedding(v []byte) *ClaimUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ClaimUpdateOne) ClearEmbedding() *ClaimUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *ClaimUpdateOne) SetWorkflowID(v string) *ClaimUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableWorkflowID(v *string) *ClaimUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimUpdateOne) SetCreatedAt(v time.Time) *ClaimUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimUpdateOne) SetNillableCreatedAt(v *time.Time) *ClaimUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClaimUpdateOne) SetUpdatedAt(v time.Time) *ClaimUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddClaimEntityIDs adds the "claim_entities" edge to the ClaimEntity entity by IDs.
func (_u *ClaimUpdateOne) AddClaimEntityIDs(ids ...string) *ClaimUpdateOne {
	_u.mutation.AddClaimEntityIDs(ids...)
	return _u
}

// AddClaimEntities adds the "claim_entities" edges to the ClaimEntity entity.
func (_u *ClaimUpdateOne) AddClaimEntities(v ...*ClaimEntity) *ClaimUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClaimEntityIDs(ids...)
}

// Mutation returns the ClaimMutation object of the builder.
func (_u *ClaimUpdateOne) Mutation() *ClaimMutation {
	return _u.mutation
}

// ClearClaimEntities clears all "claim_entities" edges to the ClaimEntity entity.
func (_u *ClaimUpdateOne) ClearClaimEntities() *ClaimUpdateOne {
	_u.mutation.ClearClaimEntities()
	return _u
}

// RemoveClaimEntityIDs removes the "claim_entities" edge to ClaimEntity entities by IDs.
func (_u *ClaimUpdateOne) RemoveClaimEntityIDs(ids ...string) *ClaimUpdateOne {
	_u.mutation.RemoveClaimEntityIDs(ids...)
	return _u
}

// RemoveClaimEntities removes "claim_entities" edges to ClaimEntity entities.
func (_u *ClaimUpdateOne) RemoveClaimEntities(v ...*ClaimEntity) *ClaimUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClaimEntityIDs(ids...)
}

// Where appends a list predicates to the ClaimUpdate builder.
func (_u *ClaimUpdateOne) Where(ps ...predicate.Claim) *ClaimUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimUpdateOne) Select(field string, fields ...string) *ClaimUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Claim entity.
func (_u *ClaimUpdateOne) Save(ctx context.Context) (*Claim, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimUpdateOne) SaveX(ctx context.Context) *Claim {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClaimUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := claim.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimUpdateOne) check() error {
	if v, ok := _u.mutation.ClaimType(); ok {
		if err := claim.ClaimTypeValidator(v); err != nil {
			return &ValidationError{Name: "claim_type", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_type": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Claim.document"`)
	}
	return nil
}

func (_u *ClaimUpdateOne) sqlSave(ctx context.Context) (_node *Claim, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claim.Table, claim.Columns, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Claim.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claim.FieldID)
		for _, f := range fields {
			if !claim.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claim.FieldID {
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
	if value, ok := _u.mutation.ClaimHash(); ok {
		_spec.SetField(claim.FieldClaimHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Statement(); ok {
		_spec.SetField(claim.FieldStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClaimType(); ok {
		_spec.SetField(claim.FieldClaimType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(claim.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(claim.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SubjectEntityID(); ok {
		_spec.SetField(claim.FieldSubjectEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(claim.FieldSectionID, field.TypeString, value)
	}
	if _u.mutation.SectionIDCleared() {
		_spec.ClearField(claim.FieldSectionID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceQuote(); ok {
		_spec.SetField(claim.FieldSourceQuote, field.TypeString, value)
	}
	if _u.mutation.SourceQuoteCleared() {
		_spec.ClearField(claim.FieldSourceQuote, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(claim.FieldEmbedding, field.TypeBytes, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(claim.FieldEmbedding, field.TypeBytes)
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(claim.FieldWorkflowID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claim.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimEntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.ClaimEntitiesTable,
			Columns: []string{claim.ClaimEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claimentity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClaimEntitiesIDs(); len(nodes) > 0 && !_u.mutation.ClaimEntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.ClaimEntitiesTable,
			Columns: []string{claim.ClaimEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claimentity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimEntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   claim.ClaimEntitiesTable,
			Columns: []string{claim.ClaimEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claimentity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Claim{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
