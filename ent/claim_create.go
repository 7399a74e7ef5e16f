// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/claimentity"
	"github.com/kurt-labs/kurt/ent/document"
)

// ClaimCreate is the builder for creating a Claim entity.
type ClaimCreate struct {
	config
	mutation *ClaimMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetClaimHash sets the "claim_hash" field.
func (_c *ClaimCreate) SetClaimHash(v string) *ClaimCreate {
	_c.mutation.SetClaimHash(v)
	return _c
}

// SetStatement sets the "statement" field.
func (_c *ClaimCreate) SetStatement(v string) *ClaimCreate {
	_c.mutation.SetStatement(v)
	return _c
}

// SetClaimType sets the "claim_type" field.
func (_c *ClaimCreate) SetClaimType(v claim.ClaimType) *ClaimCreate {
	_c.mutation.SetClaimType(v)
	return _c
}

// SetNillableClaimType sets the "claim_type" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableClaimType(v *claim.ClaimType) *ClaimCreate {
	if v != nil {
		_c.SetClaimType(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ClaimCreate) SetConfidence(v float64) *ClaimCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableConfidence(v *float64) *ClaimCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSubjectEntityID sets the "subject_entity_id" field.
func (_c *ClaimCreate) SetSubjectEntityID(v string) *ClaimCreate {
	_c.mutation.SetSubjectEntityID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *ClaimCreate) SetDocumentID(v string) *ClaimCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetSectionID sets the "section_id" field.
func (_c *ClaimCreate) SetSectionID(v string) *ClaimCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableSectionID(v *string) *ClaimCreate {
	if v != nil {
		_c.SetSectionID(*v)
	}
	return _c
}

// SetSourceQuote sets the "source_quote" field.
func (_c *ClaimCreate) SetSourceQuote(v string) *ClaimCreate {
	_c.mutation.SetSourceQuote(v)
	return _c
}

// SetNillableSourceQuote sets the "source_quote" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableSourceQuote(v *string) *ClaimCreate {
	if v != nil {
		_c.SetSourceQuote(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *ClaimCreate) SetEmbedding(v []byte) *ClaimCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *ClaimCreate) SetWorkflowID(v string) *ClaimCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClaimCreate) SetCreatedAt(v time.Time) *ClaimCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableCreatedAt(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClaimCreate) SetUpdatedAt(v time.Time) *ClaimCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClaimCreate) SetNillableUpdatedAt(v *time.Time) *ClaimCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClaimCreate) SetID(v string) *ClaimCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ClaimCreate) SetDocument(v *Document) *ClaimCreate {
	return _c.SetDocumentID(v.ID)
}

// AddClaimEntityIDs adds the "claim_entities" edge to the ClaimEntity entity by IDs.
func (_c *ClaimCreate) AddClaimEntityIDs(ids ...string) *ClaimCreate {
	_c.mutation.AddClaimEntityIDs(ids...)
	return _c
}

// AddClaimEntities adds the "claim_entities" edges to the ClaimEntity entity.
func (_c *ClaimCreate) AddClaimEntities(v ...*ClaimEntity) *ClaimCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClaimEntityIDs(ids...)
}

// Mutation returns the ClaimMutation object of the builder.
func (_c *ClaimCreate) Mutation() *ClaimMutation {
	return _c.mutation
}

// Save creates the Claim in the database.
func (_c *ClaimCreate) Save(ctx context.Context) (*Claim, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClaimCreate) SaveX(ctx context.Context) *Claim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClaimCreate) defaults() {
	if _, ok := _c.mutation.ClaimType(); !ok {
		v := claim.DefaultClaimType
		_c.mutation.SetClaimType(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := claim.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := claim.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := claim.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClaimCreate) check() error {
	if _, ok := _c.mutation.ClaimHash(); !ok {
		return &ValidationError{Name: "claim_hash", err: errors.New(`ent: missing required field "Claim.claim_hash"`)}
	}
	if _, ok := _c.mutation.Statement(); !ok {
		return &ValidationError{Name: "statement", err: errors.New(`ent: missing required field "Claim.statement"`)}
	}
	if _, ok := _c.mutation.ClaimType(); !ok {
		return &ValidationError{Name: "claim_type", err: errors.New(`ent: missing required field "Claim.claim_type"`)}
	}
	if v, ok := _c.mutation.ClaimType(); ok {
		if err := claim.ClaimTypeValidator(v); err != nil {
			return &ValidationError{Name: "claim_type", err: fmt.Errorf(`ent: validator failed for field "Claim.claim_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Claim.confidence"`)}
	}
	if _, ok := _c.mutation.SubjectEntityID(); !ok {
		return &ValidationError{Name: "subject_entity_id", err: errors.New(`ent: missing required field "Claim.subject_entity_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Claim.document_id"`)}
	}
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "Claim.workflow_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Claim.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Claim.updated_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Claim.document"`)}
	}
	return nil
}

func (_c *ClaimCreate) sqlSave(ctx context.Context) (*Claim, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Claim.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClaimCreate) createSpec() (*Claim, *sqlgraph.CreateSpec) {
	var (
		_node = &Claim{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(claim.Table, sqlgraph.NewFieldSpec(claim.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ClaimHash(); ok {
		_spec.SetField(claim.FieldClaimHash, field.TypeString, value)
		_node.ClaimHash = value
	}
	if value, ok := _c.mutation.Statement(); ok {
		_spec.SetField(claim.FieldStatement, field.TypeString, value)
		_node.Statement = value
	}
	if value, ok := _c.mutation.ClaimType(); ok {
		_spec.SetField(claim.FieldClaimType, field.TypeEnum, value)
		_node.ClaimType = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(claim.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SubjectEntityID(); ok {
		_spec.SetField(claim.FieldSubjectEntityID, field.TypeString, value)
		_node.SubjectEntityID = value
	}
	if value, ok := _c.mutation.SectionID(); ok {
		_spec.SetField(claim.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := _c.mutation.SourceQuote(); ok {
		_spec.SetField(claim.FieldSourceQuote, field.TypeString, value)
		_node.SourceQuote = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(claim.FieldEmbedding, field.TypeBytes, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(claim.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(claim.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(claim.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claim.DocumentTable,
			Columns: []string{claim.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClaimEntitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Claim.Create().
//		SetClaimHash(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClaimUpsert) {
//			SetClaimHash(v+v).
//		}).
//		Exec(ctx)
func (_c *ClaimCreate) OnConflict(opts ...sql.ConflictOption) *ClaimUpsertOne {
	_c.conflict = opts
	return &ClaimUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Claim.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClaimCreate) OnConflictColumns(columns ...string) *ClaimUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClaimUpsertOne{
		create: _c,
	}
}

type (
	// ClaimUpsertOne is the builder for "upsert"-ing
	//  one Claim node.
	ClaimUpsertOne struct {
		create *ClaimCreate
	}

	// ClaimUpsert is the "OnConflict" setter.
	ClaimUpsert struct {
		*sql.UpdateSet
	}
)

// SetClaimHash sets the "claim_hash" field.
func (u *ClaimUpsert) SetClaimHash(v string) *ClaimUpsert {
	u.Set(claim.FieldClaimHash, v)
	return u
}

// UpdateClaimHash sets the "claim_hash" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateClaimHash() *ClaimUpsert {
	u.SetExcluded(claim.FieldClaimHash)
	return u
}

// SetStatement sets the "statement" field.
func (u *ClaimUpsert) SetStatement(v string) *ClaimUpsert {
	u.Set(claim.FieldStatement, v)
	return u
}

// UpdateStatement sets the "statement" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateStatement() *ClaimUpsert {
	u.SetExcluded(claim.FieldStatement)
	return u
}

// SetClaimType sets the "claim_type" field.
func (u *ClaimUpsert) SetClaimType(v claim.ClaimType) *ClaimUpsert {
	u.Set(claim.FieldClaimType, v)
	return u
}

// UpdateClaimType sets the "claim_type" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateClaimType() *ClaimUpsert {
	u.SetExcluded(claim.FieldClaimType)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *ClaimUpsert) SetConfidence(v float64) *ClaimUpsert {
	u.Set(claim.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateConfidence() *ClaimUpsert {
	u.SetExcluded(claim.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *ClaimUpsert) AddConfidence(v float64) *ClaimUpsert {
	u.Add(claim.FieldConfidence, v)
	return u
}

// SetSubjectEntityID sets the "subject_entity_id" field.
func (u *ClaimUpsert) SetSubjectEntityID(v string) *ClaimUpsert {
	u.Set(claim.FieldSubjectEntityID, v)
	return u
}

// UpdateSubjectEntityID sets the "subject_entity_id" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateSubjectEntityID() *ClaimUpsert {
	u.SetExcluded(claim.FieldSubjectEntityID)
	return u
}

// SetSectionID sets the "section_id" field.
func (u *ClaimUpsert) SetSectionID(v string) *ClaimUpsert {
	u.Set(claim.FieldSectionID, v)
	return u
}

// UpdateSectionID sets the "section_id" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateSectionID() *ClaimUpsert {
	u.SetExcluded(claim.FieldSectionID)
	return u
}

// ClearSectionID clears the value of the "section_id" field.
func (u *ClaimUpsert) ClearSectionID() *ClaimUpsert {
	u.SetNull(claim.FieldSectionID)
	return u
}

// SetSourceQuote sets the "source_quote" field.
func (u *ClaimUpsert) SetSourceQuote(v string) *ClaimUpsert {
	u.Set(claim.FieldSourceQuote, v)
	return u
}

// UpdateSourceQuote sets the "source_quote" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateSourceQuote() *ClaimUpsert {
	u.SetExcluded(claim.FieldSourceQuote)
	return u
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (u *ClaimUpsert) ClearSourceQuote() *ClaimUpsert {
	u.SetNull(claim.FieldSourceQuote)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *ClaimUpsert) SetEmbedding(v []byte) *ClaimUpsert {
	u.Set(claim.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateEmbedding() *ClaimUpsert {
	u.SetExcluded(claim.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *ClaimUpsert) ClearEmbedding() *ClaimUpsert {
	u.SetNull(claim.FieldEmbedding)
	return u
}

// SetWorkflowID sets the "workflow_id" field.
func (u *ClaimUpsert) SetWorkflowID(v string) *ClaimUpsert {
	u.Set(claim.FieldWorkflowID, v)
	return u
}

// UpdateWorkflowID sets the "workflow_id" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateWorkflowID() *ClaimUpsert {
	u.SetExcluded(claim.FieldWorkflowID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ClaimUpsert) SetCreatedAt(v time.Time) *ClaimUpsert {
	u.Set(claim.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateCreatedAt() *ClaimUpsert {
	u.SetExcluded(claim.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClaimUpsert) SetUpdatedAt(v time.Time) *ClaimUpsert {
	u.Set(claim.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClaimUpsert) UpdateUpdatedAt() *ClaimUpsert {
	u.SetExcluded(claim.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Claim.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(claim.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClaimUpsertOne) UpdateNewValues() *ClaimUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(claim.FieldID)
		}
		if _, exists := u.create.mutation.DocumentID(); exists {
			s.SetIgnore(claim.FieldDocumentID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Claim.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClaimUpsertOne) Ignore() *ClaimUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClaimUpsertOne) DoNothing() *ClaimUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClaimCreate.OnConflict
// documentation for more info.
func (u *ClaimUpsertOne) Update(set func(*ClaimUpsert)) *ClaimUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClaimUpsert{UpdateSet: update})
	}))
	return u
}

// SetClaimHash sets the "claim_hash" field.
func (u *ClaimUpsertOne) SetClaimHash(v string) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetClaimHash(v)
	})
}

// UpdateClaimHash sets the "claim_hash" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateClaimHash() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateClaimHash()
	})
}

// SetStatement sets the "statement" field.
func (u *ClaimUpsertOne) SetStatement(v string) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetStatement(v)
	})
}

// UpdateStatement sets the "statement" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateStatement() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateStatement()
	})
}

// SetClaimType sets the "claim_type" field.
func (u *ClaimUpsertOne) SetClaimType(v claim.ClaimType) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetClaimType(v)
	})
}

// UpdateClaimType sets the "claim_type" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateClaimType() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateClaimType()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ClaimUpsertOne) SetConfidence(v float64) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ClaimUpsertOne) AddConfidence(v float64) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateConfidence() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateConfidence()
	})
}

// SetSubjectEntityID sets the "subject_entity_id" field.
func (u *ClaimUpsertOne) SetSubjectEntityID(v string) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetSubjectEntityID(v)
	})
}

// UpdateSubjectEntityID sets the "subject_entity_id" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateSubjectEntityID() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateSubjectEntityID()
	})
}

// SetSectionID sets the "section_id" field.
func (u *ClaimUpsertOne) SetSectionID(v string) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetSectionID(v)
	})
}

// UpdateSectionID sets the "section_id" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateSectionID() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateSectionID()
	})
}

// ClearSectionID clears the value of the "section_id" field.
func (u *ClaimUpsertOne) ClearSectionID() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.ClearSectionID()
	})
}

// SetSourceQuote sets the "source_quote" field.
func (u *ClaimUpsertOne) SetSourceQuote(v string) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetSourceQuote(v)
	})
}

// UpdateSourceQuote sets the "source_quote" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateSourceQuote() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateSourceQuote()
	})
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (u *ClaimUpsertOne) ClearSourceQuote() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.ClearSourceQuote()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *ClaimUpsertOne) SetEmbedding(v []byte) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateEmbedding() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *ClaimUpsertOne) ClearEmbedding() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.ClearEmbedding()
	})
}

// SetWorkflowID sets the "workflow_id" field.
func (u *ClaimUpsertOne) SetWorkflowID(v string) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetWorkflowID(v)
	})
}

// UpdateWorkflowID sets the "workflow_id" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateWorkflowID() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateWorkflowID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ClaimUpsertOne) SetCreatedAt(v time.Time) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateCreatedAt() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClaimUpsertOne) SetUpdatedAt(v time.Time) *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClaimUpsertOne) UpdateUpdatedAt() *ClaimUpsertOne {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ClaimUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClaimCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClaimUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClaimUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ClaimUpsertOne.ID is not supported by MySQL driver. Use ClaimUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClaimUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClaimCreateBulk is the builder for creating many Claim entities in bulk.
type ClaimCreateBulk struct {
	config
	err      error
	builders []*ClaimCreate
	conflict []sql.ConflictOption
}

// Save creates the Claim entities in the database.
func (_c *ClaimCreateBulk) Save(ctx context.Context) ([]*Claim, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Claim, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClaimMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ClaimCreateBulk) SaveX(ctx context.Context) []*Claim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClaimCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClaimCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Claim.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClaimUpsert) {
//			SetClaimHash(v+v).
//		}).
//		Exec(ctx)
func (_c *ClaimCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClaimUpsertBulk {
	_c.conflict = opts
	return &ClaimUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Claim.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClaimCreateBulk) OnConflictColumns(columns ...string) *ClaimUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClaimUpsertBulk{
		create: _c,
	}
}

// ClaimUpsertBulk is the builder for "upsert"-ing
// a bulk of Claim nodes.
type ClaimUpsertBulk struct {
	create *ClaimCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Claim.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(claim.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClaimUpsertBulk) UpdateNewValues() *ClaimUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(claim.FieldID)
			}
			if _, exists := b.mutation.DocumentID(); exists {
				s.SetIgnore(claim.FieldDocumentID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Claim.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClaimUpsertBulk) Ignore() *ClaimUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClaimUpsertBulk) DoNothing() *ClaimUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClaimCreateBulk.OnConflict
// documentation for more info.
func (u *ClaimUpsertBulk) Update(set func(*ClaimUpsert)) *ClaimUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClaimUpsert{UpdateSet: update})
	}))
	return u
}

// SetClaimHash sets the "claim_hash" field.
func (u *ClaimUpsertBulk) SetClaimHash(v string) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetClaimHash(v)
	})
}

// UpdateClaimHash sets the "claim_hash" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateClaimHash() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateClaimHash()
	})
}

// SetStatement sets the "statement" field.
func (u *ClaimUpsertBulk) SetStatement(v string) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetStatement(v)
	})
}

// UpdateStatement sets the "statement" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateStatement() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateStatement()
	})
}

// SetClaimType sets the "claim_type" field.
func (u *ClaimUpsertBulk) SetClaimType(v claim.ClaimType) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetClaimType(v)
	})
}

// UpdateClaimType sets the "claim_type" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateClaimType() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateClaimType()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ClaimUpsertBulk) SetConfidence(v float64) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ClaimUpsertBulk) AddConfidence(v float64) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateConfidence() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateConfidence()
	})
}

// SetSubjectEntityID sets the "subject_entity_id" field.
func (u *ClaimUpsertBulk) SetSubjectEntityID(v string) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetSubjectEntityID(v)
	})
}

// UpdateSubjectEntityID sets the "subject_entity_id" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateSubjectEntityID() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateSubjectEntityID()
	})
}

// SetSectionID sets the "section_id" field.
func (u *ClaimUpsertBulk) SetSectionID(v string) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetSectionID(v)
	})
}

// UpdateSectionID sets the "section_id" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateSectionID() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateSectionID()
	})
}

// ClearSectionID clears the value of the "section_id" field.
func (u *ClaimUpsertBulk) ClearSectionID() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.ClearSectionID()
	})
}

// SetSourceQuote sets the "source_quote" field.
func (u *ClaimUpsertBulk) SetSourceQuote(v string) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetSourceQuote(v)
	})
}

// UpdateSourceQuote sets the "source_quote" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateSourceQuote() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateSourceQuote()
	})
}

// ClearSourceQuote clears the value of the "source_quote" field.
func (u *ClaimUpsertBulk) ClearSourceQuote() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.ClearSourceQuote()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *ClaimUpsertBulk) SetEmbedding(v []byte) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateEmbedding() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *ClaimUpsertBulk) ClearEmbedding() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.ClearEmbedding()
	})
}

// SetWorkflowID sets the "workflow_id" field.
func (u *ClaimUpsertBulk) SetWorkflowID(v string) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetWorkflowID(v)
	})
}

// UpdateWorkflowID sets the "workflow_id" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateWorkflowID() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateWorkflowID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ClaimUpsertBulk) SetCreatedAt(v time.Time) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateCreatedAt() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClaimUpsertBulk) SetUpdatedAt(v time.Time) *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClaimUpsertBulk) UpdateUpdatedAt() *ClaimUpsertBulk {
	return u.Update(func(s *ClaimUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ClaimUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ClaimCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClaimCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClaimUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
