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
	"github.com/kurt-labs/kurt/ent/claimentity"
	"github.com/kurt-labs/kurt/ent/documententity"
	"github.com/kurt-labs/kurt/ent/entity"
	"github.com/kurt-labs/kurt/ent/predicate"
)

// EntityUpdate is the builder for updating Entity entities.
type EntityUpdate struct {
	config
	hooks    []Hook
	mutation *EntityMutation
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdate) Where(ps ...predicate.Entity) *EntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *EntityUpdate) SetName(v string) *EntityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableName(v *string) *EntityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EntityUpdate) SetEntityType(v entity.EntityType) *EntityUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableEntityType(v *entity.EntityType) *EntityUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EntityUpdate) SetDescription(v string) *EntityUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableDescription(v *string) *EntityUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EntityUpdate) ClearDescription() *EntityUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *EntityUpdate) SetAliases(v []string) *EntityUpdate {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *EntityUpdate) AppendAliases(v []string) *EntityUpdate {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *EntityUpdate) ClearAliases() *EntityUpdate {
	_u.mutation.ClearAliases()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *EntityUpdate) SetEmbedding(v []byte) *EntityUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *EntityUpdate) ClearEmbedding() *EntityUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetMergedIntoID sets the "merged_into_id" field.
func (_u *EntityUpdate) SetMergedIntoID(v string) *EntityUpdate {
	_u.mutation.SetMergedIntoID(v)
	return _u
}

// SetNillableMergedIntoID sets the "merged_into_id" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableMergedIntoID(v *string) *EntityUpdate {
	if v != nil {
		_u.SetMergedIntoID(*v)
	}
	return _u
}

// ClearMergedIntoID clears the value of the "merged_into_id" field.
func (_u *EntityUpdate) ClearMergedIntoID() *EntityUpdate {
	_u.mutation.ClearMergedIntoID()
	return _u
}

// SetVersion sets the "version" field.
func (_u *EntityUpdate) SetVersion(v int) *EntityUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableVersion(v *int) *EntityUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *EntityUpdate) AddVersion(v int) *EntityUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EntityUpdate) SetCreatedAt(v time.Time) *EntityUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableCreatedAt(v *time.Time) *EntityUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityUpdate) SetUpdatedAt(v time.Time) *EntityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentEntityIDs adds the "document_entities" edge to the DocumentEntity entity by IDs.
func (_u *EntityUpdate) AddDocumentEntityIDs(ids ...string) *EntityUpdate {
	_u.mutation.AddDocumentEntityIDs(ids...)
	return _u
}

// AddDocumentEntities adds the "document_entities" edges to the DocumentEntity entity.
func (_u *EntityUpdate) AddDocumentEntities(v ...*DocumentEntity) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentEntityIDs(ids...)
}

// AddClaimEntityIDs adds the "claim_entities" edge to the ClaimEntity entity by IDs.
func (_u *EntityUpdate) AddClaimEntityIDs(ids ...string) *EntityUpdate {
	_u.mutation.AddClaimEntityIDs(ids...)
	return _u
}

// AddClaimEntities adds the "claim_entities" edges to the ClaimEntity entity.
func (_u *EntityUpdate) AddClaimEntities(v ...*ClaimEntity) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClaimEntityIDs(ids...)
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdate) Mutation() *EntityMutation {
	return _u.mutation
}

// ClearDocumentEntities clears all "document_entities" edges to the DocumentEntity entity.
func (_u *EntityUpdate) ClearDocumentEntities() *EntityUpdate {
	_u.mutation.ClearDocumentEntities()
	return _u
}

// RemoveDocumentEntityIDs removes the "document_entities" edge to DocumentEntity entities by IDs.
func (_u *EntityUpdate) RemoveDocumentEntityIDs(ids ...string) *EntityUpdate {
	_u.mutation.RemoveDocumentEntityIDs(ids...)
	return _u
}

// RemoveDocumentEntities removes "document_entities" edges to DocumentEntity entities.
func (_u *EntityUpdate) RemoveDocumentEntities(v ...*DocumentEntity) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentEntityIDs(ids...)
}

// ClearClaimEntities clears all "claim_entities" edges to the ClaimEntity entity.
func (_u *EntityUpdate) ClearClaimEntities() *EntityUpdate {
	_u.mutation.ClearClaimEntities()
	return _u
}

// RemoveClaimEntityIDs removes the "claim_entities" edge to ClaimEntity entities by IDs.
func (_u *EntityUpdate) RemoveClaimEntityIDs(ids ...string) *EntityUpdate {
	_u.mutation.RemoveClaimEntityIDs(ids...)
	return _u
}

// RemoveClaimEntities removes "claim_entities" edges to ClaimEntity entities.
func (_u *EntityUpdate) RemoveClaimEntities(v ...*ClaimEntity) *EntityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClaimEntityIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityUpdate) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := entity.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Entity.entity_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entity.FieldEntityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(entity.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(entity.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(entity.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entity.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(entity.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(entity.FieldEmbedding, field.TypeBytes, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(entity.FieldEmbedding, field.TypeBytes)
	}
	if value, ok := _u.mutation.MergedIntoID(); ok {
		_spec.SetField(entity.FieldMergedIntoID, field.TypeString, value)
	}
	if _u.mutation.MergedIntoIDCleared() {
		_spec.ClearField(entity.FieldMergedIntoID, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(entity.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(entity.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(entity.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentEntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.DocumentEntitiesTable,
			Columns: []string{entity.DocumentEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documententity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentEntitiesIDs(); len(nodes) > 0 && !_u.mutation.DocumentEntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.DocumentEntitiesTable,
			Columns: []string{entity.DocumentEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documententity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentEntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.DocumentEntitiesTable,
			Columns: []string{entity.DocumentEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documententity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClaimEntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.ClaimEntitiesTable,
			Columns: []string{entity.ClaimEntitiesColumn},
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
			Table:   entity.ClaimEntitiesTable,
			Columns: []string{entity.ClaimEntitiesColumn},
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
			Table:   entity.ClaimEntitiesTable,
			Columns: []string{entity.ClaimEntitiesColumn},
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
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityUpdateOne is the builder for updating a single Entity entity.
type EntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityMutation
}

// SetName sets the "name" field.
func (_u *EntityUpdateOne) SetName(v string) *EntityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableName(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EntityUpdateOne) SetEntityType(v entity.EntityType) *EntityUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableEntityType(v *entity.EntityType) *EntityUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EntityUpdateOne) SetDescription(v string) *EntityUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableDescription(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EntityUpdateOne) ClearDescription() *EntityUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *EntityUpdateOne) SetAliases(v []string) *EntityUpdateOne {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *EntityUpdateOne) AppendAliases(v []string) *EntityUpdateOne {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *EntityUpdateOne) ClearAliases() *EntityUpdateOne {
	_u.mutation.ClearAliases()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *EntityUpdateOne) SetEmbedding(v []byte) *EntityUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *EntityUpdateOne) ClearEmbedding() *EntityUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetMergedIntoID sets the "merged_into_id" field.
func (_u *EntityUpdateOne) SetMergedIntoID(v string) *EntityUpdateOne {
	_u.mutation.SetMergedIntoID(v)
	return _u
}

// SetNillableMergedIntoID sets the "merged_into_id" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableMergedIntoID(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetMergedIntoID(*v)
	}
	return _u
}

// ClearMergedIntoID clears the value of the "merged_into_id" field.
func (_u *EntityUpdateOne) ClearMergedIntoID() *EntityUpdateOne {
	_u.mutation.ClearMergedIntoID()
	return _u
}

// SetVersion sets the "version" field.
func (_u *EntityUpdateOne) SetVersion(v int) *EntityUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableVersion(v *int) *EntityUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *EntityUpdateOne) AddVersion(v int) *EntityUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EntityUpdateOne) SetCreatedAt(v time.Time) *EntityUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableCreatedAt(v *time.Time) *EntityUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityUpdateOne) SetUpdatedAt(v time.Time) *EntityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentEntityIDs adds the "document_entities" edge to the DocumentEntity entity by IDs.
func (_u *EntityUpdateOne) AddDocumentEntityIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.AddDocumentEntityIDs(ids...)
	return _u
}

// AddDocumentEntities adds the "document_entities" edges to the DocumentEntity entity.
func (_u *EntityUpdateOne) AddDocumentEntities(v ...*DocumentEntity) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentEntityIDs(ids...)
}

// AddClaimEntityIDs adds the "claim_entities" edge to the ClaimEntity entity by IDs.
func (_u *EntityUpdateOne) AddClaimEntityIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.AddClaimEntityIDs(ids...)
	return _u
}

// AddClaimEntities adds the "claim_entities" edges to the ClaimEntity entity.
func (_u *EntityUpdateOne) AddClaimEntities(v ...*ClaimEntity) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClaimEntityIDs(ids...)
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdateOne) Mutation() *EntityMutation {
	return _u.mutation
}

// ClearDocumentEntities clears all "document_entities" edges to the DocumentEntity entity.
func (_u *EntityUpdateOne) ClearDocumentEntities() *EntityUpdateOne {
	_u.mutation.ClearDocumentEntities()
	return _u
}

// RemoveDocumentEntityIDs removes the "document_entities" edge to DocumentEntity entities by IDs.
func (_u *EntityUpdateOne) RemoveDocumentEntityIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.RemoveDocumentEntityIDs(ids...)
	return _u
}

// RemoveDocumentEntities removes "document_entities" edges to DocumentEntity entities.
func (_u *EntityUpdateOne) RemoveDocumentEntities(v ...*DocumentEntity) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentEntityIDs(ids...)
}

// ClearClaimEntities clears all "claim_entities" edges to the ClaimEntity entity.
func (_u *EntityUpdateOne) ClearClaimEntities() *EntityUpdateOne {
	_u.mutation.ClearClaimEntities()
	return _u
}

// RemoveClaimEntityIDs removes the "claim_entities" edge to ClaimEntity entities by IDs.
func (_u *EntityUpdateOne) RemoveClaimEntityIDs(ids ...string) *EntityUpdateOne {
	_u.mutation.RemoveClaimEntityIDs(ids...)
	return _u
}

// RemoveClaimEntities removes "claim_entities" edges to ClaimEntity entities.
func (_u *EntityUpdateOne) RemoveClaimEntities(v ...*ClaimEntity) *EntityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClaimEntityIDs(ids...)
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdateOne) Where(ps ...predicate.Entity) *EntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityUpdateOne) Select(field string, fields ...string) *EntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Entity entity.
func (_u *EntityUpdateOne) Save(ctx context.Context) (*Entity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdateOne) SaveX(ctx context.Context) *Entity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityUpdateOne) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := entity.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Entity.entity_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EntityUpdateOne) sqlSave(ctx context.Context) (_node *Entity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Entity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entity.FieldID)
		for _, f := range fields {
			if !entity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entity.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entity.FieldEntityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(entity.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(entity.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(entity.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entity.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(entity.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(entity.FieldEmbedding, field.TypeBytes, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(entity.FieldEmbedding, field.TypeBytes)
	}
	if value, ok := _u.mutation.MergedIntoID(); ok {
		_spec.SetField(entity.FieldMergedIntoID, field.TypeString, value)
	}
	if _u.mutation.MergedIntoIDCleared() {
		_spec.ClearField(entity.FieldMergedIntoID, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(entity.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(entity.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(entity.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentEntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.DocumentEntitiesTable,
			Columns: []string{entity.DocumentEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documententity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentEntitiesIDs(); len(nodes) > 0 && !_u.mutation.DocumentEntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.DocumentEntitiesTable,
			Columns: []string{entity.DocumentEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documententity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentEntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.DocumentEntitiesTable,
			Columns: []string{entity.DocumentEntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documententity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClaimEntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.ClaimEntitiesTable,
			Columns: []string{entity.ClaimEntitiesColumn},
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
			Table:   entity.ClaimEntitiesTable,
			Columns: []string{entity.ClaimEntitiesColumn},
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
			Table:   entity.ClaimEntitiesTable,
			Columns: []string{entity.ClaimEntitiesColumn},
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
	_node = &Entity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
