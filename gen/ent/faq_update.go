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
	"github.com/bestofgoa/bok/gen/ent/faq"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/bestofgoa/bok/gen/ent/predicate"
	"github.com/google/uuid"
)

// FAQUpdate is the builder for updating FAQ entities.
type FAQUpdate struct {
	config
	hooks    []Hook
	mutation *FAQMutation
}

// Where appends a list predicates to the FAQUpdate builder.
func (_u *FAQUpdate) Where(ps ...predicate.FAQ) *FAQUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetListingID sets the "listing_id" field.
func (_u *FAQUpdate) SetListingID(v uuid.UUID) *FAQUpdate {
	_u.mutation.SetListingID(v)
	return _u
}

// SetNillableListingID sets the "listing_id" field if the given value is not nil.
func (_u *FAQUpdate) SetNillableListingID(v *uuid.UUID) *FAQUpdate {
	if v != nil {
		_u.SetListingID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *FAQUpdate) SetQuestion(v string) *FAQUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *FAQUpdate) SetNillableQuestion(v *string) *FAQUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *FAQUpdate) SetAnswer(v string) *FAQUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *FAQUpdate) SetNillableAnswer(v *string) *FAQUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *FAQUpdate) SetDisplayOrder(v int) *FAQUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *FAQUpdate) SetNillableDisplayOrder(v *int) *FAQUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *FAQUpdate) AddDisplayOrder(v int) *FAQUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FAQUpdate) SetCreatedAt(v time.Time) *FAQUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FAQUpdate) SetNillableCreatedAt(v *time.Time) *FAQUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetListing sets the "listing" edge to the Listing entity.
func (_u *FAQUpdate) SetListing(v *Listing) *FAQUpdate {
	return _u.SetListingID(v.ID)
}

// Mutation returns the FAQMutation object of the builder.
func (_u *FAQUpdate) Mutation() *FAQMutation {
	return _u.mutation
}

// ClearListing clears the "listing" edge to the Listing entity.
func (_u *FAQUpdate) ClearListing() *FAQUpdate {
	_u.mutation.ClearListing()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FAQUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FAQUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FAQUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FAQUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FAQUpdate) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := faq.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "FAQ.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := faq.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "FAQ.answer": %w`, err)}
		}
	}
	if _u.mutation.ListingCleared() && len(_u.mutation.ListingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FAQ.listing"`)
	}
	return nil
}

func (_u *FAQUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(faq.Table, faq.Columns, sqlgraph.NewFieldSpec(faq.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(faq.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(faq.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(faq.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(faq.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(faq.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ListingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   faq.ListingTable,
			Columns: []string{faq.ListingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   faq.ListingTable,
			Columns: []string{faq.ListingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{faq.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FAQUpdateOne is the builder for updating a single FAQ entity.
type FAQUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FAQMutation
}

// SetListingID sets the "listing_id" field.
func (_u *FAQUpdateOne) SetListingID(v uuid.UUID) *FAQUpdateOne {
	_u.mutation.SetListingID(v)
	return _u
}

// SetNillableListingID sets the "listing_id" field if the given value is not nil.
func (_u *FAQUpdateOne) SetNillableListingID(v *uuid.UUID) *FAQUpdateOne {
	if v != nil {
		_u.SetListingID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *FAQUpdateOne) SetQuestion(v string) *FAQUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *FAQUpdateOne) SetNillableQuestion(v *string) *FAQUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *FAQUpdateOne) SetAnswer(v string) *FAQUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *FAQUpdateOne) SetNillableAnswer(v *string) *FAQUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *FAQUpdateOne) SetDisplayOrder(v int) *FAQUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *FAQUpdateOne) SetNillableDisplayOrder(v *int) *FAQUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *FAQUpdateOne) AddDisplayOrder(v int) *FAQUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FAQUpdateOne) SetCreatedAt(v time.Time) *FAQUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FAQUpdateOne) SetNillableCreatedAt(v *time.Time) *FAQUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetListing sets the "listing" edge to the Listing entity.
func (_u *FAQUpdateOne) SetListing(v *Listing) *FAQUpdateOne {
	return _u.SetListingID(v.ID)
}

// Mutation returns the FAQMutation object of the builder.
func (_u *FAQUpdateOne) Mutation() *FAQMutation {
	return _u.mutation
}

// ClearListing clears the "listing" edge to the Listing entity.
func (_u *FAQUpdateOne) ClearListing() *FAQUpdateOne {
	_u.mutation.ClearListing()
	return _u
}

// Where appends a list predicates to the FAQUpdate builder.
func (_u *FAQUpdateOne) Where(ps ...predicate.FAQ) *FAQUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FAQUpdateOne) Select(field string, fields ...string) *FAQUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FAQ entity.
func (_u *FAQUpdateOne) Save(ctx context.Context) (*FAQ, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FAQUpdateOne) SaveX(ctx context.Context) *FAQ {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FAQUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FAQUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FAQUpdateOne) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := faq.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "FAQ.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := faq.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "FAQ.answer": %w`, err)}
		}
	}
	if _u.mutation.ListingCleared() && len(_u.mutation.ListingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FAQ.listing"`)
	}
	return nil
}

func (_u *FAQUpdateOne) sqlSave(ctx context.Context) (_node *FAQ, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(faq.Table, faq.Columns, sqlgraph.NewFieldSpec(faq.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FAQ.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, faq.FieldID)
		for _, f := range fields {
			if !faq.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != faq.FieldID {
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
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(faq.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(faq.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(faq.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(faq.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(faq.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ListingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   faq.ListingTable,
			Columns: []string{faq.ListingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   faq.ListingTable,
			Columns: []string{faq.ListingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FAQ{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{faq.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
