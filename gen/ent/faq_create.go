// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bestofgoa/bok/gen/ent/faq"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/google/uuid"
)

// FAQCreate is the builder for creating a FAQ entity.
type FAQCreate struct {
	config
	mutation *FAQMutation
	hooks    []Hook
}

// SetListingID sets the "listing_id" field.
func (_c *FAQCreate) SetListingID(v uuid.UUID) *FAQCreate {
	_c.mutation.SetListingID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *FAQCreate) SetQuestion(v string) *FAQCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *FAQCreate) SetAnswer(v string) *FAQCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *FAQCreate) SetDisplayOrder(v int) *FAQCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *FAQCreate) SetNillableDisplayOrder(v *int) *FAQCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FAQCreate) SetCreatedAt(v time.Time) *FAQCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FAQCreate) SetNillableCreatedAt(v *time.Time) *FAQCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FAQCreate) SetID(v uuid.UUID) *FAQCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FAQCreate) SetNillableID(v *uuid.UUID) *FAQCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetListing sets the "listing" edge to the Listing entity.
func (_c *FAQCreate) SetListing(v *Listing) *FAQCreate {
	return _c.SetListingID(v.ID)
}

// Mutation returns the FAQMutation object of the builder.
func (_c *FAQCreate) Mutation() *FAQMutation {
	return _c.mutation
}

// Save creates the FAQ in the database.
func (_c *FAQCreate) Save(ctx context.Context) (*FAQ, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FAQCreate) SaveX(ctx context.Context) *FAQ {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FAQCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FAQCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FAQCreate) defaults() {
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		v := faq.DefaultDisplayOrder
		_c.mutation.SetDisplayOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := faq.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := faq.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FAQCreate) check() error {
	if _, ok := _c.mutation.ListingID(); !ok {
		return &ValidationError{Name: "listing_id", err: errors.New(`ent: missing required field "FAQ.listing_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "FAQ.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := faq.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "FAQ.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "FAQ.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := faq.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "FAQ.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`ent: missing required field "FAQ.display_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FAQ.created_at"`)}
	}
	if len(_c.mutation.ListingIDs()) == 0 {
		return &ValidationError{Name: "listing", err: errors.New(`ent: missing required edge "FAQ.listing"`)}
	}
	return nil
}

func (_c *FAQCreate) sqlSave(ctx context.Context) (*FAQ, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FAQCreate) createSpec() (*FAQ, *sqlgraph.CreateSpec) {
	var (
		_node = &FAQ{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(faq.Table, sqlgraph.NewFieldSpec(faq.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(faq.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(faq.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(faq.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(faq.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ListingIDs(); len(nodes) > 0 {
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
		_node.ListingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FAQCreateBulk is the builder for creating many FAQ entities in bulk.
type FAQCreateBulk struct {
	config
	err      error
	builders []*FAQCreate
}

// Save creates the FAQ entities in the database.
func (_c *FAQCreateBulk) Save(ctx context.Context) ([]*FAQ, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FAQ, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FAQMutation)
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
func (_c *FAQCreateBulk) SaveX(ctx context.Context) []*FAQ {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FAQCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FAQCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
