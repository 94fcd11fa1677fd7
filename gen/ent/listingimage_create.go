// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/bestofgoa/bok/gen/ent/listingimage"
	"github.com/google/uuid"
)

// ListingImageCreate is the builder for creating a ListingImage entity.
type ListingImageCreate struct {
	config
	mutation *ListingImageMutation
	hooks    []Hook
}

// SetListingID sets the "listing_id" field.
func (_c *ListingImageCreate) SetListingID(v uuid.UUID) *ListingImageCreate {
	_c.mutation.SetListingID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *ListingImageCreate) SetURL(v string) *ListingImageCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetAltText sets the "alt_text" field.
func (_c *ListingImageCreate) SetAltText(v string) *ListingImageCreate {
	_c.mutation.SetAltText(v)
	return _c
}

// SetNillableAltText sets the "alt_text" field if the given value is not nil.
func (_c *ListingImageCreate) SetNillableAltText(v *string) *ListingImageCreate {
	if v != nil {
		_c.SetAltText(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ListingImageCreate) SetStatus(v string) *ListingImageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ListingImageCreate) SetNillableStatus(v *string) *ListingImageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIsHero sets the "is_hero" field.
func (_c *ListingImageCreate) SetIsHero(v bool) *ListingImageCreate {
	_c.mutation.SetIsHero(v)
	return _c
}

// SetNillableIsHero sets the "is_hero" field if the given value is not nil.
func (_c *ListingImageCreate) SetNillableIsHero(v *bool) *ListingImageCreate {
	if v != nil {
		_c.SetIsHero(*v)
	}
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *ListingImageCreate) SetDisplayOrder(v int) *ListingImageCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *ListingImageCreate) SetNillableDisplayOrder(v *int) *ListingImageCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ListingImageCreate) SetCreatedAt(v time.Time) *ListingImageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ListingImageCreate) SetNillableCreatedAt(v *time.Time) *ListingImageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ListingImageCreate) SetID(v uuid.UUID) *ListingImageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ListingImageCreate) SetNillableID(v *uuid.UUID) *ListingImageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetListing sets the "listing" edge to the Listing entity.
func (_c *ListingImageCreate) SetListing(v *Listing) *ListingImageCreate {
	return _c.SetListingID(v.ID)
}

// Mutation returns the ListingImageMutation object of the builder.
func (_c *ListingImageCreate) Mutation() *ListingImageMutation {
	return _c.mutation
}

// Save creates the ListingImage in the database.
func (_c *ListingImageCreate) Save(ctx context.Context) (*ListingImage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ListingImageCreate) SaveX(ctx context.Context) *ListingImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ListingImageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := listingimage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsHero(); !ok {
		v := listingimage.DefaultIsHero
		_c.mutation.SetIsHero(v)
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		v := listingimage.DefaultDisplayOrder
		_c.mutation.SetDisplayOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := listingimage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := listingimage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ListingImageCreate) check() error {
	if _, ok := _c.mutation.ListingID(); !ok {
		return &ValidationError{Name: "listing_id", err: errors.New(`ent: missing required field "ListingImage.listing_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "ListingImage.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := listingimage.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ListingImage.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ListingImage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := listingimage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ListingImage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsHero(); !ok {
		return &ValidationError{Name: "is_hero", err: errors.New(`ent: missing required field "ListingImage.is_hero"`)}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`ent: missing required field "ListingImage.display_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ListingImage.created_at"`)}
	}
	if len(_c.mutation.ListingIDs()) == 0 {
		return &ValidationError{Name: "listing", err: errors.New(`ent: missing required edge "ListingImage.listing"`)}
	}
	return nil
}

func (_c *ListingImageCreate) sqlSave(ctx context.Context) (*ListingImage, error) {
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

func (_c *ListingImageCreate) createSpec() (*ListingImage, *sqlgraph.CreateSpec) {
	var (
		_node = &ListingImage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(listingimage.Table, sqlgraph.NewFieldSpec(listingimage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(listingimage.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.AltText(); ok {
		_spec.SetField(listingimage.FieldAltText, field.TypeString, value)
		_node.AltText = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(listingimage.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IsHero(); ok {
		_spec.SetField(listingimage.FieldIsHero, field.TypeBool, value)
		_node.IsHero = value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(listingimage.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(listingimage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ListingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   listingimage.ListingTable,
			Columns: []string{listingimage.ListingColumn},
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

// ListingImageCreateBulk is the builder for creating many ListingImage entities in bulk.
type ListingImageCreateBulk struct {
	config
	err      error
	builders []*ListingImageCreate
}

// Save creates the ListingImage entities in the database.
func (_c *ListingImageCreateBulk) Save(ctx context.Context) ([]*ListingImage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ListingImage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ListingImageMutation)
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
func (_c *ListingImageCreateBulk) SaveX(ctx context.Context) []*ListingImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
