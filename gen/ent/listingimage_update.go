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
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/bestofgoa/bok/gen/ent/listingimage"
	"github.com/bestofgoa/bok/gen/ent/predicate"
	"github.com/google/uuid"
)

// ListingImageUpdate is the builder for updating ListingImage entities.
type ListingImageUpdate struct {
	config
	hooks    []Hook
	mutation *ListingImageMutation
}

// Where appends a list predicates to the ListingImageUpdate builder.
func (_u *ListingImageUpdate) Where(ps ...predicate.ListingImage) *ListingImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetListingID sets the "listing_id" field.
func (_u *ListingImageUpdate) SetListingID(v uuid.UUID) *ListingImageUpdate {
	_u.mutation.SetListingID(v)
	return _u
}

// SetNillableListingID sets the "listing_id" field if the given value is not nil.
func (_u *ListingImageUpdate) SetNillableListingID(v *uuid.UUID) *ListingImageUpdate {
	if v != nil {
		_u.SetListingID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ListingImageUpdate) SetURL(v string) *ListingImageUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ListingImageUpdate) SetNillableURL(v *string) *ListingImageUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetAltText sets the "alt_text" field.
func (_u *ListingImageUpdate) SetAltText(v string) *ListingImageUpdate {
	_u.mutation.SetAltText(v)
	return _u
}

// SetNillableAltText sets the "alt_text" field if the given value is not nil.
func (_u *ListingImageUpdate) SetNillableAltText(v *string) *ListingImageUpdate {
	if v != nil {
		_u.SetAltText(*v)
	}
	return _u
}

// ClearAltText clears the value of the "alt_text" field.
func (_u *ListingImageUpdate) ClearAltText() *ListingImageUpdate {
	_u.mutation.ClearAltText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ListingImageUpdate) SetStatus(v string) *ListingImageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ListingImageUpdate) SetNillableStatus(v *string) *ListingImageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsHero sets the "is_hero" field.
func (_u *ListingImageUpdate) SetIsHero(v bool) *ListingImageUpdate {
	_u.mutation.SetIsHero(v)
	return _u
}

// SetNillableIsHero sets the "is_hero" field if the given value is not nil.
func (_u *ListingImageUpdate) SetNillableIsHero(v *bool) *ListingImageUpdate {
	if v != nil {
		_u.SetIsHero(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *ListingImageUpdate) SetDisplayOrder(v int) *ListingImageUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *ListingImageUpdate) SetNillableDisplayOrder(v *int) *ListingImageUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *ListingImageUpdate) AddDisplayOrder(v int) *ListingImageUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ListingImageUpdate) SetCreatedAt(v time.Time) *ListingImageUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ListingImageUpdate) SetNillableCreatedAt(v *time.Time) *ListingImageUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetListing sets the "listing" edge to the Listing entity.
func (_u *ListingImageUpdate) SetListing(v *Listing) *ListingImageUpdate {
	return _u.SetListingID(v.ID)
}

// Mutation returns the ListingImageMutation object of the builder.
func (_u *ListingImageUpdate) Mutation() *ListingImageMutation {
	return _u.mutation
}

// ClearListing clears the "listing" edge to the Listing entity.
func (_u *ListingImageUpdate) ClearListing() *ListingImageUpdate {
	_u.mutation.ClearListing()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ListingImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ListingImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingImageUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := listingimage.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ListingImage.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := listingimage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ListingImage.status": %w`, err)}
		}
	}
	if _u.mutation.ListingCleared() && len(_u.mutation.ListingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ListingImage.listing"`)
	}
	return nil
}

func (_u *ListingImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listingimage.Table, listingimage.Columns, sqlgraph.NewFieldSpec(listingimage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(listingimage.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.AltText(); ok {
		_spec.SetField(listingimage.FieldAltText, field.TypeString, value)
	}
	if _u.mutation.AltTextCleared() {
		_spec.ClearField(listingimage.FieldAltText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(listingimage.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsHero(); ok {
		_spec.SetField(listingimage.FieldIsHero, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(listingimage.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(listingimage.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(listingimage.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ListingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listingimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ListingImageUpdateOne is the builder for updating a single ListingImage entity.
type ListingImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ListingImageMutation
}

// SetListingID sets the "listing_id" field.
func (_u *ListingImageUpdateOne) SetListingID(v uuid.UUID) *ListingImageUpdateOne {
	_u.mutation.SetListingID(v)
	return _u
}

// SetNillableListingID sets the "listing_id" field if the given value is not nil.
func (_u *ListingImageUpdateOne) SetNillableListingID(v *uuid.UUID) *ListingImageUpdateOne {
	if v != nil {
		_u.SetListingID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ListingImageUpdateOne) SetURL(v string) *ListingImageUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ListingImageUpdateOne) SetNillableURL(v *string) *ListingImageUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetAltText sets the "alt_text" field.
func (_u *ListingImageUpdateOne) SetAltText(v string) *ListingImageUpdateOne {
	_u.mutation.SetAltText(v)
	return _u
}

// SetNillableAltText sets the "alt_text" field if the given value is not nil.
func (_u *ListingImageUpdateOne) SetNillableAltText(v *string) *ListingImageUpdateOne {
	if v != nil {
		_u.SetAltText(*v)
	}
	return _u
}

// ClearAltText clears the value of the "alt_text" field.
func (_u *ListingImageUpdateOne) ClearAltText() *ListingImageUpdateOne {
	_u.mutation.ClearAltText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ListingImageUpdateOne) SetStatus(v string) *ListingImageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ListingImageUpdateOne) SetNillableStatus(v *string) *ListingImageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsHero sets the "is_hero" field.
func (_u *ListingImageUpdateOne) SetIsHero(v bool) *ListingImageUpdateOne {
	_u.mutation.SetIsHero(v)
	return _u
}

// SetNillableIsHero sets the "is_hero" field if the given value is not nil.
func (_u *ListingImageUpdateOne) SetNillableIsHero(v *bool) *ListingImageUpdateOne {
	if v != nil {
		_u.SetIsHero(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *ListingImageUpdateOne) SetDisplayOrder(v int) *ListingImageUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *ListingImageUpdateOne) SetNillableDisplayOrder(v *int) *ListingImageUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *ListingImageUpdateOne) AddDisplayOrder(v int) *ListingImageUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ListingImageUpdateOne) SetCreatedAt(v time.Time) *ListingImageUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ListingImageUpdateOne) SetNillableCreatedAt(v *time.Time) *ListingImageUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetListing sets the "listing" edge to the Listing entity.
func (_u *ListingImageUpdateOne) SetListing(v *Listing) *ListingImageUpdateOne {
	return _u.SetListingID(v.ID)
}

// Mutation returns the ListingImageMutation object of the builder.
func (_u *ListingImageUpdateOne) Mutation() *ListingImageMutation {
	return _u.mutation
}

// ClearListing clears the "listing" edge to the Listing entity.
func (_u *ListingImageUpdateOne) ClearListing() *ListingImageUpdateOne {
	_u.mutation.ClearListing()
	return _u
}

// Where appends a list predicates to the ListingImageUpdate builder.
func (_u *ListingImageUpdateOne) Where(ps ...predicate.ListingImage) *ListingImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ListingImageUpdateOne) Select(field string, fields ...string) *ListingImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ListingImage entity.
func (_u *ListingImageUpdateOne) Save(ctx context.Context) (*ListingImage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingImageUpdateOne) SaveX(ctx context.Context) *ListingImage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ListingImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingImageUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := listingimage.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ListingImage.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := listingimage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ListingImage.status": %w`, err)}
		}
	}
	if _u.mutation.ListingCleared() && len(_u.mutation.ListingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ListingImage.listing"`)
	}
	return nil
}

func (_u *ListingImageUpdateOne) sqlSave(ctx context.Context) (_node *ListingImage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listingimage.Table, listingimage.Columns, sqlgraph.NewFieldSpec(listingimage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ListingImage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listingimage.FieldID)
		for _, f := range fields {
			if !listingimage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != listingimage.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(listingimage.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.AltText(); ok {
		_spec.SetField(listingimage.FieldAltText, field.TypeString, value)
	}
	if _u.mutation.AltTextCleared() {
		_spec.ClearField(listingimage.FieldAltText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(listingimage.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsHero(); ok {
		_spec.SetField(listingimage.FieldIsHero, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(listingimage.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(listingimage.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(listingimage.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ListingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ListingImage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listingimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
