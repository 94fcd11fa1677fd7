// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bestofgoa/bok/gen/ent/attribute"
	"github.com/bestofgoa/bok/gen/ent/faq"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/bestofgoa/bok/gen/ent/listingimage"
	"github.com/google/uuid"
)

// ListingCreate is the builder for creating a Listing entity.
type ListingCreate struct {
	config
	mutation *ListingMutation
	hooks    []Hook
}

// SetEntityType sets the "entity_type" field.
func (_c *ListingCreate) SetEntityType(v string) *ListingCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ListingCreate) SetName(v string) *ListingCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ListingCreate) SetSlug(v string) *ListingCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetGooglePlaceID sets the "google_place_id" field.
func (_c *ListingCreate) SetGooglePlaceID(v string) *ListingCreate {
	_c.mutation.SetGooglePlaceID(v)
	return _c
}

// SetNillableGooglePlaceID sets the "google_place_id" field if the given value is not nil.
func (_c *ListingCreate) SetNillableGooglePlaceID(v *string) *ListingCreate {
	if v != nil {
		_c.SetGooglePlaceID(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *ListingCreate) SetAddress(v string) *ListingCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *ListingCreate) SetNillableAddress(v *string) *ListingCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetArea sets the "area" field.
func (_c *ListingCreate) SetArea(v string) *ListingCreate {
	_c.mutation.SetArea(v)
	return _c
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_c *ListingCreate) SetNillableArea(v *string) *ListingCreate {
	if v != nil {
		_c.SetArea(*v)
	}
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *ListingCreate) SetLatitude(v float64) *ListingCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_c *ListingCreate) SetNillableLatitude(v *float64) *ListingCreate {
	if v != nil {
		_c.SetLatitude(*v)
	}
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *ListingCreate) SetLongitude(v float64) *ListingCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_c *ListingCreate) SetNillableLongitude(v *float64) *ListingCreate {
	if v != nil {
		_c.SetLongitude(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ListingCreate) SetPhone(v string) *ListingCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ListingCreate) SetNillablePhone(v *string) *ListingCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ListingCreate) SetEmail(v string) *ListingCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ListingCreate) SetNillableEmail(v *string) *ListingCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetWebsite sets the "website" field.
func (_c *ListingCreate) SetWebsite(v string) *ListingCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *ListingCreate) SetNillableWebsite(v *string) *ListingCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetInstagram sets the "instagram" field.
func (_c *ListingCreate) SetInstagram(v string) *ListingCreate {
	_c.mutation.SetInstagram(v)
	return _c
}

// SetNillableInstagram sets the "instagram" field if the given value is not nil.
func (_c *ListingCreate) SetNillableInstagram(v *string) *ListingCreate {
	if v != nil {
		_c.SetInstagram(*v)
	}
	return _c
}

// SetFacebook sets the "facebook" field.
func (_c *ListingCreate) SetFacebook(v string) *ListingCreate {
	_c.mutation.SetFacebook(v)
	return _c
}

// SetNillableFacebook sets the "facebook" field if the given value is not nil.
func (_c *ListingCreate) SetNillableFacebook(v *string) *ListingCreate {
	if v != nil {
		_c.SetFacebook(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ListingCreate) SetDescription(v string) *ListingCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ListingCreate) SetNillableDescription(v *string) *ListingCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetShortDescription sets the "short_description" field.
func (_c *ListingCreate) SetShortDescription(v string) *ListingCreate {
	_c.mutation.SetShortDescription(v)
	return _c
}

// SetNillableShortDescription sets the "short_description" field if the given value is not nil.
func (_c *ListingCreate) SetNillableShortDescription(v *string) *ListingCreate {
	if v != nil {
		_c.SetShortDescription(*v)
	}
	return _c
}

// SetMetaTitle sets the "meta_title" field.
func (_c *ListingCreate) SetMetaTitle(v string) *ListingCreate {
	_c.mutation.SetMetaTitle(v)
	return _c
}

// SetNillableMetaTitle sets the "meta_title" field if the given value is not nil.
func (_c *ListingCreate) SetNillableMetaTitle(v *string) *ListingCreate {
	if v != nil {
		_c.SetMetaTitle(*v)
	}
	return _c
}

// SetMetaDescription sets the "meta_description" field.
func (_c *ListingCreate) SetMetaDescription(v string) *ListingCreate {
	_c.mutation.SetMetaDescription(v)
	return _c
}

// SetNillableMetaDescription sets the "meta_description" field if the given value is not nil.
func (_c *ListingCreate) SetNillableMetaDescription(v *string) *ListingCreate {
	if v != nil {
		_c.SetMetaDescription(*v)
	}
	return _c
}

// SetMetaKeywords sets the "meta_keywords" field.
func (_c *ListingCreate) SetMetaKeywords(v string) *ListingCreate {
	_c.mutation.SetMetaKeywords(v)
	return _c
}

// SetNillableMetaKeywords sets the "meta_keywords" field if the given value is not nil.
func (_c *ListingCreate) SetNillableMetaKeywords(v *string) *ListingCreate {
	if v != nil {
		_c.SetMetaKeywords(*v)
	}
	return _c
}

// SetPriceLevel sets the "price_level" field.
func (_c *ListingCreate) SetPriceLevel(v int) *ListingCreate {
	_c.mutation.SetPriceLevel(v)
	return _c
}

// SetNillablePriceLevel sets the "price_level" field if the given value is not nil.
func (_c *ListingCreate) SetNillablePriceLevel(v *int) *ListingCreate {
	if v != nil {
		_c.SetPriceLevel(*v)
	}
	return _c
}

// SetOpeningHours sets the "opening_hours" field.
func (_c *ListingCreate) SetOpeningHours(v string) *ListingCreate {
	_c.mutation.SetOpeningHours(v)
	return _c
}

// SetNillableOpeningHours sets the "opening_hours" field if the given value is not nil.
func (_c *ListingCreate) SetNillableOpeningHours(v *string) *ListingCreate {
	if v != nil {
		_c.SetOpeningHours(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *ListingCreate) SetRating(v float64) *ListingCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *ListingCreate) SetNillableRating(v *float64) *ListingCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *ListingCreate) SetReviewCount(v int) *ListingCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *ListingCreate) SetNillableReviewCount(v *int) *ListingCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetBokScore sets the "bok_score" field.
func (_c *ListingCreate) SetBokScore(v float64) *ListingCreate {
	_c.mutation.SetBokScore(v)
	return _c
}

// SetNillableBokScore sets the "bok_score" field if the given value is not nil.
func (_c *ListingCreate) SetNillableBokScore(v *float64) *ListingCreate {
	if v != nil {
		_c.SetBokScore(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ListingCreate) SetActive(v bool) *ListingCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ListingCreate) SetNillableActive(v *bool) *ListingCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetVerified sets the "verified" field.
func (_c *ListingCreate) SetVerified(v bool) *ListingCreate {
	_c.mutation.SetVerified(v)
	return _c
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_c *ListingCreate) SetNillableVerified(v *bool) *ListingCreate {
	if v != nil {
		_c.SetVerified(*v)
	}
	return _c
}

// SetFeatured sets the "featured" field.
func (_c *ListingCreate) SetFeatured(v bool) *ListingCreate {
	_c.mutation.SetFeatured(v)
	return _c
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_c *ListingCreate) SetNillableFeatured(v *bool) *ListingCreate {
	if v != nil {
		_c.SetFeatured(*v)
	}
	return _c
}

// SetApifyOutput sets the "apify_output" field.
func (_c *ListingCreate) SetApifyOutput(v json.RawMessage) *ListingCreate {
	_c.mutation.SetApifyOutput(v)
	return _c
}

// SetFirecrawlOutput sets the "firecrawl_output" field.
func (_c *ListingCreate) SetFirecrawlOutput(v json.RawMessage) *ListingCreate {
	_c.mutation.SetFirecrawlOutput(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ListingCreate) SetCreatedAt(v time.Time) *ListingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ListingCreate) SetNillableCreatedAt(v *time.Time) *ListingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ListingCreate) SetUpdatedAt(v time.Time) *ListingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ListingCreate) SetNillableUpdatedAt(v *time.Time) *ListingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ListingCreate) SetID(v uuid.UUID) *ListingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ListingCreate) SetNillableID(v *uuid.UUID) *ListingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddImageIDs adds the "images" edge to the ListingImage entity by IDs.
func (_c *ListingCreate) AddImageIDs(ids ...uuid.UUID) *ListingCreate {
	_c.mutation.AddImageIDs(ids...)
	return _c
}

// AddImages adds the "images" edges to the ListingImage entity.
func (_c *ListingCreate) AddImages(v ...*ListingImage) *ListingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddImageIDs(ids...)
}

// AddFaqIDs adds the "faqs" edge to the FAQ entity by IDs.
func (_c *ListingCreate) AddFaqIDs(ids ...uuid.UUID) *ListingCreate {
	_c.mutation.AddFaqIDs(ids...)
	return _c
}

// AddFaqs adds the "faqs" edges to the FAQ entity.
func (_c *ListingCreate) AddFaqs(v ...*FAQ) *ListingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFaqIDs(ids...)
}

// AddAttributeIDs adds the "attributes" edge to the Attribute entity by IDs.
func (_c *ListingCreate) AddAttributeIDs(ids ...int) *ListingCreate {
	_c.mutation.AddAttributeIDs(ids...)
	return _c
}

// AddAttributes adds the "attributes" edges to the Attribute entity.
func (_c *ListingCreate) AddAttributes(v ...*Attribute) *ListingCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttributeIDs(ids...)
}

// Mutation returns the ListingMutation object of the builder.
func (_c *ListingCreate) Mutation() *ListingMutation {
	return _c.mutation
}

// Save creates the Listing in the database.
func (_c *ListingCreate) Save(ctx context.Context) (*Listing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ListingCreate) SaveX(ctx context.Context) *Listing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ListingCreate) defaults() {
	if _, ok := _c.mutation.PriceLevel(); !ok {
		v := listing.DefaultPriceLevel
		_c.mutation.SetPriceLevel(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := listing.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := listing.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.Verified(); !ok {
		v := listing.DefaultVerified
		_c.mutation.SetVerified(v)
	}
	if _, ok := _c.mutation.Featured(); !ok {
		v := listing.DefaultFeatured
		_c.mutation.SetFeatured(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := listing.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := listing.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := listing.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ListingCreate) check() error {
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "Listing.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := listing.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Listing.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Listing.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := listing.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Listing.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Listing.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := listing.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Listing.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriceLevel(); !ok {
		return &ValidationError{Name: "price_level", err: errors.New(`ent: missing required field "Listing.price_level"`)}
	}
	if v, ok := _c.mutation.PriceLevel(); ok {
		if err := listing.PriceLevelValidator(v); err != nil {
			return &ValidationError{Name: "price_level", err: fmt.Errorf(`ent: validator failed for field "Listing.price_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "Listing.review_count"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Listing.active"`)}
	}
	if _, ok := _c.mutation.Verified(); !ok {
		return &ValidationError{Name: "verified", err: errors.New(`ent: missing required field "Listing.verified"`)}
	}
	if _, ok := _c.mutation.Featured(); !ok {
		return &ValidationError{Name: "featured", err: errors.New(`ent: missing required field "Listing.featured"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Listing.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Listing.updated_at"`)}
	}
	return nil
}

func (_c *ListingCreate) sqlSave(ctx context.Context) (*Listing, error) {
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

func (_c *ListingCreate) createSpec() (*Listing, *sqlgraph.CreateSpec) {
	var (
		_node = &Listing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(listing.Table, sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(listing.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(listing.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(listing.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.GooglePlaceID(); ok {
		_spec.SetField(listing.FieldGooglePlaceID, field.TypeString, value)
		_node.GooglePlaceID = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(listing.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Area(); ok {
		_spec.SetField(listing.FieldArea, field.TypeString, value)
		_node.Area = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(listing.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = &value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(listing.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(listing.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(listing.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(listing.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.Instagram(); ok {
		_spec.SetField(listing.FieldInstagram, field.TypeString, value)
		_node.Instagram = value
	}
	if value, ok := _c.mutation.Facebook(); ok {
		_spec.SetField(listing.FieldFacebook, field.TypeString, value)
		_node.Facebook = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(listing.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ShortDescription(); ok {
		_spec.SetField(listing.FieldShortDescription, field.TypeString, value)
		_node.ShortDescription = value
	}
	if value, ok := _c.mutation.MetaTitle(); ok {
		_spec.SetField(listing.FieldMetaTitle, field.TypeString, value)
		_node.MetaTitle = value
	}
	if value, ok := _c.mutation.MetaDescription(); ok {
		_spec.SetField(listing.FieldMetaDescription, field.TypeString, value)
		_node.MetaDescription = value
	}
	if value, ok := _c.mutation.MetaKeywords(); ok {
		_spec.SetField(listing.FieldMetaKeywords, field.TypeString, value)
		_node.MetaKeywords = value
	}
	if value, ok := _c.mutation.PriceLevel(); ok {
		_spec.SetField(listing.FieldPriceLevel, field.TypeInt, value)
		_node.PriceLevel = value
	}
	if value, ok := _c.mutation.OpeningHours(); ok {
		_spec.SetField(listing.FieldOpeningHours, field.TypeString, value)
		_node.OpeningHours = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(listing.FieldRating, field.TypeFloat64, value)
		_node.Rating = &value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(listing.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.BokScore(); ok {
		_spec.SetField(listing.FieldBokScore, field.TypeFloat64, value)
		_node.BokScore = &value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(listing.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Verified(); ok {
		_spec.SetField(listing.FieldVerified, field.TypeBool, value)
		_node.Verified = value
	}
	if value, ok := _c.mutation.Featured(); ok {
		_spec.SetField(listing.FieldFeatured, field.TypeBool, value)
		_node.Featured = value
	}
	if value, ok := _c.mutation.ApifyOutput(); ok {
		_spec.SetField(listing.FieldApifyOutput, field.TypeJSON, value)
		_node.ApifyOutput = value
	}
	if value, ok := _c.mutation.FirecrawlOutput(); ok {
		_spec.SetField(listing.FieldFirecrawlOutput, field.TypeJSON, value)
		_node.FirecrawlOutput = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(listing.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(listing.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ImagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   listing.ImagesTable,
			Columns: []string{listing.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(listingimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FaqsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   listing.FaqsTable,
			Columns: []string{listing.FaqsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(faq.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttributesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   listing.AttributesTable,
			Columns: listing.AttributesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attribute.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ListingCreateBulk is the builder for creating many Listing entities in bulk.
type ListingCreateBulk struct {
	config
	err      error
	builders []*ListingCreate
}

// Save creates the Listing entities in the database.
func (_c *ListingCreateBulk) Save(ctx context.Context) ([]*Listing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Listing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ListingMutation)
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
func (_c *ListingCreateBulk) SaveX(ctx context.Context) []*Listing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ListingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ListingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
