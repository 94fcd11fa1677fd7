// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/bestofgoa/bok/gen/ent/attribute"
	"github.com/bestofgoa/bok/gen/ent/faq"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/bestofgoa/bok/gen/ent/listingimage"
	"github.com/bestofgoa/bok/gen/ent/predicate"
	"github.com/google/uuid"
)

// ListingUpdate is the builder for updating Listing entities.
type ListingUpdate struct {
	config
	hooks    []Hook
	mutation *ListingMutation
}

// Where appends a list predicates to the ListingUpdate builder.
func (_u *ListingUpdate) Where(ps ...predicate.Listing) *ListingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ListingUpdate) SetName(v string) *ListingUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableName(v *string) *ListingUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetGooglePlaceID sets the "google_place_id" field.
func (_u *ListingUpdate) SetGooglePlaceID(v string) *ListingUpdate {
	_u.mutation.SetGooglePlaceID(v)
	return _u
}

// SetNillableGooglePlaceID sets the "google_place_id" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableGooglePlaceID(v *string) *ListingUpdate {
	if v != nil {
		_u.SetGooglePlaceID(*v)
	}
	return _u
}

// ClearGooglePlaceID clears the value of the "google_place_id" field.
func (_u *ListingUpdate) ClearGooglePlaceID() *ListingUpdate {
	_u.mutation.ClearGooglePlaceID()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ListingUpdate) SetAddress(v string) *ListingUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableAddress(v *string) *ListingUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ListingUpdate) ClearAddress() *ListingUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetArea sets the "area" field.
func (_u *ListingUpdate) SetArea(v string) *ListingUpdate {
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableArea(v *string) *ListingUpdate {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// ClearArea clears the value of the "area" field.
func (_u *ListingUpdate) ClearArea() *ListingUpdate {
	_u.mutation.ClearArea()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *ListingUpdate) SetLatitude(v float64) *ListingUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableLatitude(v *float64) *ListingUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *ListingUpdate) AddLatitude(v float64) *ListingUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *ListingUpdate) ClearLatitude() *ListingUpdate {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *ListingUpdate) SetLongitude(v float64) *ListingUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableLongitude(v *float64) *ListingUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *ListingUpdate) AddLongitude(v float64) *ListingUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *ListingUpdate) ClearLongitude() *ListingUpdate {
	_u.mutation.ClearLongitude()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ListingUpdate) SetPhone(v string) *ListingUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ListingUpdate) SetNillablePhone(v *string) *ListingUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ListingUpdate) ClearPhone() *ListingUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ListingUpdate) SetEmail(v string) *ListingUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableEmail(v *string) *ListingUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ListingUpdate) ClearEmail() *ListingUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ListingUpdate) SetWebsite(v string) *ListingUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableWebsite(v *string) *ListingUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ListingUpdate) ClearWebsite() *ListingUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetInstagram sets the "instagram" field.
func (_u *ListingUpdate) SetInstagram(v string) *ListingUpdate {
	_u.mutation.SetInstagram(v)
	return _u
}

// SetNillableInstagram sets the "instagram" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableInstagram(v *string) *ListingUpdate {
	if v != nil {
		_u.SetInstagram(*v)
	}
	return _u
}

// ClearInstagram clears the value of the "instagram" field.
func (_u *ListingUpdate) ClearInstagram() *ListingUpdate {
	_u.mutation.ClearInstagram()
	return _u
}

// SetFacebook sets the "facebook" field.
func (_u *ListingUpdate) SetFacebook(v string) *ListingUpdate {
	_u.mutation.SetFacebook(v)
	return _u
}

// SetNillableFacebook sets the "facebook" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableFacebook(v *string) *ListingUpdate {
	if v != nil {
		_u.SetFacebook(*v)
	}
	return _u
}

// ClearFacebook clears the value of the "facebook" field.
func (_u *ListingUpdate) ClearFacebook() *ListingUpdate {
	_u.mutation.ClearFacebook()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ListingUpdate) SetDescription(v string) *ListingUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableDescription(v *string) *ListingUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ListingUpdate) ClearDescription() *ListingUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetShortDescription sets the "short_description" field.
func (_u *ListingUpdate) SetShortDescription(v string) *ListingUpdate {
	_u.mutation.SetShortDescription(v)
	return _u
}

// SetNillableShortDescription sets the "short_description" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableShortDescription(v *string) *ListingUpdate {
	if v != nil {
		_u.SetShortDescription(*v)
	}
	return _u
}

// ClearShortDescription clears the value of the "short_description" field.
func (_u *ListingUpdate) ClearShortDescription() *ListingUpdate {
	_u.mutation.ClearShortDescription()
	return _u
}

// SetMetaTitle sets the "meta_title" field.
func (_u *ListingUpdate) SetMetaTitle(v string) *ListingUpdate {
	_u.mutation.SetMetaTitle(v)
	return _u
}

// SetNillableMetaTitle sets the "meta_title" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableMetaTitle(v *string) *ListingUpdate {
	if v != nil {
		_u.SetMetaTitle(*v)
	}
	return _u
}

// ClearMetaTitle clears the value of the "meta_title" field.
func (_u *ListingUpdate) ClearMetaTitle() *ListingUpdate {
	_u.mutation.ClearMetaTitle()
	return _u
}

// SetMetaDescription sets the "meta_description" field.
func (_u *ListingUpdate) SetMetaDescription(v string) *ListingUpdate {
	_u.mutation.SetMetaDescription(v)
	return _u
}

// SetNillableMetaDescription sets the "meta_description" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableMetaDescription(v *string) *ListingUpdate {
	if v != nil {
		_u.SetMetaDescription(*v)
	}
	return _u
}

// ClearMetaDescription clears the value of the "meta_description" field.
func (_u *ListingUpdate) ClearMetaDescription() *ListingUpdate {
	_u.mutation.ClearMetaDescription()
	return _u
}

// SetMetaKeywords sets the "meta_keywords" field.
func (_u *ListingUpdate) SetMetaKeywords(v string) *ListingUpdate {
	_u.mutation.SetMetaKeywords(v)
	return _u
}

// SetNillableMetaKeywords sets the "meta_keywords" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableMetaKeywords(v *string) *ListingUpdate {
	if v != nil {
		_u.SetMetaKeywords(*v)
	}
	return _u
}

// ClearMetaKeywords clears the value of the "meta_keywords" field.
func (_u *ListingUpdate) ClearMetaKeywords() *ListingUpdate {
	_u.mutation.ClearMetaKeywords()
	return _u
}

// SetPriceLevel sets the "price_level" field.
func (_u *ListingUpdate) SetPriceLevel(v int) *ListingUpdate {
	_u.mutation.ResetPriceLevel()
	_u.mutation.SetPriceLevel(v)
	return _u
}

// SetNillablePriceLevel sets the "price_level" field if the given value is not nil.
func (_u *ListingUpdate) SetNillablePriceLevel(v *int) *ListingUpdate {
	if v != nil {
		_u.SetPriceLevel(*v)
	}
	return _u
}

// AddPriceLevel adds value to the "price_level" field.
func (_u *ListingUpdate) AddPriceLevel(v int) *ListingUpdate {
	_u.mutation.AddPriceLevel(v)
	return _u
}

// SetOpeningHours sets the "opening_hours" field.
func (_u *ListingUpdate) SetOpeningHours(v string) *ListingUpdate {
	_u.mutation.SetOpeningHours(v)
	return _u
}

// SetNillableOpeningHours sets the "opening_hours" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableOpeningHours(v *string) *ListingUpdate {
	if v != nil {
		_u.SetOpeningHours(*v)
	}
	return _u
}

// ClearOpeningHours clears the value of the "opening_hours" field.
func (_u *ListingUpdate) ClearOpeningHours() *ListingUpdate {
	_u.mutation.ClearOpeningHours()
	return _u
}

// SetRating sets the "rating" field.
func (_u *ListingUpdate) SetRating(v float64) *ListingUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableRating(v *float64) *ListingUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ListingUpdate) AddRating(v float64) *ListingUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *ListingUpdate) ClearRating() *ListingUpdate {
	_u.mutation.ClearRating()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ListingUpdate) SetReviewCount(v int) *ListingUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableReviewCount(v *int) *ListingUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ListingUpdate) AddReviewCount(v int) *ListingUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetBokScore sets the "bok_score" field.
func (_u *ListingUpdate) SetBokScore(v float64) *ListingUpdate {
	_u.mutation.ResetBokScore()
	_u.mutation.SetBokScore(v)
	return _u
}

// SetNillableBokScore sets the "bok_score" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableBokScore(v *float64) *ListingUpdate {
	if v != nil {
		_u.SetBokScore(*v)
	}
	return _u
}

// AddBokScore adds value to the "bok_score" field.
func (_u *ListingUpdate) AddBokScore(v float64) *ListingUpdate {
	_u.mutation.AddBokScore(v)
	return _u
}

// ClearBokScore clears the value of the "bok_score" field.
func (_u *ListingUpdate) ClearBokScore() *ListingUpdate {
	_u.mutation.ClearBokScore()
	return _u
}

// SetActive sets the "active" field.
func (_u *ListingUpdate) SetActive(v bool) *ListingUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableActive(v *bool) *ListingUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ListingUpdate) SetVerified(v bool) *ListingUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableVerified(v *bool) *ListingUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *ListingUpdate) SetFeatured(v bool) *ListingUpdate {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableFeatured(v *bool) *ListingUpdate {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetApifyOutput sets the "apify_output" field.
func (_u *ListingUpdate) SetApifyOutput(v json.RawMessage) *ListingUpdate {
	_u.mutation.SetApifyOutput(v)
	return _u
}

// AppendApifyOutput appends value to the "apify_output" field.
func (_u *ListingUpdate) AppendApifyOutput(v json.RawMessage) *ListingUpdate {
	_u.mutation.AppendApifyOutput(v)
	return _u
}

// ClearApifyOutput clears the value of the "apify_output" field.
func (_u *ListingUpdate) ClearApifyOutput() *ListingUpdate {
	_u.mutation.ClearApifyOutput()
	return _u
}

// SetFirecrawlOutput sets the "firecrawl_output" field.
func (_u *ListingUpdate) SetFirecrawlOutput(v json.RawMessage) *ListingUpdate {
	_u.mutation.SetFirecrawlOutput(v)
	return _u
}

// AppendFirecrawlOutput appends value to the "firecrawl_output" field.
func (_u *ListingUpdate) AppendFirecrawlOutput(v json.RawMessage) *ListingUpdate {
	_u.mutation.AppendFirecrawlOutput(v)
	return _u
}

// ClearFirecrawlOutput clears the value of the "firecrawl_output" field.
func (_u *ListingUpdate) ClearFirecrawlOutput() *ListingUpdate {
	_u.mutation.ClearFirecrawlOutput()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ListingUpdate) SetCreatedAt(v time.Time) *ListingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ListingUpdate) SetNillableCreatedAt(v *time.Time) *ListingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ListingUpdate) SetUpdatedAt(v time.Time) *ListingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddImageIDs adds the "images" edge to the ListingImage entity by IDs.
func (_u *ListingUpdate) AddImageIDs(ids ...uuid.UUID) *ListingUpdate {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the ListingImage entity.
func (_u *ListingUpdate) AddImages(v ...*ListingImage) *ListingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// AddFaqIDs adds the "faqs" edge to the FAQ entity by IDs.
func (_u *ListingUpdate) AddFaqIDs(ids ...uuid.UUID) *ListingUpdate {
	_u.mutation.AddFaqIDs(ids...)
	return _u
}

// AddFaqs adds the "faqs" edges to the FAQ entity.
func (_u *ListingUpdate) AddFaqs(v ...*FAQ) *ListingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFaqIDs(ids...)
}

// AddAttributeIDs adds the "attributes" edge to the Attribute entity by IDs.
func (_u *ListingUpdate) AddAttributeIDs(ids ...int) *ListingUpdate {
	_u.mutation.AddAttributeIDs(ids...)
	return _u
}

// AddAttributes adds the "attributes" edges to the Attribute entity.
func (_u *ListingUpdate) AddAttributes(v ...*Attribute) *ListingUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttributeIDs(ids...)
}

// Mutation returns the ListingMutation object of the builder.
func (_u *ListingUpdate) Mutation() *ListingMutation {
	return _u.mutation
}

// ClearImages clears all "images" edges to the ListingImage entity.
func (_u *ListingUpdate) ClearImages() *ListingUpdate {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to ListingImage entities by IDs.
func (_u *ListingUpdate) RemoveImageIDs(ids ...uuid.UUID) *ListingUpdate {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to ListingImage entities.
func (_u *ListingUpdate) RemoveImages(v ...*ListingImage) *ListingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// ClearFaqs clears all "faqs" edges to the FAQ entity.
func (_u *ListingUpdate) ClearFaqs() *ListingUpdate {
	_u.mutation.ClearFaqs()
	return _u
}

// RemoveFaqIDs removes the "faqs" edge to FAQ entities by IDs.
func (_u *ListingUpdate) RemoveFaqIDs(ids ...uuid.UUID) *ListingUpdate {
	_u.mutation.RemoveFaqIDs(ids...)
	return _u
}

// RemoveFaqs removes "faqs" edges to FAQ entities.
func (_u *ListingUpdate) RemoveFaqs(v ...*FAQ) *ListingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFaqIDs(ids...)
}

// ClearAttributes clears all "attributes" edges to the Attribute entity.
func (_u *ListingUpdate) ClearAttributes() *ListingUpdate {
	_u.mutation.ClearAttributes()
	return _u
}

// RemoveAttributeIDs removes the "attributes" edge to Attribute entities by IDs.
func (_u *ListingUpdate) RemoveAttributeIDs(ids ...int) *ListingUpdate {
	_u.mutation.RemoveAttributeIDs(ids...)
	return _u
}

// RemoveAttributes removes "attributes" edges to Attribute entities.
func (_u *ListingUpdate) RemoveAttributes(v ...*Attribute) *ListingUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttributeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ListingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ListingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ListingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := listing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := listing.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Listing.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceLevel(); ok {
		if err := listing.PriceLevelValidator(v); err != nil {
			return &ValidationError{Name: "price_level", err: fmt.Errorf(`ent: validator failed for field "Listing.price_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ListingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listing.Table, listing.Columns, sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(listing.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GooglePlaceID(); ok {
		_spec.SetField(listing.FieldGooglePlaceID, field.TypeString, value)
	}
	if _u.mutation.GooglePlaceIDCleared() {
		_spec.ClearField(listing.FieldGooglePlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(listing.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(listing.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(listing.FieldArea, field.TypeString, value)
	}
	if _u.mutation.AreaCleared() {
		_spec.ClearField(listing.FieldArea, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(listing.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(listing.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(listing.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(listing.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(listing.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(listing.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(listing.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(listing.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(listing.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(listing.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(listing.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(listing.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Instagram(); ok {
		_spec.SetField(listing.FieldInstagram, field.TypeString, value)
	}
	if _u.mutation.InstagramCleared() {
		_spec.ClearField(listing.FieldInstagram, field.TypeString)
	}
	if value, ok := _u.mutation.Facebook(); ok {
		_spec.SetField(listing.FieldFacebook, field.TypeString, value)
	}
	if _u.mutation.FacebookCleared() {
		_spec.ClearField(listing.FieldFacebook, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(listing.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(listing.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ShortDescription(); ok {
		_spec.SetField(listing.FieldShortDescription, field.TypeString, value)
	}
	if _u.mutation.ShortDescriptionCleared() {
		_spec.ClearField(listing.FieldShortDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitle(); ok {
		_spec.SetField(listing.FieldMetaTitle, field.TypeString, value)
	}
	if _u.mutation.MetaTitleCleared() {
		_spec.ClearField(listing.FieldMetaTitle, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescription(); ok {
		_spec.SetField(listing.FieldMetaDescription, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionCleared() {
		_spec.ClearField(listing.FieldMetaDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MetaKeywords(); ok {
		_spec.SetField(listing.FieldMetaKeywords, field.TypeString, value)
	}
	if _u.mutation.MetaKeywordsCleared() {
		_spec.ClearField(listing.FieldMetaKeywords, field.TypeString)
	}
	if value, ok := _u.mutation.PriceLevel(); ok {
		_spec.SetField(listing.FieldPriceLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceLevel(); ok {
		_spec.AddField(listing.FieldPriceLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpeningHours(); ok {
		_spec.SetField(listing.FieldOpeningHours, field.TypeString, value)
	}
	if _u.mutation.OpeningHoursCleared() {
		_spec.ClearField(listing.FieldOpeningHours, field.TypeString)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(listing.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(listing.FieldRating, field.TypeFloat64, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(listing.FieldRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(listing.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(listing.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BokScore(); ok {
		_spec.SetField(listing.FieldBokScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBokScore(); ok {
		_spec.AddField(listing.FieldBokScore, field.TypeFloat64, value)
	}
	if _u.mutation.BokScoreCleared() {
		_spec.ClearField(listing.FieldBokScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(listing.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(listing.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(listing.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApifyOutput(); ok {
		_spec.SetField(listing.FieldApifyOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApifyOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, listing.FieldApifyOutput, value)
		})
	}
	if _u.mutation.ApifyOutputCleared() {
		_spec.ClearField(listing.FieldApifyOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.FirecrawlOutput(); ok {
		_spec.SetField(listing.FieldFirecrawlOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFirecrawlOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, listing.FieldFirecrawlOutput, value)
		})
	}
	if _u.mutation.FirecrawlOutputCleared() {
		_spec.ClearField(listing.FieldFirecrawlOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(listing.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(listing.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FaqsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFaqsIDs(); len(nodes) > 0 && !_u.mutation.FaqsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FaqsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttributesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttributesIDs(); len(nodes) > 0 && !_u.mutation.AttributesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttributesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ListingUpdateOne is the builder for updating a single Listing entity.
type ListingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ListingMutation
}

// SetName sets the "name" field.
func (_u *ListingUpdateOne) SetName(v string) *ListingUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableName(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetGooglePlaceID sets the "google_place_id" field.
func (_u *ListingUpdateOne) SetGooglePlaceID(v string) *ListingUpdateOne {
	_u.mutation.SetGooglePlaceID(v)
	return _u
}

// SetNillableGooglePlaceID sets the "google_place_id" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableGooglePlaceID(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetGooglePlaceID(*v)
	}
	return _u
}

// ClearGooglePlaceID clears the value of the "google_place_id" field.
func (_u *ListingUpdateOne) ClearGooglePlaceID() *ListingUpdateOne {
	_u.mutation.ClearGooglePlaceID()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ListingUpdateOne) SetAddress(v string) *ListingUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableAddress(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ListingUpdateOne) ClearAddress() *ListingUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetArea sets the "area" field.
func (_u *ListingUpdateOne) SetArea(v string) *ListingUpdateOne {
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableArea(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// ClearArea clears the value of the "area" field.
func (_u *ListingUpdateOne) ClearArea() *ListingUpdateOne {
	_u.mutation.ClearArea()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *ListingUpdateOne) SetLatitude(v float64) *ListingUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableLatitude(v *float64) *ListingUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *ListingUpdateOne) AddLatitude(v float64) *ListingUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *ListingUpdateOne) ClearLatitude() *ListingUpdateOne {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *ListingUpdateOne) SetLongitude(v float64) *ListingUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableLongitude(v *float64) *ListingUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *ListingUpdateOne) AddLongitude(v float64) *ListingUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *ListingUpdateOne) ClearLongitude() *ListingUpdateOne {
	_u.mutation.ClearLongitude()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ListingUpdateOne) SetPhone(v string) *ListingUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillablePhone(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ListingUpdateOne) ClearPhone() *ListingUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ListingUpdateOne) SetEmail(v string) *ListingUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableEmail(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ListingUpdateOne) ClearEmail() *ListingUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ListingUpdateOne) SetWebsite(v string) *ListingUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableWebsite(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ListingUpdateOne) ClearWebsite() *ListingUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetInstagram sets the "instagram" field.
func (_u *ListingUpdateOne) SetInstagram(v string) *ListingUpdateOne {
	_u.mutation.SetInstagram(v)
	return _u
}

// SetNillableInstagram sets the "instagram" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableInstagram(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetInstagram(*v)
	}
	return _u
}

// ClearInstagram clears the value of the "instagram" field.
func (_u *ListingUpdateOne) ClearInstagram() *ListingUpdateOne {
	_u.mutation.ClearInstagram()
	return _u
}

// SetFacebook sets the "facebook" field.
func (_u *ListingUpdateOne) SetFacebook(v string) *ListingUpdateOne {
	_u.mutation.SetFacebook(v)
	return _u
}

// SetNillableFacebook sets the "facebook" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableFacebook(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetFacebook(*v)
	}
	return _u
}

// ClearFacebook clears the value of the "facebook" field.
func (_u *ListingUpdateOne) ClearFacebook() *ListingUpdateOne {
	_u.mutation.ClearFacebook()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ListingUpdateOne) SetDescription(v string) *ListingUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableDescription(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ListingUpdateOne) ClearDescription() *ListingUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetShortDescription sets the "short_description" field.
func (_u *ListingUpdateOne) SetShortDescription(v string) *ListingUpdateOne {
	_u.mutation.SetShortDescription(v)
	return _u
}

// SetNillableShortDescription sets the "short_description" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableShortDescription(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetShortDescription(*v)
	}
	return _u
}

// ClearShortDescription clears the value of the "short_description" field.
func (_u *ListingUpdateOne) ClearShortDescription() *ListingUpdateOne {
	_u.mutation.ClearShortDescription()
	return _u
}

// SetMetaTitle sets the "meta_title" field.
func (_u *ListingUpdateOne) SetMetaTitle(v string) *ListingUpdateOne {
	_u.mutation.SetMetaTitle(v)
	return _u
}

// SetNillableMetaTitle sets the "meta_title" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableMetaTitle(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetMetaTitle(*v)
	}
	return _u
}

// ClearMetaTitle clears the value of the "meta_title" field.
func (_u *ListingUpdateOne) ClearMetaTitle() *ListingUpdateOne {
	_u.mutation.ClearMetaTitle()
	return _u
}

// SetMetaDescription sets the "meta_description" field.
func (_u *ListingUpdateOne) SetMetaDescription(v string) *ListingUpdateOne {
	_u.mutation.SetMetaDescription(v)
	return _u
}

// SetNillableMetaDescription sets the "meta_description" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableMetaDescription(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetMetaDescription(*v)
	}
	return _u
}

// ClearMetaDescription clears the value of the "meta_description" field.
func (_u *ListingUpdateOne) ClearMetaDescription() *ListingUpdateOne {
	_u.mutation.ClearMetaDescription()
	return _u
}

// SetMetaKeywords sets the "meta_keywords" field.
func (_u *ListingUpdateOne) SetMetaKeywords(v string) *ListingUpdateOne {
	_u.mutation.SetMetaKeywords(v)
	return _u
}

// SetNillableMetaKeywords sets the "meta_keywords" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableMetaKeywords(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetMetaKeywords(*v)
	}
	return _u
}

// ClearMetaKeywords clears the value of the "meta_keywords" field.
func (_u *ListingUpdateOne) ClearMetaKeywords() *ListingUpdateOne {
	_u.mutation.ClearMetaKeywords()
	return _u
}

// SetPriceLevel sets the "price_level" field.
func (_u *ListingUpdateOne) SetPriceLevel(v int) *ListingUpdateOne {
	_u.mutation.ResetPriceLevel()
	_u.mutation.SetPriceLevel(v)
	return _u
}

// SetNillablePriceLevel sets the "price_level" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillablePriceLevel(v *int) *ListingUpdateOne {
	if v != nil {
		_u.SetPriceLevel(*v)
	}
	return _u
}

// AddPriceLevel adds value to the "price_level" field.
func (_u *ListingUpdateOne) AddPriceLevel(v int) *ListingUpdateOne {
	_u.mutation.AddPriceLevel(v)
	return _u
}

// SetOpeningHours sets the "opening_hours" field.
func (_u *ListingUpdateOne) SetOpeningHours(v string) *ListingUpdateOne {
	_u.mutation.SetOpeningHours(v)
	return _u
}

// SetNillableOpeningHours sets the "opening_hours" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableOpeningHours(v *string) *ListingUpdateOne {
	if v != nil {
		_u.SetOpeningHours(*v)
	}
	return _u
}

// ClearOpeningHours clears the value of the "opening_hours" field.
func (_u *ListingUpdateOne) ClearOpeningHours() *ListingUpdateOne {
	_u.mutation.ClearOpeningHours()
	return _u
}

// SetRating sets the "rating" field.
func (_u *ListingUpdateOne) SetRating(v float64) *ListingUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableRating(v *float64) *ListingUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ListingUpdateOne) AddRating(v float64) *ListingUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *ListingUpdateOne) ClearRating() *ListingUpdateOne {
	_u.mutation.ClearRating()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ListingUpdateOne) SetReviewCount(v int) *ListingUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableReviewCount(v *int) *ListingUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ListingUpdateOne) AddReviewCount(v int) *ListingUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetBokScore sets the "bok_score" field.
func (_u *ListingUpdateOne) SetBokScore(v float64) *ListingUpdateOne {
	_u.mutation.ResetBokScore()
	_u.mutation.SetBokScore(v)
	return _u
}

// SetNillableBokScore sets the "bok_score" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableBokScore(v *float64) *ListingUpdateOne {
	if v != nil {
		_u.SetBokScore(*v)
	}
	return _u
}

// AddBokScore adds value to the "bok_score" field.
func (_u *ListingUpdateOne) AddBokScore(v float64) *ListingUpdateOne {
	_u.mutation.AddBokScore(v)
	return _u
}

// ClearBokScore clears the value of the "bok_score" field.
func (_u *ListingUpdateOne) ClearBokScore() *ListingUpdateOne {
	_u.mutation.ClearBokScore()
	return _u
}

// SetActive sets the "active" field.
func (_u *ListingUpdateOne) SetActive(v bool) *ListingUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableActive(v *bool) *ListingUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ListingUpdateOne) SetVerified(v bool) *ListingUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableVerified(v *bool) *ListingUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *ListingUpdateOne) SetFeatured(v bool) *ListingUpdateOne {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableFeatured(v *bool) *ListingUpdateOne {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetApifyOutput sets the "apify_output" field.
func (_u *ListingUpdateOne) SetApifyOutput(v json.RawMessage) *ListingUpdateOne {
	_u.mutation.SetApifyOutput(v)
	return _u
}

// AppendApifyOutput appends value to the "apify_output" field.
func (_u *ListingUpdateOne) AppendApifyOutput(v json.RawMessage) *ListingUpdateOne {
	_u.mutation.AppendApifyOutput(v)
	return _u
}

// ClearApifyOutput clears the value of the "apify_output" field.
func (_u *ListingUpdateOne) ClearApifyOutput() *ListingUpdateOne {
	_u.mutation.ClearApifyOutput()
	return _u
}

// SetFirecrawlOutput sets the "firecrawl_output" field.
func (_u *ListingUpdateOne) SetFirecrawlOutput(v json.RawMessage) *ListingUpdateOne {
	_u.mutation.SetFirecrawlOutput(v)
	return _u
}

// AppendFirecrawlOutput appends value to the "firecrawl_output" field.
func (_u *ListingUpdateOne) AppendFirecrawlOutput(v json.RawMessage) *ListingUpdateOne {
	_u.mutation.AppendFirecrawlOutput(v)
	return _u
}

// ClearFirecrawlOutput clears the value of the "firecrawl_output" field.
func (_u *ListingUpdateOne) ClearFirecrawlOutput() *ListingUpdateOne {
	_u.mutation.ClearFirecrawlOutput()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ListingUpdateOne) SetCreatedAt(v time.Time) *ListingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ListingUpdateOne) SetNillableCreatedAt(v *time.Time) *ListingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ListingUpdateOne) SetUpdatedAt(v time.Time) *ListingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddImageIDs adds the "images" edge to the ListingImage entity by IDs.
func (_u *ListingUpdateOne) AddImageIDs(ids ...uuid.UUID) *ListingUpdateOne {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the ListingImage entity.
func (_u *ListingUpdateOne) AddImages(v ...*ListingImage) *ListingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// AddFaqIDs adds the "faqs" edge to the FAQ entity by IDs.
func (_u *ListingUpdateOne) AddFaqIDs(ids ...uuid.UUID) *ListingUpdateOne {
	_u.mutation.AddFaqIDs(ids...)
	return _u
}

// AddFaqs adds the "faqs" edges to the FAQ entity.
func (_u *ListingUpdateOne) AddFaqs(v ...*FAQ) *ListingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFaqIDs(ids...)
}

// AddAttributeIDs adds the "attributes" edge to the Attribute entity by IDs.
func (_u *ListingUpdateOne) AddAttributeIDs(ids ...int) *ListingUpdateOne {
	_u.mutation.AddAttributeIDs(ids...)
	return _u
}

// AddAttributes adds the "attributes" edges to the Attribute entity.
func (_u *ListingUpdateOne) AddAttributes(v ...*Attribute) *ListingUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttributeIDs(ids...)
}

// Mutation returns the ListingMutation object of the builder.
func (_u *ListingUpdateOne) Mutation() *ListingMutation {
	return _u.mutation
}

// ClearImages clears all "images" edges to the ListingImage entity.
func (_u *ListingUpdateOne) ClearImages() *ListingUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to ListingImage entities by IDs.
func (_u *ListingUpdateOne) RemoveImageIDs(ids ...uuid.UUID) *ListingUpdateOne {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to ListingImage entities.
func (_u *ListingUpdateOne) RemoveImages(v ...*ListingImage) *ListingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// ClearFaqs clears all "faqs" edges to the FAQ entity.
func (_u *ListingUpdateOne) ClearFaqs() *ListingUpdateOne {
	_u.mutation.ClearFaqs()
	return _u
}

// RemoveFaqIDs removes the "faqs" edge to FAQ entities by IDs.
func (_u *ListingUpdateOne) RemoveFaqIDs(ids ...uuid.UUID) *ListingUpdateOne {
	_u.mutation.RemoveFaqIDs(ids...)
	return _u
}

// RemoveFaqs removes "faqs" edges to FAQ entities.
func (_u *ListingUpdateOne) RemoveFaqs(v ...*FAQ) *ListingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFaqIDs(ids...)
}

// ClearAttributes clears all "attributes" edges to the Attribute entity.
func (_u *ListingUpdateOne) ClearAttributes() *ListingUpdateOne {
	_u.mutation.ClearAttributes()
	return _u
}

// RemoveAttributeIDs removes the "attributes" edge to Attribute entities by IDs.
func (_u *ListingUpdateOne) RemoveAttributeIDs(ids ...int) *ListingUpdateOne {
	_u.mutation.RemoveAttributeIDs(ids...)
	return _u
}

// RemoveAttributes removes "attributes" edges to Attribute entities.
func (_u *ListingUpdateOne) RemoveAttributes(v ...*Attribute) *ListingUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttributeIDs(ids...)
}

// Where appends a list predicates to the ListingUpdate builder.
func (_u *ListingUpdateOne) Where(ps ...predicate.Listing) *ListingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ListingUpdateOne) Select(field string, fields ...string) *ListingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Listing entity.
func (_u *ListingUpdateOne) Save(ctx context.Context) (*Listing, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ListingUpdateOne) SaveX(ctx context.Context) *Listing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ListingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ListingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ListingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := listing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ListingUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := listing.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Listing.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceLevel(); ok {
		if err := listing.PriceLevelValidator(v); err != nil {
			return &ValidationError{Name: "price_level", err: fmt.Errorf(`ent: validator failed for field "Listing.price_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ListingUpdateOne) sqlSave(ctx context.Context) (_node *Listing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(listing.Table, listing.Columns, sqlgraph.NewFieldSpec(listing.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Listing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, listing.FieldID)
		for _, f := range fields {
			if !listing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != listing.FieldID {
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
		_spec.SetField(listing.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GooglePlaceID(); ok {
		_spec.SetField(listing.FieldGooglePlaceID, field.TypeString, value)
	}
	if _u.mutation.GooglePlaceIDCleared() {
		_spec.ClearField(listing.FieldGooglePlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(listing.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(listing.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(listing.FieldArea, field.TypeString, value)
	}
	if _u.mutation.AreaCleared() {
		_spec.ClearField(listing.FieldArea, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(listing.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(listing.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(listing.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(listing.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(listing.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(listing.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(listing.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(listing.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(listing.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(listing.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(listing.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(listing.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Instagram(); ok {
		_spec.SetField(listing.FieldInstagram, field.TypeString, value)
	}
	if _u.mutation.InstagramCleared() {
		_spec.ClearField(listing.FieldInstagram, field.TypeString)
	}
	if value, ok := _u.mutation.Facebook(); ok {
		_spec.SetField(listing.FieldFacebook, field.TypeString, value)
	}
	if _u.mutation.FacebookCleared() {
		_spec.ClearField(listing.FieldFacebook, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(listing.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(listing.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ShortDescription(); ok {
		_spec.SetField(listing.FieldShortDescription, field.TypeString, value)
	}
	if _u.mutation.ShortDescriptionCleared() {
		_spec.ClearField(listing.FieldShortDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitle(); ok {
		_spec.SetField(listing.FieldMetaTitle, field.TypeString, value)
	}
	if _u.mutation.MetaTitleCleared() {
		_spec.ClearField(listing.FieldMetaTitle, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescription(); ok {
		_spec.SetField(listing.FieldMetaDescription, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionCleared() {
		_spec.ClearField(listing.FieldMetaDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MetaKeywords(); ok {
		_spec.SetField(listing.FieldMetaKeywords, field.TypeString, value)
	}
	if _u.mutation.MetaKeywordsCleared() {
		_spec.ClearField(listing.FieldMetaKeywords, field.TypeString)
	}
	if value, ok := _u.mutation.PriceLevel(); ok {
		_spec.SetField(listing.FieldPriceLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceLevel(); ok {
		_spec.AddField(listing.FieldPriceLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpeningHours(); ok {
		_spec.SetField(listing.FieldOpeningHours, field.TypeString, value)
	}
	if _u.mutation.OpeningHoursCleared() {
		_spec.ClearField(listing.FieldOpeningHours, field.TypeString)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(listing.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(listing.FieldRating, field.TypeFloat64, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(listing.FieldRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(listing.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(listing.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BokScore(); ok {
		_spec.SetField(listing.FieldBokScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBokScore(); ok {
		_spec.AddField(listing.FieldBokScore, field.TypeFloat64, value)
	}
	if _u.mutation.BokScoreCleared() {
		_spec.ClearField(listing.FieldBokScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(listing.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(listing.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(listing.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApifyOutput(); ok {
		_spec.SetField(listing.FieldApifyOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApifyOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, listing.FieldApifyOutput, value)
		})
	}
	if _u.mutation.ApifyOutputCleared() {
		_spec.ClearField(listing.FieldApifyOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.FirecrawlOutput(); ok {
		_spec.SetField(listing.FieldFirecrawlOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFirecrawlOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, listing.FieldFirecrawlOutput, value)
		})
	}
	if _u.mutation.FirecrawlOutputCleared() {
		_spec.ClearField(listing.FieldFirecrawlOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(listing.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(listing.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FaqsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFaqsIDs(); len(nodes) > 0 && !_u.mutation.FaqsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FaqsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttributesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttributesIDs(); len(nodes) > 0 && !_u.mutation.AttributesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttributesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Listing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{listing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
