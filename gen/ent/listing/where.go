// Code generated by ent, DO NOT EDIT.

package listing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/bestofgoa/bok/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldID, id))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldEntityType, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldName, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldSlug, v))
}

// GooglePlaceID applies equality check predicate on the "google_place_id" field. It's identical to GooglePlaceIDEQ.
func GooglePlaceID(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldGooglePlaceID, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldAddress, v))
}

// Area applies equality check predicate on the "area" field. It's identical to AreaEQ.
func Area(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldArea, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldLatitude, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldLongitude, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldEmail, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldWebsite, v))
}

// Instagram applies equality check predicate on the "instagram" field. It's identical to InstagramEQ.
func Instagram(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldInstagram, v))
}

// Facebook applies equality check predicate on the "facebook" field. It's identical to FacebookEQ.
func Facebook(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldFacebook, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldDescription, v))
}

// ShortDescription applies equality check predicate on the "short_description" field. It's identical to ShortDescriptionEQ.
func ShortDescription(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldShortDescription, v))
}

// MetaTitle applies equality check predicate on the "meta_title" field. It's identical to MetaTitleEQ.
func MetaTitle(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldMetaTitle, v))
}

// MetaDescription applies equality check predicate on the "meta_description" field. It's identical to MetaDescriptionEQ.
func MetaDescription(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldMetaDescription, v))
}

// MetaKeywords applies equality check predicate on the "meta_keywords" field. It's identical to MetaKeywordsEQ.
func MetaKeywords(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldMetaKeywords, v))
}

// PriceLevel applies equality check predicate on the "price_level" field. It's identical to PriceLevelEQ.
func PriceLevel(v int) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldPriceLevel, v))
}

// OpeningHours applies equality check predicate on the "opening_hours" field. It's identical to OpeningHoursEQ.
func OpeningHours(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldOpeningHours, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldRating, v))
}

// ReviewCount applies equality check predicate on the "review_count" field. It's identical to ReviewCountEQ.
func ReviewCount(v int) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldReviewCount, v))
}

// BokScore applies equality check predicate on the "bok_score" field. It's identical to BokScoreEQ.
func BokScore(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldBokScore, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldActive, v))
}

// Verified applies equality check predicate on the "verified" field. It's identical to VerifiedEQ.
func Verified(v bool) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldVerified, v))
}

// Featured applies equality check predicate on the "featured" field. It's identical to FeaturedEQ.
func Featured(v bool) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldFeatured, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldUpdatedAt, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldEntityType, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldName, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldSlug, v))
}

// GooglePlaceIDEQ applies the EQ predicate on the "google_place_id" field.
func GooglePlaceIDEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldGooglePlaceID, v))
}

// GooglePlaceIDNEQ applies the NEQ predicate on the "google_place_id" field.
func GooglePlaceIDNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldGooglePlaceID, v))
}

// GooglePlaceIDIn applies the In predicate on the "google_place_id" field.
func GooglePlaceIDIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldGooglePlaceID, vs...))
}

// GooglePlaceIDNotIn applies the NotIn predicate on the "google_place_id" field.
func GooglePlaceIDNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldGooglePlaceID, vs...))
}

// GooglePlaceIDGT applies the GT predicate on the "google_place_id" field.
func GooglePlaceIDGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldGooglePlaceID, v))
}

// GooglePlaceIDGTE applies the GTE predicate on the "google_place_id" field.
func GooglePlaceIDGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldGooglePlaceID, v))
}

// GooglePlaceIDLT applies the LT predicate on the "google_place_id" field.
func GooglePlaceIDLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldGooglePlaceID, v))
}

// GooglePlaceIDLTE applies the LTE predicate on the "google_place_id" field.
func GooglePlaceIDLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldGooglePlaceID, v))
}

// GooglePlaceIDContains applies the Contains predicate on the "google_place_id" field.
func GooglePlaceIDContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldGooglePlaceID, v))
}

// GooglePlaceIDHasPrefix applies the HasPrefix predicate on the "google_place_id" field.
func GooglePlaceIDHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldGooglePlaceID, v))
}

// GooglePlaceIDHasSuffix applies the HasSuffix predicate on the "google_place_id" field.
func GooglePlaceIDHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldGooglePlaceID, v))
}

// GooglePlaceIDIsNil applies the IsNil predicate on the "google_place_id" field.
func GooglePlaceIDIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldGooglePlaceID))
}

// GooglePlaceIDNotNil applies the NotNil predicate on the "google_place_id" field.
func GooglePlaceIDNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldGooglePlaceID))
}

// GooglePlaceIDEqualFold applies the EqualFold predicate on the "google_place_id" field.
func GooglePlaceIDEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldGooglePlaceID, v))
}

// GooglePlaceIDContainsFold applies the ContainsFold predicate on the "google_place_id" field.
func GooglePlaceIDContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldGooglePlaceID, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldAddress, v))
}

// AreaEQ applies the EQ predicate on the "area" field.
func AreaEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldArea, v))
}

// AreaNEQ applies the NEQ predicate on the "area" field.
func AreaNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldArea, v))
}

// AreaIn applies the In predicate on the "area" field.
func AreaIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldArea, vs...))
}

// AreaNotIn applies the NotIn predicate on the "area" field.
func AreaNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldArea, vs...))
}

// AreaGT applies the GT predicate on the "area" field.
func AreaGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldArea, v))
}

// AreaGTE applies the GTE predicate on the "area" field.
func AreaGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldArea, v))
}

// AreaLT applies the LT predicate on the "area" field.
func AreaLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldArea, v))
}

// AreaLTE applies the LTE predicate on the "area" field.
func AreaLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldArea, v))
}

// AreaContains applies the Contains predicate on the "area" field.
func AreaContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldArea, v))
}

// AreaHasPrefix applies the HasPrefix predicate on the "area" field.
func AreaHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldArea, v))
}

// AreaHasSuffix applies the HasSuffix predicate on the "area" field.
func AreaHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldArea, v))
}

// AreaIsNil applies the IsNil predicate on the "area" field.
func AreaIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldArea))
}

// AreaNotNil applies the NotNil predicate on the "area" field.
func AreaNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldArea))
}

// AreaEqualFold applies the EqualFold predicate on the "area" field.
func AreaEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldArea, v))
}

// AreaContainsFold applies the ContainsFold predicate on the "area" field.
func AreaContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldArea, v))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldLatitude, v))
}

// LatitudeIsNil applies the IsNil predicate on the "latitude" field.
func LatitudeIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldLatitude))
}

// LatitudeNotNil applies the NotNil predicate on the "latitude" field.
func LatitudeNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldLatitude))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldLongitude, v))
}

// LongitudeIsNil applies the IsNil predicate on the "longitude" field.
func LongitudeIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldLongitude))
}

// LongitudeNotNil applies the NotNil predicate on the "longitude" field.
func LongitudeNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldLongitude))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldEmail, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteIsNil applies the IsNil predicate on the "website" field.
func WebsiteIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldWebsite))
}

// WebsiteNotNil applies the NotNil predicate on the "website" field.
func WebsiteNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldWebsite))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldWebsite, v))
}

// InstagramEQ applies the EQ predicate on the "instagram" field.
func InstagramEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldInstagram, v))
}

// InstagramNEQ applies the NEQ predicate on the "instagram" field.
func InstagramNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldInstagram, v))
}

// InstagramIn applies the In predicate on the "instagram" field.
func InstagramIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldInstagram, vs...))
}

// InstagramNotIn applies the NotIn predicate on the "instagram" field.
func InstagramNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldInstagram, vs...))
}

// InstagramGT applies the GT predicate on the "instagram" field.
func InstagramGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldInstagram, v))
}

// InstagramGTE applies the GTE predicate on the "instagram" field.
func InstagramGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldInstagram, v))
}

// InstagramLT applies the LT predicate on the "instagram" field.
func InstagramLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldInstagram, v))
}

// InstagramLTE applies the LTE predicate on the "instagram" field.
func InstagramLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldInstagram, v))
}

// InstagramContains applies the Contains predicate on the "instagram" field.
func InstagramContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldInstagram, v))
}

// InstagramHasPrefix applies the HasPrefix predicate on the "instagram" field.
func InstagramHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldInstagram, v))
}

// InstagramHasSuffix applies the HasSuffix predicate on the "instagram" field.
func InstagramHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldInstagram, v))
}

// InstagramIsNil applies the IsNil predicate on the "instagram" field.
func InstagramIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldInstagram))
}

// InstagramNotNil applies the NotNil predicate on the "instagram" field.
func InstagramNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldInstagram))
}

// InstagramEqualFold applies the EqualFold predicate on the "instagram" field.
func InstagramEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldInstagram, v))
}

// InstagramContainsFold applies the ContainsFold predicate on the "instagram" field.
func InstagramContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldInstagram, v))
}

// FacebookEQ applies the EQ predicate on the "facebook" field.
func FacebookEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldFacebook, v))
}

// FacebookNEQ applies the NEQ predicate on the "facebook" field.
func FacebookNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldFacebook, v))
}

// FacebookIn applies the In predicate on the "facebook" field.
func FacebookIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldFacebook, vs...))
}

// FacebookNotIn applies the NotIn predicate on the "facebook" field.
func FacebookNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldFacebook, vs...))
}

// FacebookGT applies the GT predicate on the "facebook" field.
func FacebookGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldFacebook, v))
}

// FacebookGTE applies the GTE predicate on the "facebook" field.
func FacebookGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldFacebook, v))
}

// FacebookLT applies the LT predicate on the "facebook" field.
func FacebookLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldFacebook, v))
}

// FacebookLTE applies the LTE predicate on the "facebook" field.
func FacebookLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldFacebook, v))
}

// FacebookContains applies the Contains predicate on the "facebook" field.
func FacebookContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldFacebook, v))
}

// FacebookHasPrefix applies the HasPrefix predicate on the "facebook" field.
func FacebookHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldFacebook, v))
}

// FacebookHasSuffix applies the HasSuffix predicate on the "facebook" field.
func FacebookHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldFacebook, v))
}

// FacebookIsNil applies the IsNil predicate on the "facebook" field.
func FacebookIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldFacebook))
}

// FacebookNotNil applies the NotNil predicate on the "facebook" field.
func FacebookNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldFacebook))
}

// FacebookEqualFold applies the EqualFold predicate on the "facebook" field.
func FacebookEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldFacebook, v))
}

// FacebookContainsFold applies the ContainsFold predicate on the "facebook" field.
func FacebookContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldFacebook, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldDescription, v))
}

// ShortDescriptionEQ applies the EQ predicate on the "short_description" field.
func ShortDescriptionEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldShortDescription, v))
}

// ShortDescriptionNEQ applies the NEQ predicate on the "short_description" field.
func ShortDescriptionNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldShortDescription, v))
}

// ShortDescriptionIn applies the In predicate on the "short_description" field.
func ShortDescriptionIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldShortDescription, vs...))
}

// ShortDescriptionNotIn applies the NotIn predicate on the "short_description" field.
func ShortDescriptionNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldShortDescription, vs...))
}

// ShortDescriptionGT applies the GT predicate on the "short_description" field.
func ShortDescriptionGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldShortDescription, v))
}

// ShortDescriptionGTE applies the GTE predicate on the "short_description" field.
func ShortDescriptionGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldShortDescription, v))
}

// ShortDescriptionLT applies the LT predicate on the "short_description" field.
func ShortDescriptionLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldShortDescription, v))
}

// ShortDescriptionLTE applies the LTE predicate on the "short_description" field.
func ShortDescriptionLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldShortDescription, v))
}

// ShortDescriptionContains applies the Contains predicate on the "short_description" field.
func ShortDescriptionContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldShortDescription, v))
}

// ShortDescriptionHasPrefix applies the HasPrefix predicate on the "short_description" field.
func ShortDescriptionHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldShortDescription, v))
}

// ShortDescriptionHasSuffix applies the HasSuffix predicate on the "short_description" field.
func ShortDescriptionHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldShortDescription, v))
}

// ShortDescriptionIsNil applies the IsNil predicate on the "short_description" field.
func ShortDescriptionIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldShortDescription))
}

// ShortDescriptionNotNil applies the NotNil predicate on the "short_description" field.
func ShortDescriptionNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldShortDescription))
}

// ShortDescriptionEqualFold applies the EqualFold predicate on the "short_description" field.
func ShortDescriptionEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldShortDescription, v))
}

// ShortDescriptionContainsFold applies the ContainsFold predicate on the "short_description" field.
func ShortDescriptionContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldShortDescription, v))
}

// MetaTitleEQ applies the EQ predicate on the "meta_title" field.
func MetaTitleEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldMetaTitle, v))
}

// MetaTitleNEQ applies the NEQ predicate on the "meta_title" field.
func MetaTitleNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldMetaTitle, v))
}

// MetaTitleIn applies the In predicate on the "meta_title" field.
func MetaTitleIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldMetaTitle, vs...))
}

// MetaTitleNotIn applies the NotIn predicate on the "meta_title" field.
func MetaTitleNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldMetaTitle, vs...))
}

// MetaTitleGT applies the GT predicate on the "meta_title" field.
func MetaTitleGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldMetaTitle, v))
}

// MetaTitleGTE applies the GTE predicate on the "meta_title" field.
func MetaTitleGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldMetaTitle, v))
}

// MetaTitleLT applies the LT predicate on the "meta_title" field.
func MetaTitleLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldMetaTitle, v))
}

// MetaTitleLTE applies the LTE predicate on the "meta_title" field.
func MetaTitleLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldMetaTitle, v))
}

// MetaTitleContains applies the Contains predicate on the "meta_title" field.
func MetaTitleContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldMetaTitle, v))
}

// MetaTitleHasPrefix applies the HasPrefix predicate on the "meta_title" field.
func MetaTitleHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldMetaTitle, v))
}

// MetaTitleHasSuffix applies the HasSuffix predicate on the "meta_title" field.
func MetaTitleHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldMetaTitle, v))
}

// MetaTitleIsNil applies the IsNil predicate on the "meta_title" field.
func MetaTitleIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldMetaTitle))
}

// MetaTitleNotNil applies the NotNil predicate on the "meta_title" field.
func MetaTitleNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldMetaTitle))
}

// MetaTitleEqualFold applies the EqualFold predicate on the "meta_title" field.
func MetaTitleEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldMetaTitle, v))
}

// MetaTitleContainsFold applies the ContainsFold predicate on the "meta_title" field.
func MetaTitleContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldMetaTitle, v))
}

// MetaDescriptionEQ applies the EQ predicate on the "meta_description" field.
func MetaDescriptionEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldMetaDescription, v))
}

// MetaDescriptionNEQ applies the NEQ predicate on the "meta_description" field.
func MetaDescriptionNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldMetaDescription, v))
}

// MetaDescriptionIn applies the In predicate on the "meta_description" field.
func MetaDescriptionIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldMetaDescription, vs...))
}

// MetaDescriptionNotIn applies the NotIn predicate on the "meta_description" field.
func MetaDescriptionNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldMetaDescription, vs...))
}

// MetaDescriptionGT applies the GT predicate on the "meta_description" field.
func MetaDescriptionGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldMetaDescription, v))
}

// MetaDescriptionGTE applies the GTE predicate on the "meta_description" field.
func MetaDescriptionGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldMetaDescription, v))
}

// MetaDescriptionLT applies the LT predicate on the "meta_description" field.
func MetaDescriptionLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldMetaDescription, v))
}

// MetaDescriptionLTE applies the LTE predicate on the "meta_description" field.
func MetaDescriptionLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldMetaDescription, v))
}

// MetaDescriptionContains applies the Contains predicate on the "meta_description" field.
func MetaDescriptionContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldMetaDescription, v))
}

// MetaDescriptionHasPrefix applies the HasPrefix predicate on the "meta_description" field.
func MetaDescriptionHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldMetaDescription, v))
}

// MetaDescriptionHasSuffix applies the HasSuffix predicate on the "meta_description" field.
func MetaDescriptionHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldMetaDescription, v))
}

// MetaDescriptionIsNil applies the IsNil predicate on the "meta_description" field.
func MetaDescriptionIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldMetaDescription))
}

// MetaDescriptionNotNil applies the NotNil predicate on the "meta_description" field.
func MetaDescriptionNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldMetaDescription))
}

// MetaDescriptionEqualFold applies the EqualFold predicate on the "meta_description" field.
func MetaDescriptionEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldMetaDescription, v))
}

// MetaDescriptionContainsFold applies the ContainsFold predicate on the "meta_description" field.
func MetaDescriptionContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldMetaDescription, v))
}

// MetaKeywordsEQ applies the EQ predicate on the "meta_keywords" field.
func MetaKeywordsEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldMetaKeywords, v))
}

// MetaKeywordsNEQ applies the NEQ predicate on the "meta_keywords" field.
func MetaKeywordsNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldMetaKeywords, v))
}

// MetaKeywordsIn applies the In predicate on the "meta_keywords" field.
func MetaKeywordsIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldMetaKeywords, vs...))
}

// MetaKeywordsNotIn applies the NotIn predicate on the "meta_keywords" field.
func MetaKeywordsNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldMetaKeywords, vs...))
}

// MetaKeywordsGT applies the GT predicate on the "meta_keywords" field.
func MetaKeywordsGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldMetaKeywords, v))
}

// MetaKeywordsGTE applies the GTE predicate on the "meta_keywords" field.
func MetaKeywordsGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldMetaKeywords, v))
}

// MetaKeywordsLT applies the LT predicate on the "meta_keywords" field.
func MetaKeywordsLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldMetaKeywords, v))
}

// MetaKeywordsLTE applies the LTE predicate on the "meta_keywords" field.
func MetaKeywordsLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldMetaKeywords, v))
}

// MetaKeywordsContains applies the Contains predicate on the "meta_keywords" field.
func MetaKeywordsContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldMetaKeywords, v))
}

// MetaKeywordsHasPrefix applies the HasPrefix predicate on the "meta_keywords" field.
func MetaKeywordsHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldMetaKeywords, v))
}

// MetaKeywordsHasSuffix applies the HasSuffix predicate on the "meta_keywords" field.
func MetaKeywordsHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldMetaKeywords, v))
}

// MetaKeywordsIsNil applies the IsNil predicate on the "meta_keywords" field.
func MetaKeywordsIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldMetaKeywords))
}

// MetaKeywordsNotNil applies the NotNil predicate on the "meta_keywords" field.
func MetaKeywordsNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldMetaKeywords))
}

// MetaKeywordsEqualFold applies the EqualFold predicate on the "meta_keywords" field.
func MetaKeywordsEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldMetaKeywords, v))
}

// MetaKeywordsContainsFold applies the ContainsFold predicate on the "meta_keywords" field.
func MetaKeywordsContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldMetaKeywords, v))
}

// PriceLevelEQ applies the EQ predicate on the "price_level" field.
func PriceLevelEQ(v int) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldPriceLevel, v))
}

// PriceLevelNEQ applies the NEQ predicate on the "price_level" field.
func PriceLevelNEQ(v int) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldPriceLevel, v))
}

// PriceLevelIn applies the In predicate on the "price_level" field.
func PriceLevelIn(vs ...int) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldPriceLevel, vs...))
}

// PriceLevelNotIn applies the NotIn predicate on the "price_level" field.
func PriceLevelNotIn(vs ...int) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldPriceLevel, vs...))
}

// PriceLevelGT applies the GT predicate on the "price_level" field.
func PriceLevelGT(v int) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldPriceLevel, v))
}

// PriceLevelGTE applies the GTE predicate on the "price_level" field.
func PriceLevelGTE(v int) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldPriceLevel, v))
}

// PriceLevelLT applies the LT predicate on the "price_level" field.
func PriceLevelLT(v int) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldPriceLevel, v))
}

// PriceLevelLTE applies the LTE predicate on the "price_level" field.
func PriceLevelLTE(v int) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldPriceLevel, v))
}

// OpeningHoursEQ applies the EQ predicate on the "opening_hours" field.
func OpeningHoursEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldOpeningHours, v))
}

// OpeningHoursNEQ applies the NEQ predicate on the "opening_hours" field.
func OpeningHoursNEQ(v string) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldOpeningHours, v))
}

// OpeningHoursIn applies the In predicate on the "opening_hours" field.
func OpeningHoursIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldOpeningHours, vs...))
}

// OpeningHoursNotIn applies the NotIn predicate on the "opening_hours" field.
func OpeningHoursNotIn(vs ...string) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldOpeningHours, vs...))
}

// OpeningHoursGT applies the GT predicate on the "opening_hours" field.
func OpeningHoursGT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldOpeningHours, v))
}

// OpeningHoursGTE applies the GTE predicate on the "opening_hours" field.
func OpeningHoursGTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldOpeningHours, v))
}

// OpeningHoursLT applies the LT predicate on the "opening_hours" field.
func OpeningHoursLT(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldOpeningHours, v))
}

// OpeningHoursLTE applies the LTE predicate on the "opening_hours" field.
func OpeningHoursLTE(v string) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldOpeningHours, v))
}

// OpeningHoursContains applies the Contains predicate on the "opening_hours" field.
func OpeningHoursContains(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContains(FieldOpeningHours, v))
}

// OpeningHoursHasPrefix applies the HasPrefix predicate on the "opening_hours" field.
func OpeningHoursHasPrefix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasPrefix(FieldOpeningHours, v))
}

// OpeningHoursHasSuffix applies the HasSuffix predicate on the "opening_hours" field.
func OpeningHoursHasSuffix(v string) predicate.Listing {
	return predicate.Listing(sql.FieldHasSuffix(FieldOpeningHours, v))
}

// OpeningHoursIsNil applies the IsNil predicate on the "opening_hours" field.
func OpeningHoursIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldOpeningHours))
}

// OpeningHoursNotNil applies the NotNil predicate on the "opening_hours" field.
func OpeningHoursNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldOpeningHours))
}

// OpeningHoursEqualFold applies the EqualFold predicate on the "opening_hours" field.
func OpeningHoursEqualFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldEqualFold(FieldOpeningHours, v))
}

// OpeningHoursContainsFold applies the ContainsFold predicate on the "opening_hours" field.
func OpeningHoursContainsFold(v string) predicate.Listing {
	return predicate.Listing(sql.FieldContainsFold(FieldOpeningHours, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...float64) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...float64) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldRating, v))
}

// RatingIsNil applies the IsNil predicate on the "rating" field.
func RatingIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldRating))
}

// RatingNotNil applies the NotNil predicate on the "rating" field.
func RatingNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldRating))
}

// ReviewCountEQ applies the EQ predicate on the "review_count" field.
func ReviewCountEQ(v int) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldReviewCount, v))
}

// ReviewCountNEQ applies the NEQ predicate on the "review_count" field.
func ReviewCountNEQ(v int) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldReviewCount, v))
}

// ReviewCountIn applies the In predicate on the "review_count" field.
func ReviewCountIn(vs ...int) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldReviewCount, vs...))
}

// ReviewCountNotIn applies the NotIn predicate on the "review_count" field.
func ReviewCountNotIn(vs ...int) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldReviewCount, vs...))
}

// ReviewCountGT applies the GT predicate on the "review_count" field.
func ReviewCountGT(v int) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldReviewCount, v))
}

// ReviewCountGTE applies the GTE predicate on the "review_count" field.
func ReviewCountGTE(v int) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldReviewCount, v))
}

// ReviewCountLT applies the LT predicate on the "review_count" field.
func ReviewCountLT(v int) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldReviewCount, v))
}

// ReviewCountLTE applies the LTE predicate on the "review_count" field.
func ReviewCountLTE(v int) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldReviewCount, v))
}

// BokScoreEQ applies the EQ predicate on the "bok_score" field.
func BokScoreEQ(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldBokScore, v))
}

// BokScoreNEQ applies the NEQ predicate on the "bok_score" field.
func BokScoreNEQ(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldBokScore, v))
}

// BokScoreIn applies the In predicate on the "bok_score" field.
func BokScoreIn(vs ...float64) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldBokScore, vs...))
}

// BokScoreNotIn applies the NotIn predicate on the "bok_score" field.
func BokScoreNotIn(vs ...float64) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldBokScore, vs...))
}

// BokScoreGT applies the GT predicate on the "bok_score" field.
func BokScoreGT(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldBokScore, v))
}

// BokScoreGTE applies the GTE predicate on the "bok_score" field.
func BokScoreGTE(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldBokScore, v))
}

// BokScoreLT applies the LT predicate on the "bok_score" field.
func BokScoreLT(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldBokScore, v))
}

// BokScoreLTE applies the LTE predicate on the "bok_score" field.
func BokScoreLTE(v float64) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldBokScore, v))
}

// BokScoreIsNil applies the IsNil predicate on the "bok_score" field.
func BokScoreIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldBokScore))
}

// BokScoreNotNil applies the NotNil predicate on the "bok_score" field.
func BokScoreNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldBokScore))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldActive, v))
}

// VerifiedEQ applies the EQ predicate on the "verified" field.
func VerifiedEQ(v bool) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldVerified, v))
}

// VerifiedNEQ applies the NEQ predicate on the "verified" field.
func VerifiedNEQ(v bool) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldVerified, v))
}

// FeaturedEQ applies the EQ predicate on the "featured" field.
func FeaturedEQ(v bool) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldFeatured, v))
}

// FeaturedNEQ applies the NEQ predicate on the "featured" field.
func FeaturedNEQ(v bool) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldFeatured, v))
}

// ApifyOutputIsNil applies the IsNil predicate on the "apify_output" field.
func ApifyOutputIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldApifyOutput))
}

// ApifyOutputNotNil applies the NotNil predicate on the "apify_output" field.
func ApifyOutputNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldApifyOutput))
}

// FirecrawlOutputIsNil applies the IsNil predicate on the "firecrawl_output" field.
func FirecrawlOutputIsNil() predicate.Listing {
	return predicate.Listing(sql.FieldIsNull(FieldFirecrawlOutput))
}

// FirecrawlOutputNotNil applies the NotNil predicate on the "firecrawl_output" field.
func FirecrawlOutputNotNil() predicate.Listing {
	return predicate.Listing(sql.FieldNotNull(FieldFirecrawlOutput))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Listing {
	return predicate.Listing(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasImages applies the HasEdge predicate on the "images" edge.
func HasImages() predicate.Listing {
	return predicate.Listing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImagesWith applies the HasEdge predicate on the "images" edge with a given conditions (other predicates).
func HasImagesWith(preds ...predicate.ListingImage) predicate.Listing {
	return predicate.Listing(func(s *sql.Selector) {
		step := newImagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFaqs applies the HasEdge predicate on the "faqs" edge.
func HasFaqs() predicate.Listing {
	return predicate.Listing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FaqsTable, FaqsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFaqsWith applies the HasEdge predicate on the "faqs" edge with a given conditions (other predicates).
func HasFaqsWith(preds ...predicate.FAQ) predicate.Listing {
	return predicate.Listing(func(s *sql.Selector) {
		step := newFaqsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttributes applies the HasEdge predicate on the "attributes" edge.
func HasAttributes() predicate.Listing {
	return predicate.Listing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, AttributesTable, AttributesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttributesWith applies the HasEdge predicate on the "attributes" edge with a given conditions (other predicates).
func HasAttributesWith(preds ...predicate.Attribute) predicate.Listing {
	return predicate.Listing(func(s *sql.Selector) {
		step := newAttributesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Listing) predicate.Listing {
	return predicate.Listing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Listing) predicate.Listing {
	return predicate.Listing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Listing) predicate.Listing {
	return predicate.Listing(sql.NotPredicates(p))
}
