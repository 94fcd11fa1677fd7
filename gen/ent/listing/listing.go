// Code generated by ent, DO NOT EDIT.

package listing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the listing type in the database.
	Label = "listing"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldGooglePlaceID holds the string denoting the google_place_id field in the database.
	FieldGooglePlaceID = "google_place_id"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldArea holds the string denoting the area field in the database.
	FieldArea = "area"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldInstagram holds the string denoting the instagram field in the database.
	FieldInstagram = "instagram"
	// FieldFacebook holds the string denoting the facebook field in the database.
	FieldFacebook = "facebook"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldShortDescription holds the string denoting the short_description field in the database.
	FieldShortDescription = "short_description"
	// FieldMetaTitle holds the string denoting the meta_title field in the database.
	FieldMetaTitle = "meta_title"
	// FieldMetaDescription holds the string denoting the meta_description field in the database.
	FieldMetaDescription = "meta_description"
	// FieldMetaKeywords holds the string denoting the meta_keywords field in the database.
	FieldMetaKeywords = "meta_keywords"
	// FieldPriceLevel holds the string denoting the price_level field in the database.
	FieldPriceLevel = "price_level"
	// FieldOpeningHours holds the string denoting the opening_hours field in the database.
	FieldOpeningHours = "opening_hours"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldReviewCount holds the string denoting the review_count field in the database.
	FieldReviewCount = "review_count"
	// FieldBokScore holds the string denoting the bok_score field in the database.
	FieldBokScore = "bok_score"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldVerified holds the string denoting the verified field in the database.
	FieldVerified = "verified"
	// FieldFeatured holds the string denoting the featured field in the database.
	FieldFeatured = "featured"
	// FieldApifyOutput holds the string denoting the apify_output field in the database.
	FieldApifyOutput = "apify_output"
	// FieldFirecrawlOutput holds the string denoting the firecrawl_output field in the database.
	FieldFirecrawlOutput = "firecrawl_output"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeImages holds the string denoting the images edge name in mutations.
	EdgeImages = "images"
	// EdgeFaqs holds the string denoting the faqs edge name in mutations.
	EdgeFaqs = "faqs"
	// EdgeAttributes holds the string denoting the attributes edge name in mutations.
	EdgeAttributes = "attributes"
	// Table holds the table name of the listing in the database.
	Table = "listings"
	// ImagesTable is the table that holds the images relation/edge.
	ImagesTable = "listing_images"
	// ImagesInverseTable is the table name for the ListingImage entity.
	// It exists in this package in order to avoid circular dependency with the "listingimage" package.
	ImagesInverseTable = "listing_images"
	// ImagesColumn is the table column denoting the images relation/edge.
	ImagesColumn = "listing_id"
	// FaqsTable is the table that holds the faqs relation/edge.
	FaqsTable = "listing_faqs"
	// FaqsInverseTable is the table name for the FAQ entity.
	// It exists in this package in order to avoid circular dependency with the "faq" package.
	FaqsInverseTable = "listing_faqs"
	// FaqsColumn is the table column denoting the faqs relation/edge.
	FaqsColumn = "listing_id"
	// AttributesTable is the table that holds the attributes relation/edge. The primary key declared below.
	AttributesTable = "listing_attributes"
	// AttributesInverseTable is the table name for the Attribute entity.
	// It exists in this package in order to avoid circular dependency with the "attribute" package.
	AttributesInverseTable = "attributes"
)

// Columns holds all SQL columns for listing fields.
var Columns = []string{
	FieldID,
	FieldEntityType,
	FieldName,
	FieldSlug,
	FieldGooglePlaceID,
	FieldAddress,
	FieldArea,
	FieldLatitude,
	FieldLongitude,
	FieldPhone,
	FieldEmail,
	FieldWebsite,
	FieldInstagram,
	FieldFacebook,
	FieldDescription,
	FieldShortDescription,
	FieldMetaTitle,
	FieldMetaDescription,
	FieldMetaKeywords,
	FieldPriceLevel,
	FieldOpeningHours,
	FieldRating,
	FieldReviewCount,
	FieldBokScore,
	FieldActive,
	FieldVerified,
	FieldFeatured,
	FieldApifyOutput,
	FieldFirecrawlOutput,
	FieldCreatedAt,
	FieldUpdatedAt,
}

var (
	// AttributesPrimaryKey and AttributesColumn2 are the table columns denoting the
	// primary key for the attributes relation (M2M).
	AttributesPrimaryKey = []string{"listing_id", "attribute_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	EntityTypeValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DefaultPriceLevel holds the default value on creation for the "price_level" field.
	DefaultPriceLevel int
	// PriceLevelValidator is a validator for the "price_level" field. It is called by the builders before save.
	PriceLevelValidator func(int) error
	// DefaultReviewCount holds the default value on creation for the "review_count" field.
	DefaultReviewCount int
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultVerified holds the default value on creation for the "verified" field.
	DefaultVerified bool
	// DefaultFeatured holds the default value on creation for the "featured" field.
	DefaultFeatured bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Listing queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByGooglePlaceID orders the results by the google_place_id field.
func ByGooglePlaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGooglePlaceID, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByArea orders the results by the area field.
func ByArea(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArea, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByInstagram orders the results by the instagram field.
func ByInstagram(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstagram, opts...).ToFunc()
}

// ByFacebook orders the results by the facebook field.
func ByFacebook(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacebook, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByShortDescription orders the results by the short_description field.
func ByShortDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShortDescription, opts...).ToFunc()
}

// ByMetaTitle orders the results by the meta_title field.
func ByMetaTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaTitle, opts...).ToFunc()
}

// ByMetaDescription orders the results by the meta_description field.
func ByMetaDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaDescription, opts...).ToFunc()
}

// ByMetaKeywords orders the results by the meta_keywords field.
func ByMetaKeywords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaKeywords, opts...).ToFunc()
}

// ByPriceLevel orders the results by the price_level field.
func ByPriceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceLevel, opts...).ToFunc()
}

// ByOpeningHours orders the results by the opening_hours field.
func ByOpeningHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpeningHours, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByReviewCount orders the results by the review_count field.
func ByReviewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCount, opts...).ToFunc()
}

// ByBokScore orders the results by the bok_score field.
func ByBokScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBokScore, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByVerified orders the results by the verified field.
func ByVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerified, opts...).ToFunc()
}

// ByFeatured orders the results by the featured field.
func ByFeatured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatured, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByImagesCount orders the results by images count.
func ByImagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImagesStep(), opts...)
	}
}

// ByImages orders the results by images terms.
func ByImages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFaqsCount orders the results by faqs count.
func ByFaqsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFaqsStep(), opts...)
	}
}

// ByFaqs orders the results by faqs terms.
func ByFaqs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFaqsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttributesCount orders the results by attributes count.
func ByAttributesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttributesStep(), opts...)
	}
}

// ByAttributes orders the results by attributes terms.
func ByAttributes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttributesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newImagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
	)
}
func newFaqsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FaqsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FaqsTable, FaqsColumn),
	)
}
func newAttributesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttributesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, AttributesTable, AttributesPrimaryKey...),
	)
}
