// Code generated by ent, DO NOT EDIT.

package listingimage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the listingimage type in the database.
	Label = "listing_image"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldListingID holds the string denoting the listing_id field in the database.
	FieldListingID = "listing_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldAltText holds the string denoting the alt_text field in the database.
	FieldAltText = "alt_text"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIsHero holds the string denoting the is_hero field in the database.
	FieldIsHero = "is_hero"
	// FieldDisplayOrder holds the string denoting the display_order field in the database.
	FieldDisplayOrder = "display_order"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeListing holds the string denoting the listing edge name in mutations.
	EdgeListing = "listing"
	// Table holds the table name of the listingimage in the database.
	Table = "listing_images"
	// ListingTable is the table that holds the listing relation/edge.
	ListingTable = "listing_images"
	// ListingInverseTable is the table name for the Listing entity.
	// It exists in this package in order to avoid circular dependency with the "listing" package.
	ListingInverseTable = "listings"
	// ListingColumn is the table column denoting the listing relation/edge.
	ListingColumn = "listing_id"
)

// Columns holds all SQL columns for listingimage fields.
var Columns = []string{
	FieldID,
	FieldListingID,
	FieldURL,
	FieldAltText,
	FieldStatus,
	FieldIsHero,
	FieldDisplayOrder,
	FieldCreatedAt,
}

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
	// URLValidator is a validator for the "url" field. It is called by the builders before save.
	URLValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultIsHero holds the default value on creation for the "is_hero" field.
	DefaultIsHero bool
	// DefaultDisplayOrder holds the default value on creation for the "display_order" field.
	DefaultDisplayOrder int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ListingImage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByListingID orders the results by the listing_id field.
func ByListingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListingID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByAltText orders the results by the alt_text field.
func ByAltText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAltText, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIsHero orders the results by the is_hero field.
func ByIsHero(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsHero, opts...).ToFunc()
}

// ByDisplayOrder orders the results by the display_order field.
func ByDisplayOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayOrder, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByListingField orders the results by listing field.
func ByListingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newListingStep(), sql.OrderByField(field, opts...))
	}
}
func newListingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ListingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ListingTable, ListingColumn),
	)
}
