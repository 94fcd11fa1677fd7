// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/bestofgoa/bok/gen/ent/listingimage"
	"github.com/google/uuid"
)

// ListingImage is the model entity for the ListingImage schema.
type ListingImage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ListingID holds the value of the "listing_id" field.
	ListingID uuid.UUID `json:"listing_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// AltText holds the value of the "alt_text" field.
	AltText string `json:"alt_text,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// IsHero holds the value of the "is_hero" field.
	IsHero bool `json:"is_hero,omitempty"`
	// DisplayOrder holds the value of the "display_order" field.
	DisplayOrder int `json:"display_order,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ListingImageQuery when eager-loading is set.
	Edges        ListingImageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ListingImageEdges holds the relations/edges for other nodes in the graph.
type ListingImageEdges struct {
	// Listing holds the value of the listing edge.
	Listing *Listing `json:"listing,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ListingOrErr returns the Listing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ListingImageEdges) ListingOrErr() (*Listing, error) {
	if e.Listing != nil {
		return e.Listing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: listing.Label}
	}
	return nil, &NotLoadedError{edge: "listing"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ListingImage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case listingimage.FieldIsHero:
			values[i] = new(sql.NullBool)
		case listingimage.FieldDisplayOrder:
			values[i] = new(sql.NullInt64)
		case listingimage.FieldURL, listingimage.FieldAltText, listingimage.FieldStatus:
			values[i] = new(sql.NullString)
		case listingimage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case listingimage.FieldID, listingimage.FieldListingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ListingImage fields.
func (_m *ListingImage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case listingimage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case listingimage.FieldListingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field listing_id", values[i])
			} else if value != nil {
				_m.ListingID = *value
			}
		case listingimage.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case listingimage.FieldAltText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alt_text", values[i])
			} else if value.Valid {
				_m.AltText = value.String
			}
		case listingimage.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case listingimage.FieldIsHero:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_hero", values[i])
			} else if value.Valid {
				_m.IsHero = value.Bool
			}
		case listingimage.FieldDisplayOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field display_order", values[i])
			} else if value.Valid {
				_m.DisplayOrder = int(value.Int64)
			}
		case listingimage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ListingImage.
// This includes values selected through modifiers, order, etc.
func (_m *ListingImage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryListing queries the "listing" edge of the ListingImage entity.
func (_m *ListingImage) QueryListing() *ListingQuery {
	return NewListingImageClient(_m.config).QueryListing(_m)
}

// Update returns a builder for updating this ListingImage.
// Note that you need to call ListingImage.Unwrap() before calling this method if this ListingImage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ListingImage) Update() *ListingImageUpdateOne {
	return NewListingImageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ListingImage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ListingImage) Unwrap() *ListingImage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ListingImage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ListingImage) String() string {
	var builder strings.Builder
	builder.WriteString("ListingImage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("listing_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ListingID))
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("alt_text=")
	builder.WriteString(_m.AltText)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("is_hero=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsHero))
	builder.WriteString(", ")
	builder.WriteString("display_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisplayOrder))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ListingImages is a parsable slice of ListingImage.
type ListingImages []*ListingImage
