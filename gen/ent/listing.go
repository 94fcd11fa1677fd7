// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/google/uuid"
)

// Listing is the model entity for the Listing schema.
type Listing struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType string `json:"entity_type,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// GooglePlaceID holds the value of the "google_place_id" field.
	GooglePlaceID string `json:"google_place_id,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// Area holds the value of the "area" field.
	Area string `json:"area,omitempty"`
	// Latitude holds the value of the "latitude" field.
	Latitude *float64 `json:"latitude,omitempty"`
	// Longitude holds the value of the "longitude" field.
	Longitude *float64 `json:"longitude,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Website holds the value of the "website" field.
	Website string `json:"website,omitempty"`
	// Instagram holds the value of the "instagram" field.
	Instagram string `json:"instagram,omitempty"`
	// Facebook holds the value of the "facebook" field.
	Facebook string `json:"facebook,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ShortDescription holds the value of the "short_description" field.
	ShortDescription string `json:"short_description,omitempty"`
	// MetaTitle holds the value of the "meta_title" field.
	MetaTitle string `json:"meta_title,omitempty"`
	// MetaDescription holds the value of the "meta_description" field.
	MetaDescription string `json:"meta_description,omitempty"`
	// MetaKeywords holds the value of the "meta_keywords" field.
	MetaKeywords string `json:"meta_keywords,omitempty"`
	// PriceLevel holds the value of the "price_level" field.
	PriceLevel int `json:"price_level,omitempty"`
	// OpeningHours holds the value of the "opening_hours" field.
	OpeningHours string `json:"opening_hours,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating *float64 `json:"rating,omitempty"`
	// ReviewCount holds the value of the "review_count" field.
	ReviewCount int `json:"review_count,omitempty"`
	// BokScore holds the value of the "bok_score" field.
	BokScore *float64 `json:"bok_score,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Verified holds the value of the "verified" field.
	Verified bool `json:"verified,omitempty"`
	// Featured holds the value of the "featured" field.
	Featured bool `json:"featured,omitempty"`
	// ApifyOutput holds the value of the "apify_output" field.
	ApifyOutput json.RawMessage `json:"apify_output,omitempty"`
	// FirecrawlOutput holds the value of the "firecrawl_output" field.
	FirecrawlOutput json.RawMessage `json:"firecrawl_output,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ListingQuery when eager-loading is set.
	Edges        ListingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ListingEdges holds the relations/edges for other nodes in the graph.
type ListingEdges struct {
	// Images holds the value of the images edge.
	Images []*ListingImage `json:"images,omitempty"`
	// Faqs holds the value of the faqs edge.
	Faqs []*FAQ `json:"faqs,omitempty"`
	// Attributes holds the value of the attributes edge.
	Attributes []*Attribute `json:"attributes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ImagesOrErr returns the Images value or an error if the edge
// was not loaded in eager-loading.
func (e ListingEdges) ImagesOrErr() ([]*ListingImage, error) {
	if e.loadedTypes[0] {
		return e.Images, nil
	}
	return nil, &NotLoadedError{edge: "images"}
}

// FaqsOrErr returns the Faqs value or an error if the edge
// was not loaded in eager-loading.
func (e ListingEdges) FaqsOrErr() ([]*FAQ, error) {
	if e.loadedTypes[1] {
		return e.Faqs, nil
	}
	return nil, &NotLoadedError{edge: "faqs"}
}

// AttributesOrErr returns the Attributes value or an error if the edge
// was not loaded in eager-loading.
func (e ListingEdges) AttributesOrErr() ([]*Attribute, error) {
	if e.loadedTypes[2] {
		return e.Attributes, nil
	}
	return nil, &NotLoadedError{edge: "attributes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Listing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case listing.FieldApifyOutput, listing.FieldFirecrawlOutput:
			values[i] = new([]byte)
		case listing.FieldActive, listing.FieldVerified, listing.FieldFeatured:
			values[i] = new(sql.NullBool)
		case listing.FieldLatitude, listing.FieldLongitude, listing.FieldRating, listing.FieldBokScore:
			values[i] = new(sql.NullFloat64)
		case listing.FieldPriceLevel, listing.FieldReviewCount:
			values[i] = new(sql.NullInt64)
		case listing.FieldEntityType, listing.FieldName, listing.FieldSlug, listing.FieldGooglePlaceID, listing.FieldAddress, listing.FieldArea, listing.FieldPhone, listing.FieldEmail, listing.FieldWebsite, listing.FieldInstagram, listing.FieldFacebook, listing.FieldDescription, listing.FieldShortDescription, listing.FieldMetaTitle, listing.FieldMetaDescription, listing.FieldMetaKeywords, listing.FieldOpeningHours:
			values[i] = new(sql.NullString)
		case listing.FieldCreatedAt, listing.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case listing.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Listing fields.
func (_m *Listing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case listing.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case listing.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = value.String
			}
		case listing.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case listing.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case listing.FieldGooglePlaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field google_place_id", values[i])
			} else if value.Valid {
				_m.GooglePlaceID = value.String
			}
		case listing.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case listing.FieldArea:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field area", values[i])
			} else if value.Valid {
				_m.Area = value.String
			}
		case listing.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = new(float64)
				*_m.Latitude = value.Float64
			}
		case listing.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = new(float64)
				*_m.Longitude = value.Float64
			}
		case listing.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case listing.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case listing.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = value.String
			}
		case listing.FieldInstagram:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instagram", values[i])
			} else if value.Valid {
				_m.Instagram = value.String
			}
		case listing.FieldFacebook:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facebook", values[i])
			} else if value.Valid {
				_m.Facebook = value.String
			}
		case listing.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case listing.FieldShortDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field short_description", values[i])
			} else if value.Valid {
				_m.ShortDescription = value.String
			}
		case listing.FieldMetaTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_title", values[i])
			} else if value.Valid {
				_m.MetaTitle = value.String
			}
		case listing.FieldMetaDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_description", values[i])
			} else if value.Valid {
				_m.MetaDescription = value.String
			}
		case listing.FieldMetaKeywords:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_keywords", values[i])
			} else if value.Valid {
				_m.MetaKeywords = value.String
			}
		case listing.FieldPriceLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field price_level", values[i])
			} else if value.Valid {
				_m.PriceLevel = int(value.Int64)
			}
		case listing.FieldOpeningHours:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field opening_hours", values[i])
			} else if value.Valid {
				_m.OpeningHours = value.String
			}
		case listing.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = new(float64)
				*_m.Rating = value.Float64
			}
		case listing.FieldReviewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_count", values[i])
			} else if value.Valid {
				_m.ReviewCount = int(value.Int64)
			}
		case listing.FieldBokScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bok_score", values[i])
			} else if value.Valid {
				_m.BokScore = new(float64)
				*_m.BokScore = value.Float64
			}
		case listing.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case listing.FieldVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field verified", values[i])
			} else if value.Valid {
				_m.Verified = value.Bool
			}
		case listing.FieldFeatured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field featured", values[i])
			} else if value.Valid {
				_m.Featured = value.Bool
			}
		case listing.FieldApifyOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field apify_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ApifyOutput); err != nil {
					return fmt.Errorf("unmarshal field apify_output: %w", err)
				}
			}
		case listing.FieldFirecrawlOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field firecrawl_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FirecrawlOutput); err != nil {
					return fmt.Errorf("unmarshal field firecrawl_output: %w", err)
				}
			}
		case listing.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case listing.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Listing.
// This includes values selected through modifiers, order, etc.
func (_m *Listing) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryImages queries the "images" edge of the Listing entity.
func (_m *Listing) QueryImages() *ListingImageQuery {
	return NewListingClient(_m.config).QueryImages(_m)
}

// QueryFaqs queries the "faqs" edge of the Listing entity.
func (_m *Listing) QueryFaqs() *FAQQuery {
	return NewListingClient(_m.config).QueryFaqs(_m)
}

// QueryAttributes queries the "attributes" edge of the Listing entity.
func (_m *Listing) QueryAttributes() *AttributeQuery {
	return NewListingClient(_m.config).QueryAttributes(_m)
}

// Update returns a builder for updating this Listing.
// Note that you need to call Listing.Unwrap() before calling this method if this Listing
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Listing) Update() *ListingUpdateOne {
	return NewListingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Listing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Listing) Unwrap() *Listing {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Listing is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Listing) String() string {
	var builder strings.Builder
	builder.WriteString("Listing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entity_type=")
	builder.WriteString(_m.EntityType)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("google_place_id=")
	builder.WriteString(_m.GooglePlaceID)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("area=")
	builder.WriteString(_m.Area)
	builder.WriteString(", ")
	if v := _m.Latitude; v != nil {
		builder.WriteString("latitude=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Longitude; v != nil {
		builder.WriteString("longitude=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("website=")
	builder.WriteString(_m.Website)
	builder.WriteString(", ")
	builder.WriteString("instagram=")
	builder.WriteString(_m.Instagram)
	builder.WriteString(", ")
	builder.WriteString("facebook=")
	builder.WriteString(_m.Facebook)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("short_description=")
	builder.WriteString(_m.ShortDescription)
	builder.WriteString(", ")
	builder.WriteString("meta_title=")
	builder.WriteString(_m.MetaTitle)
	builder.WriteString(", ")
	builder.WriteString("meta_description=")
	builder.WriteString(_m.MetaDescription)
	builder.WriteString(", ")
	builder.WriteString("meta_keywords=")
	builder.WriteString(_m.MetaKeywords)
	builder.WriteString(", ")
	builder.WriteString("price_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriceLevel))
	builder.WriteString(", ")
	builder.WriteString("opening_hours=")
	builder.WriteString(_m.OpeningHours)
	builder.WriteString(", ")
	if v := _m.Rating; v != nil {
		builder.WriteString("rating=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("review_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewCount))
	builder.WriteString(", ")
	if v := _m.BokScore; v != nil {
		builder.WriteString("bok_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verified))
	builder.WriteString(", ")
	builder.WriteString("featured=")
	builder.WriteString(fmt.Sprintf("%v", _m.Featured))
	builder.WriteString(", ")
	builder.WriteString("apify_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApifyOutput))
	builder.WriteString(", ")
	builder.WriteString("firecrawl_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirecrawlOutput))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Listings is a parsable slice of Listing.
type Listings []*Listing
