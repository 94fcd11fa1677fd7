// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bestofgoa/bok/gen/ent/faq"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/google/uuid"
)

// FAQ is the model entity for the FAQ schema.
type FAQ struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ListingID holds the value of the "listing_id" field.
	ListingID uuid.UUID `json:"listing_id,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// Answer holds the value of the "answer" field.
	Answer string `json:"answer,omitempty"`
	// DisplayOrder holds the value of the "display_order" field.
	DisplayOrder int `json:"display_order,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FAQQuery when eager-loading is set.
	Edges        FAQEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FAQEdges holds the relations/edges for other nodes in the graph.
type FAQEdges struct {
	// Listing holds the value of the listing edge.
	Listing *Listing `json:"listing,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ListingOrErr returns the Listing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FAQEdges) ListingOrErr() (*Listing, error) {
	if e.Listing != nil {
		return e.Listing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: listing.Label}
	}
	return nil, &NotLoadedError{edge: "listing"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FAQ) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case faq.FieldDisplayOrder:
			values[i] = new(sql.NullInt64)
		case faq.FieldQuestion, faq.FieldAnswer:
			values[i] = new(sql.NullString)
		case faq.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case faq.FieldID, faq.FieldListingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FAQ fields.
func (_m *FAQ) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case faq.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case faq.FieldListingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field listing_id", values[i])
			} else if value != nil {
				_m.ListingID = *value
			}
		case faq.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case faq.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case faq.FieldDisplayOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field display_order", values[i])
			} else if value.Valid {
				_m.DisplayOrder = int(value.Int64)
			}
		case faq.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FAQ.
// This includes values selected through modifiers, order, etc.
func (_m *FAQ) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryListing queries the "listing" edge of the FAQ entity.
func (_m *FAQ) QueryListing() *ListingQuery {
	return NewFAQClient(_m.config).QueryListing(_m)
}

// Update returns a builder for updating this FAQ.
// Note that you need to call FAQ.Unwrap() before calling this method if this FAQ
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FAQ) Update() *FAQUpdateOne {
	return NewFAQClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FAQ entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FAQ) Unwrap() *FAQ {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FAQ is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FAQ) String() string {
	var builder strings.Builder
	builder.WriteString("FAQ(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("listing_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ListingID))
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("display_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisplayOrder))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FAQs is a parsable slice of FAQ.
type FAQs []*FAQ
