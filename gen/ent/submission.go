// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bestofgoa/bok/gen/ent/submission"
	"github.com/google/uuid"
)

// Submission is the model entity for the Submission schema.
type Submission struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// BusinessName holds the value of the "business_name" field.
	BusinessName string `json:"business_name,omitempty"`
	// BusinessAddress holds the value of the "business_address" field.
	BusinessAddress string `json:"business_address,omitempty"`
	// BusinessPhone holds the value of the "business_phone" field.
	BusinessPhone string `json:"business_phone,omitempty"`
	// BusinessWebsite holds the value of the "business_website" field.
	BusinessWebsite string `json:"business_website,omitempty"`
	// SubmitterName holds the value of the "submitter_name" field.
	SubmitterName string `json:"submitter_name,omitempty"`
	// SubmitterEmail holds the value of the "submitter_email" field.
	SubmitterEmail string `json:"submitter_email,omitempty"`
	// SubmitterPhone holds the value of the "submitter_phone" field.
	SubmitterPhone string `json:"submitter_phone,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// AdminNotes holds the value of the "admin_notes" field.
	AdminNotes string `json:"admin_notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Submission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submission.FieldStatus, submission.FieldCategory, submission.FieldBusinessName, submission.FieldBusinessAddress, submission.FieldBusinessPhone, submission.FieldBusinessWebsite, submission.FieldSubmitterName, submission.FieldSubmitterEmail, submission.FieldSubmitterPhone, submission.FieldDescription, submission.FieldAdminNotes:
			values[i] = new(sql.NullString)
		case submission.FieldCreatedAt, submission.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case submission.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Submission fields.
func (_m *Submission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submission.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case submission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case submission.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case submission.FieldBusinessName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_name", values[i])
			} else if value.Valid {
				_m.BusinessName = value.String
			}
		case submission.FieldBusinessAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_address", values[i])
			} else if value.Valid {
				_m.BusinessAddress = value.String
			}
		case submission.FieldBusinessPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_phone", values[i])
			} else if value.Valid {
				_m.BusinessPhone = value.String
			}
		case submission.FieldBusinessWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_website", values[i])
			} else if value.Valid {
				_m.BusinessWebsite = value.String
			}
		case submission.FieldSubmitterName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitter_name", values[i])
			} else if value.Valid {
				_m.SubmitterName = value.String
			}
		case submission.FieldSubmitterEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitter_email", values[i])
			} else if value.Valid {
				_m.SubmitterEmail = value.String
			}
		case submission.FieldSubmitterPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitter_phone", values[i])
			} else if value.Valid {
				_m.SubmitterPhone = value.String
			}
		case submission.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case submission.FieldAdminNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_notes", values[i])
			} else if value.Valid {
				_m.AdminNotes = value.String
			}
		case submission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case submission.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Submission.
// This includes values selected through modifiers, order, etc.
func (_m *Submission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Submission.
// Note that you need to call Submission.Unwrap() before calling this method if this Submission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Submission) Update() *SubmissionUpdateOne {
	return NewSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Submission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Submission) Unwrap() *Submission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Submission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Submission) String() string {
	var builder strings.Builder
	builder.WriteString("Submission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("business_name=")
	builder.WriteString(_m.BusinessName)
	builder.WriteString(", ")
	builder.WriteString("business_address=")
	builder.WriteString(_m.BusinessAddress)
	builder.WriteString(", ")
	builder.WriteString("business_phone=")
	builder.WriteString(_m.BusinessPhone)
	builder.WriteString(", ")
	builder.WriteString("business_website=")
	builder.WriteString(_m.BusinessWebsite)
	builder.WriteString(", ")
	builder.WriteString("submitter_name=")
	builder.WriteString(_m.SubmitterName)
	builder.WriteString(", ")
	builder.WriteString("submitter_email=")
	builder.WriteString(_m.SubmitterEmail)
	builder.WriteString(", ")
	builder.WriteString("submitter_phone=")
	builder.WriteString(_m.SubmitterPhone)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("admin_notes=")
	builder.WriteString(_m.AdminNotes)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Submissions is a parsable slice of Submission.
type Submissions []*Submission
