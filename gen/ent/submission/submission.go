// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the submission type in the database.
	Label = "submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldBusinessName holds the string denoting the business_name field in the database.
	FieldBusinessName = "business_name"
	// FieldBusinessAddress holds the string denoting the business_address field in the database.
	FieldBusinessAddress = "business_address"
	// FieldBusinessPhone holds the string denoting the business_phone field in the database.
	FieldBusinessPhone = "business_phone"
	// FieldBusinessWebsite holds the string denoting the business_website field in the database.
	FieldBusinessWebsite = "business_website"
	// FieldSubmitterName holds the string denoting the submitter_name field in the database.
	FieldSubmitterName = "submitter_name"
	// FieldSubmitterEmail holds the string denoting the submitter_email field in the database.
	FieldSubmitterEmail = "submitter_email"
	// FieldSubmitterPhone holds the string denoting the submitter_phone field in the database.
	FieldSubmitterPhone = "submitter_phone"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAdminNotes holds the string denoting the admin_notes field in the database.
	FieldAdminNotes = "admin_notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the submission in the database.
	Table = "submissions"
)

// Columns holds all SQL columns for submission fields.
var Columns = []string{
	FieldID,
	FieldStatus,
	FieldCategory,
	FieldBusinessName,
	FieldBusinessAddress,
	FieldBusinessPhone,
	FieldBusinessWebsite,
	FieldSubmitterName,
	FieldSubmitterEmail,
	FieldSubmitterPhone,
	FieldDescription,
	FieldAdminNotes,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// BusinessNameValidator is a validator for the "business_name" field. It is called by the builders before save.
	BusinessNameValidator func(string) error
	// SubmitterNameValidator is a validator for the "submitter_name" field. It is called by the builders before save.
	SubmitterNameValidator func(string) error
	// SubmitterEmailValidator is a validator for the "submitter_email" field. It is called by the builders before save.
	SubmitterEmailValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Submission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByBusinessName orders the results by the business_name field.
func ByBusinessName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessName, opts...).ToFunc()
}

// ByBusinessAddress orders the results by the business_address field.
func ByBusinessAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessAddress, opts...).ToFunc()
}

// ByBusinessPhone orders the results by the business_phone field.
func ByBusinessPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessPhone, opts...).ToFunc()
}

// ByBusinessWebsite orders the results by the business_website field.
func ByBusinessWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessWebsite, opts...).ToFunc()
}

// BySubmitterName orders the results by the submitter_name field.
func BySubmitterName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitterName, opts...).ToFunc()
}

// BySubmitterEmail orders the results by the submitter_email field.
func BySubmitterEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitterEmail, opts...).ToFunc()
}

// BySubmitterPhone orders the results by the submitter_phone field.
func BySubmitterPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitterPhone, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAdminNotes orders the results by the admin_notes field.
func ByAdminNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
