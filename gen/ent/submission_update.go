// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bestofgoa/bok/gen/ent/predicate"
	"github.com/bestofgoa/bok/gen/ent/submission"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdate) SetStatus(v string) *SubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStatus(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *SubmissionUpdate) SetCategory(v string) *SubmissionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableCategory(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *SubmissionUpdate) SetBusinessName(v string) *SubmissionUpdate {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableBusinessName(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetBusinessAddress sets the "business_address" field.
func (_u *SubmissionUpdate) SetBusinessAddress(v string) *SubmissionUpdate {
	_u.mutation.SetBusinessAddress(v)
	return _u
}

// SetNillableBusinessAddress sets the "business_address" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableBusinessAddress(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetBusinessAddress(*v)
	}
	return _u
}

// ClearBusinessAddress clears the value of the "business_address" field.
func (_u *SubmissionUpdate) ClearBusinessAddress() *SubmissionUpdate {
	_u.mutation.ClearBusinessAddress()
	return _u
}

// SetBusinessPhone sets the "business_phone" field.
func (_u *SubmissionUpdate) SetBusinessPhone(v string) *SubmissionUpdate {
	_u.mutation.SetBusinessPhone(v)
	return _u
}

// SetNillableBusinessPhone sets the "business_phone" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableBusinessPhone(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetBusinessPhone(*v)
	}
	return _u
}

// ClearBusinessPhone clears the value of the "business_phone" field.
func (_u *SubmissionUpdate) ClearBusinessPhone() *SubmissionUpdate {
	_u.mutation.ClearBusinessPhone()
	return _u
}

// SetBusinessWebsite sets the "business_website" field.
func (_u *SubmissionUpdate) SetBusinessWebsite(v string) *SubmissionUpdate {
	_u.mutation.SetBusinessWebsite(v)
	return _u
}

// SetNillableBusinessWebsite sets the "business_website" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableBusinessWebsite(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetBusinessWebsite(*v)
	}
	return _u
}

// ClearBusinessWebsite clears the value of the "business_website" field.
func (_u *SubmissionUpdate) ClearBusinessWebsite() *SubmissionUpdate {
	_u.mutation.ClearBusinessWebsite()
	return _u
}

// SetSubmitterName sets the "submitter_name" field.
func (_u *SubmissionUpdate) SetSubmitterName(v string) *SubmissionUpdate {
	_u.mutation.SetSubmitterName(v)
	return _u
}

// SetNillableSubmitterName sets the "submitter_name" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmitterName(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmitterName(*v)
	}
	return _u
}

// SetSubmitterEmail sets the "submitter_email" field.
func (_u *SubmissionUpdate) SetSubmitterEmail(v string) *SubmissionUpdate {
	_u.mutation.SetSubmitterEmail(v)
	return _u
}

// SetNillableSubmitterEmail sets the "submitter_email" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmitterEmail(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmitterEmail(*v)
	}
	return _u
}

// SetSubmitterPhone sets the "submitter_phone" field.
func (_u *SubmissionUpdate) SetSubmitterPhone(v string) *SubmissionUpdate {
	_u.mutation.SetSubmitterPhone(v)
	return _u
}

// SetNillableSubmitterPhone sets the "submitter_phone" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubmitterPhone(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSubmitterPhone(*v)
	}
	return _u
}

// ClearSubmitterPhone clears the value of the "submitter_phone" field.
func (_u *SubmissionUpdate) ClearSubmitterPhone() *SubmissionUpdate {
	_u.mutation.ClearSubmitterPhone()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubmissionUpdate) SetDescription(v string) *SubmissionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableDescription(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SubmissionUpdate) ClearDescription() *SubmissionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAdminNotes sets the "admin_notes" field.
func (_u *SubmissionUpdate) SetAdminNotes(v string) *SubmissionUpdate {
	_u.mutation.SetAdminNotes(v)
	return _u
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAdminNotes(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetAdminNotes(*v)
	}
	return _u
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (_u *SubmissionUpdate) ClearAdminNotes() *SubmissionUpdate {
	_u.mutation.ClearAdminNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SubmissionUpdate) SetCreatedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableCreatedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdate) SetUpdatedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := submission.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Submission.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessName(); ok {
		if err := submission.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Submission.business_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmitterName(); ok {
		if err := submission.SubmitterNameValidator(v); err != nil {
			return &ValidationError{Name: "submitter_name", err: fmt.Errorf(`ent: validator failed for field "Submission.submitter_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmitterEmail(); ok {
		if err := submission.SubmitterEmailValidator(v); err != nil {
			return &ValidationError{Name: "submitter_email", err: fmt.Errorf(`ent: validator failed for field "Submission.submitter_email": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(submission.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(submission.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessAddress(); ok {
		_spec.SetField(submission.FieldBusinessAddress, field.TypeString, value)
	}
	if _u.mutation.BusinessAddressCleared() {
		_spec.ClearField(submission.FieldBusinessAddress, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessPhone(); ok {
		_spec.SetField(submission.FieldBusinessPhone, field.TypeString, value)
	}
	if _u.mutation.BusinessPhoneCleared() {
		_spec.ClearField(submission.FieldBusinessPhone, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessWebsite(); ok {
		_spec.SetField(submission.FieldBusinessWebsite, field.TypeString, value)
	}
	if _u.mutation.BusinessWebsiteCleared() {
		_spec.ClearField(submission.FieldBusinessWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.SubmitterName(); ok {
		_spec.SetField(submission.FieldSubmitterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmitterEmail(); ok {
		_spec.SetField(submission.FieldSubmitterEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmitterPhone(); ok {
		_spec.SetField(submission.FieldSubmitterPhone, field.TypeString, value)
	}
	if _u.mutation.SubmitterPhoneCleared() {
		_spec.ClearField(submission.FieldSubmitterPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(submission.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(submission.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AdminNotes(); ok {
		_spec.SetField(submission.FieldAdminNotes, field.TypeString, value)
	}
	if _u.mutation.AdminNotesCleared() {
		_spec.ClearField(submission.FieldAdminNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdateOne) SetStatus(v string) *SubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStatus(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *SubmissionUpdateOne) SetCategory(v string) *SubmissionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableCategory(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *SubmissionUpdateOne) SetBusinessName(v string) *SubmissionUpdateOne {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableBusinessName(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetBusinessAddress sets the "business_address" field.
func (_u *SubmissionUpdateOne) SetBusinessAddress(v string) *SubmissionUpdateOne {
	_u.mutation.SetBusinessAddress(v)
	return _u
}

// SetNillableBusinessAddress sets the "business_address" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableBusinessAddress(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetBusinessAddress(*v)
	}
	return _u
}

// ClearBusinessAddress clears the value of the "business_address" field.
func (_u *SubmissionUpdateOne) ClearBusinessAddress() *SubmissionUpdateOne {
	_u.mutation.ClearBusinessAddress()
	return _u
}

// SetBusinessPhone sets the "business_phone" field.
func (_u *SubmissionUpdateOne) SetBusinessPhone(v string) *SubmissionUpdateOne {
	_u.mutation.SetBusinessPhone(v)
	return _u
}

// SetNillableBusinessPhone sets the "business_phone" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableBusinessPhone(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetBusinessPhone(*v)
	}
	return _u
}

// ClearBusinessPhone clears the value of the "business_phone" field.
func (_u *SubmissionUpdateOne) ClearBusinessPhone() *SubmissionUpdateOne {
	_u.mutation.ClearBusinessPhone()
	return _u
}

// SetBusinessWebsite sets the "business_website" field.
func (_u *SubmissionUpdateOne) SetBusinessWebsite(v string) *SubmissionUpdateOne {
	_u.mutation.SetBusinessWebsite(v)
	return _u
}

// SetNillableBusinessWebsite sets the "business_website" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableBusinessWebsite(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetBusinessWebsite(*v)
	}
	return _u
}

// ClearBusinessWebsite clears the value of the "business_website" field.
func (_u *SubmissionUpdateOne) ClearBusinessWebsite() *SubmissionUpdateOne {
	_u.mutation.ClearBusinessWebsite()
	return _u
}

// SetSubmitterName sets the "submitter_name" field.
func (_u *SubmissionUpdateOne) SetSubmitterName(v string) *SubmissionUpdateOne {
	_u.mutation.SetSubmitterName(v)
	return _u
}

// SetNillableSubmitterName sets the "submitter_name" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmitterName(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmitterName(*v)
	}
	return _u
}

// SetSubmitterEmail sets the "submitter_email" field.
func (_u *SubmissionUpdateOne) SetSubmitterEmail(v string) *SubmissionUpdateOne {
	_u.mutation.SetSubmitterEmail(v)
	return _u
}

// SetNillableSubmitterEmail sets the "submitter_email" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmitterEmail(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmitterEmail(*v)
	}
	return _u
}

// SetSubmitterPhone sets the "submitter_phone" field.
func (_u *SubmissionUpdateOne) SetSubmitterPhone(v string) *SubmissionUpdateOne {
	_u.mutation.SetSubmitterPhone(v)
	return _u
}

// SetNillableSubmitterPhone sets the "submitter_phone" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubmitterPhone(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubmitterPhone(*v)
	}
	return _u
}

// ClearSubmitterPhone clears the value of the "submitter_phone" field.
func (_u *SubmissionUpdateOne) ClearSubmitterPhone() *SubmissionUpdateOne {
	_u.mutation.ClearSubmitterPhone()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubmissionUpdateOne) SetDescription(v string) *SubmissionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableDescription(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SubmissionUpdateOne) ClearDescription() *SubmissionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAdminNotes sets the "admin_notes" field.
func (_u *SubmissionUpdateOne) SetAdminNotes(v string) *SubmissionUpdateOne {
	_u.mutation.SetAdminNotes(v)
	return _u
}

// SetNillableAdminNotes sets the "admin_notes" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAdminNotes(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAdminNotes(*v)
	}
	return _u
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (_u *SubmissionUpdateOne) ClearAdminNotes() *SubmissionUpdateOne {
	_u.mutation.ClearAdminNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SubmissionUpdateOne) SetCreatedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableCreatedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdateOne) SetUpdatedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := submission.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Submission.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessName(); ok {
		if err := submission.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "Submission.business_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmitterName(); ok {
		if err := submission.SubmitterNameValidator(v); err != nil {
			return &ValidationError{Name: "submitter_name", err: fmt.Errorf(`ent: validator failed for field "Submission.submitter_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmitterEmail(); ok {
		if err := submission.SubmitterEmailValidator(v); err != nil {
			return &ValidationError{Name: "submitter_email", err: fmt.Errorf(`ent: validator failed for field "Submission.submitter_email": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(submission.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(submission.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessAddress(); ok {
		_spec.SetField(submission.FieldBusinessAddress, field.TypeString, value)
	}
	if _u.mutation.BusinessAddressCleared() {
		_spec.ClearField(submission.FieldBusinessAddress, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessPhone(); ok {
		_spec.SetField(submission.FieldBusinessPhone, field.TypeString, value)
	}
	if _u.mutation.BusinessPhoneCleared() {
		_spec.ClearField(submission.FieldBusinessPhone, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessWebsite(); ok {
		_spec.SetField(submission.FieldBusinessWebsite, field.TypeString, value)
	}
	if _u.mutation.BusinessWebsiteCleared() {
		_spec.ClearField(submission.FieldBusinessWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.SubmitterName(); ok {
		_spec.SetField(submission.FieldSubmitterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmitterEmail(); ok {
		_spec.SetField(submission.FieldSubmitterEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmitterPhone(); ok {
		_spec.SetField(submission.FieldSubmitterPhone, field.TypeString, value)
	}
	if _u.mutation.SubmitterPhoneCleared() {
		_spec.ClearField(submission.FieldSubmitterPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(submission.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(submission.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AdminNotes(); ok {
		_spec.SetField(submission.FieldAdminNotes, field.TypeString, value)
	}
	if _u.mutation.AdminNotesCleared() {
		_spec.ClearField(submission.FieldAdminNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
