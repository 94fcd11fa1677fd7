// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bestofgoa/bok/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCategory, v))
}

// BusinessName applies equality check predicate on the "business_name" field. It's identical to BusinessNameEQ.
func BusinessName(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBusinessName, v))
}

// BusinessAddress applies equality check predicate on the "business_address" field. It's identical to BusinessAddressEQ.
func BusinessAddress(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBusinessAddress, v))
}

// BusinessPhone applies equality check predicate on the "business_phone" field. It's identical to BusinessPhoneEQ.
func BusinessPhone(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBusinessPhone, v))
}

// BusinessWebsite applies equality check predicate on the "business_website" field. It's identical to BusinessWebsiteEQ.
func BusinessWebsite(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBusinessWebsite, v))
}

// SubmitterName applies equality check predicate on the "submitter_name" field. It's identical to SubmitterNameEQ.
func SubmitterName(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterName, v))
}

// SubmitterEmail applies equality check predicate on the "submitter_email" field. It's identical to SubmitterEmailEQ.
func SubmitterEmail(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterEmail, v))
}

// SubmitterPhone applies equality check predicate on the "submitter_phone" field. It's identical to SubmitterPhoneEQ.
func SubmitterPhone(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterPhone, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDescription, v))
}

// AdminNotes applies equality check predicate on the "admin_notes" field. It's identical to AdminNotesEQ.
func AdminNotes(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldAdminNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldStatus, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldCategory, v))
}

// BusinessNameEQ applies the EQ predicate on the "business_name" field.
func BusinessNameEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBusinessName, v))
}

// BusinessNameNEQ applies the NEQ predicate on the "business_name" field.
func BusinessNameNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldBusinessName, v))
}

// BusinessNameIn applies the In predicate on the "business_name" field.
func BusinessNameIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldBusinessName, vs...))
}

// BusinessNameNotIn applies the NotIn predicate on the "business_name" field.
func BusinessNameNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldBusinessName, vs...))
}

// BusinessNameGT applies the GT predicate on the "business_name" field.
func BusinessNameGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldBusinessName, v))
}

// BusinessNameGTE applies the GTE predicate on the "business_name" field.
func BusinessNameGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldBusinessName, v))
}

// BusinessNameLT applies the LT predicate on the "business_name" field.
func BusinessNameLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldBusinessName, v))
}

// BusinessNameLTE applies the LTE predicate on the "business_name" field.
func BusinessNameLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldBusinessName, v))
}

// BusinessNameContains applies the Contains predicate on the "business_name" field.
func BusinessNameContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldBusinessName, v))
}

// BusinessNameHasPrefix applies the HasPrefix predicate on the "business_name" field.
func BusinessNameHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldBusinessName, v))
}

// BusinessNameHasSuffix applies the HasSuffix predicate on the "business_name" field.
func BusinessNameHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldBusinessName, v))
}

// BusinessNameEqualFold applies the EqualFold predicate on the "business_name" field.
func BusinessNameEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldBusinessName, v))
}

// BusinessNameContainsFold applies the ContainsFold predicate on the "business_name" field.
func BusinessNameContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldBusinessName, v))
}

// BusinessAddressEQ applies the EQ predicate on the "business_address" field.
func BusinessAddressEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBusinessAddress, v))
}

// BusinessAddressNEQ applies the NEQ predicate on the "business_address" field.
func BusinessAddressNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldBusinessAddress, v))
}

// BusinessAddressIn applies the In predicate on the "business_address" field.
func BusinessAddressIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldBusinessAddress, vs...))
}

// BusinessAddressNotIn applies the NotIn predicate on the "business_address" field.
func BusinessAddressNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldBusinessAddress, vs...))
}

// BusinessAddressGT applies the GT predicate on the "business_address" field.
func BusinessAddressGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldBusinessAddress, v))
}

// BusinessAddressGTE applies the GTE predicate on the "business_address" field.
func BusinessAddressGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldBusinessAddress, v))
}

// BusinessAddressLT applies the LT predicate on the "business_address" field.
func BusinessAddressLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldBusinessAddress, v))
}

// BusinessAddressLTE applies the LTE predicate on the "business_address" field.
func BusinessAddressLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldBusinessAddress, v))
}

// BusinessAddressContains applies the Contains predicate on the "business_address" field.
func BusinessAddressContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldBusinessAddress, v))
}

// BusinessAddressHasPrefix applies the HasPrefix predicate on the "business_address" field.
func BusinessAddressHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldBusinessAddress, v))
}

// BusinessAddressHasSuffix applies the HasSuffix predicate on the "business_address" field.
func BusinessAddressHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldBusinessAddress, v))
}

// BusinessAddressIsNil applies the IsNil predicate on the "business_address" field.
func BusinessAddressIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldBusinessAddress))
}

// BusinessAddressNotNil applies the NotNil predicate on the "business_address" field.
func BusinessAddressNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldBusinessAddress))
}

// BusinessAddressEqualFold applies the EqualFold predicate on the "business_address" field.
func BusinessAddressEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldBusinessAddress, v))
}

// BusinessAddressContainsFold applies the ContainsFold predicate on the "business_address" field.
func BusinessAddressContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldBusinessAddress, v))
}

// BusinessPhoneEQ applies the EQ predicate on the "business_phone" field.
func BusinessPhoneEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBusinessPhone, v))
}

// BusinessPhoneNEQ applies the NEQ predicate on the "business_phone" field.
func BusinessPhoneNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldBusinessPhone, v))
}

// BusinessPhoneIn applies the In predicate on the "business_phone" field.
func BusinessPhoneIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldBusinessPhone, vs...))
}

// BusinessPhoneNotIn applies the NotIn predicate on the "business_phone" field.
func BusinessPhoneNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldBusinessPhone, vs...))
}

// BusinessPhoneGT applies the GT predicate on the "business_phone" field.
func BusinessPhoneGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldBusinessPhone, v))
}

// BusinessPhoneGTE applies the GTE predicate on the "business_phone" field.
func BusinessPhoneGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldBusinessPhone, v))
}

// BusinessPhoneLT applies the LT predicate on the "business_phone" field.
func BusinessPhoneLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldBusinessPhone, v))
}

// BusinessPhoneLTE applies the LTE predicate on the "business_phone" field.
func BusinessPhoneLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldBusinessPhone, v))
}

// BusinessPhoneContains applies the Contains predicate on the "business_phone" field.
func BusinessPhoneContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldBusinessPhone, v))
}

// BusinessPhoneHasPrefix applies the HasPrefix predicate on the "business_phone" field.
func BusinessPhoneHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldBusinessPhone, v))
}

// BusinessPhoneHasSuffix applies the HasSuffix predicate on the "business_phone" field.
func BusinessPhoneHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldBusinessPhone, v))
}

// BusinessPhoneIsNil applies the IsNil predicate on the "business_phone" field.
func BusinessPhoneIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldBusinessPhone))
}

// BusinessPhoneNotNil applies the NotNil predicate on the "business_phone" field.
func BusinessPhoneNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldBusinessPhone))
}

// BusinessPhoneEqualFold applies the EqualFold predicate on the "business_phone" field.
func BusinessPhoneEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldBusinessPhone, v))
}

// BusinessPhoneContainsFold applies the ContainsFold predicate on the "business_phone" field.
func BusinessPhoneContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldBusinessPhone, v))
}

// BusinessWebsiteEQ applies the EQ predicate on the "business_website" field.
func BusinessWebsiteEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldBusinessWebsite, v))
}

// BusinessWebsiteNEQ applies the NEQ predicate on the "business_website" field.
func BusinessWebsiteNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldBusinessWebsite, v))
}

// BusinessWebsiteIn applies the In predicate on the "business_website" field.
func BusinessWebsiteIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldBusinessWebsite, vs...))
}

// BusinessWebsiteNotIn applies the NotIn predicate on the "business_website" field.
func BusinessWebsiteNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldBusinessWebsite, vs...))
}

// BusinessWebsiteGT applies the GT predicate on the "business_website" field.
func BusinessWebsiteGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldBusinessWebsite, v))
}

// BusinessWebsiteGTE applies the GTE predicate on the "business_website" field.
func BusinessWebsiteGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldBusinessWebsite, v))
}

// BusinessWebsiteLT applies the LT predicate on the "business_website" field.
func BusinessWebsiteLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldBusinessWebsite, v))
}

// BusinessWebsiteLTE applies the LTE predicate on the "business_website" field.
func BusinessWebsiteLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldBusinessWebsite, v))
}

// BusinessWebsiteContains applies the Contains predicate on the "business_website" field.
func BusinessWebsiteContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldBusinessWebsite, v))
}

// BusinessWebsiteHasPrefix applies the HasPrefix predicate on the "business_website" field.
func BusinessWebsiteHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldBusinessWebsite, v))
}

// BusinessWebsiteHasSuffix applies the HasSuffix predicate on the "business_website" field.
func BusinessWebsiteHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldBusinessWebsite, v))
}

// BusinessWebsiteIsNil applies the IsNil predicate on the "business_website" field.
func BusinessWebsiteIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldBusinessWebsite))
}

// BusinessWebsiteNotNil applies the NotNil predicate on the "business_website" field.
func BusinessWebsiteNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldBusinessWebsite))
}

// BusinessWebsiteEqualFold applies the EqualFold predicate on the "business_website" field.
func BusinessWebsiteEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldBusinessWebsite, v))
}

// BusinessWebsiteContainsFold applies the ContainsFold predicate on the "business_website" field.
func BusinessWebsiteContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldBusinessWebsite, v))
}

// SubmitterNameEQ applies the EQ predicate on the "submitter_name" field.
func SubmitterNameEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterName, v))
}

// SubmitterNameNEQ applies the NEQ predicate on the "submitter_name" field.
func SubmitterNameNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmitterName, v))
}

// SubmitterNameIn applies the In predicate on the "submitter_name" field.
func SubmitterNameIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmitterName, vs...))
}

// SubmitterNameNotIn applies the NotIn predicate on the "submitter_name" field.
func SubmitterNameNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmitterName, vs...))
}

// SubmitterNameGT applies the GT predicate on the "submitter_name" field.
func SubmitterNameGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmitterName, v))
}

// SubmitterNameGTE applies the GTE predicate on the "submitter_name" field.
func SubmitterNameGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmitterName, v))
}

// SubmitterNameLT applies the LT predicate on the "submitter_name" field.
func SubmitterNameLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmitterName, v))
}

// SubmitterNameLTE applies the LTE predicate on the "submitter_name" field.
func SubmitterNameLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmitterName, v))
}

// SubmitterNameContains applies the Contains predicate on the "submitter_name" field.
func SubmitterNameContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldSubmitterName, v))
}

// SubmitterNameHasPrefix applies the HasPrefix predicate on the "submitter_name" field.
func SubmitterNameHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldSubmitterName, v))
}

// SubmitterNameHasSuffix applies the HasSuffix predicate on the "submitter_name" field.
func SubmitterNameHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldSubmitterName, v))
}

// SubmitterNameEqualFold applies the EqualFold predicate on the "submitter_name" field.
func SubmitterNameEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldSubmitterName, v))
}

// SubmitterNameContainsFold applies the ContainsFold predicate on the "submitter_name" field.
func SubmitterNameContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldSubmitterName, v))
}

// SubmitterEmailEQ applies the EQ predicate on the "submitter_email" field.
func SubmitterEmailEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterEmail, v))
}

// SubmitterEmailNEQ applies the NEQ predicate on the "submitter_email" field.
func SubmitterEmailNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmitterEmail, v))
}

// SubmitterEmailIn applies the In predicate on the "submitter_email" field.
func SubmitterEmailIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmitterEmail, vs...))
}

// SubmitterEmailNotIn applies the NotIn predicate on the "submitter_email" field.
func SubmitterEmailNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmitterEmail, vs...))
}

// SubmitterEmailGT applies the GT predicate on the "submitter_email" field.
func SubmitterEmailGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmitterEmail, v))
}

// SubmitterEmailGTE applies the GTE predicate on the "submitter_email" field.
func SubmitterEmailGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmitterEmail, v))
}

// SubmitterEmailLT applies the LT predicate on the "submitter_email" field.
func SubmitterEmailLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmitterEmail, v))
}

// SubmitterEmailLTE applies the LTE predicate on the "submitter_email" field.
func SubmitterEmailLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmitterEmail, v))
}

// SubmitterEmailContains applies the Contains predicate on the "submitter_email" field.
func SubmitterEmailContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldSubmitterEmail, v))
}

// SubmitterEmailHasPrefix applies the HasPrefix predicate on the "submitter_email" field.
func SubmitterEmailHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldSubmitterEmail, v))
}

// SubmitterEmailHasSuffix applies the HasSuffix predicate on the "submitter_email" field.
func SubmitterEmailHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldSubmitterEmail, v))
}

// SubmitterEmailEqualFold applies the EqualFold predicate on the "submitter_email" field.
func SubmitterEmailEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldSubmitterEmail, v))
}

// SubmitterEmailContainsFold applies the ContainsFold predicate on the "submitter_email" field.
func SubmitterEmailContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldSubmitterEmail, v))
}

// SubmitterPhoneEQ applies the EQ predicate on the "submitter_phone" field.
func SubmitterPhoneEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterPhone, v))
}

// SubmitterPhoneNEQ applies the NEQ predicate on the "submitter_phone" field.
func SubmitterPhoneNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmitterPhone, v))
}

// SubmitterPhoneIn applies the In predicate on the "submitter_phone" field.
func SubmitterPhoneIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmitterPhone, vs...))
}

// SubmitterPhoneNotIn applies the NotIn predicate on the "submitter_phone" field.
func SubmitterPhoneNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmitterPhone, vs...))
}

// SubmitterPhoneGT applies the GT predicate on the "submitter_phone" field.
func SubmitterPhoneGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmitterPhone, v))
}

// SubmitterPhoneGTE applies the GTE predicate on the "submitter_phone" field.
func SubmitterPhoneGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmitterPhone, v))
}

// SubmitterPhoneLT applies the LT predicate on the "submitter_phone" field.
func SubmitterPhoneLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmitterPhone, v))
}

// SubmitterPhoneLTE applies the LTE predicate on the "submitter_phone" field.
func SubmitterPhoneLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmitterPhone, v))
}

// SubmitterPhoneContains applies the Contains predicate on the "submitter_phone" field.
func SubmitterPhoneContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldSubmitterPhone, v))
}

// SubmitterPhoneHasPrefix applies the HasPrefix predicate on the "submitter_phone" field.
func SubmitterPhoneHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldSubmitterPhone, v))
}

// SubmitterPhoneHasSuffix applies the HasSuffix predicate on the "submitter_phone" field.
func SubmitterPhoneHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldSubmitterPhone, v))
}

// SubmitterPhoneIsNil applies the IsNil predicate on the "submitter_phone" field.
func SubmitterPhoneIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldSubmitterPhone))
}

// SubmitterPhoneNotNil applies the NotNil predicate on the "submitter_phone" field.
func SubmitterPhoneNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldSubmitterPhone))
}

// SubmitterPhoneEqualFold applies the EqualFold predicate on the "submitter_phone" field.
func SubmitterPhoneEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldSubmitterPhone, v))
}

// SubmitterPhoneContainsFold applies the ContainsFold predicate on the "submitter_phone" field.
func SubmitterPhoneContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldSubmitterPhone, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldDescription, v))
}

// AdminNotesEQ applies the EQ predicate on the "admin_notes" field.
func AdminNotesEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldAdminNotes, v))
}

// AdminNotesNEQ applies the NEQ predicate on the "admin_notes" field.
func AdminNotesNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldAdminNotes, v))
}

// AdminNotesIn applies the In predicate on the "admin_notes" field.
func AdminNotesIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldAdminNotes, vs...))
}

// AdminNotesNotIn applies the NotIn predicate on the "admin_notes" field.
func AdminNotesNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldAdminNotes, vs...))
}

// AdminNotesGT applies the GT predicate on the "admin_notes" field.
func AdminNotesGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldAdminNotes, v))
}

// AdminNotesGTE applies the GTE predicate on the "admin_notes" field.
func AdminNotesGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldAdminNotes, v))
}

// AdminNotesLT applies the LT predicate on the "admin_notes" field.
func AdminNotesLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldAdminNotes, v))
}

// AdminNotesLTE applies the LTE predicate on the "admin_notes" field.
func AdminNotesLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldAdminNotes, v))
}

// AdminNotesContains applies the Contains predicate on the "admin_notes" field.
func AdminNotesContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldAdminNotes, v))
}

// AdminNotesHasPrefix applies the HasPrefix predicate on the "admin_notes" field.
func AdminNotesHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldAdminNotes, v))
}

// AdminNotesHasSuffix applies the HasSuffix predicate on the "admin_notes" field.
func AdminNotesHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldAdminNotes, v))
}

// AdminNotesIsNil applies the IsNil predicate on the "admin_notes" field.
func AdminNotesIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldAdminNotes))
}

// AdminNotesNotNil applies the NotNil predicate on the "admin_notes" field.
func AdminNotesNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldAdminNotes))
}

// AdminNotesEqualFold applies the EqualFold predicate on the "admin_notes" field.
func AdminNotesEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldAdminNotes, v))
}

// AdminNotesContainsFold applies the ContainsFold predicate on the "admin_notes" field.
func AdminNotesContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldAdminNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
