// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bestofgoa/bok/db/ent/schema"
	"github.com/bestofgoa/bok/gen/ent/attribute"
	"github.com/bestofgoa/bok/gen/ent/faq"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/bestofgoa/bok/gen/ent/listingimage"
	"github.com/bestofgoa/bok/gen/ent/submission"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attributeFields := schema.Attribute{}.Fields()
	_ = attributeFields
	// attributeDescKind is the schema descriptor for kind field.
	attributeDescKind := attributeFields[0].Descriptor()
	// attribute.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	attribute.KindValidator = attributeDescKind.Validators[0].(func(string) error)
	// attributeDescName is the schema descriptor for name field.
	attributeDescName := attributeFields[1].Descriptor()
	// attribute.NameValidator is a validator for the "name" field. It is called by the builders before save.
	attribute.NameValidator = attributeDescName.Validators[0].(func(string) error)
	// attributeDescSlug is the schema descriptor for slug field.
	attributeDescSlug := attributeFields[2].Descriptor()
	// attribute.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	attribute.SlugValidator = attributeDescSlug.Validators[0].(func(string) error)
	faqFields := schema.FAQ{}.Fields()
	_ = faqFields
	// faqDescQuestion is the schema descriptor for question field.
	faqDescQuestion := faqFields[2].Descriptor()
	// faq.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	faq.QuestionValidator = faqDescQuestion.Validators[0].(func(string) error)
	// faqDescAnswer is the schema descriptor for answer field.
	faqDescAnswer := faqFields[3].Descriptor()
	// faq.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	faq.AnswerValidator = faqDescAnswer.Validators[0].(func(string) error)
	// faqDescDisplayOrder is the schema descriptor for display_order field.
	faqDescDisplayOrder := faqFields[4].Descriptor()
	// faq.DefaultDisplayOrder holds the default value on creation for the display_order field.
	faq.DefaultDisplayOrder = faqDescDisplayOrder.Default.(int)
	// faqDescCreatedAt is the schema descriptor for created_at field.
	faqDescCreatedAt := faqFields[5].Descriptor()
	// faq.DefaultCreatedAt holds the default value on creation for the created_at field.
	faq.DefaultCreatedAt = faqDescCreatedAt.Default.(func() time.Time)
	// faqDescID is the schema descriptor for id field.
	faqDescID := faqFields[0].Descriptor()
	// faq.DefaultID holds the default value on creation for the id field.
	faq.DefaultID = faqDescID.Default.(func() uuid.UUID)
	listingFields := schema.Listing{}.Fields()
	_ = listingFields
	// listingDescEntityType is the schema descriptor for entity_type field.
	listingDescEntityType := listingFields[1].Descriptor()
	// listing.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	listing.EntityTypeValidator = func() func(string) error {
		validators := listingDescEntityType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(entity_type string) error {
			for _, fn := range fns {
				if err := fn(entity_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// listingDescName is the schema descriptor for name field.
	listingDescName := listingFields[2].Descriptor()
	// listing.NameValidator is a validator for the "name" field. It is called by the builders before save.
	listing.NameValidator = listingDescName.Validators[0].(func(string) error)
	// listingDescSlug is the schema descriptor for slug field.
	listingDescSlug := listingFields[3].Descriptor()
	// listing.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	listing.SlugValidator = listingDescSlug.Validators[0].(func(string) error)
	// listingDescPriceLevel is the schema descriptor for price_level field.
	listingDescPriceLevel := listingFields[19].Descriptor()
	// listing.DefaultPriceLevel holds the default value on creation for the price_level field.
	listing.DefaultPriceLevel = listingDescPriceLevel.Default.(int)
	// listing.PriceLevelValidator is a validator for the "price_level" field. It is called by the builders before save.
	listing.PriceLevelValidator = func() func(int) error {
		validators := listingDescPriceLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(price_level int) error {
			for _, fn := range fns {
				if err := fn(price_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// listingDescReviewCount is the schema descriptor for review_count field.
	listingDescReviewCount := listingFields[22].Descriptor()
	// listing.DefaultReviewCount holds the default value on creation for the review_count field.
	listing.DefaultReviewCount = listingDescReviewCount.Default.(int)
	// listingDescActive is the schema descriptor for active field.
	listingDescActive := listingFields[24].Descriptor()
	// listing.DefaultActive holds the default value on creation for the active field.
	listing.DefaultActive = listingDescActive.Default.(bool)
	// listingDescVerified is the schema descriptor for verified field.
	listingDescVerified := listingFields[25].Descriptor()
	// listing.DefaultVerified holds the default value on creation for the verified field.
	listing.DefaultVerified = listingDescVerified.Default.(bool)
	// listingDescFeatured is the schema descriptor for featured field.
	listingDescFeatured := listingFields[26].Descriptor()
	// listing.DefaultFeatured holds the default value on creation for the featured field.
	listing.DefaultFeatured = listingDescFeatured.Default.(bool)
	// listingDescCreatedAt is the schema descriptor for created_at field.
	listingDescCreatedAt := listingFields[29].Descriptor()
	// listing.DefaultCreatedAt holds the default value on creation for the created_at field.
	listing.DefaultCreatedAt = listingDescCreatedAt.Default.(func() time.Time)
	// listingDescUpdatedAt is the schema descriptor for updated_at field.
	listingDescUpdatedAt := listingFields[30].Descriptor()
	// listing.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	listing.DefaultUpdatedAt = listingDescUpdatedAt.Default.(func() time.Time)
	// listing.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	listing.UpdateDefaultUpdatedAt = listingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// listingDescID is the schema descriptor for id field.
	listingDescID := listingFields[0].Descriptor()
	// listing.DefaultID holds the default value on creation for the id field.
	listing.DefaultID = listingDescID.Default.(func() uuid.UUID)
	listingimageFields := schema.ListingImage{}.Fields()
	_ = listingimageFields
	// listingimageDescURL is the schema descriptor for url field.
	listingimageDescURL := listingimageFields[2].Descriptor()
	// listingimage.URLValidator is a validator for the "url" field. It is called by the builders before save.
	listingimage.URLValidator = listingimageDescURL.Validators[0].(func(string) error)
	// listingimageDescStatus is the schema descriptor for status field.
	listingimageDescStatus := listingimageFields[4].Descriptor()
	// listingimage.DefaultStatus holds the default value on creation for the status field.
	listingimage.DefaultStatus = listingimageDescStatus.Default.(string)
	// listingimage.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	listingimage.StatusValidator = listingimageDescStatus.Validators[0].(func(string) error)
	// listingimageDescIsHero is the schema descriptor for is_hero field.
	listingimageDescIsHero := listingimageFields[5].Descriptor()
	// listingimage.DefaultIsHero holds the default value on creation for the is_hero field.
	listingimage.DefaultIsHero = listingimageDescIsHero.Default.(bool)
	// listingimageDescDisplayOrder is the schema descriptor for display_order field.
	listingimageDescDisplayOrder := listingimageFields[6].Descriptor()
	// listingimage.DefaultDisplayOrder holds the default value on creation for the display_order field.
	listingimage.DefaultDisplayOrder = listingimageDescDisplayOrder.Default.(int)
	// listingimageDescCreatedAt is the schema descriptor for created_at field.
	listingimageDescCreatedAt := listingimageFields[7].Descriptor()
	// listingimage.DefaultCreatedAt holds the default value on creation for the created_at field.
	listingimage.DefaultCreatedAt = listingimageDescCreatedAt.Default.(func() time.Time)
	// listingimageDescID is the schema descriptor for id field.
	listingimageDescID := listingimageFields[0].Descriptor()
	// listingimage.DefaultID holds the default value on creation for the id field.
	listingimage.DefaultID = listingimageDescID.Default.(func() uuid.UUID)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescStatus is the schema descriptor for status field.
	submissionDescStatus := submissionFields[1].Descriptor()
	// submission.DefaultStatus holds the default value on creation for the status field.
	submission.DefaultStatus = submissionDescStatus.Default.(string)
	// submission.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	submission.StatusValidator = submissionDescStatus.Validators[0].(func(string) error)
	// submissionDescCategory is the schema descriptor for category field.
	submissionDescCategory := submissionFields[2].Descriptor()
	// submission.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	submission.CategoryValidator = func() func(string) error {
		validators := submissionDescCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category string) error {
			for _, fn := range fns {
				if err := fn(category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// submissionDescBusinessName is the schema descriptor for business_name field.
	submissionDescBusinessName := submissionFields[3].Descriptor()
	// submission.BusinessNameValidator is a validator for the "business_name" field. It is called by the builders before save.
	submission.BusinessNameValidator = submissionDescBusinessName.Validators[0].(func(string) error)
	// submissionDescSubmitterName is the schema descriptor for submitter_name field.
	submissionDescSubmitterName := submissionFields[7].Descriptor()
	// submission.SubmitterNameValidator is a validator for the "submitter_name" field. It is called by the builders before save.
	submission.SubmitterNameValidator = submissionDescSubmitterName.Validators[0].(func(string) error)
	// submissionDescSubmitterEmail is the schema descriptor for submitter_email field.
	submissionDescSubmitterEmail := submissionFields[8].Descriptor()
	// submission.SubmitterEmailValidator is a validator for the "submitter_email" field. It is called by the builders before save.
	submission.SubmitterEmailValidator = submissionDescSubmitterEmail.Validators[0].(func(string) error)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[12].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionFields[13].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
	// submission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submission.UpdateDefaultUpdatedAt = submissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// submissionDescID is the schema descriptor for id field.
	submissionDescID := submissionFields[0].Descriptor()
	// submission.DefaultID holds the default value on creation for the id field.
	submission.DefaultID = submissionDescID.Default.(func() uuid.UUID)
}
