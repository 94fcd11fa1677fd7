package utils

import (
	"regexp"
	"strings"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/gen/ent"
	"github.com/bestofgoa/bok/internal/entity"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the immutable URL slug from a listing name.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func ToAttributeRef(a *ent.Attribute) entity.AttributeRef {
	return entity.AttributeRef{
		ID:   a.ID,
		Name: a.Name,
		Slug: a.Slug,
	}
}

func ToImage(e *ent.ListingImage) entity.Image {
	return entity.Image{
		ID:           e.ID,
		ListingID:    e.ListingID,
		URL:          e.URL,
		AltText:      e.AltText,
		Status:       constants.ImageStatus(e.Status),
		IsHero:       e.IsHero,
		DisplayOrder: e.DisplayOrder,
	}
}

func ToFAQ(e *ent.FAQ) entity.FAQ {
	return entity.FAQ{
		ID:           e.ID,
		ListingID:    e.ListingID,
		Question:     e.Question,
		Answer:       e.Answer,
		DisplayOrder: e.DisplayOrder,
	}
}

// ToListing converts an ent row (with whatever edges were loaded) to the
// transfer shape.
func ToListing(e *ent.Listing) *entity.Listing {
	l := &entity.Listing{
		ID:               e.ID,
		EntityType:       constants.EntityType(e.EntityType),
		Name:             e.Name,
		Slug:             e.Slug,
		GooglePlaceID:    e.GooglePlaceID,
		Address:          e.Address,
		Area:             e.Area,
		Latitude:         e.Latitude,
		Longitude:        e.Longitude,
		Phone:            e.Phone,
		Email:            e.Email,
		Website:          e.Website,
		Instagram:        e.Instagram,
		Facebook:         e.Facebook,
		Description:      e.Description,
		ShortDescription: e.ShortDescription,
		MetaTitle:        e.MetaTitle,
		MetaDescription:  e.MetaDescription,
		MetaKeywords:     e.MetaKeywords,
		PriceLevel:       e.PriceLevel,
		OpeningHours:     e.OpeningHours,
		Rating:           e.Rating,
		ReviewCount:      e.ReviewCount,
		BokScore:         e.BokScore,
		Active:           e.Active,
		Verified:         e.Verified,
		Featured:         e.Featured,
		ApifyOutput:      e.ApifyOutput,
		FirecrawlOutput:  e.FirecrawlOutput,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	for _, a := range e.Edges.Attributes {
		l.Attributes = append(l.Attributes, ToAttributeRef(a))
	}
	for _, img := range e.Edges.Images {
		l.Images = append(l.Images, ToImage(img))
	}
	for _, f := range e.Edges.Faqs {
		l.FAQs = append(l.FAQs, ToFAQ(f))
	}
	return l
}

func ToDuplicateMatch(e *ent.Listing) entity.DuplicateMatch {
	return entity.DuplicateMatch{
		ID:            e.ID,
		EntityType:    constants.EntityType(e.EntityType),
		Name:          e.Name,
		Slug:          e.Slug,
		Area:          e.Area,
		GooglePlaceID: e.GooglePlaceID,
		Active:        e.Active,
	}
}

func ToSubmission(e *ent.Submission) *entity.Submission {
	return &entity.Submission{
		ID:              e.ID,
		Status:          constants.SubmissionStatus(e.Status),
		Category:        constants.EntityType(e.Category),
		BusinessName:    e.BusinessName,
		BusinessAddress: e.BusinessAddress,
		BusinessPhone:   e.BusinessPhone,
		BusinessWebsite: e.BusinessWebsite,
		SubmitterName:   e.SubmitterName,
		SubmitterEmail:  e.SubmitterEmail,
		SubmitterPhone:  e.SubmitterPhone,
		Description:     e.Description,
		AdminNotes:      e.AdminNotes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
