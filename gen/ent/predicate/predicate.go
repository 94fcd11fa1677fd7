// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attribute is the predicate function for attribute builders.
type Attribute func(*sql.Selector)

// FAQ is the predicate function for faq builders.
type FAQ func(*sql.Selector)

// Listing is the predicate function for listing builders.
type Listing func(*sql.Selector)

// ListingImage is the predicate function for listingimage builders.
type ListingImage func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)
