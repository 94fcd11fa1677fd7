// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttributesColumns holds the columns for the "attributes" table.
	AttributesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
	}
	// AttributesTable holds the schema information for the "attributes" table.
	AttributesTable = &schema.Table{
		Name:       "attributes",
		Columns:    AttributesColumns,
		PrimaryKey: []*schema.Column{AttributesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attribute_kind_slug",
				Unique:  true,
				Columns: []*schema.Column{AttributesColumns[1], AttributesColumns[3]},
			},
		},
	}
	// ListingFaqsColumns holds the columns for the "listing_faqs" table.
	ListingFaqsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "question", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "listing_id", Type: field.TypeUUID},
	}
	// ListingFaqsTable holds the schema information for the "listing_faqs" table.
	ListingFaqsTable = &schema.Table{
		Name:       "listing_faqs",
		Columns:    ListingFaqsColumns,
		PrimaryKey: []*schema.Column{ListingFaqsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "listing_faqs_listings_faqs",
				Columns:    []*schema.Column{ListingFaqsColumns[5]},
				RefColumns: []*schema.Column{ListingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "faq_listing_id_display_order",
				Unique:  false,
				Columns: []*schema.Column{ListingFaqsColumns[5], ListingFaqsColumns[3]},
			},
		},
	}
	// ListingsColumns holds the columns for the "listings" table.
	ListingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "google_place_id", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "area", Type: field.TypeString, Nullable: true},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "instagram", Type: field.TypeString, Nullable: true},
		{Name: "facebook", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "short_description", Type: field.TypeString, Nullable: true},
		{Name: "meta_title", Type: field.TypeString, Nullable: true},
		{Name: "meta_description", Type: field.TypeString, Nullable: true},
		{Name: "meta_keywords", Type: field.TypeString, Nullable: true},
		{Name: "price_level", Type: field.TypeInt, Default: 0},
		{Name: "opening_hours", Type: field.TypeString, Nullable: true},
		{Name: "rating", Type: field.TypeFloat64, Nullable: true},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "bok_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "verified", Type: field.TypeBool, Default: false},
		{Name: "featured", Type: field.TypeBool, Default: false},
		{Name: "apify_output", Type: field.TypeJSON, Nullable: true},
		{Name: "firecrawl_output", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ListingsTable holds the schema information for the "listings" table.
	ListingsTable = &schema.Table{
		Name:       "listings",
		Columns:    ListingsColumns,
		PrimaryKey: []*schema.Column{ListingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "listing_entity_type_slug",
				Unique:  true,
				Columns: []*schema.Column{ListingsColumns[1], ListingsColumns[3]},
			},
			{
				Name:    "listing_entity_type_active",
				Unique:  false,
				Columns: []*schema.Column{ListingsColumns[1], ListingsColumns[24]},
			},
			{
				Name:    "listing_google_place_id",
				Unique:  false,
				Columns: []*schema.Column{ListingsColumns[4]},
			},
			{
				Name:    "listing_area",
				Unique:  false,
				Columns: []*schema.Column{ListingsColumns[6]},
			},
		},
	}
	// ListingImagesColumns holds the columns for the "listing_images" table.
	ListingImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "url", Type: field.TypeString},
		{Name: "alt_text", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "is_hero", Type: field.TypeBool, Default: false},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "listing_id", Type: field.TypeUUID},
	}
	// ListingImagesTable holds the schema information for the "listing_images" table.
	ListingImagesTable = &schema.Table{
		Name:       "listing_images",
		Columns:    ListingImagesColumns,
		PrimaryKey: []*schema.Column{ListingImagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "listing_images_listings_images",
				Columns:    []*schema.Column{ListingImagesColumns[7]},
				RefColumns: []*schema.Column{ListingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "listingimage_listing_id_display_order",
				Unique:  false,
				Columns: []*schema.Column{ListingImagesColumns[7], ListingImagesColumns[5]},
			},
			{
				Name:    "listingimage_listing_id_is_hero",
				Unique:  false,
				Columns: []*schema.Column{ListingImagesColumns[7], ListingImagesColumns[4]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "category", Type: field.TypeString},
		{Name: "business_name", Type: field.TypeString},
		{Name: "business_address", Type: field.TypeString, Nullable: true},
		{Name: "business_phone", Type: field.TypeString, Nullable: true},
		{Name: "business_website", Type: field.TypeString, Nullable: true},
		{Name: "submitter_name", Type: field.TypeString},
		{Name: "submitter_email", Type: field.TypeString},
		{Name: "submitter_phone", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "admin_notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submission_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[1], SubmissionsColumns[12]},
			},
		},
	}
	// ListingAttributesColumns holds the columns for the "listing_attributes" table.
	ListingAttributesColumns = []*schema.Column{
		{Name: "listing_id", Type: field.TypeUUID},
		{Name: "attribute_id", Type: field.TypeInt},
	}
	// ListingAttributesTable holds the schema information for the "listing_attributes" table.
	ListingAttributesTable = &schema.Table{
		Name:       "listing_attributes",
		Columns:    ListingAttributesColumns,
		PrimaryKey: []*schema.Column{ListingAttributesColumns[0], ListingAttributesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "listing_attributes_listing_id",
				Columns:    []*schema.Column{ListingAttributesColumns[0]},
				RefColumns: []*schema.Column{ListingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "listing_attributes_attribute_id",
				Columns:    []*schema.Column{ListingAttributesColumns[1]},
				RefColumns: []*schema.Column{AttributesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttributesTable,
		ListingFaqsTable,
		ListingsTable,
		ListingImagesTable,
		SubmissionsTable,
		ListingAttributesTable,
	}
)

func init() {
	AttributesTable.Annotation = &entsql.Annotation{
		Table: "attributes",
	}
	ListingFaqsTable.ForeignKeys[0].RefTable = ListingsTable
	ListingFaqsTable.Annotation = &entsql.Annotation{
		Table: "listing_faqs",
	}
	ListingsTable.Annotation = &entsql.Annotation{
		Table: "listings",
	}
	ListingImagesTable.ForeignKeys[0].RefTable = ListingsTable
	ListingImagesTable.Annotation = &entsql.Annotation{
		Table: "listing_images",
	}
	SubmissionsTable.Annotation = &entsql.Annotation{
		Table: "submissions",
	}
	ListingAttributesTable.ForeignKeys[0].RefTable = ListingsTable
	ListingAttributesTable.ForeignKeys[1].RefTable = AttributesTable
}
