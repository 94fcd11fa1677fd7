package constants

import "strings"

// EntityType is the canonical directory category for a listing.
type EntityType string

const (
	EntityRestaurant EntityType = "restaurant"
	EntityHotel      EntityType = "hotel"
	EntityMall       EntityType = "mall"
	EntityAttraction EntityType = "attraction"
	EntitySchool     EntityType = "school"
	EntityFitness    EntityType = "fitness"
)

var allEntityTypes = []EntityType{
	EntityRestaurant,
	EntityHotel,
	EntityMall,
	EntityAttraction,
	EntitySchool,
	EntityFitness,
}

// EntityTypes returns every supported entity type in display order.
func EntityTypes() []EntityType {
	out := make([]EntityType, len(allEntityTypes))
	copy(out, allEntityTypes)
	return out
}

// EntityTypeStrings returns the entity types as strings (for enum validation).
func EntityTypeStrings() []string {
	out := make([]string, len(allEntityTypes))
	for i, et := range allEntityTypes {
		out[i] = string(et)
	}
	return out
}

// CanonicalizeEntityType resolves user/route input to a known entity type.
// The second return reports whether the input matched.
func CanonicalizeEntityType(input string) (EntityType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}

	// route/legacy synonyms
	synonyms := map[string]EntityType{
		"restaurants":    EntityRestaurant,
		"hotels":         EntityHotel,
		"malls":          EntityMall,
		"shopping-mall":  EntityMall,
		"attractions":    EntityAttraction,
		"schools":        EntitySchool,
		"fitness-places": EntityFitness,
		"gym":            EntityFitness,
		"gyms":           EntityFitness,
	}
	if et, ok := synonyms[normalized]; ok {
		return et, true
	}

	for _, et := range allEntityTypes {
		if normalized == string(et) {
			return et, true
		}
	}
	return "", false
}

// AttributeKind names the per-entity structured attribute collection
// (cuisines for restaurants, amenities for hotels and malls, etc).
func (e EntityType) AttributeKind() string {
	switch e {
	case EntityRestaurant:
		return "cuisine"
	case EntityHotel, EntityMall, EntityAttraction:
		return "amenity"
	case EntitySchool:
		return "curriculum"
	case EntityFitness:
		return "fitness_type"
	}
	return "amenity"
}
