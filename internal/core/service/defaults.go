package service

import "github.com/niksmo/saree-landing/internal/core/domain"

// FeaturedLimit is the number of featured products requested per page load.
const FeaturedLimit = 8

// DefaultProducts is used when the featured products are unavailable.
func DefaultProducts() []domain.Product {
	return []domain.Product{}
}

// DefaultCategories is used when the categories are unavailable.
//
// Slugs are kept although category tiles link by name.
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{Name: "Banarasi", Slug: "banarasi"},
		{Name: "Kanjivaram", Slug: "kanjivaram"},
		{Name: "Cotton", Slug: "cotton"},
		{Name: "Silk", Slug: "silk"},
		{Name: "Organza", Slug: "organza"},
	}
}
