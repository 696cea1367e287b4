package backend

import (
	"fmt"

	"github.com/niksmo/saree-landing/internal/core/domain"
)

type (
	product struct {
		Slug         string   `json:"slug"`
		Title        string   `json:"title"`
		Images       []string `json:"images"`
		VendorSlug   string   `json:"vendor_slug"`
		PriceInPaise int64    `json:"price_in_paise"`
	}

	category struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
)

func toDomainProducts(ps []product) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if p.PriceInPaise < 0 {
			return nil, fmt.Errorf(
				"product %q: negative price %d", p.Slug, p.PriceInPaise,
			)
		}
		out = append(out, domain.Product{
			Slug:         p.Slug,
			Title:        p.Title,
			Images:       p.Images,
			VendorSlug:   p.VendorSlug,
			PriceInPaise: p.PriceInPaise,
		})
	}
	return out, nil
}

func toDomainCategories(cs []category) []domain.Category {
	out := make([]domain.Category, len(cs))
	for i, c := range cs {
		out[i] = domain.Category{Name: c.Name, Slug: c.Slug}
	}
	return out
}
