package domain

import "time"

type Section string

const (
	SectionProducts   Section = "products"
	SectionCategories Section = "categories"
)

// Landing is a settled snapshot of the landing page data.
type Landing struct {
	Products           []Product
	Categories         []Category
	ProductsFallback   bool
	CategoriesFallback bool
}

type LandingView struct {
	ProductsShown      int
	CategoriesShown    int
	ProductsFallback   bool
	CategoriesFallback bool
	ViewedAt           time.Time
}

func (l Landing) View(at time.Time) LandingView {
	return LandingView{
		ProductsShown:      len(l.Products),
		CategoriesShown:    len(l.Categories),
		ProductsFallback:   l.ProductsFallback,
		CategoriesFallback: l.CategoriesFallback,
		ViewedAt:           at,
	}
}
