package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/niksmo/saree-landing/internal/core/domain"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const categoryImageURL = "https://source.unsplash.com/collection/3816149/400x300?sig=%d"

var (
	valueTiles = []ValueTile{
		NewValueTile("indian-rupee", "Zero Commission",
			"Vendors keep 100% of profits. Pay only ₹500/year."),
		NewValueTile("store", "Authentic & Direct",
			"Buy directly from verified artisans and boutiques."),
		NewValueTile("star", "Quality & Trust",
			"Transparent policies, real reviews, human connection."),
	}

	sellerSteps = []string{
		"Register & verify your store",
		"Pay ₹500 annual fee",
		"Upload sarees with pricing freedom",
		"Receive orders",
		"Dispatch & upload courier proof",
		"Get paid securely",
	}

	buyerSteps = []string{
		"Browse authentic sarees",
		"Pay securely online",
		"Track your order",
		"Receive your saree",
		"Review the seller",
	}
)

// Page is the view model of the landing page.
type Page struct {
	Year             int
	Values           []ValueTile
	CategoriesHeader SectionHeaderView
	Categories       []CategoryTile
	FeaturedHeader   SectionHeaderView
	Products         []ProductTile
	HowHeader        SectionHeaderView
	SellerSteps      []string
	BuyerSteps       []string
}

func NewPage(l domain.Landing, year int) Page {
	p := Page{
		Year:   year,
		Values: valueTiles,
		CategoriesHeader: SectionHeader(
			"Explore by Category",
			"Banarasi • Kanjivaram • Cotton • Silk • Organza",
		),
		FeaturedHeader: SectionHeader(
			"Featured Sarees", "Handpicked treasures from our vendors",
		),
		HowHeader: SectionHeader(
			"How It Works", "Simple, transparent flows for sellers and buyers",
		),
		SellerSteps: sellerSteps,
		BuyerSteps:  buyerSteps,
	}

	p.Categories = make([]CategoryTile, len(l.Categories))
	for i, c := range l.Categories {
		p.Categories[i] = NewCategoryTile(c.Name, fmt.Sprintf(categoryImageURL, i))
	}

	p.Products = make([]ProductTile, len(l.Products))
	for i, product := range l.Products {
		p.Products[i] = NewProductTile(product)
	}
	return p
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (Renderer, error) {
	const op = "NewRenderer"

	tmpl, err := template.New("landing").ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return Renderer{}, fmt.Errorf("%s: %w", op, err)
	}
	return Renderer{tmpl}, nil
}

// Render writes the whole page or nothing.
func (r Renderer) Render(w io.Writer, p Page) error {
	const op = "Renderer.Render"

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", p); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
