package view

import (
	"net/url"
	"strings"

	"github.com/niksmo/saree-landing/internal/core/domain"
)

type SectionHeaderView struct {
	Title    string
	Subtitle string
}

func SectionHeader(title, subtitle string) SectionHeaderView {
	return SectionHeaderView{Title: title, Subtitle: subtitle}
}

type CategoryTile struct {
	Href  string
	Name  string
	Image string
}

func NewCategoryTile(name, img string) CategoryTile {
	return CategoryTile{Href: CategoryHref(name), Name: name, Image: img}
}

// CategoryHref links to the shop filtered by the exact category name.
func CategoryHref(name string) string {
	return "/shop?category=" + encodeComponent(name)
}

// encodeComponent escapes s as a query value with spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

type ValueTile struct {
	Icon  string
	Title string
	Text  string
}

func NewValueTile(icon, title, text string) ValueTile {
	return ValueTile{Icon: icon, Title: title, Text: text}
}

type ProductTile struct {
	Href   string
	Title  string
	Image  string
	Vendor string
	Price  string
}

func NewProductTile(p domain.Product) ProductTile {
	return ProductTile{
		Href:   "/product/" + url.PathEscape(p.Slug),
		Title:  p.Title,
		Image:  p.Thumbnail(),
		Vendor: VendorLabel(p.VendorSlug),
		Price:  FormatPrice(p.PriceInPaise),
	}
}

// VendorLabel replaces only the first hyphen of the vendor slug.
func VendorLabel(vendorSlug string) string {
	return strings.Replace(vendorSlug, "-", " ", 1)
}
