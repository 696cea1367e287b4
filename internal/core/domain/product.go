package domain

type (
	Product struct {
		Slug         string
		Title        string
		Images       []string
		VendorSlug   string
		PriceInPaise int64
	}

	Category struct {
		Name string
		Slug string
	}
)

// Thumbnail returns the first product image or an empty string.
func (p Product) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
