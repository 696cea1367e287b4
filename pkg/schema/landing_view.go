package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const LandingViewSchemaTextV1 = `{
	"type": "record",
	"namespace": "landing",
	"name": "landing_view",
	"fields" : [
		{"name": "products_shown", "type": "int"},
		{"name": "categories_shown", "type": "int"},
		{"name": "products_fallback", "type": "boolean"},
		{"name": "categories_fallback", "type": "boolean"},
		{"name": "viewed_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type LandingViewV1 struct {
	ProductsShown      int       `avro:"products_shown"`
	CategoriesShown    int       `avro:"categories_shown"`
	ProductsFallback   bool      `avro:"products_fallback"`
	CategoriesFallback bool      `avro:"categories_fallback"`
	ViewedAt           time.Time `avro:"viewed_at"`
}

func LandingViewV1Avro() avro.Schema {
	return avro.MustParse(LandingViewSchemaTextV1)
}
