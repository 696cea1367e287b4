package port

import (
	"context"

	"github.com/niksmo/saree-landing/internal/core/domain"
)

type ProductsFetcher interface {
	FetchProducts(ctx context.Context, limit int) ([]domain.Product, error)
}

type CategoriesFetcher interface {
	FetchCategories(ctx context.Context) ([]domain.Category, error)
}

type CatalogSource interface {
	ProductsFetcher
	CategoriesFetcher
}

type LandingLoader interface {
	LoadLanding(context.Context) domain.Landing
}

type LandingViewProducer interface {
	ProduceView(context.Context, domain.LandingView) error
}

type FetchRecorder interface {
	RecordFetch(section domain.Section, fallback bool)
}
