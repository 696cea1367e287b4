package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/saree-landing/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errUnavailable = errors.New("backend unavailable")

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) FetchProducts(
	ctx context.Context, limit int,
) ([]domain.Product, error) {
	args := m.Called(ctx, limit)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockCatalog) FetchCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Category)
	return cs, args.Error(1)
}

func makeProducts(n int) []domain.Product {
	ps := make([]domain.Product, n)
	for i := range ps {
		ps[i] = domain.Product{
			Slug:         "saree-" + string(rune('a'+i)),
			Title:        "Saree",
			VendorSlug:   "silk-weavers",
			PriceInPaise: 150000,
		}
	}
	return ps
}

func waitPage(t *testing.T, p *Page) {
	t.Helper()
	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()
	require.NoError(t, p.Wait(ctx))
}

func TestPage(t *testing.T) {
	t.Run("EmptyBeforeStart", func(t *testing.T) {
		p := NewPage(new(MockCatalog))
		assert.Empty(t, p.Products())
		assert.Empty(t, p.Categories())
		assert.NotNil(t, p.Products())
		assert.NotNil(t, p.Categories())
	})

	t.Run("BothSucceed", func(t *testing.T) {
		ctx := t.Context()
		products := makeProducts(3)
		categories := []domain.Category{{Name: "Pure Silk", Slug: "pure-silk"}}

		catalog := new(MockCatalog)
		catalog.On("FetchProducts", ctx, FeaturedLimit).Return(products, nil)
		catalog.On("FetchCategories", ctx).Return(categories, nil)

		p := NewPage(catalog)
		p.Start(ctx)
		waitPage(t, p)

		landing := p.Snapshot()
		assert.Equal(t, products, landing.Products)
		assert.Equal(t, categories, landing.Categories)
		assert.False(t, landing.ProductsFallback)
		assert.False(t, landing.CategoriesFallback)
		catalog.AssertExpectations(t)
	})

	t.Run("ProductsFailed", func(t *testing.T) {
		ctx := t.Context()
		categories := []domain.Category{{Name: "Linen", Slug: "linen"}}

		catalog := new(MockCatalog)
		catalog.On("FetchProducts", ctx, FeaturedLimit).Return(nil, errUnavailable)
		catalog.On("FetchCategories", ctx).Return(categories, nil)

		p := NewPage(catalog)
		p.Start(ctx)
		waitPage(t, p)

		assert.Empty(t, p.Products())
		assert.Equal(t, categories, p.Categories())
		assert.True(t, p.Snapshot().ProductsFallback)
		assert.False(t, p.Snapshot().CategoriesFallback)
	})

	t.Run("CategoriesFailed", func(t *testing.T) {
		ctx := t.Context()
		products := makeProducts(2)

		catalog := new(MockCatalog)
		catalog.On("FetchProducts", ctx, FeaturedLimit).Return(products, nil)
		catalog.On("FetchCategories", ctx).Return(nil, errUnavailable)

		p := NewPage(catalog)
		p.Start(ctx)
		waitPage(t, p)

		assert.Equal(t, products, p.Products())
		require.Len(t, p.Categories(), 5)

		var names []string
		for _, c := range p.Categories() {
			names = append(names, c.Name)
		}
		assert.Equal(t,
			[]string{"Banarasi", "Kanjivaram", "Cotton", "Silk", "Organza"},
			names,
		)
		assert.Equal(t, "kanjivaram", p.Categories()[1].Slug)
	})

	t.Run("TruncatedToLimit", func(t *testing.T) {
		ctx := t.Context()
		catalog := new(MockCatalog)
		catalog.On("FetchProducts", ctx, FeaturedLimit).Return(makeProducts(11), nil)
		catalog.On("FetchCategories", ctx).Return([]domain.Category{}, nil)

		p := NewPage(catalog)
		p.Start(ctx)
		waitPage(t, p)

		assert.Len(t, p.Products(), FeaturedLimit)
	})

	t.Run("CustomLimit", func(t *testing.T) {
		ctx := t.Context()
		catalog := new(MockCatalog)
		catalog.On("FetchProducts", ctx, 4).Return(makeProducts(6), nil)
		catalog.On("FetchCategories", ctx).Return([]domain.Category{}, nil)

		p := NewPage(catalog, LimitOpt(4), LimitOpt(0))
		p.Start(ctx)
		waitPage(t, p)

		assert.Len(t, p.Products(), 4)
		catalog.AssertExpectations(t)
	})

	t.Run("NullBodies", func(t *testing.T) {
		ctx := t.Context()
		catalog := new(MockCatalog)
		catalog.On("FetchProducts", ctx, FeaturedLimit).Return(nil, nil)
		catalog.On("FetchCategories", ctx).Return(nil, nil)

		p := NewPage(catalog)
		p.Start(ctx)
		waitPage(t, p)

		assert.NotNil(t, p.Products())
		assert.NotNil(t, p.Categories())
		assert.Empty(t, p.Categories())
	})

	t.Run("StartedOnce", func(t *testing.T) {
		ctx := t.Context()
		catalog := new(MockCatalog)
		catalog.On("FetchProducts", ctx, FeaturedLimit).Return(makeProducts(1), nil)
		catalog.On("FetchCategories", ctx).Return([]domain.Category{}, nil)

		p := NewPage(catalog)
		for range 5 {
			p.Start(ctx)
		}
		waitPage(t, p)
		p.Start(ctx)

		catalog.AssertNumberOfCalls(t, "FetchProducts", 1)
		catalog.AssertNumberOfCalls(t, "FetchCategories", 1)
	})

	t.Run("SectionsSettleIndependently", func(t *testing.T) {
		ctx := t.Context()
		release := make(chan struct{})
		settled := make(chan domain.Section, 2)

		catalog := new(MockCatalog)
		catalog.On("FetchProducts", ctx, FeaturedLimit).
			Run(func(mock.Arguments) { <-release }).
			Return(nil, errUnavailable)
		catalog.On("FetchCategories", ctx).
			Return([]domain.Category{{Name: "Silk", Slug: "silk"}}, nil)

		p := NewPage(catalog, OnSettleOpt(func(s domain.Section, _ bool) {
			settled <- s
		}))
		p.Start(ctx)

		select {
		case s := <-settled:
			assert.Equal(t, domain.SectionCategories, s)
		case <-time.After(time.Second):
			t.Fatal("categories blocked by products")
		}
		assert.Len(t, p.Categories(), 1)
		assert.Empty(t, p.Products())

		select {
		case <-p.Done():
			t.Fatal("page done before products settled")
		default:
		}

		close(release)
		waitPage(t, p)
		assert.Equal(t, domain.SectionProducts, <-settled)
		assert.Len(t, p.Categories(), 1)
		assert.Empty(t, p.Products())
	})

	t.Run("WaitCanceled", func(t *testing.T) {
		p := NewPage(new(MockCatalog))
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		err := p.Wait(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
