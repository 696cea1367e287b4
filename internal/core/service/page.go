package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/niksmo/saree-landing/internal/core/domain"
	"github.com/niksmo/saree-landing/internal/core/port"
	"golang.org/x/sync/errgroup"
)

// SettleFunc is called once per section when its fetch has settled.
type SettleFunc func(section domain.Section, fallback bool)

type PageOpt func(*Page)

func OnSettleOpt(fn SettleFunc) PageOpt {
	return func(p *Page) {
		if fn != nil {
			p.notify = fn
		}
	}
}

func LimitOpt(limit int) PageOpt {
	return func(p *Page) {
		if limit > 0 {
			p.limit = limit
		}
	}
}

// Page owns the data of a single landing page load.
//
// Both sections start empty. Start launches the featured products and
// the categories fetches concurrently; each one replaces only its own
// section, substituting the section default on failure.
type Page struct {
	src    port.CatalogSource
	limit  int
	notify SettleFunc

	once sync.Once
	done chan struct{}

	mu                 sync.RWMutex
	products           []domain.Product
	categories         []domain.Category
	productsFallback   bool
	categoriesFallback bool
}

func NewPage(src port.CatalogSource, opts ...PageOpt) *Page {
	p := &Page{
		src:        src,
		limit:      FeaturedLimit,
		notify:     func(domain.Section, bool) {},
		done:       make(chan struct{}),
		products:   []domain.Product{},
		categories: []domain.Category{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start issues both requests. Only the first call has an effect.
func (p *Page) Start(ctx context.Context) {
	p.once.Do(func() {
		var g errgroup.Group
		g.Go(func() error {
			p.loadProducts(ctx)
			return nil
		})
		g.Go(func() error {
			p.loadCategories(ctx)
			return nil
		})
		go func() {
			_ = g.Wait()
			close(p.done)
		}()
	})
}

// Done is closed when both sections have settled.
func (p *Page) Done() <-chan struct{} {
	return p.done
}

func (p *Page) Wait(ctx context.Context) error {
	const op = "Page.Wait"
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

func (p *Page) Products() []domain.Product {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.products
}

func (p *Page) Categories() []domain.Category {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.categories
}

func (p *Page) Snapshot() domain.Landing {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return domain.Landing{
		Products:           p.products,
		Categories:         p.categories,
		ProductsFallback:   p.productsFallback,
		CategoriesFallback: p.categoriesFallback,
	}
}

func (p *Page) loadProducts(ctx context.Context) {
	const op = "Page.loadProducts"

	ps, err := p.src.FetchProducts(ctx, p.limit)
	fallback := err != nil
	if fallback {
		slog.Warn("featured products unavailable", "op", op, "err", err)
		ps = DefaultProducts()
	}
	if ps == nil {
		ps = []domain.Product{}
	}
	if len(ps) > p.limit {
		ps = ps[:p.limit]
	}

	p.mu.Lock()
	p.products = ps
	p.productsFallback = fallback
	p.mu.Unlock()

	p.notify(domain.SectionProducts, fallback)
}

func (p *Page) loadCategories(ctx context.Context) {
	const op = "Page.loadCategories"

	cs, err := p.src.FetchCategories(ctx)
	fallback := err != nil
	if fallback {
		slog.Warn("categories unavailable", "op", op, "err", err)
		cs = DefaultCategories()
	}
	if cs == nil {
		cs = []domain.Category{}
	}

	p.mu.Lock()
	p.categories = cs
	p.categoriesFallback = fallback
	p.mu.Unlock()

	p.notify(domain.SectionCategories, fallback)
}
