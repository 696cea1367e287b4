package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/niksmo/saree-landing/internal/core/domain"
	"github.com/niksmo/saree-landing/internal/core/port"
)

// ErrSourceUnavailable covers transport failures, error statuses and
// malformed bodies alike.
var ErrSourceUnavailable = errors.New("data source unavailable")

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 3 * time.Second

	productsPath   = "/api/products"
	categoriesPath = "/api/categories"
)

var _ port.CatalogSource = (*Client)(nil)

type ClientOpts struct {
	BaseURL string
	Timeout time.Duration
}

// Client reads the storefront collections from the backend API.
type Client struct {
	httpClient *resty.Client
}

func NewClient(opts ClientOpts) Client {
	baseURL := DefaultBaseURL
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}
	timeout := DefaultTimeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	httpClient := resty.New().
		SetDebug(false).
		SetLogger(slogLogger{slog.With("component", "backend")}).
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return Client{httpClient}
}

func (c Client) FetchProducts(
	ctx context.Context, limit int,
) ([]domain.Product, error) {
	const op = "Client.FetchProducts"

	var ps []product
	query := map[string]string{"limit": strconv.Itoa(limit)}
	if err := c.getJSON(ctx, productsPath, query, &ps); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products, err := toDomainProducts(ps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrSourceUnavailable, err)
	}
	return products, nil
}

func (c Client) FetchCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "Client.FetchCategories"

	var cs []category
	if err := c.getJSON(ctx, categoriesPath, nil, &cs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return toDomainCategories(cs), nil
}

func (c Client) getJSON(
	ctx context.Context, path string, query map[string]string, v any,
) error {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	if res.IsError() {
		return fmt.Errorf(
			"%w: GET %s responded %d",
			ErrSourceUnavailable, path, res.StatusCode(),
		)
	}

	if err := json.Unmarshal(res.Body(), v); err != nil {
		return fmt.Errorf("%w: malformed body: %w", ErrSourceUnavailable, err)
	}
	return nil
}

type slogLogger struct {
	log *slog.Logger
}

func (l slogLogger) Errorf(format string, v ...any) {
	l.log.Error(fmt.Sprintf(format, v...))
}

func (l slogLogger) Warnf(format string, v ...any) {
	l.log.Warn(fmt.Sprintf(format, v...))
}

func (l slogLogger) Debugf(format string, v ...any) {
	l.log.Debug(fmt.Sprintf(format, v...))
}
