package ebay

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

const (
	defaultPageSize = 100
	defaultMaxPages = 10
)

// Reasons a pagination run stopped.
const (
	StoppedNoMoreResults = "no_more_results"
	StoppedMaxPages      = "max_pages"
)

// Paginator bounds how many pages a single import walks.
type Paginator struct {
	logger   *log.Logger
	pageSize int
	maxPages int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithPageSize overrides the default page size.
func WithPageSize(size int) PaginatorOption {
	return func(p *Paginator) {
		if size > 0 {
			p.pageSize = size
		}
	}
}

// WithMaxPages overrides the default max pages.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		if n > 0 {
			p.maxPages = n
		}
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *log.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.logger = l
	}
}

// NewPaginator creates a new Paginator.
func NewPaginator(opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PageSize returns the configured page size.
func (p *Paginator) PageSize() int { return p.pageSize }

// MaxPages returns the configured page cap.
func (p *Paginator) MaxPages() int { return p.maxPages }

// PageFunc fetches one page at the given offset and reports whether more
// pages follow.
type PageFunc[T any] func(ctx context.Context, limit, offset int) (items []T, hasMore bool, err error)

// PaginateResult holds the result of a paginated fetch.
type PaginateResult[T any] struct {
	Items     []T
	PagesUsed int
	StoppedAt string // "max_pages", "no_more_results"
}

// Paginate calls fetch page by page until the provider reports no more
// results, a page comes back empty, or the page cap is reached. Any fetch
// error aborts the run; items already collected are discarded.
func Paginate[T any](ctx context.Context, p *Paginator, fetch PageFunc[T]) (*PaginateResult[T], error) {
	result := &PaginateResult[T]{}

	for page := range p.maxPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		items, hasMore, err := fetch(ctx, p.pageSize, page*p.pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		result.PagesUsed++
		result.Items = append(result.Items, items...)

		if p.logger != nil {
			p.logger.Debug("fetched page", "page", page, "items", len(items), "has_more", hasMore)
		}

		if len(items) == 0 || !hasMore {
			result.StoppedAt = StoppedNoMoreResults
			return result, nil
		}
	}

	result.StoppedAt = StoppedMaxPages
	if p.logger != nil {
		p.logger.Warn("page cap reached, results truncated", "max_pages", p.maxPages)
	}
	return result, nil
}
