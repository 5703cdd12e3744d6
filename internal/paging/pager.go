// Package paging walks a provider's paginated result set to completion.
package paging

import (
	"context"
	"errors"
	"fmt"

	"github.com/jusunglee/mds-go/internal/models"
)

// ErrTooManyPages is returned when a pagination chain exceeds the page limit.
// Providers that emit cyclic or unbounded "next" links hit this instead of
// hanging the client.
var ErrTooManyPages = errors.New("pagination exceeded page limit")

// PageFetcher retrieves a single page by URL
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) (*models.Page, error)
}

// Pager is a finite, non-restartable sequence of pages. Each page's URL is
// discovered from the previous page's links, so pages are fetched in order.
type Pager struct {
	fetcher       PageFetcher
	nextURL       string
	maxPages      int
	firstPageOnly bool
	fetched       int
	done          bool
}

// New creates a pager starting at firstURL
func New(fetcher PageFetcher, firstURL string, maxPages int, firstPageOnly bool) *Pager {
	return &Pager{
		fetcher:       fetcher,
		nextURL:       firstURL,
		maxPages:      maxPages,
		firstPageOnly: firstPageOnly,
	}
}

// Next fetches the next page, or returns (nil, nil) once the sequence is
// exhausted. Any fetch error ends the sequence.
func (p *Pager) Next(ctx context.Context) (*models.Page, error) {
	if p.done {
		return nil, nil
	}

	if p.fetched >= p.maxPages {
		p.done = true
		return nil, fmt.Errorf("%w (%d pages)", ErrTooManyPages, p.fetched)
	}

	page, err := p.fetcher.FetchPage(ctx, p.nextURL)
	if err != nil {
		p.done = true
		return nil, err
	}

	p.fetched++
	p.nextURL = page.NextURL()
	if p.nextURL == "" || p.firstPageOnly {
		p.done = true
	}

	return page, nil
}

// Collect drains the pager and concatenates the named resource's records
// across pages, page order then in-page order. Any page error discards all
// accumulated records.
func Collect(ctx context.Context, p *Pager, resource string) ([]models.Record, error) {
	var records []models.Record
	for {
		page, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return records, nil
		}

		pageRecords, err := page.Records(resource)
		if err != nil {
			return nil, err
		}
		records = append(records, pageRecords...)
	}
}
