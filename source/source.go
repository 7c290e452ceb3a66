// Package source defines the domain records and the interface a site provider implements.
package source

import "context"

// Source defines the capabilities of a comic site scraper.
type Source interface {
	// Name returns the display name of the provider.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Series returns every series on the site's listing page, in document order.
	// Duplicated titles are returned as-is; the catalogue decides which one wins.
	Series(ctx context.Context) ([]*Series, error)

	// EpisodesOf crawls the complete, ordered episode list of a series.
	EpisodesOf(ctx context.Context, series *Series) (*Episodes, error)
}
