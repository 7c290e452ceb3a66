package extract

import (
	"regexp"

	"github.com/comicrawl/comicrawl/dom"
	"github.com/comicrawl/comicrawl/source"
)

// Listing page layout.
const (
	ListingContainer = "div.list_area.daily_all"
	ListingItem      = "li"
	ListingTitle     = "a.title"
	ListingThumbnail = "div.thumb img"
)

var titleIDPattern = regexp.MustCompile(`titleId=(?P<id>\d+)`)

// Series extracts every series item of the listing page in document order.
// A page without the listing container yields no series.
func Series(doc dom.Document) ([]*source.Series, *Report) {
	container, ok := doc.SelectOne(ListingContainer).Get()
	if !ok {
		return nil, &Report{}
	}

	return rows(container.Select(ListingItem), seriesFromItem)
}

func seriesFromItem(i int, item dom.Element) (*source.Series, error) {
	link, err := selectOne(item, i, "title", ListingTitle)
	if err != nil {
		return nil, err
	}

	href, ok := link.Attr("href").Get()
	if !ok {
		return nil, &RowError{Row: i, Field: "title", Reason: ReasonMissingAttribute, Detail: "href"}
	}

	id, err := group(titleIDPattern, "id", href, i, "id")
	if err != nil {
		return nil, err
	}

	thumbnail, err := attr(item, i, "thumbnail", ListingThumbnail, "src")
	if err != nil {
		return nil, err
	}

	return &source.Series{
		ID:           id,
		Title:        link.Text(true),
		ThumbnailURL: thumbnail,
		URL:          href,
	}, nil
}
