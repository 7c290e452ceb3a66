package extract

import (
	"fmt"
	"regexp"

	"github.com/comicrawl/comicrawl/dom"
	"github.com/comicrawl/comicrawl/source"
)

// Episode list page layout.
const (
	EpisodeTable = "table.viewList"
	EpisodeRow   = "tr"
	EpisodeCell  = "td"
	NextPage     = "div.page_wrap a.next"

	episodeCells     = 4
	episodeLink      = "a"
	episodeThumbnail = "img"
	episodeRating    = "strong"
)

var episodeNoPattern = regexp.MustCompile(`[?&]no=(?P<no>\d+)`)

// Episodes extracts every episode row of an episode list page in document order.
// The table's header row is skipped. A page without the table yields no episodes.
func Episodes(doc dom.Document) ([]*source.Episode, *Report) {
	table, ok := doc.SelectOne(EpisodeTable).Get()
	if !ok {
		return nil, &Report{}
	}

	trs := table.Select(EpisodeRow)
	if len(trs) > 0 {
		trs = trs[1:]
	}

	return rows(trs, episodeFromRow)
}

// HasNext reports whether the page links to a further page.
func HasNext(doc dom.Document) bool {
	return doc.SelectOne(NextPage).IsPresent()
}

func episodeFromRow(i int, tr dom.Element) (*source.Episode, error) {
	cells := tr.Select(EpisodeCell)
	if len(cells) < episodeCells {
		return nil, &RowError{
			Row:    i,
			Field:  "cells",
			Reason: ReasonCellCount,
			Detail: fmt.Sprintf("want %d, got %d", episodeCells, len(cells)),
		}
	}

	href, err := attr(cells[0], i, "link", episodeLink, "href")
	if err != nil {
		return nil, err
	}

	no, err := group(episodeNoPattern, "no", href, i, "id")
	if err != nil {
		return nil, err
	}

	thumbnail, err := attr(cells[0], i, "thumbnail", episodeThumbnail, "src")
	if err != nil {
		return nil, err
	}

	title, err := text(cells[1], i, "title", episodeLink)
	if err != nil {
		return nil, err
	}

	rating, err := text(cells[2], i, "rating", episodeRating)
	if err != nil {
		return nil, err
	}

	return &source.Episode{
		ID:           no,
		Title:        title,
		ThumbnailURL: thumbnail,
		Rating:       rating,
		CreatedDate:  cells[3].Text(true),
		URL:          href,
	}, nil
}
