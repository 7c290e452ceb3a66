package cache

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/comicrawl/comicrawl/filesystem"
	"github.com/comicrawl/comicrawl/source"
	. "github.com/smartystreets/goconvey/convey"
)

type countingFetcher struct {
	calls int
	body  string
	err   error
}

func (f *countingFetcher) Fetch(_ context.Context, _ string, _, _ map[string]string) (string, error) {
	f.calls++
	return f.body, f.err
}

const listingBody = "\n  <div class=\"list_area daily_all\"><ul><li>웹툰</li></ul></div>\n"

func TestListing(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty cache location", t, func() {
		filesystem.SetMemMapFs()
		fetcher := &countingFetcher{body: listingBody}
		listing := &Listing{
			Path:    filepath.Join("cache", "saved_data", "weekday.html"),
			URL:     "https://comic.naver.com/webtoon/weekday.nhn",
			Fetcher: fetcher,
		}

		Convey("When the listing is read twice", func() {
			first, err := listing.Get(ctx)
			So(err, ShouldBeNil)
			second, err := listing.Get(ctx)
			So(err, ShouldBeNil)

			Convey("Then it is fetched once and served from disk afterwards", func() {
				So(fetcher.calls, ShouldEqual, 1)
				So(first, ShouldEqual, listingBody)
				So(second, ShouldEqual, first)

				stored, err := filesystem.API().ReadFile(listing.Path)
				So(err, ShouldBeNil)
				So(string(stored), ShouldEqual, listingBody)
			})

			Convey("And invalidating forces a new fetch", func() {
				So(listing.Invalidate(), ShouldBeNil)
				_, err := listing.Get(ctx)
				So(err, ShouldBeNil)
				So(fetcher.calls, ShouldEqual, 2)
			})
		})

		Convey("When the file already exists", func() {
			So(filesystem.API().MkdirAll(filepath.Dir(listing.Path), 0755), ShouldBeNil)
			So(filesystem.API().WriteFile(listing.Path, []byte("stale but kept"), 0644), ShouldBeNil)

			Convey("Then it is returned without a fetch", func() {
				text, err := listing.Get(ctx)
				So(err, ShouldBeNil)
				So(text, ShouldEqual, "stale but kept")
				So(fetcher.calls, ShouldEqual, 0)
			})
		})

		Convey("When the fetch fails", func() {
			fetcher.err = errors.New("dial tcp: connection refused")

			Convey("Then the error is returned and nothing is written", func() {
				_, err := listing.Get(ctx)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, fetcher.err), ShouldBeTrue)

				exists, _ := filesystem.API().Exists(listing.Path)
				So(exists, ShouldBeFalse)
			})
		})

		Convey("When the cache location is not writable", func() {
			filesystem.SetReadOnly()
			defer filesystem.SetMemMapFs()

			Convey("Then the fetched text is still returned", func() {
				text, err := listing.Get(ctx)
				So(err, ShouldBeNil)
				So(text, ShouldEqual, listingBody)

				_, err = listing.Get(ctx)
				So(err, ShouldBeNil)
				So(fetcher.calls, ShouldEqual, 2)
			})
		})

		Convey("When invalidating a missing file", func() {
			So(listing.Invalidate(), ShouldBeNil)
		})
	})
}

func TestEpisodes(t *testing.T) {
	Convey("Given an episode snapshot store", t, func() {
		filesystem.SetMemMapFs()
		store := NewEpisodes(filepath.Join("cache", "episodes.json"), time.Hour)

		Convey("When nothing has been stored", func() {
			So(store.Get("714834").IsAbsent(), ShouldBeTrue)
		})

		Convey("When a crawled list is stored", func() {
			episodes := source.NewEpisodes()
			episodes.Add(&source.Episode{ID: "3", Title: "3화"})
			episodes.Add(&source.Episode{ID: "2", Title: "2화"})
			So(store.Set("714834", episodes), ShouldBeNil)

			Convey("Then it can be read back in order", func() {
				stored, ok := store.Get("714834").Get()
				So(ok, ShouldBeTrue)
				So(stored.IDs(), ShouldResemble, []string{"3", "2"})
			})

			Convey("And other series stay absent", func() {
				So(store.Get("703846").IsAbsent(), ShouldBeTrue)
			})

			Convey("And it can be deleted", func() {
				So(store.Delete("714834"), ShouldBeNil)
				So(store.Get("714834").IsAbsent(), ShouldBeTrue)
			})
		})
	})
}
