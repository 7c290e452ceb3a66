package extract

import (
	"testing"

	"github.com/comicrawl/comicrawl/dom"
	"github.com/comicrawl/comicrawl/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeries(t *testing.T) {
	Convey("Given a listing page", t, func() {
		doc := lo.Must(dom.Parse(sampleListingHTML))

		Convey("When extracting series", func() {
			series, report := Series(doc)

			Convey("Then malformed items are skipped", func() {
				So(series, ShouldHaveLength, 2)
				So(report.Rows, ShouldEqual, 4)
				So(report.Parsed, ShouldEqual, 2)
				So(report.Skipped, ShouldHaveLength, 2)
			})

			Convey("And skips say which row failed and why", func() {
				So(report.Skipped[0].Row, ShouldEqual, 1)
				So(report.Skipped[0].Field, ShouldEqual, "thumbnail")
				So(report.Skipped[0].Reason, ShouldEqual, ReasonMissingElement)

				So(report.Skipped[1].Row, ShouldEqual, 2)
				So(report.Skipped[1].Field, ShouldEqual, "id")
				So(report.Skipped[1].Reason, ShouldEqual, ReasonPatternMismatch)
			})

			Convey("And records follow document order", func() {
				So(series[0].ID, ShouldEqual, "703846")
				So(series[0].Title, ShouldEqual, "여신강림")
				So(series[0].ThumbnailURL, ShouldEqual, "https://shared.example.com/703846.jpg")
				So(series[0].URL, ShouldEqual, "/webtoon/list.nhn?titleId=703846&weekday=mon")

				So(series[1].ID, ShouldEqual, "714834")
				So(series[1].Title, ShouldEqual, "모죠의 일지")
			})
		})
	})

	Convey("Given a page without the listing container", t, func() {
		doc := lo.Must(dom.Parse("<html><body><ul><li>stray</li></ul></body></html>"))

		Convey("Then no series are extracted and nothing is skipped", func() {
			series, report := Series(doc)
			So(series, ShouldBeEmpty)
			So(report.Rows, ShouldEqual, 0)
			So(report.Skipped, ShouldBeEmpty)
		})
	})
}

func TestEpisodes(t *testing.T) {
	Convey("Given an episode page with one row missing its thumbnail", t, func() {
		doc := lo.Must(dom.Parse(episodePage(true,
			episodeRow(3, "3화"),
			rowWithoutThumbnail,
			episodeRow(2, "2화"),
			episodeRow(1, "1화"),
		)))

		Convey("When extracting episodes", func() {
			episodes, report := Episodes(doc)

			Convey("Then N-1 episodes are returned", func() {
				So(report.Rows, ShouldEqual, 4)
				So(episodes, ShouldHaveLength, 3)
				So(report.Parsed, ShouldEqual, 3)
			})

			Convey("And the skipped row is reported", func() {
				So(report.Skipped, ShouldHaveLength, 1)
				So(report.Skipped[0].Row, ShouldEqual, 1)
				So(report.Skipped[0].Field, ShouldEqual, "thumbnail")
				So(report.Skipped[0].Error(), ShouldContainSubstring, "row 1: thumbnail: element missing")
			})

			Convey("And fields are extracted in document order", func() {
				So(lo.Map(episodes, func(e *source.Episode, _ int) string { return e.ID }), ShouldResemble, []string{"3", "2", "1"})

				first := episodes[0]
				So(first.Title, ShouldEqual, "3화")
				So(first.ThumbnailURL, ShouldEqual, "https://shared.example.com/ep3.jpg")
				So(first.Rating, ShouldEqual, "9.93")
				So(first.CreatedDate, ShouldEqual, "2018.01.03")
				So(first.URL, ShouldEqual, "/webtoon/detail.nhn?titleId=714834&no=3&weekday=fri")
			})
		})

		Convey("HasNext should see the next link", func() {
			So(HasNext(doc), ShouldBeTrue)
		})
	})

	Convey("Given an episode page with a banner row", t, func() {
		doc := lo.Must(dom.Parse(episodePage(false, bannerRow, episodeRow(1, "1화"))))

		Convey("Then the banner is skipped for its cell count", func() {
			episodes, report := Episodes(doc)
			So(episodes, ShouldHaveLength, 1)
			So(report.Skipped, ShouldHaveLength, 1)
			So(report.Skipped[0].Reason, ShouldEqual, ReasonCellCount)
		})

		Convey("HasNext should be false", func() {
			So(HasNext(doc), ShouldBeFalse)
		})
	})

	Convey("Given a page without the episode table", t, func() {
		doc := lo.Must(dom.Parse("<html><body><p>점검중</p></body></html>"))

		Convey("Then no episodes are extracted", func() {
			episodes, report := Episodes(doc)
			So(episodes, ShouldBeEmpty)
			So(report.Rows, ShouldEqual, 0)
			So(HasNext(doc), ShouldBeFalse)
		})
	})

	Convey("Given a table with only its header row", t, func() {
		doc := lo.Must(dom.Parse(episodePage(true)))

		Convey("Then no rows are processed but the next link still counts", func() {
			episodes, report := Episodes(doc)
			So(episodes, ShouldBeEmpty)
			So(report.Rows, ShouldEqual, 0)
			So(HasNext(doc), ShouldBeTrue)
		})
	})
}
