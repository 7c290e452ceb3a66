package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/comicrawl/comicrawl/catalogue"
	"github.com/comicrawl/comicrawl/key"
	"github.com/comicrawl/comicrawl/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestEpisodeLines(t *testing.T) {
	Convey("Given episodes with a long title", t, func() {
		viper.Set(key.IconsVariant, "plain")
		episodes := []*source.Episode{
			{ID: "120", Title: "에필로그", Rating: "9.98", CreatedDate: "2019.05.08"},
			{ID: "9", Title: strings.Repeat("아주 긴 제목 ", 20), Rating: "9.5", CreatedDate: "2017.11.07"},
		}

		Convey("When rendered for a narrow terminal", func() {
			lines := episodeLines(episodes, 60)

			Convey("Then there is one line per episode", func() {
				So(len(lines), ShouldEqual, 2)
				So(lines[0], ShouldContainSubstring, "에필로그")
				So(lines[0], ShouldContainSubstring, "2019.05.08")
			})

			Convey("And the long title is truncated", func() {
				So(lines[1], ShouldContainSubstring, "…")
				So(lines[1], ShouldContainSubstring, "9.5")
			})
		})

		Convey("When there are no episodes", func() {
			So(episodeLines(nil, 80), ShouldBeEmpty)
		})
	})
}

func TestWithSuggestions(t *testing.T) {
	Convey("Given a not found error with suggestions", t, func() {
		err := &catalogue.SeriesNotFoundError{Title: "모죠 일지", Suggestions: []string{"모죠의 일지"}}

		Convey("Then the suggestions are appended and the error still matches", func() {
			wrapped := withSuggestions(err)
			So(wrapped.Error(), ShouldContainSubstring, "did you mean")
			So(wrapped.Error(), ShouldContainSubstring, "모죠의 일지")
			So(errors.Is(wrapped, catalogue.ErrSeriesNotFound), ShouldBeTrue)
		})
	})

	Convey("Given other errors", t, func() {
		So(withSuggestions(nil), ShouldBeNil)

		plain := errors.New("status 503")
		So(withSuggestions(plain), ShouldEqual, plain)

		bare := &catalogue.SeriesNotFoundError{Title: "x"}
		So(withSuggestions(bare), ShouldEqual, bare)
	})
}

func TestSelectEpisodes(t *testing.T) {
	Convey("Given a crawled episode list", t, func() {
		episodes := source.NewEpisodes()
		for _, id := range []string{"3", "2", "1"} {
			episodes.Add(&source.Episode{ID: id, Title: id + "화"})
		}

		Convey("An index picks one episode by position", func() {
			list, err := selectEpisodes(episodes, 0, 1)
			So(err, ShouldBeNil)
			So(len(list), ShouldEqual, 1)
			So(list[0].ID, ShouldEqual, "2")
		})

		Convey("An index past the end fails", func() {
			_, err := selectEpisodes(episodes, 0, 3)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "3 episodes")
		})

		Convey("A limit keeps the newest episodes", func() {
			list, err := selectEpisodes(episodes, 2, -1)
			So(err, ShouldBeNil)
			So(len(list), ShouldEqual, 2)
			So(list[1].ID, ShouldEqual, "2")

			list, err = selectEpisodes(episodes, 10, -1)
			So(err, ShouldBeNil)
			So(len(list), ShouldEqual, 3)
		})
	})
}
