package util

import (
	"regexp"
	"testing"

	"github.com/comicrawl/comicrawl/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "episode", "episodes"), ShouldEqual, "1 episode")
		So(Quantify(2, "episode", "episodes"), ShouldEqual, "2 episodes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("listing"), ShouldEqual, "Listing")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`titleId=(?P<id>\d+)&no=(?P<no>\d+)`)

		Convey("Should map named groups", func() {
			groups := ReGroups(re, "/webtoon/detail.nhn?titleId=651673&no=345&weekday=wed")
			So(groups["id"], ShouldEqual, "651673")
			So(groups["no"], ShouldEqual, "345")
		})

		Convey("Should be empty without a match", func() {
			So(ReGroups(re, "/webtoon/detail.nhn"), ShouldBeEmpty)
		})
	})
}

func TestResolveURL(t *testing.T) {
	Convey("ResolveURL", t, func() {
		base := "https://comic.naver.com/webtoon/weekday.nhn"
		So(ResolveURL(base, "/webtoon/list.nhn?titleId=1"), ShouldEqual, "https://comic.naver.com/webtoon/list.nhn?titleId=1")
		So(ResolveURL(base, "https://img.example.com/a.jpg"), ShouldEqual, "https://img.example.com/a.jpg")
		So(ResolveURL("::bad", "/x"), ShouldEqual, "/x")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/cache/saved_data", 0755), ShouldBeNil)
		So(fs.WriteFile("/cache/saved_data/weekday.html", []byte("<html>"), 0644), ShouldBeNil)

		Convey("Should remove a file", func() {
			So(Delete("/cache/saved_data/weekday.html"), ShouldBeNil)
			exists, _ := fs.Exists("/cache/saved_data/weekday.html")
			So(exists, ShouldBeFalse)
		})

		Convey("Should remove a directory tree", func() {
			So(Delete("/cache"), ShouldBeNil)
			exists, _ := fs.Exists("/cache")
			So(exists, ShouldBeFalse)
		})

		Convey("Should fail for a missing path", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
