package cmd

import (
	"testing"

	"github.com/comicrawl/comicrawl/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConfigField(t *testing.T) {
	Convey("Given a registered key", t, func() {
		f, err := field(key.CrawlMaxPages)
		So(err, ShouldBeNil)
		So(f.Key, ShouldEqual, key.CrawlMaxPages)
	})

	Convey("Given a mistyped key", t, func() {
		_, err := field("crawl.max_page")

		Convey("Then the closest key is suggested", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "crawl.max_page")
			So(err.Error(), ShouldContainSubstring, key.CrawlMaxPages)
		})
	})

	Convey("Key completion stops after the key", t, func() {
		keys, _ := completeKeys(nil, nil, "")
		So(keys, ShouldContain, key.NetworkTimeout)

		keys, _ = completeKeys(nil, []string{key.NetworkTimeout}, "")
		So(keys, ShouldBeEmpty)
	})
}
