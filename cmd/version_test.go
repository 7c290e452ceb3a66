package cmd

import (
	"runtime"
	"testing"

	"github.com/comicrawl/comicrawl/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildInfo(t *testing.T) {
	Convey("Given the current build", t, func() {
		info := currentBuild()

		So(info.Version, ShouldEqual, constant.Version)
		So(info.Platform, ShouldEqual, runtime.GOOS+"/"+runtime.GOARCH)

		Convey("Then every field gets a line", func() {
			lines := info.lines()
			So(len(lines), ShouldEqual, 6)
			So(lines[0], ShouldContainSubstring, constant.Version)
			So(lines[4], ShouldContainSubstring, info.Platform)
		})
	})
}
