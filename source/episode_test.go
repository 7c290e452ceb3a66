package source

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEpisode(t *testing.T) {
	Convey("Episode", t, func() {
		ep := &Episode{ID: "1", Title: "Episode 1"}

		Convey("String", func() {
			So(ep.String(), ShouldEqual, "Episode 1")
		})
	})
}

func TestEpisodes(t *testing.T) {
	Convey("Given an empty episode collection", t, func() {
		episodes := NewEpisodes()
		So(episodes.Len(), ShouldEqual, 0)

		Convey("When adding episodes", func() {
			So(episodes.Add(&Episode{ID: "3", Title: "three"}), ShouldBeTrue)
			So(episodes.Add(&Episode{ID: "1", Title: "one"}), ShouldBeTrue)
			So(episodes.Add(&Episode{ID: "2", Title: "two"}), ShouldBeTrue)

			Convey("Then insertion order is preserved", func() {
				So(episodes.IDs(), ShouldResemble, []string{"3", "1", "2"})
			})

			Convey("And a repeated ID keeps the first entry", func() {
				So(episodes.Add(&Episode{ID: "1", Title: "impostor"}), ShouldBeFalse)
				So(episodes.Len(), ShouldEqual, 3)

				ep, ok := episodes.Get("1")
				So(ok, ShouldBeTrue)
				So(ep.Title, ShouldEqual, "one")
				So(episodes.IDs(), ShouldResemble, []string{"3", "1", "2"})
			})

			Convey("And episodes can be read by position", func() {
				first, ok := episodes.At(0).Get()
				So(ok, ShouldBeTrue)
				So(first.Title, ShouldEqual, "three")

				last, ok := episodes.At(2).Get()
				So(ok, ShouldBeTrue)
				So(last.ID, ShouldEqual, "2")

				So(episodes.At(3).IsAbsent(), ShouldBeTrue)
				So(episodes.At(-1).IsAbsent(), ShouldBeTrue)
			})

			Convey("And JSON keeps the order", func() {
				data, err := json.Marshal(episodes)
				So(err, ShouldBeNil)

				decoded := NewEpisodes()
				So(json.Unmarshal(data, decoded), ShouldBeNil)
				So(decoded.IDs(), ShouldResemble, []string{"3", "1", "2"})
				So(decoded.Slice()[0].Title, ShouldEqual, "three")
			})
		})

		Convey("Get reports a miss", func() {
			_, ok := episodes.Get("missing")
			So(ok, ShouldBeFalse)
			So(episodes.At(0).IsAbsent(), ShouldBeTrue)
		})
	})
}
