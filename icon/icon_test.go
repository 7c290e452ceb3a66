package icon

import (
	"testing"

	"github.com/comicrawl/comicrawl/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Fail

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					result := Get(target)
					So(result, ShouldNotBeEmpty)
				})
			}
		})

		Convey("Every icon is registered for every variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for i := Success; i <= Rating; i++ {
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("Variants are listed in order", func() {
			So(AvailableVariants(), ShouldResemble, []string{"emoji", "kaomoji", "nerd", "plain", "squares"})
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			result := Get(target)
			So(result, ShouldBeEmpty)
		})
	})
}
