// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"slices"

	"github.com/comicrawl/comicrawl/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Series
	Rating
)

// symbols maps a variant to its rendering of every icon.
var symbols = map[string]map[Icon]string{
	"plain": {
		Success:  "✔",
		Fail:     "✖",
		Progress: "…",
		Series:   "#",
		Rating:   "*",
	},
	"emoji": {
		Success:  "✅",
		Fail:     "❌",
		Progress: "⏳",
		Series:   "📚",
		Rating:   "⭐",
	},
	"nerd": {
		Success:  "",
		Fail:     "",
		Progress: "",
		Series:   "",
		Rating:   "",
	},
	"kaomoji": {
		Success:  "(ᵔ◡ᵔ)",
		Fail:     "(╯°□°)╯",
		Progress: "(・_・ヾ",
		Series:   "(◕‿◕)",
		Rating:   "☆",
	},
	"squares": {
		Success:  "🟩",
		Fail:     "🟥",
		Progress: "🟦",
		Series:   "🟪",
		Rating:   "🟧",
	},
}

// AvailableVariants returns the variant names in sorted order.
func AvailableVariants() []string {
	variants := lo.Keys(symbols)
	slices.Sort(variants)
	return variants
}

// Get renders i in the configured variant. An unknown variant renders nothing.
func Get(i Icon) string {
	return symbols[viper.GetString(key.IconsVariant)][i]
}
