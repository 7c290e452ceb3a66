package cmd

import (
	"fmt"
	"os"

	"github.com/comicrawl/comicrawl/icon"
	"github.com/comicrawl/comicrawl/style"
	"github.com/comicrawl/comicrawl/util"
	"github.com/comicrawl/comicrawl/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

// clearTargets lists everything that can be selectively cleared.
// The whole cache directory goes last since it contains the others.
var clearTargets = []clearTarget{
	{"cached listing page", "listing", mo.Some("l"), where.Listing},
	{"episode snapshots", "episodes", mo.Some("e"), where.Episodes},
	{"cache directory", "cache", mo.Some("c"), where.Cache},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.SetOut(os.Stdout)
}

// clearCmd removes cached pages and crawl results.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the cached listing page and persisted crawl results",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := util.Delete(target.location())
			e()
			if !os.IsNotExist(err) {
				handleErr(err)
			}

			cmd.Printf("%s %s cleared\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
