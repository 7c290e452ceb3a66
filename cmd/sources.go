package cmd

import (
	"os"

	"github.com/comicrawl/comicrawl/color"
	"github.com/comicrawl/comicrawl/icon"
	"github.com/comicrawl/comicrawl/key"
	"github.com/comicrawl/comicrawl/provider"
	"github.com/comicrawl/comicrawl/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)

	sourcesCmd.Flags().BoolP("raw", "r", false, "Print only the source ids")
	sourcesCmd.SetOut(os.Stdout)
}

// sourcesCmd displays the built-in providers and marks the selected one.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Display the built-in sources",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, p := range provider.Builtins() {
				cmd.Println(p.ID)
			}
			return
		}

		selected := viper.GetString(key.DefaultSources)
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render

		cmd.Println(headerStyle("Builtin:"))
		for _, p := range provider.Builtins() {
			line := p.Name + " " + style.Faint("("+p.ID+")")
			if p.ID == selected {
				line += " " + style.Fg(style.SuccessColor)(icon.Get(icon.Success))
			}
			cmd.Println(line)
		}
	},
}
