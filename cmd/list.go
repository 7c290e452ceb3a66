package cmd

import (
	"encoding/json"
	"os"

	"github.com/comicrawl/comicrawl/catalogue"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	listCmd.SetOut(os.Stdout)
}

// listCmd prints the title of every series on the listing page.
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "Print every series of the source",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		series, err := catalogue.New(defaultSource()).All(cmd.Context())
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(series))
			return
		}

		for _, s := range series {
			cmd.Println(s.Title)
		}
	},
}
