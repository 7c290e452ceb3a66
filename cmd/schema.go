package cmd

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/comicrawl/comicrawl/source"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("episodes", "e", false, "Generate the JSON Schema of the episodes command output")
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd generates JSON schemas for the structured command outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for the --json outputs",
	Long:  "Generate the JSON Schema of \"list --json\", or of \"episodes --json\" with --episodes.",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			switch t {
			case reflect.TypeOf(episodesOutput{}):
				return "EpisodesOutput"
			}
			return t.Name()
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("episodes")):
			schema = reflector.Reflect(&episodesOutput{})
		default:
			schema = reflector.Reflect([]*source.Series{})
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
	},
}
