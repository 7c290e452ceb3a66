package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/comicrawl/comicrawl/color"
	"github.com/comicrawl/comicrawl/config"
	"github.com/comicrawl/comicrawl/filesystem"
	"github.com/comicrawl/comicrawl/icon"
	"github.com/comicrawl/comicrawl/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// field returns the registered field of k, or an error naming the closest key.
func field(k string) (config.Field, error) {
	if f, ok := config.Default[k]; ok {
		return f, nil
	}

	closest := lo.MinBy(config.Keys(), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return config.Field{}, fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(k),
		style.Fg(color.Yellow)(closest),
	)
}

func completeKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys(), cobra.ShellCompDirectiveNoFileComp
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func highlight(v any) string {
	return style.Fg(color.Yellow)(fmt.Sprint(v))
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configGetCmd, configSetCmd, configResetCmd, configWriteCmd, configDeleteCmd)

	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	configInfoCmd.SetOut(os.Stdout)
	configGetCmd.SetOut(os.Stdout)

	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")

	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

// configCmd groups the settings subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
	Long: `Inspect and change settings.
Values are checked before they are saved: page bounds and retries must not be
negative, timeouts must be positive, site URLs absolute and the listing path a file.`,
}

var configInfoCmd = &cobra.Command{
	Use:               "info [key...]",
	Short:             "Describe settings with their current and default values",
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		keys := args
		if len(keys) == 0 {
			keys = config.Keys()
		}

		fields := lo.Map(keys, func(k string, _ int) config.Field {
			f, err := field(k)
			handleErr(err)
			return f
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		cmd.Println(strings.Join(lo.Map(fields, func(f config.Field, _ int) string {
			return f.Pretty()
		}), "\n\n"))
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		_, err := field(args[0])
		handleErr(err)
		cmd.Println(viper.Get(args[0]))
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value...>",
	Short:             "Validate and save a setting",
	Example:           "  comicrawl config set crawl.max_pages 50\n  comicrawl config set cache.listing_path ~/comics/weekday.html",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k := args[0]
		_, err := field(k)
		handleErr(err)

		value, err := config.Parse(k, args[1:])
		handleErr(err)

		viper.Set(k, value)
		handleErr(config.Save())
		success("set %s to %s", style.Fg(color.Purple)(k), highlight(value))
	},
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key...]",
	Short:             "Restore settings to their defaults",
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		if all == (len(args) > 0) {
			handleErr(fmt.Errorf("pass either keys or --all"))
		}

		keys := args
		if all {
			keys = config.Keys()
		}

		for _, k := range keys {
			f, err := field(k)
			handleErr(err)
			viper.Set(k, f.Value)
		}
		handleErr(config.Save())

		if all {
			success("reset all settings")
			return
		}
		for _, k := range keys {
			success("reset %s to %s", style.Fg(color.Purple)(k), highlight(config.Default[k].Value))
		}
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current settings to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.File()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		success("wrote config to %s", path)
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(config.File()))
		success("deleted %s", config.File())
	},
}
