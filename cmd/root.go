// Package cmd implements the command-line interface for comicrawl.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/comicrawl/comicrawl/color"
	"github.com/comicrawl/comicrawl/constant"
	"github.com/comicrawl/comicrawl/icon"
	"github.com/comicrawl/comicrawl/key"
	"github.com/comicrawl/comicrawl/log"
	"github.com/comicrawl/comicrawl/provider"
	"github.com/comicrawl/comicrawl/source"
	"github.com/comicrawl/comicrawl/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("source", "S", "", "Source to crawl")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
			return p.ID
		}), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.DefaultSources, rootCmd.PersistentFlags().Lookup("source")))
}

// rootCmd defines the entry point for the comicrawl application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Crawl a webtoon site's series and their episode lists",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Crawl a webtoon site's series and their episode lists"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
// An interrupt cancels the running crawl.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// defaultSource creates the source selected by the sources.default setting.
func defaultSource() source.Source {
	p, err := provider.Default()
	handleErr(err)

	src, err := p.CreateSource()
	handleErr(err)

	return src
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.ErrorColor)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
