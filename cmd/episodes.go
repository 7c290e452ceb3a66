package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/comicrawl/comicrawl/catalogue"
	"github.com/comicrawl/comicrawl/icon"
	"github.com/comicrawl/comicrawl/source"
	"github.com/comicrawl/comicrawl/style"
	"github.com/comicrawl/comicrawl/util"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// episodesOutput is the JSON shape printed by "episodes --json".
type episodesOutput struct {
	Series   *source.Series    `json:"series"`
	Episodes []*source.Episode `json:"episodes"`
}

func init() {
	rootCmd.AddCommand(episodesCmd)
	episodesCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	episodesCmd.Flags().IntP("limit", "l", 0, "Print at most this many episodes. 0 prints all")
	episodesCmd.Flags().IntP("index", "i", -1, "Print only the episode at this position, 0 being the newest")
	episodesCmd.MarkFlagsMutuallyExclusive("limit", "index")
	episodesCmd.SetOut(os.Stdout)
}

// episodesCmd crawls and prints the episode list of one series.
var episodesCmd = &cobra.Command{
	Use:   "episodes <title>",
	Short: "Crawl and print the episodes of a series",
	Long:  "Crawl every page of a series' episode list and print its episodes, newest first.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			title  = args[0]
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			limit  = lo.Must(cmd.Flags().GetInt("limit"))
			index  = lo.Must(cmd.Flags().GetInt("index"))
			ctx    = cmd.Context()
		)

		series, err := catalogue.New(defaultSource()).SeriesByTitle(ctx, title)
		handleErr(withSuggestions(err))

		var erase func()
		if !asJson {
			erase = util.PrintErasable(fmt.Sprintf("%s Crawling %s...", icon.Get(icon.Progress), series.Title))
		}

		episodes, err := series.Episodes(ctx)
		if erase != nil {
			erase()
		}
		handleErr(err)

		list, err := selectEpisodes(episodes, limit, index)
		handleErr(err)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(episodesOutput{Series: series, Episodes: list}))
			return
		}

		cmd.Printf("%s %s %s\n", icon.Get(icon.Series), style.Bold(series.Title), style.Faint(util.Quantify(episodes.Len(), "episode", "episodes")))
		for _, line := range episodeLines(list, terminalWidth()) {
			cmd.Println(line)
		}
	},
}

// selectEpisodes picks the episode at index when it is not negative,
// otherwise the first limit episodes (all when limit is not positive).
func selectEpisodes(episodes *source.Episodes, limit, index int) ([]*source.Episode, error) {
	if index >= 0 {
		episode, ok := episodes.At(index).Get()
		if !ok {
			return nil, fmt.Errorf("no episode at index %d, the series has %s", index, util.Quantify(episodes.Len(), "episode", "episodes"))
		}
		return []*source.Episode{episode}, nil
	}

	list := episodes.Slice()
	if limit > 0 {
		list = list[:util.Min(limit, len(list))]
	}
	return list, nil
}

// withSuggestions appends the closest titles to a not found error.
func withSuggestions(err error) error {
	var notFound *catalogue.SeriesNotFoundError
	if !errors.As(err, &notFound) || len(notFound.Suggestions) == 0 {
		return err
	}

	quoted := lo.Map(notFound.Suggestions, func(s string, _ int) string {
		return style.Fg(style.WarningColor)(fmt.Sprintf("%q", s))
	})
	return fmt.Errorf("%w, did you mean %s?", err, strings.Join(quoted, " or "))
}

func terminalWidth() int {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// episodeLines renders one line per episode, truncating titles to fit width.
func episodeLines(episodes []*source.Episode, width int) []string {
	idWidth := util.Max(lo.Map(episodes, func(e *source.Episode, _ int) int {
		return len(e.ID)
	})...)

	const (
		ratingWidth = 6
		dateWidth   = 10
		gaps        = 6
	)

	titleWidth := util.Max(10, width-idWidth-ratingWidth-dateWidth-gaps-len(icon.Get(icon.Rating)))

	return lo.Map(episodes, func(e *source.Episode, _ int) string {
		title := truncate.StringWithTail(e.Title, uint(titleWidth), "…")

		return fmt.Sprintf(
			"%s  %s  %s %s  %s",
			style.Faint(fmt.Sprintf("%*s", idWidth, e.ID)),
			padding.String(title, uint(titleWidth)),
			style.Fg(style.AccentColor)(icon.Get(icon.Rating)),
			fmt.Sprintf("%-*s", ratingWidth, e.Rating),
			style.Faint(e.CreatedDate),
		)
	})
}
