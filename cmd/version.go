package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/comicrawl/comicrawl/constant"
	"github.com/comicrawl/comicrawl/key"
	"github.com/comicrawl/comicrawl/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildInfo is what "version" reports.
type buildInfo struct {
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	BuiltAt   string `json:"built_at"`
	BuiltBy   string `json:"built_by"`
	Platform  string `json:"platform"`
	UserAgent string `json:"user_agent"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:   constant.Version,
		Revision:  constant.Revision,
		BuiltAt:   strings.TrimSpace(constant.BuiltAt),
		BuiltBy:   constant.BuiltBy,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		UserAgent: viper.GetString(key.NetworkUserAgent),
	}
}

// lines renders the build info as aligned label/value pairs.
func (b buildInfo) lines() []string {
	rows := [][2]string{
		{"Version", b.Version},
		{"Revision", b.Revision},
		{"Built at", b.BuiltAt},
		{"Built by", b.BuiltBy},
		{"Platform", b.Platform},
		{"User-Agent", b.UserAgent},
	}

	return lo.Map(rows, func(row [2]string, _ int) string {
		return fmt.Sprintf("  %s %s", style.Faint(fmt.Sprintf("%-10s", row[0])), style.Bold(row[1]))
	})
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
	versionCmd.SetOut(os.Stdout)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		info := currentBuild()

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(info.Version)
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
		default:
			cmd.Println(style.Fg(style.AccentColor)(constant.App) + " " + info.Version)
			cmd.Println()
			cmd.Println(strings.Join(info.lines(), "\n"))
		}
	},
}
