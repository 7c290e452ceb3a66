package style

import "github.com/comicrawl/comicrawl/color"

// Semantic colors shared by command output.
var (
	AccentColor  = color.Purple
	SuccessColor = color.Green
	WarningColor = color.Yellow
	ErrorColor   = color.Red
	FaintColor   = color.Gray
)
