// Package main is the entry point for the comicrawl application.
package main

import (
	"github.com/comicrawl/comicrawl/cmd"
	"github.com/comicrawl/comicrawl/config"
	"github.com/comicrawl/comicrawl/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
