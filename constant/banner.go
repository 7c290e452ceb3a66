package constant

import _ "embed"

// Banner heads the root command's help.
//
//go:embed banner.txt
var Banner string
