// Command gendecoder compiles an instruction table into the Go source of a
// decoder.
//
//	gendecoder [flags] TABLE OUTPUT
package main

import (
	"os"

	"github.com/go-faster/errors"

	"github.com/grahambates/m68kdecode/table"
)

func main() {
	cli := parseArgs(os.Args[1:])

	err := run(cli)
	var serr *table.SyntaxError
	if errors.As(err, &serr) {
		reportSyntaxError(os.Stderr, serr)
		os.Exit(1)
	}
	checkf(err, "failed to generate %s", cli.Output)
}
