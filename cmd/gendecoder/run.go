package main

import (
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"

	"github.com/grahambates/m68kdecode/gen"
	"github.com/grahambates/m68kdecode/internal/log"
	"github.com/grahambates/m68kdecode/table"
)

// run compiles the table and writes the decoder. Nothing is written, the
// model dump included, if the table doesn't parse. Code that fails formatting is still written, so that
// it can be inspected, and the FormatError is returned.
func run(args CLI) error {
	t, err := table.ParseFile(args.Table)
	if err != nil {
		return err
	}
	for _, sh := range t.Shadowed() {
		log.ModTable.WarnZ("instruction is unreachable").
			Stringer("insn", sh.Insn).
			Stringer("shadowed_by", sh.By).
			End()
	}

	if args.DumpModel != nil {
		if err := args.DumpModel.open(); err != nil {
			return errors.Wrap(err, "dump model")
		}
		defer args.DumpModel.Close()
		if err := t.EncodeJSON(args.DumpModel); err != nil {
			return errors.Wrap(err, "dump model")
		}
	}

	cfg, err := gen.FindConfig(args.Config, args.Table)
	if err != nil {
		return err
	}
	switch {
	case args.Package != "":
		cfg.Package = args.Package
	case cfg.Package == gen.DefaultConfig().Package:
		if pkg := packageFromDir(args.Output); pkg != "" {
			cfg.Package = pkg
		}
	}

	generate := gen.Generate
	if args.NoFormat {
		generate = gen.GenerateUnformatted
	}
	out, genErr := generate(t, cfg)
	var ferr *gen.FormatError
	if genErr != nil && !errors.As(genErr, &ferr) {
		return genErr
	}

	if err := os.WriteFile(args.Output, out, 0o644); err != nil {
		return err
	}
	if ferr != nil {
		log.ModGen.ErrorZ("generated code does not format").
			String("output", args.Output).
			Error("error", ferr.Err).
			End()
	}
	log.ModGen.InfoZ("decoder written").
		String("output", args.Output).
		String("package", cfg.Package).
		End()
	return genErr
}

// packageFromDir returns the name of the directory holding path if it is a
// valid package name, otherwise "".
func packageFromDir(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	name := strings.ReplaceAll(filepath.Base(filepath.Dir(abs)), "-", "_")
	if !token.IsIdentifier(name) {
		return ""
	}
	return name
}

func reportSyntaxError(w io.Writer, err *table.SyntaxError) {
	fmt.Fprintf(w, "%s(%d): bad line\n", err.File, err.Line)
	fmt.Fprintf(w, "%s(%d): line %q\n", err.File, err.Line, err.Text)
	if err.Reason != "" {
		fmt.Fprintf(w, "%s(%d): %s\n", err.File, err.Line, err.Reason)
	}
}
