package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/grahambates/m68kdecode/internal/log"
)

type CLI struct {
	Table  string `arg:"" name:"TABLE" help:"Instruction table to compile." type:"existingfile"`
	Output string `arg:"" name:"OUTPUT" help:"Go file to write." type:"path"`

	Config    string     `name:"config" help:"${config_help}" type:"existingfile" placeholder:"FILE"`
	Package   string     `name:"package" help:"Package name of the generated file, overrides the config."`
	DumpModel *outfile   `name:"dump-model" help:"Write the analyzed table as JSON." placeholder:"FILE|stdout|stderr"`
	NoFormat  bool       `name:"no-format" help:"Write the generated code without running gofmt on it."`
	Log       logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
}

var vars = kong.Vars{
	"config_help": "Configuration file. Defaults to gendecoder.toml next to TABLE, then the user configuration.",
	"log_help":    "Enable debug logging for specified modules.",
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("gendecoder"),
		kong.Description("Compile an instruction table into a Go decoder."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
}

func parseArgs(args []string) CLI {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	_, err = parser.Parse(args)
	checkf(err, "failed to parse command line")
	return cli
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}

	loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
	var strs []string
	for _, m := range log.ModuleNames() {
		strs = append(strs, "    - "+m)
	}

	fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode records FILE|stdout|stderr. Nothing is created until open.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	return nil
}

// open creates the file f names. It does nothing if f already has a
// writer.
func (f *outfile) open() error {
	if f.w != nil {
		return nil
	}
	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }

func (f *outfile) Close() error {
	if f.close == nil {
		return nil
	}
	return f.close()
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
