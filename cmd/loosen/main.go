// The loosen command generates loosened variants of Go functions.
// The loosened variant of a function F takes all the arguments of F
// as a single tuple and calls F with them.
//
// Usage:
//
//	loosen [flags] [packages | files]
//
// A function is marked for loosening by a //loosen:loose line in its
// doc comment, or by naming it with --funcs. The arguments are either
// package patterns or Go source files. With no arguments, loosen
// processes the file named by $GOFILE when run by go generate, and
// the package in the current directory otherwise, so a package can
// include the directive
//
//	//go:generate go run github.com/rogpeppe/loosen/cmd/loosen
//
// By default the loosened functions for x.go are written to x_loose.go.
// With -w, they are written to x.go itself, each directly after its
// original.
//
// Settings are also read from a .loosen.toml or .loosen.yaml file in
// the current directory or the closest parent directory that has one.
// Flags take precedence over the settings in the file:
//
//	tuple = "example.com/tuple"  # import path of the tuple package
//	tests = true                 # process test files too
//	jobs = 4                     # files processed concurrently
//	write = true                 # as for -w
//	funcs = ["Distance"]         # as for --funcs
//
// The exit status is 0 on success, 1 when the configuration is
// invalid, 4 when the input cannot be processed and 10 after an
// internal error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/rogpeppe/loosen/gen"
)

// version is set via ldflags.
var version = "dev"

func main() {
	os.Exit(Main())
}

// Main runs the command with the process's arguments
// and returns its exit code.
func Main() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

type options struct {
	write   bool
	funcs   []string
	tuple   string
	tests   bool
	jobs    int
	config  string
	verbose bool
	logJSON string
	noColor bool
	version bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var o options
	fs := flag.NewFlagSet("loosen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVarP(&o.write, "write", "w", false, "write loosened functions into the source files")
	fs.StringSliceVar(&o.funcs, "funcs", nil, "also loosen the named functions (comma-separated)")
	fs.StringVar(&o.tuple, "tuple", "", "import path of the tuple package (default "+gen.DefaultTuplePath+")")
	fs.BoolVar(&o.tests, "tests", false, "process test files when loading packages")
	fs.IntVarP(&o.jobs, "jobs", "j", 0, "maximum number of files processed concurrently (0 for no limit)")
	fs.StringVar(&o.config, "config", "", "path to the configuration file (default: search for .loosen.toml or .loosen.yaml)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log progress")
	fs.StringVar(&o.logJSON, "log-json", "", "also write a JSON log to `file`")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&o.version, "version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: loosen [flags] [packages | files]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return report(stderr, inputError("invalid arguments", "", "run loosen --help for usage", err), o.noColor)
	}
	if o.version {
		fmt.Fprintf(stdout, "loosen version %s\n", version)
		return ExitSuccess
	}
	cfg, err := o.genConfig(fs)
	if err != nil {
		return report(stderr, err, o.noColor)
	}
	logger, closeLog, err := newLogger(stderr, o.verbose, o.logJSON)
	if err != nil {
		return report(stderr, configError("cannot open log file", "", "check the --log-json path", err), o.noColor)
	}
	defer closeLog()
	cfg.Logger = logger

	outputs, err := generate(ctx, cfg, fs.Args())
	if err != nil {
		return report(stderr, classify(err), o.noColor)
	}
	if err := cfg.Write(outputs); err != nil {
		return report(stderr, internalError("cannot write generated code", "", "", err), o.noColor)
	}
	return ExitSuccess
}

// generate runs the generator on the files or packages in args.
func generate(ctx context.Context, cfg *gen.Config, args []string) ([]*gen.Output, error) {
	if len(args) == 0 {
		if file := os.Getenv("GOFILE"); file != "" {
			return cfg.Paths(ctx, file)
		}
		return cfg.Packages(ctx, "", ".")
	}
	files := 0
	for _, arg := range args {
		if strings.HasSuffix(arg, ".go") {
			files++
		}
	}
	switch files {
	case 0:
		return cfg.Packages(ctx, "", args...)
	case len(args):
		return cfg.Paths(ctx, args...)
	}
	return nil, inputError("cannot mix files and packages", "some arguments name Go files and some name packages", "run loosen separately for each", nil)
}
