// Command carpet prints a two-glyph carpet to stdout.
//
// Usage:
//
//	carpet [-view] [-table] -cols N -rows M [-a X] [-b Y]
//	carpet [-view] [-table] COLS ROWS A B
//
// Exit status is 0 on success, 1 when the carpet cannot be generated and 2
// on a usage error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/Ohad-Ma/carpet-maker-2/carpet"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks malformed command lines.
var errUsage = errors.New("usage error")

// options is the parsed command line.
type options struct {
	cols, rows         int
	primary, secondary byte
	view               bool
	table              bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "carpet: ", 0)

	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		logger.Print(err)
		return exitUsage
	}

	if opts.table {
		if err := carpet.Validate(opts.cols, opts.rows, opts.primary, opts.secondary); err != nil {
			logger.Print(err)
			return exitError
		}
		m, err := carpet.DistanceTable(opts.cols, opts.rows)
		if err != nil {
			logger.Print(err)
			return exitError
		}
		fmt.Fprint(stdout, m)
		return exitOK
	}

	if opts.view {
		if err := carpet.Validate(opts.cols, opts.rows, opts.primary, opts.secondary); err != nil {
			logger.Print(err)
			return exitError
		}
		mask, err := carpet.Mask(opts.cols, opts.rows)
		if err != nil {
			logger.Print(err)
			return exitError
		}
		if err := runView(mask, opts.primary, opts.secondary); err != nil {
			logger.Print(err)
			return exitError
		}
		return exitOK
	}

	s, err := carpet.Mat(opts.cols, opts.rows, opts.primary, opts.secondary)
	if err != nil {
		logger.Print(err)
		return exitError
	}
	if f, ok := stdout.(*os.File); ok {
		if w, tooWide := exceedsTerminal(int(f.Fd()), opts.cols); tooWide {
			logger.Printf("warning: carpet is %d columns wide, terminal has %d", opts.cols, w)
		}
	}
	if _, err := io.WriteString(stdout, s); err != nil {
		logger.Print(err)
		return exitError
	}

	return exitOK
}

// parseArgs reads flags and the optional positional form COLS ROWS A B.
// Positional values override flags.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var (
		opts      options
		primary   string
		secondary string
	)
	fs := flag.NewFlagSet("carpet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.cols, "cols", 0, "number of `columns` (odd, >= 1)")
	fs.IntVar(&opts.rows, "rows", 0, "number of `rows` (odd, >= 1)")
	fs.StringVar(&primary, "a", "@", "primary `glyph` (outer band)")
	fs.StringVar(&secondary, "b", "-", "secondary `glyph`")
	fs.BoolVar(&opts.view, "view", false, "show the carpet in an interactive terminal view")
	fs.BoolVar(&opts.table, "table", false, "print the band distance table instead of glyphs")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: carpet [options] [COLS ROWS A B]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch fs.NArg() {
	case 0:
	case 4:
		var err error
		if opts.cols, err = strconv.Atoi(fs.Arg(0)); err != nil {
			return opts, fmt.Errorf("%w: COLS %q is not an integer", errUsage, fs.Arg(0))
		}
		if opts.rows, err = strconv.Atoi(fs.Arg(1)); err != nil {
			return opts, fmt.Errorf("%w: ROWS %q is not an integer", errUsage, fs.Arg(1))
		}
		primary, secondary = fs.Arg(2), fs.Arg(3)
	default:
		return opts, fmt.Errorf("%w: expected 0 or 4 arguments, got %d", errUsage, fs.NArg())
	}

	var err error
	if opts.primary, err = singleByte("primary", primary); err != nil {
		return opts, err
	}
	if opts.secondary, err = singleByte("secondary", secondary); err != nil {
		return opts, err
	}
	if opts.view && opts.table {
		return opts, fmt.Errorf("%w: -view and -table are mutually exclusive", errUsage)
	}

	return opts, nil
}

// singleByte requires s to be exactly one byte long.
func singleByte(name, s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %s glyph %q must be a single character", errUsage, name, s)
	}

	return s[0], nil
}
