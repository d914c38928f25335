// internal/exportcli/options.go
package exportcli

import (
	"errors"
	"flag"
	"fmt"

	"edeck/internal/version"
)

// Options holds all CLI flags for the deck export tool.
type Options struct {
	DeckFile string

	Format string // csv | xlsx
	Out    string // destination path; csv defaults to stdout

	Quiet bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: export an engine performance deck to spreadsheet formats

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.DeckFile, "deck", "", "engine deck data file [*]")
	fs.StringVar(&opt.Format, "format", "csv", "export format: csv | xlsx [csv]")
	fs.StringVar(&opt.Out, "out", "", "destination file; csv writes to stdout when omitted")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if opt.DeckFile == "" {
		return opt, errors.New("--deck is required")
	}
	switch opt.Format {
	case "csv":
	case "xlsx":
		if opt.Out == "" {
			return opt, errors.New("--out is required for xlsx export")
		}
	default:
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	return opt, nil
}
