// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"edeck-core/interp"
	"edeck/internal/version"
)

// Options holds all CLI flags for the performance-query tool.
type Options struct {
	// Deck input
	DeckFile string

	// Query points
	At         []string // repeatable "mach,alt,throttle[,hybrid]"
	PointsFile string   // whitespace table of conditions, # comments

	// Model options
	Method               string
	Extrapolate          bool
	ScaleFactor          float64
	ClampNegativeThrust  bool
	GeopotentialAltitude bool

	FlightIdle          bool
	IdleThrustFraction  float64
	IdleMinFuelFraction float64
	IdleMaxFuelFraction float64

	// Output
	Output string
	Pretty bool
	Header bool // true unless --no-header
	Quiet  bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: engine performance deck queries

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.DeckFile, "deck", "", "engine deck data file [*]")

	var at stringSlice
	fs.Var(&at, "at", "operating point mach,alt,throttle[,hybrid] (repeatable)")
	fs.StringVar(&opt.PointsFile, "points", "", "file of operating points, one per line")

	fs.StringVar(&opt.Method, "method", "auto", "interpolation: auto | grid | simplex | idw [auto]")
	fs.BoolVar(&opt.Extrapolate, "extrapolate", false, "extrapolate outside the sampled envelope instead of clamping [false]")
	fs.Float64Var(&opt.ScaleFactor, "scale", 1.0, "linear scale factor on force/flow outputs [1.0]")
	fs.BoolVar(&opt.ClampNegativeThrust, "clamp-negative-thrust", false, "clamp negative net thrust to zero [false]")
	fs.BoolVar(&opt.GeopotentialAltitude, "geopotential-altitude", false, "treat deck altitudes as geopotential, convert to geometric [false]")

	fs.BoolVar(&opt.FlightIdle, "flight-idle", false, "synthesize a flight-idle point per flight condition [false]")
	fs.Float64Var(&opt.IdleThrustFraction, "idle-thrust-fraction", 0.0, "flight idle: net thrust as fraction of peak [0.0]")
	fs.Float64Var(&opt.IdleMinFuelFraction, "idle-min-fuel-fraction", 0.08, "flight idle: fuel flow floor as fraction of peak [0.08]")
	fs.Float64Var(&opt.IdleMaxFuelFraction, "idle-max-fuel-fraction", 1.0, "flight idle: fuel flow ceiling as fraction of peak [1.0]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | tsv | csv | json | jsonl [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "render results as a terminal table [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
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
	opt.At = at
	opt.Header = !noHeader

	// Validation
	if opt.DeckFile == "" {
		return opt, errors.New("--deck is required")
	}
	if len(opt.At) == 0 && opt.PointsFile == "" {
		return opt, errors.New("provide at least one --at point or a --points file")
	}
	if _, err := interp.ParseMethod(opt.Method); err != nil {
		return opt, err
	}
	switch opt.Output {
	case "text", "tsv", "csv", "json", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.ScaleFactor <= 0 {
		return opt, errors.New("--scale must be > 0")
	}
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"--idle-thrust-fraction", opt.IdleThrustFraction},
		{"--idle-min-fuel-fraction", opt.IdleMinFuelFraction},
		{"--idle-max-fuel-fraction", opt.IdleMaxFuelFraction},
	} {
		if f.val < 0 || f.val > 1 {
			return opt, fmt.Errorf("%s must be within [0,1]", f.name)
		}
	}
	if opt.IdleMinFuelFraction > opt.IdleMaxFuelFraction {
		return opt, errors.New("--idle-min-fuel-fraction exceeds --idle-max-fuel-fraction")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
