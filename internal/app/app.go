// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"edeck-core/deck"
	"edeck-core/engine"
	"edeck-core/interp"
	"edeck/internal/cli"
	"edeck/internal/cmdutil"
	"edeck/internal/output"
	"edeck/internal/render"
	"edeck/internal/version"
	"edeck/internal/writers"
	"edeck/pkg/api"
)

// Run parses a deck, builds the engine model and answers performance
// queries. Exit codes: 0 ok, 1 deck/query failure, 2 usage, 3 write error.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("edeck")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "edeck version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	tab, err := deck.Load(opts.DeckFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	for _, w := range tab.Warnings {
		cmdutil.Warnf(stderr, opts.Quiet, "%s: %s", tab.Name, w)
	}

	method, _ := interp.ParseMethod(opts.Method) // validated by ParseArgs
	cfg := engine.Config{
		ScaleFactor:               opts.ScaleFactor,
		ClampNegativeThrust:       opts.ClampNegativeThrust,
		GeopotentialAltitude:      opts.GeopotentialAltitude,
		GenerateFlightIdle:        opts.FlightIdle,
		FlightIdleThrustFraction:  opts.IdleThrustFraction,
		FlightIdleMinFuelFraction: opts.IdleMinFuelFraction,
		FlightIdleMaxFuelFraction: opts.IdleMaxFuelFraction,
		Interp:                    interp.Options{Method: method},
	}
	if opts.Extrapolate {
		cfg.Interp.Policy = interp.Extrapolate
	}
	model, err := engine.NewDeck(tab.Name, tab, cfg)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	conditions, hasHybrid, err := collectConditions(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	axes := model.Axes()
	rows := make([]api.PerformanceV1, 0, len(conditions))
	for _, c := range conditions {
		out, notice, err := model.Query(c)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		if notice.OutOfEnvelope() {
			cmdutil.Warnf(stderr, opts.Quiet,
				"operating point (%g, %g, %g) outside sampled envelope; %s policy applied",
				c.Mach, c.Altitude, c.Throttle, policyName(cfg.Interp.Policy))
		}
		rows = append(rows, output.ToAPIRow(tab.Name, c, hasHybrid, out, notice, axes))
	}

	if opts.Pretty {
		_, _ = fmt.Fprint(outw, render.PerformanceTable(rows))
	} else if err := writers.WritePerformance(opts.Output, outw, rows, opts.Header); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flush(outw, stderr, 0)
}

func collectConditions(opts cli.Options) ([]engine.Conditions, bool, error) {
	var (
		out       []engine.Conditions
		anyHybrid bool
	)
	for _, s := range opts.At {
		c, hybrid, err := cli.ParseConditions(s)
		if err != nil {
			return nil, false, err
		}
		anyHybrid = anyHybrid || hybrid
		out = append(out, c)
	}
	if opts.PointsFile != "" {
		pts, hybrid, err := cli.LoadConditions(opts.PointsFile)
		if err != nil {
			return nil, false, err
		}
		anyHybrid = anyHybrid || hybrid
		out = append(out, pts...)
	}
	return out, anyHybrid, nil
}

func policyName(p interp.Policy) string {
	if p == interp.Extrapolate {
		return "extrapolation"
	}
	return "boundary-clamp"
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
