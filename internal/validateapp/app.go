// internal/validateapp/app.go
package validateapp

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"edeck-core/deck"
	"edeck-core/engine"
	"edeck/internal/jsonutil"
	"edeck/internal/output"
	"edeck/internal/render"
	"edeck/internal/validatecli"
	"edeck/internal/version"
	"edeck/internal/writers"
)

// Run validates a deck file and prints a summary report.
// Exit codes: 0 ok, 1 malformed deck, 2 usage, 3 write error.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := validatecli.NewFlagSet("edeck-validate")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 0)
	}

	opts, err := validatecli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "edeck-validate version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	tab, err := deck.Load(opts.DeckFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	model, err := engine.NewDeck(tab.Name, tab, engine.DefaultConfig())
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	switch opts.Output {
	case "json":
		rep := output.ToValidation(tab, model.OnGrid())
		if err := jsonutil.EncodePretty(outw, rep); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	default:
		_, _ = fmt.Fprint(outw, render.DeckReport(tab, model.OnGrid()))
	}
	return flush(outw, stderr, 0)
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
