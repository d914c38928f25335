// internal/exportapp/app.go
package exportapp

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"edeck-core/deck"
	"edeck/internal/cmdutil"
	"edeck/internal/export"
	"edeck/internal/exportcli"
	"edeck/internal/version"
	"edeck/internal/writers"
)

// Run converts a deck file to CSV or XLSX.
// Exit codes: 0 ok, 1 malformed deck, 2 usage, 3 write error.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := exportcli.NewFlagSet("edeck-export")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 0)
	}

	opts, err := exportcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "edeck-export version %s\n", version.Version)
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

	switch opts.Format {
	case "xlsx":
		f, err := export.BuildXLSX(tab)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		if err := f.SaveAs(opts.Out); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	default:
		dst := io.Writer(outw)
		if opts.Out != "" {
			fh, err := os.Create(opts.Out)
			if err != nil {
				_, _ = fmt.Fprintln(stderr, err)
				return 3
			}
			defer func() { _ = fh.Close() }()
			dst = fh
		}
		if err := export.WriteCSV(dst, tab); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
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
