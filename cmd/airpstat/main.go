// Command airpstat loads JSON documents into value trees and reports how
// much memory the trees take.
package main

import (
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	airp "github.com/d1ced/jsonvalue_airp"
)

// CLI defines the command-line interface for airpstat.
var CLI struct {
	LogLevel string   `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Only log messages with the given severity or above."`
	Dump     bool     `short:"d" help:"Write the storage layout of each document to stdout."`
	Indent   string   `default:"  " help:"Indentation of the dump."`
	Files    []string `arg:"" name:"file" help:"JSON files to read, - for stdin."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("airpstat"),
		kong.Description("Report the in-memory footprint of JSON documents."),
		kong.UsageOnError(),
	)

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(CLI.LogLevel, level.InfoValue())))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	failed := false
	for _, name := range CLI.Files {
		if err := stat(logger, name, os.Stdout); err != nil {
			level.Error(logger).Log("msg", "can not load document", "file", name, "err", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func stat(logger log.Logger, name string, out io.Writer) error {
	r, closeFn, err := open(name)
	if err != nil {
		return err
	}
	defer closeFn()
	return statReader(logger, name, r, out)
}

func statReader(logger log.Logger, name string, r io.Reader, out io.Writer) error {
	start := time.Now()
	v, err := load(r)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "document loaded", "file", name, "kind", v.Kind(), "took", time.Since(start))

	f := airp.Measure(&v)
	inline := 0.
	if n := f.InlineStrings + f.HeapStrings; n > 0 {
		inline = float64(f.InlineStrings) / float64(n)
	}
	level.Info(logger).Log(
		"file", name,
		"cells", humanize.Comma(int64(f.Cells)),
		"containers", f.Containers,
		"slack", f.SlackSlots,
		"strings", f.InlineStrings+f.HeapStrings,
		"inline_ratio", humanize.FtoaWithDigits(inline, 2),
		"heap", humanize.IBytes(uint64(f.HeapBytes)),
		"total", humanize.IBytes(uint64(f.Bytes())),
	)

	if CLI.Dump {
		if _, err := airp.Dump(out, &v, CLI.Indent); err != nil {
			return errors.Wrap(err, "dump")
		}
	}
	return nil
}

func open(name string) (io.Reader, func() error, error) {
	if name == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	return f, f.Close, nil
}
