package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"git.thinkinpower.net/bincountry/bdata"
	"git.thinkinpower.net/bincountry/file"
	"git.thinkinpower.net/bincountry/mod"
	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type options struct {
	dataset string
	binFile string
	keyMode string
	level   string
	each    bool
	asJSON  bool
	bins    []string
}

func parseOptions(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("bincountry", flag.ContinueOnError)
	fs.StringVar(&opts.dataset, "d", "", "-d /home/testuser/bin-list-data.csv, defaults to the bundled dataset")
	fs.StringVar(&opts.binFile, "f", "", "-f bins.txt, one bin per line, - reads stdin")
	fs.StringVar(&opts.keyMode, "k", bdata.KeyModeDirect, "-k [direct|digest]")
	fs.StringVar(&opts.level, "l", "info", "-l [debug|info|warn|error]")
	fs.BoolVar(&opts.each, "each", false, "print one line per input bin instead of the country set")
	fs.BoolVar(&opts.asJSON, "json", false, "print the result as json")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.bins = fs.Args()
	return opts, nil
}

func main() {
	logger.SetFormatter(&logger.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logger.InfoLevel)

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var (
		opts    options
		level   logger.Level
		keyFunc bdata.KeyFunc
		db      bdata.BinDatabase
		err     error
	)
	if opts, err = parseOptions(args); err != nil {
		return err
	}
	if level, err = logger.ParseLevel(opts.level); err != nil {
		return err
	}
	logger.SetLevel(level)

	bins := opts.bins
	if opts.binFile != "" {
		var more []string
		if more, err = file.ReadBins(opts.binFile, stdin); err != nil {
			return err
		}
		bins = append(bins, more...)
	}
	if len(bins) == 0 {
		return errors.New("no bins given, pass them as arguments or with -f")
	}

	if keyFunc, err = bdata.KeyFuncFor(opts.keyMode); err != nil {
		return err
	}
	dbOpts := []bdata.Option{bdata.WithKeyFunc(keyFunc)}
	if opts.dataset != "" {
		dbOpts = append(dbOpts, bdata.WithLoader(bdata.FileLoader(opts.dataset)))
	}
	if db, err = bdata.OpenDatabase(dbOpts...); err != nil {
		return errors.Wrap(err, "open bin database")
	}
	return lookup(db, bins, opts, stdout)
}

func lookup(db bdata.BinDatabase, bins []string, opts options, w io.Writer) error {
	var (
		codes   mod.CodeSet
		matches []mod.BinMatch
		err     error
	)
	if codes, err = db.ISO2Codes(bins); err != nil {
		return err
	}
	if matches, err = db.LookupEach(bins); err != nil {
		return err
	}

	resp := mod.LookupResponse{Codes: codes.Sorted()}
	for _, m := range matches {
		if m.Found {
			resp.Matched++
		} else {
			resp.Missed++
		}
	}
	logger.Debugf("matched %s of %s bins, %d countries",
		humanize.Comma(int64(resp.Matched)), humanize.Comma(int64(len(bins))), codes.Len())

	if opts.asJSON {
		if opts.each {
			resp.Matches = matches
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(resp)
	}

	if opts.each {
		for _, m := range matches {
			if !m.Found {
				if _, err = fmt.Fprintf(w, "%s\t-\n", m.Bin); err != nil {
					return err
				}
				continue
			}
			r := m.Record
			if _, err = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.Bin, r.IsoCode2, r.IsoCode3, r.Brand, r.CardType); err != nil {
				return err
			}
		}
		return nil
	}
	for _, code := range resp.Codes {
		if _, err = fmt.Fprintln(w, code); err != nil {
			return err
		}
	}
	return nil
}
