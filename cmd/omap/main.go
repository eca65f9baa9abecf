package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/denismitr/ordered/orderedmap"
	"github.com/denismitr/ordered/utils"
)

const version = "v0.1.0"

type cmdopts struct {
	Sort      bool   `long:"sort" description:"order entries by key"`
	Locale    string `long:"locale" description:"order entries by key using the collation of a BCP 47 language tag"`
	Reverse   bool   `long:"reverse" description:"reverse the final order"`
	GoSyntax  bool   `long:"go-syntax" description:"print keys and values in Go syntax"`
	Separator string `long:"separator" default:"=" description:"separator between a key and its value"`
	Version   bool   `long:"version" description:"display the version"`
}

func main() {
	os.Exit(_main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func showVersion(w io.Writer) {
	fmt.Fprintf(w, "omap: version %s\n", version)
}

func showUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage : omap [options] files ...
	Read key=value lines from the files (or stdin) and print them as an ordered map.
	A repeated key keeps its first position and its last value.
	--sort            : order entries by key
	--locale=TAG      : order entries by key using the collation for TAG
	--reverse         : reverse the final order
	--go-syntax       : print keys and values in Go syntax
	--separator=SEP   : separator between a key and its value (default "=")
	--version         : display the version
`)
}

func _main(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := cmdopts{}
	args, err := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash).ParseArgs(argv)
	if err != nil {
		showUsage(stderr)
		return 1
	}

	if opts.Version {
		showVersion(stdout)
		return 0
	}

	if opts.Separator == "" {
		fmt.Fprintf(stderr, "separator must not be empty\n")
		return 1
	}

	var pairs []utils.Pair[string, string]
	if len(args) == 0 {
		pairs, err = readPairs(stdin, opts.Separator)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", errors.Wrap(err, "stdin"))
			return 1
		}
	}

	for _, f := range args {
		filePairs, err := readFile(f, opts.Separator)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return 1
		}
		pairs = append(pairs, filePairs...)
	}

	om := orderedmap.FromPairs(pairs...)
	if pdebug.Enabled {
		pdebug.Printf("read %d lines into %d entries", len(pairs), om.Len())
	}

	switch {
	case opts.Locale != "":
		tag, err := language.Parse(opts.Locale)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", errors.Wrapf(err, "invalid locale %q", opts.Locale))
			return 1
		}

		c := collate.New(tag)
		om.SortInPlaceBy(func(a, b utils.Pair[string, string]) bool {
			return c.CompareString(a.Key, b.Key) < 0
		})
	case opts.Sort:
		orderedmap.SortInPlaceByKey(om)
	}

	if opts.Reverse {
		om = reversed(om)
	}

	if opts.GoSyntax {
		fmt.Fprintf(stdout, "%#v\n", om)
	} else {
		fmt.Fprintf(stdout, "%s\n", om)
	}

	return 0
}

func readFile(name, sep string) ([]utils.Pair[string, string], error) {
	fh, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	pairs, err := readPairs(fh, sep)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}

	return pairs, nil
}

// readPairs reads one pair per line, blank lines and lines starting with # are skipped
func readPairs(r io.Reader, sep string) ([]utils.Pair[string, string], error) {
	var pairs []utils.Pair[string, string]

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		key, value, found := strings.Cut(text, sep)
		if !found {
			return nil, errors.Errorf("line %d: missing separator %q", line, sep)
		}

		pairs = append(pairs, utils.NewPair(strings.TrimSpace(key), strings.TrimSpace(value)))
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}

	return pairs, nil
}

func reversed(om *orderedmap.OrderedMap[string, string]) *orderedmap.OrderedMap[string, string] {
	result := orderedmap.NewOrderedMap[string, string](orderedmap.WithCapacity(om.Len()))
	for !om.IsEmpty() {
		p, err := om.RemoveLast()
		if err != nil {
			break
		}
		result.Set(p.Key, p.Value)
	}

	return result
}
