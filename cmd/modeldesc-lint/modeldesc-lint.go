package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fmukit/modeldesc"
	"github.com/jessevdk/go-flags"
)

type cmdopts struct {
	Quiet   bool `long:"quiet" short:"q" description:"suppress diagnostics"`
	Version bool `long:"version" description:"display the library version"`
}

func main() {
	os.Exit(_main())
}

func showUsage() {
	fmt.Printf(`Usage : modeldesc-lint [options] modelDescription.xml ...
	Parse the model description files and dump the resulting tree
	--quiet   : suppress diagnostics
	--version : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		fmt.Printf("modeldesc-lint: using modeldesc version %s\n", modeldesc.Version)
		return 0
	}

	if len(args) == 0 {
		showUsage()
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if opts.Quiet {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := modeldesc.New(modeldesc.WithLogger(logger))
	for _, f := range args {
		md, err := p.ParseFile(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		d := modeldesc.Dumper{}
		if err := d.Dump(os.Stdout, md); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
	}

	return 0
}
