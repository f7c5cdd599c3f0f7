// SPDX-License-Identifier: EPL-2.0

// Command sndinfo inspects, lists and converts sound files.
//
//	sndinfo [-env FILE] info [-log] FILE...
//	sndinfo formats
//	sndinfo convert [-major wav] [-subtype pcm16] IN OUT
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/sndfile"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
)

const usage = `usage: sndinfo [-env FILE] <command> [args]

commands:
  info [-log] FILE...                          print file parameters and tags
  formats                                      list the library's format table
  convert [-major wav] [-subtype pcm16] IN OUT copy IN to a new file
`

func main() {
	ctx := logger.WithContext(context.Background())

	if err := doMain(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.Ef(ctx, "run err %+v", err)
		os.Exit(1)
	}
}

func doMain(ctx context.Context, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("sndinfo", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }

	var showVersion bool
	var envFile string
	fs.BoolVar(&showVersion, "v", false, "Print library version and quit")
	fs.BoolVar(&showVersion, "version", false, "Print library version and quit")
	fs.StringVar(&envFile, "env", ".env", "Optional .env file with SNDINFO_* settings")
	if err := fs.Parse(args); err != nil {
		return errors.Wrapf(err, "parse flags")
	}

	if showVersion {
		fmt.Fprintln(w, sndfile.Version())
		return nil
	}

	cfg, err := loadConfig(ctx, envFile)
	if err != nil {
		return errors.Wrapf(err, "load config")
	}

	// Install signals.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer signal.Stop(sc)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case s := <-sc:
			logger.Tf(ctx, "Got signal %v", s)
			cancel()
		case <-ctx.Done():
		}
	}()

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no command")
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "info":
		return runInfo(ctx, cfg, rest, w)
	case "formats":
		return runFormats(w)
	case "convert":
		return runConvert(ctx, cfg, rest)
	}

	fs.Usage()
	return errors.Errorf("unknown command %v", cmd)
}
