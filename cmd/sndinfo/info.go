// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ik5/sndfile"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
	"golang.org/x/sync/errgroup"
)

// runInfo opens every file on its own goroutine, at most cfg.Jobs at a time,
// and prints the reports in argument order.
func runInfo(ctx context.Context, cfg *config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	withLog := fs.Bool("log", false, "Also print the library log for each file")
	if err := fs.Parse(args); err != nil {
		return errors.Wrapf(err, "parse info flags")
	}
	if fs.NArg() == 0 {
		return errors.New("usage: sndinfo info [-log] FILE...")
	}

	paths := fs.Args()
	reports := make([]string, len(paths))
	failed := make([]bool, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report, err := describe(path, *withLog)
			if err != nil {
				logger.Wf(ctx, "info %v err %v", path, err)
				report = fmt.Sprintf("== %s\nerror: %v\n", path, err)
				failed[i] = true
			}
			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrapf(err, "info")
	}

	var nFailed int
	for i, report := range reports {
		fmt.Fprint(w, report)
		if failed[i] {
			nFailed++
		}
	}

	if nFailed > 0 {
		return errors.Errorf("%v of %v files failed", nFailed, len(paths))
	}

	return nil
}

// describe opens path and renders its parameters, tags and optionally the
// library log.
func describe(path string, withLog bool) (string, error) {
	f, err := sndfile.Open(path, sndfile.ModeRead)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info := f.Info()

	var b strings.Builder
	fmt.Fprintf(&b, "== %s\n", path)
	fmt.Fprintf(&b, "Frames      : %d\n", info.Frames)
	fmt.Fprintf(&b, "Sample Rate : %d\n", info.SampleRate)
	fmt.Fprintf(&b, "Channels    : %d\n", info.Channels)
	fmt.Fprintf(&b, "Format      : %v (0x%08x)\n", info.Format, info.Format.Raw())
	fmt.Fprintf(&b, "Sections    : %d\n", info.Sections)
	fmt.Fprintf(&b, "Seekable    : %v\n", info.Seekable)
	if info.SampleRate > 0 {
		fmt.Fprintf(&b, "Duration    : %.3fs\n", float64(info.Frames)/float64(info.SampleRate))
	}

	for _, kind := range sndfile.TagKinds {
		if v, ok := f.Tag(kind); ok {
			fmt.Fprintf(&b, "%-11s : %s\n", kind, v)
		}
	}

	if withLog {
		log, err := f.LogInfo()
		if err != nil {
			return "", err
		}
		b.WriteString(log)
	}

	return b.String(), nil
}
