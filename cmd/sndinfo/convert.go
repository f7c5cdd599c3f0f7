// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"flag"
	"strings"

	"github.com/ik5/sndfile"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
)

var majorByName = map[string]sndfile.MajorFormat{
	"wav":  sndfile.FormatWAV,
	"aiff": sndfile.FormatAIFF,
	"aif":  sndfile.FormatAIFF,
	"flac": sndfile.FormatFLAC,
	"ogg":  sndfile.FormatOGG,
	"caf":  sndfile.FormatCAF,
	"w64":  sndfile.FormatW64,
	"rf64": sndfile.FormatRF64,
	"au":   sndfile.FormatAU,
}

var subtypeByName = map[string]sndfile.Subtype{
	"pcms8":  sndfile.SubtypePCMS8,
	"pcmu8":  sndfile.SubtypePCMU8,
	"pcm16":  sndfile.SubtypePCM16,
	"pcm24":  sndfile.SubtypePCM24,
	"pcm32":  sndfile.SubtypePCM32,
	"float":  sndfile.SubtypeFloat,
	"double": sndfile.SubtypeDouble,
	"vorbis": sndfile.SubtypeVorbis,
}

func parseFormat(major, subtype string) (sndfile.Format, error) {
	m, ok := majorByName[strings.ToLower(major)]
	if !ok {
		return sndfile.Format{}, errors.Errorf("unknown major format %v", major)
	}

	s, ok := subtypeByName[strings.ToLower(subtype)]
	if !ok {
		return sndfile.Format{}, errors.Errorf("unknown subtype %v", subtype)
	}

	return sndfile.Format{Major: m, Subtype: s}, nil
}

// runConvert copies every frame and tag of IN into a new file OUT.
func runConvert(ctx context.Context, cfg *config, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	major := fs.String("major", "wav", "Output container")
	subtype := fs.String("subtype", "pcm16", "Output sample encoding")
	if err := fs.Parse(args); err != nil {
		return errors.Wrapf(err, "parse convert flags")
	}
	if fs.NArg() != 2 {
		return errors.New("usage: sndinfo convert [-major wav] [-subtype pcm16] IN OUT")
	}
	src, dst := fs.Arg(0), fs.Arg(1)

	format, err := parseFormat(*major, *subtype)
	if err != nil {
		return errors.Wrapf(err, "parse format")
	}

	in, err := sndfile.Open(src, sndfile.ModeRead)
	if err != nil {
		return errors.Wrapf(err, "open %v", src)
	}
	defer in.Close()

	info := in.Info()
	outInfo := sndfile.Info{
		SampleRate: info.SampleRate,
		Channels:   info.Channels,
		Format:     format,
	}
	if !sndfile.FormatCheck(outInfo) {
		return errors.Errorf("cannot write %v at %vHz x %v", format, info.SampleRate, info.Channels)
	}

	out, err := sndfile.Open(dst, sndfile.ModeWrite, sndfile.WithInfo(outInfo))
	if err != nil {
		return errors.Wrapf(err, "create %v", dst)
	}
	defer out.Close()

	for _, kind := range sndfile.TagKinds {
		v, ok := in.Tag(kind)
		if !ok {
			continue
		}
		if err := out.SetTag(kind, v); err != nil {
			logger.Wf(ctx, "drop %v tag of %v, err %v", kind, src, err)
		}
	}

	frames, err := copyFrames(ctx, in, out, cfg.ChunkFrames)
	if err != nil {
		return errors.Wrapf(err, "copy %v to %v", src, dst)
	}

	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "close %v", dst)
	}

	logger.Tf(ctx, "convert %v to %v ok, frames=%v, format=%v", src, dst, frames, format)
	return nil
}

// copyFrames moves frames from in to out through a float64 buffer.
func copyFrames(ctx context.Context, in, out *sndfile.File, chunkFrames int) (int64, error) {
	channels := max(int(in.Info().Channels), 1)
	buf := make([]float64, chunkFrames*channels)

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		n, err := in.ReadFramesFloat64(buf, int64(chunkFrames))
		if err != nil {
			return total, errors.Wrapf(err, "read")
		}
		if n == 0 {
			break
		}

		written, err := out.WriteFramesFloat64(buf, n)
		if err != nil {
			return total, errors.Wrapf(err, "write")
		}
		if written != n {
			return total, errors.Errorf("short write %v of %v frames, last error %v", written, n, out.LastError())
		}
		total += n
	}

	if err := in.LastError(); err != nil {
		return total, errors.Wrapf(err, "read")
	}

	return total, nil
}
