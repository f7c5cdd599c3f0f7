// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic interleaved frames for tests.
package audiotest

import (
	"io"
	"math"

	"github.com/ik5/sndfile/internal/pcm"
)

// Source produces frames from a waveform function, one call at a time.
type Source struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame int, channel int) float64
}

// NewSource returns a Source of totalFrames frames. waveform gives the
// sample for a frame index and channel.
func NewSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float64) *Source {
	return &Source{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource generates zeros.
func NewSilentSource(sampleRate, channels, totalFrames int) *Source {
	return NewSource(sampleRate, channels, totalFrames, func(int, int) float64 { return 0 })
}

// NewSineSource generates a sine at frequency, with each channel a quarter
// turn behind the previous one so channels never carry equal data.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *Source {
	return NewSource(sampleRate, channels, totalFrames, func(frame int, channel int) float64 {
		t := float64(frame) / float64(sampleRate)
		return 0.8 * math.Sin(2*math.Pi*frequency*t-float64(channel)*math.Pi/2)
	})
}

// NewRampSource generates a sawtooth in [-1, 1).
func NewRampSource(sampleRate, channels, totalFrames int) *Source {
	return NewSource(sampleRate, channels, totalFrames, func(frame int, channel int) float64 {
		return float64((frame*7+channel*13)%256)/128 - 1
	})
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }

// Reset starts the source over.
func (s *Source) Reset() {
	s.generated = 0
}

// ReadFrames fills dst with whole frames and returns the number of samples
// written. It returns io.EOF with the last frames.
func (s *Source) ReadFrames(dst []float64) (int, error) {
	if s.generated >= s.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.channels, s.totalFrames-s.generated)
	for frame := range frames {
		for ch := range s.channels {
			dst[frame*s.channels+ch] = s.waveform(s.generated+frame, ch)
		}
	}
	s.generated += frames

	if s.generated >= s.totalFrames {
		return frames * s.channels, io.EOF
	}

	return frames * s.channels, nil
}

// Float64 returns every remaining sample.
func (s *Source) Float64() []float64 {
	out := make([]float64, (s.totalFrames-s.generated)*s.channels)
	n, _ := s.ReadFrames(out)

	return out[:n]
}

// Int16 returns every remaining sample quantised to 16 bits.
func (s *Source) Int16() []int16 {
	return convert(s.Float64(), pcm.ToInt16)
}

// Int32 returns every remaining sample quantised to bitDepth and scaled to
// 32 bits, which is how a file of that depth reads back.
func (s *Source) Int32(bitDepth int) []int32 {
	return convert(s.Float64(), func(x float64) int32 {
		return pcm.ToInt32(pcm.Quantize(x, bitDepth))
	})
}

// Float32 returns every remaining sample quantised to 16 bits, so the values
// survive a PCM_16 file unchanged.
func (s *Source) Float32() []float32 {
	return convert(s.Float64(), func(x float64) float32 {
		return pcm.ToFloat32(pcm.Quantize(x, 16))
	})
}

func convert[T any](in []float64, conv func(float64) T) []T {
	out := make([]T, len(in))
	for i, x := range in {
		out[i] = conv(x)
	}

	return out
}
