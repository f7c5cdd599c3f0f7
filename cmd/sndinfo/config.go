// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
)

type config struct {
	// Env is a free-form environment name, only logged.
	Env string
	// Jobs bounds how many files info opens at once.
	Jobs int
	// ChunkFrames is the convert buffer size in frames.
	ChunkFrames int
}

// loadConfig reads envFile if it exists, fills defaults and parses the
// SNDINFO_* variables.
func loadConfig(ctx context.Context, envFile string) (*config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "load %v", envFile)
		}
	}

	setEnvDefault("SNDINFO_ENV", "production")
	setEnvDefault("SNDINFO_JOBS", strconv.Itoa(runtime.NumCPU()))
	setEnvDefault("SNDINFO_CHUNK_FRAMES", "4096")

	cfg, err := parseConfig(os.Getenv)
	if err != nil {
		return nil, err
	}

	logger.Tf(ctx, "load .env as SNDINFO_ENV=%v, SNDINFO_JOBS=%v, SNDINFO_CHUNK_FRAMES=%v",
		cfg.Env, cfg.Jobs, cfg.ChunkFrames)

	return cfg, nil
}

func parseConfig(getenv func(string) string) (*config, error) {
	cfg := &config{Env: getenv("SNDINFO_ENV")}

	jobs, err := strconv.Atoi(getenv("SNDINFO_JOBS"))
	if err != nil {
		return nil, errors.Wrapf(err, "parse SNDINFO_JOBS")
	}
	if jobs < 1 {
		return nil, errors.Errorf("SNDINFO_JOBS=%v must be positive", jobs)
	}
	cfg.Jobs = jobs

	chunk, err := strconv.Atoi(getenv("SNDINFO_CHUNK_FRAMES"))
	if err != nil {
		return nil, errors.Wrapf(err, "parse SNDINFO_CHUNK_FRAMES")
	}
	if chunk < 1 {
		return nil, errors.Errorf("SNDINFO_CHUNK_FRAMES=%v must be positive", chunk)
	}
	cfg.ChunkFrames = chunk

	return cfg, nil
}

func setEnvDefault(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}
