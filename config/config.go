// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config builds the small, flag-driven configuration the demo CLI
// (cmd/schemeheap-demo) composes its Heap from, kept separate from cobra's
// command wiring so it can be constructed directly in tests.
package config

import (
	"fmt"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

// Config holds everything needed to construct and operate a demo heap.
type Config struct {
	HeapSize   int
	Stress     bool
	Iterations int
	LogLevel   zerolog.Level
}

// Default returns the configuration the demo CLI starts from before flags
// are applied.
func Default() Config {
	return Config{
		HeapSize:   256,
		Stress:     false,
		Iterations: 50,
		LogLevel:   zerolog.InfoLevel,
	}
}

// FromFlags parses args (excluding the program name) into a Config,
// starting from Default.
func FromFlags(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("schemeheap-demo", flag.ContinueOnError)
	fs.IntVar(&cfg.HeapSize, "heap-size", cfg.HeapSize, "total heap size in bytes")
	fs.BoolVar(&cfg.Stress, "stress", cfg.Stress, "repeatedly allocate to exercise the collector")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "number of stress-mode allocations")
	logLevel := fs.String("log-level", cfg.LogLevel.String(), "debug, info, warn, or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid log level %q: %w", *logLevel, err)
	}
	cfg.LogLevel = level

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.HeapSize <= 0 {
		return fmt.Errorf("config: heap-size must be positive, got %d", c.HeapSize)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("config: iterations must be >= 0, got %d", c.Iterations)
	}
	return nil
}
