// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/woozymasta/pngme/internal/config"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		configPath  string
		logLevel    string
		showVersion bool
	)

	flagSet := pflag.NewFlagSet("pngme", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "config file (default $"+config.EnvPath+")")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stderr, flagSet)
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n\n", err)
		printUsage(stderr, flagSet)
		return 2
	}
	if showVersion {
		fmt.Fprintf(stdout, "pngme %s\n", version)
		return 0
	}

	rest := flagSet.Args()
	if len(rest) == 0 || rest[0] == "help" {
		printUsage(stderr, flagSet)
		if len(rest) == 0 {
			return 2
		}
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	cmd := findCommand(rest[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "error: unknown command %q\n\n", rest[0])
		printUsage(stderr, flagSet)
		return 2
	}

	e := &env{
		cfg:    cfg,
		logger: newLogger(stderr, level).With("command", cmd.name),
		stdout: stdout,
		stderr: stderr,
	}

	if err := cmd.execute(e, rest[1:]); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}
