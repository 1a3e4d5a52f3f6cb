// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/woozymasta/pngme/internal/config"
)

// env carries what every command needs.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// command is one pngme subcommand.
type command struct {
	name    string
	usage   string
	summary string

	// minArgs and maxArgs bound the positional arguments.
	minArgs int
	maxArgs int

	// setup registers the command flags on fs and returns the run function
	// bound to them. Flags are bound per invocation.
	setup func(fs *pflag.FlagSet) runFunc
}

type runFunc func(e *env, args []string) error

// exitError ends the process with code without printing anything more.
// Commands return it when a non-zero exit is an expected outcome.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

var commands = []*command{
	encodeCommand,
	decodeCommand,
	removeCommand,
	printCommand,
}

func findCommand(name string) *command {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd
		}
	}

	return nil
}

// execute parses flags and positional arguments, then runs the command.
func (c *command) execute(e *env, args []string) error {
	fs := pflag.NewFlagSet(c.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := c.setup(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			c.printHelp(e.stderr, fs)
			return nil
		}
		return fmt.Errorf("%s: %w (usage: pngme %s)", c.name, err, c.usage)
	}

	positional := fs.Args()
	if len(positional) < c.minArgs || len(positional) > c.maxArgs {
		return fmt.Errorf("%s: got %d arguments (usage: pngme %s)", c.name, len(positional), c.usage)
	}

	return run(e, positional)
}

func (c *command) printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: pngme %s\n\n%s\n", c.usage, c.summary)
	if fs.HasFlags() {
		fmt.Fprintf(w, "\nFlags:\n%s", fs.FlagUsages())
	}
}

func printUsage(w io.Writer, global *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: pngme [flags] <command> [args]\n\nCommands:\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, cmd := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.usage, cmd.summary)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\nFlags:\n%s", global.FlagUsages())
}
