package main

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownCommand indicates an unrecognized subcommand.
var ErrUnknownCommand = errors.New("unknown command")

// run dispatches to the requested subcommand and returns the exit code.
// A bare .ipynb path is treated as "convert <path>" for convenience.
func run(ctx context.Context, args []string, env *Environment) (int, error) {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage, nil
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "convert":
		err := runConvertCmd(ctx, rest, env)
		return exitCodeFor(err), err
	case "split":
		err := runSplitCmd(rest, env)
		return exitCodeFor(err), err
	case "interactive", "wizard":
		err := runInteractive(ctx, env)
		return exitCodeFor(err), err
	case "doctor":
		return runDoctorCmd(rest, env), nil
	case "version":
		fmt.Fprintf(env.Stdout, "ipynb2pdf %s\n", Version)
		return ExitSuccess, nil
	case "help", "--help", "-h":
		runHelp(rest, env)
		return ExitSuccess, nil
	default:
		// Bare notebook path shorthand: ipynb2pdf notes.ipynb
		if hasNotebookExtension(command) {
			err := runConvertCmd(ctx, args, env)
			return exitCodeFor(err), err
		}
		printUsage(env.Stderr)
		return ExitUsage, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}
