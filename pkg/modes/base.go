// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

// Package modes holds the entry points for the execution roles of the
// server binary. Every entry point takes ownership of the process and
// terminates it; none of them return to the caller. The execution
// engines behind these roles live elsewhere; the implementations here
// are the startup skeletons only.
package modes

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"pgserver/pkg/logging"
	"pgserver/pkg/utils"
)

// Seams for tests; production code never touches these.
var (
	exit     = os.Exit
	userName = utils.CurrentUserName

	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// exec drives a runner to completion and exits the process with the
// outcome. This is the single place a role's error becomes an exit
// code.
func exec(r Runner) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := r.Run(ctx); err != nil {
		logging.GetModeLogger(r.GetMode()).Error("%v", err)
		exit(1)
	}
	exit(0)
}

// operand returns the first non-switch argument after the mode switch.
// Role switches sit at argv[1], so the scan starts behind them.
func operand(argv []string) (string, bool) {
	if len(argv) < 2 {
		return "", false
	}
	for _, arg := range argv[2:] {
		if len(arg) > 0 && arg[0] != '-' {
			return arg, true
		}
	}
	return "", false
}

// databaseName resolves the database name for single-user mode: the
// first operand if one was given, the OS account name otherwise.
func databaseName(argv []string) (string, error) {
	if name, ok := operand(argv); ok {
		return name, nil
	}
	return userName()
}
