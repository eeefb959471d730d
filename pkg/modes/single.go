// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package modes

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"pgserver/pkg/cli"
	"pgserver/pkg/logging"
)

// SingleUserMode is the interactive backend without a supervisor. The
// statement executor is out of scope here; the skeleton resolves the
// session target and drains the interactive input.
type SingleUserMode struct {
	argv []string
}

// SingleUserMain is the single-user role entry point. It does not
// return.
func SingleUserMain(_ cli.DispatchDecision, argv []string) {
	exec(&SingleUserMode{argv: argv})
}

// GetMode returns the mode name
func (s *SingleUserMode) GetMode() string {
	return "single-user"
}

// Run resolves the database name (first operand, else the OS account
// name) and consumes input lines until end of file.
func (s *SingleUserMode) Run(ctx context.Context) error {
	dbname, err := databaseName(s.argv)
	if err != nil {
		return err
	}

	modeLogger := logging.GetModeLogger(s.GetMode())
	modeLogger.Info("single-user backend for database %q (pid %d)", dbname, os.Getpid())

	statements := 0
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		statements++
		modeLogger.Debug("statement %d ignored: no execution engine in this process", statements)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading interactive input: %w", err)
	}

	modeLogger.Info("single-user session for %q ended after %d statements", dbname, statements)
	return nil
}
