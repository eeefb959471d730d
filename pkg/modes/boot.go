// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package modes

import (
	"context"
	"fmt"
	"os"

	"pgserver/pkg/cli"
	"pgserver/pkg/logging"
)

// BootstrapMode initializes a fresh database cluster. The database name
// operand is mandatory in this mode; the initialization engine itself
// lives elsewhere.
type BootstrapMode struct {
	argv []string
}

// BootstrapMain is the bootstrap role entry point. It does not return.
func BootstrapMain(_ cli.DispatchDecision, argv []string) {
	exec(&BootstrapMode{argv: argv})
}

// GetMode returns the mode name
func (b *BootstrapMode) GetMode() string {
	return "bootstrap"
}

// Run validates the bootstrap invocation and hands the named database
// to the (out-of-process) initialization engine.
func (b *BootstrapMode) Run(ctx context.Context) error {
	dbname, ok := operand(b.argv)
	if !ok {
		return fmt.Errorf("bootstrap mode requires a database name argument")
	}

	modeLogger := logging.GetModeLogger(b.GetMode())
	modeLogger.Info("bootstrap process for database %q (pid %d)", dbname, os.Getpid())
	return nil
}
