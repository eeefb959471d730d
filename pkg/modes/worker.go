// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package modes

import (
	"context"
	"fmt"
	"os"
	"strings"

	"pgserver/pkg/cli"
	"pgserver/pkg/logging"
)

// ForkedWorkerMode is a re-executed child of the supervisor. The child
// went through the entire bootstrap again on its own; nothing was
// inherited beyond argv and environment.
type ForkedWorkerMode struct {
	argv []string
}

// ForkedWorkerMain is the forked-worker role entry point. It does not
// return.
func ForkedWorkerMain(_ cli.DispatchDecision, argv []string) {
	exec(&ForkedWorkerMode{argv: argv})
}

// GetMode returns the mode name
func (w *ForkedWorkerMode) GetMode() string {
	return "forked-worker"
}

// Run identifies the worker variant encoded in the re-exec marker and
// hands control to the (out-of-scope) worker engine.
func (w *ForkedWorkerMode) Run(ctx context.Context) error {
	if len(w.argv) < 2 {
		return fmt.Errorf("forked worker started without a role marker")
	}
	variant := strings.TrimPrefix(w.argv[1], "--fork")
	if variant == "" {
		variant = "backend"
	}

	modeLogger := logging.GetModeLogger(w.GetMode())
	modeLogger.Info("re-executed child worker %q (pid %d)", variant, os.Getpid())
	return nil
}
