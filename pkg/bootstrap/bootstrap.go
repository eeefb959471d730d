// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

// Package bootstrap runs the startup sequence shared by every
// incarnation of the server binary and hands the process to exactly one
// role. The ordering is load-bearing: platform normalization before any
// shared state, the reporting foundation before locale resolution
// (locale failures report through it), the privilege check before any
// network or filesystem resource, dispatch last.
package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"pgserver/pkg/cli"
	"pgserver/pkg/dispatch"
	"pgserver/pkg/locale"
	"pgserver/pkg/log"
	"pgserver/pkg/logging"
	"pgserver/pkg/platform"
	"pgserver/pkg/privilege"
)

// Seams for tests; production code never touches these.
var (
	exit           = os.Exit
	current        = platform.Current
	identitySource = privilege.SystemIdentity

	stderr io.Writer = os.Stderr
)

// Run executes the bootstrap sequence and never returns: every path
// ends in a successful dispatch or a process exit. All exits owned by
// this sequence happen here, one termination point per error category.
func Run(argv []string, table dispatch.Table) {
	identity := NewProcessIdentity(argv)
	pf := current()

	// Platform-init failures cannot use structured reporting yet.
	if err := pf.Normalize(identity.ProgramName()); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", identity.ProgramName(), err)
		exit(1)
		return
	}

	log.Initialize()

	if _, err := locale.SetupEnvironment(pf); err != nil {
		logging.LocaleLogger.Fatal("%v", err)
		return
	}

	decision := cli.Classify(identity.Argv(), pf.IsForkedWorkerToken)

	// Security aborts write directly to stderr: structured reporting
	// may not yet cover this path on every platform.
	if err := privilege.Check(decision.SkipPrivilegeCheck, identitySource); err != nil {
		if errors.Is(err, privilege.ErrRootExecution) {
			fmt.Fprint(stderr, privilege.RootMessage)
		} else {
			fmt.Fprintf(stderr, "%s: %v\n", identity.ProgramName(), err)
		}
		exit(1)
		return
	}

	dispatch.Dispatch(decision, identity.ProgramName(), identity.Argv(), table)
}
