// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

// Package dispatch routes control to exactly one role entry point. The
// handoff is one-way: every entry point terminates the process itself,
// and a returning entry point is a programming defect, not a user
// error.
package dispatch

import (
	"fmt"
	"io"
	"os"

	"pgserver/pkg/cli"
	"pgserver/pkg/logging"
)

// Version is the version string printed for --version; the build sets
// it through the main package.
var Version = "development"

// Seams for tests; production code never touches these.
var (
	exit = os.Exit

	stdout io.Writer = os.Stdout
)

// EntryPoint is one role's main routine. It receives the dispatch
// decision and the untouched argument vector, takes ownership of the
// process, and never returns.
type EntryPoint func(decision cli.DispatchDecision, argv []string)

// Table maps each role to its entry point.
type Table map[cli.Role]EntryPoint

// Dispatch hands the process to the selected role, unless an
// informational flag short-circuits with exit 0 first. It never returns:
// a role entry point that yields control back is treated as an
// unreachable-state fault.
func Dispatch(decision cli.DispatchDecision, progname string, argv []string, table Table) {
	if decision.WantsHelp {
		printHelp(stdout, progname)
		exit(0)
		return
	}
	if decision.WantsVersion {
		fmt.Fprintf(stdout, "%s (pgserver) %s\n", progname, Version)
		exit(0)
		return
	}

	entry, ok := table[decision.SelectedRole]
	if !ok {
		panic(fmt.Sprintf("no entry point registered for role %q", decision.SelectedRole))
	}

	logging.DispatchLogger.Debug("dispatching to %s", decision.SelectedRole)
	entry(decision, argv)
	panic("role entry point returned control")
}

// printHelp writes the usage text covering every role's invocation. The
// option listings must match what the role entry points accept.
func printHelp(w io.Writer, progname string) {
	fmt.Fprintf(w, "%s is a multi-role database server.\n\n", progname)
	fmt.Fprintf(w, "Usage:\n  %s [OPTION]...\n\n", progname)
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprintf(w, "  -B NBUFFERS        number of shared buffers\n")
	fmt.Fprintf(w, "  -c NAME=VALUE      set run-time parameter\n")
	fmt.Fprintf(w, "  -C NAME            print value of run-time parameter, then exit\n")
	fmt.Fprintf(w, "  -d 1-5             debugging level\n")
	fmt.Fprintf(w, "  -D DATADIR         database directory\n")
	fmt.Fprintf(w, "  -h HOSTNAME        host name or IP address to listen on\n")
	fmt.Fprintf(w, "  -i                 enable TCP/IP connections\n")
	fmt.Fprintf(w, "  -k DIRECTORY       Unix-domain socket location\n")
	fmt.Fprintf(w, "  -N MAX-CONNECT     maximum number of allowed connections\n")
	fmt.Fprintf(w, "  -p PORT            port number to listen on\n")
	fmt.Fprintf(w, "  -V, --version      output version information, then exit\n")
	fmt.Fprintf(w, "  --NAME=VALUE       set run-time parameter\n")
	fmt.Fprintf(w, "  --describe-config  describe configuration parameters, then exit\n")
	fmt.Fprintf(w, "  -?, --help         show this help, then exit\n")
	fmt.Fprintf(w, "\nOptions for single-user mode:\n")
	fmt.Fprintf(w, "  --single           selects single-user mode (must be first argument)\n")
	fmt.Fprintf(w, "  DBNAME             database name (defaults to user name)\n")
	fmt.Fprintf(w, "\nOptions for bootstrapping mode:\n")
	fmt.Fprintf(w, "  --boot             selects bootstrapping mode (must be first argument)\n")
	fmt.Fprintf(w, "  DBNAME             database name (mandatory argument in bootstrapping mode)\n")
	fmt.Fprintf(w, "\nPlease read the documentation for the complete list of run-time\n")
	fmt.Fprintf(w, "configuration settings and how to set them.\n")
}
