// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package modes

import (
	"context"
	"fmt"
	"os"
	"time"

	"pgserver/pkg/cli"
	"pgserver/pkg/config"
	"pgserver/pkg/logging"
	"pgserver/pkg/utils"
)

// heartbeatInterval paces the supervisor's periodic liveness log line.
const heartbeatInterval = time.Minute

// SupervisorMode is the default role: the long-lived parent process.
// Worker-pool and connection handling belong to the supervisor engine,
// not to this skeleton.
type SupervisorMode struct {
	argv  []string
	query string
}

// SupervisorMain is the supervisor role entry point. It does not
// return.
func SupervisorMain(decision cli.DispatchDecision, argv []string) {
	exec(&SupervisorMode{argv: argv, query: decision.QueryName})
}

// GetMode returns the mode name
func (s *SupervisorMode) GetMode() string {
	return "supervisor"
}

// Run executes the supervisor skeleton. A "-C <name>" invocation is a
// read-only query answered immediately; otherwise the process parks in
// a signal loop until asked to shut down.
func (s *SupervisorMode) Run(ctx context.Context) error {
	if s.query != "" {
		return s.answerQuery(s.query)
	}

	modeLogger := logging.GetModeLogger(s.GetMode())
	modeLogger.Info("supervisor starting (pid %d)", os.Getpid())
	modeLogger.Trace("argument vector: %v", s.argv)
	if utils.IsRunningUnderSystemd() {
		modeLogger.Debug("running under systemd supervision")
	}

	started := time.Now()
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			modeLogger.Debug("supervisor up %s", time.Since(started).Round(time.Second))
		case <-ctx.Done():
			modeLogger.Info("supervisor shutting down")
			return nil
		}
	}
}

// answerQuery prints the catalog value of one parameter. With no
// configuration file loaded at this point, the answer is the built-in
// default.
func (s *SupervisorMode) answerQuery(name string) error {
	catalog, err := config.LoadCatalog()
	if err != nil {
		return err
	}
	parameter, ok := catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("unrecognized configuration parameter %q", name)
	}
	fmt.Fprintln(stdout, parameter.Default)
	return nil
}
