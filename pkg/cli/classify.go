// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

// Package cli classifies the raw argument vector into a dispatch
// decision. Only argv[1] selects the execution role (argv[2] is read in
// the one case that needs a value); later positions belong to the
// selected role's own argument grammar and are never inspected here.
package cli

// Role is one of the mutually exclusive execution roles of the server
// binary.
type Role int

const (
	RoleSupervisor Role = iota
	RoleForkedWorker
	RoleBootstrap
	RoleConfigDescribe
	RoleSingleUser
)

func (r Role) String() string {
	switch r {
	case RoleSupervisor:
		return "supervisor"
	case RoleForkedWorker:
		return "forked-worker"
	case RoleBootstrap:
		return "bootstrap"
	case RoleConfigDescribe:
		return "describe-config"
	case RoleSingleUser:
		return "single-user"
	default:
		return "unknown"
	}
}

// DispatchDecision is the classifier's output: either an informational
// flag short-circuits dispatch, or exactly one role is selected.
type DispatchDecision struct {
	WantsHelp          bool
	WantsVersion       bool
	SkipPrivilegeCheck bool
	SelectedRole       Role

	// QueryName carries the parameter name of a "-C <name>" read-only
	// query through to the supervisor entry point.
	QueryName string
}

// Classify inspects argv and produces a DispatchDecision. It is pure:
// no side effects, and the same argv always yields the same decision.
// isForkedWorkerToken is the platform capability for recognizing
// re-exec markers; platforms without fork/exec re-entry pass a function
// that always returns false.
//
// The privilege check is skipped only for read-only operations that are
// safe under an elevated account: describing the configuration, and the
// "-C <name>" value query. The query switch must sit at position 1 to
// earn the exemption, so that some other role's "-C" is never mistaken
// for it.
func Classify(argv []string, isForkedWorkerToken func(string) bool) DispatchDecision {
	decision := DispatchDecision{SelectedRole: RoleSupervisor}
	if len(argv) < 2 {
		return decision
	}

	switch argv[1] {
	case "--help", "-?":
		decision.WantsHelp = true
		return decision
	case "--version", "-V":
		decision.WantsVersion = true
		return decision
	case "--describe-config":
		decision.SkipPrivilegeCheck = true
		decision.SelectedRole = RoleConfigDescribe
		return decision
	}

	if argv[1] == "-C" && len(argv) > 2 {
		decision.SkipPrivilegeCheck = true
		decision.QueryName = argv[2]
		return decision
	}

	if isForkedWorkerToken != nil && isForkedWorkerToken(argv[1]) {
		decision.SelectedRole = RoleForkedWorker
		return decision
	}

	switch argv[1] {
	case "--boot":
		decision.SelectedRole = RoleBootstrap
	case "--single":
		decision.SelectedRole = RoleSingleUser
	}
	return decision
}
