// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

// Package privilege enforces the no-superuser-execution invariant. The
// check aborts, it never degrades to a warning.
package privilege

import (
	"errors"

	"golang.org/x/sys/unix"
)

// State is a read-only snapshot of the process identity, taken once at
// check time and not cached beyond it.
type State struct {
	UID  int
	EUID int
}

// SystemIdentity reads the real identity of the running process.
func SystemIdentity() State {
	return State{UID: unix.Getuid(), EUID: unix.Geteuid()}
}

var (
	// ErrRootExecution means the effective identity is the superuser.
	ErrRootExecution = errors.New("superuser execution is not permitted")

	// ErrIdentityMismatch means real and effective identities differ,
	// which indicates an unsafe setuid configuration even when neither
	// identity is the superuser.
	ErrIdentityMismatch = errors.New("real and effective user IDs must match")
)

// RootMessage is the fixed explanation printed when execution as the
// superuser is refused.
const RootMessage = "\"root\" execution of the server is not permitted.\n" +
	"The server must be started under an unprivileged user ID to prevent\n" +
	"possible system security compromise.  See the documentation for\n" +
	"more information on how to properly start the server.\n"

// Check enforces the privilege precondition. With skip set the identity
// is never inspected, because the matched command is a read-only
// operation that is safe under an elevated account. Otherwise a
// superuser effective identity, or any real/effective mismatch, is a
// security abort.
func Check(skip bool, identity func() State) error {
	if skip {
		return nil
	}
	state := identity()
	if state.EUID == 0 {
		return ErrRootExecution
	}
	if state.UID != state.EUID {
		return ErrIdentityMismatch
	}
	return nil
}
