// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package utils

import (
	"fmt"
	"os"
	"os/user"
)

// IsRunningUnderSystemd detects if the process is running under systemd
func IsRunningUnderSystemd() bool {
	invocation := os.Getenv("INVOCATION_ID") != ""
	journal := os.Getenv("JOURNAL_STREAM") != ""
	return invocation || journal
}

// CurrentUserName returns the login name of the account running the
// process. Single-user mode uses it as the default database name.
func CurrentUserName() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("could not determine the current user name: %w", err)
	}
	if u.Username == "" {
		return "", fmt.Errorf("current user has no login name")
	}
	return u.Username, nil
}
