// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package bootstrap

import (
	"testing"
)

func TestProcessIdentityProgramName(t *testing.T) {
	tests := []struct {
		argv0 string
		want  string
	}{
		{"/usr/local/bin/pgserver", "pgserver"},
		{"pgserver", "pgserver"},
		{"./pgserver", "pgserver"},
		{"C:/server/pgserver.exe", "pgserver"},
		{"", "pgserver"},
	}
	for _, tt := range tests {
		got := NewProcessIdentity([]string{tt.argv0}).ProgramName()
		if got != tt.want {
			t.Errorf("ProgramName(%q) = %q, want %q", tt.argv0, got, tt.want)
		}
	}
}

func TestProcessIdentityEmptyVector(t *testing.T) {
	identity := NewProcessIdentity(nil)
	if identity.ProgramName() != "pgserver" {
		t.Errorf("ProgramName() = %q with empty vector", identity.ProgramName())
	}
	if len(identity.Argv()) != 0 {
		t.Errorf("Argv() = %v with empty vector", identity.Argv())
	}
}

func TestProcessIdentitySavesArgv(t *testing.T) {
	original := []string{"pgserver", "--single", "widgets"}
	identity := NewProcessIdentity(original)

	// Overwriting the original storage (as a process-title writer
	// would) must not disturb the saved copy.
	original[1] = "clobbered"
	original[2] = "clobbered"

	saved := identity.Argv()
	if saved[1] != "--single" || saved[2] != "widgets" {
		t.Errorf("saved argv %v was disturbed by mutation of the original", saved)
	}
}
