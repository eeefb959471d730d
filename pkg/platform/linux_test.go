// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux

package platform

import (
	"testing"
)

func TestCurrentIsLinux(t *testing.T) {
	if got := Current().Name(); got != "linux" {
		t.Errorf("Name() = %q, want linux", got)
	}
}

func TestForkedWorkerToken(t *testing.T) {
	pf := Current()
	tests := []struct {
		arg  string
		want bool
	}{
		{"--forkbackend", true},
		{"--fork", true},
		{"--boot", false},
		{"-fork", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := pf.IsForkedWorkerToken(tt.arg); got != tt.want {
			t.Errorf("IsForkedWorkerToken(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestDefaultLocaleUsesDiscovery(t *testing.T) {
	// Linux locale discovery honors the environment; the platform
	// never substitutes an explicit value.
	for _, category := range []string{"LC_COLLATE", "LC_CTYPE", "LC_MESSAGES"} {
		if got := Current().DefaultLocale(category); got != "" {
			t.Errorf("DefaultLocale(%s) = %q, want empty", category, got)
		}
	}
}
