// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package bootstrap

import (
	"path/filepath"
	"strings"
)

// ProcessIdentity captures who this process is: the display name
// derived from argv[0] and a private copy of the original argument
// vector. It is built once at entry and never mutated; the saved vector
// stays stable for process-title display even if the original storage
// is overwritten later.
type ProcessIdentity struct {
	programName string
	rawArgv     []string
}

// NewProcessIdentity derives the identity from the raw argument vector.
func NewProcessIdentity(argv []string) ProcessIdentity {
	name := "pgserver"
	if len(argv) > 0 && argv[0] != "" {
		name = filepath.Base(argv[0])
		name = strings.TrimSuffix(name, ".exe")
	}
	saved := make([]string, len(argv))
	copy(saved, argv)
	return ProcessIdentity{programName: name, rawArgv: saved}
}

// ProgramName returns the display name of the executable, stripped of
// path and extension.
func (p ProcessIdentity) ProgramName() string {
	return p.programName
}

// Argv returns the saved argument vector. Callers receive the stable
// copy, not the original storage.
func (p ProcessIdentity) Argv() []string {
	return p.rawArgv
}
