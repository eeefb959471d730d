// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

// Package platform isolates the OS-specific parts of server startup
// behind a small capability surface. Exactly one implementation is
// selected per target platform at build time.
package platform

// Platform is the capability surface consumed by the bootstrap
// sequence. Implementations must be safe to use before any other
// subsystem is up.
type Platform interface {
	// Name identifies the platform in diagnostics.
	Name() string

	// Normalize performs the fixed set of OS-level startup
	// adjustments: std stream hardening, network subsystem bring-up,
	// crash diagnostics, and the fallback barrier primitive. It must
	// run before anything else touches shared state or I/O. A non-nil
	// error is a platform-init failure and the process must exit 1.
	Normalize(progname string) error

	// DefaultLocale returns the requested locale value for a
	// dynamically resolved category before environment discovery runs.
	// An empty string means "use the OS default discovery". Platform
	// families whose default discovery ignores externally injected
	// settings substitute an explicit environment read here.
	DefaultLocale(category string) string

	// IsForkedWorkerToken reports whether arg marks a re-executed
	// child worker on this platform. Platforms without fork/exec
	// re-entry always return false.
	IsForkedWorkerToken(arg string) bool
}
