// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package logging

import (
	"pgserver/pkg/log"
)

// Common scoped loggers for consistent logging throughout the server
var (
	// Startup sequence
	BootstrapLogger = log.NewScopedLogger("[bootstrap]", "")
	PlatformLogger  = log.NewScopedLogger("[platform]", "")
	LocaleLogger    = log.NewScopedLogger("[locale]", "")
	PrivilegeLogger = log.NewScopedLogger("[privilege]", "")
	DispatchLogger  = log.NewScopedLogger("[dispatch]", "")

	// Configuration
	CatalogLogger = log.NewScopedLogger("[catalog]", "")
)

// GetModeLogger returns a scoped logger for a specific execution mode
func GetModeLogger(mode string) *log.Logger {
	return log.NewScopedLogger("[modes/"+mode+"]", "")
}
