// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package modes

import (
	"context"
)

// Runner defines the interface for the execution roles of the server.
// A runner owns the process once started; the exec helper turns its
// return value into the process exit.
type Runner interface {
	Run(ctx context.Context) error
	GetMode() string
}
