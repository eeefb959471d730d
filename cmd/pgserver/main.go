// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"

	"pgserver/pkg/bootstrap"
	"pgserver/pkg/cli"
	"pgserver/pkg/dispatch"
	"pgserver/pkg/modes"
)

// Version information
var (
	Version   = "development"
	BuildTime = "unknown"
)

func main() {
	dispatch.Version = Version
	bootstrap.Run(os.Args, dispatch.Table{
		cli.RoleSupervisor:     modes.SupervisorMain,
		cli.RoleForkedWorker:   modes.ForkedWorkerMain,
		cli.RoleBootstrap:      modes.BootstrapMain,
		cli.RoleConfigDescribe: modes.DescribeConfigMain,
		cli.RoleSingleUser:     modes.SingleUserMain,
	})
}
