// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package modes

import (
	"context"
	"fmt"

	"pgserver/pkg/cli"
	"pgserver/pkg/config"
)

// DescribeConfigMode dumps the run-time parameter catalog, one
// parameter per line, for external configuration tooling.
type DescribeConfigMode struct{}

// DescribeConfigMain is the configuration-introspection role entry
// point. It does not return.
func DescribeConfigMain(_ cli.DispatchDecision, _ []string) {
	exec(&DescribeConfigMode{})
}

// GetMode returns the mode name
func (d *DescribeConfigMode) GetMode() string {
	return "describe-config"
}

// Run prints every catalog entry as tab-separated fields.
func (d *DescribeConfigMode) Run(ctx context.Context) error {
	catalog, err := config.LoadCatalog()
	if err != nil {
		return err
	}
	for _, p := range catalog.Parameters() {
		fmt.Fprintf(stdout, "%s\t%s\t%s\t%s\t%s\n",
			p.Name, p.Type, p.Context, p.Default, p.Description)
	}
	return nil
}
