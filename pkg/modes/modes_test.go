// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package modes

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"pgserver/pkg/cli"
	"pgserver/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard, io.Discard)
	os.Exit(m.Run())
}

func fakeUserName(t *testing.T, name string) {
	t.Helper()
	old := userName
	userName = func() (string, error) { return name, nil }
	t.Cleanup(func() { userName = old })
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

func TestDatabaseNameDefaultsToAccountName(t *testing.T) {
	fakeUserName(t, "alice")

	// End to end: classifying "--single" selects the single-user role,
	// and with no operand the database name is the account name.
	decision := cli.Classify([]string{"pgserver", "--single"}, nil)
	if decision.SelectedRole != cli.RoleSingleUser {
		t.Fatalf("classify selected %v, want single-user", decision.SelectedRole)
	}

	name, err := databaseName([]string{"pgserver", "--single"})
	if err != nil {
		t.Fatalf("databaseName: %v", err)
	}
	if name != "alice" {
		t.Errorf("database name = %q, want alice", name)
	}
}

func TestDatabaseNameOperandWins(t *testing.T) {
	fakeUserName(t, "alice")

	name, err := databaseName([]string{"pgserver", "--single", "widgets"})
	if err != nil {
		t.Fatalf("databaseName: %v", err)
	}
	if name != "widgets" {
		t.Errorf("database name = %q, want widgets", name)
	}
}

func TestSingleUserConsumesInput(t *testing.T) {
	fakeUserName(t, "alice")
	oldStdin := stdin
	stdin = strings.NewReader("select 1;\n\nselect 2;\n")
	t.Cleanup(func() { stdin = oldStdin })

	mode := &SingleUserMode{argv: []string{"pgserver", "--single"}}
	if err := mode.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestSupervisorAnswersQuery(t *testing.T) {
	buf := captureStdout(t)

	mode := &SupervisorMode{query: "port"}
	if err := mode.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := buf.String(); got != "5432\n" {
		t.Errorf("query output = %q, want 5432", got)
	}
}

func TestSupervisorRejectsUnknownQuery(t *testing.T) {
	captureStdout(t)

	mode := &SupervisorMode{query: "no_such_parameter"}
	err := mode.Run(context.Background())
	if err == nil {
		t.Fatal("unknown parameter query did not fail")
	}
	if !strings.Contains(err.Error(), "no_such_parameter") {
		t.Errorf("error %q does not name the parameter", err)
	}
}

func TestSupervisorStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mode := &SupervisorMode{argv: []string{"pgserver"}}
	if err := mode.Run(ctx); err != nil {
		t.Fatalf("Run after cancel: %v", err)
	}
}

func TestDescribeConfigPrintsCatalog(t *testing.T) {
	buf := captureStdout(t)

	mode := &DescribeConfigMode{}
	if err := mode.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "shared_buffers\tinteger\tpostmaster") {
		t.Errorf("describe output missing shared_buffers line:\n%s", out)
	}
	lines := strings.Count(out, "\n")
	if lines < 10 {
		t.Errorf("describe output has only %d lines", lines)
	}
}

func TestBootstrapRequiresDatabaseName(t *testing.T) {
	mode := &BootstrapMode{argv: []string{"pgserver", "--boot"}}
	if err := mode.Run(context.Background()); err == nil {
		t.Fatal("bootstrap without a database name did not fail")
	}

	mode = &BootstrapMode{argv: []string{"pgserver", "--boot", "template1"}}
	if err := mode.Run(context.Background()); err != nil {
		t.Fatalf("bootstrap with a database name failed: %v", err)
	}
}

func TestForkedWorkerVariant(t *testing.T) {
	mode := &ForkedWorkerMode{argv: []string{"pgserver", "--forkbackend", "4"}}
	if err := mode.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	mode = &ForkedWorkerMode{argv: []string{"pgserver"}}
	if err := mode.Run(context.Background()); err == nil {
		t.Fatal("worker without a role marker did not fail")
	}
}
