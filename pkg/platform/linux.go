// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux

package platform

import (
	"fmt"
	"net"
	"runtime/debug"
	"strings"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"pgserver/pkg/logging"
	"pgserver/pkg/spin"
)

// Current returns the platform implementation for this build.
func Current() Platform {
	return linuxPlatform{}
}

type linuxPlatform struct{}

func (linuxPlatform) Name() string {
	return "linux"
}

// Normalize performs Linux startup adjustments. The order matters: the
// std streams must be usable before anything is written, and the
// fallback barrier primitive must be ready before later code assumes
// atomic operations work.
func (p linuxPlatform) Normalize(progname string) error {
	if err := hardenStdStreams(); err != nil {
		return fmt.Errorf("standard stream setup failed: %w", err)
	}

	if err := probeNetworkSubsystem(); err != nil {
		return fmt.Errorf("network subsystem initialization failed: %w", err)
	}

	// Best effort: raise the core dump limit so a fatal fault leaves a
	// diagnostic dump behind, and make runtime faults dump all goroutines.
	enableCrashDiagnostics()

	if err := spin.Init(); err != nil {
		return err
	}

	return nil
}

// DefaultLocale returns "" for every category: Linux locale discovery
// honors the environment, so the resolver's own discovery applies.
func (linuxPlatform) DefaultLocale(category string) string {
	return ""
}

// IsForkedWorkerToken matches the re-exec marker prefix. Linux builds
// re-enter the bootstrap through exec, so the marker is honored here.
func (linuxPlatform) IsForkedWorkerToken(arg string) bool {
	return strings.HasPrefix(arg, "--fork")
}

// hardenStdStreams verifies descriptors 0..2 are open, pointing any
// closed one at /dev/null. A write to a closed stderr later in startup
// would otherwise kill diagnostics exactly when they are needed.
func hardenStdStreams() error {
	for fd := 0; fd <= 2; fd++ {
		if _, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0); err == nil {
			continue
		}
		nullFd, err := unix.Open("/dev/null", unix.O_RDWR, 0)
		if err != nil {
			return fmt.Errorf("could not open /dev/null for descriptor %d: %w", fd, err)
		}
		if nullFd != fd {
			if err := unix.Dup3(nullFd, fd, 0); err != nil {
				unix.Close(nullFd)
				return fmt.Errorf("could not attach /dev/null to descriptor %d: %w", fd, err)
			}
			unix.Close(nullFd)
		}
	}
	return nil
}

// probeNetworkSubsystem confirms the kernel networking stack is usable
// before any later code opens sockets: the netlink route socket must
// answer, and a loopback link must exist.
func probeNetworkSubsystem() error {
	links, err := netlink.LinkList()
	if err != nil {
		return fmt.Errorf("netlink link enumeration: %w", err)
	}
	for _, link := range links {
		if link.Attrs().Flags&net.FlagLoopback != 0 {
			logging.PlatformLogger.Trace("loopback link present: %s", link.Attrs().Name)
			return nil
		}
	}
	return fmt.Errorf("no loopback link present")
}

func enableCrashDiagnostics() {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &rl); err == nil && rl.Cur < rl.Max {
		rl.Cur = rl.Max
		if err := unix.Setrlimit(unix.RLIMIT_CORE, &rl); err != nil {
			logging.PlatformLogger.Debug("could not raise core dump limit: %v", err)
		}
	}
	debug.SetTraceback("crash")
}
