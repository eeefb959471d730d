// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

// Package spin provides the fallback test-and-set lock backing the
// memory-barrier emulation path on platforms without native barrier
// support. It must be initialized during platform normalization, before
// any later code assumes barrier operations work.
package spin

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// Lock is a test-and-set spinlock. The zero value is an unlocked lock.
type Lock struct {
	state int32
}

// Acquire spins until the lock is held by the caller.
func (l *Lock) Acquire() {
	for !atomic.CompareAndSwapInt32(&l.state, 0, 1) {
		runtime.Gosched()
	}
}

// TryAcquire attempts to take the lock without spinning.
func (l *Lock) TryAcquire() bool {
	return atomic.CompareAndSwapInt32(&l.state, 0, 1)
}

// Release unlocks the lock. Calling Release on an unheld lock is a bug
// in the caller; the lock does not track ownership.
func (l *Lock) Release() {
	atomic.StoreInt32(&l.state, 0)
}

// fallbackLock serializes barrier emulation for code paths that cannot
// rely on native atomics.
var fallbackLock Lock

// Barrier emulates a full memory barrier by cycling the fallback lock.
func Barrier() {
	fallbackLock.Acquire()
	fallbackLock.Release()
}

// Init readies the fallback lock and self-tests the primitive. A failure
// here means atomic operations are broken on this platform and nothing
// later can be trusted.
func Init() error {
	fallbackLock = Lock{}

	var probe Lock
	if !probe.TryAcquire() {
		return fmt.Errorf("spinlock self-test: fresh lock could not be acquired")
	}
	if probe.TryAcquire() {
		return fmt.Errorf("spinlock self-test: held lock was acquired twice")
	}
	probe.Release()
	if !probe.TryAcquire() {
		return fmt.Errorf("spinlock self-test: released lock could not be reacquired")
	}
	probe.Release()
	return nil
}
