package thread

import (
	"math"
	"sync"
	"time"

	"github.com/WONGZEONJYU/qtbase/plugin/log"
)

// UnlimitedTimeout as a millisecond wait time means no deadline.
const UnlimitedTimeout uint64 = math.MaxUint64

// condCore holds the state shared by all entry points of one
// WaitCondition. waiters counts goroutines currently blocked inside
// the condition, wakeups counts granted wakeups not yet consumed by a
// blocked goroutine; both are guarded by stateLock. The counters turn
// "a wake happened" into "a wake was earned by this goroutine", which
// the native primitive alone cannot guarantee.
type condCore struct {
	stateLock sync.Mutex
	native    nativeCond
	waiters   int
	wakeups   int
}

// block is entered with stateLock held, the calling goroutine already
// counted in waiters and the caller's own lock released. It returns
// with stateLock released. The result is true only when the goroutine
// consumed a wakeup before the deadline.
func (c *condCore) block(deadline DeadlineTimer) bool {
	var status waitStatus
	var err error
	for {
		status, err = c.native.wait(&c.stateLock, deadline)
		if err != nil {
			break
		}
		if status == waitSignaled && c.wakeups == 0 {
			// spurious wakeup, sleep again for the remaining time
			continue
		}
		break
	}

	if c.waiters <= 0 {
		panic("qtbase/thread: WaitCondition internal error (waiters)")
	}
	c.waiters--
	woken := err == nil && status == waitSignaled
	if woken {
		if c.wakeups <= 0 {
			panic("qtbase/thread: WaitCondition internal error (wakeups)")
		}
		c.wakeups--
	}
	c.stateLock.Unlock()

	if err != nil {
		reportError(err, "WaitCondition.Wait", "native wait")
	}
	return woken
}

// WaitCondition lets goroutines block until another goroutine wakes
// them. A goroutine holding a Mutex or RWLock calls Wait or WaitRW,
// which releases the lock while the goroutine sleeps and reacquires it
// in the same mode before returning. WakeOne and WakeAll may be called
// with or without holding the associated lock.
type WaitCondition struct {
	core condCore
}

func NewWaitCondition() *WaitCondition {
	c := &WaitCondition{}
	c.core.native = newChanCond()
	return c
}

// Wait releases lock and blocks until a wakeup is granted or the
// deadline passes, then reacquires lock. It returns true only when the
// goroutine was woken before the deadline. The reacquisition is not
// bounded by the deadline.
func (c *WaitCondition) Wait(lock *Mutex, deadline DeadlineTimer) bool {
	mode := captureMutexMode(lock)
	if mode == lockModeNone {
		log.Error("wait on nil mutex", log.String("op", "WaitCondition.Wait"))
		return false
	}

	// Register as a waiter before releasing the caller's lock, so a
	// wake issued right after the caller's critical section ends is
	// counted for this goroutine.
	c.core.stateLock.Lock()
	c.core.waiters++
	lock.Unlock()

	woken := c.core.block(deadline)

	restoreMutexMode(lock, mode)
	return woken
}

// WaitMs is Wait with a relative timeout in milliseconds.
// UnlimitedTimeout means wait forever.
func (c *WaitCondition) WaitMs(lock *Mutex, timeMs uint64) bool {
	return c.Wait(lock, deadlineForMs(timeMs))
}

// WaitRW is Wait for a reader/writer lock held in any mode. The lock
// is reacquired in the mode it was held when WaitRW was called.
// Calling it with the lock unlocked, or write-locked recursively,
// fails immediately without blocking.
func (c *WaitCondition) WaitRW(lock *RWLock, deadline DeadlineTimer) bool {
	if lock == nil {
		log.Error("wait on nil rwlock", log.String("op", "WaitCondition.WaitRW"))
		return false
	}
	mode := captureRWMode(lock)
	switch mode {
	case lockModeNone:
		log.Error("wait on unlocked rwlock", log.String("op", "WaitCondition.WaitRW"))
		return false
	case lockModeRecursiveWrite:
		// The recursion depth is not tracked across release/restore;
		// waiting here would either deadlock or under-unlock.
		log.Error("cannot wait on a recursively write-locked rwlock",
			log.String("op", "WaitCondition.WaitRW"))
		return false
	}

	c.core.stateLock.Lock()
	c.core.waiters++
	lock.Unlock()

	woken := c.core.block(deadline)

	restoreRWMode(lock, mode)
	return woken
}

// WaitRWMs is WaitRW with a relative timeout in milliseconds.
// UnlimitedTimeout means wait forever.
func (c *WaitCondition) WaitRWMs(lock *RWLock, timeMs uint64) bool {
	return c.WaitRW(lock, deadlineForMs(timeMs))
}

// WakeOne grants one wakeup, bounded by the number of goroutines
// currently waiting. With no waiters it is a no-op.
func (c *WaitCondition) WakeOne() {
	c.core.stateLock.Lock()
	c.core.wakeups = min(c.core.wakeups+1, c.core.waiters)
	c.core.native.wake()
	c.core.stateLock.Unlock()
}

// WakeAll grants a wakeup to every goroutine currently waiting.
func (c *WaitCondition) WakeAll() {
	c.core.stateLock.Lock()
	c.core.wakeups = c.core.waiters
	c.core.native.wake()
	c.core.stateLock.Unlock()
}

func deadlineForMs(timeMs uint64) DeadlineTimer {
	if timeMs == UnlimitedTimeout {
		return Forever
	}
	return NewDeadlineTimer(time.Duration(timeMs) * time.Millisecond)
}

// reportError is a one-way diagnostics sink; it never affects control
// flow.
func reportError(err error, where, what string) {
	log.Error("wait condition failure",
		log.String("where", where),
		log.String("what", what),
		log.Err(err))
}
