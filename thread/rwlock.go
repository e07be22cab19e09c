package thread

import (
	"sync"

	"github.com/WONGZEONJYU/qtbase/plugin/log"
	"github.com/WONGZEONJYU/qtbase/thread/utils/gid"
)

// RWLockState is how an RWLock is currently held.
type RWLockState int

const (
	RWLockUnlocked RWLockState = iota
	RWLockLockedForRead
	RWLockLockedForWrite
	RWLockRecursivelyLocked
)

// RWLock is a reader/writer lock that, unlike sync.RWMutex, can report
// how it is currently held. WaitCondition needs that to release the
// lock and hand it back in the same mode. A pending writer blocks new
// readers. In recursive mode the goroutine holding write access may
// lock for write again; each acquisition needs its own Unlock.
type RWLock struct {
	lock sync.Mutex
	cond *sync.Cond

	recursive      bool
	readers        int
	waitingWriters int
	writer         uint64 // goroutine id of the write holder, 0 when none
	writeRecursion int
}

func NewRWLock() *RWLock {
	l := &RWLock{}
	l.cond = sync.NewCond(&l.lock)
	return l
}

func NewRecursiveRWLock() *RWLock {
	l := NewRWLock()
	l.recursive = true
	return l
}

func (l *RWLock) LockForRead() {
	l.lock.Lock()
	defer l.lock.Unlock()

	for l.writer != 0 || l.waitingWriters > 0 {
		l.cond.Wait()
	}
	l.readers++
}

func (l *RWLock) TryLockForRead() bool {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.writer != 0 || l.waitingWriters > 0 {
		return false
	}
	l.readers++
	return true
}

func (l *RWLock) LockForWrite() {
	self := gid.Current()

	l.lock.Lock()
	defer l.lock.Unlock()

	if l.recursive && l.writer == self {
		l.writeRecursion++
		return
	}

	l.waitingWriters++
	for l.readers > 0 || l.writer != 0 {
		l.cond.Wait()
	}
	l.waitingWriters--

	l.writer = self
	l.writeRecursion = 1
}

func (l *RWLock) TryLockForWrite() bool {
	self := gid.Current()

	l.lock.Lock()
	defer l.lock.Unlock()

	if l.recursive && l.writer == self {
		l.writeRecursion++
		return true
	}
	if l.readers > 0 || l.writer != 0 {
		return false
	}
	l.writer = self
	l.writeRecursion = 1
	return true
}

// Unlock releases one read or one write acquisition, whichever the
// lock currently holds. Unlocking an unlocked RWLock is a caller
// error; it is reported and ignored.
func (l *RWLock) Unlock() {
	l.lock.Lock()
	defer l.lock.Unlock()

	switch {
	case l.writer != 0:
		l.writeRecursion--
		if l.writeRecursion == 0 {
			l.writer = 0
			l.cond.Broadcast()
		}
	case l.readers > 0:
		l.readers--
		if l.readers == 0 {
			l.cond.Broadcast()
		}
	default:
		log.Error("unlock of unlocked rwlock", log.String("op", "RWLock.Unlock"))
	}
}

// stateForWait is the holder-state snapshot WaitCondition captures
// before releasing the lock.
func (l *RWLock) stateForWait() RWLockState {
	l.lock.Lock()
	defer l.lock.Unlock()

	switch {
	case l.writeRecursion > 1:
		return RWLockRecursivelyLocked
	case l.writer != 0:
		return RWLockLockedForWrite
	case l.readers > 0:
		return RWLockLockedForRead
	default:
		return RWLockUnlocked
	}
}
