package thread

// lockMode records how the caller held its lock on entry to a wait,
// so the lock can be handed back in the same mode afterwards. The set
// is closed: one capture and one restore path per lock kind.
type lockMode int

const (
	lockModeNone lockMode = iota
	lockModeExclusive
	lockModeRead
	lockModeWrite
	lockModeRecursiveWrite
)

func captureMutexMode(lock *Mutex) lockMode {
	if lock == nil {
		return lockModeNone
	}
	return lockModeExclusive
}

func restoreMutexMode(lock *Mutex, mode lockMode) {
	if mode == lockModeExclusive {
		lock.Lock()
	}
}

// captureRWMode inspects the lock's holder state without mutating it.
func captureRWMode(lock *RWLock) lockMode {
	switch lock.stateForWait() {
	case RWLockLockedForRead:
		return lockModeRead
	case RWLockLockedForWrite:
		return lockModeWrite
	case RWLockRecursivelyLocked:
		return lockModeRecursiveWrite
	default:
		return lockModeNone
	}
}

// restoreRWMode reacquires lock in the captured mode. This can block
// for arbitrarily long; wait deadlines never apply to getting the
// caller's lock back.
func restoreRWMode(lock *RWLock, mode lockMode) {
	if mode == lockModeWrite {
		lock.LockForWrite()
	} else {
		lock.LockForRead()
	}
}
