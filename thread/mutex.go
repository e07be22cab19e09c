package thread

import "sync"

// Mutex is a plain exclusive lock usable with WaitCondition.
type Mutex struct {
	lock sync.Mutex
}

func NewMutex() *Mutex {
	return &Mutex{}
}

func (m *Mutex) Lock() {
	m.lock.Lock()
}

func (m *Mutex) TryLock() bool {
	return m.lock.TryLock()
}

func (m *Mutex) Unlock() {
	m.lock.Unlock()
}
