package thread

import "testing"

func TestMutexTryLock(t *testing.T) {
	m := NewMutex()
	if !m.TryLock() {
		t.Fatal("TryLock = false on a fresh mutex")
	}
	if m.TryLock() {
		t.Error("TryLock = true while held")
	}
	m.Unlock()
	if !m.TryLock() {
		t.Error("TryLock = false after unlock")
	}
	m.Unlock()
}
