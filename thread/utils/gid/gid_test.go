package gid

import "testing"

func TestCurrentIsStableAndNonZero(t *testing.T) {
	id := Current()
	if id == 0 {
		t.Fatal("Current() = 0")
	}
	if again := Current(); again != id {
		t.Errorf("Current() = %d on second call, want %d", again, id)
	}
}

func TestCurrentDiffersAcrossGoroutines(t *testing.T) {
	id := Current()
	other := make(chan uint64, 1)
	go func() {
		other <- Current()
	}()
	if o := <-other; o == 0 || o == id {
		t.Errorf("Current() in another goroutine = %d, want nonzero and != %d", o, id)
	}
}
