package thread

import (
	"testing"
	"time"
)

func TestDeadlineTimerZeroValueExpired(t *testing.T) {
	var d DeadlineTimer
	if !d.HasExpired() {
		t.Error("HasExpired() = false, want true for the zero value")
	}
	if d.Remaining() != 0 {
		t.Errorf("Remaining() = %v, want 0", d.Remaining())
	}
}

func TestForeverNeverExpires(t *testing.T) {
	if !Forever.IsForever() {
		t.Error("IsForever() = false")
	}
	if Forever.HasExpired() {
		t.Error("HasExpired() = true, want false")
	}
	if Forever.Remaining() != -1 {
		t.Errorf("Remaining() = %v, want -1", Forever.Remaining())
	}
	if _, ok := Forever.Deadline(); ok {
		t.Error("Deadline() ok = true, want false")
	}
}

func TestDeadlineTimerRemaining(t *testing.T) {
	d := NewDeadlineTimer(time.Second)
	if d.HasExpired() {
		t.Fatal("HasExpired() = true for a one-second timer")
	}
	r1 := d.Remaining()
	if r1 <= 0 || r1 > time.Second {
		t.Errorf("Remaining() = %v, want in (0, 1s]", r1)
	}
	time.Sleep(10 * time.Millisecond)
	if r2 := d.Remaining(); r2 >= r1 {
		t.Errorf("Remaining() = %v after sleeping, want < %v", r2, r1)
	}
}

func TestDeadlineTimerClampsAtZero(t *testing.T) {
	d := NewDeadlineTimer(-time.Second)
	if !d.HasExpired() {
		t.Error("HasExpired() = false, want true")
	}
	if d.Remaining() != 0 {
		t.Errorf("Remaining() = %v, want 0", d.Remaining())
	}
}

func TestDeadlineTimerAt(t *testing.T) {
	at := time.Now().Add(time.Hour)
	d := NewDeadlineTimerAt(at)
	if d.IsForever() {
		t.Error("IsForever() = true, want false")
	}
	deadline, ok := d.Deadline()
	if !ok {
		t.Fatal("Deadline() ok = false, want true")
	}
	if !deadline.Equal(at) {
		t.Errorf("Deadline() = %v, want %v", deadline, at)
	}
}
