package thread

import (
	"sync"
	"time"
)

type waitStatus int

const (
	waitSignaled waitStatus = iota
	waitTimedOut
)

// nativeCond is the blocking primitive underneath a WaitCondition.
// Every method is called with the owning condition's state lock held.
type nativeCond interface {
	// wait blocks until woken or until the deadline passes. It
	// releases state while asleep and reacquires it before returning.
	wait(state *sync.Mutex, deadline DeadlineTimer) (waitStatus, error)
	// wake wakes every goroutine currently blocked in wait. Waking
	// more goroutines than were granted a wakeup is allowed; the
	// wakeup accounting above filters the excess.
	wake()
}

// chanCond wakes sleepers by closing the channel they captured before
// going to sleep. The capture happens under the state lock, so a wake
// issued after a waiter registered always closes the very channel that
// waiter is about to receive from; the wakeup cannot be lost.
type chanCond struct {
	ch chan struct{}
}

func newChanCond() *chanCond {
	return &chanCond{ch: make(chan struct{})}
}

func (c *chanCond) wait(state *sync.Mutex, deadline DeadlineTimer) (waitStatus, error) {
	ch := c.ch

	if deadline.IsForever() {
		state.Unlock()
		<-ch
		state.Lock()
		return waitSignaled, nil
	}

	remaining := deadline.Remaining()
	if remaining <= 0 {
		return waitTimedOut, nil
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()

	state.Unlock()
	status := waitTimedOut
	select {
	case <-ch:
		status = waitSignaled
	case <-timer.C:
	}
	state.Lock()
	return status, nil
}

func (c *chanCond) wake() {
	close(c.ch)
	c.ch = make(chan struct{})
}
