package core

import "rvirq/interrupt"

// Timer represents a scheduled event
type Timer struct {
	WakeTime uint32
	// Handler runs inside the dispatcher's critical section. It returns
	// SF_RESCHEDULE after moving WakeTime forward to run again.
	Handler func(t *Timer, cs interrupt.CriticalSection) uint8
	Next    *Timer
}

const (
	SF_DONE       = 0
	SF_RESCHEDULE = 1
)

// timerList is the sorted list of pending timers. deferred holds timers
// that rescheduled into the past during the current dispatch; they rejoin
// the sorted list when the dispatch ends.
type timerList struct {
	head     *Timer
	deferred *Timer
}

var (
	timers      = interrupt.NewMutex(timerList{})
	currentTime uint32
)

// timerIsBefore compares clock values across 32-bit wraparound
func timerIsBefore(a, b uint32) bool {
	return int32(a-b) < 0
}

// ScheduleTimer adds a timer to the schedule
func ScheduleTimer(t *Timer) {
	interrupt.Run(func(cs interrupt.CriticalSection) {
		timers.Borrow(cs).insert(t)
		recordTiming(cs, EvtTimerSchedule, t.WakeTime, 0)
	})
}

// CancelTimer removes a timer from the schedule, reporting whether it was
// scheduled
func CancelTimer(t *Timer) bool {
	return interrupt.Free(func(cs interrupt.CriticalSection) bool {
		if !timers.Borrow(cs).remove(t) {
			return false
		}
		recordTiming(cs, EvtTimerCancel, t.WakeTime, 0)
		return true
	})
}

// NextWakeTime returns the wake time of the earliest timer
func NextWakeTime() (uint32, bool) {
	var wake uint32
	ok := interrupt.Free(func(cs interrupt.CriticalSection) bool {
		head := timers.Borrow(cs).head
		if head == nil {
			return false
		}
		wake = head.WakeTime
		return true
	})
	return wake, ok
}

// insert adds t in sorted order by WakeTime
func (l *timerList) insert(t *Timer) {
	if l.head == nil || timerIsBefore(t.WakeTime, l.head.WakeTime) {
		t.Next = l.head
		l.head = t
		return
	}

	current := l.head
	for current.Next != nil && !timerIsBefore(t.WakeTime, current.Next.WakeTime) {
		current = current.Next
	}

	t.Next = current.Next
	current.Next = t
}

func (l *timerList) remove(t *Timer) bool {
	return unlink(&l.head, t) || unlink(&l.deferred, t)
}

func unlink(p **Timer, t *Timer) bool {
	for ; *p != nil; p = &(*p).Next {
		if *p == t {
			*p = t.Next
			t.Next = nil
			return true
		}
	}
	return false
}

// restoreDeferred moves deferred timers back into the sorted list
func (l *timerList) restoreDeferred() {
	for l.deferred != nil {
		t := l.deferred
		l.deferred = t.Next
		l.insert(t)
	}
}

// TimerDispatch runs all timers due at the current time, taking them off
// the list one at a time so a handler may cancel a timer that is also due.
// Timers that reschedule into the past wait for the next dispatch.
func TimerDispatch() {
	interrupt.Run(func(cs interrupt.CriticalSection) {
		list := timers.Borrow(cs)
		defer list.restoreDeferred()
		now := currentTime

		for list.head != nil && !timerIsBefore(now, list.head.WakeTime) {
			timer := list.head
			list.head = timer.Next
			timer.Next = nil // Clear Next pointer to avoid circular references

			recordTiming(cs, EvtTimerFire, timer.WakeTime, now)
			if timer.Handler(timer, cs) != SF_RESCHEDULE {
				continue
			}
			if timerIsBefore(now, timer.WakeTime) {
				list.insert(timer)
				continue
			}
			recordTiming(cs, EvtTimerPast, timer.WakeTime, now)
			timer.Next = list.deferred
			list.deferred = timer
		}
	})
}

// resetTimers drops every scheduled timer
func resetTimers() {
	interrupt.Run(func(cs interrupt.CriticalSection) {
		list := timers.Borrow(cs)
		for _, head := range []**Timer{&list.head, &list.deferred} {
			for t := *head; t != nil; {
				next := t.Next
				t.Next = nil
				t = next
			}
			*head = nil
		}
	})
}
