//go:build !tinygo

package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"rvirq/interrupt"
	"rvirq/register"
	"rvirq/sim"
)

func setupScheduler(t *testing.T) *sim.Hart {
	t.Helper()
	h := sim.New()
	prev := register.SetAccessor(h)
	t.Cleanup(func() {
		register.SetAccessor(prev)
		Reset()
		SetTime(0)
	})
	Reset()
	SetTime(0)
	return h
}

func wakeTimes(t *testing.T) []uint32 {
	t.Helper()
	return interrupt.Free(func(cs interrupt.CriticalSection) []uint32 {
		var out []uint32
		for p := timers.Borrow(cs).head; p != nil; p = p.Next {
			out = append(out, p.WakeTime)
		}
		return out
	})
}

func done(*Timer, interrupt.CriticalSection) uint8 { return SF_DONE }

func TestScheduleTimerSorted(t *testing.T) {
	h := setupScheduler(t)

	a := &Timer{WakeTime: 300, Handler: done}
	b := &Timer{WakeTime: 100, Handler: done}
	c := &Timer{WakeTime: 200, Handler: done}
	ScheduleTimer(a)
	ScheduleTimer(b)
	ScheduleTimer(c)

	if diff := cmp.Diff([]uint32{100, 200, 300}, wakeTimes(t)); diff != "" {
		t.Errorf("Timer order mismatch (-want +got):\n%s", diff)
	}
	if wake, ok := NextWakeTime(); !ok || wake != 100 {
		t.Errorf("Expected next wake 100, got %d (ok=%v)", wake, ok)
	}
	if !h.Mstatus().MIE() {
		t.Errorf("Expected interrupts enabled after scheduling")
	}
}

func TestScheduleTimerAcrossWraparound(t *testing.T) {
	setupScheduler(t)

	late := &Timer{WakeTime: 0x00000010, Handler: done}
	early := &Timer{WakeTime: 0xFFFFFFF0, Handler: done}
	ScheduleTimer(late)
	ScheduleTimer(early)

	if diff := cmp.Diff([]uint32{0xFFFFFFF0, 0x00000010}, wakeTimes(t)); diff != "" {
		t.Errorf("Timer order mismatch (-want +got):\n%s", diff)
	}
}

func TestTimerReschedule(t *testing.T) {
	setupScheduler(t)

	count := 0
	periodic := &Timer{WakeTime: 10}
	periodic.Handler = func(tm *Timer, cs interrupt.CriticalSection) uint8 {
		count++
		tm.WakeTime += 10
		return SF_RESCHEDULE
	}
	ScheduleTimer(periodic)

	for now := uint32(10); now <= 40; now += 10 {
		SetTime(now)
		ProcessTimers()
	}
	if count != 4 {
		t.Errorf("Expected 4 runs, got %d", count)
	}
	if diff := cmp.Diff([]uint32{50}, wakeTimes(t)); diff != "" {
		t.Errorf("Remaining timers mismatch (-want +got):\n%s", diff)
	}
}

func TestTimerRescheduledIntoPastWaitsForNextDispatch(t *testing.T) {
	setupScheduler(t)

	count := 0
	stuck := &Timer{WakeTime: 10}
	stuck.Handler = func(tm *Timer, cs interrupt.CriticalSection) uint8 {
		count++
		return SF_RESCHEDULE // WakeTime unchanged, already past
	}
	ScheduleTimer(stuck)

	SetTime(20)
	ProcessTimers()
	if count != 1 {
		t.Errorf("Expected a single run per dispatch, got %d", count)
	}

	var past int
	for _, evt := range TimingEvents() {
		if evt.EventType == EvtTimerPast {
			past++
		}
	}
	if past != 1 {
		t.Errorf("Expected one TIMER_PAST event, got %d", past)
	}
}

func TestCancelTimer(t *testing.T) {
	setupScheduler(t)

	a := &Timer{WakeTime: 10, Handler: done}
	b := &Timer{WakeTime: 20, Handler: done}
	ScheduleTimer(a)
	ScheduleTimer(b)

	if !CancelTimer(a) {
		t.Errorf("Expected CancelTimer to find scheduled timer")
	}
	if CancelTimer(a) {
		t.Errorf("Expected second CancelTimer to report false")
	}
	if diff := cmp.Diff([]uint32{20}, wakeTimes(t)); diff != "" {
		t.Errorf("Remaining timers mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlerCancelsTimerThatIsAlsoDue(t *testing.T) {
	setupScheduler(t)

	secondFired := false
	second := &Timer{WakeTime: 20, Handler: func(*Timer, interrupt.CriticalSection) uint8 {
		secondFired = true
		return SF_DONE
	}}
	cancelled := false
	first := &Timer{WakeTime: 10, Handler: func(*Timer, interrupt.CriticalSection) uint8 {
		cancelled = CancelTimer(second)
		return SF_DONE
	}}
	ScheduleTimer(first)
	ScheduleTimer(second)

	SetTime(30)
	ProcessTimers()

	if !cancelled {
		t.Errorf("Expected CancelTimer of a due timer to succeed from a handler")
	}
	if secondFired {
		t.Errorf("Expected cancelled timer not to fire")
	}
	if _, ok := NextWakeTime(); ok {
		t.Errorf("Expected empty schedule")
	}
}

func TestHandlerCancelsTimerRescheduledIntoPast(t *testing.T) {
	setupScheduler(t)

	stuck := &Timer{WakeTime: 10, Handler: func(*Timer, interrupt.CriticalSection) uint8 {
		return SF_RESCHEDULE
	}}
	cancelled := false
	later := &Timer{WakeTime: 20, Handler: func(*Timer, interrupt.CriticalSection) uint8 {
		cancelled = CancelTimer(stuck)
		return SF_DONE
	}}
	ScheduleTimer(stuck)
	ScheduleTimer(later)

	SetTime(30)
	ProcessTimers()

	if !cancelled {
		t.Errorf("Expected CancelTimer to find the rescheduled timer")
	}
	if got := wakeTimes(t); len(got) != 0 {
		t.Errorf("Expected empty schedule, got %v", got)
	}
}

func TestRescheduledIntoPastRejoinsSchedule(t *testing.T) {
	setupScheduler(t)

	runs := 0
	stuck := &Timer{WakeTime: 10, Handler: func(*Timer, interrupt.CriticalSection) uint8 {
		runs++
		return SF_RESCHEDULE
	}}
	ScheduleTimer(stuck)
	ScheduleTimer(&Timer{WakeTime: 25, Handler: done})

	SetTime(30)
	ProcessTimers()
	if diff := cmp.Diff([]uint32{10}, wakeTimes(t)); diff != "" {
		t.Errorf("Remaining timers mismatch (-want +got):\n%s", diff)
	}
	ProcessTimers()
	if runs != 2 {
		t.Errorf("Expected one run per dispatch, got %d", runs)
	}
}

func TestHandlerPanicRestoresInterrupts(t *testing.T) {
	h := setupScheduler(t)

	ScheduleTimer(&Timer{WakeTime: 1, Handler: func(*Timer, interrupt.CriticalSection) uint8 {
		panic("handler fault")
	}})

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Expected handler panic to propagate")
			}
		}()
		SetTime(1)
		ProcessTimers()
	}()

	if !h.Mstatus().MIE() {
		t.Errorf("Expected interrupts enabled after recovering from handler panic")
	}
}
