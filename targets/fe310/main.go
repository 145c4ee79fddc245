//go:build fe310

package main

import (
	"machine"
	"time"

	"rvirq/core"
	"rvirq/interrupt"
)

const heartbeatPeriod = 500000 // microseconds

var (
	heartbeat  core.Timer
	ledOn      bool
	loopPanics uint32
)

func main() {
	InitDebugUART()
	core.SetDebugWriter(DebugPrintln)
	core.SetDebugEnabled(true)
	core.InitAsyncDebug()

	// Timers and shared samples rely on real masking
	interrupt.RequireMasking()

	InitClock()
	UpdateSystemTime()
	core.Init()

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	heartbeat.WakeTime = core.GetTime() + core.TimerFromUS(heartbeatPeriod)
	heartbeat.Handler = func(t *core.Timer, cs interrupt.CriticalSection) uint8 {
		ledOn = !ledOn
		led.Set(ledOn)
		t.WakeTime += core.TimerFromUS(heartbeatPeriod)
		return core.SF_RESCHEDULE
	}
	core.ScheduleTimer(&heartbeat)

	if err := InitAccel(); err != nil {
		DebugPrintln("accel disabled: " + err.Error())
	}

	for {
		// Recover from panics in the main loop to prevent a firmware crash.
		// A panic inside a timer handler unwinds through interrupt.Run,
		// which has already re-enabled interrupts by the time we get here.
		func() {
			defer func() {
				if r := recover(); r != nil {
					loopPanics++
					DebugPrintln("main loop panic #" + utoa(loopPanics))
					core.DumpTimingRing()
				}
			}()

			UpdateSystemTime()
			PollAccel()
			core.ProcessTimers()
		}()

		time.Sleep(time.Millisecond)
	}
}
