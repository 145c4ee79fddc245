//go:build fe310

package main

import (
	"errors"
	"machine"

	"rvirq/core"
	"rvirq/interrupt"

	"tinygo.org/x/drivers/adxl345"
)

const (
	accelI2CFreq      = 400000
	accelReportPeriod = 100000 // microseconds
)

// accelSample is the latest reading, shared between the main loop (writer)
// and the report timer (reader)
type accelSample struct {
	X, Y, Z int32 // micro-g
	Seq     uint32
}

var (
	accel       adxl345.Device
	accelReady  bool
	latest      = interrupt.NewMutex(accelSample{})
	accelReport core.Timer
	lastSeq     uint32
	peakX       int32
)

// InitAccel configures the ADXL345 on I2C0 and schedules the report timer
func InitAccel() error {
	err := machine.I2C0.Configure(machine.I2CConfig{Frequency: accelI2CFreq})
	if err != nil {
		return err
	}

	accel = adxl345.New(machine.I2C0)
	accel.Configure()
	if !accel.SetRate(adxl345.RATE_100HZ) {
		return errors.New("adxl345: rate not accepted")
	}
	if !accel.SetRange(adxl345.RANGE_16G) {
		return errors.New("adxl345: range not accepted")
	}
	accelReady = true

	accelReport.WakeTime = core.GetTime() + core.TimerFromUS(accelReportPeriod)
	accelReport.Handler = reportAccel
	core.ScheduleTimer(&accelReport)
	return nil
}

// PollAccel reads the sensor outside any critical section and publishes
// the sample
func PollAccel() {
	if !accelReady {
		return
	}
	x, y, z, err := accel.ReadAcceleration()
	if err != nil {
		return
	}
	latest.Update(func(s *accelSample) {
		s.X, s.Y, s.Z = x, y, z
		s.Seq++
	})
}

// reportAccel runs from the timer dispatcher and tracks the peak X reading
func reportAccel(t *core.Timer, cs interrupt.CriticalSection) uint8 {
	s := latest.Borrow(cs)
	if s.Seq != lastSeq {
		lastSeq = s.Seq
		if abs32(s.X) > abs32(peakX) {
			peakX = s.X
		}
		core.DebugAsync("accel seq=" + utoa(s.Seq) + " peak_x_ug=" + utoa(uint32(abs32(peakX))))
	}
	t.WakeTime += core.TimerFromUS(accelReportPeriod)
	return core.SF_RESCHEDULE
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// utoa converts an unsigned integer to a string without fmt
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}
