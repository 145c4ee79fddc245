//go:build fe310

package main

import (
	"runtime/volatile"
	"unsafe"

	"rvirq/core"
)

const (
	clintBase   = 0x02000000
	mtimeLow    = clintBase + 0xBFF8 // CLINT mtime low word
	mtimeFreqHz = 32768              // mtime runs from the always-on RTC
)

var (
	mtimeL = (*volatile.Register32)(unsafe.Pointer(uintptr(mtimeLow)))
)

// InitClock registers the mtime frequency with core
func InitClock() {
	core.SetTimerFreq(mtimeFreqHz)
}

// GetHardwareTime returns the low 32 bits of mtime
func GetHardwareTime() uint32 {
	return mtimeL.Get()
}

// UpdateSystemTime copies mtime into core's system time
func UpdateSystemTime() {
	core.SetTime(GetHardwareTime())
}
