package core

// TimerFreq is the system timer frequency in Hz. Targets set it with
// SetTimerFreq during init.
var TimerFreq uint32 = 1000000

var bootTime uint32 // Time at boot for uptime calculation

// SetTimerFreq sets the system timer frequency in Hz
func SetTimerFreq(hz uint32) {
	TimerFreq = hz
}

// GetTime returns the current system time in timer ticks
func GetTime() uint32 {
	return getSystemTicks()
}

// SetTime sets the current system time (for testing/hardware integration)
func SetTime(ticks uint32) {
	setSystemTicks(ticks)
}

// GetUptime returns ticks since TimerInit
func GetUptime() uint64 {
	return uint64(GetTime() - bootTime)
}

// TimerFromUS converts microseconds to timer ticks
func TimerFromUS(us uint32) uint32 {
	return uint32(uint64(us) * uint64(TimerFreq) / 1000000)
}

// TimerToUS converts timer ticks to microseconds
func TimerToUS(ticks uint32) uint32 {
	return uint32(uint64(ticks) * 1000000 / uint64(TimerFreq))
}

// TimerInit initializes the system timer
func TimerInit() {
	bootTime = GetTime()
}

// ProcessTimers processes scheduled timers
func ProcessTimers() {
	currentTime = GetTime()
	TimerDispatch()
}
