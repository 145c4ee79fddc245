//go:build fe310

package main

import "machine"

var (
	debugUART    *machine.UART
	debugEnabled bool
)

// InitDebugUART attaches to UART0 (routed to the on-board USB bridge).
// The runtime has already configured it at 115200 baud for stdout.
func InitDebugUART() {
	debugUART = machine.UART0
	debugEnabled = true

	DebugPrintln("=== FE310 Debug UART Initialized ===")
}

// DebugPrintln writes a string to the debug UART with newline
func DebugPrintln(s string) {
	if !debugEnabled || debugUART == nil {
		return
	}
	debugUART.Write([]byte(s))
	debugUART.Write([]byte("\r\n"))
}
