//go:build !tinygo

package core

var systemTicks uint32

// getSystemTicks returns the uptime counter (regular Go implementation)
func getSystemTicks() uint32 {
	state := disableInterrupts()
	t := systemTicks
	restoreInterrupts(state)
	return t
}

// setSystemTicks sets the uptime counter (regular Go implementation)
func setSystemTicks(ticks uint32) {
	state := disableInterrupts()
	systemTicks = ticks
	restoreInterrupts(state)
}
