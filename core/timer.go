package core

// Uptime is counted in generator ticks, so it runs at TickHz and wraps
// after about 13.6 years.

// Uptime returns the ticks produced since the generator started
func Uptime() uint32 {
	return getSystemTicks()
}

// UptimeSeconds returns Uptime in whole seconds
func UptimeSeconds() uint32 {
	return Uptime() / TickHz
}

func resetUptime() {
	setSystemTicks(0)
}

// countTick is called from the compare interrupt
func countTick() {
	setSystemTicks(getSystemTicks() + 1)
}
