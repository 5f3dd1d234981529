//go:build rp2040 && !coilgpio

package main

import (
	"crazyclock/core"
	"crazyclock/targets/pio"
)

// PIO0 state machine 0 times the pulse in hardware
func newCoilBackend() core.CoilBackend {
	return pio.NewPIOCoilBackend(0, 0)
}
