//go:build attiny85 && xtal32k && !xtal4mhz

package main

import "crazyclock/core"

// 32.768 kHz watch crystal, undivided
const clockPrescaleBits = 0x00

var profile = core.Profile32kHz
