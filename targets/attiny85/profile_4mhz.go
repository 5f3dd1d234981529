//go:build attiny85 && xtal4mhz && !xtal32k

package main

import "crazyclock/core"

// 4 MHz crystal divided by 128
const clockPrescaleBits = 0x07

var profile = core.Profile4MHz
