//go:build rp2040

package main

import (
	"device/arm"
	"device/rp"
	"machine"
)

// The 32.768 kHz oscillator feeds GP1, which is channel B of PWM slice 0.
// In rising-edge mode the slice counts oscillator edges through its
// fractional divider, so DIV.INT plays the role of the AVR timer prescaler
// and TOP the role of the compare register.
const (
	xtalPin   = machine.GP1
	pwmSlice0 = 1 << 0

	divModeRise = 2
)

// SliceCounter implements core.CompareTimer on PWM slice 0
type SliceCounter struct{}

// Configure starts slice 0 counting edges on GP1 with the given prescale.
// TOP already holds the first interval written by the tick generator.
func (SliceCounter) Configure(prescale uint32) {
	xtalPin.Configure(machine.PinConfig{Mode: machine.PinPWM})

	rp.PWM.CH0_CSR.ClearBits(rp.PWM_CH0_CSR_EN)
	rp.PWM.CH0_CTR.Set(0)
	rp.PWM.CH0_DIV.Set((prescale & 0xff) << rp.PWM_CH0_DIV_INT_Pos)

	rp.PWM.INTR.Set(pwmSlice0)
	rp.PWM.INTE.SetBits(pwmSlice0)
	rp.PWM.CH0_CSR.Set(divModeRise<<rp.PWM_CH0_CSR_DIVMODE_Pos | rp.PWM_CH0_CSR_EN)
}

// SetCompare writes TOP. The register is double-buffered, so the new value
// takes effect from the next wrap.
func (SliceCounter) SetCompare(v uint16) {
	rp.PWM.CH0_TOP.Set(uint32(v))
}

// Ack clears the wrap interrupt for slice 0
func (SliceCounter) Ack() {
	rp.PWM.INTR.Set(pwmSlice0)
}

// WFISleeper implements core.Sleeper with the wait-for-interrupt instruction
type WFISleeper struct{}

func (WFISleeper) Sleep() {
	arm.Asm("wfi")
}
