//go:build attiny85

package main

import (
	"device/avr"
)

// Timer0 implements core.CompareTimer in CTC mode with a /64 prescaler
type Timer0 struct{}

// Configure puts timer0 in CTC mode and unmasks the compare A interrupt.
// OCR0A already holds the first interval written by the tick generator.
func (Timer0) Configure() {
	avr.TCCR0A.Set(avr.TCCR0A_WGM01)
	avr.TCCR0B.Set(avr.TCCR0B_CS01 | avr.TCCR0B_CS00)
	avr.TCNT0.Set(0)
	avr.TIMSK.SetBits(avr.TIMSK_OCIE0A)
}

func (Timer0) SetCompare(v uint16) {
	avr.OCR0A.Set(uint8(v))
}

// IdleSleeper implements core.Sleeper. Idle mode keeps timer0 running.
type IdleSleeper struct{}

func (IdleSleeper) Sleep() {
	avr.MCUCR.ClearBits(avr.MCUCR_SM0 | avr.MCUCR_SM1)
	avr.MCUCR.SetBits(avr.MCUCR_SE)
	avr.Asm("sleep")
	avr.MCUCR.ClearBits(avr.MCUCR_SE)
}
