//go:build rp2040

package pio

// PIO coil backend using tinygo-org/pio package.
// The pulse width is timed by the state machine, so it doesn't stretch
// when the CPU is slow to come back from the delay.

import (
	"errors"
	"machine"
	"time"

	"crazyclock/core"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// State machine clock: one instruction every 10 µs
const pioCycleHz = 100000

// Command word format:
//
//	Bits 0-1:  coil pin pattern (01 = coil A, 10 = coil B)
//	Bits 2-31: hold count in state machine cycles, minus one
//
// Program flow:
//  1. Pull 32-bit command from FIFO
//  2. Drive the selected coil pin high
//  3. Hold for the count
//  4. Drive both pins low
//  5. Push a completion word to the RX FIFO
//
// buildCoilProgram creates the coil PIO program using AssemblerV0
func buildCoilProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),          // 0: pull block
		asm.Out(rp2pio.OutDestPins, 2).Encode(), // 1: out pins, 2 (energize one pin)
		asm.Out(rp2pio.OutDestX, 30).Encode(),   // 2: out x, 30 (hold count)
		// hold:
		asm.Jmp(3, rp2pio.JmpXNZeroDec).Encode(), // 3: jmp x--, 3
		asm.Set(rp2pio.SetDestPins, 0).Encode(),  // 4: set pins, 0
		asm.Push(false, true).Encode(),           // 5: push block (done)
		// .wrap
	}
}

const coilPIOOrigin = 0 // Load at offset 0 for correct jump addresses

var errPinsNotConsecutive = errors.New("PIO coil pins must be consecutive")

// PIOCoilBackend implements core.CoilBackend using TinyGo's pio package
type PIOCoilBackend struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	base   machine.Pin
	offset uint8
}

// NewPIOCoilBackend creates a new PIO-based coil backend
// pioNum: 0 for PIO0, 1 for PIO1
// smNum: 0-3 for state machine number
func NewPIOCoilBackend(pioNum, smNum uint8) *PIOCoilBackend {
	var pioHW *rp2pio.PIO
	if pioNum == 0 {
		pioHW = rp2pio.PIO0
	} else {
		pioHW = rp2pio.PIO1
	}

	return &PIOCoilBackend{
		pio: pioHW,
		sm:  pioHW.StateMachine(smNum),
	}
}

// Init loads the program and claims both coil pins. Coil B must be the pin
// right after coil A.
func (b *PIOCoilBackend) Init(pinA, pinB core.GPIOPin) error {
	if pinB != pinA+1 {
		return errPinsNotConsecutive
	}
	b.base = machine.Pin(pinA)

	// CRITICAL: Claim the state machine first!
	b.sm.TryClaim()

	program := buildCoilProgram()
	offset, err := b.pio.AddProgram(program, coilPIOOrigin)
	if err != nil {
		return err
	}
	b.offset = offset

	b.base.Configure(machine.PinConfig{Mode: b.pio.PinMode()})
	(b.base + 1).Configure(machine.PinConfig{Mode: b.pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()

	// OUT drives the selected pin high, SET drives both low
	cfg.SetOutPins(b.base, 2)
	cfg.SetSetPins(b.base, 2)

	// Shift right, autopull DISABLED (we use explicit PULL), 32-bit threshold
	cfg.SetOutShift(true, false, 32)

	cfg.SetWrap(offset+uint8(len(program))-1, offset)

	div := machine.CPUFrequency() / pioCycleHz
	cfg.SetClkDivIntFrac(uint16(div), 0)

	// Initialize state machine FIRST
	b.sm.Init(offset, cfg)

	// THEN set pin directions (must be after Init!)
	b.sm.SetPindirsConsecutive(b.base, 2, true)
	b.sm.SetPinsConsecutive(b.base, 2, false)

	b.sm.SetEnabled(true)

	core.DebugPrintln("[PIO] coil backend on pins " + itoa(int(pinA)) + "," + itoa(int(pinB)))
	return nil
}

// Pulse energizes one coil pin for width and waits for the state machine
// to report the pin low again.
func (b *PIOCoilBackend) Pulse(coil core.Coil, width time.Duration) {
	hold := uint32(width / (time.Second / pioCycleHz))
	if hold > 0 {
		hold--
	}
	cmd := uint32(1)<<(coil&1) | hold<<2

	for b.sm.IsTxFIFOFull() {
		// Busy wait - should be very brief
	}
	b.sm.TxPut(cmd)

	for b.sm.IsRxFIFOEmpty() {
		time.Sleep(time.Millisecond)
	}
	b.sm.RxGet()
}

// Release halts the state machine with both pins low
func (b *PIOCoilBackend) Release() {
	b.sm.SetEnabled(false)
	b.sm.ClearFIFOs()
	b.sm.Restart()
	b.sm.SetPinsConsecutive(b.base, 2, false)
	b.sm.SetEnabled(true)
}

// GetName returns the backend name
func (b *PIOCoilBackend) GetName() string {
	return "PIO"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}
