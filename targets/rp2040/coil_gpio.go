//go:build rp2040 && coilgpio

package main

import (
	"crazyclock/core"
	"time"
)

func newCoilBackend() core.CoilBackend {
	return core.NewGPIOCoil(NewRPGPIODriver(), time.Sleep)
}
