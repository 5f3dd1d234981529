//go:build attiny85 && ((xtal4mhz && xtal32k) || (!xtal4mhz && !xtal32k))

package main

// Build with exactly one of the xtal4mhz or xtal32k tags.
var _ = selectExactlyOneOscillatorTag
