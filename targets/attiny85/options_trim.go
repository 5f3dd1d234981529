//go:build attiny85 && swtrim

package main

const softwareTrim = true
