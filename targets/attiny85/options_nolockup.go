//go:build attiny85 && !lockup

package main

const lockupOnOverrun = false
