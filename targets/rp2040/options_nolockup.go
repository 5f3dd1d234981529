//go:build rp2040 && !lockup

package main

const lockupOnOverrun = false
