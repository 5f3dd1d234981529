//go:build rp2040 && !swtrim

package main

const softwareTrim = false
