//go:build !(tinygo && rp2040)

// Command oled targets an RP2040 board and is built with TinyGo:
//
//	tinygo flash -target pico ./cmd/oled
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "oled: build with tinygo for an rp2040 target (tinygo flash -target pico ./cmd/oled)")
	os.Exit(1)
}
