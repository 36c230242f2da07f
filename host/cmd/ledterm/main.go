// ledterm is a minimal terminal for the LED console firmware: it bridges
// stdin and stdout to the board's serial port.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"nucleolab/host"
	"nucleolab/host/serial"
)

var (
	configPath = flag.String("config", "", "YAML config file path")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
)

func main() {
	flag.Parse()

	cfg, err := host.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *device != "" {
		cfg.Device = *device
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}

	port, err := serial.Open(cfg.SerialConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Connected to %s at %d baud. Press H for the command menu, Ctrl-C to quit.\n", cfg.Device, cfg.Baud)

	// Board to screen; runs until the port closes.
	done := make(chan error, 1)
	go func() {
		_, err := io.Copy(os.Stdout, port)
		done <- err
	}()

	// Keyboard to board. Stdin is line buffered, which suits the
	// firmware fine: it treats CR/LF as no-ops.
	go func() {
		_, err := io.Copy(port, os.Stdin)
		done <- err
	}()

	if err := <-done; err != nil && err != io.EOF {
		fmt.Fprintf(os.Stderr, "Error: connection lost: %v\n", err)
		os.Exit(1)
	}
}
