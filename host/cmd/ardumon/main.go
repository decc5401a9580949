// ardumon is a host-side console for a board running the ardugo firmware:
// it streams the board's debug output to stdout and forwards stdin lines
// to the board.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"ardugo/host/serial"
)

var (
	device    = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud      = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	timestamp = flag.Bool("timestamp", false, "Prefix each line with the host receive time")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ardumon: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Fprintf(os.Stderr, "ardumon: connected to %s\n", *device)

	// Forward stdin to the board in the background.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text() + "\n"
			if _, err := port.Write([]byte(line)); err != nil {
				fmt.Fprintf(os.Stderr, "ardumon: write: %v\n", err)
				return
			}
		}
	}()

	// Stream board output line by line.
	reader := bufio.NewReader(port)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if *timestamp {
				fmt.Printf("[%s] %s", time.Now().Format("15:04:05.000"), line)
			} else {
				fmt.Print(line)
			}
		}
		if err != nil {
			if err == io.EOF {
				// Read timeout with no data; keep polling.
				continue
			}
			fmt.Fprintf(os.Stderr, "ardumon: read: %v\n", err)
			os.Exit(1)
		}
	}
}
