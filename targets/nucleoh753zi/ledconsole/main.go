//go:build tinygo

// Serial LED console for the Nucleo-H753ZI, reachable through the
// ST-LINK virtual COM port at 115200 8N1.
package main

import (
	"nucleolab/console"
	"nucleolab/core"
	"nucleolab/targets/nucleoh753zi/board"
)

func main() {
	board.InitMicrosTimer()
	board.InitGPIO()

	con := console.New(board.InitSerial())
	board.EnableSerialRx(con.RxISR)
	board.InitButton(core.ButtonISR)
	board.HeartbeatTimer(console.HeartbeatSeconds*1000, con.HeartbeatISR)

	con.Banner()
	for {
		con.Poll()
	}
}
