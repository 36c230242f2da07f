//go:build tinygo

// Reaction-time game for the Nucleo-H753ZI: wait for the green LED, hit
// the blue button, read your verdict off the blinks.
package main

import (
	"nucleolab/reaction"
	"nucleolab/targets/nucleoh753zi/board"
)

func main() {
	board.InitMicrosTimer()
	board.InitGPIO()

	game := reaction.New(reaction.DefaultConfig)
	board.InitButton(game.ButtonISR)

	game.Run()
}
