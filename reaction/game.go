// Package reaction is the reaction-time game: wait a random 1 to 5
// seconds, light the green LED, and measure how fast the user hits the
// button. Pressing early is cheating.
package reaction

import (
	"sync/atomic"

	"nucleolab/core"
)

// State is the game's phase. The button ISR reads it to decide whether a
// press is a reaction sample, so it lives in a single atomic word.
type State uint32

const (
	Waiting State = iota // pre-roll running, green off
	Ready                // green on, clock armed
	Result               // showing the verdict
	Cheated              // pressed before green
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "Waiting"
	case Ready:
		return "Ready"
	case Result:
		return "Result"
	case Cheated:
		return "Cheated"
	}
	return "?"
}

// Verdict bands on the measured reaction in milliseconds. Boundaries are
// strict, so an exact 200 ms is Good and an exact 400 ms is Slow.
type Verdict uint8

const (
	Excellent Verdict = iota // under 200 ms
	Good                     // under 400 ms
	Slow
)

func verdictFor(ms uint32) Verdict {
	switch {
	case ms < 200:
		return Excellent
	case ms < 400:
		return Good
	}
	return Slow
}

// Config bounds the random pre-roll, in milliseconds.
type Config struct {
	MinDelayMillis uint32
	MaxDelayMillis uint32
}

var DefaultConfig = Config{MinDelayMillis: 1000, MaxDelayMillis: 5000}

const (
	resultGuardMillis  = 500
	cheatDisplayMillis = 2000
)

// Game holds the FSM. state, startTime and reactionTime are shared with
// the button ISR.
type Game struct {
	cfg Config
	rng *core.Rand

	state        uint32
	startTime    uint32 // µs at green-on
	reactionTime uint32 // µs from green-on to the press
}

// New seeds the pre-roll generator from the live counter, so the clock
// driver must be installed first.
func New(cfg Config) *Game {
	if cfg.MaxDelayMillis < cfg.MinDelayMillis {
		cfg.MaxDelayMillis = cfg.MinDelayMillis
	}
	if cfg.MinDelayMillis == 0 && cfg.MaxDelayMillis == 0 {
		cfg = DefaultConfig
	}
	return &Game{cfg: cfg, rng: core.NewClockRand()}
}

func (g *Game) State() State {
	return State(atomic.LoadUint32(&g.state))
}

func (g *Game) setState(s State) {
	atomic.StoreUint32(&g.state, uint32(s))
}

// ReactionTime returns the last measured reaction in microseconds.
func (g *Game) ReactionTime() uint32 {
	return atomic.LoadUint32(&g.reactionTime)
}

// ButtonISR is the game's half of the button interrupt: record the edge,
// and if the green light is on, capture the reaction right here so main
// loop latency never inflates the measurement.
func (g *Game) ButtonISR() {
	core.ButtonISR()
	if g.State() == Ready {
		atomic.StoreUint32(&g.reactionTime, core.PressTime()-atomic.LoadUint32(&g.startTime))
	}
}

// Start shows the power-on flash and resets the FSM.
func (g *Game) Start() {
	core.FlashAll(3, 100, 100)
	g.setState(Waiting)
}

// Run drives the game forever.
func (g *Game) Run() {
	g.Start()
	for {
		g.Step()
	}
}

// Step executes the current state to completion and performs one
// transition. Each arm blocks on its own delay or button wait.
func (g *Game) Step() {
	switch g.State() {
	case Waiting:
		g.stepWaiting()
	case Ready:
		g.stepReady()
	case Result:
		g.stepResult()
	case Cheated:
		g.stepCheated()
	}
}

// stepWaiting runs the random pre-roll. A press before it elapses is a
// cheat; otherwise the green LED comes on and the clock is armed.
func (g *Game) stepWaiting() {
	core.AllLEDsOff()
	core.ClearPress()

	delay := g.rng.Range(g.cfg.MinDelayMillis, g.cfg.MaxDelayMillis)
	start := core.Micros()
	for core.Elapsed(start) < delay*1000 {
		if core.TakePress() {
			g.setState(Cheated)
			return
		}
	}

	// startTime must be visible before the ISR can observe Ready.
	atomic.StoreUint32(&g.startTime, core.Micros())
	g.setState(Ready)
	core.SetLEDState(core.Green, true)
}

// stepReady waits for the press. The ISR already sampled reactionTime by
// the time the edge flag is visible here.
func (g *Game) stepReady() {
	for !core.TakePress() {
	}
	core.SetLEDState(core.Green, false)
	g.setState(Result)
}

// stepResult blinks the verdict, holds a short guard so the tail of the
// reaction press cannot immediately restart the game, then waits for a
// fresh press.
func (g *Game) stepResult() {
	entered := core.Micros()
	g.showVerdict(verdictFor(g.ReactionTime() / 1000))
	for core.Elapsed(entered) < resultGuardMillis*1000 {
	}
	core.ClearPress()
	g.waitPress()
	g.setState(Waiting)
}

// stepCheated holds the red LED for two seconds, discarding any edges
// that arrive during the display, then waits for a press to restart.
func (g *Game) stepCheated() {
	core.AllLEDsOff()
	core.SetLEDState(core.Red, true)
	core.DelayMillis(cheatDisplayMillis)
	core.SetLEDState(core.Red, false)
	core.ClearPress()
	g.waitPress()
	g.setState(Waiting)
}

func (g *Game) showVerdict(v Verdict) {
	switch v {
	case Excellent:
		core.BlinkLED(core.Green, 5, 100, 100)
	case Good:
		core.BlinkLED(core.Yellow, 3, 200, 200)
	default:
		core.BlinkLED(core.Red, 2, 400, 400)
	}
}

// waitPress blocks until the next edge and debounces it. A restart press
// has no latency requirement, so polling every millisecond is enough.
func (g *Game) waitPress() {
	for !core.TakePress() {
		core.DelayMillis(1)
	}
	core.DelayMillis(core.DebounceMillis)
}
