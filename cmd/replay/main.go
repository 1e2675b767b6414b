package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"submarine/core"
)

// replay runs a sequence of key names and timer ticks through the same
// bindings the window uses and prints the state after each step.
//
//	replay f left f tick tick
func main() {
	ticks := flag.Int("ticks", 0, "Timer ticks to run after the sequence")
	flag.Parse()

	steps := flag.Args()
	for i := 0; i < *ticks; i++ {
		steps = append(steps, "tick")
	}
	if len(steps) == 0 {
		fmt.Fprintln(os.Stderr, "usage: replay [-ticks N] key|tick ...")
		fmt.Fprintln(os.Stderr, "keys: s f b left right up down f1")
		os.Exit(2)
	}

	state := core.NewState()
	bindings := core.DefaultBindings()

	fmt.Println("=== Submarine Replay ===")
	printState("start", state)

	for _, step := range steps {
		name := strings.ToLower(step)
		if name == "tick" {
			state.Tick(core.FixedStep{}.Step(0))
			printState(name, state)
			continue
		}

		sym, ok := core.ParseSymbol(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown key %q\n", step)
			os.Exit(2)
		}
		bindings.Apply(sym, state, os.Stdout)
		printState(name, state)
	}
}

func printState(step string, s *core.State) {
	fmt.Printf("%-6s x=%8.3f z=%8.3f alt=%5.1f heading=%7.1f bearing=%5.1f prop=%7.1f on=%-5v dir=%+d\n",
		step, s.XPos, s.ZPos, s.Altitude, s.Heading, core.NormalizeDegrees(s.Heading), s.PropAngle, s.PropellerOn, int(s.Direction))
}
