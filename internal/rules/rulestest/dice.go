// Package rulestest provides scripted dice for deterministic rules tests.
package rulestest

import "fmt"

// Dice replays queued IntN results in order and panics when the script runs
// out, so a test fails loudly when the code rolls more than expected.
type Dice struct {
	queue []int
	pos   int
}

func NewDice() *Dice { return &Dice{} }

// D6 queues single die faces (1-6).
func (d *Dice) D6(faces ...int) *Dice {
	for _, f := range faces {
		d.queue = append(d.queue, f-1)
	}
	return d
}

// Roll2d6 queues two dice that add up to each total.
func (d *Dice) Roll2d6(totals ...int) *Dice {
	for _, t := range totals {
		first := t - 1
		if first > 6 {
			first = 6
		}
		d.D6(first, t-first)
	}
	return d
}

// Pick queues a raw IntN result, used for uniform choices such as slot picks.
func (d *Dice) Pick(idx ...int) *Dice {
	d.queue = append(d.queue, idx...)
	return d
}

func (d *Dice) IntN(n int) int {
	if d.pos >= len(d.queue) {
		panic(fmt.Sprintf("rulestest: dice script exhausted after %d rolls", d.pos))
	}
	v := d.queue[d.pos]
	d.pos++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("rulestest: scripted value %d out of range [0,%d)", v, n))
	}
	return v
}

// Remaining reports how many scripted values were not consumed.
func (d *Dice) Remaining() int { return len(d.queue) - d.pos }
