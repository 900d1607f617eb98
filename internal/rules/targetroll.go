package rules

import (
	"math"
	"strconv"
	"strings"
)

// Sentinel target values for rolls that never need the dice.
const (
	Impossible       = math.MaxInt32
	AutomaticFail    = math.MaxInt32 - 1
	AutomaticSuccess = math.MinInt32
)

// Modifier is one line of a target number breakdown.
type Modifier struct {
	Value int
	Desc  string
}

// TargetRoll accumulates the modifiers of a 2d6 roll (piloting, driving,
// control) together with their reasons.
type TargetRoll struct {
	mods   []Modifier
	state  int // 0, Impossible, AutomaticFail or AutomaticSuccess
	reason string
}

func NewTargetRoll(base int, desc string) *TargetRoll {
	return &TargetRoll{mods: []Modifier{{Value: base, Desc: desc}}}
}

// Add appends a modifier. Zero-valued modifiers are dropped.
func (t *TargetRoll) Add(value int, desc string) *TargetRoll {
	if value == 0 {
		return t
	}
	t.mods = append(t.mods, Modifier{Value: value, Desc: desc})
	return t
}

// Append copies the modifiers of o. A special state in o wins over a
// numeric state in t; Impossible beats AutomaticFail beats AutomaticSuccess.
func (t *TargetRoll) Append(o *TargetRoll) *TargetRoll {
	if o == nil {
		return t
	}
	t.mods = append(t.mods, o.mods...)
	if o.state != 0 && (t.state == 0 || o.state > t.state) {
		t.state = o.state
		t.reason = o.reason
	}
	return t
}

func (t *TargetRoll) MarkImpossible(reason string) *TargetRoll {
	return t.mark(Impossible, reason)
}

func (t *TargetRoll) MarkAutomaticFail(reason string) *TargetRoll {
	return t.mark(AutomaticFail, reason)
}

func (t *TargetRoll) MarkAutomaticSuccess(reason string) *TargetRoll {
	return t.mark(AutomaticSuccess, reason)
}

func (t *TargetRoll) mark(state int, reason string) *TargetRoll {
	if t.state == 0 || state > t.state {
		t.state = state
		t.reason = reason
	}
	return t
}

// Value is the number to meet or beat, or one of the sentinel values.
func (t *TargetRoll) Value() int {
	if t.state != 0 {
		return t.state
	}
	sum := 0
	for _, m := range t.mods {
		sum += m.Value
	}
	return sum
}

func (t *TargetRoll) Modifiers() []Modifier {
	out := make([]Modifier, len(t.mods))
	copy(out, t.mods)
	return out
}

func (t *TargetRoll) IsSpecial() bool { return t.state != 0 }

// Desc renders "5 (base piloting) + 2 (hip destroyed)" or the special reason.
func (t *TargetRoll) Desc() string {
	switch t.state {
	case Impossible:
		return "impossible: " + t.reason
	case AutomaticFail:
		return "automatic failure: " + t.reason
	case AutomaticSuccess:
		return "automatic success: " + t.reason
	}
	var b strings.Builder
	for i, m := range t.mods {
		v := m.Value
		if i > 0 {
			if v < 0 {
				b.WriteString(" - ")
				v = -v
			} else {
				b.WriteString(" + ")
			}
		}
		b.WriteString(strconv.Itoa(v))
		b.WriteString(" (")
		b.WriteString(m.Desc)
		b.WriteString(")")
	}
	return b.String()
}

// Succeeds reports whether a 2d6 result passes the roll.
func (t *TargetRoll) Succeeds(roll int) bool {
	switch t.state {
	case Impossible, AutomaticFail:
		return false
	case AutomaticSuccess:
		return true
	}
	return roll >= t.Value()
}
