package transport

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Manifest groups a carrier's bays and docking collars.
type Manifest struct {
	Bays           []*Bay
	DockingCollars int

	docked []uuid.UUID
}

func (m *Manifest) AddBay(t BayType, capacity float64, doors int) *Bay {
	b := NewBay(len(m.Bays)+1, t, capacity, doors)
	m.Bays = append(m.Bays, b)
	return b
}

// FindBay returns the first bay able to take l.
func (m *Manifest) FindBay(l Loadable) (*Bay, error) {
	var firstErr error
	for _, b := range m.Bays {
		if b.Contains(l.ID) {
			return nil, ErrAlreadyLoaded
		}
	}
	for _, b := range m.Bays {
		err := b.check(l)
		if err == nil {
			return b, nil
		}
		if firstErr == nil || (isIncompatible(firstErr) && !isIncompatible(err)) {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = fmt.Errorf("%w: no bays", ErrIncompatible)
	}
	return nil, firstErr
}

// Load puts l into the first bay that fits and returns the bay number.
func (m *Manifest) Load(l Loadable) (int, error) {
	b, err := m.FindBay(l)
	if err != nil {
		return 0, err
	}
	if err := b.Load(l); err != nil {
		return 0, err
	}
	return b.Number, nil
}

func (m *Manifest) Unload(id uuid.UUID) (Loadable, error) {
	for _, b := range m.Bays {
		if b.Contains(id) {
			return b.Unload(id)
		}
	}
	return Loadable{}, ErrNotLoaded
}

// Capacity sums the nominal capacity of every bay of type t.
func (m *Manifest) Capacity(t BayType) float64 {
	total := 0.0
	for _, b := range m.Bays {
		if b.Type == t {
			total += b.Capacity
		}
	}
	return total
}

func (m *Manifest) Unused(t BayType) float64 {
	total := 0.0
	for _, b := range m.Bays {
		if b.Type == t {
			total += b.Unused()
		}
	}
	return total
}

func (m *Manifest) LoadedIDs() []uuid.UUID {
	var ids []uuid.UUID
	for _, b := range m.Bays {
		for _, l := range b.Loaded() {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

func (m *Manifest) ResetTurn() {
	for _, b := range m.Bays {
		b.ResetTurn()
	}
}

// Dock attaches a JumpShip-capable craft to a free collar.
func (m *Manifest) Dock(id uuid.UUID) error {
	for _, d := range m.docked {
		if d == id {
			return ErrAlreadyLoaded
		}
	}
	if len(m.docked) >= m.DockingCollars {
		return fmt.Errorf("%w: all %d collars in use", ErrNoSpace, m.DockingCollars)
	}
	m.docked = append(m.docked, id)
	return nil
}

func (m *Manifest) Undock(id uuid.UUID) error {
	for i, d := range m.docked {
		if d == id {
			m.docked = append(m.docked[:i], m.docked[i+1:]...)
			return nil
		}
	}
	return ErrNotLoaded
}

func (m *Manifest) Docked() int { return len(m.docked) }

// DamageCollar removes a collar. A craft on the collar is released.
func (m *Manifest) DamageCollar() (released uuid.UUID, ok bool) {
	if m.DockingCollars == 0 {
		return uuid.Nil, false
	}
	m.DockingCollars--
	if len(m.docked) > m.DockingCollars {
		released = m.docked[len(m.docked)-1]
		m.docked = m.docked[:len(m.docked)-1]
		return released, true
	}
	return uuid.Nil, false
}

func isIncompatible(err error) bool {
	return err != nil && errors.Is(err, ErrIncompatible)
}

// NewTroopBay returns the infantry compartment of a ground vehicle. Each
// ton of troop space seats ten troopers.
func NewTroopBay(tons float64) *Bay {
	return NewBay(1, BayInfantry, math.Floor(tons*10+1e-9), 1)
}
