// Package memory implements the calculator's named memory slots.
package memory

import (
	"fmt"
	"sort"
)

// DefaultSlot is the register behind the MS/MR/MC/M+/M- keys.
const DefaultSlot = "M"

// SlotError reports an invalid slot name.
type SlotError struct {
	Slot string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("invalid memory slot %q", e.Slot)
}

// Bank maps slot names to stored values. Recall of an unset slot yields
// zero rather than failing.
type Bank struct {
	slots map[string]float64
}

// NewBank returns an empty memory bank.
func NewBank() *Bank {
	return &Bank{slots: map[string]float64{}}
}

func validSlot(slot string) bool {
	if slot == "" {
		return false
	}
	for i := 0; i < len(slot); i++ {
		c := slot[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// Store sets a slot to a value.
func (b *Bank) Store(slot string, value float64) error {
	if !validSlot(slot) {
		return &SlotError{Slot: slot}
	}
	b.slots[slot] = value
	return nil
}

// Recall returns the value of a slot, zero if unset.
func (b *Bank) Recall(slot string) (float64, error) {
	if !validSlot(slot) {
		return 0, &SlotError{Slot: slot}
	}
	return b.slots[slot], nil
}

// Add adds delta to a slot, treating an unset slot as zero.
func (b *Bank) Add(slot string, delta float64) error {
	if !validSlot(slot) {
		return &SlotError{Slot: slot}
	}
	b.slots[slot] += delta
	return nil
}

// Clear removes a slot.
func (b *Bank) Clear(slot string) error {
	if !validSlot(slot) {
		return &SlotError{Slot: slot}
	}
	delete(b.slots, slot)
	return nil
}

// ClearAll removes every slot.
func (b *Bank) ClearAll() {
	b.slots = map[string]float64{}
}

// Snapshot returns the set slots in slot-name order.
func (b *Bank) Snapshot() []Slot {
	out := make([]Slot, 0, len(b.slots))
	for name, value := range b.slots {
		out = append(out, Slot{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Restore replaces the bank contents with the given slots.
func (b *Bank) Restore(slots []Slot) {
	b.slots = make(map[string]float64, len(slots))
	for _, s := range slots {
		if validSlot(s.Name) {
			b.slots[s.Name] = s.Value
		}
	}
}

// Slot is a named stored value, used for persistence.
type Slot struct {
	Name  string
	Value float64
}
