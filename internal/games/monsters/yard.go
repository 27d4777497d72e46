package monsters

import "fmt"

// compactAfter is the number of consumed front slots tolerated before the
// backing slice is shifted down.
const compactAfter = 64

// Yard is the line of slots between the village (index 0) and the spawn
// point (last index). A slot holds a monster's hit points, 0 when empty.
//
// The front is consumed by advancing a head offset so that the per-turn
// append-then-pop costs no copying; the consumed prefix is reclaimed in
// batches.
type Yard struct {
	slots []int
	head  int
}

// NewYard creates a yard holding a copy of the given slots.
func NewYard(slots []int) *Yard {
	y := &Yard{slots: make([]int, len(slots))}
	copy(y.slots, slots)
	return y
}

// Len returns the number of live slots in the yard.
func (y *Yard) Len() int {
	return len(y.slots) - y.head
}

// At returns the hit points of slot i.
func (y *Yard) At(i int) int {
	return y.slots[y.head+i]
}

// Set overwrites the hit points of slot i.
func (y *Yard) Set(i, hp int) {
	y.slots[y.head+i] = hp
}

// Front returns the slot next to the village.
func (y *Yard) Front() int {
	return y.slots[y.head]
}

// Positions returns a copy of all slots, front first.
func (y *Yard) Positions() []int {
	out := make([]int, y.Len())
	copy(out, y.view())
	return out
}

// Push appends a monster at the back of the yard.
func (y *Yard) Push(hp int) {
	y.slots = append(y.slots, hp)
}

// Advance moves the line one step towards the village: spawn is appended at
// the back, then the front slot is removed and returned.
// The yard length is unchanged by an advance.
func (y *Yard) Advance(spawn int) int {
	before := y.Len()

	y.Push(spawn)
	front := y.Front()
	y.slots[y.head] = 0
	y.head++
	y.compact()

	if after := y.Len(); after != before {
		panic(fmt.Sprintf("monsters: yard advance changed length %d -> %d", before, after))
	}
	return front
}

// view exposes the live slots without copying. Callers must not retain it
// across mutations.
func (y *Yard) view() []int {
	return y.slots[y.head:]
}

// compact drops the consumed prefix once it dominates the backing slice.
func (y *Yard) compact() {
	if y.head < compactAfter || y.head < len(y.slots)/2 {
		return
	}
	n := copy(y.slots, y.slots[y.head:])
	y.slots = y.slots[:n]
	y.head = 0
}
