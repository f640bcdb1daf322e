package engine

import "github.com/zyedidia/generic/mapset"

// MoveQueue is a FIFO of entity ids waiting for a movement attempt
// An id is held at most once
type MoveQueue struct {
	items []int
	set   mapset.Set[int]
}

// NewMoveQueue creates an empty queue
func NewMoveQueue() *MoveQueue {
	return &MoveQueue{set: mapset.New[int]()}
}

// Push appends id unless already queued, reports whether it was added
func (q *MoveQueue) Push(id int) bool {
	if q.set.Has(id) {
		return false
	}
	q.set.Put(id)
	q.items = append(q.items, id)
	return true
}

// Pop removes and returns the oldest id
func (q *MoveQueue) Pop() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	id := q.items[0]
	q.items = q.items[1:]
	q.set.Remove(id)
	return id, true
}

// Has reports whether id is queued
func (q *MoveQueue) Has(id int) bool {
	return q.set.Has(id)
}

// Len returns the number of queued ids
func (q *MoveQueue) Len() int {
	return len(q.items)
}

// Items returns a copy of the queue in pop order
func (q *MoveQueue) Items() []int {
	out := make([]int, len(q.items))
	copy(out, q.items)
	return out
}

// Clear empties the queue
func (q *MoveQueue) Clear() {
	q.items = q.items[:0]
	q.set.Clear()
}
