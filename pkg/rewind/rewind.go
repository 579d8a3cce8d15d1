// Package rewind records recent car states so the player can back up after a
// mistake.
package rewind

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/reroute/pkg/physics"
)

// DefaultCapacity holds ten seconds at 60 ticks per second.
const DefaultCapacity = 600

// Snapshot is one recorded tick.
type Snapshot struct {
	Position mgl64.Vec3
	Yaw      float64
	State    physics.State
}

// Buffer is a fixed-size ring. Pushing onto a full buffer drops the oldest
// snapshot.
type Buffer struct {
	items []Snapshot
	head  int
	size  int
}

// NewBuffer returns a buffer holding up to capacity snapshots.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{items: make([]Snapshot, capacity)}
}

// Push records s as the newest snapshot.
func (b *Buffer) Push(s Snapshot) {
	b.items[b.head] = s
	b.head = (b.head + 1) % len(b.items)
	if b.size < len(b.items) {
		b.size++
	}
}

// Pop removes and returns the newest snapshot.
func (b *Buffer) Pop() (Snapshot, bool) {
	if b.size == 0 {
		return Snapshot{}, false
	}
	b.head = (b.head - 1 + len(b.items)) % len(b.items)
	b.size--
	return b.items[b.head], true
}

// Peek returns the newest snapshot without removing it.
func (b *Buffer) Peek() (Snapshot, bool) {
	if b.size == 0 {
		return Snapshot{}, false
	}
	return b.items[(b.head-1+len(b.items))%len(b.items)], true
}

// Len is the number of stored snapshots.
func (b *Buffer) Len() int { return b.size }

// Cap is the buffer capacity.
func (b *Buffer) Cap() int { return len(b.items) }

// Clear drops everything.
func (b *Buffer) Clear() {
	b.head, b.size = 0, 0
}

// Fraction is how full the buffer is, for the HUD gauge.
func (b *Buffer) Fraction() float64 {
	return float64(b.size) / float64(len(b.items))
}
