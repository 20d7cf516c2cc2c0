package bfvm

import "fmt"

const DefaultTapeSize = 30000

// Tape is the cell memory of a run. Cells are allocated on demand to the
// right; Limit, when positive, caps the number of addressable cells.
type Tape struct {
	Cells []byte
	Ptr   int
	Limit int
}

func NewTape(size int, limit int) *Tape {
	if size <= 0 {
		size = DefaultTapeSize
	}
	if limit > 0 && size > limit {
		size = limit
	}
	return &Tape{
		Cells: make([]byte, size),
		Limit: limit,
	}
}

func (t *Tape) MoveRight() error {
	next := t.Ptr + 1
	if t.Limit > 0 && next >= t.Limit {
		return fmt.Errorf("%w: cell %d exceeds tape limit %d", ErrOutOfBounds, next, t.Limit)
	}
	if next >= len(t.Cells) {
		t.grow(next + 1)
	}
	t.Ptr = next
	return nil
}

func (t *Tape) MoveLeft() error {
	if t.Ptr == 0 {
		return fmt.Errorf("%w: move left of cell 0", ErrOutOfBounds)
	}
	t.Ptr--
	return nil
}

func (t *Tape) grow(n int) {
	newLen := len(t.Cells) * 2
	if newLen == 0 {
		newLen = 8
	}
	for newLen < n {
		newLen *= 2
	}
	if t.Limit > 0 && newLen > t.Limit {
		newLen = t.Limit
	}
	cells := make([]byte, newLen)
	copy(cells, t.Cells)
	t.Cells = cells
}

func (t *Tape) Increment() {
	t.Cells[t.Ptr]++
}

func (t *Tape) Decrement() {
	t.Cells[t.Ptr]--
}

func (t *Tape) Read() byte {
	return t.Cells[t.Ptr]
}

func (t *Tape) Write(b byte) {
	t.Cells[t.Ptr] = b
}

func (t *Tape) Reset() {
	clear(t.Cells)
	t.Ptr = 0
}
