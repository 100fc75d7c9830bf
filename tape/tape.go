package tape

import (
	"errors"
	"fmt"
	"math/bits"
)

// CellId identifies one cell relative to the start cell 0.
type CellId int64

// CellValue is the binary content of a cell; false is blank.
type CellValue bool

// Range is a half-open interval [Start, End) of cells.
type Range struct {
	Start, End CellId
}

// Contains reports whether id lies in r.
func (r Range) Contains(id CellId) bool {
	return id >= r.Start && id < r.End
}

// IsEmpty reports whether r contains no cell.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// Len returns the number of cells in r.
func (r Range) Len() int64 {
	if r.IsEmpty() {
		return 0
	}

	return int64(r.End - r.Start)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

const (
	bitsPerBucket = 64
	initialOffset = 32

	// maxBits bounds both |CellId| and the buffer size so bit arithmetic on
	// int64 can never wrap.
	maxBits = int64(1) << 62
)

// ErrAddressSpaceExhausted is the panic value (wrapped) when a write would
// need a buffer beyond the representable bit address space.
var ErrAddressSpaceExhausted = errors.New("tape: bit address space exhausted")

// Tape is the infinite binary tape of a Turing machine.
type Tape struct {
	// data is the bit vector; bit i lives in data[i/64] at position i%64.
	data []uint64

	// offset is the bit index of cell 0 in data. Always >= 0.
	offset int64

	// written is the range outside of which nothing was ever written.
	// Invariant: written.Start+offset >= 0 and
	// written.End+offset <= len(data)*64.
	written Range
}

// New creates a blank tape with one bucket and cell 0 in its middle.
func New() *Tape {
	return &Tape{
		data:   make([]uint64, 1),
		offset: initialOffset,
	}
}

// Clear resets every cell to 0 and empties the written range. The buffer is
// kept for reuse.
func (t *Tape) Clear() {
	if !t.written.IsEmpty() {
		lo, _ := t.lookup(t.written.Start)
		hi, _ := t.lookup(t.written.End - 1)
		clear(t.data[lo : hi+1])
	}
	t.written = Range{}
}

// WrittenRange returns the smallest range containing every written cell.
// Not every cell in it was written, but no cell outside of it was.
func (t *Tape) WrittenRange() Range {
	return t.written
}

// Capacity returns the number of cells currently backed by the buffer.
func (t *Tape) Capacity() int64 {
	return int64(len(t.data)) * bitsPerBucket
}

// Get returns the value of cell id.
func (t *Tape) Get(id CellId) CellValue {
	if !t.written.Contains(id) {
		return false
	}

	bucket, bit := t.lookup(id)

	return t.data[bucket]&(1<<bit) != 0
}

// Write stores value in cell id, growing the buffer if id is not backed yet.
// It panics with ErrAddressSpaceExhausted if id cannot be addressed.
func (t *Tape) Write(id CellId, value CellValue) {
	if int64(id) >= maxBits || int64(id) <= -maxBits {
		panic(fmt.Errorf("%w: cell %d", ErrAddressSpaceExhausted, id))
	}

	bitIdx := t.offset + int64(id)
	stored := t.Capacity()
	switch {
	case bitIdx < 0:
		// two extra bits of room
		t.grow(-bitIdx+2, true)
	case bitIdx >= stored:
		t.grow(bitIdx-stored+2, false)
	}

	bucket, bit := t.lookup(id)
	if value {
		t.data[bucket] |= 1 << bit
	} else {
		t.data[bucket] &^= 1 << bit
	}

	switch {
	case t.written.IsEmpty():
		t.written = Range{Start: id, End: id + 1}
	case id < t.written.Start:
		t.written.Start = id
	case id >= t.written.End:
		t.written.End = id + 1
	}
}

// CountOnes returns the number of cells holding 1.
func (t *Tape) CountOnes() int {
	if t.written.IsEmpty() {
		return 0
	}

	lo := t.offset + int64(t.written.Start)
	hi := t.offset + int64(t.written.End) - 1
	loBucket, hiBucket := lo/bitsPerBucket, hi/bitsPerBucket

	ones := 0
	for b := loBucket; b <= hiBucket; b++ {
		w := t.data[b]
		if b == loBucket {
			w &= ^uint64(0) << (lo % bitsPerBucket)
		}
		if b == hiBucket {
			w &= ^uint64(0) >> (bitsPerBucket - 1 - hi%bitsPerBucket)
		}
		ones += bits.OnesCount64(w)
	}

	return ones
}

// grow adds at least by bits to the left or right end of the buffer. The new
// capacity is at least double the old one.
func (t *Tape) grow(by int64, left bool) {
	stored := t.Capacity()
	by = max(by, stored)
	if by > maxBits-stored {
		panic(fmt.Errorf("%w: growing %d bits by %d", ErrAddressSpaceExhausted, stored, by))
	}

	// +1 compensates for the integer division rounding down
	buckets := int(by/bitsPerBucket) + 1
	data := make([]uint64, len(t.data)+buckets)
	if left {
		copy(data[buckets:], t.data)
		t.offset += int64(buckets) * bitsPerBucket
	} else {
		copy(data, t.data)
	}
	t.data = data
}

func (t *Tape) lookup(id CellId) (bucket int, bit uint) {
	idx := t.offset + int64(id)

	return int(idx / bitsPerBucket), uint(idx % bitsPerBucket)
}
