package tape_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/busybeaver/tape"
)

// assertBlankExcept checks every cell in [from, to) is 0 unless listed in ones.
func assertBlankExcept(t *testing.T, tp *tape.Tape, from, to tape.CellId, ones ...tape.CellId) {
	t.Helper()
	set := make(map[tape.CellId]bool, len(ones))
	for _, id := range ones {
		set[id] = true
	}
	for id := from; id < to; id++ {
		if set[id] {
			continue
		}
		if tp.Get(id) {
			t.Fatalf("cell %d: expected 0", id)
		}
	}
}

func TestTape_Empty(t *testing.T) {
	tp := tape.New()

	assertBlankExcept(t, tp, -200, 200)
	assert.Equal(t, tape.CellValue(false), tp.Get(-123_456))
	assert.Equal(t, tape.CellValue(false), tp.Get(8_764_243))
	assert.True(t, tp.WrittenRange().IsEmpty())
	assert.Equal(t, 0, tp.CountOnes())
}

func TestTape_WriteAtZero(t *testing.T) {
	tp := tape.New()

	tp.Write(0, false)
	assert.Equal(t, tape.Range{Start: 0, End: 1}, tp.WrittenRange())
	assertBlankExcept(t, tp, -200, 200)

	tp.Write(0, true)
	assert.Equal(t, tape.Range{Start: 0, End: 1}, tp.WrittenRange())
	assert.Equal(t, tape.CellValue(true), tp.Get(0))
	assertBlankExcept(t, tp, -200, 200, 0)
}

func TestTape_WriteFarAway(t *testing.T) {
	tp := tape.New()

	tp.Write(10, true)
	assert.Equal(t, tape.Range{Start: 10, End: 11}, tp.WrittenRange())
	assert.Equal(t, tape.CellValue(true), tp.Get(10))
	assertBlankExcept(t, tp, -200, 200, 10)

	tp.Write(-5, true)
	assert.Equal(t, tape.Range{Start: -5, End: 11}, tp.WrittenRange())
	assertBlankExcept(t, tp, -200, 200, 10, -5)

	tp.Write(-4_321, true)
	assert.Equal(t, tape.Range{Start: -4_321, End: 11}, tp.WrittenRange())
	assertBlankExcept(t, tp, -6_000, 6_000, 10, -5, -4_321)

	tp.Write(56_789, true)
	assert.Equal(t, tape.Range{Start: -4_321, End: 56_790}, tp.WrittenRange())
	assert.Equal(t, tape.CellValue(true), tp.Get(56_789))
	assertBlankExcept(t, tp, -100_000, 100_000, 10, -5, -4_321, 56_789)
	assert.Equal(t, 4, tp.CountOnes())
}

// TestTape_ScenarioE writes at 10, −4321, 56789 and checks the written range
// and that nothing outside of it reads as 1.
func TestTape_ScenarioE(t *testing.T) {
	tp := tape.New()
	tp.Write(10, true)
	tp.Write(-4321, true)
	tp.Write(56789, true)

	r := tp.WrittenRange()
	require.Equal(t, tape.Range{Start: -4321, End: 56790}, r)
	for id := tape.CellId(-10_000); id < r.Start; id++ {
		require.False(t, bool(tp.Get(id)))
	}
	for id := r.End; id < 70_000; id++ {
		require.False(t, bool(tp.Get(id)))
	}
}

func TestTape_Clear(t *testing.T) {
	tp := tape.New()
	for id := tape.CellId(-300); id <= 300; id += 3 {
		tp.Write(id, true)
	}
	capacity := tp.Capacity()

	tp.Clear()
	assert.True(t, tp.WrittenRange().IsEmpty())
	assert.Equal(t, capacity, tp.Capacity(), "clear must not reallocate")
	assert.Equal(t, 0, tp.CountOnes())

	// Cells written before Clear must come back as 0 once the range covers them again.
	tp.Write(-300, false)
	tp.Write(300, false)
	assertBlankExcept(t, tp, -400, 400)
	assert.Equal(t, 0, tp.CountOnes())
}

func TestTape_GrowthAtLeastDoubles(t *testing.T) {
	tp := tape.New()
	before := tp.Capacity()
	tp.Write(100, true)
	assert.GreaterOrEqual(t, tp.Capacity(), 2*before)

	before = tp.Capacity()
	tp.Write(-1000, true)
	assert.GreaterOrEqual(t, tp.Capacity(), 2*before)
	assert.Equal(t, tape.CellValue(true), tp.Get(100))
	assert.Equal(t, tape.CellValue(true), tp.Get(-1000))
}

func TestTape_MatchesMapModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tp := tape.New()
	model := make(map[tape.CellId]bool)
	lo, hi := tape.CellId(0), tape.CellId(0)
	first := true

	for i := 0; i < 20_000; i++ {
		id := tape.CellId(rng.Intn(4001) - 2000)
		v := rng.Intn(2) == 1
		tp.Write(id, tape.CellValue(v))
		model[id] = v
		if first {
			lo, hi, first = id, id+1, false
		}
		lo, hi = min(lo, id), max(hi, id+1)

		require.Equal(t, tape.CellValue(v), tp.Get(id), "right after write at %d", id)
	}

	assert.Equal(t, tape.Range{Start: lo, End: hi}, tp.WrittenRange())
	ones := 0
	for id := tape.CellId(-2100); id < 2100; id++ {
		assert.Equal(t, model[id], bool(tp.Get(id)), "cell %d", id)
		if model[id] {
			ones++
		}
	}
	assert.Equal(t, ones, tp.CountOnes())
}

func TestTape_CountOnesBucketEdges(t *testing.T) {
	tp := tape.New()
	// cells -32 and 31 sit exactly on the edges of the first bucket
	tp.Write(-32, true)
	tp.Write(31, true)
	tp.Write(32, true)
	tp.Write(-33, true)
	assert.Equal(t, 4, tp.CountOnes())
}

func TestTape_AddressSpaceExhausted(t *testing.T) {
	tp := tape.New()
	assert.Panics(t, func() { tp.Write(tape.CellId(1)<<62, true) })
	assert.Panics(t, func() { tp.Write(-(tape.CellId(1) << 62), true) })
}

func TestRange(t *testing.T) {
	r := tape.Range{Start: -2, End: 3}
	assert.True(t, r.Contains(-2))
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(3))
	assert.Equal(t, int64(5), r.Len())
	assert.Equal(t, "[-2, 3)", r.String())
	assert.Equal(t, int64(0), tape.Range{}.Len())
}
