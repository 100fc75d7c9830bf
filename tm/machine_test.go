package tm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/busybeaver/tm"
)

// bb2 is the classic 2-state busy beaver:
// A0 → 1RB, A1 → 1LB, B0 → 1LA, B1 → 1RH.
const bb2 uint64 = 6 | 4<<5 | 0<<10 | 10<<15

func TestDecode_InvalidStateCount(t *testing.T) {
	for _, n := range []int{-1, 0, 7, 100} {
		_, err := tm.Decode(n, 0)
		assert.ErrorIs(t, err, tm.ErrStateCount, "n=%d", n)
	}
}

func TestDecode_UnusedBits(t *testing.T) {
	_, err := tm.Decode(1, 1<<10)
	assert.ErrorIs(t, err, tm.ErrUnusedBits)

	_, err = tm.Decode(2, 1<<63)
	assert.ErrorIs(t, err, tm.ErrUnusedBits)

	_, err = tm.Decode(6, 1<<60)
	assert.ErrorIs(t, err, tm.ErrUnusedBits)
}

func TestDecode_StateOutOfRange(t *testing.T) {
	// next state 2 does not exist for N=1 (1 is halt)
	_, err := tm.Decode(1, 2<<2)
	assert.ErrorIs(t, err, tm.ErrStateOutOfRange)

	// on-read-1 of state B names state 3 for N=2
	_, err = tm.Decode(2, 3<<(2+15))
	assert.ErrorIs(t, err, tm.ErrStateOutOfRange)
}

func TestDecode_AllValidN1(t *testing.T) {
	valid := 0
	for id := uint64(0); id < 1<<10; id++ {
		m, err := tm.Decode(1, id)
		if err != nil {
			continue
		}
		valid++
		assert.Equal(t, id, m.Encoded())
		assert.Equal(t, 1, m.NumStates())
	}
	// 2 slots, each with 2 next states × 2 moves × 2 writes
	assert.Equal(t, 64, valid)
}

func TestMachine_BB2Accessors(t *testing.T) {
	m, err := tm.Decode(2, bb2)
	require.NoError(t, err)

	start := m.StartAction()
	assert.Equal(t, tm.NextState(1), start.NextState())
	assert.True(t, start.WriteValue())
	assert.Equal(t, tm.Right, start.Movement())
	assert.False(t, start.WillHalt())

	a1 := m.State(0).On1()
	assert.Equal(t, tm.NextState(1), a1.NextState())
	assert.Equal(t, tm.Left, a1.Movement())

	b0 := m.State(1).ActionFor(false)
	assert.Equal(t, tm.NextState(0), b0.NextState())
	assert.Equal(t, tm.Left, b0.Movement())

	b1 := m.State(1).ActionFor(true)
	assert.True(t, b1.WillHalt())
	assert.True(t, b1.NextState().IsHalt())
	assert.Equal(t, tm.Halt, b1.NextState())
	assert.Equal(t, tm.Right, b1.Movement())
	assert.True(t, b1.WriteValue())

	assert.Equal(t, b1, m.Action(3))
	assert.Equal(t, start, m.Action(0))
}

func TestMachine_String(t *testing.T) {
	m := tm.DecodeUnchecked(2, bb2)
	assert.Equal(t, "Tm {A: {0 → Br1, 1 → Bl1}, B: {0 → Al1, 1 → Hr1}}", m.String())

	// inverted write bit set on A0: writes 0
	m1 := tm.DecodeUnchecked(1, 0b00101)
	assert.Equal(t, "Hl0", m1.StartAction().String())
}

func TestMachine_Mirror(t *testing.T) {
	m := tm.DecodeUnchecked(2, bb2)
	mirrored := m.Mirror()

	assert.Equal(t, uint64(bb2^(2|2<<5|2<<10|2<<15)), mirrored.Encoded())
	assert.Equal(t, m, mirrored.Mirror())
	for slot := 0; slot < 4; slot++ {
		a, b := m.Action(slot), mirrored.Action(slot)
		assert.NotEqual(t, a.Movement(), b.Movement(), "slot %d", slot)
		assert.Equal(t, a.NextState(), b.NextState(), "slot %d", slot)
		assert.Equal(t, a.WriteValue(), b.WriteValue(), "slot %d", slot)
	}
}

func TestMachine_Comparable(t *testing.T) {
	a := tm.DecodeUnchecked(2, bb2)
	b := tm.DecodeUnchecked(2, bb2)
	c := tm.DecodeUnchecked(3, bb2)
	assert.True(t, a == b)
	assert.False(t, a == c, "same bits with different N are different machines")
}
