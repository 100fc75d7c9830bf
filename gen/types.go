package gen

import (
	"errors"
	"fmt"
)

var (
	// ErrStateCount is returned by New when N is not in 1..6.
	ErrStateCount = errors.New("gen: number of states must be between 1 and 6")

	// ErrUnknownOpt is returned by ParseOpt for unknown names.
	ErrUnknownOpt = errors.New("gen: unknown generator")

	// ErrIndexOutOfRange is returned by TmAt for indices ≥ NumTMs.
	ErrIndexOutOfRange = errors.New("gen: index out of range")

	// ErrInvalidRange is returned by ForRange for reversed or too large ranges.
	ErrInvalidRange = errors.New("gen: invalid index range")
)

// Opt selects which machines a Generator skips.
type Opt uint8

const (
	// All yields every possible machine.
	All Opt = iota

	// SkipSymmetries yields one machine per mirror pair and only left-moving
	// halt actions.
	SkipSymmetries

	// AlsoSkipHaltZero additionally skips halt actions that write 0.
	AlsoSkipHaltZero
)

// String returns the CLI name of o.
func (o Opt) String() string {
	switch o {
	case All:
		return "all"
	case SkipSymmetries:
		return "no-symmetries"
	case AlsoSkipHaltZero:
		return "optimized"
	default:
		return fmt.Sprintf("opt(%d)", uint8(o))
	}
}

// Description is a one line human readable summary of o.
func (o Opt) Description() string {
	switch o {
	case All:
		return "All TMs"
	case SkipSymmetries:
		return "All TMs but symmetric pairs deduplicated"
	case AlsoSkipHaltZero:
		return "All TMs without symmetry and without TMs with H_0 transitions"
	default:
		return o.String()
	}
}

// ParseOpt maps "all", "no-symmetries" and "optimized" to an Opt.
func ParseOpt(s string) (Opt, error) {
	switch s {
	case "all":
		return All, nil
	case "no-symmetries":
		return SkipSymmetries, nil
	case "optimized":
		return AlsoSkipHaltZero, nil
	default:
		return 0, fmt.Errorf("%w: %q (want all, no-symmetries or optimized)", ErrUnknownOpt, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Opt) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Opt) UnmarshalText(text []byte) error {
	parsed, err := ParseOpt(string(text))
	if err != nil {
		return err
	}
	*o = parsed

	return nil
}
