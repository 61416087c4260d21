package rhythm

import (
	"math"

	"github.com/pkg/errors"
)

// Rescaled is a signature expressed on the common subdivision grid.
type Rescaled struct {
	Beats int64
	Unit  int64
}

// Resolve finds the smallest note value every signature can be written in and
// rescales each signature's beat count onto it.
func Resolve(sigs []Signature) (int64, []Rescaled, error) {
	if len(sigs) == 0 {
		return 0, nil, errors.Wrap(ErrInvalidArgument, "at least one time signature is required")
	}
	for _, sig := range sigs {
		if err := sig.Validate(); err != nil {
			return 0, nil, err
		}
	}

	unit := sigs[0].NoteValue
	for _, sig := range sigs[1:] {
		var err error
		unit, err = lcm(unit, sig.NoteValue)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "common note value of %v", sigs)
		}
	}

	rescaled := make([]Rescaled, len(sigs))
	for i, sig := range sigs {
		beats, err := mul(sig.Beats, unit/sig.NoteValue)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "rescaling %v to 1/%d notes", sig, unit)
		}
		rescaled[i] = Rescaled{Beats: beats, Unit: unit}
	}
	return unit, rescaled, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) (int64, error) {
	return mul(a/gcd(a, b), b)
}

// mul multiplies two positive integers, refusing to wrap.
func mul(a, b int64) (int64, error) {
	if a > math.MaxInt64/b {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "%d * %d", a, b)
	}
	return a * b, nil
}
