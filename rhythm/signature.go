package rhythm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Signature struct {
	Beats     int64 // number of beats per measure
	NoteValue int64 // note that represent that one beat
}

func (s Signature) Validate() error {
	if s.Beats <= 0 || s.NoteValue <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "time signature %v must have positive beats and note value", s)
	}
	return nil
}

func (s Signature) String() string {
	return fmt.Sprintf("%d/%d", s.Beats, s.NoteValue)
}

// ParseSignature reads the "beats/note" form used by presets.
func ParseSignature(input string) (Signature, error) {
	parts := strings.Split(input, "/")
	if len(parts) != 2 {
		return Signature{}, errors.Wrapf(ErrInvalidArgument, "invalid time signature format %q", input)
	}

	beats, err1 := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	noteValue, err2 := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err1 != nil || err2 != nil {
		return Signature{}, errors.Wrapf(ErrInvalidArgument, "invalid number in time signature %q", input)
	}

	sig := Signature{Beats: beats, NoteValue: noteValue}
	if err := sig.Validate(); err != nil {
		return Signature{}, err
	}
	return sig, nil
}
