package rhythm

import "github.com/pkg/errors"

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	ErrDegenerateTimeline = errors.New("degenerate timeline")
)
