package rhythm

import (
	"time"

	"github.com/pkg/errors"
)

type Kind int

const (
	Tone Kind = iota
	Silence
)

func (k Kind) String() string {
	switch k {
	case Tone:
		return "tone"
	case Silence:
		return "silence"
	default:
		return "unknown"
	}
}

// Segment is one renderable piece of a bar. Frequency and Amplitude are only
// meaningful for tones.
type Segment struct {
	Kind      Kind
	Duration  time.Duration
	Frequency float64
	Amplitude float64
}

// Voice selects how beats sound.
type Voice struct {
	Accent    float64 // downbeat pitch in Hz
	Regular   float64 // pitch of every other beat in Hz
	Amplitude float64 // 0..1
}

var DefaultVoice = Voice{Accent: 660, Regular: 440, Amplitude: 0.20}

func (v Voice) Validate() error {
	if v.Accent <= 0 || v.Regular <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "pitches %v/%v Hz must be positive", v.Accent, v.Regular)
	}
	if v.Amplitude < 0 || v.Amplitude > 1 {
		return errors.Wrapf(ErrInvalidArgument, "amplitude %v must be within 0..1", v.Amplitude)
	}
	return nil
}

// Render turns a bar into alternating tone and silence segments. Each beat
// sounds for three quarters of the gap to the next onset, wrapping from the
// last event to the next bar's downbeat.
func Render(tl *Timeline, v Voice) ([]Segment, error) {
	if tl == nil || len(tl.Events) < 2 {
		n := 0
		if tl != nil {
			n = len(tl.Events)
		}
		return nil, errors.Wrapf(ErrDegenerateTimeline, "a bar needs at least 2 onsets, got %d", n)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, 2*len(tl.Events))
	for i, ev := range tl.Events {
		next := tl.Bar
		if i+1 < len(tl.Events) {
			next = tl.Events[i+1].Offset
		}
		gap := next - ev.Offset
		if gap <= 0 {
			return nil, errors.Wrapf(ErrDegenerateTimeline, "onsets at %v and %v do not advance", ev.Offset, next)
		}

		pitch := v.Regular
		if ev.Downbeat {
			pitch = v.Accent
		}
		tone := gap / 4 * 3
		tone += (gap % 4) * 3 / 4
		segments = append(segments,
			Segment{Kind: Tone, Duration: tone, Frequency: pitch, Amplitude: v.Amplitude},
			Segment{Kind: Silence, Duration: gap - tone},
		)
	}
	return segments, nil
}

// Total sums segment durations.
func Total(segments []Segment) time.Duration {
	var d time.Duration
	for _, s := range segments {
		d += s.Duration
	}
	return d
}
