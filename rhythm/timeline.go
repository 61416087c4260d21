package rhythm

import (
	"math/bits"
	"sort"
	"time"

	"github.com/pkg/errors"
)

// a whole note in nanoseconds at one quarter note per minute
const wholeNote = 4 * int64(time.Minute)

// MinOnsetGap is the closest two onsets of one meter may be.
const MinOnsetGap = time.Millisecond

type Event struct {
	Tick     int64         // position on the bar's integer grid
	Offset   time.Duration // time since the start of the bar
	Sources  []int         // indices of the signatures sounding here, ascending
	Downbeat bool
}

type Timeline struct {
	Events []Event
	Bar    time.Duration
	Ticks  int64 // grid resolution, ticks per bar
}

// Build lays every signature's beats out evenly over one bar and merges the
// coinciding onsets. The first signature is the primary meter: its beats keep
// the tempo and its length defines the bar the other meters are spread over.
func Build(tempo, unit int64, rescaled []Rescaled) (*Timeline, error) {
	if tempo <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "tempo %d must be positive", tempo)
	}
	if unit <= 0 || len(rescaled) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "no signatures on the common grid")
	}
	for _, r := range rescaled {
		if r.Unit != unit || r.Beats <= 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "signature %d/%d is not on the 1/%d grid", r.Beats, r.Unit, unit)
		}
	}

	bar, err := barDuration(tempo, unit, rescaled[0].Beats)
	if err != nil {
		return nil, err
	}

	densest := rescaled[0].Beats
	for _, r := range rescaled[1:] {
		if r.Beats > densest {
			densest = r.Beats
		}
	}
	if gap := bar / time.Duration(densest); gap < MinOnsetGap {
		return nil, errors.Wrapf(ErrDegenerateTimeline, "%d onsets in a %v bar are %v apart, closer than %v", densest, bar, gap, MinOnsetGap)
	}

	ticks := rescaled[0].Beats
	for _, r := range rescaled[1:] {
		if ticks, err = lcm(ticks, r.Beats); err != nil {
			return nil, errors.Wrap(err, "bar grid resolution")
		}
	}

	sources := make(map[int64][]int)
	for i, r := range rescaled {
		step := ticks / r.Beats
		for k := int64(0); k < r.Beats; k++ {
			sources[k*step] = append(sources[k*step], i)
		}
	}

	events := make([]Event, 0, len(sources))
	for tick, src := range sources {
		events = append(events, Event{
			Tick:     tick,
			Offset:   scale(bar, tick, ticks),
			Sources:  src,
			Downbeat: tick == 0,
		})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Tick < events[j].Tick })

	return &Timeline{Events: events, Bar: bar, Ticks: ticks}, nil
}

func barDuration(tempo, unit, beats int64) (time.Duration, error) {
	num, err := mul(wholeNote, beats)
	if err != nil {
		return 0, errors.Wrapf(err, "bar of %d 1/%d notes", beats, unit)
	}
	den, err := mul(tempo, unit)
	if err != nil {
		return 0, errors.Wrapf(err, "tempo %d on 1/%d notes", tempo, unit)
	}
	bar := time.Duration(num / den)
	if bar <= 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "bar of %d 1/%d notes at tempo %d is shorter than a nanosecond", beats, unit, tempo)
	}
	return bar, nil
}

// scale returns bar*tick/ticks without intermediate overflow; tick < ticks.
func scale(bar time.Duration, tick, ticks int64) time.Duration {
	hi, lo := bits.Mul64(uint64(bar), uint64(tick))
	q, _ := bits.Div64(hi, lo, uint64(ticks))
	return time.Duration(q)
}
