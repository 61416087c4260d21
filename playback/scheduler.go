package playback

import (
	"context"
	"sync/atomic"

	"github.com/dimfu/polyclack/rhythm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type State int32

const (
	Idle State = iota
	Rendering
	Looping
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Rendering:
		return "rendering"
	case Looping:
		return "looping"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Scheduler renders one bar once and keeps feeding it to a sink, a whole bar
// at a time, until it is cancelled or has played Bars bars.
type Scheduler struct {
	Bars  int                                // stop after this many bars, 0 plays forever
	OnBar func(bar int, tl *rhythm.Timeline) // called once a bar is queued

	voice    rhythm.Voice
	log      logrus.FieldLogger
	state    atomic.Int32
	timeline *rhythm.Timeline
	segments []rhythm.Segment
}

func NewScheduler(voice rhythm.Voice, log logrus.FieldLogger) *Scheduler {
	return &Scheduler{
		voice: voice,
		log:   log,
	}
}

func (s *Scheduler) State() State {
	return State(s.state.Load())
}

func (s *Scheduler) setState(st State) {
	s.state.Store(int32(st))
	s.log.WithField("state", st).Debug("scheduler state")
}

func (s *Scheduler) Timeline() *rhythm.Timeline {
	return s.timeline
}

// Configure computes the bar for the given tempo and signatures and caches it.
// On failure the scheduler goes back to Idle with nothing cached.
func (s *Scheduler) Configure(tempo int64, sigs []rhythm.Signature) error {
	if st := s.State(); st != Idle {
		return errors.Wrapf(rhythm.ErrInvalidArgument, "cannot configure a %v scheduler", st)
	}
	s.setState(Rendering)

	tl, segments, err := s.render(tempo, sigs)
	if err != nil {
		s.setState(Idle)
		return err
	}
	s.timeline, s.segments = tl, segments

	s.log.WithFields(logrus.Fields{
		"tempo":      tempo,
		"signatures": sigs,
		"bar":        tl.Bar,
		"events":     len(tl.Events),
		"ticks":      tl.Ticks,
	}).Info("bar rendered")
	return nil
}

func (s *Scheduler) render(tempo int64, sigs []rhythm.Signature) (*rhythm.Timeline, []rhythm.Segment, error) {
	unit, rescaled, err := rhythm.Resolve(sigs)
	if err != nil {
		return nil, nil, err
	}
	s.log.WithField("unit", unit).Debug("common grid resolved")

	tl, err := rhythm.Build(tempo, unit, rescaled)
	if err != nil {
		return nil, nil, err
	}
	segments, err := rhythm.Render(tl, s.voice)
	if err != nil {
		return nil, nil, err
	}
	return tl, segments, nil
}

// Run takes ownership of sink and loops the cached bar on it. Cancellation is
// checked between bars and interrupts a pending drain; either way Run returns
// nil and closes the sink. Run fails without touching the sink's queue if the
// scheduler was never configured.
func (s *Scheduler) Run(ctx context.Context, sink Sink) (err error) {
	defer func() {
		s.setState(Stopped)
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if s.State() != Rendering || s.segments == nil {
		return errors.Wrap(rhythm.ErrInvalidArgument, "no time signatures configured")
	}
	s.setState(Looping)

	for bar := 1; ; bar++ {
		if ctx.Err() != nil {
			s.log.WithField("bar", bar).Debug("cancelled")
			return nil
		}

		for _, seg := range s.segments {
			if err := sink.Append(seg); err != nil {
				return errors.Wrapf(err, "bar %d", bar)
			}
		}
		if s.OnBar != nil {
			s.OnBar(bar, s.timeline)
		}

		if err := sink.Drain(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrapf(err, "draining bar %d", bar)
		}
		if s.Bars > 0 && bar >= s.Bars {
			return nil
		}
	}
}
