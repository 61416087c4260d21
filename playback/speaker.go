package playback

import (
	"context"
	"time"

	"github.com/dimfu/polyclack/rhythm"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// SpeakerSink plays segments on the default output device.
type SpeakerSink struct {
	feed   *feed
	buffer int
	log    logrus.FieldLogger
}

func NewSpeakerSink(rate beep.SampleRate, volume float64, log logrus.FieldLogger) (*SpeakerSink, error) {
	buffer := rate.N(time.Second / 10)
	if err := speaker.Init(rate, buffer); err != nil {
		return nil, errors.Wrapf(ErrAudioDevice, "error while initializing speaker: %v", err)
	}

	// the speaker fills a whole buffer per update and the next bar can only be
	// queued between updates, so keep two buffers of the current bar in hand
	s := &SpeakerSink{
		feed:   newFeed(rate, 2*buffer, speakerLock{}),
		buffer: buffer,
		log:    log,
	}
	speaker.Play(withVolume(s.feed.queue, volume))
	log.WithFields(logrus.Fields{
		"sample_rate": int(rate),
		"buffer":      buffer,
	}).Debug("speaker ready")
	return s, nil
}

// Append holds the segment until the next Drain hands the bar to the speaker.
func (s *SpeakerSink) Append(seg rhythm.Segment) error {
	s.feed.append(seg)
	return nil
}

// Drain queues what was appended and returns once only the last two speaker
// buffers of it are left to play.
func (s *SpeakerSink) Drain(ctx context.Context) error {
	done := s.feed.mark(s.feed.lead)
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close lets the queued tail play out, waiting no longer than the tail Drain
// leaves behind, then releases the device.
func (s *SpeakerSink) Close() error {
	done := s.feed.mark(0)
	select {
	case <-done:
	case <-time.After(s.feed.rate.D(s.feed.lead + s.buffer)):
	}
	speaker.Clear()
	speaker.Close()
	s.log.Debug("speaker closed")
	return nil
}
