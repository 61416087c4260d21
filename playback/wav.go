package playback

import (
	"context"
	"os"

	"github.com/dimfu/polyclack/rhythm"
	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// WAVSink renders segments offline and writes them to a file on Close.
type WAVSink struct {
	path      string
	format    beep.Format
	volume    float64
	clock     sampleClock
	streamers []beep.Streamer
	log       logrus.FieldLogger
}

func NewWAVSink(path string, rate beep.SampleRate, volume float64, log logrus.FieldLogger) *WAVSink {
	return &WAVSink{
		path: path,
		format: beep.Format{
			SampleRate:  rate,
			NumChannels: 2,
			Precision:   2,
		},
		volume: volume,
		clock:  sampleClock{rate: rate},
		log:    log,
	}
}

func (s *WAVSink) Append(seg rhythm.Segment) error {
	s.streamers = append(s.streamers, segmentStreamer(s.format.SampleRate, seg, s.clock.advance(seg.Duration)))
	return nil
}

// Drain returns at once; nothing plays in real time.
func (s *WAVSink) Drain(ctx context.Context) error {
	return ctx.Err()
}

func (s *WAVSink) Close() error {
	f, err := os.Create(s.path)
	if err != nil {
		return errors.Wrapf(ErrAudioDevice, "creating %s: %v", s.path, err)
	}
	defer f.Close()

	if err := wav.Encode(f, withVolume(beep.Seq(s.streamers...), s.volume), s.format); err != nil {
		return errors.Wrapf(ErrAudioDevice, "encoding %s: %v", s.path, err)
	}
	s.log.WithFields(logrus.Fields{
		"path":    s.path,
		"samples": s.clock.samples,
	}).Info("wrote wav")
	return nil
}
