package playback

import (
	"context"

	"github.com/dimfu/polyclack/rhythm"
	"github.com/pkg/errors"
)

var ErrAudioDevice = errors.New("audio device error")

// Sink plays segments in the order they were appended.
type Sink interface {
	// Append queues a segment without waiting for it to play.
	Append(seg rhythm.Segment) error
	// Drain blocks until everything appended so far has played.
	Drain(ctx context.Context) error
	Close() error
}
