package playback

import (
	"sync"

	"github.com/dimfu/polyclack/rhythm"
	"github.com/faiface/beep"
)

type pending struct {
	seg rhythm.Segment
	n   int // samples
}

// feed hands whole bars to a queue that the audio goroutine streams from.
// Segments collect until mark moves them to the queue together with a marker
// placed lead samples before their end, so the next bar is queued while the
// current one is still playing.
type feed struct {
	rate    beep.SampleRate
	lead    int
	lock    sync.Locker
	queue   *queue
	clock   sampleClock
	pending []pending
}

func newFeed(rate beep.SampleRate, lead int, lock sync.Locker) *feed {
	return &feed{
		rate:  rate,
		lead:  lead,
		lock:  lock,
		queue: &queue{},
		clock: sampleClock{rate: rate},
	}
}

func (f *feed) append(seg rhythm.Segment) {
	f.pending = append(f.pending, pending{seg: seg, n: f.clock.advance(seg.Duration)})
}

// mark queues the pending segments and returns a channel closed once at most
// lead of their samples are left to play.
func (f *feed) mark(lead int) <-chan struct{} {
	done := make(chan struct{})
	marker := beep.Callback(func() {
		close(done)
	})

	total := 0
	for _, p := range f.pending {
		total += p.n
	}
	at := total - lead
	if at < 0 {
		at = 0
	}

	streamers := make([]beep.Streamer, 0, len(f.pending)+2)
	placed := false
	pos := 0
	for _, p := range f.pending {
		src := segmentSource(f.rate, p.seg)
		if !placed && at < pos+p.n {
			// split the segment around the marker, same generator on both sides
			head := at - pos
			streamers = append(streamers, beep.Take(head, src), marker, beep.Take(p.n-head, src))
			placed = true
		} else {
			streamers = append(streamers, beep.Take(p.n, src))
		}
		pos += p.n
	}
	if !placed {
		streamers = append(streamers, marker)
	}
	f.pending = f.pending[:0]

	f.lock.Lock()
	for _, s := range streamers {
		f.queue.push(s)
	}
	f.lock.Unlock()
	return done
}
