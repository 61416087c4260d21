package playback

import (
	"testing"
	"time"

	"github.com/dimfu/polyclack/rhythm"
	"github.com/faiface/beep"
)

func TestSampleClockDoesNotDrift(t *testing.T) {
	c := sampleClock{rate: 44100}
	total := 0
	// 1/3 of a second does not land on a whole sample
	for i := 0; i < 300; i++ {
		total += c.advance(time.Second / 3)
	}
	if want, got := 44100*100, total; want-got > 1 || got-want > 1 {
		t.Errorf("want %d samples, got %d", want, got)
	}
}

func drain(s beep.Streamer) (samples [][2]float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		samples = append(samples, buf[:n]...)
		if !ok {
			return samples
		}
	}
}

func TestSegmentStreamer(t *testing.T) {
	tone := drain(segmentStreamer(44100, rhythm.Segment{Kind: rhythm.Tone, Frequency: 440, Amplitude: 0.5}, 1000))
	if want, got := 1000, len(tone); want != got {
		t.Fatalf("want %d tone samples, got %d", want, got)
	}
	peak := 0.0
	for _, s := range tone {
		if s[0] != s[1] {
			t.Fatalf("channels differ: %v", s)
		}
		if s[0] > peak {
			peak = s[0]
		}
	}
	if peak < 0.45 || peak > 0.5 {
		t.Errorf("want peak near 0.5, got %v", peak)
	}

	silence := drain(segmentStreamer(44100, rhythm.Segment{Kind: rhythm.Silence}, 700))
	if want, got := 700, len(silence); want != got {
		t.Fatalf("want %d silent samples, got %d", want, got)
	}
	for _, s := range silence {
		if s != [2]float64{} {
			t.Fatalf("expected silence, got %v", s)
		}
	}
}

func TestQueuePlaysInOrderAndPadsSilence(t *testing.T) {
	q := &queue{}
	fired := false
	q.push(beep.Take(3, sine(44100, 440, 1)))
	q.push(beep.Callback(func() { fired = true }))
	q.push(beep.Take(2, sine(44100, 440, 1)))

	buf := make([][2]float64, 8)
	n, ok := q.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("want a full buffer, got %d %v", n, ok)
	}
	if !fired {
		t.Error("callback between streamers did not fire")
	}
	if len(q.streamers) != 0 {
		t.Errorf("want empty queue, got %d streamers", len(q.streamers))
	}
	for i := 5; i < len(buf); i++ {
		if buf[i] != [2]float64{} {
			t.Errorf("sample %d: expected padding silence, got %v", i, buf[i])
		}
	}
	// sin(0) starts both tones at zero, the next sample is not
	if buf[1][0] == 0 || buf[4][0] == 0 {
		t.Errorf("expected tone samples, got %v", buf[:5])
	}
}
