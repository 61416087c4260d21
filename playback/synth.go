package playback

import (
	"math"
	"time"

	"github.com/dimfu/polyclack/rhythm"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

// sampleClock converts segment durations to sample counts from the running
// total, so rounding never piles up across segments.
type sampleClock struct {
	rate    beep.SampleRate
	elapsed time.Duration
	samples int
}

func (c *sampleClock) advance(d time.Duration) int {
	c.elapsed += d
	end := c.rate.N(c.elapsed)
	n := end - c.samples
	c.samples = end
	return n
}

func segmentStreamer(sr beep.SampleRate, seg rhythm.Segment, n int) beep.Streamer {
	return beep.Take(n, segmentSource(sr, seg))
}

// segmentSource is the endless signal behind a segment.
func segmentSource(sr beep.SampleRate, seg rhythm.Segment) beep.Streamer {
	if seg.Kind == rhythm.Tone {
		return sine(sr, seg.Frequency, seg.Amplitude)
	}
	return beep.Silence(-1)
}

func sine(sr beep.SampleRate, freq, amplitude float64) beep.Streamer {
	step := 2 * math.Pi * freq / float64(sr)
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			v := amplitude * math.Sin(phase)
			samples[i][0] = v
			samples[i][1] = v
			phase += step
			if phase >= 2*math.Pi {
				phase -= 2 * math.Pi
			}
		}
		return len(samples), true
	})
}

// withVolume applies a master volume in the logarithmic base-2 scale of
// effects.Volume; 0 leaves the signal untouched.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume == 0 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volume,
	}
}
