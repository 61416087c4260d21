package playback

import "github.com/faiface/beep"

// queue plays streamers back to back and fills with silence when empty, so
// the speaker keeps running between bars.
type queue struct {
	streamers []beep.Streamer
}

func (q *queue) push(s beep.Streamer) {
	q.streamers = append(q.streamers, s)
}

func (q *queue) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		if len(q.streamers) == 0 {
			for i := range samples[filled:] {
				samples[filled+i] = [2]float64{}
			}
			break
		}

		n, ok := q.streamers[0].Stream(samples[filled:])
		if !ok {
			q.streamers = q.streamers[1:]
		}
		filled += n
	}
	return len(samples), true
}

func (q *queue) Err() error {
	return nil
}
