package main

import (
	"context"

	"github.com/eiannone/keyboard"
)

// listenKeys cancels playback on q, esc or ctrl+c. The terminal is in raw
// mode until the returned func is called, so SIGINT is not delivered.
func listenKeys(ctx context.Context, cancel context.CancelFunc) (func(), error) {
	events, err := keyboard.GetKeys(10)
	if err != nil {
		return nil, err
	}

	go watchKeys(ctx, events, cancel)
	return func() { _ = keyboard.Close() }, nil
}

// watchKeys returns on a quit key, when ctx is done or when events closes.
func watchKeys(ctx context.Context, events <-chan keyboard.KeyEvent, cancel context.CancelFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Err != nil {
				logger.WithError(ev.Err).Warn("reading keyboard")
				continue
			}
			if isQuitKey(ev.Rune, ev.Key) {
				cancel()
				return
			}
		}
	}
}

func isQuitKey(r rune, key keyboard.Key) bool {
	return r == 'q' || r == 'Q' || key == keyboard.KeyEsc || key == keyboard.KeyCtrlC
}
