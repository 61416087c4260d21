package main

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/dimfu/polyclack/rhythm"
	"github.com/eiannone/keyboard"
)

func TestBeatGlyphs(t *testing.T) {
	sigs := []rhythm.Signature{{Beats: 2, NoteValue: 4}, {Beats: 4, NoteValue: 4}}
	unit, rescaled, err := rhythm.Resolve(sigs)
	if err != nil {
		t.Fatal(err)
	}
	tl, err := rhythm.Build(60, unit, rescaled)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{glyphDownbeat, glyphBeat, glyphShared, glyphBeat}
	if got := beatGlyphs(tl); !reflect.DeepEqual(want, got) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestStatusLineBar(t *testing.T) {
	session := Session{Tempo: 60, Signatures: []rhythm.Signature{{Beats: 4, NoteValue: 4}}}
	unit, rescaled, err := rhythm.Resolve(session.Signatures)
	if err != nil {
		t.Fatal(err)
	}
	tl, err := rhythm.Build(session.Tempo, unit, rescaled)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	s := newStatusLine(&out, session)
	s.Bar(7, tl)
	s.Stop()

	if got := out.String(); !strings.Contains(got, "4/4 @ 60 bpm  bar 7") {
		t.Errorf("unexpected status %q", got)
	}
}

func TestQuitKeys(t *testing.T) {
	if !isQuitKey('q', 0) || !isQuitKey(0, keyboard.KeyEsc) || !isQuitKey(0, keyboard.KeyCtrlC) {
		t.Error("expected q, esc and ctrl+c to quit")
	}
	if isQuitKey('a', 0) || isQuitKey(0, keyboard.KeySpace) {
		t.Error("expected other keys to be ignored")
	}
}

func TestWatchKeys(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events <- keyboard.KeyEvent{Rune: 'a'}
	events <- keyboard.KeyEvent{Rune: 'q'}
	watchKeys(ctx, events, cancel)
	if ctx.Err() == nil {
		t.Error("expected q to cancel playback")
	}
}

func TestWatchKeysReturnsWhenDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	returned := make(chan struct{})
	go func() {
		watchKeys(ctx, make(chan keyboard.KeyEvent), func() {})
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("key watcher kept running after playback stopped")
	}
}
