package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dimfu/polyclack/rhythm"
	"github.com/gosuri/uilive"
)

const (
	glyphDownbeat = "●"
	glyphShared   = "◉"
	glyphBeat     = "○"
)

// statusLine redraws a single terminal line once per bar.
type statusLine struct {
	w       *uilive.Writer
	session Session
	accent  lipgloss.Style
	shared  lipgloss.Style
	dim     lipgloss.Style
}

func newStatusLine(out io.Writer, session Session) *statusLine {
	w := uilive.New()
	w.Out = out
	w.Start()

	return &statusLine{
		w:       w,
		session: session,
		accent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		shared:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		dim:     lipgloss.NewStyle().Faint(true),
	}
}

// beatGlyphs marks the downbeat and the onsets more than one meter shares.
func beatGlyphs(tl *rhythm.Timeline) []string {
	glyphs := make([]string, len(tl.Events))
	for i, ev := range tl.Events {
		switch {
		case ev.Downbeat:
			glyphs[i] = glyphDownbeat
		case len(ev.Sources) > 1:
			glyphs[i] = glyphShared
		default:
			glyphs[i] = glyphBeat
		}
	}
	return glyphs
}

func (s *statusLine) Bar(bar int, tl *rhythm.Timeline) {
	glyphs := beatGlyphs(tl)
	for i, g := range glyphs {
		switch g {
		case glyphDownbeat:
			glyphs[i] = s.accent.Render(g)
		case glyphShared:
			glyphs[i] = s.shared.Render(g)
		}
	}

	fmt.Fprintf(s.w, "%s @ %d bpm  bar %-5d %s  %s\n",
		FormatSignatures(s.session.Signatures),
		s.session.Tempo,
		bar,
		strings.Join(glyphs, " "),
		s.dim.Render("q to quit"),
	)
}

func (s *statusLine) Stop() {
	s.w.Stop()
}
