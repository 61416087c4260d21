package main

import "github.com/dimfu/polyclack/rhythm"

const (
	MIN_TEMPO = 0
	MAX_TEMPO = 600

	DEFAULT_SAMPLE_RATE = 44100
	CONFIG_FILE         = ".polyclack.json"
)

// meters listed in the usage text
var TIME_SIGNATURES = []rhythm.Signature{
	{Beats: 4, NoteValue: 4},
	{Beats: 3, NoteValue: 4},
	{Beats: 2, NoteValue: 4},
	{Beats: 2, NoteValue: 2},
	{Beats: 3, NoteValue: 8},
	{Beats: 6, NoteValue: 8},
	{Beats: 9, NoteValue: 8},
	{Beats: 12, NoteValue: 8},
	{Beats: 5, NoteValue: 4},
	{Beats: 6, NoteValue: 4},
}
