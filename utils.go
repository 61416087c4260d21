package main

import (
	"strconv"
	"strings"

	"github.com/dimfu/polyclack/rhythm"
	"github.com/pkg/errors"
)

// Session is what a metronome run needs: one tempo and the meters laid over it.
type Session struct {
	Tempo      int64
	Signatures []rhythm.Signature
}

func ValidTempo(input int64) bool {
	return input > MIN_TEMPO && input < MAX_TEMPO
}

// ParseArgs reads `tempo beats unit [beats unit ...]`.
func ParseArgs(args []string) (Session, error) {
	if len(args) < 3 || (len(args)-1)%2 != 0 {
		return Session{}, errors.Wrap(rhythm.ErrInvalidArgument, "expected a tempo followed by beats and note value pairs")
	}

	tempo, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return Session{}, errors.Wrapf(rhythm.ErrInvalidArgument, "invalid tempo %q", args[0])
	}
	if !ValidTempo(tempo) {
		return Session{}, errors.Wrapf(rhythm.ErrInvalidArgument, "tempo is not valid make sure its above %v and below %v", MIN_TEMPO, MAX_TEMPO)
	}

	session := Session{Tempo: tempo}
	for i := 1; i < len(args); i += 2 {
		sig, err := rhythm.ParseSignature(args[i] + "/" + args[i+1])
		if err != nil {
			return Session{}, err
		}
		session.Signatures = append(session.Signatures, sig)
	}
	return session, nil
}

func FormatSignatures(sigs []rhythm.Signature) string {
	parts := make([]string, len(sigs))
	for i, sig := range sigs {
		parts[i] = sig.String()
	}
	return strings.Join(parts, " + ")
}
