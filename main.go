package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimfu/polyclack/playback"
	"github.com/dimfu/polyclack/rhythm"
	"github.com/faiface/beep"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	logger = logrus.New()

	// flags
	accentHz   = flag.Float64("accent-hz", rhythm.DefaultVoice.Accent, "pitch of the downbeat in Hz")
	beatHz     = flag.Float64("hz", rhythm.DefaultVoice.Regular, "pitch of every other beat in Hz")
	amplitude  = flag.Float64("amplitude", rhythm.DefaultVoice.Amplitude, "tone amplitude between 0 and 1")
	volume     = flag.Float64("volume", 0, "master volume, each step of 1 doubles or halves the loudness")
	bars       = flag.Int("bars", 0, "stop after this many bars, 0 plays until interrupted")
	export     = flag.String("export", "", "write the bars to this wav file instead of playing them")
	sampleRate = flag.Int("sample-rate", DEFAULT_SAMPLE_RATE, "output sample rate")
	logLevel   = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	quiet      = flag.Bool("quiet", false, "do not draw the bar counter")
	save       = flag.String("save", "", "save tempo and time signatures as a preset with this name")
	preset     = flag.String("preset", "", "play a saved preset")
	deleteKey  = flag.String("delete", "", "delete a saved preset")
	list       = flag.Bool("list", false, "list saved presets")
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: %s [flags] tempo beats note [beats note ...]\n\n", os.Args[0])
	fmt.Fprintf(out, "every beats/note pair is one meter, all of them share the bar of the first\n\n")
	flag.PrintDefaults()
	fmt.Fprintf(out, "\ncommon meters: %s\n", FormatSignatures(TIME_SIGNATURES))
}

func main() {
	flag.Usage = usage
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	logger.SetLevel(level)

	if err := run(); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	switch {
	case *list:
		return listPresets(os.Stdout, path)
	case *deleteKey != "":
		if err := DeleteConfig(path, *deleteKey); err != nil {
			return err
		}
		logger.WithField("preset", *deleteKey).Info("preset deleted")
		return nil
	}

	session, err := sessionFromFlags(path)
	if err != nil {
		flag.Usage()
		return err
	}
	if *save != "" {
		if err := CreateConf(path, NewConfig(*save, session)); err != nil {
			return err
		}
		logger.WithField("preset", *save).Info("preset saved")
	}

	voice := rhythm.Voice{Accent: *accentHz, Regular: *beatHz, Amplitude: *amplitude}
	sched := playback.NewScheduler(voice, logger.WithField("component", "scheduler"))
	sched.Bars = *bars
	if err := sched.Configure(session.Tempo, session.Signatures); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rate := beep.SampleRate(*sampleRate)
	if *export != "" {
		if sched.Bars == 0 {
			sched.Bars = 1
		}
		return sched.Run(ctx, playback.NewWAVSink(*export, rate, *volume, logger.WithField("component", "wav")))
	}

	sink, err := playback.NewSpeakerSink(rate, *volume, logger.WithField("component", "speaker"))
	if err != nil {
		return err
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		keysCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		closeKeys, err := listenKeys(keysCtx, cancel)
		if err != nil {
			logger.WithError(err).Warn("keyboard unavailable, use ctrl+c to stop")
		} else {
			defer closeKeys()
			ctx = keysCtx
		}
	}

	if !*quiet && isatty.IsTerminal(os.Stdout.Fd()) {
		status := newStatusLine(os.Stdout, session)
		defer status.Stop()
		sched.OnBar = status.Bar
	}

	return sched.Run(ctx, sink)
}

func sessionFromFlags(path string) (Session, error) {
	if *preset == "" {
		return ParseArgs(flag.Args())
	}
	if flag.NArg() > 0 {
		return Session{}, errors.Wrap(rhythm.ErrInvalidArgument, "use either a preset or a tempo with time signatures")
	}
	return LoadPreset(path, *preset)
}

func listPresets(out io.Writer, path string) error {
	cm, err := NewConfigManager(path)
	if err != nil {
		return err
	}

	for _, c := range cm.Config {
		session, err := c.Session()
		if err != nil {
			fmt.Fprintf(out, "%s\tinvalid: %v\n", c.Key, err)
			continue
		}
		fmt.Fprintf(out, "%s\t%s @ %d bpm\n", c.Key, FormatSignatures(session.Signatures), session.Tempo)
	}
	return nil
}
