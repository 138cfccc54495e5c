// SPDX-License-Identifier: Unlicense OR MIT

// Command swipechat runs a chat screen whose messages can be swiped to reply.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"git.sr.ht/~gioverse/swipechat/apptheme"
	"git.sr.ht/~gioverse/swipechat/config"
	"git.sr.ht/~gioverse/swipechat/logging"
	"git.sr.ht/~gioverse/swipechat/profile"
	"git.sr.ht/~gioverse/swipechat/store"
	"git.sr.ht/~gioverse/swipechat/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Print(config.Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, config.Usage())
		os.Exit(1)
	}
	log := logging.Init(cfg.Log)
	log.Info().
		Str("theme", cfg.Theme).
		Str("profile", cfg.Profile).
		Float32("threshold", cfg.Swipe.Threshold).
		Dur("reply_duration", cfg.Reply.Duration).
		Str("seed", cfg.Seed.File).
		Int("filler", cfg.Seed.Filler).
		Msg("configuration loaded")

	screen, err := newScreen(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("building chat")
		os.Exit(1)
	}
	opt, err := profile.ParseOpt(cfg.Profile)
	if err != nil {
		log.Error().Err(err).Msg("selecting profiler")
		os.Exit(1)
	}

	go func() {
		// Instantiate the chat window.
		w := app.NewWindow(
			app.Title(cfg.Window.Title),
			app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
		)
		if err := run(w, screen, opt.NewProfiler(log)); err != nil {
			log.Error().Err(err).Msg("premature window close")
			os.Exit(1)
		}
		os.Exit(0)
	}()
	// Surrender main thread to OS.
	// Necessary for certain platforms.
	app.Main()
}

// newScreen builds the store from the configured seed and wraps it in a
// chat screen.
func newScreen(cfg *config.Config, log zerolog.Logger) (*ui.Screen, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seed, err := store.LoadSeed(cfg.Seed.File, cfg.Seed.Filler, rng)
	if err != nil {
		return nil, err
	}
	messages, err := store.New(seed, store.NewIDs(nil))
	if err != nil {
		return nil, fmt.Errorf("building store: %w", err)
	}
	th, err := apptheme.NewTheme(gofont.Collection(), cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("building theme: %w", err)
	}
	return ui.NewScreen(th, messages, settings(cfg), log), nil
}

func settings(cfg *config.Config) ui.Settings {
	return ui.Settings{
		Threshold:     cfg.Swipe.Threshold,
		IconTravel:    cfg.Swipe.IconTravel,
		Damping:       cfg.Swipe.Damping,
		Stiffness:     cfg.Swipe.Stiffness,
		ReplyHeight:   unit.Dp(cfg.Reply.Height),
		ReplyDuration: cfg.Reply.Duration,
		Outline:       cfg.Debug.Outline,
	}
}

// run handles window events and renders the screen.
func run(w *app.Window, screen *ui.Screen, profiler profile.Profiler) error {
	profiler.Start()
	defer profiler.Stop()
	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			profiler.Record(gtx)
			screen.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}
