package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/slide/internal/config"
	"git.lost.host/meutraa/slide/internal/input"
	"git.lost.host/meutraa/slide/internal/parser"
	"git.lost.host/meutraa/slide/internal/render"
	"git.lost.host/meutraa/slide/internal/score"
	"git.lost.host/meutraa/slide/internal/theme"
	"github.com/eiannone/keyboard"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	if err := config.Parse(os.Args[1:]); nil != err {
		return err
	}

	// Ensure our Default implementations are used as interfaces
	p := &Program{
		Parser:   &parser.DefaultParser{},
		Scorer:   &score.DefaultScorer{},
		Theme:    &theme.DefaultTheme{},
		Renderer: render.NewDefaultRenderer(os.Stdout),
	}

	if err := p.Scorer.Init(*config.Database); nil != err {
		return err
	}
	defer p.Scorer.Deinit()

	sample, err := newSample()
	if nil != err {
		return err
	}
	if err := sample.Init(); nil != err {
		return fmt.Errorf("unable to open speaker: %w", err)
	}

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	tracker := input.NewKeyTracker(keyChannel, config.TrackingKey(), *config.HoldWindow)
	if err := p.Init(tracker, sample); nil != err {
		return err
	}

	if err := p.Renderer.Init(); nil != err {
		return err
	}
	p.Resize()

	p.Renderer.RenderLoop(*config.Delay, *config.FramePeriod, func(duration time.Duration) bool {
		now := chartTime(duration, *config.Offset, *config.Rate)
		cont := p.Update(now)
		p.Render(now)
		return cont
	})

	if err := p.Renderer.Deinit(); nil != err {
		log.Println("unable to restore terminal", err)
	}

	return p.Save()
}
