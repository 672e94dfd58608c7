package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"tts-generator/internal/gui"
	"tts-generator/internal/session"
	"tts-generator/internal/tts"
)

func newGUICommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd.Context(), a)
		},
	}
}

func runGUI(ctx context.Context, a *app) error {
	if ctx == nil {
		ctx = context.Background()
	}
	svc, err := a.service(ctx)
	if err != nil {
		return err
	}

	// genCtx is canceled when the window goes away so a running request stops.
	genCtx, cancel := context.WithCancel(ctx)
	sess := session.New(svc)
	defer sess.Wait()
	defer cancel()
	defer sess.Close()

	fa := fyneapp.New()
	opts := gui.Options{Provider: svc.ProviderName()}
	if pc := svc.Catalog(); pc != nil {
		opts.Voices = pc.AvailableVoices()
		opts.Models = pc.AvailableModels()
		opts.DefaultVoice = pc.DefaultVoice
		opts.DefaultModel = pc.DefaultModel
	}

	ui := gui.NewUI(fa, opts, func(text, voice, model string) tts.Result {
		return sess.Generate(genCtx, text, voice, model)
	})
	ui.Window.SetOnClosed(func() {
		sess.Close()
		cancel()
	})

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigCtx.Done():
			sess.Close()
			cancel()
			fyne.Do(fa.Quit)
		case <-done:
		}
	}()

	ui.Window.ShowAndRun()
	return nil
}
