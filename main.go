package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tts-generator/internal/config"
	"tts-generator/internal/logger"
	"tts-generator/internal/tts"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	cfg      *config.Config
	manager  *tts.Manager
	provider string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "tts-generator",
		Short:        "Convert text to speech with a hosted TTS provider",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd.Context(), a)
		},
	}
	root.PersistentFlags().StringVarP(&a.provider, "provider", "p", "", "TTS provider (gemini|openai); overrides TTS_PROVIDER")

	root.AddCommand(
		newGUICommand(a),
		newGenerateCommand(a),
		newVoicesCommand(a),
		newModelsCommand(a),
		newKeyCommand(),
	)
	return root
}

// load reads .env files, the environment and the catalog.
func (a *app) load() error {
	config.LoadEnvFiles()
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	a.provider = strings.ToLower(strings.TrimSpace(a.provider))
	if a.provider == "" {
		a.provider = cfg.Provider
	}
	if a.provider != config.ProviderGemini && a.provider != config.ProviderOpenAI {
		return fmt.Errorf("unknown provider %q", a.provider)
	}

	manager, err := tts.NewManager(&tts.ProviderConfig{
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		GeminiAPIKey:  cfg.GeminiAPIKey,
		GeminiBaseURL: cfg.GeminiBaseURL,
		Timeout:       cfg.RequestTimeout,
		TempDir:       cfg.TempDir,
		CatalogFile:   cfg.CatalogFile,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.manager = manager
	return nil
}

// service builds the speech service for the selected provider. A missing
// credential is fatal here, before any UI is shown.
func (a *app) service(ctx context.Context) (*tts.Service, error) {
	svc, err := a.manager.NewService(ctx, a.provider)
	if err != nil {
		log := logger.For("main")
		log.Error().Err(err).Str("provider", a.provider).Msg("configuration error")
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return svc, nil
}

// catalog returns the selected provider's catalog, which may be nil.
func (a *app) catalog() *tts.ProviderCatalog {
	return a.manager.Catalog().For(a.provider)
}
