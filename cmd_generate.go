package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tts-generator/internal/session"
	"tts-generator/internal/util"
)

type generateOptions struct {
	text  string
	voice string
	model string
	out   string
}

func newGenerateCommand(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [text]",
		Short: "Synthesize text and save it as a WAV file",
		Long: "Synthesize text and save it as a WAV file.\n\n" +
			"The text comes from --text, the positional arguments, or stdin when it is \"-\".",
		Example: `  tts-generator generate "Hello world" --voice Kore --out hello.wav
  echo "Hello world" | tts-generator generate - -p openai --voice alloy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := resolveText(opts.text, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runGenerate(cmd, a, opts, text)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "text to convert")
	cmd.Flags().StringVar(&opts.voice, "voice", "", "voice name (defaults to the provider's default voice)")
	cmd.Flags().StringVar(&opts.model, "model", "", "model name (defaults to the provider's default model)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (defaults to a name built from the text)")
	return cmd
}

// resolveText picks the text from the flag, the arguments or stdin.
func resolveText(flagText string, args []string, stdin io.Reader) (string, error) {
	if flagText != "" {
		if len(args) > 0 {
			return "", errors.New("pass the text either with --text or as arguments, not both")
		}
		return flagText, nil
	}
	if len(args) == 1 && args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	return strings.Join(args, " "), nil
}

func runGenerate(cmd *cobra.Command, a *app, opts *generateOptions, text string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := a.service(ctx)
	if err != nil {
		return err
	}

	voice, model := opts.voice, opts.model
	if pc := svc.Catalog(); pc != nil {
		if voice == "" {
			voice = pc.DefaultVoice
		}
		if model == "" {
			model = pc.DefaultModel
		}
	}

	sess := session.New(svc)
	defer sess.Close()

	res := sess.Generate(ctx, text, voice, model)
	if !res.Success {
		return errors.New(res.Message)
	}

	out := opts.out
	if out == "" {
		out = util.GenerateFilename(text)
	}
	if err := util.SaveAudioFile(res.FilePath, out); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\nSaved audio to %s\n", res.Message, out)
	return nil
}
