package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tts-generator/internal/config"
)

// newKeyCommand needs no loaded configuration, so a broken environment
// cannot stop a key from being stored.
func newKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage provider API keys in the system keychain",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <provider>",
		Short: "Store an API key read from stdin",
		Example: `  echo "$GEMINI_API_KEY" | tts-generator key set gemini`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{config.ProviderGemini, config.ProviderOpenAI},
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := strings.ToLower(args[0])
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			key := strings.TrimSpace(line)
			if key == "" {
				if err != nil {
					return fmt.Errorf("failed to read key from stdin: %w", err)
				}
				return errors.New("empty API key")
			}
			if err := config.SetAPIKey(provider, key); err != nil {
				return fmt.Errorf("failed to store key: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s key in the keychain (%s still takes precedence when set).\n",
				provider, config.EnvVar(provider))
			return nil
		},
	}

	cmd.AddCommand(set)
	return cmd
}
