package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newVoicesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "voices",
		Short: "List the known voices of the selected provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pc := a.catalog()
			if pc == nil || len(pc.Voices) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No voice catalog for %s; any voice name is passed through.\n", a.provider)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VOICE\tSTYLE")
			for _, v := range pc.AvailableVoices() {
				fmt.Fprintf(tw, "%s\t%s\n", v.Name, v.Style)
			}
			if !pc.Strict {
				fmt.Fprintln(tw, "(other voice names are accepted too)\t")
			}
			return tw.Flush()
		},
	}
}

func newModelsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the known models of the selected provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pc := a.catalog()
			if pc == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No model catalog for %s.\n", a.provider)
				return nil
			}
			for _, m := range pc.AvailableModels() {
				marker := " "
				if m == pc.DefaultModel {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, m)
			}
			return nil
		},
	}
}
