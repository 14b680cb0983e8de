package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leftright/internal/config"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long:  `Prints the key bindings from the effective configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Key bindings (%s):\n\n", source)
	for _, b := range cfg.Keys.Bindings() {
		keys := config.KeyLabels(b.Keys)
		if keys == "" {
			keys = "(unbound)"
		}
		fmt.Fprintf(out, "  %-10s  %s\n", b.Action, keys)
	}
	return nil
}
