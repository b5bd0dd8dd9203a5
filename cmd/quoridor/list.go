package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quoridor/internal/config"
	"github.com/vovakirdan/tui-quoridor/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List variants and presets",
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintln(out, "Variants:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Presets:")
	fmt.Fprintln(out)
	for _, p := range config.Presets() {
		fmt.Fprintf(out, "  %-8s  %s\n", p, p.Description())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'quoridor play <id> --preset <name>' to play.")
}
