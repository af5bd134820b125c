package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List the game's scenes",
	Long:  `Shows the scenes registered with the game in the order they are created.`,
	Args:  cobra.NoArgs,
	Run:   runScenes,
}

func runScenes(cmd *cobra.Command, _ []string) {
	scenes := registry.List()
	out := cmd.OutOrStdout()

	if len(scenes) == 0 {
		fmt.Fprintln(out, "No scenes registered.")
		return
	}

	maxKeyLen := 3 // "Key" header
	for _, s := range scenes {
		if len(s.Key) > maxKeyLen {
			maxKeyLen = len(s.Key)
		}
	}

	fmt.Fprintf(out, "  %-5s  %-*s  %s\n", "Order", maxKeyLen, "Key", "Title")
	fmt.Fprintf(out, "  %-5s  %-*s  %s\n", "-----", maxKeyLen, "---", "-----")
	for _, s := range scenes {
		fmt.Fprintf(out, "  %-5d  %-*s  %s\n", s.Order, maxKeyLen, s.Key, s.Title)
	}
}
