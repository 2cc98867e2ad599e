package main

import (
	"strings"
	"testing"
)

func TestHelpDescribesScoring(t *testing.T) {
	if !strings.Contains(rootCmd.Long, "inside the safe circle") {
		t.Errorf("root help does not say demons score inside the circle:\n%s", rootCmd.Long)
	}
	for _, text := range []string{rootCmd.Short, rootCmd.Long} {
		if strings.Contains(text, "outside") || strings.Contains(text, "out of the circle") {
			t.Errorf("help text contradicts scoring: %q", text)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"play", "simulate", "config"} {
		if cmd, _, err := rootCmd.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not found: %v", name, err)
		}
	}
}
