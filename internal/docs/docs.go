// Package docs renders reference documentation for the gauge command
// tree as man pages and Markdown.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// visibleSubcommands returns the documented children of cmd.
func visibleSubcommands(cmd *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.Hidden || !c.IsAvailableCommand() || c.Name() == "help" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// walk calls fn for cmd and every visible descendant, children first.
func walk(cmd *cobra.Command, fn func(*cobra.Command) error) error {
	for _, c := range visibleSubcommands(cmd) {
		if err := walk(c, fn); err != nil {
			return err
		}
	}
	return fn(cmd)
}

// baseName joins the command path with sep, e.g. "gauge_config_show".
func baseName(cmd *cobra.Command, sep string) string {
	return strings.ReplaceAll(cmd.CommandPath(), " ", sep)
}

func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
