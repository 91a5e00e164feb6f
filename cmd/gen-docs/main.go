// gen-docs generates the gauge CLI reference as man pages and Markdown.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schmitthub/gauge/internal/cmd/root"
	"github.com/schmitthub/gauge/internal/cmdutil"
	"github.com/schmitthub/gauge/internal/docs"
	"github.com/schmitthub/gauge/internal/iostreams"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	flags := pflag.NewFlagSet("gen-docs", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		flagDocPath  string
		flagMarkdown bool
		flagManPage  bool
	)
	flags.StringVar(&flagDocPath, "doc-path", "", "Output directory for generated docs (required)")
	flags.BoolVar(&flagMarkdown, "markdown", false, "Generate Markdown documentation")
	flags.BoolVar(&flagManPage, "man-page", false, "Generate man pages")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage of %s:\n\n%s", filepath.Base(args[0]), flags.FlagUsages())
	}

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	if flagDocPath == "" {
		return fmt.Errorf("--doc-path is required")
	}
	if !flagMarkdown && !flagManPage {
		return fmt.Errorf("at least one format must be specified (--markdown, --man-page)")
	}

	// Build the command tree
	f := &cmdutil.Factory{IOStreams: iostreams.NewIOStreams()}
	rootCmd := root.NewCmdRoot(f, "", "")
	rootCmd.DisableAutoGenTag = true

	if flagMarkdown {
		dir := filepath.Join(flagDocPath, "markdown")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create markdown directory: %w", err)
		}
		if err := docs.GenMarkdownTree(rootCmd, dir); err != nil {
			return fmt.Errorf("failed to generate Markdown documentation: %w", err)
		}
		fmt.Fprintf(stderr, "Generated Markdown documentation in %s\n", dir)
	}

	if flagManPage {
		dir := filepath.Join(flagDocPath, "man")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create man directory: %w", err)
		}
		if err := docs.GenManTree(rootCmd, dir, nil); err != nil {
			return fmt.Errorf("failed to generate man pages: %w", err)
		}
		fmt.Fprintf(stderr, "Generated man pages in %s\n", dir)
	}

	return nil
}
