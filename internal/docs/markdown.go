package docs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// GenMarkdownTree writes one Markdown file per visible command to dir,
// named after the command path (gauge_config_show.md).
func GenMarkdownTree(cmd *cobra.Command, dir string) error {
	return walk(cmd, func(c *cobra.Command) error {
		var buf bytes.Buffer
		if err := GenMarkdown(c, &buf); err != nil {
			return err
		}
		return writeFile(dir, markdownLink(c), buf.Bytes())
	})
}

func markdownLink(cmd *cobra.Command) string {
	return baseName(cmd, "_") + ".md"
}

// GenMarkdown renders the reference page of a single command.
func GenMarkdown(cmd *cobra.Command, w io.Writer) error {
	cmd.InitDefaultHelpFlag()

	var buf bytes.Buffer
	buf.WriteString("## " + cmd.CommandPath() + "\n\n")
	buf.WriteString(cmd.Short + "\n\n")

	if cmd.Long != "" {
		buf.WriteString("### Synopsis\n\n" + cmd.Long + "\n\n")
	}
	if cmd.Runnable() {
		buf.WriteString("```\n" + cmd.UseLine() + "\n```\n\n")
	}

	if cmd.Example != "" {
		buf.WriteString("### Examples\n\n```\n" + cmd.Example + "\n```\n\n")
	}

	if flags := cmd.NonInheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("### Options\n\n```\n" + flags.FlagUsages() + "```\n\n")
	}
	if flags := cmd.InheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("### Options inherited from parent commands\n\n```\n" + flags.FlagUsages() + "```\n\n")
	}

	if subs := visibleSubcommands(cmd); len(subs) > 0 {
		buf.WriteString("### Subcommands\n\n")
		for _, c := range subs {
			fmt.Fprintf(&buf, "* [%s](%s) - %s\n", c.CommandPath(), markdownLink(c), c.Short)
		}
		buf.WriteString("\n")
	}

	if cmd.HasParent() {
		p := cmd.Parent()
		fmt.Fprintf(&buf, "### See also\n\n* [%s](%s) - %s\n", p.CommandPath(), markdownLink(p), p.Short)
	}

	_, err := buf.WriteTo(w)
	return err
}
