package docs

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ManHeader is the metadata of the .TH line.
type ManHeader struct {
	Section string
	Date    *time.Time
	Manual  string
}

// DefaultManHeader returns the header used by GenManTree.
func DefaultManHeader() *ManHeader {
	return &ManHeader{Section: "1", Manual: "Gauge Manual"}
}

// GenManTree writes a man page for cmd and each visible subcommand to dir.
func GenManTree(cmd *cobra.Command, dir string, header *ManHeader) error {
	if header == nil {
		header = DefaultManHeader()
	}
	return walk(cmd, func(c *cobra.Command) error {
		var buf bytes.Buffer
		if err := GenMan(c, header, &buf); err != nil {
			return err
		}
		return writeFile(dir, baseName(c, "-")+"."+header.Section, buf.Bytes())
	})
}

// GenMan renders a single man page in roff.
func GenMan(cmd *cobra.Command, header *ManHeader, w io.Writer) error {
	if header == nil {
		header = DefaultManHeader()
	}
	_, err := w.Write(md2man.Render(manMarkdown(cmd, header)))
	return err
}

func manMarkdown(cmd *cobra.Command, header *ManHeader) []byte {
	cmd.InitDefaultHelpFlag()

	var buf bytes.Buffer
	name := cmd.CommandPath()
	section := header.Section
	if section == "" {
		section = "1"
	}

	date := ""
	if header.Date != nil {
		date = header.Date.Format("Jan 2006")
	}
	fmt.Fprintf(&buf, "%% %s(%s) %s | %s\n\n",
		strings.ToUpper(baseName(cmd, "-")), section, date, header.Manual)

	buf.WriteString("# NAME\n")
	fmt.Fprintf(&buf, "%s \\- %s\n\n", name, cmd.Short)

	buf.WriteString("# SYNOPSIS\n")
	fmt.Fprintf(&buf, "**%s**", cmd.UseLine())
	if cmd.HasAvailableSubCommands() {
		buf.WriteString(" COMMAND")
	}
	buf.WriteString("\n\n")

	if cmd.Long != "" {
		buf.WriteString("# DESCRIPTION\n")
		buf.WriteString(cmd.Long + "\n\n")
	}

	if subs := visibleSubcommands(cmd); len(subs) > 0 {
		buf.WriteString("# COMMANDS\n")
		for _, c := range subs {
			fmt.Fprintf(&buf, "**%s**\n: %s\n\n", c.Name(), c.Short)
		}
	}

	if flags := cmd.NonInheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("# OPTIONS\n")
		manFlags(&buf, flags)
	}
	if flags := cmd.InheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("# GLOBAL OPTIONS\n")
		manFlags(&buf, flags)
	}

	if cmd.Example != "" {
		buf.WriteString("# EXAMPLES\n")
		buf.WriteString("```\n" + cmd.Example + "\n```\n\n")
	}

	var seeAlso []string
	if cmd.HasParent() {
		seeAlso = append(seeAlso, fmt.Sprintf("**%s(%s)**", baseName(cmd.Parent(), "-"), section))
	}
	for _, c := range visibleSubcommands(cmd) {
		seeAlso = append(seeAlso, fmt.Sprintf("**%s(%s)**", baseName(c, "-"), section))
	}
	if len(seeAlso) > 0 {
		buf.WriteString("# SEE ALSO\n")
		buf.WriteString(strings.Join(seeAlso, ", ") + "\n")
	}

	return buf.Bytes()
}

func manFlags(buf *bytes.Buffer, flags *pflag.FlagSet) {
	var list []*pflag.Flag
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			list = append(list, f)
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	for _, f := range list {
		if f.Shorthand != "" {
			fmt.Fprintf(buf, "**-%s**, **--%s**", f.Shorthand, f.Name)
		} else {
			fmt.Fprintf(buf, "**--%s**", f.Name)
		}
		if t := f.Value.Type(); t != "bool" {
			fmt.Fprintf(buf, " <%s>", t)
		}
		buf.WriteString("\n: " + f.Usage)
		switch f.DefValue {
		case "", "false", "0", "[]", "0s":
		default:
			fmt.Fprintf(buf, " (default: %s)", f.DefValue)
		}
		buf.WriteString("\n\n")
	}
}
