package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/linuxmatters/scentcloud/internal/config"
)

var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Plum)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(Lavender).
			Italic(true)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Rose)

	helpTermStyle = lipgloss.NewStyle().
			Foreground(Citrus).
			Bold(true)

	helpNoteStyle = lipgloss.NewStyle().
			Foreground(Musk).
			Italic(true)
)

// helpRow is one aligned line of a help section
type helpRow struct {
	term string
	help string
	def  string
}

// StyledHelpPrinter renders help for the labels, flags and config file keys
// scentcloud accepts.
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder
		node := ctx.Model.Node

		sb.WriteString(helpTitleStyle.Render(AppName) + "\n")
		sb.WriteString(helpDescStyle.Render(AppDescription) + "\n")

		writeSection(&sb, "Usage:", nil)
		sb.WriteString("  " + usageLine(ctx.Model.Name, node) + "\n")

		writeSection(&sb, "Labels:", positionalRows(node))
		sb.WriteString("  " + helpNoteStyle.Render(fmt.Sprintf(
			"With no labels, the %d built-in scent descriptors are counted.",
			len(config.DefaultDescriptors()))) + "\n")

		writeSection(&sb, "Flags:", flagRows(node))

		writeSection(&sb, "Config file keys (--config FILE, TOML):", configRows())
		sb.WriteString("  " + helpNoteStyle.Render("Flags override the file; the file overrides the defaults.") + "\n")

		writeSection(&sb, "Examples:", nil)
		sb.WriteString("  " + ctx.Model.Name + " woody woody amber iris -o notes.jpg\n")
		sb.WriteString("  " + ctx.Model.Name + " --config scentcloud.toml --preview\n")

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	}
}

func usageLine(name string, node *kong.Node) string {
	parts := []string{name}
	for _, arg := range node.Positional {
		parts = append(parts, arg.Summary())
	}
	return strings.Join(append(parts, "[flags]"), " ")
}

// writeSection writes a heading followed by rows with the terms padded to a
// common width.
func writeSection(sb *strings.Builder, heading string, rows []helpRow) {
	sb.WriteString("\n" + helpSectionStyle.Render(heading) + "\n")

	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.term))
	}
	for _, r := range rows {
		sb.WriteString("  " + helpTermStyle.Render(r.term))
		sb.WriteString(strings.Repeat(" ", width-lipgloss.Width(r.term)+2))
		sb.WriteString(r.help)
		if r.def != "" {
			sb.WriteString(" " + helpNoteStyle.Render("(default: "+r.def+")"))
		}
		sb.WriteString("\n")
	}
}

func positionalRows(node *kong.Node) []helpRow {
	rows := make([]helpRow, 0, len(node.Positional))
	for _, arg := range node.Positional {
		rows = append(rows, helpRow{term: arg.Summary(), help: arg.Help})
	}
	return rows
}

func flagRows(node *kong.Node) []helpRow {
	rows := make([]helpRow, 0, len(node.Flags))
	for _, f := range node.Flags {
		if f.Hidden {
			continue
		}

		term := "    --" + f.Name
		if f.Short != 0 {
			term = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		}
		if !f.IsBool() {
			placeholder := f.PlaceHolder
			if placeholder == "" {
				placeholder = f.Name
			}
			term += "=" + strings.ToUpper(placeholder)
		}

		def := ""
		if f.HasDefault && !f.IsBool() {
			def = f.Default
		}
		rows = append(rows, helpRow{term: term, help: f.Help, def: def})
	}
	return rows
}

func configRows() []helpRow {
	keys := config.FileKeys()
	rows := make([]helpRow, len(keys))
	for i, k := range keys {
		rows[i] = helpRow{term: k.Name, help: k.Help, def: k.Default}
	}
	return rows
}
