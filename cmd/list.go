package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/ftl/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	workspaceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces and windows in the session",
	Long: `List every workspace in the Firefox session with its windows and tab counts.

The window indices shown are the values accepted by --window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveSessionFile()
		if err != nil {
			return err
		}
		if path == "" {
			internal.FprintInfo(cmd.OutOrStdout(), "No session directory configured (use --session-dir or --find-session-dir)")
			return nil
		}

		urls, err := internal.LoadURLMap(path)
		if err != nil {
			return err
		}

		displayWorkspaces(cmd.OutOrStdout(), path, internal.Summarize(urls))
		return nil
	},
}

func displayWorkspaces(out io.Writer, path string, summaries []internal.WorkspaceSummary) {
	if len(summaries) == 0 {
		_, _ = fmt.Fprintln(out, headerStyle.Render("📋 No windows found"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("📋 Found %d workspace(s)", len(summaries)))
	_, _ = fmt.Fprintln(out, header)
	_, _ = fmt.Fprintln(out, idStyle.Render(path))
	_, _ = fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	_, _ = fmt.Fprintln(w, titleStyle.Render("Workspace")+"\t"+titleStyle.Render("Window")+"\t"+titleStyle.Render("Tabs")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 60))

	for _, summary := range summaries {
		name := summary.ID
		if name == "" {
			name = "(default)"
		}
		if len(name) > 40 {
			name = name[:37] + "..."
		}

		for i, window := range summary.Windows {
			workspace := ""
			if i == 0 {
				workspace = workspaceStyle.Render(name)
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t\n", workspace, window.Index, countStyle.Render(strconv.Itoa(window.Tabs)))
		}
		if len(summary.Windows) == 0 {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t\n", workspaceStyle.Render(name), "—", countStyle.Render("0"))
		}
	}

	_ = w.Flush()
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, idStyle.Render("💡 Tip: Use `ftl --workspace <id> --window <index>` to export a selection"))
}

func init() {
	rootCmd.AddCommand(listCmd)
}
