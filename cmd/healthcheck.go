package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/ftl/internal"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check if ftl can locate and read the Firefox session",
	Long: `Check the health of ftl by verifying:
  • Firefox directory detection
  • Session (profile) directory discovery
  • Session file availability
  • Session file decoding and tab counts

Without --session-dir, the newest profile under --firefox-dir is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHealthcheck(cmd.OutOrStdout())
	},
}

func runHealthcheck(out io.Writer) error {
	_, _ = fmt.Fprintln(out, sectionStyle.Render("🔍 ftl Health Check"))
	_, _ = fmt.Fprintln(out)

	// Step 1: Find the session directory
	_, _ = fmt.Fprintln(out, infoStyle.Render("Step 1: Locating session directory..."))
	dir := sessionDir
	if dir != "" && !findSessionDir {
		if err := internal.ValidateSessionDirectory(dir); err != nil {
			_, _ = fmt.Fprintln(out, errorStyle.Render("❌ Session directory is not usable:"), err)
			return fmt.Errorf("health check failed: %w", err)
		}
	} else {
		if info, err := os.Stat(firefoxDir); err != nil || !info.IsDir() {
			_, _ = fmt.Fprintln(out, errorStyle.Render("❌ Firefox directory not found:"), firefoxDir)
			return fmt.Errorf("health check failed: firefox directory %s not found", firefoxDir)
		}
		found, err := internal.FindNewestSessionDirectory(firefoxDir, sessionPattern)
		if err != nil {
			_, _ = fmt.Fprintln(out, errorStyle.Render("❌ No session directory found:"), err)
			return fmt.Errorf("health check failed: %w", err)
		}
		dir = found
	}
	_, _ = fmt.Fprintln(out, successStyle.Render("✅ Session directory found"))
	if verbose {
		_, _ = fmt.Fprintf(out, "   Directory: %s\n", dir)
	}
	_, _ = fmt.Fprintln(out)

	// Step 2: Check the session file
	_, _ = fmt.Fprintln(out, infoStyle.Render("Step 2: Checking session file..."))
	path := internal.SessionFilePath(dir)
	info, err := os.Stat(path)
	if err != nil {
		_, _ = fmt.Fprintln(out, errorStyle.Render("❌ Session file not found"))
		_, _ = fmt.Fprintf(out, "   Expected: %s\n", path)
		_, _ = fmt.Fprintln(out, "   Firefox writes this file while it is running with session restore enabled.")
		return fmt.Errorf("health check failed: %w", &internal.FileAccessError{Path: path, Op: "stat", Err: err})
	}
	_, _ = fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Session file found (%d bytes)", info.Size())))
	if verbose {
		_, _ = fmt.Fprintf(out, "   File: %s\n", path)
		_, _ = fmt.Fprintf(out, "   Modified: %s\n", info.ModTime().Format("2006-01-02 15:04:05"))
	}
	_, _ = fmt.Fprintln(out)

	// Step 3: Decode the session
	_, _ = fmt.Fprintln(out, infoStyle.Render("Step 3: Decoding session data..."))
	urls, err := internal.LoadURLMap(path)
	if err != nil {
		_, _ = fmt.Fprintln(out, errorStyle.Render("❌ Failed to read session:"), err)
		return fmt.Errorf("health check failed: %w", err)
	}

	summaries := internal.Summarize(urls)
	windowCount, tabCount := 0, 0
	for _, s := range summaries {
		windowCount += len(s.Windows)
		tabCount += s.TabCount()
	}
	_, _ = fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Decoded %d workspace(s), %d window(s), %d tab(s)", len(summaries), windowCount, tabCount)))
	_, _ = fmt.Fprintln(out)

	// Summary
	_, _ = fmt.Fprintln(out, sectionStyle.Render("📊 Summary"))
	_, _ = fmt.Fprintln(out)
	if tabCount == 0 {
		_, _ = fmt.Fprintln(out, warningStyle.Render("⚠️  Session readable but no tabs found"))
		return nil
	}
	_, _ = fmt.Fprintln(out, successStyle.Render("✅ Health check passed!"))
	return nil
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
