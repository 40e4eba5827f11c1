package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/ftl/internal"
	"github.com/iksnae/ftl/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose        bool
	sessionDir     string
	findSessionDir bool
	firefoxDir     string
	sessionPattern string
	version        string = "dev"
	commit         string = "unknown"
	date           string = "unknown"

	cfg = config.LoadOrDefault()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ftl",
	Short: "Write Firefox tab URLs out in JSON format",
	Long: `ftl reads Firefox's session recovery file and writes the URL of every open
tab, grouped by workspace and window.

The session file lives in a Firefox profile directory. Pass the directory
with --session-dir, or let ftl pick the most recently used profile with
--find-session-dir. If neither is given, ftl does nothing.

Output is a JSON object mapping workspace IDs to windows, and window indices
to the current URL of each tab:

  {
      "workspace-id": {
          "0": ["https://example.com/", "https://golang.org/"]
      }
  }

Quick Start:
  ftl --find-session-dir                        # All tabs of the newest profile
  ftl --find-session-dir --window 0             # Only the first window of each workspace
  ftl --session-dir ~/.mozilla/firefox/abc.default --target tabs.json
  ftl list --find-session-dir                   # Summary of workspaces and windows

Environment:
  FTL_FIREFOX_DIR      default for --firefox-dir
  FTL_SESSION_PATTERN  default for --pattern
  FTL_FORMAT           default for --format
  FTL_TARGET           default for --target`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
	RunE: runExport,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		internal.PrintError(err.Error())
		os.Exit(1)
	}
}

// resolveSessionFile returns the session file selected by the flags, or ""
// when neither --session-dir nor --find-session-dir is given
func resolveSessionFile() (string, error) {
	var dir string
	switch {
	case findSessionDir:
		found, err := internal.FindNewestSessionDirectory(firefoxDir, sessionPattern)
		if err != nil {
			return "", fmt.Errorf("failed to find session directory: %w", err)
		}
		dir = found
	case sessionDir != "":
		if err := internal.ValidateSessionDirectory(sessionDir); err != nil {
			return "", fmt.Errorf("invalid session directory: %w", err)
		}
		dir = sessionDir
	default:
		return "", nil
	}

	return internal.SessionFilePath(dir), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&sessionDir, "session-dir", "", "A Firefox session (profile) directory to get URL information from")
	rootCmd.PersistentFlags().BoolVar(&findSessionDir, "find-session-dir", false, "Automatically use the most recently modified session directory")
	rootCmd.PersistentFlags().StringVar(&firefoxDir, "firefox-dir", cfg.FirefoxDir, "The directory searched to find the session directory")
	rootCmd.PersistentFlags().StringVar(&sessionPattern, "pattern", cfg.SessionPattern, "Glob pattern session directory names must match")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
