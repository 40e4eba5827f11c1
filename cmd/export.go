package cmd

import (
	"bytes"
	"fmt"

	"github.com/iksnae/ftl/internal"
	"github.com/iksnae/ftl/internal/export"
	"github.com/spf13/cobra"
)

var (
	workspaces []string
	windows    []string
	target     string
	format     string
)

// runExport writes the selected tab URLs of the session to the target
func runExport(cmd *cobra.Command, args []string) error {
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}

	path, err := resolveSessionFile()
	if err != nil {
		return err
	}
	if path == "" {
		internal.LogDebug("No session directory configured, nothing to do")
		return nil
	}

	urls, err := internal.LoadURLMap(path)
	if err != nil {
		return err
	}
	selected := internal.Select(urls, workspaces, windows)
	if selected.Len() == 0 && len(workspaces) > 0 {
		internal.FprintWarning(cmd.ErrOrStderr(), "No workspace matched --workspace")
	}

	// Render fully before touching the target so a failure leaves no partial output
	var buf bytes.Buffer
	if err := exporter.Export(selected, &buf); err != nil {
		return &internal.ExportError{Format: format, Target: target, Err: err}
	}
	if err := internal.WriteOutput(buf.Bytes(), target, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if target != internal.StdoutTarget {
		internal.FprintSuccess(cmd.ErrOrStderr(), fmt.Sprintf("Exported %d workspace(s) to %s", selected.Len(), target))
	}
	internal.LogDebug("Exported %d workspace(s) from %s", selected.Len(), path)
	return nil
}

func init() {
	rootCmd.Flags().StringArrayVar(&workspaces, "workspace", nil, "A workspace whose windows' tabs' URLs should be written (repeatable)")
	rootCmd.Flags().StringArrayVar(&windows, "window", nil, "A window index whose tabs' URLs should be written (repeatable)")
	rootCmd.Flags().StringVarP(&target, "target", "t", cfg.Target, "The location to write the URL information to (- for stdout)")
	rootCmd.Flags().StringVarP(&format, "format", "f", cfg.Format, "Output format (json, yaml, jsonl, md)")
}
