// Package main provides the entry point for the opml2md CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/starikov/sitetools/internal/opml"
)

// NewRootCmd creates the root command for opml2md.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "opml2md [file.opml] [title]",
		Short: "Convert an OPML file of RSS feeds to Markdown",
		Long: `opml2md converts an OPML subscription list into a Markdown document.

Feeds are grouped by the outline folder they sit in; feeds outside any
folder land in the "Misc" category. Each feed becomes a bullet with its
homepage and RSS links.

Examples:
  # Convert to stdout
  opml2md feeds.opml > starter-pack.md

  # Override the document title
  opml2md feeds.opml "My Feeds"
  opml2md --title "My Feeds" feeds.opml

  # Write directly to a file
  opml2md -o starter-pack.md feeds.opml`,
		Args:          cobra.RangeArgs(1, 2),
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runConvertCmd,
	}

	cmd.Flags().StringP("title", "T", "",
		"Override the Markdown document title")
	cmd.Flags().StringP("output", "o", "",
		"Write Markdown to specified file path (creates directories if needed)")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runConvertCmd executes the conversion.
func runConvertCmd(cmd *cobra.Command, args []string) error {
	title, err := cmd.Flags().GetString("title")
	if err != nil {
		return err
	}
	// Positional title wins over the flag, matching the classic
	// "opml2md file.opml My Title" invocation.
	if len(args) == 2 {
		title = args[1]
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open OPML file: %w", err)
	}
	defer f.Close()

	collection, err := opml.Parse(f)
	if err != nil {
		return err
	}

	output, cleanup, err := openOutput(cmd, outputPath)
	if err != nil {
		return err
	}
	defer cleanup()

	return opml.Render(output, collection, title)
}

// openOutput returns the destination writer: the output file when one is
// requested, the command's stdout otherwise.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
