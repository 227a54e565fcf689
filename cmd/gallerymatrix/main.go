// Package main provides the CLI entry point for gallerymatrix.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/gallerymatrix/pkg/gallery"
	"github.com/ukaji3/gallerymatrix/pkg/gallery/output"
)

type cliOptions struct {
	orgDir       string
	modelDirs    []string
	folders      []string
	outputPath   string
	title        string
	maxHeight    int
	manifestPath string
	pretty       bool
	reportPath   string
	verbose      bool
}

// multiValueFlags accept several space-separated values after the flag.
var multiValueFlags = []string{"models", "folders"}

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(expandMultiValueArgs(os.Args[1:], multiValueFlags))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &cliOptions{}
	cmd := &cobra.Command{
		Use:   "gallerymatrix --org DIR --models DIR... --out FILE",
		Short: "Build an HTML gallery comparing model outputs",
		Long: `gallerymatrix renders a single self-contained HTML page comparing
reference images with per-model result subfolders. All images are embedded
as base64 data URIs.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.orgDir, "org", "", "Path to org_img directory")
	f.StringSliceVar(&o.modelDirs, "models", nil, "Model directories (order matters)")
	f.StringSliceVar(&o.folders, "folders", nil, "Subfolders to compare (default: allResult est_center_map img_bb)")
	f.StringVar(&o.outputPath, "out", "", "Output HTML file")
	f.StringVar(&o.title, "title", gallery.DefaultTitle, "HTML title")
	f.IntVar(&o.maxHeight, "max-height", gallery.DefaultMaxHeight, "Max image height (px), must be positive")
	f.StringVar(&o.manifestPath, "manifest", "", "Also write a JSON manifest of the resolved matrix")
	f.BoolVar(&o.pretty, "pretty", false, "Pretty-print the JSON manifest")
	f.StringVar(&o.reportPath, "report", "", "Also write an xlsx coverage report")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Log missing images and progress")
	for _, name := range []string{"org", "models", "out"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func run(cmd *cobra.Command, o *cliOptions) error {
	if len(o.modelDirs) == 0 {
		return errors.New("at least one model directory is required (--models)")
	}
	log := newLogger(cmd.ErrOrStderr(), o.verbose)

	opts := gallery.DefaultOptions()
	opts.OrgDir = o.orgDir
	opts.ModelDirs = o.modelDirs
	opts.Subfolders = o.folders
	opts.Title = o.title
	opts.MaxHeight = o.maxHeight
	opts.Logger = log

	// Resolve the matrix; fails before anything is written
	g, err := gallery.Build(opts)
	if err != nil {
		return err
	}

	// Render the whole document before touching the output path
	data, err := output.RenderHTML(g)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if err := writeFile(o.outputPath, data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.WithFields(logrus.Fields{
		"sections": len(g.Sections),
		"bytes":    len(data),
	}).Debug("Gallery written")

	if o.manifestPath != "" {
		jsonData, err := output.ToJSON(g, o.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := writeFile(o.manifestPath, jsonData); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
	}

	if o.reportPath != "" {
		if err := os.MkdirAll(filepath.Dir(o.reportPath), 0755); err != nil {
			return err
		}
		if err := output.WriteReport(g, o.reportPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "[OK] Wrote: %s\n", o.outputPath)
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
