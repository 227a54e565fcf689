// Package gallery builds model comparison galleries from image directories.
package gallery

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultSubfolders are compared when Options.Subfolders is empty.
var DefaultSubfolders = []string{"allResult", "est_center_map", "img_bb"}

const (
	// DefaultTitle is the document title used when none is given.
	DefaultTitle = "Model Comparison Matrix"
	// DefaultMaxHeight is the maximum displayed image height in pixels.
	DefaultMaxHeight = 420
)

// Options configures gallery building.
type Options struct {
	// OrgDir holds the reference images.
	OrgDir string
	// ModelDirs are the result directories, first model on the first row.
	ModelDirs []string
	// Subfolders are compared under each model directory.
	// If empty, DefaultSubfolders is used.
	Subfolders []string
	// Title is the document title.
	Title string
	// MaxHeight is the maximum displayed image height in pixels.
	MaxHeight int
	// Logger receives progress and missing-file events. If nil, nothing is logged.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default gallery options.
func DefaultOptions() Options {
	return Options{
		Title:     DefaultTitle,
		MaxHeight: DefaultMaxHeight,
	}
}

// SubfolderList returns the subfolders to compare.
func (o Options) SubfolderList() []string {
	if len(o.Subfolders) > 0 {
		return append([]string(nil), o.Subfolders...)
	}
	return append([]string(nil), DefaultSubfolders...)
}

// Validate checks that every input directory exists before any processing.
func (o Options) Validate() error {
	if err := checkDir(RoleOrg, o.OrgDir); err != nil {
		return err
	}
	for _, m := range o.ModelDirs {
		if err := checkDir(RoleModel, m); err != nil {
			return err
		}
	}
	if o.MaxHeight <= 0 {
		return fmt.Errorf("max height must be positive: %d", o.MaxHeight)
	}
	return nil
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func checkDir(role, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return NewDirError(role, path, err)
	}
	if !info.IsDir() {
		return NewDirError(role, path, nil)
	}
	return nil
}
