// Package models defines data structures for comparison galleries.
package models

// CellKind identifies how a grid cell is rendered.
type CellKind string

const (
	// CellImage is an existing image file embedded as a data URI.
	CellImage CellKind = "image"
	// CellMissing is a model image that does not exist on disk.
	CellMissing CellKind = "missing"
	// CellOriginalMissing is a reference image that does not exist on disk.
	CellOriginalMissing CellKind = "original_missing"
	// CellNoModel fills model columns when no model directories are given.
	CellNoModel CellKind = "no_model"
	// CellPlaceholder is the empty org column below the first row.
	CellPlaceholder CellKind = "placeholder"
)

// OrgLabel is the label shown above reference images.
const OrgLabel = "org_img"

// Cell represents a single grid cell.
type Cell struct {
	// Kind selects the rendering.
	Kind CellKind `json:"kind"`
	// Path is the on-disk path the cell resolves to (empty for placeholders).
	Path string `json:"path,omitempty"`
	// Model is the model label; empty for the org column.
	Model string `json:"model,omitempty"`
	// Subfolder is the subfolder name; empty for the org column.
	Subfolder string `json:"subfolder,omitempty"`
}

// Label returns the caption drawn above the cell content.
func (c Cell) Label() string {
	switch {
	case c.Kind == CellPlaceholder || c.Kind == CellNoModel || c.Kind == CellOriginalMissing:
		return ""
	case c.Model == "":
		return OrgLabel
	default:
		return c.Model + " / " + c.Subfolder
	}
}

// Alt returns the alt text for an embedded image of the given file name.
func (c Cell) Alt(fileName string) string {
	if c.Model == "" {
		return "org:" + fileName
	}
	return c.Model + "/" + c.Subfolder + ":" + fileName
}
