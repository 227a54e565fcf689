package models

// Gallery is the resolved comparison matrix for one render pass.
type Gallery struct {
	// Title is the document title.
	Title string `json:"title"`
	// OrgDir is the absolute reference directory.
	OrgDir string `json:"org_dir"`
	// ModelDirs are the absolute model directories in input order.
	ModelDirs []string `json:"model_dirs"`
	// Subfolders are the compared subfolder names in column order.
	Subfolders []string `json:"subfolders"`
	// MaxHeight is the maximum displayed image height in pixels.
	MaxHeight int `json:"max_height"`
	// Sections holds one entry per reference file name, sorted.
	Sections []Section `json:"sections"`
}

// Columns returns the column count shared by every row.
func (g *Gallery) Columns() int {
	return 1 + len(g.Subfolders)
}

// Section is the block rendered for one reference file name.
type Section struct {
	// FileName is the reference image name (no path).
	FileName string `json:"file_name"`
	// Rows are the grid rows below the header, first model first.
	Rows []Row `json:"rows"`
}

// Row is one grid row: the org column followed by one cell per subfolder.
type Row struct {
	// Model is the model label, empty when no models were given.
	Model string `json:"model,omitempty"`
	// Cells has exactly Gallery.Columns() entries.
	Cells []Cell `json:"cells"`
}

// CellCount returns the number of grid cells in the section, header included.
func (s Section) CellCount(columns int) int {
	n := columns
	for _, r := range s.Rows {
		n += len(r.Cells)
	}
	return n
}
