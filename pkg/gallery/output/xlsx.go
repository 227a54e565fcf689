package output

import (
	"fmt"

	"github.com/ukaji3/gallerymatrix/pkg/gallery/models"
	"github.com/xuri/excelize/v2"
)

// Report sheet names.
const (
	CoverageSheet = "Coverage"
	SummarySheet  = "Summary"
)

// Coverage cell values.
const (
	StatusOK = "ok"
	// StatusNone marks the empty org column under the first row.
	StatusNone = "-"
)

// WriteReport writes an xlsx coverage workbook for g to path.
// The Coverage sheet has one row per section row; the Summary sheet counts
// present and missing images per model and subfolder.
func WriteReport(g *models.Gallery, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CoverageSheet); err != nil {
		return err
	}
	if err := writeCoverage(f, g); err != nil {
		return fmt.Errorf("coverage sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	if err := writeSummary(f, g); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}
	return f.SaveAs(path)
}

// CellStatus returns the report value for c.
func CellStatus(c models.Cell) string {
	switch c.Kind {
	case models.CellImage:
		return StatusOK
	case models.CellMissing:
		return MarkerMissing
	case models.CellOriginalMissing:
		return MarkerOriginalMissing
	case models.CellNoModel:
		return MarkerNoModel
	default:
		return StatusNone
	}
}

func writeCoverage(f *excelize.File, g *models.Gallery) error {
	header := []interface{}{"file", "model", models.OrgLabel}
	for _, sub := range g.Subfolders {
		header = append(header, sub)
	}
	if err := f.SetSheetRow(CoverageSheet, "A1", &header); err != nil {
		return err
	}

	r := 2
	for _, s := range g.Sections {
		for _, row := range s.Rows {
			values := []interface{}{s.FileName, row.Model}
			for _, c := range row.Cells {
				values = append(values, CellStatus(c))
			}
			cell, err := excelize.CoordinatesToCellName(1, r)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(CoverageSheet, cell, &values); err != nil {
				return err
			}
			r++
		}
	}

	return setPrintArea(f, CoverageSheet, len(header), r-1)
}

// setPrintArea registers A1 through (cols, rows) as the sheet's print area.
func setPrintArea(f *excelize.File, sheet string, cols, rows int) error {
	end, err := excelize.CoordinatesToCellName(cols, rows, true)
	if err != nil {
		return err
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("'%s'!$A$1:%s", sheet, end),
		Scope:    sheet,
	})
}

// countKey identifies a summary line. row is the section row index, which
// is also the model index; -1 is the org column.
type countKey struct {
	row       int
	subfolder string
}

func writeSummary(f *excelize.File, g *models.Gallery) error {
	header := []interface{}{"model", "directory", "subfolder", "present", "missing"}
	if err := f.SetSheetRow(SummarySheet, "A1", &header); err != nil {
		return err
	}

	present := make(map[countKey]int)
	missing := make(map[countKey]int)
	labels := make(map[countKey]string)
	var keys []countKey
	for _, s := range g.Sections {
		for r, row := range s.Rows {
			for i, c := range row.Cells {
				var k countKey
				switch c.Kind {
				case models.CellImage, models.CellMissing, models.CellOriginalMissing:
					if i == 0 {
						k = countKey{row: -1}
					} else {
						k = countKey{row: r, subfolder: c.Subfolder}
					}
				default:
					continue
				}
				if _, ok := labels[k]; !ok {
					labels[k] = c.Model
					keys = append(keys, k)
				}
				if c.Kind == models.CellImage {
					present[k]++
				} else {
					missing[k]++
				}
			}
		}
	}

	for i, k := range keys {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		label, dir := labels[k], g.OrgDir
		if k.row < 0 {
			label = models.OrgLabel
		} else if k.row < len(g.ModelDirs) {
			dir = g.ModelDirs[k.row]
		}
		values := []interface{}{label, dir, k.subfolder, present[k], missing[k]}
		if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
