package gallery

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/gallerymatrix/pkg/gallery/models"
	"github.com/ukaji3/gallerymatrix/pkg/gallery/scanner"
)

// Build validates opts and resolves the comparison matrix.
// Image bytes are not read here; see output.RenderHTML.
func Build(opts Options) (*models.Gallery, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	orgDir, err := filepath.Abs(opts.OrgDir)
	if err != nil {
		return nil, err
	}
	modelDirs := make([]string, len(opts.ModelDirs))
	labels := make([]string, len(opts.ModelDirs))
	for i, m := range opts.ModelDirs {
		if modelDirs[i], err = filepath.Abs(m); err != nil {
			return nil, err
		}
		labels[i] = filepath.Base(modelDirs[i])
	}

	fileNames, err := scanner.ListImages(orgDir)
	if err != nil {
		return nil, NewDirError(RoleOrg, opts.OrgDir, err)
	}
	log.WithFields(logrus.Fields{
		"org":    orgDir,
		"images": len(fileNames),
		"models": len(modelDirs),
	}).Debug("Discovered reference images")

	subfolders := opts.SubfolderList()
	g := &models.Gallery{
		Title:      opts.Title,
		OrgDir:     orgDir,
		ModelDirs:  modelDirs,
		Subfolders: subfolders,
		MaxHeight:  opts.MaxHeight,
		Sections:   make([]models.Section, 0, len(fileNames)),
	}

	for _, name := range fileNames {
		section := models.Section{FileName: name}

		// Row 1: org image next to the first model
		first := models.Row{Cells: []models.Cell{resolveOrg(orgDir, name)}}
		if len(modelDirs) == 0 {
			for range subfolders {
				first.Cells = append(first.Cells, models.Cell{Kind: models.CellNoModel})
			}
		} else {
			first.Model = labels[0]
			first.Cells = append(first.Cells, resolveModel(modelDirs[0], labels[0], subfolders, name)...)
		}
		section.Rows = append(section.Rows, first)

		// Rows 2..: remaining models under an empty org column
		for i := 1; i < len(modelDirs); i++ {
			row := models.Row{
				Model: labels[i],
				Cells: []models.Cell{{Kind: models.CellPlaceholder}},
			}
			row.Cells = append(row.Cells, resolveModel(modelDirs[i], labels[i], subfolders, name)...)
			section.Rows = append(section.Rows, row)
		}

		log.WithFields(logrus.Fields{
			"file":  name,
			"rows":  len(section.Rows),
			"cells": section.CellCount(g.Columns()),
		}).Debug("Resolved section")
		logMissing(log, section)
		g.Sections = append(g.Sections, section)
	}

	return g, nil
}

func resolveOrg(orgDir, name string) models.Cell {
	p := filepath.Join(orgDir, name)
	if exists(p) {
		return models.Cell{Kind: models.CellImage, Path: p}
	}
	return models.Cell{Kind: models.CellOriginalMissing, Path: p}
}

func resolveModel(dir, label string, subfolders []string, name string) []models.Cell {
	cells := make([]models.Cell, 0, len(subfolders))
	for _, sub := range subfolders {
		c := models.Cell{
			Kind:      models.CellMissing,
			Path:      filepath.Join(dir, sub, name),
			Model:     label,
			Subfolder: sub,
		}
		if exists(c.Path) {
			c.Kind = models.CellImage
		}
		cells = append(cells, c)
	}
	return cells
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func logMissing(log logrus.FieldLogger, s models.Section) {
	for _, row := range s.Rows {
		for _, c := range row.Cells {
			if c.Kind != models.CellMissing && c.Kind != models.CellOriginalMissing {
				continue
			}
			log.WithFields(logrus.Fields{
				"file":      s.FileName,
				"model":     c.Model,
				"subfolder": c.Subfolder,
				"path":      c.Path,
			}).Debug("Image missing")
		}
	}
}
