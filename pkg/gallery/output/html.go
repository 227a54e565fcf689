// Package output provides serialization of galleries.
package output

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/ukaji3/gallerymatrix/pkg/gallery/encoder"
	"github.com/ukaji3/gallerymatrix/pkg/gallery/models"
)

// Placeholder markers shown instead of images.
const (
	MarkerMissing         = "MISSING"
	MarkerOriginalMissing = "Original MISSING"
	MarkerNoModel         = "No model"
)

type pageView struct {
	*models.Gallery
	Sections []sectionView
}

type sectionView struct {
	FileName string
	Header   []string
	Cells    []cellView
}

type cellView struct {
	Kind   models.CellKind
	Label  string
	Src    template.URL
	Alt    string
	Marker string
}

// RenderHTML renders g as a self-contained HTML document.
// Every existing image is read and embedded as a data URI.
func RenderHTML(g *models.Gallery) ([]byte, error) {
	page := pageView{Gallery: g, Sections: make([]sectionView, 0, len(g.Sections))}
	for _, s := range g.Sections {
		sv, err := renderSection(g, s)
		if err != nil {
			return nil, err
		}
		page.Sections = append(page.Sections, sv)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteHTML renders g and writes the document to w in a single write.
func WriteHTML(w io.Writer, g *models.Gallery) error {
	data, err := RenderHTML(g)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func renderSection(g *models.Gallery, s models.Section) (sectionView, error) {
	sv := sectionView{
		FileName: s.FileName,
		Header:   g.Subfolders,
	}
	for _, row := range s.Rows {
		for _, c := range row.Cells {
			cv := cellView{Kind: c.Kind, Label: c.Label()}
			switch c.Kind {
			case models.CellImage:
				uri, err := encoder.EncodeFile(c.Path)
				if err != nil {
					return sectionView{}, fmt.Errorf("failed to embed %s: %w", c.Path, err)
				}
				// data: URIs are built from local bytes only.
				cv.Src = template.URL(uri)
				cv.Alt = c.Alt(s.FileName)
			case models.CellMissing:
				cv.Marker = MarkerMissing
			case models.CellOriginalMissing:
				cv.Marker = MarkerOriginalMissing
			case models.CellNoModel:
				cv.Marker = MarkerNoModel
			}
			sv.Cells = append(sv.Cells, cv)
		}
	}
	return sv, nil
}

var pageTemplate = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html lang="ja"><head><meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="viewport" content="width=device-width,initial-scale=1">
<style>
:root {
  --cell-pad: 8px;
  --card-bg: #0c1117;
  --card-bd: #1e2530;
  --missing-bg: #3f1d1d;
  --missing-bd: #7f1d1d;
  --text-dim: #a1adb9;
}
html,body{background:#0b0c10;color:#e6edf3;margin:0}
.page{max-width:1400px;margin:0 auto;padding:24px}
h1{font-size:22px;margin:0 0 8px}
.meta{font-size:12px;color:#9da7b3;margin-bottom:18px}
.block{background:#0e141b;border:1px solid #1f2630;border-radius:14px;margin:18px 0;overflow:hidden}
.block_head{display:flex;justify-content:space-between;align-items:center;padding:12px 16px;background:#111821;border-bottom:1px solid #1f2630}
.fname{font-weight:700}
.chips{font-size:12px;color:#9da7b3}
.grid{display:grid;gap:10px;padding:12px 12px 18px 12px;grid-template-columns:minmax(220px, 1fr) repeat({{len .Subfolders}}, minmax(220px, 1fr))}
.hdr{font-size:12px;color:#9cd1ff;align-self:end}
.cell{background:var(--card-bg);border:1px solid var(--card-bd);border-radius:10px;padding:var(--cell-pad)}
.label{font-size:12px;color:var(--text-dim);margin:2px 0 6px 0}
img{max-height:{{.MaxHeight}}px;max-width:100%;display:block;border-radius:6px}
.missing{font-size:12px;color:#fca5a5;padding:6px 8px;border:1px solid var(--missing-bd);background:var(--missing-bg);border-radius:6px}
.center{display:flex;align-items:center;justify-content:center;min-height:60px}
.placeholder{background:transparent;border:0}
</style>
</head><body><div class="page">
<h1>{{.Title}}</h1>
<div class="meta">Org: <code>{{.OrgDir}}</code> | Models: {{range $i, $m := .ModelDirs}}{{if $i}}, {{end}}<code>{{$m}}</code>{{end}} | Folders: {{range $i, $s := .Subfolders}}{{if $i}}, {{end}}<code>{{$s}}</code>{{end}}</div>
{{range .Sections}}<section class="block">
<div class="block_head"><div class="fname">{{.FileName}}</div><div class="chips">org + per-folder model comparison</div></div>
<div class="grid">
<div class="hdr"></div>
{{range .Header}}<div class="hdr">{{.}}</div>
{{end}}{{range .Cells}}{{template "cell" .}}
{{end}}</div>
</section>
{{end}}</div></body></html>
{{define "cell"}}{{if eq .Kind "image"}}<div class="cell"><div class="label">{{.Label}}</div><img src="{{.Src}}" alt="{{.Alt}}"></div>{{else if eq .Kind "missing"}}<div class="cell"><div class="label">{{.Label}}</div><div class="missing">{{.Marker}}</div></div>{{else if eq .Kind "placeholder"}}<div class="cell placeholder"></div>{{else}}<div class="cell center"><div class="missing">{{.Marker}}</div></div>{{end}}{{end}}`))
