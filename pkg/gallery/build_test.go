package gallery

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/gallerymatrix/pkg/gallery/models"
)

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// fixture lays out org/{a,b}.png plus notes.txt and two models with three
// subfolders. modelB lacks img_bb/a.png.
func fixture(t *testing.T) (org, modelA, modelB string) {
	t.Helper()
	root := t.TempDir()
	org = filepath.Join(root, "org_img")
	modelA = filepath.Join(root, "modelA")
	modelB = filepath.Join(root, "modelB")

	writeFile(t, filepath.Join(org, "a.png"), "org-a")
	writeFile(t, filepath.Join(org, "b.png"), "org-b")
	writeFile(t, filepath.Join(org, "notes.txt"), "not an image")
	for _, sub := range DefaultSubfolders {
		for _, name := range []string{"a.png", "b.png"} {
			writeFile(t, filepath.Join(modelA, sub, name), modelA+sub+name)
			if sub == "img_bb" && name == "a.png" {
				continue
			}
			writeFile(t, filepath.Join(modelB, sub, name), modelB+sub+name)
		}
	}
	return org, modelA, modelB
}

func kinds(r models.Row) []models.CellKind {
	var out []models.CellKind
	for _, c := range r.Cells {
		out = append(out, c.Kind)
	}
	return out
}

func TestBuild(t *testing.T) {
	org, modelA, modelB := fixture(t)
	opts := DefaultOptions()
	opts.OrgDir = org
	opts.ModelDirs = []string{modelA, modelB}

	g, err := Build(opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(g.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(g.Sections))
	}
	if g.Sections[0].FileName != "a.png" || g.Sections[1].FileName != "b.png" {
		t.Errorf("Unexpected order: %s, %s", g.Sections[0].FileName, g.Sections[1].FileName)
	}
	if !reflect.DeepEqual(g.Subfolders, DefaultSubfolders) {
		t.Errorf("Expected default subfolders, got %v", g.Subfolders)
	}
	if g.Columns() != 4 {
		t.Errorf("Expected 4 columns, got %d", g.Columns())
	}

	a := g.Sections[0]
	if len(a.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(a.Rows))
	}
	// 4 columns x (header + 2 model rows)
	if n := a.CellCount(g.Columns()); n != 12 {
		t.Errorf("Expected 12 cells, got %d", n)
	}

	img, miss, ph := models.CellImage, models.CellMissing, models.CellPlaceholder
	if got := kinds(a.Rows[0]); !reflect.DeepEqual(got, []models.CellKind{img, img, img, img}) {
		t.Errorf("Row 1 kinds = %v", got)
	}
	if got := kinds(a.Rows[1]); !reflect.DeepEqual(got, []models.CellKind{ph, img, img, miss}) {
		t.Errorf("Row 2 kinds = %v", got)
	}
	if a.Rows[0].Model != "modelA" || a.Rows[1].Model != "modelB" {
		t.Errorf("Unexpected row models: %q, %q", a.Rows[0].Model, a.Rows[1].Model)
	}

	want := filepath.Join(modelB, "img_bb", "a.png")
	if got := a.Rows[1].Cells[3].Path; got != want {
		t.Errorf("Missing cell path = %q, expected %q", got, want)
	}
	if a.Rows[1].Cells[3].Label() != "modelB / img_bb" {
		t.Errorf("Unexpected label %q", a.Rows[1].Cells[3].Label())
	}
	if !filepath.IsAbs(g.OrgDir) {
		t.Errorf("OrgDir should be absolute: %s", g.OrgDir)
	}
}

func TestBuild_OriginalMissing(t *testing.T) {
	org, modelA, _ := fixture(t)
	// Org entry that is a dangling symlink is listed but does not exist.
	if err := os.Symlink(filepath.Join(org, "nowhere.png"), filepath.Join(org, "c.png")); err != nil {
		t.Skipf("Symlinks unsupported: %v", err)
	}
	writeFile(t, filepath.Join(modelA, "allResult", "c.png"), "c")

	opts := DefaultOptions()
	opts.OrgDir = org
	opts.ModelDirs = []string{modelA}
	g, err := Build(opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Dangling links are not regular files and are not discovered.
	if len(g.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(g.Sections))
	}

	if c := resolveOrg(org, "c.png"); c.Kind != models.CellOriginalMissing {
		t.Errorf("Expected original missing, got %s", c.Kind)
	}
	cells := resolveModel(modelA, "modelA", DefaultSubfolders, "c.png")
	if got := []models.CellKind{cells[0].Kind, cells[1].Kind, cells[2].Kind}; !reflect.DeepEqual(got,
		[]models.CellKind{models.CellImage, models.CellMissing, models.CellMissing}) {
		t.Errorf("Model cells for missing original = %v", got)
	}
}

func TestBuild_NoModels(t *testing.T) {
	org, _, _ := fixture(t)
	opts := DefaultOptions()
	opts.OrgDir = org
	opts.Subfolders = []string{"x", "y"}

	g, err := Build(opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for _, s := range g.Sections {
		if len(s.Rows) != 1 {
			t.Fatalf("Expected 1 row, got %d", len(s.Rows))
		}
		want := []models.CellKind{models.CellImage, models.CellNoModel, models.CellNoModel}
		if got := kinds(s.Rows[0]); !reflect.DeepEqual(got, want) {
			t.Errorf("Row kinds = %v, expected %v", got, want)
		}
	}
}

func TestBuild_InvalidDirs(t *testing.T) {
	org, modelA, _ := fixture(t)
	file := filepath.Join(org, "a.png")
	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name  string
		org   string
		model []string
		role  string
		path  string
	}{
		{"org missing", missing, []string{modelA}, RoleOrg, missing},
		{"org is file", file, []string{modelA}, RoleOrg, file},
		{"model missing", org, []string{modelA, missing}, RoleModel, missing},
		{"model is file", org, []string{file}, RoleModel, file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.OrgDir = tt.org
			opts.ModelDirs = tt.model
			_, err := Build(opts)
			if !errors.Is(err, ErrNotDirectory) {
				t.Fatalf("Expected ErrNotDirectory, got %v", err)
			}
			var de *DirError
			if !errors.As(err, &de) {
				t.Fatalf("Expected *DirError, got %T", err)
			}
			if de.Role != tt.role || de.Path != tt.path {
				t.Errorf("DirError = %+v, expected role %s path %s", de, tt.role, tt.path)
			}
		})
	}
}

func TestDirErrorMessage(t *testing.T) {
	err := NewDirError(RoleOrg, "/x", nil)
	if got := err.Error(); got != "org dir not found or not a directory: /x" {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidate_MaxHeight(t *testing.T) {
	org, modelA, _ := fixture(t)
	opts := Options{OrgDir: org, ModelDirs: []string{modelA}}
	if err := opts.Validate(); err == nil {
		t.Error("Expected error for zero max height")
	}
}

func TestSubfolderList(t *testing.T) {
	if got := (Options{}).SubfolderList(); !reflect.DeepEqual(got, DefaultSubfolders) {
		t.Errorf("SubfolderList = %v", got)
	}
	if got := (Options{Subfolders: []string{"a"}}).SubfolderList(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("SubfolderList = %v", got)
	}
}
