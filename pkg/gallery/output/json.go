package output

import (
	"encoding/json"

	"github.com/ukaji3/gallerymatrix/pkg/gallery/models"
)

// ToJSON serializes the resolved matrix (paths and cell kinds, no image data).
func ToJSON(g *models.Gallery, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(g, "", "  ")
	}
	return json.Marshal(g)
}
