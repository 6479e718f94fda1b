package render

import (
	"encoding/json"

	"github.com/dshills/teamsgen/internal/manifest"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(m *manifest.Manifest) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
