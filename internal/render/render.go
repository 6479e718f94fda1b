package render

import (
	"fmt"

	"github.com/dshills/teamsgen/internal/manifest"
)

// Renderer formats a run manifest into bytes for output.
type Renderer interface {
	Render(m *manifest.Manifest) ([]byte, error)
}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "text" (default), "json".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "text":
		return &textRenderer{}, nil
	case "json":
		return &jsonRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are text, json", format)
	}
}
