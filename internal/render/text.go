package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/dshills/teamsgen/internal/manifest"
)

type textRenderer struct{}

var textTemplate = template.Must(template.New("manifest").Parse(`{{ .Tool }} {{ .Version }} — run manifest
Config:  {{ .Input.ConfigFile }}
Root:    {{ .Input.Root }}
Project: {{ .Input.Project }} / {{ .Input.Item }}
Date:    {{ .Input.RunDate }}{{ if .Input.Plain }} (plain text mode){{ end }}

Directories: {{ .Summary.DirCount }}
Files:       {{ .Summary.FileCount }} ({{ .Summary.RichCount }} rich, {{ .Summary.DegradedCount }} degraded, {{ .Summary.PlaceholderCount }} placeholder)
{{ range .Entries }}{{ if eq .Kind "file" }}  {{ .Path }} [{{ .Artifact }}/{{ .Outcome }}]
{{ end }}{{ end }}`))

func (r *textRenderer) Render(m *manifest.Manifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := textTemplate.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("rendering text manifest: %w", err)
	}
	return buf.Bytes(), nil
}
