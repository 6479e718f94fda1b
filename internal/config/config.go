package config

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config holds the validated generation parameters from an INI file.
type Config struct {
	Path        string
	RootPath    string
	ProjectName string
	ItemName    string
	Titles      map[string]string // [title] section, key -> display title
}

// Required sections and keys; validation reports the first missing identifier.
var required = []struct {
	section string
	keys    []string
}{
	{section: "Paths", keys: []string{"sample_teams_root"}},
	{section: "Project", keys: []string{"project_name", "item_name"}},
	{section: "title", keys: nil}, // title keys are looked up lazily with a fallback
}

// Load reads an INI configuration file and validates that every required
// section and key is present. On a missing identifier the error names it
// exactly; nothing is created on disk before validation passes.
func Load(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	for _, req := range required {
		sec, err := f.GetSection(req.section)
		if err != nil {
			return nil, fmt.Errorf("config %s: missing required section [%s]", path, req.section)
		}
		for _, key := range req.keys {
			if !sec.HasKey(key) {
				return nil, fmt.Errorf("config %s: missing required key %q in section [%s]", path, key, req.section)
			}
		}
	}

	root := strings.TrimSpace(f.Section("Paths").Key("sample_teams_root").String())
	project := strings.TrimSpace(f.Section("Project").Key("project_name").String())
	item := strings.TrimSpace(f.Section("Project").Key("item_name").String())

	if root == "" {
		return nil, fmt.Errorf("config %s: key \"sample_teams_root\" in section [Paths] is empty", path)
	}
	if project == "" {
		return nil, fmt.Errorf("config %s: key \"project_name\" in section [Project] is empty", path)
	}
	if item == "" {
		return nil, fmt.Errorf("config %s: key \"item_name\" in section [Project] is empty", path)
	}

	return &Config{
		Path:        path,
		RootPath:    root,
		ProjectName: project,
		ItemName:    item,
		Titles:      f.Section("title").KeysHash(),
	}, nil
}

// Title returns the display title for a lookup key, falling back to the
// given stem when the [title] section has no entry for it.
func (c *Config) Title(key, fallback string) string {
	if t, ok := c.Titles[key]; ok && strings.TrimSpace(t) != "" {
		return t
	}
	return fallback
}
