package fsio

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// MemoryFS is a pure in-memory FS for tests.
type MemoryFS struct {
	files map[string][]byte
	dirs  map[string]struct{}
}

func NewMemoryFS() *MemoryFS {
	m := &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
	m.dirs["/"] = struct{}{}
	m.dirs["."] = struct{}{}
	return m
}

func clean(p string) string {
	if p == "" {
		return "."
	}
	return filepath.ToSlash(filepath.Clean(p))
}

func (m *MemoryFS) MkdirAll(p string, perm os.FileMode) error {
	p = clean(p)
	cur := ""
	if strings.HasPrefix(p, "/") {
		cur = "/"
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." {
			continue
		}
		cur = path.Join(cur, seg)
		if _, ok := m.files[cur]; ok {
			return fmt.Errorf("mkdir %s: not a directory", cur)
		}
		m.dirs[cur] = struct{}{}
	}
	return nil
}

func (m *MemoryFS) WriteFile(p string, data []byte, perm os.FileMode) error {
	p = clean(p)
	dir := path.Dir(p)
	if _, ok := m.dirs[dir]; !ok {
		return fmt.Errorf("write %s: directory %s does not exist", p, dir)
	}
	m.files[p] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryFS) ReadFile(p string) ([]byte, error) {
	data, ok := m.files[clean(p)]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryFS) Exists(p string) bool {
	p = clean(p)
	if _, ok := m.files[p]; ok {
		return true
	}
	_, ok := m.dirs[p]
	return ok
}

func (m *MemoryFS) IsDir(p string) bool {
	_, ok := m.dirs[clean(p)]
	return ok
}

// Files returns every file path, sorted, for structural assertions.
func (m *MemoryFS) Files() []string {
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Dirs returns every directory path except the roots, sorted.
func (m *MemoryFS) Dirs() []string {
	out := make([]string, 0, len(m.dirs))
	for p := range m.dirs {
		if p == "/" || p == "." {
			continue
		}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
