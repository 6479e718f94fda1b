// Package fsio abstracts the filesystem operations the generator performs,
// so generation runs can be exercised entirely in memory.
package fsio

import "os"

// FS is the write surface the structure generator uses.
type FS interface {
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(path string, data []byte, perm os.FileMode) error
	ReadFile(path string) ([]byte, error)
	Exists(path string) bool
	IsDir(path string) bool
}

// OSFS is the production implementation backed by the standard library.
type OSFS struct{}

func NewOSFS() *OSFS {
	return &OSFS{}
}

func (f *OSFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (f *OSFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (f *OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (f *OSFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
