// Package models enumerates brick meshes stored as <root>/<brick>/<file>.stl.
package models

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ext is the suffix of mesh files that are listed.
const Ext = ".stl"

// Entry is one mesh file. Name is the subdirectory it was found in.
type Entry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Scan lists every .stl file one level below root, grouped by subdirectory name.
// Files directly in root are ignored. Entries are sorted by name, then path.
func Scan(root string) ([]Entry, error) {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirs))
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		sub := filepath.Join(root, d.Name())
		files, err := os.ReadDir(sub)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", sub, err)
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), Ext) {
				continue
			}
			entries = append(entries, Entry{Name: d.Name(), Path: filepath.Join(sub, f.Name())})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}
