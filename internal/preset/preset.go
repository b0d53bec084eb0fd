// Package preset persists converter defaults and recent conversions as a
// small JSON file shared by the icopack tools.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Preset holds the settings the converter applies when flags don't
// override them.
type Preset struct {
	OutDir   string   `json:"out_dir,omitempty"`
	EmitSyso bool     `json:"emit_syso,omitempty"`
	Recent   []string `json:"recent,omitempty"`
}

const maxRecent = 8

// DefaultPath returns the per-user preset location: LocalAppData on
// Windows, the user config dir elsewhere.
func DefaultPath() string {
	dir := os.Getenv("LocalAppData")
	if dir == "" {
		dir, _ = os.UserConfigDir()
	}
	return filepath.Join(dir, "icopack", "preset.json")
}

// Load reads the preset at path. A missing file is not an error; it yields
// the zero preset.
func Load(path string) (Preset, error) {
	var p Preset
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("preset %s: %w", path, err)
	}
	return p, nil
}

// Save writes the preset atomically: to a .tmp sibling first, then renamed
// over path.
func Save(path string, p Preset) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// AddRecent records a converted file at the front of the recent list,
// dropping duplicates and trimming to the cap.
func (p *Preset) AddRecent(path string) {
	out := []string{path}
	for _, r := range p.Recent {
		if r != path && len(out) < maxRecent {
			out = append(out, r)
		}
	}
	p.Recent = out
}
