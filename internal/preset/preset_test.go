package preset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if !reflect.DeepEqual(p, Preset{}) {
		t.Errorf("Load() = %+v, want zero preset", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	want := Preset{
		OutDir:   "/tmp/icons",
		EmitSyso: true,
		Recent:   []string{"a.png", "b.bmp"},
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	if err := Save(path, Preset{OutDir: "x"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind after Save()")
	}
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestAddRecent(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		add   string
		want  []string
	}{
		{"empty list", nil, "a", []string{"a"}},
		{"prepends", []string{"a"}, "b", []string{"b", "a"}},
		{"dedupes", []string{"a", "b"}, "b", []string{"b", "a"}},
		{
			"caps at eight",
			[]string{"1", "2", "3", "4", "5", "6", "7", "8"},
			"0",
			[]string{"0", "1", "2", "3", "4", "5", "6", "7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Preset{Recent: tt.start}
			p.AddRecent(tt.add)
			if !reflect.DeepEqual(p.Recent, tt.want) {
				t.Errorf("Recent = %v, want %v", p.Recent, tt.want)
			}
		})
	}
}
