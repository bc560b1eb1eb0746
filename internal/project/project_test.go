package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMissing(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	file := filepath.Join(dirA, "pyproject.toml")
	if err := os.WriteFile(file, []byte("[tool.poetry]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	gone := filepath.Join(dirA, "does-not-exist")

	tests := []struct {
		name     string
		projects []string
		want     []string
	}{
		{
			name:     "empty list",
			projects: nil,
			want:     nil,
		},
		{
			name:     "all directories",
			projects: []string{dirA, dirB},
			want:     nil,
		},
		{
			name:     "one missing",
			projects: []string{dirA, gone},
			want:     []string{gone},
		},
		{
			name:     "regular file is not a project",
			projects: []string{file},
			want:     []string{file},
		},
		{
			name:     "order preserved",
			projects: []string{gone, dirB, file, dirA},
			want:     []string{gone, file},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Missing(tt.projects)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Missing(%v) = %v, want %v", tt.projects, got, tt.want)
			}
		})
	}
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	if !IsDir(dir) {
		t.Errorf("IsDir(%q) = false, want true", dir)
	}
	if IsDir(filepath.Join(dir, "nope")) {
		t.Error("IsDir on a nonexistent path = true, want false")
	}
}
