package file

import (
	"fmt"
	"os"
	"path/filepath"
)

// ListJSON returns the full paths of all regular entries in dir whose name
// ends in ".json" (exact, case-sensitive extension match), in directory
// order. Subdirectories are not descended into. An empty slice with a nil
// error means the directory exists but holds no matching files.
func ListJSON(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) != ".json" {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}
