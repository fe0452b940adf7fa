package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PrintFile describes one queued file available to print.
type PrintFile struct {
	Name string
	Size int64
}

// allowedExtensions are the file types the printer accepts.
var allowedExtensions = map[string]struct{}{
	".3mf":   {},
	".gcode": {},
}

// List scans dir for printable files, sorted by name. A missing
// directory yields an empty list rather than an error: the server
// creates it lazily and the panel has nothing to show until then.
func List(dir string) ([]PrintFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read print files dir: %w", err)
	}

	var out []PrintFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := allowedExtensions[ext]; !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, PrintFile{Name: entry.Name(), Size: info.Size()})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// FormatSize renders a byte count for the file picker.
func FormatSize(size int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)
	switch {
	case size >= mb:
		return fmt.Sprintf("%.1f MB", float64(size)/mb)
	case size >= kb:
		return fmt.Sprintf("%.1f KB", float64(size)/kb)
	default:
		return fmt.Sprintf("%d B", size)
	}
}
