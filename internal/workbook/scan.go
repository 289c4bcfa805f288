package workbook

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ScanDirectory walks root and returns the .xlsx and .csv files in it,
// skipping Office lock files ("~$...") and directories matching excludePatterns.
func ScanDirectory(root string, excludePatterns []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == ".svn" {
				return filepath.SkipDir
			}

			// Normalize path for matching (forward slashes)
			relPath, _ := filepath.Rel(root, path)
			relPath = filepath.ToSlash(relPath)

			for _, pat := range excludePatterns {
				if matchGlob(relPath, pat) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), "~$") {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".xlsx", ".xlsm", ".csv":
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	return files, nil
}

// matchGlob supports "**/name/**" style patterns and plain path globs
func matchGlob(path, pattern string) bool {
	if strings.Contains(pattern, "**") {
		clean := strings.Trim(strings.ReplaceAll(pattern, "**", ""), "/")
		if clean == "" {
			return false
		}
		for _, seg := range strings.Split(path, "/") {
			if seg == clean {
				return true
			}
		}
		return false
	}
	ok, _ := filepath.Match(pattern, path)
	return ok
}
