package depot

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// labelPattern is the fixed filename filter for product label candidates.
const labelPattern = "*.xml"

// candidateFiles enumerates label candidates under root, optionally
// recursing. Symbolic links to files and directories are followed, with
// resolved-path tracking so link cycles terminate.
func candidateFiles(root string, recursive bool) ([]string, error) {
	expanded, err := expandUser(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	visited := make(map[string]struct{})
	var out []string

	var walk func(dir string) error
	walk = func(dir string) error {
		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil {
			return err
		}
		if _, seen := visited[resolved]; seen {
			return nil
		}
		visited[resolved] = struct{}{}

		dirents, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, dirent := range dirents {
			path := filepath.Join(dir, dirent.Name())
			isDir := dirent.IsDir()
			if dirent.Type()&fs.ModeSymlink != 0 {
				target, err := os.Stat(path)
				if err != nil {
					// dangling link
					continue
				}
				isDir = target.IsDir()
			}
			if isDir {
				if recursive {
					if err := walk(path); err != nil {
						return err
					}
				}
				continue
			}
			if matched, _ := filepath.Match(labelPattern, dirent.Name()); matched {
				out = append(out, path)
			}
		}
		return nil
	}

	if err := walk(expanded); err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

func expandUser(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
