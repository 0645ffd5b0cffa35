package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const conversationSuffix = ".jsonl"

// FindConversationFiles enumerates conversation files under root, grouped
// by project (the containing directory name). If filter is non-empty, only
// projects whose name contains it case-insensitively are included. An empty
// result is not an error; callers may wait and retry.
func FindConversationFiles(root, filter string) (map[string][]string, error) {
	projects, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	filter = strings.ToLower(filter)

	files := make(map[string][]string)
	for _, proj := range projects {
		if !proj.IsDir() {
			continue
		}
		name := proj.Name()
		if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(root, name))
		if err != nil {
			continue
		}
		for _, entry := range entries {
			// only top-level .jsonl files, skip directories (subagents)
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), conversationSuffix) {
				continue
			}
			files[name] = append(files[name], filepath.Join(root, name, entry.Name()))
		}
	}
	return files, nil
}
