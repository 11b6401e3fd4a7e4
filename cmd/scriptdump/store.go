// 通过 afero.Fs 而不是直接调用 os 包来读取待解析的脚本文件，
// 与项目里 FileStore 包装 afero.Fs 的方式一致。

package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// scriptStore reads ".script" files (one hex or text-form script per
// file) out of a directory, the same afero-backed indirection the wider
// project's FileStore uses instead of calling os.ReadFile directly.
type scriptStore struct {
	fs   afero.Fs
	root string
}

func newScriptStore(root string) *scriptStore {
	return &scriptStore{fs: afero.NewOsFs(), root: root}
}

// List returns the base names of every ".script" file under the store's
// root, sorted for deterministic output.
func (s *scriptStore) List() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, fmt.Errorf("read script directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".script") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the trimmed contents of the named script file.
func (s *scriptStore) Read(name string) (string, error) {
	b, err := afero.ReadFile(s.fs, filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("read script file %s: %w", name, err)
	}
	return strings.TrimSpace(string(b)), nil
}
