package fragment

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileSystemDiscovery finds .graphql fragment files under a root directory.
// Positions are assigned by sorted relative path so composition is stable
// across platforms and directory iteration orders.
type FileSystemDiscovery struct {
	filePaths map[string]string
	metas     []Metadata
}

// NewFileSystemDiscovery walks rootDir collecting every .graphql file.
func NewFileSystemDiscovery(rootDir string) (*FileSystemDiscovery, error) {
	discovery := &FileSystemDiscovery{filePaths: make(map[string]string)}

	var names []string
	err := filepath.WalkDir(rootDir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != ".graphql" {
			return nil
		}
		relPath, err := filepath.Rel(rootDir, p)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %q: %w", p, err)
		}
		name := Normalize(relPath)
		discovery.filePaths[name] = p
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk fragment root %q: %w", rootDir, err)
	}

	sort.Strings(names)
	for i, name := range names {
		discovery.metas = append(discovery.metas, Metadata{Name: name, Position: i})
	}
	return discovery, nil
}

// ListMetadata implements Discovery.
func (d *FileSystemDiscovery) ListMetadata(ctx context.Context) ([]Metadata, error) {
	metas := make([]Metadata, len(d.metas))
	copy(metas, d.metas)
	return metas, nil
}

// ReadFragment implements Discovery.
func (d *FileSystemDiscovery) ReadFragment(ctx context.Context, name string) (string, error) {
	fp, ok := d.filePaths[name]
	if !ok {
		return "", fmt.Errorf("fragment %q not found", name)
	}
	content, err := os.ReadFile(fp)
	if err != nil {
		return "", fmt.Errorf("failed to read fragment %q: %w", name, err)
	}
	return string(content), nil
}
