package fragment

import (
	"context"
	"fmt"
)

// InMemoryFragment is a fragment source held in memory.
type InMemoryFragment struct {
	Name    string
	Content string
}

// InMemoryDiscovery is a test implementation of Discovery that stores
// fragment bodies in memory. Positions follow slice order.
type InMemoryDiscovery struct {
	metas    []Metadata
	contents map[string]string
}

// NewInMemoryDiscovery creates a new InMemoryDiscovery instance.
func NewInMemoryDiscovery(fragments []InMemoryFragment) *InMemoryDiscovery {
	discovery := &InMemoryDiscovery{contents: make(map[string]string)}
	for i, f := range fragments {
		name := Normalize(f.Name)
		discovery.metas = append(discovery.metas, Metadata{Name: name, Position: i})
		discovery.contents[name] = f.Content
	}
	return discovery
}

// ListMetadata implements Discovery.
func (d *InMemoryDiscovery) ListMetadata(ctx context.Context) ([]Metadata, error) {
	metas := make([]Metadata, len(d.metas))
	copy(metas, d.metas)
	return metas, nil
}

// ReadFragment implements Discovery.
func (d *InMemoryDiscovery) ReadFragment(ctx context.Context, name string) (string, error) {
	content, exists := d.contents[name]
	if !exists {
		return "", fmt.Errorf("fragment %q not found", name)
	}
	return content, nil
}
