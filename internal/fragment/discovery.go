package fragment

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Metadata identifies a fragment source without its body.
type Metadata struct {
	Name     string
	Position int
}

// Discovery enumerates fragment sources and retrieves their bodies.
type Discovery interface {
	ListMetadata(ctx context.Context) ([]Metadata, error)
	ReadFragment(ctx context.Context, name string) (string, error)
}

// Load retrieves every fragment body. Reads run concurrently; the returned
// order is fixed by each fragment's configured position, never by completion
// time.
func Load(ctx context.Context, disc Discovery) ([]Fragment, error) {
	metas, err := disc.ListMetadata(ctx)
	if err != nil {
		return nil, err
	}

	fragments := make([]Fragment, len(metas))
	g, ctx := errgroup.WithContext(ctx)
	for i, meta := range metas {
		g.Go(func() error {
			body, err := disc.ReadFragment(ctx, meta.Name)
			if err != nil {
				return err
			}
			fragments[i] = Fragment{Name: meta.Name, Position: meta.Position, Body: body}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fragments, nil
}
