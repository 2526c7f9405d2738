package fragment

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "catalog/product.graphql", Normalize(`catalog\product.graphql`))
	require.Equal(t, "catalog/product.graphql", Normalize("catalog//product.graphql"))
	require.Equal(t, "product.graphql", Normalize("./product.graphql"))
}

func TestMergeOrdersByPosition(t *testing.T) {
	merged := Merge([]Fragment{
		{Name: "order.graphql", Position: 2, Body: "type Order { id: ID! }\n"},
		{Name: "common.graphql", Position: 0, Body: "scalar DateTime"},
		{Name: "catalog.graphql", Position: 1, Body: "type Product { id: ID! }"},
	})

	require.Equal(t, "common.graphql", merged.Fragments[0].Name)
	require.Equal(t, "catalog.graphql", merged.Fragments[1].Name)
	require.Equal(t, "order.graphql", merged.Fragments[2].Name)
	require.Len(t, merged.Sources, 3)
	require.Equal(t, "scalar DateTime\n\ntype Product { id: ID! }\n\ntype Order { id: ID! }\n", merged.Text)
}

func TestMergeIsStableForEqualPositions(t *testing.T) {
	merged := Merge([]Fragment{
		{Name: "a.graphql", Position: 0, Body: "type A { id: ID! }"},
		{Name: "b.graphql", Position: 0, Body: "type B { id: ID! }"},
	})
	require.Equal(t, "a.graphql", merged.Fragments[0].Name)
	require.Equal(t, "b.graphql", merged.Fragments[1].Name)
}

func TestLoadPreservesConfiguredOrder(t *testing.T) {
	disc := NewInMemoryDiscovery([]InMemoryFragment{
		{Name: "common.graphql", Content: "scalar DateTime"},
		{Name: "catalog.graphql", Content: "type Product { id: ID! }"},
	})

	fragments, err := Load(context.Background(), disc)
	require.NoError(t, err)
	require.Len(t, fragments, 2)
	require.Equal(t, Fragment{Name: "common.graphql", Position: 0, Body: "scalar DateTime"}, fragments[0])
	require.Equal(t, Fragment{Name: "catalog.graphql", Position: 1, Body: "type Product { id: ID! }"}, fragments[1])
}

func TestLoadPropagatesReadErrors(t *testing.T) {
	disc := &InMemoryDiscovery{
		metas: []Metadata{{Name: "missing.graphql", Position: 0}},
	}
	_, err := Load(context.Background(), disc)
	require.Error(t, err)
}

func TestFileSystemDiscovery(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "catalog"), 0755))
	write := func(rel, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(root, rel), []byte(body), 0644))
	}
	write("zz-extra.graphql", "type Extra { id: ID! }")
	write("00-common.graphql", "scalar DateTime")
	write(filepath.Join("catalog", "product.graphql"), "type Product { id: ID! }")
	write("notes.txt", "not a fragment")

	disc, err := NewFileSystemDiscovery(root)
	require.NoError(t, err)

	metas, err := disc.ListMetadata(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Metadata{
		{Name: "00-common.graphql", Position: 0},
		{Name: "catalog/product.graphql", Position: 1},
		{Name: "zz-extra.graphql", Position: 2},
	}, metas)

	body, err := disc.ReadFragment(context.Background(), "catalog/product.graphql")
	require.NoError(t, err)
	require.Equal(t, "type Product { id: ID! }", body)

	_, err = disc.ReadFragment(context.Background(), "missing.graphql")
	require.Error(t, err)
}
