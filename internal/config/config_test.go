package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/venlo/commercegraph/internal/compose"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commercegraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validConfig = `
admin:
  fragment_root: ./schema/admin
shop:
  fragment_root: ./schema/shop
extensions:
  - plugin: reviews
    surfaces: admin
    sdl: |
      extend type Product { rating: Float }
custom_fields:
  - entity: Product
    list: true
    fields:
      - name: weight
        kind: float
        public: true
      - name: featuredAsset
        kind: relation
        relatesTo: Asset
custom_permissions:
  - ManageLoyalty
auth_strategies:
  - name: native
    credentials:
      - name: username
        type: String
        required: true
      - name: password
        type: String
        required: true
  - name: apiKey
    surfaces: admin
    credentials:
      - name: key
        type: String
        required: true
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	require.Equal(t, "./schema/admin", cfg.Admin.FragmentRoot)
	require.Equal(t, "./schema/shop", cfg.Shop.FragmentRoot)

	require.Len(t, cfg.Extensions, 1)
	require.Equal(t, "reviews", cfg.Extensions[0].PluginID)
	require.Equal(t, compose.FilterAdmin, cfg.Extensions[0].Surfaces)
	require.Contains(t, cfg.Extensions[0].SDL, "extend type Product")

	require.Len(t, cfg.CustomFields, 1)
	product := cfg.CustomFields[0]
	require.Equal(t, "Product", product.Entity)
	require.True(t, product.List)
	require.Equal(t, compose.KindFloat, product.Fields[0].Kind)
	require.True(t, product.Fields[0].Public)
	require.Equal(t, compose.KindRelation, product.Fields[1].Kind)
	require.Equal(t, "Asset", product.Fields[1].RelatesTo)

	require.Equal(t, []string{"ManageLoyalty"}, cfg.CustomPermissions)

	require.Len(t, cfg.AuthStrategies, 2)
	// An unset surface filter defaults to both surfaces.
	require.Equal(t, compose.FilterBoth, cfg.AuthStrategies[0].Surfaces)
	require.Equal(t, compose.FilterAdmin, cfg.AuthStrategies[1].Surfaces)
	require.True(t, cfg.AuthStrategies[1].Credentials[0].Required)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("SCHEMA_DIR", "/srv/schema")
	cfg, err := Load(writeConfig(t, `
admin:
  fragment_root: ${SCHEMA_DIR}/admin
shop:
  fragment_root: ${SCHEMA_DIR}/shop
`))
	require.NoError(t, err)
	require.Equal(t, "/srv/schema/admin", cfg.Admin.FragmentRoot)
	require.Equal(t, "/srv/schema/shop", cfg.Shop.FragmentRoot)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing admin root",
			content: "shop:\n  fragment_root: ./shop\n",
			wantErr: "admin.fragment_root is required",
		},
		{
			name:    "missing shop root",
			content: "admin:\n  fragment_root: ./admin\n",
			wantErr: "shop.fragment_root is required",
		},
		{
			name: "extension without plugin id",
			content: `
admin:
  fragment_root: ./admin
shop:
  fragment_root: ./shop
extensions:
  - sdl: "extend type Product { rating: Float }"
`,
			wantErr: "extension without a plugin id",
		},
		{
			name: "extension without sdl",
			content: `
admin:
  fragment_root: ./admin
shop:
  fragment_root: ./shop
extensions:
  - plugin: reviews
`,
			wantErr: "without sdl",
		},
		{
			name: "custom field without kind",
			content: `
admin:
  fragment_root: ./admin
shop:
  fragment_root: ./shop
custom_fields:
  - entity: Product
    fields:
      - name: weight
`,
			wantErr: "without a kind",
		},
		{
			name: "auth strategy without name",
			content: `
admin:
  fragment_root: ./admin
shop:
  fragment_root: ./shop
auth_strategies:
  - credentials:
      - name: key
        type: String
`,
			wantErr: "auth strategy without a name",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSurfaceOptions(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	opts := cfg.SurfaceOptions(compose.SurfaceShop)
	require.Equal(t, compose.SurfaceShop, opts.Surface)
	require.Equal(t, cfg.Extensions, opts.Extensions)
	require.Equal(t, cfg.CustomFields, opts.CustomFields)
	require.Equal(t, cfg.CustomPermissions, opts.CustomPermissions)
	require.Equal(t, cfg.AuthStrategies, opts.AuthStrategies)
	require.Nil(t, opts.Fragments)
}
