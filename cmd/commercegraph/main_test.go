package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, fn func() error) (stdout string, err error) {
	t.Helper()
	oldOut := os.Stdout
	defer func() { os.Stdout = oldOut }()

	outR, outW, _ := os.Pipe()
	os.Stdout = outW

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() { io.Copy(&buf, outR); close(done) }()

	err = fn()
	outW.Close()
	<-done
	return buf.String(), err
}

func TestHelp(t *testing.T) {
	out, err := captureOutput(t, func() error {
		return run([]string{"help", "compose"})
	})
	require.NoError(t, err)
	require.Contains(t, out, "compose FLAGS")
}

func TestUnknownCommand(t *testing.T) {
	err := run([]string{"frobnicate"})
	require.Error(t, err)
}

func TestCompose(t *testing.T) {
	fixtures := filepath.Join("..", "..", "internal", "compose", "testdata")

	cfgPath := filepath.Join(t.TempDir(), "commercegraph.yaml")
	cfg := `
admin:
  fragment_root: ` + filepath.Join(fixtures, "admin") + `
shop:
  fragment_root: ` + filepath.Join(fixtures, "shop") + `
extensions:
  - plugin: reviews
    sdl: "extend type Product { rating: Float }"
custom_fields:
  - entity: Product
    list: true
    fields:
      - name: weight
        kind: float
        public: true
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	outDir := t.TempDir()
	err := run([]string{"compose", "-config", cfgPath, "-out", outDir})
	require.NoError(t, err)

	admin, err := os.ReadFile(filepath.Join(outDir, "admin.graphql"))
	require.NoError(t, err)
	require.Contains(t, string(admin), "type ProductCustomFields")
	require.Contains(t, string(admin), "input ProductFilterParameter")
	require.Contains(t, string(admin), "enum Permission")
	require.Contains(t, string(admin), "rating: Float")

	shop, err := os.ReadFile(filepath.Join(outDir, "shop.graphql"))
	require.NoError(t, err)
	require.Contains(t, string(shop), "type ProductCustomFields")
	require.Contains(t, string(shop), "rating: Float")
	require.NotContains(t, string(shop), "CustomFieldConfig")
}

func TestComposeMissingConfig(t *testing.T) {
	err := run([]string{"compose", "-config", filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
}
