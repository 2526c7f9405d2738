package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/venlo/commercegraph/internal/compose"
	"github.com/venlo/commercegraph/internal/config"
	"github.com/venlo/commercegraph/internal/fragment"
	"github.com/venlo/commercegraph/internal/otel"
)

const rootUsage = `commercegraph — commerce GraphQL schema composition

USAGE:
  commercegraph <command> [flags]

COMMANDS:
  compose          Compose the admin and shop schemas and write SDL
  help             Show help for any command
`

const composeUsage = `compose FLAGS:
  -config <file>          Composition config (default: commercegraph.yaml)
  -out <dir>              Output directory for composed SDL (default: .)
  -otel.endpoint <addr>   OTLP collector endpoint
  -otel.service <name>    OpenTelemetry service name (default: commercegraph)
  (Both surfaces are composed; a failure on either aborts with non-zero exit)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("commercegraph", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "compose":
		return cmdCompose(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "compose":
		fmt.Print(composeUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdCompose(args []string) error {
	cfgPath := "commercegraph.yaml"
	outDir := "."
	otelEndpoint := ""
	otelService := "commercegraph"

	fs := flag.NewFlagSet("compose", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&cfgPath, "config", cfgPath, "Composition config file")
	fs.StringVar(&outDir, "out", outDir, "Output directory")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, composeUsage)
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	// The two surfaces share only read-only configuration; compose them in
	// parallel.
	surfaces := []struct {
		surface compose.Surface
		root    string
	}{
		{compose.SurfaceAdmin, cfg.Admin.FragmentRoot},
		{compose.SurfaceShop, cfg.Shop.FragmentRoot},
	}
	results := make([]*compose.Result, len(surfaces))
	g, ctx := errgroup.WithContext(context.Background())
	for i, sc := range surfaces {
		g.Go(func() error {
			disc, err := fragment.NewFileSystemDiscovery(sc.root)
			if err != nil {
				return err
			}
			fragments, err := fragment.Load(ctx, disc)
			if err != nil {
				return err
			}
			opts := cfg.SurfaceOptions(sc.surface)
			opts.Fragments = fragments
			res, err := compose.Compose(ctx, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		outPath := filepath.Join(outDir, string(res.Surface)+".graphql")
		if err := os.WriteFile(outPath, []byte(res.SDL), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		log.Printf("%s: %d types, %d abstract types resolved, %d error codes -> %s",
			res.Surface, len(res.Schema.Order), len(res.Registry.AbstractTypes()), len(res.ErrorCodes), outPath)
	}
	return nil
}
