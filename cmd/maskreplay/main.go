// Command maskreplay replays a recorded mask editing session and exports
// the resulting images.
//
// Usage:
//
//	maskreplay -script session.yaml [-config editor.toml] [-base img|url]
//	           [-out dir] [-pdf] [-binary] [-v]
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/maskedit"
)

// replay holds the resolved settings of one run.
type replay struct {
	script     *Script
	opts       []maskedit.Option
	base       string
	outDir     string
	pdf        bool
	binaryMask bool
}

func main() {
	var (
		scriptPath = flag.String("script", "", "session script (YAML)")
		configPath = flag.String("config", "", "editor configuration (TOML)")
		base       = flag.String("base", "", "base image file or URL, overrides the script")
		outDir     = flag.String("out", "", "output directory (default: config or current directory)")
		pdf        = flag.Bool("pdf", false, "also write mask.pdf")
		binary     = flag.Bool("binary", false, "also write the binary mask as mask-alpha.png")
		verbose    = flag.Bool("v", false, "log editor diagnostics to stderr")
	)
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		maskedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	script, err := LoadScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}

	var cfg Config
	if *configPath != "" {
		if cfg, err = LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	opts, err := cfg.Editor.Options()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	r := replay{
		script:     script,
		opts:       opts,
		base:       script.Base,
		outDir:     cfg.Output.Dir,
		pdf:        cfg.Output.PDF || *pdf,
		binaryMask: cfg.Output.BinaryMask || *binary,
	}
	if *base != "" {
		r.base = *base
	}
	if *outDir != "" {
		r.outDir = *outDir
	}
	if r.outDir == "" {
		r.outDir = "."
	}

	e, err := r.run(context.Background())
	if err != nil {
		log.Fatalf("Replay failed: %v", err)
	}
	log.Printf("Replayed %d events on %dx%d, history %d/%d, output in %s\n",
		len(script.Events), e.Width(), e.Height(), e.History().Index(), e.History().Len()-1, r.outDir)
}

// run replays the script and writes the outputs. It returns the editor
// for inspection.
func (r replay) run(ctx context.Context) (*maskedit.Editor, error) {
	events, err := r.script.Compile()
	if err != nil {
		return nil, err
	}
	e, err := maskedit.NewEditor(r.script.Width, r.script.Height, r.opts...)
	if err != nil {
		return nil, err
	}
	if err := loadBase(ctx, e, r.base); err != nil {
		return nil, err
	}

	for i, ev := range events {
		if err := e.Handle(ev); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}

	d := maskedit.DirDownloader{Dir: r.outDir}
	if err := e.Export(d); err != nil {
		return nil, err
	}
	if r.pdf {
		var buf bytes.Buffer
		if err := e.WritePDF(&buf); err != nil {
			return nil, err
		}
		if err := d.Download("mask.pdf", buf.Bytes()); err != nil {
			return nil, err
		}
	}
	if r.binaryMask {
		var buf bytes.Buffer
		if err := e.AlphaMask().EncodePNG(&buf); err != nil {
			return nil, err
		}
		if err := d.Download("mask-alpha.png", buf.Bytes()); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func loadBase(ctx context.Context, e *maskedit.Editor, src string) error {
	switch {
	case src == "":
		return nil
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return e.LoadBaseImage(ctx, src)
	default:
		img, err := maskedit.OpenImage(src)
		if err != nil {
			return err
		}
		return e.SetBaseImage(img)
	}
}
