// Package main is the entry point for the Spritestorm sheet tools.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/spritestorm/internal/app"
	"github.com/dshills/spritestorm/internal/document"
	"github.com/dshills/spritestorm/internal/export"
	"github.com/dshills/spritestorm/internal/script"
	"github.com/dshills/spritestorm/internal/sheet/compat"
	"github.com/dshills/spritestorm/internal/texturecache"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	migrate    bool
	exportPack bool
	scriptPath string
	logLevel   string
	files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger := app.NewLogger(app.ParseLogLevel(opts.logLevel), os.Stderr)

	if len(opts.files) == 0 {
		flag.Usage()
		return 1
	}

	failed := 0
	for _, path := range opts.files {
		if err := processFile(opts, path, logger); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func processFile(opts options, path string, logger *app.Logger) error {
	switch {
	case opts.scriptPath != "":
		return runScript(path, opts.scriptPath, logger)
	case opts.exportPack:
		return runExport(path, logger)
	case opts.migrate:
		return migrate(path)
	default:
		// Validation is the default action; a sheet that round-trips
		// through the format chain is well formed.
		_, err := compat.ReadSheet(path)
		return err
	}
}

// migrate rewrites a sheet file in the current format version.
func migrate(path string) error {
	s, err := compat.ReadSheet(path)
	if err != nil {
		return err
	}
	return compat.WriteSheet(path, s)
}

// runExport packs the sheet's textures into an atlas and renders its
// metadata template, using the export settings stored in the file.
func runExport(path string, logger *app.Logger) error {
	d, err := document.Open(path)
	if err != nil {
		return err
	}

	cache, err := texturecache.New(d.Sheet.FramePaths, logger)
	if err != nil {
		return err
	}
	defer cache.Close()
	cache.Reconcile()

	return export.Run(d.Sheet, cache)
}

// runScript applies a Lua automation script to the sheet and saves the
// result. The file is created if it does not exist yet.
func runScript(path, scriptPath string, logger *app.Logger) error {
	var d *document.Document
	if _, err := os.Stat(path); err == nil {
		d, err = document.Open(path)
		if err != nil {
			return err
		}
	} else {
		d = document.New(path)
	}

	executor := script.New(d, logger)
	defer executor.Close()
	if err := executor.RunFile(scriptPath); err != nil {
		return err
	}
	return document.Save(d.Sheet, path)
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.BoolVar(&opts.migrate, "migrate", false, "Rewrite sheet files in the current format version")
	flag.BoolVar(&opts.exportPack, "export", false, "Pack atlases and render metadata using each sheet's export settings")
	flag.StringVar(&opts.scriptPath, "script", "", "Run a Lua automation script against each sheet file")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Spritestorm - sprite sheet tools\n\n")
		fmt.Fprintf(os.Stderr, "Usage: spritestorm [options] file.sheet...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  spritestorm hero.sheet              Validate a sheet file\n")
		fmt.Fprintf(os.Stderr, "  spritestorm -migrate hero.sheet     Rewrite in the current format\n")
		fmt.Fprintf(os.Stderr, "  spritestorm -export hero.sheet      Export atlas and metadata\n")
		fmt.Fprintf(os.Stderr, "  spritestorm -script gen.lua x.sheet Apply an automation script\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Spritestorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.files = flag.Args()
	return opts
}
