// Package main runs the brick editor, in a window or headless from a script.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"brickyard/internal/assets"
	"brickyard/internal/catalog"
	"brickyard/internal/config"
	"brickyard/internal/editor"
	"brickyard/internal/editorconfig"
	"brickyard/internal/logger"
	"brickyard/internal/render"
	"brickyard/internal/replay"
	"brickyard/internal/scene"
)

type options struct {
	configPath string
	script     string
	modelsDir  string
	catalog    string
	logPath    string
	fullscreen bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	defaultConfig, err := editorconfig.Path()
	if err != nil {
		return options{}, err
	}
	fs.StringVar(&o.configPath, "config", defaultConfig, "editor preferences file")
	fs.StringVar(&o.script, "script", "", "run commands from this file without a window and print the scene")
	fs.StringVar(&o.modelsDir, "models", "", "override the models directory")
	fs.StringVar(&o.catalog, "catalog", "", "override the brick catalog file")
	fs.StringVar(&o.logPath, "log", logger.DefaultPath, "event log file")
	fs.BoolVar(&o.fullscreen, "fullscreen", false, "open fullscreen")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

func main() {
	if _, err := config.LoadDotEnv(config.DotEnvPath); err != nil {
		log.Fatalf("load env: %v", err)
	}
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts options) error {
	prefs, err := editorconfig.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.modelsDir != "" {
		prefs.ModelsDir = opts.modelsDir
	}
	if opts.catalog != "" {
		prefs.CatalogPath = opts.catalog
	}
	g, err := prefs.Grid()
	if err != nil {
		return err
	}
	shared, err := prefs.SharedMaterial()
	if err != nil {
		return err
	}
	brickColor, err := scene.ParseHexColor(prefs.BrickColor)
	if err != nil {
		return fmt.Errorf("editor config: %w", err)
	}
	cat, err := catalog.Resolve(prefs.CatalogPath, prefs.ModelsDir)
	if err != nil {
		return err
	}

	logPath := opts.logPath
	if opts.script != "" {
		logPath = ""
	}
	redraw := &render.Redraw{}
	e := editor.New(editor.Options{
		Grid:          g,
		Catalog:       cat,
		ModelsDir:     prefs.ModelsDir,
		Loader:        assets.NewLoader(assets.ParseSTL, assets.DefaultConcurrency),
		Log:           logger.New(logPath),
		Render:        redraw,
		SharedDefault: shared,
		BrickScale:    prefs.BrickScale,
		BrickColor:    brickColor,
	})

	if opts.script != "" {
		return runScript(ctx, e, opts.script)
	}

	e.LoadBaseplate(ctx)
	app := render.NewApp(ctx, e, redraw)
	app.SetHUDVisible(prefs.ShowHUD)
	w := render.DefaultWindow()
	w.Fullscreen = opts.fullscreen
	app.Run(w)
	return nil
}

func runScript(ctx context.Context, e *editor.Editor, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	r := replay.New(e, os.Stdout)
	if err := r.Run(ctx, f); err != nil {
		return err
	}
	return r.Print()
}
