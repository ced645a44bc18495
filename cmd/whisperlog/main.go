package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/patrickprogramme/whisperlog/internal/app"
	"github.com/patrickprogramme/whisperlog/internal/assets"
	"github.com/patrickprogramme/whisperlog/internal/bootstrap"
	"github.com/patrickprogramme/whisperlog/internal/config"
	"github.com/patrickprogramme/whisperlog/internal/report"
	"github.com/patrickprogramme/whisperlog/internal/ui"
)

func main() {
	flags := parseFlags()

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
		fmt.Printf("Lancement depuis: %s\n", exePath)
	}

	// emplacement config par défaut
	if flags.ConfigPath == "whisperlog.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "whisperlog.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	// s'assurer que le template de rapport existe (dans binDir/templates)
	tplDir := filepath.Join(binDir, "templates")
	if err := bootstrap.EnsureTemplatesPresent(
		tplDir,
		assets.Embedded,
		assets.DefaultTemplatePaths,
	); err != nil {
		log.Printf("warning: ensure templates present: %v", err)
	}

	// charger la config depuis flags.ConfigPath (qui pointe vers binDir/whisperlog.yaml si par défaut)
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	// construction du renderer Markdown
	renderer, err := report.DefaultRenderer(exePath)
	if err != nil {
		log.Fatalf("impossible de construire le renderer: %v", err)
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags, renderer)
	if err := a.Run(ctx); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", "whisperlog.yaml", "path to config file")
	flag.StringVar(&f.LogPath, "log", "", "chemin du log Whisper (prioritaire sur la config)")
	flag.BoolVar(&f.All, "all", false, "inclure les jours sans mots dans le daily breakdown")
	flag.BoolVar(&f.Export, "export", false, "exporter le rapport en note Markdown")
	flag.BoolVar(&f.Copy, "copy", false, "copier le rapport dans le presse-papier")
	flag.Parse()
	return f
}
