package app

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickprogramme/whisperlog/internal/clipboard"
	"github.com/patrickprogramme/whisperlog/internal/config"
	"github.com/patrickprogramme/whisperlog/internal/fsutil"
	"github.com/patrickprogramme/whisperlog/internal/report"
	"github.com/patrickprogramme/whisperlog/internal/stats"
	"github.com/patrickprogramme/whisperlog/internal/ui"
	"github.com/patrickprogramme/whisperlog/internal/wflog"
)

// CLIFlags contient les informations venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	LogPath    string // -log : prioritaire sur la config
	All        bool   // -all : inclure les jours à 0 mot dans le daily breakdown
	Export     bool   // -export : écrire la note Markdown
	Copy       bool   // -copy : copier le rapport brut dans le presse-papier
}

// App orchestre les différentes dépendances (UI, renderer, FS...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	renderer *report.Renderer
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, renderer *report.Renderer) *App {
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		flags:    flags,
		renderer: renderer,
	}
}

// Run exécute le flux principal : lecture + parse du log, agrégation,
// estimation de coût, affichage du rapport, puis export/copie optionnels.
func (a *App) Run(ctx context.Context) error {
	// appliquer les flags par-dessus la config
	if a.flags.LogPath != "" {
		a.cfg.LogPath = a.flags.LogPath
	}
	if a.flags.All {
		a.cfg.ShowEmptyDays = true
	}
	if a.flags.Export {
		a.cfg.ExportMarkdown = true
	}
	if a.flags.Copy {
		a.cfg.CopyToClipboard = true
	}

	// validation statique du chemin : les warnings ne bloquent pas, l'erreur oui
	warnings, err := a.cfg.ValidateLogPresence()
	for _, w := range warnings {
		a.ui.PrintError(ctx, "warning: "+w)
	}
	if err != nil {
		return fmt.Errorf("validation du log : %w", err)
	}

	a.ui.PrintInfo(ctx, "Parsing Whisper workflow log...\n")
	l, err := wflog.ParseFile(a.cfg.LogPath)
	if err != nil {
		// fichier absent/illisible : condition fatale, pas de retry
		return err
	}

	a.ui.PrintInfo(ctx, "Analyzing logs...\n")
	summary := stats.Analyze(l)
	cost := stats.EstimateAPICost(summary.TotalWords, summary.DaysWithRecordings)
	monthly := stats.GroupByMonth(l)

	data := report.Data{
		LogPath:       a.cfg.LogPath,
		GeneratedAt:   time.Now(),
		Summary:       summary,
		Cost:          cost,
		Monthly:       monthly,
		ShowEmptyDays: a.cfg.ShowEmptyDays,
	}

	a.ui.PrintReport(ctx, report.RenderStyled(data))

	// copie presse-papier : best-effort, un clipboard indisponible (machine
	// headless) ne doit pas faire échouer le run
	if a.cfg.CopyToClipboard {
		if cerr := clipboard.WriteAll(report.Render(data)); cerr != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: copie presse-papier impossible : %v", cerr))
		} else {
			a.ui.PrintInfo(ctx, "Rapport copié dans le presse-papier.")
		}
	}

	// export Markdown opt-in : le run par défaut n'écrit rien sur disque
	if a.cfg.ExportMarkdown {
		if err := a.exportMarkdown(ctx, data); err != nil {
			return err
		}
	}

	return nil
}

// exportMarkdown rend le template de rapport et l'écrit atomiquement dans
// cfg.ExportDir sous un nom daté construit depuis cfg.ExportTitle
// ("Whisper usage 2025-12-14.md" par défaut).
func (a *App) exportMarkdown(ctx context.Context, data report.Data) error {
	if a.renderer == nil {
		return fmt.Errorf("export demandé mais aucun renderer disponible")
	}

	content, err := a.renderer.RenderMarkdown(report.DefaultTemplateName, data)
	if err != nil {
		return fmt.Errorf("render error: %w", err)
	}

	// le titre vient de la config : il peut contenir n'importe quoi
	title := a.cfg.ExportTitle
	if title == "" {
		title = "Whisper usage"
	}
	base := fsutil.SanitizeFilename(title + " " + data.GeneratedAt.Format("2006-01-02"))
	outPath, err := fsutil.SaveMarkdownAtomic(a.cfg.ExportDir, base, content, true)
	if err != nil {
		return fmt.Errorf("cannot save file to disk: %w", err)
	}

	a.ui.PrintInfo(ctx, fmt.Sprintf("Note écrite dans le répertoire:\n%s", outPath))
	return nil
}
