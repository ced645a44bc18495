package report

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTemplateName est le basename du template de rapport Markdown.
const DefaultTemplateName = "usage_report.md.tmpl"

// Renderer gère le parsing paresseux (lazy) du template Markdown et son rendu.
type Renderer struct {
	templates *template.Template // templates parsés
	fsys      fs.FS              // source des templates (embed.FS ou os.DirFS)
	patterns  []string           // patterns relatifs au fsys, ex: "templates/*.tmpl"
	once      sync.Once          // protège l'initialisation paresseuse
	err       error              // mémorise l'erreur d'initialisation (utile avec once)
}

// NewRendererFromFS construit un Renderer configuré pour parser ultérieurement
// les patterns fournis depuis le fsys (ne parse pas immédiatement).
func NewRendererFromFS(fsys fs.FS, patterns []string) (*Renderer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("fsys est nil")
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("aucun template fourni")
	}
	// copy patterns pour sécurité
	cp := append([]string(nil), patterns...)
	return &Renderer{
		fsys:     fsys,
		patterns: cp,
	}, nil
}

// DefaultRenderer construit un Renderer sur le dossier templates/ à côté du
// binaire et parse tout de suite.
func DefaultRenderer(exePath string) (*Renderer, error) {
	binDir := filepath.Dir(exePath)
	tplDir := filepath.Join(binDir, "templates")

	fsys := os.DirFS(tplDir)

	r, err := NewRendererFromFS(fsys, []string{DefaultTemplateName})
	if err != nil {
		return nil, err
	}
	if err := r.ParseNow(); err != nil {
		return nil, err
	}
	return r, nil
}

// parseTemplates effectue le parsing des templates une seule fois (sync.Once).
func (r *Renderer) parseTemplates() error {
	r.once.Do(func() {
		t := template.New("root").Funcs(baseFuncMap())
		for _, p := range r.patterns {
			var parseErr error
			t, parseErr = t.ParseFS(r.fsys, p)
			if parseErr != nil {
				r.err = fmt.Errorf("parse pattern %q: %w", p, parseErr)
				return
			}
		}
		r.templates = t
	})
	return r.err
}

// ParseNow force l'initialisation / parsing immédiat et retourne l'erreur si problème.
func (r *Renderer) ParseNow() error {
	if r == nil {
		return fmt.Errorf("nil renderer")
	}
	return r.parseTemplates()
}

// RenderMarkdown exécute le template nommé tmplName (basename du fichier
// .tmpl) avec les données du rapport. Assure le parsing paresseux avant
// exécution.
func (r *Renderer) RenderMarkdown(tmplName string, data Data) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if err := r.parseTemplates(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, tmplName, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}

// baseFuncMap construit la liste des fonctions exposées au template :
// formats monétaires et nombres groupés par milliers, pour garder le template
// lisible.
func baseFuncMap() template.FuncMap {
	p := message.NewPrinter(language.English)
	return template.FuncMap{
		"grouped": func(n int) string { return p.Sprintf("%d", n) },
		"num0":    func(v float64) string { return p.Sprintf("%.0f", v) },
		"num2":    func(v float64) string { return p.Sprintf("%.2f", v) },
		"usd2":    func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		"usd4":    func(v float64) string { return fmt.Sprintf("$%.4f", v) },
	}
}
