package assets

import "embed"

//go:embed whisperlog.example.yaml
//go:embed templates/*tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "whisperlog.example.yaml"

// DefaultTemplatePaths : liste ordonnée des templates "par défaut" embarqués.
// Ce sont des chemins relatifs DANS Embedded (ex: "templates/usage_report.md.tmpl").
var DefaultTemplatePaths = []string{
	"templates/usage_report.md.tmpl",
}
