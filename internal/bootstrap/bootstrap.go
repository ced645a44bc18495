package bootstrap

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/patrickprogramme/whisperlog/internal/fsutil"
)

// EnsureConfigPresent copie un fichier embarqué (assetPath dans fsys) vers dstPath
// si dstPath n'existe pas encore.
// - dstPath : chemin complet sur disque (ex: binDir/whisperlog.yaml)
// - fsys : embed.FS (ou autre fs.FS) contenant l'asset
// - assetPath : chemin dans fsys vers l'asset (ex: "whisperlog.example.yaml")
// Comportement : idempotent, ne remplace jamais un fichier existant.
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string) error {
	// sécurité: vérifier parent
	parent := filepath.Dir(dstPath)
	if parent == "" {
		parent = "."
	}
	if st, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			// créer le dossier parent si absent (on suppose qu'on peut écrire à cet emplacement)
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return fmt.Errorf("échec création répertoire parent %s: %w", parent, err)
			}
		} else {
			return fmt.Errorf("échec test parent %s: %w", parent, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	// si le fichier existe déjà -> ne rien faire
	if _, err := os.Stat(dstPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("échec stat fichier cible %s: %w", dstPath, err)
	}

	// lire l'asset embarqué
	data, err := fs.ReadFile(fsys, filepath.ToSlash(assetPath))
	if err != nil {
		return fmt.Errorf("lecture asset embarqué %s: %w", assetPath, err)
	}

	// écrire atomiquement
	if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
		return fmt.Errorf("écriture du fichier %s: %w", dstPath, err)
	}
	return nil
}

// EnsureTemplatesPresent s'assure que les templates listés existent sur disque.
//
// - tplDir  : dossier destination sur disque (ex: "./templates")
// - fsys    : embed.FS (ou autre fs.FS) contenant les ressources embarquées
// - srcFiles: liste explicite de chemins DANS fsys (ex: "templates/usage_report.md.tmpl")
//
// Comportement :
//  1. Si tplDir n'existe pas -> crée tplDir et copie TOUS les fichiers listés.
//  2. Si tplDir existe -> pour chaque fichier listé, si le fichier
//     correspondant est absent sur disque -> le copie depuis fsys.
//  3. NE REMPLACE JAMAIS les fichiers existants (l'utilisateur peut
//     personnaliser son template de rapport).
func EnsureTemplatesPresent(tplDir string, fsys fs.FS, srcFiles []string) error {
	if tplDir == "" {
		return fmt.Errorf("tplDir vide")
	}
	if err := os.MkdirAll(tplDir, 0o755); err != nil {
		return fmt.Errorf("échec de création du répertoire de templates %s : %w", tplDir, err)
	}

	for _, src := range srcFiles {
		base := filepath.Base(src)
		dest := filepath.Join(tplDir, base)

		// ne jamais écraser un template existant
		if _, err := os.Stat(dest); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("échec stat template %s : %w", dest, err)
		}

		// lire le fichier embarqué (utiliser des slashs)
		data, rerr := fs.ReadFile(fsys, filepath.ToSlash(src))
		if rerr != nil {
			return fmt.Errorf("échec de lecture de la ressource embarquée %s : %w", src, rerr)
		}
		if werr := fsutil.WriteFileAtomic(dest, data, 0o644); werr != nil {
			return fmt.Errorf("échec d'écriture du template %s : %w", dest, werr)
		}
	}
	return nil
}
