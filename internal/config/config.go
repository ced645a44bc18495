package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/whisperlog/internal/assets"
	"github.com/patrickprogramme/whisperlog/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Entrée
	LogPath string `yaml:"log_path"`

	// Affichage
	ShowEmptyDays bool `yaml:"show_empty_days"`

	// Export
	ExportMarkdown bool   `yaml:"export_markdown"`
	ExportDir      string `yaml:"export_dir"`
	ExportTitle    string `yaml:"export_title"`

	// Presse-papier
	CopyToClipboard bool `yaml:"copy_to_clipboard"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Entrée
	c.LogPath = "wf-log.txt"

	// Affichage
	c.ShowEmptyDays = false

	// Export
	c.ExportMarkdown = false
	c.ExportDir = "."
	c.ExportTitle = "Whisper usage"

	// Presse-papier
	c.CopyToClipboard = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué
// depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "whisperlog.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	// lire le YAML brut et déserialiser dans cfg (les champs présents écraseront les defaults)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		// orchestrateConfigUpgrade doit faire la sauvegarde, migrer et écrire la config
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		// re-normaliser au cas où la migration a modifié des valeurs
		cfg.normalizeConfig()
	}

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	// lire l'asset embarqué via assets.Embedded et DefaultConfigAsset
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// s'assurer que le dossier parent existe
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	// log utile pour le debugging
	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.LogPath = strings.TrimSpace(c.LogPath)
	if c.LogPath == "" {
		c.LogPath = "wf-log.txt"
	}
	c.LogPath = filepath.Clean(c.LogPath)

	c.ExportDir = strings.TrimSpace(c.ExportDir)
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	c.ExportDir = filepath.Clean(c.ExportDir)

	// titre de note : le nettoyage fin (caractères interdits) est fait au
	// moment de l'export, ici on garantit juste une valeur non vide
	c.ExportTitle = strings.TrimSpace(c.ExportTitle)
	if c.ExportTitle == "" {
		c.ExportTitle = "Whisper usage"
	}
}
