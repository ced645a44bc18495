package ui

import "context"

// Interface découple l'app de la sortie terminal (utile pour les tests :
// injecter une implémentation qui capture les messages).
type Interface interface {
	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	// PrintReport affiche le rapport déjà mis en forme, tel quel,
	// sans passer par les préfixes info/erreur.
	PrintReport(ctx context.Context, s string)
}
