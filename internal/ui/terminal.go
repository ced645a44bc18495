package ui

import (
	"context"
	"fmt"
	"os"
)

type terminalUI struct{}

// NewTerminal construit l'implémentation terminal standard :
// info + rapport sur stdout, erreurs sur stderr.
func NewTerminal() Interface {
	return &terminalUI{}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}

func (t *terminalUI) PrintReport(ctx context.Context, s string) {
	fmt.Print(s)
}
