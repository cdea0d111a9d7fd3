package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/resmaker/internal/ports/primary"
)

// HistoryAdapter is a thin adapter that translates CLI operations to HistoryService calls.
type HistoryAdapter struct {
	service primary.HistoryService
	out     io.Writer
}

// NewHistoryAdapter creates a new HistoryAdapter with the given service.
func NewHistoryAdapter(service primary.HistoryService, out io.Writer) *HistoryAdapter {
	return &HistoryAdapter{
		service: service,
		out:     out,
	}
}

// List prints the most recent generations.
func (a *HistoryAdapter) List(ctx context.Context, limit int) ([]*primary.Generation, error) {
	generations, err := a.service.ListGenerations(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}

	if len(generations) == 0 {
		fmt.Fprintln(a.out, "No generations recorded.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Generate your first bundle:")
		fmt.Fprintln(a.out, "  resmaker generate resources.yaml")
		return generations, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tGROUP\tFILE\tVERSION\tKEYS\tOPERATOR\tCREATED")
	fmt.Fprintln(w, "--\t-----\t----\t-------\t----\t--------\t-------")

	for _, g := range generations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			g.ID,
			g.GroupName,
			g.FileName,
			g.VersionToken,
			g.KeyCount,
			orDash(g.Operator),
			g.CreatedAt,
		)
	}

	w.Flush()
	return generations, nil
}

// Show displays details for a single generation.
func (a *HistoryAdapter) Show(ctx context.Context, id string) (*primary.Generation, error) {
	g, err := a.service.GetGeneration(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get generation: %w", err)
	}

	packaging := "sql files"
	if g.Archived {
		packaging = "zip"
	}

	fmt.Fprintf(a.out, "\nGeneration: %s\n", color.New(color.Bold).Sprint(g.ID))
	fmt.Fprintf(a.out, "Group:     %s\n", g.GroupName)
	fmt.Fprintf(a.out, "File:      %s (%s)\n", g.FileName, packaging)
	fmt.Fprintf(a.out, "Version:   %s\n", g.VersionToken)
	fmt.Fprintf(a.out, "Operator:  %s\n", orDash(g.Operator))
	fmt.Fprintf(a.out, "Created:   %s\n", g.CreatedAt)
	fmt.Fprintf(a.out, "Up:        %s\n", g.UpDigest)
	fmt.Fprintf(a.out, "Down:      %s\n", g.DownDigest)
	fmt.Fprintf(a.out, "Keys (%d):\n", g.KeyCount)
	for _, k := range g.QualifiedKeys {
		fmt.Fprintf(a.out, "  %s\n", k)
	}
	fmt.Fprintln(a.out)

	return g, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
