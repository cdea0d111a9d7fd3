// Package cli contains thin adapters that translate CLI operations into
// primary port calls and render the results.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/resmaker/internal/app"
	"github.com/example/resmaker/internal/core/resource"
	"github.com/example/resmaker/internal/core/sqlgen"
	"github.com/example/resmaker/internal/ports/primary"
)

// ScriptSelection picks which scripts Preview prints.
type ScriptSelection int

const (
	BothScripts ScriptSelection = iota
	UpScript
	DownScript
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warnMark = color.New(color.FgYellow).Sprint("!")
)

// ResourceAdapter is a thin adapter that translates CLI operations to ResourceService calls.
// It depends only on the ResourceService interface, enabling easy testing with mocks.
type ResourceAdapter struct {
	service primary.ResourceService
	out     io.Writer
}

// NewResourceAdapter creates a new ResourceAdapter with the given service.
func NewResourceAdapter(service primary.ResourceService, out io.Writer) *ResourceAdapter {
	return &ResourceAdapter{
		service: service,
		out:     out,
	}
}

// Validate checks a description and prints either the field errors or the
// qualified names of its keys.
func (a *ResourceAdapter) Validate(ctx context.Context, desc resource.Description) error {
	if err := a.service.Validate(ctx, desc); err != nil {
		PrintValidationErrors(a.out, err)
		return err
	}

	group := sqlgen.NormalizeName(desc.GroupName)
	fmt.Fprintf(a.out, "%s %s is valid (%d keys)\n", okMark, group, len(desc.Keys))
	for _, k := range desc.Keys {
		fmt.Fprintf(a.out, "  %s\n", sqlgen.QualifiedKeyName(desc.GroupName, k.Name))
	}
	return nil
}

// Preview renders the selected scripts to the output.
func (a *ResourceAdapter) Preview(ctx context.Context, desc resource.Description, sel ScriptSelection) (*primary.Scripts, error) {
	scripts, err := a.service.Preview(ctx, desc)
	if err != nil {
		PrintValidationErrors(a.out, err)
		return nil, err
	}

	a.printScripts(scripts, sel)
	return scripts, nil
}

// PreviewIfChanged renders the selected scripts only when they differ from
// the output fingerprinted by lastDigest. It returns the new fingerprint.
func (a *ResourceAdapter) PreviewIfChanged(ctx context.Context, desc resource.Description, sel ScriptSelection, lastDigest string) (string, bool, error) {
	scripts, err := a.service.Preview(ctx, desc)
	if err != nil {
		PrintValidationErrors(a.out, err)
		return lastDigest, false, err
	}

	digest := app.ScriptDigest(scripts.Up + "\x00" + scripts.Down)
	if digest == lastDigest {
		return digest, false, nil
	}

	a.printScripts(scripts, sel)
	return digest, true, nil
}

// Generate packages a description and reports the written files.
func (a *ResourceAdapter) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	resp, err := a.service.Generate(ctx, req)
	if err != nil {
		if !PrintValidationErrors(a.out, err) {
			return nil, fmt.Errorf("failed to generate scripts: %w", err)
		}
		return nil, err
	}

	if req.DryRun {
		fmt.Fprintf(a.out, "Dry run (version %s), would write:\n", resp.VersionToken)
		for _, name := range resp.PlannedFiles {
			fmt.Fprintf(a.out, "  %s\n", name)
		}
		return resp, nil
	}

	fmt.Fprintf(a.out, "%s Generated %d keys (version %s)\n", okMark, len(resp.Scripts.QualifiedKeys), resp.VersionToken)
	for _, path := range resp.Files {
		fmt.Fprintf(a.out, "  %s\n", path)
	}
	if resp.GenerationID != "" {
		fmt.Fprintf(a.out, "  recorded as %s\n", resp.GenerationID)
	}
	for _, w := range resp.Warnings {
		fmt.Fprintf(a.out, "%s %s\n", warnMark, w)
	}

	return resp, nil
}

func (a *ResourceAdapter) printScripts(scripts *primary.Scripts, sel ScriptSelection) {
	switch sel {
	case UpScript:
		fmt.Fprintln(a.out, scripts.Up)
	case DownScript:
		fmt.Fprintln(a.out, scripts.Down)
	default:
		fmt.Fprintln(a.out, "-- up")
		fmt.Fprintln(a.out, scripts.Up)
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "-- down")
		fmt.Fprintln(a.out, scripts.Down)
	}
}

// PrintValidationErrors prints each field error of err on its own line.
// Returns false when err carries no field errors.
func PrintValidationErrors(out io.Writer, err error) bool {
	var verrs resource.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		fmt.Fprintf(out, "%s %s: %s\n", failMark, fe.Field, fe.Message)
	}
	return true
}
