// Package domain holds the path-to-symbol compiler: the tree scanner, the
// identifier synthesizer, the model builder and the workflows that drive them.
package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pmezard/go-difflib/difflib"
	"pathenum.dev/pkg/pathenum/internal/adapter"
	"pathenum.dev/pkg/pathenum/internal/controller"
	"pathenum.dev/pkg/pathenum/internal/emitter"
	m "pathenum.dev/pkg/pathenum/internal/model"
)

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	// Compile scans one tree and builds its CompiledSet.
	Compile(ctx context.Context, args CompileArgs) (m.CompiledSet, error)
	// List compiles every set and hands it to the UI.
	List(ctx context.Context, sets []ListArgs) error
	// Generate compiles every set and writes, or checks, its Go file.
	Generate(ctx context.Context, sets []GenerateArgs) error
}

type workflow struct {
	adapter.TreeFSAdapter
	adapter.GoFileAdapter
	controller.UI
	scanner *Scanner
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	treeAdapter adapter.TreeFSAdapter,
	goFileAdapter adapter.GoFileAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		TreeFSAdapter: treeAdapter,
		GoFileAdapter: goFileAdapter,
		UI:            ui,
		scanner:       NewScanner(),
	}
}

func (w *workflow) Compile(ctx context.Context, args CompileArgs) (m.CompiledSet, error) {
	if err := ctx.Err(); err != nil {
		return m.CompiledSet{}, err
	}

	tree := w.OpenTree(args.Root)
	request := ScanRequest{Extensions: args.Extensions, Prefix: args.Prefix}
	builder := NewBuilder(NewSynthesizer(args.Dot, args.Casing))

	slog.Debug("compiling", "root", args.Root, "extensions", args.Extensions, "prefix", args.Prefix, "parallel", args.Parallel)

	entries := w.scanner.Scan(tree, request)

	if args.Parallel > 1 {
		collected, err := w.scanner.ScanParallel(ctx, tree, request, args.Parallel)
		if err != nil {
			return m.CompiledSet{}, fmt.Errorf("scan %s: %w", args.Root, err)
		}

		entries = slices.Values(collected)
	}

	set, err := builder.Build(entries)
	if err != nil {
		return m.CompiledSet{}, fmt.Errorf("compile %s: %w", args.Root, err)
	}

	slog.Debug("compiled", "root", args.Root, "symbols", set.Len())

	return set, nil
}

func (w *workflow) List(ctx context.Context, sets []ListArgs) error {
	for _, args := range sets {
		set, err := w.Compile(ctx, args.CompileArgs)
		if err != nil {
			slog.Error("Failed to compile set", "set", args.Name, "error", err)
			return err
		}

		if err := w.DisplaySymbols(ctx, args.Name, set); err != nil {
			slog.Error("Failed to display set", "set", args.Name, "error", err)
			return fmt.Errorf("display: %w", err)
		}
	}

	return nil
}

func (w *workflow) Generate(ctx context.Context, sets []GenerateArgs) error {
	var stale []m.Path

	for _, args := range sets {
		set, err := w.Compile(ctx, args.CompileArgs)
		if err != nil {
			slog.Error("Failed to compile set", "set", args.Type, "error", err)
			return err
		}

		src, err := emitter.Render(set, emitter.Options{
			Package:    args.Package,
			Type:       args.Type,
			Root:       args.Root,
			Extensions: args.Extensions,
			Prefix:     args.Prefix,
		})
		if err != nil {
			slog.Error("Failed to render set", "set", args.Type, "error", err)
			return err
		}

		if args.Check {
			upToDate, err := w.check(ctx, args.Output, src)
			if err != nil {
				return err
			}

			if !upToDate {
				stale = append(stale, args.Output)
			}

			continue
		}

		if err := w.WriteGoFile(args.Output, src); err != nil {
			slog.Error("Failed to write generated file", "output", args.Output, "error", err)
			return err
		}

		slog.Info("generated", "set", args.Type, "output", args.Output, "symbols", set.Len())
		w.DisplayGenerated(ctx, args.Output, set)
	}

	if len(stale) > 0 {
		return fmt.Errorf("%v: %w", stale, ErrStale)
	}

	return nil
}

// check compares the file on disk with src and displays a unified diff when
// they differ.
func (w *workflow) check(ctx context.Context, output m.Path, src []byte) (bool, error) {
	current, _, err := w.ReadGoFile(output)
	if err != nil {
		slog.Error("Failed to read generated file", "output", output, "error", err)
		return false, err
	}

	if bytes.Equal(current, src) {
		return true, nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(src)),
		FromFile: string(output),
		ToFile:   string(output) + " (regenerated)",
		Context:  3,
	})
	if err != nil {
		return false, fmt.Errorf("diff %s: %w", output, err)
	}

	slog.Warn("generated file is stale", "output", output)
	w.DisplayStale(ctx, output, diff)

	return false, nil
}
