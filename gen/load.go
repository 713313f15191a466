package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/rogpeppe/loosen"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// ErrNotFound is returned (wrapped) when a function named
// in Config.Funcs is not declared in any of the files processed.
var ErrNotFound = errors.New("function not found")

// Packages generates the loosened functions for all the files in the
// packages matching the given patterns, interpreted relative to dir.
// Type information is used to find the imports needed by generated
// code and to warn about names that clash with generated ones.
func (cfg *Config) Packages(ctx context.Context, dir string, patterns ...string) ([]*Output, error) {
	pkgs, err := packages.Load(&packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     dir,
		Tests:   cfg.Tests,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("cannot load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found matching %q", patterns)
	}
	var inputs []*Input
	seen := make(map[string]bool)
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			// Errors in a package are usual while its generated
			// code is out of date, so don't give up.
			cfg.logger().Debug("package error", "pkg", pkg.PkgPath, "err", e.Error())
		}
		generated := generatedNames(pkg.Syntax)
		goFiles := make(map[string]bool)
		for _, f := range pkg.GoFiles {
			goFiles[f] = true
		}
		for _, f := range pkg.Syntax {
			path := pkg.Fset.File(f.Pos()).Name()
			if seen[path] || !goFiles[path] || ast.IsGenerated(f) {
				continue
			}
			seen[path] = true
			src, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, &Input{
				Fset:      pkg.Fset,
				Path:      path,
				Src:       src,
				File:      f,
				Info:      pkg.TypesInfo,
				Pkg:       pkg.Types,
				Generated: generated,
			})
		}
	}
	return cfg.run(ctx, inputs)
}

// Paths generates the loosened functions for the Go source
// files with the given paths. No type information is used;
// the other files in each file's directory are parsed
// to find the names already declared in its package.
func (cfg *Config) Paths(ctx context.Context, paths ...string) ([]*Output, error) {
	fset := token.NewFileSet()
	pkgNames := make(map[string]map[string]bool)
	var inputs []*Input
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, path, src, parser.ParseComments)
		if err != nil {
			return nil, err
		}
		if ast.IsGenerated(f) {
			cfg.logger().Debug("skipping generated file", "file", path)
			continue
		}
		key := filepath.Join(filepath.Dir(path), f.Name.Name)
		names, ok := pkgNames[key]
		if !ok {
			names, err = packageNames(filepath.Dir(path), f.Name.Name)
			if err != nil {
				return nil, err
			}
			pkgNames[key] = names
		}
		inputs = append(inputs, &Input{
			Fset:  fset,
			Path:  path,
			Src:   src,
			File:  f,
			Names: names,
		})
	}
	return cfg.run(ctx, inputs)
}

// packageNames returns the names declared at package level
// by the Go files in dir that belong to package pkg.
// Files that do not parse are ignored.
func packageNames(dir, pkg string) (map[string]bool, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	names := make(map[string]bool)
	for _, file := range files {
		f, err := parser.ParseFile(fset, file, nil, parser.SkipObjectResolution)
		if err != nil || f.Name.Name != pkg {
			continue
		}
		maps.Copy(names, topLevelNames(f))
	}
	return names, nil
}

// run processes all the inputs concurrently. It returns the errors
// from all the inputs that failed.
func (cfg *Config) run(ctx context.Context, inputs []*Input) ([]*Output, error) {
	outputs := make([]*Output, len(inputs))
	errs := make([]error, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Jobs > 0 {
		g.SetLimit(cfg.Jobs)
	}
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outputs[i], errs[i] = cfg.File(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	var missing []error
	for _, name := range cfg.Funcs {
		if !slices.ContainsFunc(outputs, func(out *Output) bool {
			return slices.Contains(out.Funcs, name)
		}) {
			missing = append(missing, fmt.Errorf("%w: %s", ErrNotFound, name))
		}
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}
	return outputs, nil
}

// Write writes all the outputs that have changed and removes
// stale files previously written by loosen.
func (cfg *Config) Write(outputs []*Output) error {
	log := cfg.logger()
	for _, out := range outputs {
		old, err := os.ReadFile(out.Path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		exists := err == nil
		switch {
		case out.Content == nil:
			if exists && IsGenerated(old) {
				if err := os.Remove(out.Path); err != nil {
					return err
				}
				log.Info("removed stale file", "file", out.Path)
			}
		case exists && bytes.Equal(old, out.Content):
			log.Debug("file unchanged", "file", out.Path)
		default:
			if err := os.WriteFile(out.Path, out.Content, 0o666); err != nil {
				return err
			}
			log.Info("wrote file", "file", out.Path, "funcs", len(out.Funcs))
		}
	}
	return nil
}

// generatedNames returns the positions of the names of all the
// functions generated by loosen in files.
func generatedNames(files []*ast.File) map[token.Pos]bool {
	names := make(map[token.Pos]bool)
	for _, f := range files {
		for _, d := range f.Decls {
			if decl, ok := d.(*ast.FuncDecl); ok && loosen.HasDirective(decl.Doc, loosen.GeneratedDirective) {
				names[decl.Name.Pos()] = true
			}
		}
	}
	return names
}
