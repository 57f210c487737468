package source

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sync"

	"golang.org/x/tools/go/packages"

	"github.com/yaklabco/callshift/pkg/fsutil"
)

// LoadOptions controls package loading.
type LoadOptions struct {
	// Dir is the directory load queries are resolved against.
	Dir string

	// Patterns are go/packages patterns ("./...", a directory, or a
	// "file=" query). Empty defaults to "./...".
	Patterns []string

	// IncludeTests loads _test.go files as well.
	IncludeTests bool
}

// loadMode requests syntax plus full type information for resolution.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedSyntax

// Load parses and type-checks the packages matching opts and returns one
// Snapshot per source file. Packages with type errors are kept: their
// snapshots carry whatever resolution information the checker produced.
//
// Snapshot content is the exact byte slice the parser consumed, captured
// through a ParseFile hook, so file offsets always agree with the bytes
// edits are spliced into even if the file changes on disk mid-load.
func Load(ctx context.Context, opts LoadOptions) ([]*Snapshot, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	var mu sync.Mutex
	parsed := make(map[string][]byte)

	cfg := &packages.Config{
		Context: ctx,
		Dir:     opts.Dir,
		Mode:    loadMode,
		Tests:   opts.IncludeTests,
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			mu.Lock()
			parsed[filename] = src
			mu.Unlock()
			return parser.ParseFile(fset, filename, src, parser.ParseComments|parser.AllErrors|parser.SkipObjectResolution)
		},
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	seen := make(map[string]struct{})
	var snaps []*Snapshot

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			tf := pkg.Fset.File(file.Pos())
			if tf == nil {
				continue
			}
			path := tf.Name()
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}

			content, ok := parsed[path]
			if !ok {
				continue
			}
			info, err := fsutil.NewFileInfo(path, content)
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", path, err)
			}

			snaps = append(snaps, &Snapshot{
				Path:     path,
				Content:  content,
				Fset:     pkg.Fset,
				File:     file,
				Info:     pkg.TypesInfo,
				Pkg:      pkg.Types,
				FileInfo: info,
			})
		}
	}

	return snaps, nil
}
