package source

import (
	"go/ast"
	"go/token"
	"go/types"
)

// NewInfo allocates a types.Info with the maps the rewrite engine reads.
func NewInfo() *types.Info {
	return &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}
}

// Check type-checks a set of parsed files as one package. Type errors are
// tolerated: the checker records as much resolution information as it can,
// and candidates whose symbols stayed unresolved are simply not rewritten.
func Check(fset *token.FileSet, path string, files []*ast.File, imp types.Importer) (*types.Package, *types.Info, error) {
	info := NewInfo()
	conf := types.Config{
		Importer: imp,
		Error:    func(error) {}, // collect partial info despite errors
	}
	pkg, err := conf.Check(path, fset, files, info)
	return pkg, info, err
}
