// Package rewrite implements the call-site migration engine: it walks a
// parsed file for matching call expressions, classifies their shape, renders
// replacement text at byte-exact ranges, and accumulates the edits for one
// file into an all-or-nothing batch.
package rewrite

import (
	"go/ast"
	"go/types"

	"github.com/yaklabco/callshift/pkg/config"
	"github.com/yaklabco/callshift/pkg/source"
)

// CallSite is one call expression retained as a rewrite candidate.
// It is read-only after construction.
type CallSite struct {
	// Call is the matched call expression.
	Call *ast.CallExpr

	// Receiver is the expression the method is invoked on, or nil when the
	// call has no value receiver (package-level function, dot import).
	Receiver ast.Expr

	// Args are the explicit argument expressions, in order.
	Args []ast.Expr

	// DeclPath is the import path of the declaring package.
	DeclPath string

	// Qualified is the fully qualified name of the declaring symbol.
	Qualified string
}

// Candidates walks the snapshot's syntax tree and returns every call whose
// invoked name matches the rule's method and whose declaring symbol resolves
// into the rule's package allow-list. Calls that fail to resolve are dropped
// silently: unresolved means "not our call", not "ambiguous".
func Candidates(snap *source.Snapshot, rule config.Rule) []CallSite {
	var sites []CallSite

	ast.Inspect(snap.File, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || calleeName(call) != rule.Method {
			return true
		}

		site, ok := resolve(snap.Info, call)
		if !ok || !rule.AllowsPackage(site.DeclPath) {
			return true
		}
		sites = append(sites, site)
		return true
	})

	return sites
}

// calleeName returns the bare invoked name of a call, or "".
func calleeName(call *ast.CallExpr) string {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	default:
		return ""
	}
}

// resolve maps a call to its declaring symbol using type-checker info.
// For a method call it also identifies the receiver expression; a package
// qualifier is not a receiver.
func resolve(info *types.Info, call *ast.CallExpr) (CallSite, bool) {
	site := CallSite{Call: call, Args: call.Args}

	switch fun := call.Fun.(type) {
	case *ast.SelectorExpr:
		if sel, ok := info.Selections[fun]; ok && sel.Kind() == types.MethodVal {
			fn, ok := sel.Obj().(*types.Func)
			if !ok || fn.Pkg() == nil {
				return site, false
			}
			site.Receiver = fun.X
			site.DeclPath = fn.Pkg().Path()
			site.Qualified = fn.FullName()
			return site, true
		}
		// No selection entry: fun.X is a package qualifier (or unresolved).
		fn, ok := info.Uses[fun.Sel].(*types.Func)
		if !ok || fn.Pkg() == nil {
			return site, false
		}
		site.DeclPath = fn.Pkg().Path()
		site.Qualified = fn.FullName()
		return site, true

	case *ast.Ident:
		// Dot import or same-package call: no receiver either way.
		fn, ok := info.Uses[fun].(*types.Func)
		if !ok || fn.Pkg() == nil {
			return site, false
		}
		site.DeclPath = fn.Pkg().Path()
		site.Qualified = fn.FullName()
		return site, true
	}

	return site, false
}
