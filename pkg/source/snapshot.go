// Package source wraps the Go parser and type checker behind the small
// surface the rewrite engine needs: parsed files, symbol resolution, and
// byte-offset ranges anchored to the original file content.
package source

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/yaklabco/callshift/pkg/fsutil"
)

// Snapshot is one parsed, type-checked source file. It owns its content for
// the duration of a single rewrite pass and is discarded afterwards.
type Snapshot struct {
	// Path is the file path the snapshot was loaded from.
	Path string

	// Content is the original, unmodified file content. All edit offsets
	// are relative to this slice.
	Content []byte

	// Fset maps token positions back to offsets within Content.
	Fset *token.FileSet

	// File is the parsed syntax tree.
	File *ast.File

	// Info holds type-checker results (uses, selections) for resolution.
	Info *types.Info

	// Pkg is the checked package the file belongs to. May be nil when the
	// package had errors; resolution then degrades to dropping candidates.
	Pkg *types.Package

	// FileInfo captures the on-disk state at load time, used to detect
	// concurrent modification before writing. Nil for in-memory snapshots.
	FileInfo *fsutil.FileInfo
}

// Offsets returns the byte range [start, end) of a node within Content.
func (s *Snapshot) Offsets(n ast.Node) (start, end int) {
	return s.Span(n.Pos(), n.End())
}

// Span converts a token position pair into byte offsets within Content.
func (s *Snapshot) Span(pos, end token.Pos) (int, int) {
	return s.Fset.Position(pos).Offset, s.Fset.Position(end).Offset
}

// Text returns the literal source text of a node, exactly as written.
func (s *Snapshot) Text(n ast.Node) string {
	start, end := s.Offsets(n)
	return string(s.Content[start:end])
}

// Position resolves a token position to file, line, and column.
func (s *Snapshot) Position(pos token.Pos) token.Position {
	return s.Fset.Position(pos)
}
