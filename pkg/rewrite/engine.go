package rewrite

import (
	"context"
	"fmt"

	"github.com/yaklabco/callshift/pkg/config"
	"github.com/yaklabco/callshift/pkg/patch"
	"github.com/yaklabco/callshift/pkg/source"
)

// FileResult holds the outcome of scanning one file.
type FileResult struct {
	// Snapshot is the scanned file.
	Snapshot *source.Snapshot

	// Batch holds the accumulated edits, or the abort reason.
	Batch *patch.Batch

	// Sites is the number of retained call-site candidates.
	Sites int

	// RuleHits counts built edits per rule name, for import rewriting
	// and reporting.
	RuleHits map[string]int
}

// Engine scans files against a set of migration rules.
type Engine struct {
	// Rules are the call patterns to migrate.
	Rules []config.Rule
}

// NewEngine creates an Engine for the given rules.
func NewEngine(rules []config.Rule) *Engine {
	return &Engine{Rules: rules}
}

// ScanFile walks the snapshot for every rule, classifies each candidate,
// and accumulates one edit per call site into a single batch. The first
// undetermined candidate aborts the batch; edits built before it are
// discarded and the file is reported as skipped, never partially rewritten.
func (e *Engine) ScanFile(ctx context.Context, snap *source.Snapshot) (*FileResult, error) {
	result := &FileResult{
		Snapshot: snap,
		Batch:    patch.NewBatch(),
		RuleHits: make(map[string]int),
	}

	for _, rule := range e.Rules {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("scan cancelled: %w", ctx.Err())
		default:
		}

		sites := Candidates(snap, rule)
		result.Sites += len(sites)

		for _, site := range sites {
			shape := Classify(site)
			if shape == ShapeUndetermined {
				pos := snap.Position(site.Call.Pos())
				result.Batch.Abort(fmt.Sprintf(
					"cannot classify call to %s at %s:%d:%d",
					rule.Method, pos.Filename, pos.Line, pos.Column))
				return result, nil
			}

			start, end, text, err := BuildEdit(snap, rule, site, shape)
			if err != nil {
				result.Batch.Abort(err.Error())
				return result, nil
			}
			result.Batch.Add(start, end, text)
			result.RuleHits[rule.Name]++
		}
	}

	return result, nil
}
