package runner

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/callshift/pkg/source"
)

// FilterSnapshots drops snapshots the run must not touch: files matching an
// exclude glob, vendored code, and generated code (which would be clobbered
// on the next regeneration anyway). The result is sorted by path so the run
// is deterministic regardless of load order.
func FilterSnapshots(snaps []*source.Snapshot, opts Options) []*source.Snapshot {
	kept := make([]*source.Snapshot, 0, len(snaps))

	for _, snap := range snaps {
		rel := relPath(snap.Path, opts.WorkingDir)

		if excluded(rel, opts.ExcludeGlobs) {
			continue
		}
		if enry.IsVendor(rel) || enry.IsGenerated(rel, snap.Content) {
			continue
		}
		kept = append(kept, snap)
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Path < kept[j].Path })
	return kept
}

func relPath(path, workDir string) string {
	if workDir == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// excluded matches rel against the globs: full path, base name, or a
// trailing-slash directory prefix.
func excluded(rel string, globs []string) bool {
	rel = filepath.ToSlash(rel)
	for _, glob := range globs {
		if strings.HasSuffix(glob, "/") {
			if strings.HasPrefix(rel, glob) || strings.HasPrefix(rel, strings.TrimSuffix(glob, "/")+"/") {
				return true
			}
			continue
		}
		if ok, _ := filepath.Match(glob, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(glob, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}
