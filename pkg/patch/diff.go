package patch

import (
	"fmt"
	"strings"
)

// Diff is a unified diff between original and rewritten content.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// Hunk is one change region with surrounding context lines.
type Hunk struct {
	OrigStart int // 1-based line in the original
	OrigCount int
	NewStart  int // 1-based line in the rewritten content
	NewCount  int
	Lines     []Line
}

// Line is a single diff line without its +/-/space prefix.
type Line struct {
	Kind    LineKind
	Content string
}

// LineKind classifies a diff line.
type LineKind int

const (
	LineContext LineKind = iota
	LineAdd
	LineRemove
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// GenerateDiff computes a unified diff. Returns nil if the contents are equal.
func GenerateDiff(path string, original, rewritten []byte) *Diff {
	orig := splitLines(original)
	next := splitLines(rewritten)

	ops := diffOps(orig, next)
	changed := false
	for _, op := range ops {
		if op.Kind != LineContext {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	d := &Diff{Path: path, Hunks: groupHunks(ops)}
	for _, h := range d.Hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case LineAdd:
				d.Additions++
			case LineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff contains any hunks.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)
	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OrigStart, h.OrigCount, h.NewStart, h.NewCount)
		for _, l := range h.Lines {
			switch l.Kind {
			case LineContext:
				fmt.Fprintf(&b, " %s\n", l.Content)
			case LineAdd:
				fmt.Fprintf(&b, "+%s\n", l.Content)
			case LineRemove:
				fmt.Fprintf(&b, "-%s\n", l.Content)
			}
		}
	}
	return b.String()
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOps builds the full line-level operation sequence using an LCS.
func diffOps(orig, next []string) []Line {
	lcs := longestCommonSubsequence(orig, next)

	var ops []Line
	oi, ni, li := 0, 0, 0
	for oi < len(orig) || ni < len(next) {
		if li < len(lcs) && oi < len(orig) && ni < len(next) &&
			orig[oi] == lcs[li] && next[ni] == lcs[li] {
			ops = append(ops, Line{Kind: LineContext, Content: orig[oi]})
			oi++
			ni++
			li++
			continue
		}
		for oi < len(orig) && (li >= len(lcs) || orig[oi] != lcs[li]) {
			ops = append(ops, Line{Kind: LineRemove, Content: orig[oi]})
			oi++
		}
		for ni < len(next) && (li >= len(lcs) || next[ni] != lcs[li]) {
			ops = append(ops, Line{Kind: LineAdd, Content: next[ni]})
			ni++
		}
	}
	return ops
}

// groupHunks groups change runs into hunks, merging runs whose context
// windows would touch.
func groupHunks(ops []Line) []Hunk {
	type span struct{ start, end int }

	var spans []span
	open := -1
	for i, op := range ops {
		if op.Kind != LineContext {
			if open < 0 {
				open = i
			}
		} else if open >= 0 {
			spans = append(spans, span{open, i})
			open = -1
		}
	}
	if open >= 0 {
		spans = append(spans, span{open, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	var hunks []Hunk
	for i := 0; i < len(spans); {
		j := i + 1
		for j < len(spans) && spans[j].start-spans[j-1].end <= contextLines*2 {
			j++
		}
		hunks = append(hunks, buildHunk(ops, spans[i].start, spans[j-1].end))
		i = j
	}
	return hunks
}

func buildHunk(ops []Line, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	h := Hunk{OrigStart: 1, NewStart: 1}
	for i := range start {
		if ops[i].Kind != LineAdd {
			h.OrigStart++
		}
		if ops[i].Kind != LineRemove {
			h.NewStart++
		}
	}

	for _, op := range ops[start:end] {
		h.Lines = append(h.Lines, op)
		switch op.Kind {
		case LineContext:
			h.OrigCount++
			h.NewCount++
		case LineRemove:
			h.OrigCount++
		case LineAdd:
			h.NewCount++
		}
	}
	return h
}

func longestCommonSubsequence(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	out := make([]string, dp[len(a)][len(b)])
	i, j, k := len(a), len(b), len(out)-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out[k] = a[i-1]
			i--
			j--
			k--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return out
}
