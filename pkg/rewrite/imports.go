package rewrite

import (
	"path"
	"strconv"
	"strings"

	"github.com/yaklabco/callshift/pkg/config"
)

// RewriteImports performs the line-oriented import cleanup that follows a
// successful patch: the retired import is rewritten to the new path, or
// removed when the new path is already imported, and the new import is
// inserted when the replacement form needs it. Import statements are
// syntactically single, predictable lines, so no tree machinery is used.
//
// The old import is only removed while its qualifier no longer appears
// outside the import lines; a package still referenced elsewhere keeps its
// import.
func RewriteImports(content []byte, rule config.Rule) []byte {
	if rule.OldImport == "" && rule.NewImport == "" {
		return content
	}

	lines := strings.Split(string(content), "\n")

	oldIdx := -1
	oldAlias := ""
	newPresent := false
	importIdxs := make(map[int]bool)

	inBlock := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "import ("):
			inBlock = true
			importIdxs[i] = true
			continue
		case inBlock && trimmed == ")":
			inBlock = false
			importIdxs[i] = true
			continue
		}

		alias, ipath, ok := parseImportLine(trimmed, inBlock)
		if !ok {
			continue
		}
		importIdxs[i] = true

		if rule.OldImport != "" && ipath == rule.OldImport {
			oldIdx = i
			oldAlias = alias
		}
		if rule.NewImport != "" && ipath == rule.NewImport {
			newPresent = true
		}
	}

	newLine := func(indent string, single bool) string {
		spec := strconv.Quote(rule.NewImport)
		if rule.NewAlias != "" {
			spec = rule.NewAlias + " " + spec
		}
		if single {
			return indent + "import " + spec
		}
		return indent + spec
	}

	if oldIdx >= 0 {
		qualifier := oldAlias
		if qualifier == "" {
			qualifier = path.Base(rule.OldImport)
		}
		stillUsed := qualifierUsed(lines, importIdxs, qualifier)

		indent := leadingWhitespace(lines[oldIdx])
		single := strings.HasPrefix(strings.TrimSpace(lines[oldIdx]), "import ")

		switch {
		case stillUsed:
			// Old package is referenced beyond the migrated calls.
			if rule.NewImport != "" && !newPresent {
				lines = insertLine(lines, oldIdx+1, newLine(indent, single))
			}
		case newPresent || rule.NewImport == "":
			lines = append(lines[:oldIdx], lines[oldIdx+1:]...)
		default:
			lines[oldIdx] = newLine(indent, single)
		}
		return []byte(strings.Join(lines, "\n"))
	}

	if rule.NewImport != "" && !newPresent {
		lines = insertNewImport(lines, newLine)
	}
	return []byte(strings.Join(lines, "\n"))
}

// parseImportLine extracts the alias and import path from one import line.
// Accepted forms: `"p"` or `alias "p"` inside a block, and `import "p"` or
// `import alias "p"` as a single-line declaration.
func parseImportLine(trimmed string, inBlock bool) (alias, ipath string, ok bool) {
	rest := trimmed
	if !inBlock {
		if !strings.HasPrefix(trimmed, "import ") {
			return "", "", false
		}
		rest = strings.TrimSpace(strings.TrimPrefix(trimmed, "import "))
	}
	if rest == "" {
		return "", "", false
	}

	if !strings.HasPrefix(rest, `"`) {
		fields := strings.SplitN(rest, " ", 2)
		if len(fields) != 2 {
			return "", "", false
		}
		alias = fields[0]
		rest = strings.TrimSpace(fields[1])
	}

	end := strings.LastIndex(rest, `"`)
	if !strings.HasPrefix(rest, `"`) || end <= 0 {
		return "", "", false
	}
	p, err := strconv.Unquote(rest[:end+1])
	if err != nil {
		return "", "", false
	}
	return alias, p, true
}

// qualifierUsed reports whether `qualifier.` appears on any non-import line.
func qualifierUsed(lines []string, importIdxs map[int]bool, qualifier string) bool {
	needle := qualifier + "."
	for i, line := range lines {
		if importIdxs[i] {
			continue
		}
		if containsQualifier(line, needle) {
			return true
		}
	}
	return false
}

// containsQualifier looks for needle preceded by a non-identifier byte, so
// that e.g. "mycheck." does not count as a use of "check.".
func containsQualifier(line, needle string) bool {
	for idx := strings.Index(line, needle); idx >= 0; {
		if idx == 0 || !isIdentByte(line[idx-1]) {
			return true
		}
		next := strings.Index(line[idx+1:], needle)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isIdentByte(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

func insertLine(lines []string, at int, line string) []string {
	lines = append(lines, "")
	copy(lines[at+1:], lines[at:])
	lines[at] = line
	return lines
}

// insertNewImport places the new import into the first import block, after
// the last single-line import, or as a fresh declaration under the package
// clause when the file has no imports at all.
func insertNewImport(lines []string, newLine func(indent string, single bool) string) []string {
	lastSingle := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "import (") {
			return insertLine(lines, i+1, newLine("\t", false))
		}
		if strings.HasPrefix(trimmed, "import ") {
			lastSingle = i
		}
	}
	if lastSingle >= 0 {
		return insertLine(lines, lastSingle+1, newLine("", true))
	}
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "package ") {
			lines = insertLine(lines, i+1, newLine("", true))
			return insertLine(lines, i+1, "")
		}
	}
	return lines
}
