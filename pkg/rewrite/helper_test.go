package rewrite_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/yaklabco/callshift/pkg/config"
	"github.com/yaklabco/callshift/pkg/source"
)

// Fixture packages type-checked alongside each test file. "check" plays the
// legacy assertion library being migrated away from, "verify" the fluent
// replacement, and "other" a look-alike with the same method names that must
// never match.
const (
	checkPath  = "example.com/check"
	verifyPath = "example.com/verify"
	otherPath  = "example.com/other"
)

const checkSrc = `package check

type Assertion struct{}

func New() Assertion { return Assertion{} }

func (Assertion) AssertEqual(got, want any) {}

func AssertEqual(got, want any) {}

type Value struct{}

func Wrap(v any) Value { return Value{} }

func (Value) Equals(want any) {}
`

const verifySrc = `package verify

type Subject struct{}

func That(v any) Subject { return Subject{} }

func (Subject) IsEqualTo(want any) {}
`

const otherSrc = `package other

type Fake struct{}

func New() Fake { return Fake{} }

func (Fake) AssertEqual(got, want any) {}
`

// fixtureImporter resolves imports against pre-checked fixture packages.
type fixtureImporter map[string]*types.Package

func (m fixtureImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := m[path]; ok {
		return pkg, nil
	}
	return nil, fmt.Errorf("fixture importer: unknown package %q", path)
}

// buildSnapshot parses and type-checks src against the fixture packages.
// Type errors in src are tolerated, matching loader behavior.
func buildSnapshot(t *testing.T, src string) *source.Snapshot {
	t.Helper()

	fset := token.NewFileSet()
	imp := fixtureImporter{}

	deps := map[string]string{
		checkPath:  checkSrc,
		verifyPath: verifySrc,
		otherPath:  otherSrc,
	}
	for path, depSrc := range deps {
		file, err := parser.ParseFile(fset, path+"/pkg.go", depSrc, 0)
		if err != nil {
			t.Fatalf("parse fixture %s: %v", path, err)
		}
		pkg, _, err := source.Check(fset, path, []*ast.File{file}, imp)
		if pkg == nil {
			t.Fatalf("check fixture %s: %v", path, err)
		}
		imp[path] = pkg
	}

	file, err := parser.ParseFile(fset, "app.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse test source: %v", err)
	}
	pkg, info, _ := source.Check(fset, "example.com/app", []*ast.File{file}, imp)

	return &source.Snapshot{
		Path:    "app.go",
		Content: []byte(src),
		Fset:    fset,
		File:    file,
		Info:    info,
		Pkg:     pkg,
	}
}

// assertEqualRule migrates check.AssertEqual (function or method, two
// explicit arguments) to the fluent form.
func assertEqualRule() config.Rule {
	return config.Rule{
		Name:      "assert-equal",
		Method:    "AssertEqual",
		Packages:  []string{checkPath},
		Outer:     "verify.That",
		Inner:     "IsEqualTo",
		OldImport: checkPath,
		NewImport: verifyPath,
	}
}

// equalsRule migrates the single-argument method form, where the receiver
// becomes the left operand.
func equalsRule() config.Rule {
	return config.Rule{
		Name:      "equals",
		Method:    "Equals",
		Packages:  []string{checkPath},
		Outer:     "verify.That",
		Inner:     "IsEqualTo",
		OldImport: checkPath,
		NewImport: verifyPath,
	}
}
