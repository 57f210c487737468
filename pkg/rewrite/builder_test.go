package rewrite_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/callshift/pkg/rewrite"
)

// buildSingle scans src for the rule's one candidate and renders its edit.
func buildSingle(t *testing.T, src string, ruleName string) (start, end int, text string, content string) {
	t.Helper()

	snap := buildSnapshot(t, src)

	rule := assertEqualRule()
	if ruleName == "equals" {
		rule = equalsRule()
	}

	sites := rewrite.Candidates(snap, rule)
	if len(sites) != 1 {
		t.Fatalf("len(sites) = %d, want 1", len(sites))
	}
	shape := rewrite.Classify(sites[0])

	start, end, text, err := rewrite.BuildEdit(snap, rule, sites[0], shape)
	if err != nil {
		t.Fatalf("BuildEdit() error = %v", err)
	}
	return start, end, text, src
}

func TestBuildEdit(t *testing.T) {
	t.Parallel()

	t.Run("ternary form replaces the full call", func(t *testing.T) {
		t.Parallel()

		start, end, text, src := buildSingle(t, `package app

import "example.com/check"

func use(mockObj, want any) {
	a := check.New()
	a.AssertEqual(mockObj, "value")
}
`, "assert-equal")

		if text != `verify.That(mockObj).IsEqualTo("value")` {
			t.Errorf("text = %q", text)
		}
		if got := src[start:end]; got != `a.AssertEqual(mockObj, "value")` {
			t.Errorf("replaced range = %q", got)
		}
	})

	t.Run("binary form consumes the receiver", func(t *testing.T) {
		t.Parallel()

		start, end, text, src := buildSingle(t, `package app

import "example.com/check"

func use(v any) {
	obj := check.Wrap(v)
	obj.Equals(5)
}
`, "equals")

		if text != `verify.That(obj).IsEqualTo(5)` {
			t.Errorf("text = %q", text)
		}
		if got := src[start:end]; got != `obj.Equals(5)` {
			t.Errorf("replaced range = %q", got)
		}
	})

	t.Run("binary form keeps a chained receiver expression", func(t *testing.T) {
		t.Parallel()

		_, _, text, _ := buildSingle(t, `package app

import "example.com/check"

func use(v any) {
	check.Wrap(v).Equals(5)
}
`, "equals")

		if text != `verify.That(check.Wrap(v)).IsEqualTo(5)` {
			t.Errorf("text = %q", text)
		}
	})

	t.Run("raw string right operand is normalized", func(t *testing.T) {
		t.Parallel()

		_, _, text, _ := buildSingle(t, `package app

import "example.com/check"

func use(got any) {
	check.AssertEqual(got, `+"`value`"+`)
}
`, "assert-equal")

		if !strings.Contains(text, `IsEqualTo("value")`) {
			t.Errorf("raw string not normalized: %q", text)
		}
	})

	t.Run("hex integer right operand is normalized to decimal", func(t *testing.T) {
		t.Parallel()

		_, _, text, _ := buildSingle(t, `package app

import "example.com/check"

func use(got any) {
	check.AssertEqual(got, 0x10)
}
`, "assert-equal")

		if !strings.Contains(text, "IsEqualTo(16)") {
			t.Errorf("hex literal not normalized: %q", text)
		}
	})

	t.Run("left operand keeps its source text", func(t *testing.T) {
		t.Parallel()

		_, _, text, _ := buildSingle(t, `package app

import "example.com/check"

func use(want any) {
	check.AssertEqual(0x10, want)
}
`, "assert-equal")

		if !strings.Contains(text, "verify.That(0x10)") {
			t.Errorf("left operand changed: %q", text)
		}
	})

	t.Run("float right operand keeps its source text", func(t *testing.T) {
		t.Parallel()

		_, _, text, _ := buildSingle(t, `package app

import "example.com/check"

func use(got any) {
	check.AssertEqual(got, 1.50)
}
`, "assert-equal")

		if !strings.Contains(text, "IsEqualTo(1.50)") {
			t.Errorf("float operand altered: %q", text)
		}
	})

	t.Run("non-literal right operand keeps its source text", func(t *testing.T) {
		t.Parallel()

		_, _, text, _ := buildSingle(t, `package app

import "example.com/check"

func use(got, want any) {
	check.AssertEqual(got, want)
}
`, "assert-equal")

		if text != "verify.That(got).IsEqualTo(want)" {
			t.Errorf("text = %q", text)
		}
	})

	t.Run("undetermined shape is an error", func(t *testing.T) {
		t.Parallel()

		snap := buildSnapshot(t, `package app`)
		_, _, _, err := rewrite.BuildEdit(snap, assertEqualRule(), rewrite.CallSite{}, rewrite.ShapeUndetermined)
		if err == nil {
			t.Fatal("expected error for undetermined shape")
		}
	})
}
