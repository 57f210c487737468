package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/callshift/pkg/config"
)

func TestFromYAML(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		data := []byte(`
rules:
  - name: assert-equal
    method: AssertEqual
    packages:
      - example.com/check
    outer: verify.That
    inner: IsEqualTo
    old_import: example.com/check
    new_import: example.com/verify
    new_alias: v
ignore:
  - "testdata/"
  - "*_gen.go"
include_tests: true
backups:
  enabled: true
`)

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)

		require.Len(t, cfg.Rules, 1)
		rule := cfg.Rules[0]
		assert.Equal(t, "assert-equal", rule.Name)
		assert.Equal(t, "AssertEqual", rule.Method)
		assert.Equal(t, []string{"example.com/check"}, rule.Packages)
		assert.Equal(t, "verify.That", rule.Outer)
		assert.Equal(t, "IsEqualTo", rule.Inner)
		assert.Equal(t, "example.com/check", rule.OldImport)
		assert.Equal(t, "example.com/verify", rule.NewImport)
		assert.Equal(t, "v", rule.NewAlias)

		assert.Equal(t, []string{"testdata/", "*_gen.go"}, cfg.Ignore)
		assert.True(t, cfg.IncludeTests)
		assert.True(t, cfg.Backups.Enabled)
	})

	t.Run("empty yaml keeps defaults", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(""))
		require.NoError(t, err)

		assert.Empty(t, cfg.Rules)
		assert.Equal(t, config.FormatText, cfg.Format)
		assert.False(t, cfg.Backups.Enabled)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.FromYAML([]byte("rules: [unclosed"))
		require.Error(t, err)
	})

	t.Run("cli-only fields are not parsed", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("dryrun: true\njobs: 9\n"))
		require.NoError(t, err)

		assert.False(t, cfg.DryRun)
		assert.Zero(t, cfg.Jobs)
	})
}

func TestToYAML(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		var c *config.Config
		data, err := c.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("round trip", func(t *testing.T) {
		original := &config.Config{
			Rules: []config.Rule{
				{
					Name:      "assert-equal",
					Method:    "AssertEqual",
					Packages:  []string{"example.com/check"},
					Outer:     "verify.That",
					Inner:     "IsEqualTo",
					OldImport: "example.com/check",
					NewImport: "example.com/verify",
				},
			},
			Ignore:       []string{"testdata/"},
			IncludeTests: true,
		}

		data, err := original.ToYAML()
		require.NoError(t, err)

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)

		assert.Equal(t, original.Rules, parsed.Rules)
		assert.Equal(t, original.Ignore, parsed.Ignore)
		assert.Equal(t, original.IncludeTests, parsed.IncludeTests)
	})
}
