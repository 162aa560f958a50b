package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hengadev/printx"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadDocument(t *testing.T) {
	t.Run("json by extension", func(t *testing.T) {
		path := writeFile(t, "doc.json", `{"name":"ada","age":36}`)
		doc, err := readDocument(path, "auto")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "ada", "age": float64(36)}, doc)
	})
	t.Run("yaml by extension", func(t *testing.T) {
		path := writeFile(t, "doc.yaml", "name: ada\nage: 36\n")
		doc, err := readDocument(path, "auto")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "ada", "age": 36}, doc)
	})
	t.Run("explicit format wins over extension", func(t *testing.T) {
		path := writeFile(t, "doc.txt", `[1, 2, 3]`)
		doc, err := readDocument(path, "json")
		require.NoError(t, err)
		assert.Equal(t, []any{float64(1), float64(2), float64(3)}, doc)
	})
	t.Run("malformed json fails", func(t *testing.T) {
		path := writeFile(t, "doc.json", `{"name":`)
		_, err := readDocument(path, "auto")
		assert.Error(t, err)
	})
	t.Run("unknown format fails", func(t *testing.T) {
		path := writeFile(t, "doc.json", `{}`)
		_, err := readDocument(path, "toml")
		assert.ErrorIs(t, err, printx.ErrUnsupportedType)
	})
}

func TestRenderDecodedDocument(t *testing.T) {
	path := writeFile(t, "doc.json", `{"user":{"name":"ada","tags":["math","engines"]}}`)
	doc, err := readDocument(path, "auto")
	require.NoError(t, err)

	p, err := printx.New()
	require.NoError(t, err)
	out, err := p.Render(doc)
	require.NoError(t, err)
	assert.Equal(t, "[user]: map[string]interface {}([name]: ada [tags]: []interface {}(math engines))\n", out)
}

func TestApplyEnvironment(t *testing.T) {
	t.Run("environment overlays file config", func(t *testing.T) {
		t.Setenv(printx.EnvMaxDepth, "2")
		cfg := printx.DefaultConfig()
		cfg.MaxDepth = 9
		got, err := applyEnvironment(cfg)
		require.NoError(t, err)
		assert.Equal(t, 2, got.MaxDepth)
	})
	t.Run("untouched fields survive the overlay", func(t *testing.T) {
		cfg := printx.DefaultConfig()
		cfg.NilMarker = "~"
		got, err := applyEnvironment(cfg)
		require.NoError(t, err)
		assert.Equal(t, "~", got.NilMarker)
	})
}
