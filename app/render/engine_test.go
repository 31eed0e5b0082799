package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRender(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "user"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "user", "login.html"),
		[]byte("<h1>{{.Title}}</h1>"), 0o644))

	engine := New(dir)
	require.NoError(t, engine.Load())

	var sb strings.Builder
	err := engine.Render(&sb, "user/login", map[string]string{"Title": "login"})
	require.NoError(t, err)
	assert.Equal(t, "<h1>login</h1>", sb.String())
}

func TestEngineUnknownTemplate(t *testing.T) {
	engine := New(t.TempDir())
	require.NoError(t, engine.Load())

	var sb strings.Builder
	err := engine.Render(&sb, "user/missing", nil)
	assert.Error(t, err)
}

func TestEngineEscapesBind(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "info.html"),
		[]byte("{{.Message}}"), 0o644))

	engine := New(dir)
	require.NoError(t, engine.Load())

	var sb strings.Builder
	require.NoError(t, engine.Render(&sb, "info", map[string]string{"Message": "<script>"}))
	assert.Equal(t, "&lt;script&gt;", sb.String())
}
