package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/rdom/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, dom.DefaultFormatting(), cfg.Formatting())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want dom.Formatting
	}{
		{"two spaces", "format:\n  indent: 2\n", dom.Formatting{Indent: "  ", Newline: "\n"}},
		{"tabs", "format:\n  tabs: true\n", dom.Formatting{Indent: "\t", Newline: "\n"}},
		{"crlf", "format:\n  newline: CRLF\n", dom.Formatting{Indent: "    ", Newline: "\r\n"}},
		{"log only", "log:\n  verbosity: 2\n", dom.DefaultFormatting()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))
			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Formatting())
		})
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"newline", "format:\n  newline: cr\n"},
		{"indent", "format:\n  indent: -1\n"},
		{"not yaml", "format: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := DefaultConfig()
	cfg.Log.Verbosity = 1
	cfg.Log.File = "rdom.log"
	cfg.Format.Tabs = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	assert.Equal(t, "", Find(nested))

	path := filepath.Join(root, "a", FileName)
	require.NoError(t, os.WriteFile(path, nil, 0644))
	assert.Equal(t, path, Find(nested))
}
