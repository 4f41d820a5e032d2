package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-intake/pkg/export"
	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/profile/profiletest"
)

func writeProfile(t *testing.T, p profile.Profile, renderer export.Renderer) string {
	t.Helper()
	data, err := renderer.Render(context.Background(), p)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "perfil."+renderer.Name())
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitUsage, run(nil, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"nope"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "nope"`)
	assert.Equal(t, exitOK, run([]string{"help"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "validate")
}

func TestSchemaCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, exitOK, run([]string{"schema", "-format", "yaml"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "openapi: 3.0.3")

	stdout.Reset()
	out := filepath.Join(t.TempDir(), "schema.json")
	require.Equal(t, exitOK, run([]string{"schema", "-out", out}, &stdout, &stderr))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"`+export.SchemaName+`"`)

	assert.Equal(t, exitUsage, run([]string{"schema", "-format", "xml"}, &stdout, &stderr))
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid yaml", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		path := writeProfile(t, profiletest.Profile(), export.YAML{})
		require.Equal(t, exitOK, run([]string{"validate", path}, &stdout, &stderr), stdout.String()+stderr.String())
		assert.Contains(t, stdout.String(), "perfil válido (15/15 tópicos)")
	})

	t.Run("missing topics", func(t *testing.T) {
		p := profiletest.Profile()
		p.StandardResponses = nil
		path := writeProfile(t, p, export.JSON{})

		var stdout, stderr bytes.Buffer
		assert.Equal(t, exitFailure, run([]string{"validate", path}, &stdout, &stderr))
		assert.Contains(t, stdout.String(), "standardResponses: tópico não preenchido")

		stdout.Reset()
		assert.Equal(t, exitOK, run([]string{"validate", "-partial", path}, &stdout, &stderr))
	})

	t.Run("field issues", func(t *testing.T) {
		p := profiletest.Profile()
		p.Capacity.MaxSimultaneousAppointments = p.Capacity.MaxDailyAppointments + 1
		path := writeProfile(t, p, export.JSON{})

		var stdout, stderr bytes.Buffer
		assert.Equal(t, exitFailure, run([]string{"validate", path}, &stdout, &stderr))
		assert.True(t, strings.Contains(stdout.String(), "capacity.maxSimultaneousAppointments: "), stdout.String())
	})

	t.Run("usage", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, exitUsage, run([]string{"validate"}, &stdout, &stderr))
		assert.Equal(t, exitFailure, run([]string{"validate", filepath.Join(t.TempDir(), "none.json")}, &stdout, &stderr))
	})
}
