package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/atelierlabs/atelier/internal/config"
)

func TestCatalogCommand(t *testing.T) {
	output, err := execute(t, "catalog")
	require.NoError(t, err)
	require.Contains(t, output, "Button")
	require.Contains(t, output, "Accordion")
}

func TestVersionCommand(t *testing.T) {
	output, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "Atelier dev")
}

func TestInitCommandNonInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brief.yaml")

	output, err := execute(t, "init", "-o", path)
	require.NoError(t, err)
	require.Contains(t, output, "brief written to "+path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc config.Brief
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.Equal(t, "1.0", doc.Version)
	require.NotEmpty(t, doc.TargetUsers)
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brief.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o644))

	_, err := execute(t, "init", "-o", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}
