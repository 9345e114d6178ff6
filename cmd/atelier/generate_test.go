package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testBrief = `version: "1.0"
name: metrics-hub
product_idea: Analytics dashboard for B2B SaaS metrics
target_users:
  - enterprise
brand_traits:
  - modern
  - professional
platforms:
  - dashboard
  - web
settings:
  dark_mode: true
`

func writeTestBrief(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brief.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	brief := writeTestBrief(t, testBrief)
	dir := filepath.Join(t.TempDir(), "out")

	output, err := execute(t, "generate", "-c", brief, "-o", dir)
	require.NoError(t, err)
	require.Contains(t, output, "files written to "+dir)

	for _, rel := range []string{"tokens.css", "package.json", "design-system.json", "src/index.ts"} {
		_, err := os.Stat(filepath.Join(dir, rel))
		require.NoError(t, err, "expected %s", rel)
	}
}

func TestGenerateCommandJSON(t *testing.T) {
	brief := writeTestBrief(t, testBrief)
	dir := filepath.Join(t.TempDir(), "out")

	output, err := execute(t, "generate", "-c", brief, "-o", dir, "--json")
	require.NoError(t, err)
	require.Contains(t, output, `"principles"`)
	require.Contains(t, output, `"industry": "dashboard"`)
}

func TestGenerateCommandGitInit(t *testing.T) {
	brief := writeTestBrief(t, testBrief)
	dir := filepath.Join(t.TempDir(), "out")

	_, err := execute(t, "generate", "-c", brief, "-o", dir, "--git-init")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err)
}

func TestGenerateCommandRequiresBrief(t *testing.T) {
	_, err := execute(t, "generate")
	require.Error(t, err)
}

func TestGenerateCommandMissingBriefFile(t *testing.T) {
	_, err := execute(t, "generate", "-c", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestGenerateCommandInvalidBrief(t *testing.T) {
	brief := writeTestBrief(t, `version: "1.0"
name: broken
product_idea: Something
target_users: []
platforms:
  - web
`)

	_, err := execute(t, "generate", "-c", brief, "-o", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "targetusers")
}
