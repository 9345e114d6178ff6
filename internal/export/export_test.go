package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	"github.com/atelierlabs/atelier/internal/model"
	"github.com/atelierlabs/atelier/internal/pipeline"
)

func generatedOutput(t *testing.T) *model.Output {
	t.Helper()

	brief := model.Brief{
		ProductIdea: "Internal tooling portal",
		TargetUsers: []model.TargetUser{model.UserEnterprise},
		BrandTraits: []model.BrandTrait{model.TraitProfessional},
		Platforms:   []model.Platform{model.PlatformWeb},
	}
	out, err := pipeline.Generate(brief, pipeline.Options{
		Name:        "tooling-ds",
		GeneratedAt: time.Unix(1700000000, 0).UTC(),
	})
	require.NoError(t, err)
	return out
}

func TestWriteNilOutput(t *testing.T) {
	t.Parallel()

	_, err := Write(nil, Options{Dir: t.TempDir()})
	require.Error(t, err)
}

func TestWriteArtifacts(t *testing.T) {
	t.Parallel()

	out := generatedOutput(t)
	dir := t.TempDir()

	written, err := Write(out, Options{Dir: dir})
	require.NoError(t, err)
	require.NotEmpty(t, written)

	for _, rel := range []string{
		"tokens.css",
		"tailwind.config.js",
		"package.json",
		"figma-tokens.json",
		"src/index.ts",
		"README.md",
		"design-system.json",
		"docs/accessibility.md",
	} {
		require.Contains(t, written, rel)
		_, err := os.Stat(filepath.Join(dir, rel))
		require.NoError(t, err, "expected %s on disk", rel)
	}

	for _, artifact := range out.Library.Components {
		content, err := os.ReadFile(filepath.Join(dir, artifact.Path))
		require.NoError(t, err)
		require.Equal(t, artifact.Content, string(content))
	}
}

func TestWriteSortedPaths(t *testing.T) {
	t.Parallel()

	out := generatedOutput(t)

	first, err := Write(out, Options{Dir: t.TempDir()})
	require.NoError(t, err)
	second, err := Write(out, Options{Dir: t.TempDir()})
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.IsIncreasing(t, first)
}

func TestWriteGitInit(t *testing.T) {
	t.Parallel()

	out := generatedOutput(t)
	dir := t.TempDir()

	_, err := Write(out, Options{Dir: dir, GitInit: true})
	require.NoError(t, err)

	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)

	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	require.Equal(t, "Generate design system", commit.Message)
	require.Equal(t, out.GeneratedAt.Unix(), commit.Author.When.Unix())
}
