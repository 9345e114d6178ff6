// Package export writes a generated design system to disk. The pipeline
// itself never touches the filesystem; this is the only place artifacts
// become files.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/atelierlabs/atelier/internal/logger"
	"github.com/atelierlabs/atelier/internal/model"
	"github.com/atelierlabs/atelier/pkg/errors"
)

// Options controls where and how the output is written.
type Options struct {
	// Dir is the output directory. It is created if missing.
	Dir string
	// GitInit initializes a git repository in Dir and commits everything
	// written.
	GitInit bool
	// Logger receives progress entries. Nil disables logging.
	Logger *logger.Logger
}

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Write materializes every artifact of the output under opts.Dir and
// returns the relative paths written, sorted. The full Output is also
// dumped as design-system.json for machine consumers.
func Write(out *model.Output, opts Options) ([]string, error) {
	if out == nil {
		return nil, errors.NewValidationError("output", "nothing to export", nil)
	}
	log := opts.Logger

	files := map[string]string{
		"tokens.css":         out.Library.CSSVariables,
		"tailwind.config.js": out.Library.TailwindConfig,
		"package.json":       out.Library.PackageJSON,
		"figma-tokens.json":  out.Library.FigmaTokens,
		"src/index.ts":       out.Library.IndexFile,
		"README.md":          out.Library.Readme,
	}
	for _, group := range [][]model.Artifact{out.Library.Components, out.Library.Stories, out.Library.Tests} {
		for _, artifact := range group {
			files[artifact.Path] = artifact.Content
		}
	}
	for topic, content := range out.Guidelines {
		files[filepath.Join("docs", topic+".md")] = content
	}

	dump, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.NewExportError("design-system.json", err)
	}
	files["design-system.json"] = string(dump) + "\n"

	written := make([]string, 0, len(files))
	for rel := range files {
		written = append(written, rel)
	}
	sort.Strings(written)

	for _, rel := range written {
		target := filepath.Join(opts.Dir, rel)
		if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
			return nil, errors.NewExportError(target, err)
		}
		if err := os.WriteFile(target, []byte(files[rel]), filePerm); err != nil {
			return nil, errors.NewExportError(target, err)
		}
	}
	log.With("files", len(written)).Info("artifacts written")

	if opts.GitInit {
		if err := initRepo(out, opts); err != nil {
			return nil, err
		}
		log.Info("git repository initialized")
	}

	return written, nil
}

// initRepo creates a git repository in the output directory with a single
// commit containing everything written. The commit timestamp reuses the
// output's generation stamp.
func initRepo(out *model.Output, opts Options) error {
	repo, err := git.PlainInit(opts.Dir, false)
	if err == git.ErrRepositoryAlreadyExists {
		repo, err = git.PlainOpen(opts.Dir)
	}
	if err != nil {
		return errors.NewExportError(opts.Dir, err)
	}

	tree, err := repo.Worktree()
	if err != nil {
		return errors.NewExportError(opts.Dir, err)
	}
	if err := tree.AddGlob("."); err != nil {
		return errors.NewExportError(opts.Dir, err)
	}

	sig := &object.Signature{
		Name:  "atelier",
		Email: "atelier@localhost",
		When:  out.GeneratedAt,
	}
	_, err = tree.Commit("Generate design system", &git.CommitOptions{
		Author:    sig,
		Committer: sig,
	})
	if err != nil {
		return errors.NewExportError(opts.Dir, err)
	}
	return nil
}
