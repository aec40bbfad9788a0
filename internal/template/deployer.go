package template

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Deployer materializes a template subtree into an output directory,
// rendering or copying each file per Classify. The caller guarantees the
// output directory starts empty; deployment into an empty target is
// deterministic, so two runs with the same data produce identical trees.
type Deployer interface {
	// Deploy walks the subtree rooted at subtree within the backing FS and
	// writes every file under outputDir, preserving directory structure.
	Deploy(ctx context.Context, subtree, outputDir string, data any) error
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	fsys   fs.FS
	logger *slog.Logger
}

// NewDeployer creates a Deployer over the given filesystem. In production
// the fs.FS comes from go:embed; tests use testing/fstest.MapFS.
func NewDeployer(fsys fs.FS, logger *slog.Logger) Deployer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &deployer{fsys: fsys, logger: logger}
}

// Deploy walks the subtree and writes each file to outputDir. Any render,
// classification, or filesystem error aborts the walk and propagates so the
// scaffolder can roll back the whole run.
func (d *deployer) Deploy(ctx context.Context, subtree, outputDir string, data any) error {
	outputDir = filepath.Clean(outputDir)

	sub, err := fs.Sub(d.fsys, subtree)
	if err != nil {
		return fmt.Errorf("%w: subtree %q", ErrTemplateNotFound, subtree)
	}
	r := NewRenderer(sub)

	return fs.WalkDir(sub, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == "." || entry.IsDir() {
			// Directories are created on demand with their first file.
			return nil
		}

		action, outRel := Classify(path)
		if err := validateOutputPath(outputDir, outRel); err != nil {
			return err
		}

		var content []byte
		switch action {
		case ActionRender:
			rendered, renderErr := r.Render(path, data)
			if renderErr != nil {
				return fmt.Errorf("render %s/%s: %w", subtree, path, renderErr)
			}
			content = rendered
		case ActionCopy:
			raw, readErr := fs.ReadFile(sub, path)
			if readErr != nil {
				return fmt.Errorf("read %s/%s: %w", subtree, path, readErr)
			}
			content = raw
		}

		destPath := filepath.Join(outputDir, filepath.FromSlash(outRel))
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return fmt.Errorf("mkdir %q: %w", filepath.Dir(destPath), err)
		}

		perm := fs.FileMode(0o644)
		if strings.HasSuffix(outRel, ".sh") {
			perm = 0o755
		}
		if err := os.WriteFile(destPath, content, perm); err != nil {
			return fmt.Errorf("write %q: %w", destPath, err)
		}

		d.logger.Debug("file deployed", "subtree", subtree, "src", path, "dest", outRel)
		return nil
	})
}

// validateOutputPath ensures a classified output path stays inside outputDir.
func validateOutputPath(outputDir, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}
	return nil
}
