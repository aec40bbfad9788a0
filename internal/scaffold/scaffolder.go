package scaffold

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/template"
)

// CommandRunner is the subset of the command runner the scaffolder needs.
// *runner.Runner satisfies it; tests substitute a stub.
type CommandRunner interface {
	GitInit(ctx context.Context, cwd string) error
	NpmInstall(ctx context.Context, cwd string) error
	Check(name string) bool
}

// Options are per-run settings supplied by the CLI.
type Options struct {
	Force       bool // Remove a pre-existing output root before generating.
	SkipInstall bool // Skip the npm install step after generation.
}

// Result summarizes a successful run.
type Result struct {
	Path     string   // Absolute path of the generated project root.
	Files    int      // Number of files generated.
	Warnings []string // Non-fatal issues (optional tools missing, install failures).
}

// Scaffolder materializes a validated ProjectConfig into a project tree.
type Scaffolder struct {
	deployer template.Deployer
	runner   CommandRunner
	baseDir  string // Directory the project name is resolved against.
	logger   *slog.Logger
}

// New creates a Scaffolder. baseDir is the invocation directory the output
// root is resolved against.
func New(deployer template.Deployer, runner CommandRunner, baseDir string, logger *slog.Logger) *Scaffolder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scaffolder{
		deployer: deployer,
		runner:   runner,
		baseDir:  baseDir,
		logger:   logger,
	}
}

// Run generates the complete project tree for cfg, or leaves no trace.
//
// The order is a correctness requirement, not a style choice: frontends,
// then backend, then root files (root aggregates all frontend data), then
// git init so the initial working tree is complete.
func (s *Scaffolder) Run(ctx context.Context, cfg *config.ProjectConfig, opts Options) (*Result, error) {
	// The wizard already validated every value incrementally; re-running
	// the whole-config check here also covers the preset path.
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	result := &Result{}

	// Pre-flight: git is required before any file is written. Optional
	// tools only produce warnings.
	if !s.runner.Check("git") {
		return nil, ErrGitMissing
	}
	if !s.runner.Check("docker") {
		result.Warnings = append(result.Warnings, "docker not found: generated compose manifest cannot be started on this machine")
	}

	outputRoot, err := filepath.Abs(filepath.Join(s.baseDir, cfg.ProjectName))
	if err != nil {
		return nil, fmt.Errorf("resolve output path: %w", err)
	}
	result.Path = outputRoot

	if _, err := os.Stat(outputRoot); err == nil {
		if !opts.Force {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryExists, outputRoot)
		}
		s.logger.Info("removing existing output root", "path", outputRoot)
		if err := os.RemoveAll(outputRoot); err != nil {
			return nil, fmt.Errorf("remove existing %s: %w", outputRoot, err)
		}
	}

	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create output root %s: %w", outputRoot, err)
	}

	// Rollback finalizer: from this point on, any failure (including a
	// panic on a render path) must remove the entire output root before
	// the error propagates. Disarmed only after the last fallible step.
	committed := false
	defer func() {
		if !committed {
			s.logger.Info("rolling back failed scaffold", "path", outputRoot)
			_ = os.RemoveAll(outputRoot)
		}
	}()

	for _, fe := range cfg.Frontends {
		subtree := template.SubtreeVue
		if fe.Framework == config.FrameworkNuxt {
			subtree = template.SubtreeNuxt
		}
		dest := filepath.Join(outputRoot, fe.Name)
		s.logger.Info("rendering frontend", "name", fe.Name, "framework", fe.Framework)
		if err := s.deployer.Deploy(ctx, subtree, dest, template.NewFrontendContext(cfg, fe)); err != nil {
			return nil, fmt.Errorf("frontend %s: %w", fe.Name, err)
		}
	}

	s.logger.Info("rendering backend")
	if err := s.deployer.Deploy(ctx, template.SubtreeBackend, filepath.Join(outputRoot, "backend"), template.NewBackendContext(cfg)); err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}

	s.logger.Info("rendering root files")
	if err := s.deployer.Deploy(ctx, template.SubtreeRoot, outputRoot, template.NewRootContext(cfg)); err != nil {
		return nil, fmt.Errorf("root files: %w", err)
	}

	s.logger.Info("initializing git repository")
	if err := s.runner.GitInit(ctx, outputRoot); err != nil {
		return nil, fmt.Errorf("git init: %w", err)
	}

	result.Files = countFiles(outputRoot)
	committed = true

	// npm install runs after the tree is complete and committed to disk.
	// Failures here are warnings: the generated project is already valid.
	if !opts.SkipInstall {
		s.installDependencies(ctx, cfg, outputRoot, result)
	}

	return result, nil
}

// installDependencies runs npm install in each service directory.
func (s *Scaffolder) installDependencies(ctx context.Context, cfg *config.ProjectConfig, outputRoot string, result *Result) {
	if !s.runner.Check("npm") {
		result.Warnings = append(result.Warnings, "npm not found: skipping dependency installation")
		return
	}
	dirs := make([]string, 0, len(cfg.Frontends)+1)
	for _, fe := range cfg.Frontends {
		dirs = append(dirs, fe.Name)
	}
	dirs = append(dirs, "backend")
	for _, dir := range dirs {
		s.logger.Info("installing dependencies", "service", dir)
		if err := s.runner.NpmInstall(ctx, filepath.Join(outputRoot, dir)); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("npm install failed in %s: %v", dir, err))
		}
	}
}

// countFiles counts regular files under root, excluding the .git directory.
func countFiles(root string) int {
	count := 0
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	return count
}
