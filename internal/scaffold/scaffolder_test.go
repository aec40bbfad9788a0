package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/template"
)

// stubRunner satisfies CommandRunner without touching the host system.
type stubRunner struct {
	gitErr    error
	npmErr    error
	missing   map[string]bool
	gitInits  []string
	npmCalls  []string
}

func (s *stubRunner) GitInit(_ context.Context, cwd string) error {
	s.gitInits = append(s.gitInits, cwd)
	return s.gitErr
}

func (s *stubRunner) NpmInstall(_ context.Context, cwd string) error {
	s.npmCalls = append(s.npmCalls, cwd)
	return s.npmErr
}

func (s *stubRunner) Check(name string) bool {
	return !s.missing[name]
}

func testConfig(frontends ...config.FrontendConfig) *config.ProjectConfig {
	if len(frontends) == 0 {
		frontends = []config.FrontendConfig{
			{Name: "app", Framework: config.FrameworkNuxt, Styling: config.StylingSass, Port: 3000},
		}
	}
	return &config.ProjectConfig{
		ProjectName: "demo-app",
		Frontends:   frontends,
		BackendPort: 3001,
		DBName:      "demo_app_db",
		DBUser:      "postgres",
		DBPassword:  "at-least-8-chars",
		JWTSecret:   "deadbeefcafebabe",
		DBAdmin:     config.DBAdminConfig{Tool: config.AdminNone},
	}
}

func newTestScaffolder(t *testing.T, run CommandRunner) (*Scaffolder, string) {
	t.Helper()
	fsys, err := template.Embedded()
	if err != nil {
		t.Fatal(err)
	}
	base := t.TempDir()
	return New(template.NewDeployer(fsys, nil), run, base, nil), base
}

// composeServices parses the generated compose manifest and returns the
// service block names.
func composeServices(t *testing.T, root string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, "docker-compose.yml"))
	if err != nil {
		t.Fatalf("compose manifest missing: %v", err)
	}
	var doc struct {
		Services map[string]any `yaml:"services"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("compose manifest is not valid YAML: %v", err)
	}
	return doc.Services
}

func TestScaffolderRun(t *testing.T) {
	t.Run("single_frontend_project", func(t *testing.T) {
		run := &stubRunner{}
		s, base := newTestScaffolder(t, run)

		result, err := s.Run(context.Background(), testConfig(), Options{SkipInstall: true})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}

		root := filepath.Join(base, "demo-app")
		if result.Path != root {
			t.Errorf("result.Path = %q, want %q", result.Path, root)
		}

		for _, dir := range []string{"app", "backend"} {
			if info, err := os.Stat(filepath.Join(root, dir)); err != nil || !info.IsDir() {
				t.Errorf("missing service directory %s: %v", dir, err)
			}
		}
		for _, file := range []string{"docker-compose.yml", "Makefile", "README.md", ".env", ".gitignore", ".dockerignore"} {
			if _, err := os.Stat(filepath.Join(root, file)); err != nil {
				t.Errorf("missing root file %s: %v", file, err)
			}
		}

		services := composeServices(t, root)
		if len(services) != 3 {
			t.Errorf("compose services = %d, want 3 (app, backend, db)", len(services))
		}
		for _, name := range []string{"app", "backend", "db"} {
			if _, ok := services[name]; !ok {
				t.Errorf("compose manifest missing service %q", name)
			}
		}

		if len(run.gitInits) != 1 || run.gitInits[0] != root {
			t.Errorf("git init calls = %v", run.gitInits)
		}
		if result.Files == 0 {
			t.Error("result.Files = 0")
		}
	})

	t.Run("three_frontends_project", func(t *testing.T) {
		run := &stubRunner{}
		s, base := newTestScaffolder(t, run)

		cfg := testConfig(
			config.FrontendConfig{Name: "web", Framework: config.FrameworkNuxt, Styling: config.StylingSass, Port: 3000},
			config.FrontendConfig{Name: "admin-panel", Framework: config.FrameworkVue, Styling: config.StylingCSS, Port: 3010},
			config.FrontendConfig{Name: "docs", Framework: config.FrameworkVue, Styling: config.StylingSass, Port: 3020},
		)

		if _, err := s.Run(context.Background(), cfg, Options{SkipInstall: true}); err != nil {
			t.Fatalf("Run error: %v", err)
		}

		root := filepath.Join(base, "demo-app")
		services := composeServices(t, root)
		if len(services) != 5 {
			t.Errorf("compose services = %d, want 5 (3 frontends + backend + db)", len(services))
		}

		makefile, err := os.ReadFile(filepath.Join(root, "Makefile"))
		if err != nil {
			t.Fatal(err)
		}
		for _, fe := range cfg.Frontends {
			if !strings.Contains(string(makefile), fe.Name+"-dev:") {
				t.Errorf("Makefile missing command group for %s", fe.Name)
			}
		}

		env, err := os.ReadFile(filepath.Join(root, ".env"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(env), "ADMIN_PANEL_PORT=3010") {
			t.Errorf(".env missing frontend port entry:\n%s", env)
		}
	})

	t.Run("admin_tool_adds_service_block", func(t *testing.T) {
		run := &stubRunner{}
		s, base := newTestScaffolder(t, run)

		cfg := testConfig()
		cfg.DBAdmin = config.DBAdminConfig{Tool: config.AdminAdminer, Port: 8081}

		if _, err := s.Run(context.Background(), cfg, Options{SkipInstall: true}); err != nil {
			t.Fatalf("Run error: %v", err)
		}

		services := composeServices(t, filepath.Join(base, "demo-app"))
		if len(services) != 4 {
			t.Errorf("compose services = %d, want 4", len(services))
		}
		if _, ok := services["adminer"]; !ok {
			t.Error("compose manifest missing adminer service")
		}
	})

	t.Run("existing_directory_without_force", func(t *testing.T) {
		run := &stubRunner{}
		s, base := newTestScaffolder(t, run)

		root := filepath.Join(base, "demo-app")
		if err := os.MkdirAll(root, 0o755); err != nil {
			t.Fatal(err)
		}
		marker := filepath.Join(root, "precious.txt")
		if err := os.WriteFile(marker, []byte("keep me"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := s.Run(context.Background(), testConfig(), Options{SkipInstall: true})
		if !errors.Is(err, ErrDirectoryExists) {
			t.Fatalf("expected ErrDirectoryExists, got %v", err)
		}

		data, err := os.ReadFile(marker)
		if err != nil || string(data) != "keep me" {
			t.Errorf("pre-existing file was touched: %v %q", err, data)
		}
		entries, _ := os.ReadDir(root)
		if len(entries) != 1 {
			t.Errorf("directory gained entries: %v", entries)
		}
		if len(run.gitInits) != 0 {
			t.Error("git init ran despite aborted scaffold")
		}
	})

	t.Run("existing_directory_with_force", func(t *testing.T) {
		run := &stubRunner{}
		s, base := newTestScaffolder(t, run)

		root := filepath.Join(base, "demo-app")
		if err := os.MkdirAll(root, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(root, "old.txt"), []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := s.Run(context.Background(), testConfig(), Options{Force: true, SkipInstall: true}); err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(root, "old.txt")); !os.IsNotExist(err) {
			t.Error("stale file survived --force regeneration")
		}
		if _, err := os.Stat(filepath.Join(root, "docker-compose.yml")); err != nil {
			t.Errorf("regenerated tree incomplete: %v", err)
		}
	})

	t.Run("rollback_on_git_failure", func(t *testing.T) {
		run := &stubRunner{gitErr: errors.New("git exploded")}
		s, base := newTestScaffolder(t, run)

		_, err := s.Run(context.Background(), testConfig(), Options{SkipInstall: true})
		if err == nil {
			t.Fatal("expected error from git init")
		}
		if _, statErr := os.Stat(filepath.Join(base, "demo-app")); !os.IsNotExist(statErr) {
			t.Error("output root survived a failed run")
		}
	})

	t.Run("rollback_on_render_failure", func(t *testing.T) {
		run := &stubRunner{}
		base := t.TempDir()
		failing := &failingDeployer{failOn: 3}
		s := New(failing, run, base, nil)

		cfg := testConfig(
			config.FrontendConfig{Name: "one", Framework: config.FrameworkNuxt, Styling: config.StylingCSS, Port: 3000},
			config.FrontendConfig{Name: "two", Framework: config.FrameworkVue, Styling: config.StylingCSS, Port: 3010},
			config.FrontendConfig{Name: "three", Framework: config.FrameworkVue, Styling: config.StylingCSS, Port: 3020},
		)

		_, err := s.Run(context.Background(), cfg, Options{SkipInstall: true})
		if err == nil {
			t.Fatal("expected error from third frontend")
		}
		if _, statErr := os.Stat(filepath.Join(base, "demo-app")); !os.IsNotExist(statErr) {
			t.Error("output root survived a failed run")
		}
	})

	t.Run("git_missing_is_fatal_before_any_write", func(t *testing.T) {
		run := &stubRunner{missing: map[string]bool{"git": true}}
		s, base := newTestScaffolder(t, run)

		_, err := s.Run(context.Background(), testConfig(), Options{SkipInstall: true})
		if !errors.Is(err, ErrGitMissing) {
			t.Fatalf("expected ErrGitMissing, got %v", err)
		}
		if _, statErr := os.Stat(filepath.Join(base, "demo-app")); !os.IsNotExist(statErr) {
			t.Error("files written despite failed pre-flight")
		}
	})

	t.Run("docker_missing_is_only_a_warning", func(t *testing.T) {
		run := &stubRunner{missing: map[string]bool{"docker": true}}
		s, _ := newTestScaffolder(t, run)

		result, err := s.Run(context.Background(), testConfig(), Options{SkipInstall: true})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if len(result.Warnings) == 0 {
			t.Error("expected a docker warning")
		}
	})

	t.Run("invalid_config_rejected_before_preflight", func(t *testing.T) {
		run := &stubRunner{}
		s, base := newTestScaffolder(t, run)

		cfg := testConfig()
		cfg.BackendPort = 3000 // collides with frontend
		_, err := s.Run(context.Background(), cfg, Options{SkipInstall: true})
		if !errors.Is(err, config.ErrPortInUse) {
			t.Fatalf("expected ErrPortInUse, got %v", err)
		}
		if _, statErr := os.Stat(filepath.Join(base, "demo-app")); !os.IsNotExist(statErr) {
			t.Error("files written despite invalid config")
		}
	})

	t.Run("npm_install_runs_per_service", func(t *testing.T) {
		run := &stubRunner{}
		s, base := newTestScaffolder(t, run)

		if _, err := s.Run(context.Background(), testConfig(), Options{}); err != nil {
			t.Fatalf("Run error: %v", err)
		}

		root := filepath.Join(base, "demo-app")
		want := []string{filepath.Join(root, "app"), filepath.Join(root, "backend")}
		if len(run.npmCalls) != len(want) {
			t.Fatalf("npm calls = %v", run.npmCalls)
		}
		for i := range want {
			if run.npmCalls[i] != want[i] {
				t.Errorf("npm call %d = %q, want %q", i, run.npmCalls[i], want[i])
			}
		}
	})

	t.Run("npm_failure_is_warning_not_rollback", func(t *testing.T) {
		run := &stubRunner{npmErr: errors.New("network down")}
		s, base := newTestScaffolder(t, run)

		result, err := s.Run(context.Background(), testConfig(), Options{})
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		if len(result.Warnings) == 0 {
			t.Error("expected npm warnings")
		}
		if _, statErr := os.Stat(filepath.Join(base, "demo-app")); statErr != nil {
			t.Error("tree removed although generation succeeded")
		}
	})
}

// failingDeployer fails on the nth Deploy call.
type failingDeployer struct {
	calls  int
	failOn int
}

func (f *failingDeployer) Deploy(_ context.Context, subtree, outputDir string, _ any) error {
	f.calls++
	if f.calls >= f.failOn {
		return fmt.Errorf("deploy %s: simulated failure", subtree)
	}
	// Simulate a successful subtree deployment.
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, "placeholder"), []byte(subtree), 0o644)
}
