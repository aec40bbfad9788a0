package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/stackgen-dev/stackgen/internal/config"
)

// frontendPortStep spaces the suggested default port of consecutive frontends.
const frontendPortStep = 10

// defaultFrontendPort is the suggested port for the first frontend.
const defaultFrontendPort = 3000

// Run collects a complete ProjectConfig interactively. defaultName seeds the
// project-name prompt (usually the positional CLI argument, may be empty).
//
// Each question runs as its own independent huh form, mirroring the
// sequential one-question-at-a-time flow the validators are designed for:
// the name and port accumulators grow only after an answer is accepted, and
// the reserved database port is seeded before any port question runs.
func Run(defaultName string) (*config.ProjectConfig, error) {
	theme := newWizardTheme()
	cfg := &config.ProjectConfig{}

	usedNames := []string{}
	usedPorts := []int{config.DBPort}

	// Project name.
	name := defaultName
	if err := runForm(theme, huh.NewInput().
		Title("Project name").
		Description("Used as the output directory and package name (kebab-case).").
		Placeholder("my-app").
		Validate(config.ValidateProjectName).
		Value(&name)); err != nil {
		return nil, err
	}
	cfg.ProjectName = name

	// Frontend count.
	count := 1
	if err := runForm(theme, huh.NewSelect[int]().
		Title("How many frontends?").
		Options(
			huh.NewOption("1", 1),
			huh.NewOption("2", 2),
			huh.NewOption("3", 3),
			huh.NewOption("4", 4),
			huh.NewOption("5", 5),
		).
		Value(&count)); err != nil {
		return nil, err
	}

	// Per-frontend questions.
	for i := 0; i < count; i++ {
		fe, err := askFrontend(theme, i, usedNames, usedPorts)
		if err != nil {
			return nil, err
		}
		cfg.Frontends = append(cfg.Frontends, *fe)
		usedNames = append(usedNames, fe.Name)
		usedPorts = append(usedPorts, fe.Port)
	}

	// Backend port.
	backendPort, err := askPort(theme, "Backend port", defaultFrontendPort+1, usedPorts)
	if err != nil {
		return nil, err
	}
	cfg.BackendPort = backendPort
	usedPorts = append(usedPorts, backendPort)

	// Database credentials.
	dbName := config.DefaultDBName(cfg.ProjectName)
	if err := runForm(theme, huh.NewInput().
		Title("Database name").
		Placeholder(dbName).
		Validate(requireNonEmpty).
		Value(&dbName)); err != nil {
		return nil, err
	}
	cfg.DBName = dbName

	dbUser := "postgres"
	if err := runForm(theme, huh.NewInput().
		Title("Database user").
		Placeholder(dbUser).
		Validate(requireNonEmpty).
		Value(&dbUser)); err != nil {
		return nil, err
	}
	cfg.DBUser = dbUser

	dbPassword := config.GeneratePassword(config.DefaultPasswordLen)
	if err := runForm(theme, huh.NewInput().
		Title("Database password").
		Description("A random password is suggested; replace it if you prefer your own.").
		Validate(validatePassword).
		Value(&dbPassword)); err != nil {
		return nil, err
	}
	cfg.DBPassword = dbPassword

	// JWT secret is always generated, never typed.
	cfg.JWTSecret = config.GenerateJWTSecret()

	// Optional DB admin tool.
	admin, err := askDBAdmin(theme, usedPorts)
	if err != nil {
		return nil, err
	}
	cfg.DBAdmin = *admin

	return cfg, nil
}

// askFrontend collects one frontend's name, framework, styling, and port.
func askFrontend(theme *huh.Theme, index int, usedNames []string, usedPorts []int) (*config.FrontendConfig, error) {
	fe := &config.FrontendConfig{}
	label := fmt.Sprintf("Frontend %d", index+1)

	name := ""
	if index == 0 {
		name = "app"
	}
	if err := runForm(theme, huh.NewInput().
		Title(label+": name").
		Description("Unique kebab-case service name.").
		Validate(func(v string) error {
			return config.ValidateServiceName(v, usedNames)
		}).
		Value(&name)); err != nil {
		return nil, err
	}
	fe.Name = name

	framework := config.FrameworkNuxt
	if err := runForm(theme, huh.NewSelect[config.Framework]().
		Title(label+": framework").
		Options(
			huh.NewOption("Nuxt", config.FrameworkNuxt),
			huh.NewOption("Vue + Vite", config.FrameworkVue),
		).
		Value(&framework)); err != nil {
		return nil, err
	}
	fe.Framework = framework

	styling := config.StylingCSS
	if err := runForm(theme, huh.NewSelect[config.Styling]().
		Title(label+": styling").
		Options(
			huh.NewOption("CSS", config.StylingCSS),
			huh.NewOption("Sass", config.StylingSass),
		).
		Value(&styling)); err != nil {
		return nil, err
	}
	fe.Styling = styling

	port, err := askPort(theme, label+": port", defaultFrontendPort+index*frontendPortStep, usedPorts)
	if err != nil {
		return nil, err
	}
	fe.Port = port

	return fe, nil
}

// askDBAdmin collects the optional database admin tool configuration.
func askDBAdmin(theme *huh.Theme, usedPorts []int) (*config.DBAdminConfig, error) {
	admin := &config.DBAdminConfig{Tool: config.AdminNone}

	tool := config.AdminNone
	if err := runForm(theme, huh.NewSelect[config.AdminTool]().
		Title("Database admin tool").
		Options(
			huh.NewOption("None", config.AdminNone),
			huh.NewOption("pgAdmin", config.AdminPgAdmin),
			huh.NewOption("Adminer", config.AdminAdminer),
		).
		Value(&tool)); err != nil {
		return nil, err
	}
	admin.Tool = tool

	if !admin.Enabled() {
		return admin, nil
	}

	defaultPort := 8081
	if tool == config.AdminPgAdmin {
		defaultPort = 5050
	}
	port, err := askPort(theme, fmt.Sprintf("%s port", tool), defaultPort, usedPorts)
	if err != nil {
		return nil, err
	}
	admin.Port = port

	if tool == config.AdminPgAdmin {
		email := "admin@local.dev"
		if err := runForm(theme, huh.NewInput().
			Title("pgAdmin login email").
			Placeholder(email).
			Validate(requireNonEmpty).
			Value(&email)); err != nil {
			return nil, err
		}
		admin.Email = email

		password := config.GeneratePassword(config.DefaultPasswordLen)
		if err := runForm(theme, huh.NewInput().
			Title("pgAdmin password").
			Description("A random password is suggested; replace it if you prefer your own.").
			Validate(validatePassword).
			Value(&password)); err != nil {
			return nil, err
		}
		admin.Password = password
	}

	return admin, nil
}

// askPort asks for a port with a suggested default, validating the answer
// against the accumulator.
func askPort(theme *huh.Theme, title string, suggested int, usedPorts []int) (int, error) {
	value := strconv.Itoa(nextFreePort(suggested, usedPorts))
	if err := runForm(theme, huh.NewInput().
		Title(title).
		Description("1024-65535, unique across the project (5432 is reserved for Postgres).").
		Validate(func(v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("port must be a number")
			}
			return config.ValidatePort(n, usedPorts)
		}).
		Value(&value)); err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("port must be a number")
	}
	return n, nil
}

// nextFreePort bumps the suggested default past any port already taken so
// the pre-filled answer always validates.
func nextFreePort(suggested int, usedPorts []int) int {
	for taken(suggested, usedPorts) {
		suggested++
	}
	return suggested
}

func taken(port int, used []int) bool {
	if port == config.DBPort {
		return true
	}
	for _, p := range used {
		if p == port {
			return true
		}
	}
	return false
}

// runForm wraps a single field in its own huh form. Each question runs as an
// independent form so answers commit in order and the accumulators stay in
// sync with what the user has already confirmed.
func runForm(theme *huh.Theme, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(theme).
		WithAccessible(false)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}

// requireNonEmpty validates a required free-text answer.
func requireNonEmpty(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("value is required")
	}
	return nil
}

// validatePassword enforces the minimum password length.
func validatePassword(v string) error {
	if len(v) < config.MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", config.MinPasswordLen)
	}
	return nil
}
