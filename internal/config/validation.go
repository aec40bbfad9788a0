package config

import (
	"fmt"
	"regexp"
	"slices"
)

// kebabCasePattern matches lowercase kebab-case identifiers: segments of
// lowercase alphanumerics separated by single hyphens, starting with a letter.
var kebabCasePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// npmNamePattern matches valid unscoped npm package names: lowercase URL-safe
// characters, no leading dot or underscore, at most 214 characters.
var npmNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidateProjectName checks that name is usable as both an npm package name
// and the output root directory. Both the package-name check and the
// kebab-case check must pass; the kebab rule is stricter and layered on top.
func ValidateProjectName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > 214 || !npmNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q is not a valid package name", ErrInvalidProjectName, name)
	}
	if !kebabCasePattern.MatchString(name) {
		return fmt.Errorf("%w: got %q", ErrNotKebabCase, name)
	}
	return nil
}

// ValidateServiceName checks one candidate frontend name against the names
// accepted so far. existing grows as the collector accepts answers; the
// reserved names are always rejected regardless of the accumulator.
func ValidateServiceName(name string, existing []string) error {
	if name == "" {
		return ErrEmptyName
	}
	if !kebabCasePattern.MatchString(name) {
		return fmt.Errorf("%w: got %q", ErrNotKebabCase, name)
	}
	if slices.Contains(ReservedNames, name) {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	if slices.Contains(existing, name) {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	return nil
}

// ValidatePort checks one candidate port against the ports accepted so far.
// Callers must pre-seed used with DBPort before the first call so the
// reserved database port can never be claimed, even transitively.
func ValidatePort(port int, used []int) error {
	if port < 1024 || port > 65535 {
		return fmt.Errorf("%w: got %d", ErrPortOutOfRange, port)
	}
	if port == DBPort {
		return ErrPortReserved
	}
	if slices.Contains(used, port) {
		return fmt.Errorf("%w: %d", ErrPortInUse, port)
	}
	return nil
}

// Validate re-checks a complete ProjectConfig. The interactive collector
// already validated every value incrementally; this pass is the safety net
// for the non-interactive preset path and a cheap defense-in-depth gate at
// the start of scaffolding.
func Validate(cfg *ProjectConfig) error {
	var errs []ValidationError

	if err := ValidateProjectName(cfg.ProjectName); err != nil {
		errs = append(errs, ValidationError{
			Field:   "projectName",
			Message: "invalid project name",
			Value:   cfg.ProjectName,
			Wrapped: err,
		})
	}

	if len(cfg.Frontends) < 1 || len(cfg.Frontends) > MaxFrontends {
		errs = append(errs, ValidationError{
			Field:   "frontends",
			Message: fmt.Sprintf("must have between 1 and %d frontends", MaxFrontends),
			Value:   len(cfg.Frontends),
			Wrapped: ErrFrontendCount,
		})
	}

	// Re-run the incremental checks in declaration order, growing the
	// accumulators exactly as the collector would.
	names := make([]string, 0, len(cfg.Frontends))
	ports := []int{DBPort}
	for i, fe := range cfg.Frontends {
		field := fmt.Sprintf("frontends[%d]", i)
		if err := ValidateServiceName(fe.Name, names); err != nil {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: "invalid service name",
				Value:   fe.Name,
				Wrapped: err,
			})
		} else {
			names = append(names, fe.Name)
		}
		if !fe.Framework.IsValid() {
			errs = append(errs, ValidationError{
				Field:   field + ".framework",
				Message: "unknown framework",
				Value:   string(fe.Framework),
				Wrapped: ErrInvalidFramework,
			})
		}
		if !fe.Styling.IsValid() {
			errs = append(errs, ValidationError{
				Field:   field + ".styling",
				Message: "unknown styling",
				Value:   string(fe.Styling),
				Wrapped: ErrInvalidStyling,
			})
		}
		if err := ValidatePort(fe.Port, ports); err != nil {
			errs = append(errs, ValidationError{
				Field:   field + ".port",
				Message: "invalid port",
				Value:   fe.Port,
				Wrapped: err,
			})
		} else {
			ports = append(ports, fe.Port)
		}
	}

	if err := ValidatePort(cfg.BackendPort, ports); err != nil {
		errs = append(errs, ValidationError{
			Field:   "backendPort",
			Message: "invalid port",
			Value:   cfg.BackendPort,
			Wrapped: err,
		})
	} else {
		ports = append(ports, cfg.BackendPort)
	}

	if cfg.DBName == "" {
		errs = append(errs, ValidationError{
			Field:   "dbName",
			Message: "required field is empty",
			Wrapped: ErrEmptyName,
		})
	}
	if cfg.DBUser == "" {
		errs = append(errs, ValidationError{
			Field:   "dbUser",
			Message: "required field is empty",
			Wrapped: ErrEmptyName,
		})
	}
	if len(cfg.DBPassword) < MinPasswordLen {
		errs = append(errs, ValidationError{
			Field:   "dbPassword",
			Message: fmt.Sprintf("must be at least %d characters", MinPasswordLen),
			Wrapped: ErrPasswordTooShort,
		})
	}

	if !cfg.DBAdmin.Tool.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "dbAdmin.tool",
			Message: "unknown admin tool",
			Value:   string(cfg.DBAdmin.Tool),
			Wrapped: ErrInvalidAdminTool,
		})
	} else if cfg.DBAdmin.Enabled() {
		if err := ValidatePort(cfg.DBAdmin.Port, ports); err != nil {
			errs = append(errs, ValidationError{
				Field:   "dbAdmin.port",
				Message: "invalid port",
				Value:   cfg.DBAdmin.Port,
				Wrapped: err,
			})
		}
		if cfg.DBAdmin.Tool == AdminPgAdmin {
			if cfg.DBAdmin.Email == "" {
				errs = append(errs, ValidationError{
					Field:   "dbAdmin.email",
					Message: "pgadmin requires a login email",
					Wrapped: ErrEmptyName,
				})
			}
			if len(cfg.DBAdmin.Password) < MinPasswordLen {
				errs = append(errs, ValidationError{
					Field:   "dbAdmin.password",
					Message: fmt.Sprintf("must be at least %d characters", MinPasswordLen),
					Wrapped: ErrPasswordTooShort,
				})
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
