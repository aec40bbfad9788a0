package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrPresetNotFound indicates the preset file does not exist.
var ErrPresetNotFound = errors.New("config: preset file not found")

// LoadPreset reads a ProjectConfig from a YAML preset file for
// non-interactive runs. Unknown keys are rejected so a typo in a preset
// fails loudly instead of silently falling back to a zero value. Missing
// secrets are filled with generated values; the result is validated as a
// whole since no incremental collection happened.
func LoadPreset(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, path)
		}
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}

	cfg := &ProjectConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills omitted optional fields with sensible values:
// a generated database password, a generated JWT secret, a default database
// user, and the explicit AdminNone variant for an omitted admin section.
func ApplyDefaults(cfg *ProjectConfig) {
	if cfg.DBUser == "" {
		cfg.DBUser = "postgres"
	}
	if cfg.DBName == "" && cfg.ProjectName != "" {
		cfg.DBName = DefaultDBName(cfg.ProjectName)
	}
	if cfg.DBPassword == "" {
		cfg.DBPassword = GeneratePassword(DefaultPasswordLen)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = GenerateJWTSecret()
	}
	if cfg.DBAdmin.Tool == "" {
		cfg.DBAdmin.Tool = AdminNone
	}
}

// DefaultDBName derives a Postgres-friendly database name from a kebab-case
// project name (hyphens become underscores).
func DefaultDBName(projectName string) string {
	out := []byte(projectName)
	for i, c := range out {
		if c == '-' {
			out[i] = '_'
		}
	}
	return string(out) + "_db"
}
