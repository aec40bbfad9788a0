package template

import "github.com/stackgen-dev/stackgen/internal/config"

// FrontendContext is the data context for one frontend subtree. It carries
// only what per-frontend templates may reference.
type FrontendContext struct {
	ProjectName string
	Name        string
	Framework   string
	Styling     string
	Port        int
	BackendPort int
}

// BackendContext is the data context for the backend subtree.
type BackendContext struct {
	ProjectName string
	BackendPort int
	DBName      string
	DBUser      string
	DBPassword  string
	JWTSecret   string
}

// RootContext is the data context for root-level files. It exposes the
// entire project so the compose manifest can emit one service block per
// frontend and the Makefile one command group per frontend.
type RootContext struct {
	ProjectName string
	Frontends   []FrontendContext
	BackendPort int
	DBPort      int
	DBName      string
	DBUser      string
	DBPassword  string
	JWTSecret   string
	AdminTool   string
	AdminPort   int
	AdminEmail  string
	AdminPass   string
	HasAdmin    bool
}

// NewFrontendContext builds the rendering context for a single frontend.
func NewFrontendContext(cfg *config.ProjectConfig, fe config.FrontendConfig) *FrontendContext {
	return &FrontendContext{
		ProjectName: cfg.ProjectName,
		Name:        fe.Name,
		Framework:   string(fe.Framework),
		Styling:     string(fe.Styling),
		Port:        fe.Port,
		BackendPort: cfg.BackendPort,
	}
}

// NewBackendContext builds the rendering context for the backend subtree.
func NewBackendContext(cfg *config.ProjectConfig) *BackendContext {
	return &BackendContext{
		ProjectName: cfg.ProjectName,
		BackendPort: cfg.BackendPort,
		DBName:      cfg.DBName,
		DBUser:      cfg.DBUser,
		DBPassword:  cfg.DBPassword,
		JWTSecret:   cfg.JWTSecret,
	}
}

// NewRootContext builds the rendering context for root-level files.
func NewRootContext(cfg *config.ProjectConfig) *RootContext {
	frontends := make([]FrontendContext, len(cfg.Frontends))
	for i, fe := range cfg.Frontends {
		frontends[i] = *NewFrontendContext(cfg, fe)
	}
	ctx := &RootContext{
		ProjectName: cfg.ProjectName,
		Frontends:   frontends,
		BackendPort: cfg.BackendPort,
		DBPort:      config.DBPort,
		DBName:      cfg.DBName,
		DBUser:      cfg.DBUser,
		DBPassword:  cfg.DBPassword,
		JWTSecret:   cfg.JWTSecret,
		HasAdmin:    cfg.DBAdmin.Enabled(),
	}
	if ctx.HasAdmin {
		ctx.AdminTool = string(cfg.DBAdmin.Tool)
		ctx.AdminPort = cfg.DBAdmin.Port
		ctx.AdminEmail = cfg.DBAdmin.Email
		ctx.AdminPass = cfg.DBAdmin.Password
	}
	return ctx
}
