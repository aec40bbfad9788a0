package config

// Framework identifies a frontend framework variant. Each value selects one
// embedded template subtree.
type Framework string

// Supported frontend frameworks.
const (
	FrameworkNuxt Framework = "nuxt"
	FrameworkVue  Framework = "vue"
)

// IsValid reports whether the framework is a recognized value.
func (f Framework) IsValid() bool {
	return f == FrameworkNuxt || f == FrameworkVue
}

// Styling identifies a frontend styling flavor.
type Styling string

// Supported styling flavors.
const (
	StylingCSS  Styling = "css"
	StylingSass Styling = "sass"
)

// IsValid reports whether the styling is a recognized value.
func (s Styling) IsValid() bool {
	return s == StylingCSS || s == StylingSass
}

// AdminTool identifies the optional database administration tool.
// AdminNone is the explicit "no admin tool" variant; it is used uniformly
// instead of a nil config so every code path handles absence the same way.
type AdminTool string

// Supported database admin tools.
const (
	AdminNone    AdminTool = "none"
	AdminPgAdmin AdminTool = "pgadmin"
	AdminAdminer AdminTool = "adminer"
)

// IsValid reports whether the admin tool is a recognized value.
func (t AdminTool) IsValid() bool {
	return t == AdminNone || t == AdminPgAdmin || t == AdminAdminer
}

// DBPort is the fixed internal Postgres port. It is reserved: no service
// may claim it, and it is pre-seeded into the port accumulator before any
// user-supplied port is validated.
const DBPort = 5432

// MaxFrontends caps the number of frontends in a project.
const MaxFrontends = 5

// MinPasswordLen is the minimum database password length.
const MinPasswordLen = 8

// ReservedNames are service names that frontends may not use. They are
// claimed by the backend, the database, and the supported admin tools.
var ReservedNames = []string{"backend", "db", "pgadmin", "adminer"}

// FrontendConfig describes one deployable frontend unit. Constructed once
// during configuration collection and immutable thereafter.
type FrontendConfig struct {
	Name      string    `yaml:"name"`
	Framework Framework `yaml:"framework"`
	Styling   Styling   `yaml:"styling"`
	Port      int       `yaml:"port"`
}

// DBAdminConfig describes the optional database administration service.
// Tool == AdminNone means no admin service is generated. Email and Password
// are only meaningful when Tool == AdminPgAdmin.
type DBAdminConfig struct {
	Tool     AdminTool `yaml:"tool"`
	Port     int       `yaml:"port,omitempty"`
	Email    string    `yaml:"email,omitempty"`
	Password string    `yaml:"password,omitempty"`
}

// Enabled reports whether an admin service should be generated.
func (a DBAdminConfig) Enabled() bool {
	return a.Tool == AdminPgAdmin || a.Tool == AdminAdminer
}

// ProjectConfig is the complete, validated description of a project to
// generate. It is the scaffolder's input contract: the scaffolder trusts
// that the incremental validators already ran during collection.
type ProjectConfig struct {
	ProjectName string           `yaml:"projectName"`
	Frontends   []FrontendConfig `yaml:"frontends"`
	BackendPort int              `yaml:"backendPort"`
	DBName      string           `yaml:"dbName"`
	DBUser      string           `yaml:"dbUser"`
	DBPassword  string           `yaml:"dbPassword"`
	JWTSecret   string           `yaml:"jwtSecret,omitempty"`
	DBAdmin     DBAdminConfig    `yaml:"dbAdmin"`
}

// ServiceNames returns the names of all services in declaration order:
// frontends first, then backend, db, and the admin tool if enabled.
func (c *ProjectConfig) ServiceNames() []string {
	names := make([]string, 0, len(c.Frontends)+3)
	for _, fe := range c.Frontends {
		names = append(names, fe.Name)
	}
	names = append(names, "backend", "db")
	if c.DBAdmin.Enabled() {
		names = append(names, string(c.DBAdmin.Tool))
	}
	return names
}

// UsedPorts returns every port claimed by the project, including the
// reserved database port.
func (c *ProjectConfig) UsedPorts() []int {
	ports := make([]int, 0, len(c.Frontends)+3)
	for _, fe := range c.Frontends {
		ports = append(ports, fe.Port)
	}
	ports = append(ports, c.BackendPort, DBPort)
	if c.DBAdmin.Enabled() {
		ports = append(ports, c.DBAdmin.Port)
	}
	return ports
}
