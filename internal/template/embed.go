package template

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embeddedFS embed.FS

// Template subtree keys. Each pairs a category with a variant and names one
// directory in the embedded tree.
const (
	SubtreeNuxt    = "frontend/nuxt"
	SubtreeVue     = "frontend/vue"
	SubtreeBackend = "backend/nestjs"
	SubtreeRoot    = "root"
)

// Embedded returns the embedded template tree rooted at the subtree keys.
func Embedded() (fs.FS, error) {
	return fs.Sub(embeddedFS, "templates")
}
